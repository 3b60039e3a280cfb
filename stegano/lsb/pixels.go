package lsb
import (
	"fmt"
)

const (
	// R, G and B. alpha is never carried.
	Channels = 3
)

/*
 * PixelBuffer is a row-major grid of RGB pixels. Pix holds Channels bytes
 * per pixel, so the pixel (x, y) starts at Pix[ (y * Width + x) * Channels ].
 */
type PixelBuffer struct {
	Width	int
	Height	int
	Pix	[]uint8
}

func NewPixelBuffer( width, height int ) *PixelBuffer {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &PixelBuffer{
		Width: width,
		Height: height,
		Pix: make( []uint8, width * height * Channels ),
	}
}

// Validate reports ErrInvalidBuffer for empty grids or a Pix slice which
// does not match the dimensions.
func(pb *PixelBuffer) Validate() error {
	if pb == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidBuffer)
	}
	if pb.Width <= 0 || pb.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBuffer, pb.Width, pb.Height)
	}
	if len(pb.Pix) == 0 || len(pb.Pix) != pb.Width * pb.Height * Channels {
		return fmt.Errorf("%w: %d channel values for %dx%d pixels",
			ErrInvalidBuffer, len(pb.Pix), pb.Width, pb.Height)
	}
	return nil
}

func(pb *PixelBuffer) offset( x, y int ) (int, error) {
	if x < 0 || y < 0 || x >= pb.Width || y >= pb.Height {
		return 0, fmt.Errorf("pixel (%d, %d) is out of bounds %dx%d", x, y, pb.Width, pb.Height)
	}
	return (y * pb.Width + x) * Channels, nil
}

func(pb *PixelBuffer) At( x, y int ) (r, g, b uint8, err error) {
	i, err := pb.offset( x, y )
	if err != nil {
		return 0, 0, 0, err
	}
	return pb.Pix[i], pb.Pix[i+1], pb.Pix[i+2], nil
}

func(pb *PixelBuffer) Set( x, y int, r, g, b uint8 ) error {
	i, err := pb.offset( x, y )
	if err != nil {
		return err
	}
	pb.Pix[i], pb.Pix[i+1], pb.Pix[i+2] = r, g, b
	return nil
}

func(pb *PixelBuffer) Clone() *PixelBuffer {
	pix := make( []uint8, len(pb.Pix) )
	copy( pix, pb.Pix )
	return &PixelBuffer{
		Width: pb.Width,
		Height: pb.Height,
		Pix: pix,
	}
}
