package img
import (
	"io"
	"image"
	"image/png"
)

const (
	pngColorTypeOffset = 25
)

func decodePNG( r io.Reader ) (image.Image, error) {
	return png.Decode( r )
}

func decodePNGConfig( r io.Reader ) (image.Config, error) {
	return png.DecodeConfig( r )
}

func encodePNG( w io.Writer, m image.Image ) error {
	enc := png.Encoder{ CompressionLevel: png.BestCompression }
	return enc.Encode( w, m )
}

// the go decoder reports truecolor pngs as RGBA, the IHDR chunk knows better.
func pngMode( data []byte, fallback string ) string {
	if len(data) <= pngColorTypeOffset {
		return fallback
	}
	switch data[ pngColorTypeOffset ] {
	case 0:
		return "L"
	case 2:
		return "RGB"
	case 3:
		return "P"
	case 4:
		return "LA"
	case 6:
		return "RGBA"
	}
	return fallback
}
