package img
import (
	"fmt"
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"

	"stegocrypt/stegano/lsb"
)

const (
	PNG = "png"
	BMP = "bmp"
	GIF = "gif"
	JPEG = "jpeg"
	TIFF = "tiff"
	WEBP = "webp"

	// kept free on top of the delimiter when showing capacity to users
	SafetyMargin = 10
)

var (
	ErrUnsupportedFormat = errors.New("Unsupported image format.")
	ErrLossyFormat = errors.New("Format can not store pixels losslessly.")
)

type codec struct {
	decode		func( io.Reader ) (image.Image, error)
	decodeConfig	func( io.Reader ) (image.Config, error)
	// nil if the format would spoil the hidden bits
	encode		func( io.Writer, image.Image ) error
}

var codecs = map[string]codec{
	PNG: { decodePNG, decodePNGConfig, encodePNG },
	BMP: { decodeBMP, decodeBMPConfig, encodeBMP },
	TIFF: { decodeTIFF, decodeTIFFConfig, encodeTIFF },
	GIF: { decodeGIF, decodeGIFConfig, nil },
	JPEG: { decodeJPEG, decodeJPEGConfig, nil },
	WEBP: { decodeWEBP, decodeWEBPConfig, nil },
}

// Report describes a finished or refused Hide call, sizes are in bytes.
type Report struct {
	Format		string
	Capacity	int
	Used		int
}

type Info struct {
	Width		int
	Height		int
	Format		string
	Mode		string
	Capacity	int
	UsableChars	int
}

func DetectFormat( data []byte ) string {
	switch {
	case len(data) >= 3 && data[0] == 0x47 && data[1] == 0x49 && data[2] == 0x46:
		return GIF
	case len(data) >= 8 && data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4e &&
		data[3] == 0x47 && data[4] == 0x0d && data[5] == 0x0a &&
		data[6] == 0x1a && data[7] == 0x0a:
		return PNG
	case len(data) >= 3 && data[0] == 0xff && data[1] == 0xd8 && data[2] == 0xff:
		return JPEG
	case len(data) >= 2 && data[0] == 0x42 && data[1] == 0x4d:
		return BMP
	case len(data) >= 4 && (bytes.HasPrefix( data, []byte("II*\x00") ) ||
		bytes.HasPrefix( data, []byte("MM\x00*") )):
		return TIFF
	case len(data) >= 12 && bytes.Equal( data[:4], []byte("RIFF") ) &&
		bytes.Equal( data[8:12], []byte("WEBP") ):
		return WEBP
	}
	return ""
}

// bmp and tiff are written back as they came, everything else becomes png.
func OutputFormat( format string ) string {
	if c, ok := codecs[ format ]; ok && c.encode != nil {
		return format
	}
	return PNG
}

func decode( data []byte ) (image.Image, string, error) {
	format := DetectFormat( data )
	c, ok := codecs[ format ]
	if !ok {
		return nil, "", ErrUnsupportedFormat
	}
	img, err := c.decode( bytes.NewReader( data ) )
	if err != nil {
		return nil, "", fmt.Errorf("Failed to decode %s image: %w", format, err)
	}
	return img, format, nil
}

/*
 * Load decodes an image file into a pixel buffer. every pixel is converted
 * to non-premultiplied 8-bit RGB, alpha is dropped.
 */
func Load( data []byte ) (*lsb.PixelBuffer, string, error) {
	img, format, err := decode( data )
	if err != nil {
		return nil, "", err
	}
	return FromImage( img ), format, nil
}

func FromImage( img image.Image ) *lsb.PixelBuffer {
	bounds := img.Bounds()
	buf := lsb.NewPixelBuffer( bounds.Dx(), bounds.Dy() )
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert( img.At( x, y ) ).(color.NRGBA)
			buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2] = c.R, c.G, c.B
			i += lsb.Channels
		}
	}
	return buf
}

// ToImage builds an opaque RGBA image with exactly the buffer's channel values.
func ToImage( buf *lsb.PixelBuffer ) *image.RGBA {
	rgbaImg := image.NewRGBA( image.Rect( 0, 0, buf.Width, buf.Height ) )
	for p := 0; p < buf.Width * buf.Height; p++ {
		copy( rgbaImg.Pix[ p * 4: ], buf.Pix[ p * lsb.Channels : (p + 1) * lsb.Channels ] )
		rgbaImg.Pix[ p * 4 + 3 ] = 0xff
	}
	return rgbaImg
}

func Save( buf *lsb.PixelBuffer, format string ) ([]byte, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	c, ok := codecs[ format ]
	if !ok {
		return nil, ErrUnsupportedFormat
	}
	if c.encode == nil {
		return nil, fmt.Errorf("%s: %w", format, ErrLossyFormat)
	}
	out := new(bytes.Buffer)
	if err := c.encode( out, ToImage( buf ) ); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

/*
 * Hide embeds message into the decoy image file and returns the new file.
 * the report is filled in even if the message does not fit.
 */
func Hide( decoy, message []byte, password string ) ([]byte, *Report, error) {
	buf, format, err := Load( decoy )
	if err != nil {
		return nil, nil, err
	}
	report := &Report{
		Format: OutputFormat( format ),
		Capacity: lsb.Capacity( buf.Width, buf.Height ),
		Used: lsb.PayloadSize( message ),
	}
	encoded, err := lsb.Encode( buf, message, password )
	if err != nil {
		return nil, report, err
	}
	data, err := Save( encoded, report.Format )
	if err != nil {
		return nil, report, err
	}
	return data, report, nil
}

func Reveal( decoy []byte, password string ) ([]byte, error) {
	buf, _, err := Load( decoy )
	if err != nil {
		return nil, err
	}
	return lsb.Decode( buf, password )
}

// Inspect only reads the image header.
func Inspect( data []byte ) (*Info, error) {
	format := DetectFormat( data )
	c, ok := codecs[ format ]
	if !ok {
		return nil, ErrUnsupportedFormat
	}
	cfg, err := c.decodeConfig( bytes.NewReader( data ) )
	if err != nil {
		return nil, fmt.Errorf("Failed to read %s header: %w", format, err)
	}
	mode := modeOf( cfg.ColorModel )
	if format == PNG {
		mode = pngMode( data, mode )
	}
	usable := lsb.MessageCapacity( cfg.Width, cfg.Height ) - SafetyMargin
	if usable < 0 {
		usable = 0
	}
	return &Info{
		Width: cfg.Width,
		Height: cfg.Height,
		Format: format,
		Mode: mode,
		Capacity: lsb.Capacity( cfg.Width, cfg.Height ),
		UsableChars: usable,
	}, nil
}

// names follow the usual imaging-library conventions.
func modeOf( m color.Model ) string {
	if _, ok := m.(color.Palette); ok {
		return "P"
	}
	switch m {
	case color.GrayModel, color.Gray16Model:
		return "L"
	case color.CMYKModel:
		return "CMYK"
	case color.RGBAModel, color.NRGBAModel, color.RGBA64Model, color.NRGBA64Model:
		return "RGBA"
	}
	return "RGB"
}
