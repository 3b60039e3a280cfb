package img
import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"stegocrypt/stegano/lsb"
)

func testImage( w, h int ) *image.RGBA {
	m := image.NewRGBA( image.Rect( 0, 0, w, h ) )
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set( x, y, color.RGBA{ uint8(x * 7), uint8(y * 13), uint8(x + y), 0xff } )
		}
	}
	return m
}

func encodeAs( t *testing.T, m image.Image, format string ) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	var err error
	switch format {
	case PNG:
		err = png.Encode( buf, m )
	case BMP:
		err = bmp.Encode( buf, m )
	case TIFF:
		err = tiff.Encode( buf, m, nil )
	case GIF:
		err = gif.Encode( buf, m, nil )
	case JPEG:
		err = jpeg.Encode( buf, m, nil )
	}
	if err != nil {
		t.Fatalf("Failed to create %s test image: %v", format, err)
	}
	return buf.Bytes()
}

func TestDetectFormat( t *testing.T ) {
	m := testImage( 4, 4 )
	for _, format := range []string{ PNG, BMP, TIFF, GIF, JPEG } {
		if f := DetectFormat( encodeAs( t, m, format ) ); f != format {
			t.Errorf("Wrong format detected: %q != %q", f, format)
		}
	}
	if f := DetectFormat( []byte("RIFF\x00\x00\x00\x00WEBPVP8 ") ); f != WEBP {
		t.Errorf("Wrong format detected for webp: %q", f)
	}
	for _, data := range [][]byte{ nil, []byte{}, []byte{ 0x89 }, []byte("B"), []byte("not an image") } {
		if f := DetectFormat( data ); f != "" {
			t.Errorf("Detected %q for %v", f, data)
		}
	}
}

func TestHideReveal( t *testing.T ) {
	tests := [][]byte{
		nil,
		[]byte{},
		[]byte("Hello world!"),
		bytes.Repeat( []byte("a"), 1000 ),
	}
	carriers := map[string]string{
		PNG: PNG,
		BMP: BMP,
		TIFF: TIFF,
		GIF: PNG,
		JPEG: PNG,
	}
	m := testImage( 120, 80 )

	for format, outFormat := range carriers {
		decoy := encodeAs( t, m, format )
		for _, data := range tests {
			for _, password := range []string{ "", "hunter2" } {
				enc, report, err := Hide( decoy, data, password )
				if err != nil {
					t.Errorf("Failed to encode data into %s: %v", format, err)
					continue
				}
				if report.Format != outFormat || DetectFormat( enc ) != outFormat {
					t.Errorf("Wrong output format for %s: %q", format, report.Format)
				}
				if report.Used != len(data) + len(lsb.Delimiter) || report.Capacity != 120 * 80 * 3 / 8 {
					t.Errorf("Wrong report: %+v", *report)
				}
				dec, err := Reveal( enc, password )
				if err != nil {
					t.Errorf("Failed to extract data from %s: %v", format, err)
				} else if bytes.Equal( data, dec ) == false {
					t.Errorf("Steganography spoiled the data (%s). %v != %v", format, data, dec)
				}
			}
		}
	}
}

func TestMinimalDeviation( t *testing.T ) {
	decoy := encodeAs( t, testImage( 32, 32 ), PNG )
	enc, _, err := Hide( decoy, []byte("nobody can see this"), "pw" )
	if err != nil {
		t.Fatalf("Failed to encode data: %v", err)
	}
	before, _, _ := Load( decoy )
	after, _, _ := Load( enc )
	for i := range before.Pix {
		if before.Pix[i] >> 1 != after.Pix[i] >> 1 {
			t.Fatalf("Channel value %d changed more than its lowest bit: %d -> %d",
				i, before.Pix[i], after.Pix[i])
		}
	}
}

func TestTooSmall( t *testing.T ) {
	decoy := encodeAs( t, testImage( 2, 2 ), PNG )
	_, report, err := Hide( decoy, []byte("a"), "" )
	if err == nil {
		t.Fatalf("Hid a message in a 2x2 image")
	}
	var ce *lsb.CapacityError
	if !errors.As( err, &ce ) {
		t.Errorf("Unexpected error type: %v", err)
	}
	if report == nil || report.Capacity != 1 || report.Used != 8 {
		t.Errorf("Wrong report: %+v", report)
	}
}

func TestNothingHidden( t *testing.T ) {
	_, err := Reveal( encodeAs( t, testImage( 50, 50 ), PNG ), "" )
	if err != lsb.ErrDelimiterNotFound {
		t.Errorf("Expected ErrDelimiterNotFound, got %v", err)
	}
}

func TestUnsupported( t *testing.T ) {
	if _, _, err := Hide( []byte("not an image"), []byte("a"), "" ); err != ErrUnsupportedFormat {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := Reveal( nil, "" ); err != ErrUnsupportedFormat {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := Inspect( []byte{ 0xff, 0xd8 } ); err != ErrUnsupportedFormat {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	// a valid magic with a broken body
	if _, _, err := Load( []byte("\x89PNG\r\n\x1a\nbroken") ); err == nil {
		t.Errorf("Loaded a broken png")
	}
}

func TestSave( t *testing.T ) {
	buf := FromImage( testImage( 10, 10 ) )
	for _, format := range []string{ GIF, JPEG, WEBP } {
		if _, err := Save( buf, format ); errors.Is( err, ErrLossyFormat ) == false {
			t.Errorf("Saved a buffer as %s: %v", format, err)
		}
	}
	if _, err := Save( buf, "xcf" ); err != ErrUnsupportedFormat {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := Save( lsb.NewPixelBuffer( 0, 0 ), PNG ); errors.Is( err, lsb.ErrInvalidBuffer ) == false {
		t.Errorf("Saved an empty buffer: %v", err)
	}
	for _, format := range []string{ PNG, BMP, TIFF } {
		data, err := Save( buf, format )
		if err != nil {
			t.Errorf("Failed to save %s: %v", format, err)
			continue
		}
		loaded, f, err := Load( data )
		if err != nil || f != format || bytes.Equal( loaded.Pix, buf.Pix ) == false {
			t.Errorf("%s did not keep the pixels: %v", format, err)
		}
	}
}

func TestFromImage( t *testing.T ) {
	// semi-transparent pixels lose alpha but keep their colour
	m := image.NewNRGBA( image.Rect( 5, 5, 7, 6 ) )
	m.SetNRGBA( 5, 5, color.NRGBA{ 200, 100, 50, 128 } )
	m.SetNRGBA( 6, 5, color.NRGBA{ 1, 2, 3, 255 } )
	buf := FromImage( m )
	if buf.Width != 2 || buf.Height != 1 {
		t.Fatalf("Wrong size: %dx%d", buf.Width, buf.Height)
	}
	if bytes.Equal( buf.Pix, []uint8{ 200, 100, 50, 1, 2, 3 } ) == false {
		t.Errorf("Wrong pixels: %v", buf.Pix)
	}
}

func TestInspect( t *testing.T ) {
	gray := image.NewGray( image.Rect( 0, 0, 100, 100 ) )
	paletted := image.NewPaletted( image.Rect( 0, 0, 100, 100 ), color.Palette{ color.Black, color.White } )

	tests := []struct{
		data	[]byte
		format	string
		mode	string
	}{
		{ encodeAs( t, testImage( 100, 100 ), PNG ), PNG, "RGB" },
		{ encodeAs( t, gray, PNG ), PNG, "L" },
		{ encodeAs( t, paletted, PNG ), PNG, "P" },
		{ encodeAs( t, paletted, GIF ), GIF, "P" },
		{ encodeAs( t, testImage( 100, 100 ), JPEG ), JPEG, "RGB" },
	}
	for _, tt := range tests {
		info, err := Inspect( tt.data )
		if err != nil {
			t.Errorf("Failed to inspect %s: %v", tt.format, err)
			continue
		}
		if info.Format != tt.format || info.Mode != tt.mode {
			t.Errorf("Wrong format/mode: %s/%s != %s/%s", info.Format, info.Mode, tt.format, tt.mode)
		}
		if info.Width != 100 || info.Height != 100 || info.Capacity != 3750 || info.UsableChars != 3733 {
			t.Errorf("Wrong info: %+v", *info)
		}
	}

	info, err := Inspect( encodeAs( t, testImage( 2, 2 ), PNG ) )
	if err != nil || info.UsableChars != 0 {
		t.Errorf("Wrong usable chars for a tiny image: %+v, %v", info, err)
	}
}

func TestPreview( t *testing.T ) {
	tests := []struct{
		w, h		int
		pw, ph		int
	}{
		{ 800, 600, 400, 300 },
		{ 1000, 300, 400, 120 },
		{ 100, 50, 100, 50 },
	}
	for _, tt := range tests {
		thumb, err := Preview( encodeAs( t, testImage( tt.w, tt.h ), PNG ), PreviewWidth, PreviewHeight, PreviewQuality )
		if err != nil {
			t.Errorf("Failed to build preview: %v", err)
			continue
		}
		cfg, err := jpeg.DecodeConfig( bytes.NewReader( thumb ) )
		if err != nil {
			t.Errorf("Preview is not a jpeg: %v", err)
		} else if cfg.Width != tt.pw || cfg.Height != tt.ph {
			t.Errorf("Wrong preview size for %dx%d: %dx%d", tt.w, tt.h, cfg.Width, cfg.Height)
		}
	}
}
