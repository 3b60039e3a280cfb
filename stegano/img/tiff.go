package img
import (
	"io"
	"image"
	"golang.org/x/image/tiff"
)

func decodeTIFF( r io.Reader ) (image.Image, error) {
	return tiff.Decode( r )
}

func decodeTIFFConfig( r io.Reader ) (image.Config, error) {
	return tiff.DecodeConfig( r )
}

// deflate is lossless, predictor stays off so the low bits are stored as is.
func encodeTIFF( w io.Writer, m image.Image ) error {
	return tiff.Encode( w, m, &tiff.Options{ Compression: tiff.Deflate } )
}
