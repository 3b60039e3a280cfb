package img
import (
	"io"
	"image"
	"golang.org/x/image/bmp"
)

// basically, the same as with png
// just have another package imported
func decodeBMP( r io.Reader ) (image.Image, error) {
	return bmp.Decode( r )
}

func decodeBMPConfig( r io.Reader ) (image.Config, error) {
	return bmp.DecodeConfig( r )
}

func encodeBMP( w io.Writer, m image.Image ) error {
	return bmp.Encode( w, m )
}
