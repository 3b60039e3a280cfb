package img
import (
	"io"
	"image"
	"image/jpeg"
)

// a jpeg can be a carrier but the result is always stored as png.
func decodeJPEG( r io.Reader ) (image.Image, error) {
	return jpeg.Decode( r )
}

func decodeJPEGConfig( r io.Reader ) (image.Config, error) {
	return jpeg.DecodeConfig( r )
}
