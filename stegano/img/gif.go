package img
import (
	"io"
	"image"
	"image/gif"
)

/*
 * gif is read only: writing it back means quantizing to a palette, which
 * spoils the low bits. only the first frame is used as a carrier.
 */
func decodeGIF( r io.Reader ) (image.Image, error) {
	return gif.Decode( r )
}

func decodeGIFConfig( r io.Reader ) (image.Config, error) {
	return gif.DecodeConfig( r )
}
