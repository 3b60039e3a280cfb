package img
import (
	"io"
	"image"
	"golang.org/x/image/webp"
)

// there is no webp encoder in x/image, read only.
func decodeWEBP( r io.Reader ) (image.Image, error) {
	return webp.Decode( r )
}

func decodeWEBPConfig( r io.Reader ) (image.Config, error) {
	return webp.DecodeConfig( r )
}
