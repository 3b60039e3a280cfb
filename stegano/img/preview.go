package img
import (
	"bytes"
	"image"
	"image/jpeg"

	"github.com/disintegration/gift"
)

const (
	PreviewWidth = 400
	PreviewHeight = 300
	PreviewQuality = 80
)

/*
 * Preview renders a jpeg thumbnail which fits into maxWidth x maxHeight.
 * smaller images keep their size. the thumbnail is only meant for display,
 * it never carries hidden data.
 */
func Preview( data []byte, maxWidth, maxHeight, quality int ) ([]byte, error) {
	buf, _, err := Load( data )
	if err != nil {
		return nil, err
	}
	src := ToImage( buf )
	if maxWidth <= 0 || maxHeight <= 0 {
		maxWidth, maxHeight = PreviewWidth, PreviewHeight
	}

	g := gift.New()
	if buf.Width > maxWidth || buf.Height > maxHeight {
		g.Add( gift.ResizeToFit( maxWidth, maxHeight, gift.LanczosResampling ) )
	}
	dst := image.NewRGBA( g.Bounds( src.Bounds() ) )
	g.Draw( dst, src )

	if quality <= 0 || quality > 100 {
		quality = PreviewQuality
	}
	out := new(bytes.Buffer)
	if err := jpeg.Encode( out, dst, &jpeg.Options{ Quality: quality } ); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
