package lsb
import (
	"bytes"

	"stegocrypt/stegano/util"
)

/*
 * Unpack reads the lowest bits back in the order Pack wrote them and stops
 * right after the first complete delimiter. the returned bytes exclude it.
 * a buffer without a delimiter gives ErrDelimiterNotFound, never a partial result.
 */
func Unpack( buf *PixelBuffer ) ([]byte, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	result := []byte{}
	bits := make( []uint8, 0, 8 )
	c := newCursor( buf, 0, len(buf.Pix) )
	for {
		_, value, ok := c.next()
		if !ok {
			break
		}
		bits = append( bits, *value & 1 )
		if len(bits) < 8 {
			continue
		}
		result = append( result, util.FromBin( bits ) )
		bits = bits[:0]
		if bytes.HasSuffix( result, delimiter ) {
			return result[ :len(result) - len(delimiter) ], nil
		}
	}
	return nil, ErrDelimiterNotFound
}
