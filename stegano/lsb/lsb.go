/*
 * Package lsb hides a byte message in the least significant bits of the
 * R, G and B channels of a pixel buffer and gets it back.
 *
 * The message is optionally shifted by a password-derived key, followed by
 * a plain Delimiter and written one bit per channel. Decoding stops at the
 * first delimiter, so a ciphered message which contains it is cut short.
 * The buffer has to be stored losslessly after encoding.
 */
package lsb

const (
	Delimiter = "<<END>>"
)

var (
	delimiter = []byte(Delimiter)
)

/*
 * Encode returns a copy of buf carrying message. buf itself is never modified,
 * on error nothing is returned.
 */
func Encode( buf *PixelBuffer, message []byte, password string ) (*PixelBuffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	payload := Apply( message, KeyFromPassword( password ) )
	payload = append( payload, delimiter... )

	capacity := Capacity( buf.Width, buf.Height )
	if len(payload) > capacity {
		return nil, &CapacityError{ Capacity: capacity, Required: len(payload) }
	}

	out := buf.Clone()
	if err := Pack( out, payload ); err != nil {
		return nil, err
	}
	return out, nil
}

// Decode never detects a wrong password: the delimiter is found anyway and
// the message comes back garbled.
func Decode( buf *PixelBuffer, password string ) ([]byte, error) {
	hidden, err := Unpack( buf )
	if err != nil {
		return nil, err
	}
	return Invert( hidden, KeyFromPassword( password ) ), nil
}
