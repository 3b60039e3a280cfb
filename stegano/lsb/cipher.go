package lsb

/*
 * additive substitution over the whole byte range. it only obfuscates the
 * message: there is no integrity check, a wrong key yields garbage.
 */

// KeyFromPassword sums the UTF-8 bytes of password modulo 256.
// An empty password gives 0, which turns the cipher into the identity.
func KeyFromPassword( password string ) uint8 {
	var key uint8
	for i := 0; i < len(password); i++ {
		key += password[i]
	}
	return key
}

func Apply( data []byte, key uint8 ) []byte {
	return shift( data, key )
}

func Invert( data []byte, key uint8 ) []byte {
	return shift( data, -key )
}

// uint8 arithmetic wraps, which is exactly mod 256.
func shift( data []byte, key uint8 ) []byte {
	out := make( []byte, len(data) )
	for i, b := range data {
		out[i] = b + key
	}
	return out
}
