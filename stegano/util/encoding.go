package util

/*
 * transform data from/to binary form.
 * bits are always ordered from the most significant to the least significant one.
 */
func ToBin( x byte ) []byte {
	result := make( []byte, 8 )
	for i := 0; i < 8; i++ {
		result[i] = (x >> uint(7 - i)) & 1
	}
	return result
}

func FromBin( x []byte ) byte {
	result := byte(0)
	for i := 0; i < 8; i++ {
		result = (result << 1) | (x[i] & 1)
	}
	return result
}

// bit number n of data, counting from the top bit of data[0].
func BitAt( data []byte, n int ) uint8 {
	return (data[ n / 8 ] >> uint(7 - n % 8)) & 1
}

func EncodeToBinary( data []byte ) []byte {
	res := make( []byte, 0, len(data) * 8 )
	for _, b := range data {
		res = append( res, ToBin( b )... )
	}
	return res
}

// incomplete trailing bits are dropped.
func DecodeFromBinary( data []uint8 ) []byte {
	result := make( []byte, 0, len(data) / 8 )
	for i := 0; i + 8 <= len(data); i += 8 {
		result = append( result, FromBin( data[i:i+8] ) )
	}
	return result
}
