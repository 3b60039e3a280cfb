package lsb

// Capacity is the amount of payload bytes a width x height carrier can host,
// one bit per channel.
func Capacity( width, height int ) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return width * height * Channels / 8
}

// MessageCapacity is the longest message which still fits next to the delimiter.
func MessageCapacity( width, height int ) int {
	c := Capacity( width, height ) - len(Delimiter)
	if c < 0 {
		return 0
	}
	return c
}

func PayloadSize( message []byte ) int {
	return len(message) + len(Delimiter)
}
