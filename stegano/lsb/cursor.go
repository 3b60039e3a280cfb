package lsb

/*
 * cursor walks the channel values of a buffer in embedding order:
 * pixels row-major (row 0 left to right, then row 1, ...), inside a pixel
 * R, then G, then B. bit number k of the payload always lands in the k-th
 * value visited. both Pack and Unpack go through here, so changing the
 * order in one place changes it for both.
 */
type cursor struct {
	buf	*PixelBuffer
	pos	int
	end	int
}

// newCursor visits bits [from, to) of the buffer.
func newCursor( buf *PixelBuffer, from, to int ) *cursor {
	total := buf.Width * buf.Height * Channels
	if to > total {
		to = total
	}
	if from < 0 {
		from = 0
	}
	return &cursor{ buf, from, to }
}

func(c *cursor) next() (int, *uint8, bool) {
	if c.pos >= c.end {
		return c.pos, nil, false
	}
	pixel, channel := c.pos / Channels, c.pos % Channels
	x, y := pixel % c.buf.Width, pixel / c.buf.Width
	n := c.pos
	c.pos++
	return n, &c.buf.Pix[ (y * c.buf.Width + x) * Channels + channel ], true
}
