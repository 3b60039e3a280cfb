package lsb
import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"stegocrypt/stegano/util"
)

const (
	// payloads with fewer bits are packed on the calling goroutine.
	ParallelThreshold = 1 << 16
	// rows per parallel batch.
	BatchRows = 64
)

/*
 * Pack writes every bit of payload, msb first, into the lowest bit of
 * consecutive channel values. the upper 7 bits of each value are kept and
 * values past the end of the payload are not touched.
 * the capacity is checked before the first write.
 */
func Pack( buf *PixelBuffer, payload []byte ) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	bits := len(payload) * 8
	if bits > len(buf.Pix) {
		return &CapacityError{
			Capacity: Capacity( buf.Width, buf.Height ),
			Required: len(payload),
		}
	}
	if bits < ParallelThreshold {
		packRange( buf, payload, 0, bits )
		return nil
	}

	// every batch owns a disjoint range of channel values, so the global
	// bit order does not depend on scheduling.
	step := buf.Width * Channels * BatchRows
	var g errgroup.Group
	g.SetLimit( runtime.GOMAXPROCS(0) )
	for start := 0; start < bits; start += step {
		end := min( start + step, bits )
		g.Go(func() error {
			packRange( buf, payload, start, end )
			return nil
		})
	}
	return g.Wait()
}

func packRange( buf *PixelBuffer, payload []byte, from, to int ) {
	c := newCursor( buf, from, to )
	for {
		n, value, ok := c.next()
		if !ok {
			return
		}
		*value = (*value & 0xfe) | util.BitAt( payload, n )
	}
}
