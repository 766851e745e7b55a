package delta

import (
	"fmt"
	"iter"
)

// Decompressor yields the values of a Compressed in order. It is forward only
// and can not be restarted, call Compressed.Decompress again for a new pass.
type Decompressor struct {
	current uint64

	tags   []uint8
	widths []Width
	u16s   []uint16
	u32s   []uint32
	u64s   []uint64
}

// Next returns the next value, or false once the sequence is exhausted.
func (d *Decompressor) Next() (uint64, bool) {
	if len(d.tags) == 0 {
		return 0, false
	}
	tag := d.tags[0]
	d.tags = d.tags[1:]

	if tag != overflowTag {
		d.current += uint64(tag)
		return d.current, true
	}

	w := d.widths[0]
	d.widths = d.widths[1:]
	switch w {
	case Width16:
		d.current += uint64(d.u16s[0])
		d.u16s = d.u16s[1:]
	case Width32:
		d.current += uint64(d.u32s[0])
		d.u32s = d.u32s[1:]
	case Width64:
		d.current += d.u64s[0]
		d.u64s = d.u64s[1:]
	default:
		panic(fmt.Sprintf("delta: invalid overflow width %d", w))
	}
	return d.current, true
}

// Remaining returns exactly how many values Next will still produce.
func (d *Decompressor) Remaining() int { return len(d.tags) }

// All yields the remaining values. Breaking out of the loop leaves the
// Decompressor positioned after the last value yielded.
func (d *Decompressor) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for {
			v, ok := d.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
