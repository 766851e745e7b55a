package delta

import (
	"fmt"
	"iter"
)

// Compressed is an immutable, compressed sequence of uint64 values.
type Compressed struct {
	tags   []uint8
	widths []Width
	u16s   []uint16
	u32s   []uint32
	u64s   []uint64
}

// From drains seq into a new Compressed.
func From(seq iter.Seq[uint64]) Compressed {
	c := NewCompressor()
	for v := range seq {
		c.Push(v)
	}
	return c.Done()
}

// FromSlice compresses values, sizing the tag stream up front.
func FromSlice(values []uint64) Compressed {
	c := NewCompressorWithCapacity(len(values))
	for _, v := range values {
		c.Push(v)
	}
	return c.Done()
}

// NewCompressed reassembles a Compressed from arrays previously obtained from
// the accessors of one. The arrays are retained, not copied.
func NewCompressed(tags []uint8, widths []Width, u16s []uint16, u32s []uint32, u64s []uint64) (Compressed, error) {
	c := Compressed{tags: tags, widths: widths, u16s: u16s, u32s: u32s, u64s: u64s}
	if err := c.Validate(); err != nil {
		return Compressed{}, err
	}
	return c, nil
}

func (c *Compressed) push(delta uint64) {
	if 0 < delta && delta <= maxTagDelta {
		c.tags = append(c.tags, uint8(delta))
		return
	}

	c.tags = append(c.tags, overflowTag)
	w := widthOf(delta)
	c.widths = append(c.widths, w)
	switch w {
	case Width16:
		c.u16s = append(c.u16s, uint16(delta))
	case Width32:
		c.u32s = append(c.u32s, uint32(delta))
	case Width64:
		c.u64s = append(c.u64s, delta)
	}
}

// Len returns the number of values in the sequence.
func (c Compressed) Len() int { return len(c.tags) }

// The accessors below expose the backing arrays, for callers that persist
// them. They must not be modified.

func (c Compressed) Tags() []uint8   { return c.tags }
func (c Compressed) Widths() []Width { return c.widths }
func (c Compressed) U16s() []uint16  { return c.u16s }
func (c Compressed) U32s() []uint32  { return c.u32s }
func (c Compressed) U64s() []uint64  { return c.u64s }

// EncodedBytes returns the payload size of the five arrays.
func (c Compressed) EncodedBytes() int {
	return len(c.tags) + len(c.widths) + 2*len(c.u16s) + 4*len(c.u32s) + 8*len(c.u64s)
}

// Validate checks that the arrays are consistent with each other.
//
// Decompress does not call it. Decompressing arrays that fail validation is
// undefined.
func (c Compressed) Validate() error {
	zeros := 0
	for _, tag := range c.tags {
		if tag == overflowTag {
			zeros++
		}
	}
	if zeros != len(c.widths) {
		return fmt.Errorf("%w: %d overflow tags, %d widths", ErrInconsistent, zeros, len(c.widths))
	}

	var n16, n32, n64 int
	for i, w := range c.widths {
		switch w {
		case Width16:
			n16++
		case Width32:
			n32++
		case Width64:
			n64++
		default:
			return fmt.Errorf("%w: width %d at %d", ErrInconsistent, w, i)
		}
	}
	if n16 != len(c.u16s) || n32 != len(c.u32s) || n64 != len(c.u64s) {
		return fmt.Errorf(
			"%w: widths name %d/%d/%d overflow entries, streams hold %d/%d/%d",
			ErrInconsistent, n16, n32, n64, len(c.u16s), len(c.u32s), len(c.u64s))
	}
	return nil
}

// Decompress returns a fresh, single pass reader over the sequence.
func (c Compressed) Decompress() *Decompressor {
	return &Decompressor{
		tags:   c.tags,
		widths: c.widths,
		u16s:   c.u16s,
		u32s:   c.u32s,
		u64s:   c.u64s,
	}
}
