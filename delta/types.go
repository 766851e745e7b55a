package delta

import "errors"

// Width names the overflow stream a delta was stored in. It is a closed set,
// the discriminator stream holds exactly one of these per zero tag.
type Width uint8

const (
	Width16 Width = iota + 1
	Width32
	Width64
)

const (
	// maxTagDelta is the largest delta stored directly in a tag byte.
	maxTagDelta = 1<<8 - 1

	// overflowTag marks a delta held in an overflow stream.
	overflowTag = 0
)

var (
	ErrInconsistent   = errors.New("delta: compressed arrays are inconsistent")
	ErrCompressorDone = errors.New("delta: compressor used after Done")
)

// widthOf returns the narrowest overflow stream that holds delta.
func widthOf(delta uint64) Width {
	switch {
	case delta < 1<<16:
		return Width16
	case delta < 1<<32:
		return Width32
	default:
		return Width64
	}
}

// Bytes returns the storage width of one overflow entry.
func (w Width) Bytes() int {
	switch w {
	case Width16:
		return 2
	case Width32:
		return 4
	case Width64:
		return 8
	default:
		return 0
	}
}

func (w Width) String() string {
	switch w {
	case Width16:
		return "u16"
	case Width32:
		return "u32"
	case Width64:
		return "u64"
	default:
		return "invalid"
	}
}
