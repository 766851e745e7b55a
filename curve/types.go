package curve

const (
	// AxisBits is the fixed width of each coordinate axis.
	AxisBits = 32

	// TableSize is the number of entries in each byte pair lookup table.
	TableSize = 1 << 16

	// axisBytes is the number of byte lanes per axis.
	axisBytes = AxisBits / 8
)

// Tangler maps between coordinate pairs and curve indexes. Entangle and
// Detangle are mutual inverses over the full 32x32 bit domain.
type Tangler interface {
	Entangle(x, y uint32) uint64
	Detangle(tangle uint64) (x, y uint32)
}

// bytePair is the (x byte, y byte) value recovered from a 16 bit tangle chunk.
type bytePair struct {
	x, y uint8
}

// Rotation is the orientation transform a Hilbert byte pair leaves the curve in
// for the bytes below it.
type Rotation uint8

const (
	RotationNone        Rotation = 4
	RotationSwap        Rotation = 14
	RotationReflect     Rotation = 12
	RotationReflectSwap Rotation = 6

	rotationSwapBit Rotation = 0x2
)

// rotationShift is the position of the 4 rotation bits in a probe tangle.
const rotationShift = 44

// Swaps reports whether the remaining x and y bits trade places.
func (r Rotation) Swaps() bool { return r&rotationSwapBit != 0 }

// Reflects reports whether the remaining x and y bits are complemented.
func (r Rotation) Reflects() bool { return r == RotationReflect || r == RotationReflectSwap }

func (r Rotation) String() string {
	switch r {
	case RotationNone:
		return "none"
	case RotationSwap:
		return "swap"
	case RotationReflect:
		return "reflect"
	case RotationReflectSwap:
		return "reflect+swap"
	default:
		return "invalid"
	}
}
