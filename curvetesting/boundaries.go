package curvetesting

import "math"

// BoundaryCoords returns axis values around every byte lane boundary, where a
// byte wise tangler carries state from one lane to the next.
func BoundaryCoords() []uint32 {
	coords := []uint32{0, 1, 2, 3, 0x7F, 0x80}
	for lane := 1; lane < 4; lane++ {
		b := uint32(1) << (8 * lane)
		coords = append(coords, b-2, b-1, b, b+1, b|b>>1)
	}
	return append(coords,
		0x55555555, 0xAAAAAAAA, 0x0F0F0F0F, 0xF0F0F0F0,
		0x7FFFFFFF, 0x80000000, math.MaxUint32-1, math.MaxUint32)
}

// BoundaryTangles returns curve indexes around every 16 bit chunk boundary.
func BoundaryTangles() []uint64 {
	tangles := []uint64{0, 1, 2, 3, 0xFF, 0x100}
	for lane := 1; lane < 4; lane++ {
		b := uint64(1) << (16 * lane)
		tangles = append(tangles, b-2, b-1, b, b+1, b|b>>1)
	}
	return append(tangles,
		0x5555555555555555, 0xAAAAAAAAAAAAAAAA,
		0x7FFFFFFFFFFFFFFF, 0x8000000000000000, math.MaxUint64-1, math.MaxUint64)
}
