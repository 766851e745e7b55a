package curve

import "fmt"

// ReferenceEntangle maps (x, y) to its Hilbert index one bit at a time, most
// significant bit first.
//
// It is the correctness oracle for Hilbert and is far too slow for hot paths.
func ReferenceEntangle(x, y uint32) uint64 {
	var tangle uint64
	for logS := AxisBits - 1; logS >= 0; logS-- {
		rx := bitAt(x, logS)
		ry := bitAt(y, logS)
		tangle |= quadrant(rx, ry) << (2 * logS)
		x, y = rotate(logS, x, y, rx, ry)
	}
	return tangle
}

// ReferenceDetangle is the bitwise inverse of ReferenceEntangle.
//
// It rebuilds the pair from the least significant quadrant upwards, applying
// each quadrant's rotation to the bits accumulated so far.
func ReferenceDetangle(tangle uint64) (x, y uint32) {
	for logS := 0; logS < AxisBits; logS++ {
		q := uint32(tangle>>(2*logS)) & 3
		rx := (q >> 1) & 1
		ry := (q ^ rx) & 1
		x, y = rotate(logS, x, y, rx, ry)
		x += rx << logS
		y += ry << logS
	}
	return x, y
}

// rotate reorients the bits of (x, y) below logS for the quadrant (rx, ry).
//
// Only the low logS bits of the result are meaningful, the subtraction is
// allowed to wrap.
func rotate(logS int, x, y, rx, ry uint32) (uint32, uint32) {
	if ry != 0 {
		return x, y
	}
	if rx != 0 {
		off := lowOnes(logS)
		return off - y, off - x
	}
	return y, x
}

func checkEntangle(x, y uint32, tangle uint64) {
	if want := ReferenceEntangle(x, y); want != tangle {
		panic(fmt.Sprintf("curve: entangle(%d, %d) = %#x, reference %#x", x, y, tangle, want))
	}
}

func checkDetangle(tangle uint64, x, y uint32) {
	if wantX, wantY := ReferenceDetangle(tangle); wantX != x || wantY != y {
		panic(fmt.Sprintf("curve: detangle(%#x) = (%d, %d), reference (%d, %d)", tangle, x, y, wantX, wantY))
	}
}
