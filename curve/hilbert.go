package curve

// Hilbert tangles coordinate pairs along a Hilbert curve, a byte pair at a
// time.
//
// The tables are filled by NewHilbert and never written again, a *Hilbert may
// be shared between goroutines.
type Hilbert struct {
	entangle [TableSize]uint16   // entangle[x<<8|y] -> 16 bits of tangle
	detangle [TableSize]bytePair // detangle[16 bits of tangle] -> (x, y)
	rotation [TableSize]Rotation // keyed as entangle
}

// NewHilbert derives the byte pair tables from the reference implementation.
//
// Each pair is entangled as the most significant byte of its axis, with a
// probe bit set at the top of the next y byte. The top 16 bits of the result
// are the pair's tangle, the 4 bits below them identify how the probe was
// rotated and so the orientation of everything beneath the pair.
func NewHilbert() *Hilbert {
	h := &Hilbert{}
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			xb, yb := uint8(x), uint8(y)
			probe := ReferenceEntangle(uint32(xb)<<24, uint32(yb)<<24|1<<23)
			key := pairKey(xb, yb)
			chunk := uint16(probe >> 48)
			h.entangle[key] = chunk
			h.detangle[chunk] = bytePair{x: xb, y: yb}
			h.rotation[key] = Rotation(probe>>rotationShift) & 0x0F
		}
	}
	return h
}

// Rotation returns the orientation the byte pair (x, y) leaves the curve in.
func (h *Hilbert) Rotation(x, y uint8) Rotation {
	return h.rotation[pairKey(x, y)]
}

// Entangle consumes the byte lanes of x and y from the most significant down.
// After each lane the remaining coordinate bits are reoriented so the next
// lane can be looked up as if it were the top of a fresh curve.
func (h *Hilbert) Entangle(x, y uint32) uint64 {
	x0, y0 := x, y

	var tangle uint64
	for lane := axisBytes - 1; lane >= 0; lane-- {
		key := pairKey(byteAt(x, lane), byteAt(y, lane))
		tangle = tangle<<16 | uint64(h.entangle[key])

		rot := h.rotation[key]
		if rot.Swaps() {
			x, y = y, x
		}
		if rot.Reflects() {
			x, y = ^x, ^y
		}
	}

	if debugChecks {
		checkEntangle(x0, y0, tangle)
	}
	return tangle
}

// Detangle consumes the tangle 16 bits at a time from the least significant
// end. Each recovered byte pair reorients the bits already decoded beneath it
// before it is placed above them.
func (h *Hilbert) Detangle(tangle uint64) (x, y uint32) {
	for lane := 0; lane < axisBytes; lane++ {
		p := h.detangle[chunkAt(tangle, lane)]

		rot := h.rotation[pairKey(p.x, p.y)]
		if rot.Reflects() {
			ones := lowOnes(8 * lane)
			x, y = ones-x, ones-y
		}
		if rot.Swaps() {
			x, y = y, x
		}

		x |= uint32(p.x) << (8 * lane)
		y |= uint32(p.y) << (8 * lane)
	}

	if debugChecks {
		checkDetangle(tangle, x, y)
	}
	return x, y
}
