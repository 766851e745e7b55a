package curve

// ZOrder tangles coordinate pairs by interleaving their bits.
//
// The tables are filled by NewZOrder and never written again, a *ZOrder may be
// shared between goroutines.
type ZOrder struct {
	entangle [TableSize]uint16   // entangle[x<<8|y] -> interleaved bits
	detangle [TableSize]bytePair // detangle[interleaved] -> (x, y)
}

// NewZOrder builds the interleave tables for every byte pair.
func NewZOrder() *ZOrder {
	z := &ZOrder{}
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			xb, yb := uint8(x), uint8(y)
			t := interleave(xb, yb)
			z.entangle[pairKey(xb, yb)] = t
			z.detangle[t] = bytePair{x: xb, y: yb}
		}
	}
	return z
}

// interleave puts the bits of x on the even positions and the bits of y on
// the odd positions.
func interleave(x, y uint8) uint16 {
	var z uint16
	for b := 0; b < 8; b++ {
		z |= uint16((x>>b)&1) << (2 * b)
		z |= uint16((y>>b)&1) << (2*b + 1)
	}
	return z
}

// Entangle interleaves each byte lane of x and y independently.
func (z *ZOrder) Entangle(x, y uint32) uint64 {
	var tangle uint64
	for lane := 0; lane < axisBytes; lane++ {
		t := z.entangle[pairKey(byteAt(x, lane), byteAt(y, lane))]
		tangle |= uint64(t) << (16 * lane)
	}
	return tangle
}

// Detangle splits the tangle into 16 bit chunks and de-interleaves each.
func (z *ZOrder) Detangle(tangle uint64) (x, y uint32) {
	for lane := 0; lane < axisBytes; lane++ {
		p := z.detangle[chunkAt(tangle, lane)]
		x |= uint32(p.x) << (8 * lane)
		y |= uint32(p.y) << (8 * lane)
	}
	return x, y
}
