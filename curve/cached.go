package curve

import "fmt"

const (
	// noPrefix can never equal tangle>>16, so it marks an empty cache.
	noPrefix = ^uint64(0)

	// sentinelLow is decoded beneath a new prefix to discover its orientation.
	sentinelLow = 0xFF

	baseMask = 0xFFFFFF00
)

// noCopy may be embedded in structs which must not be copied after first use.
// See https://golang.org/issues/8005#issuecomment-190753527 and go vet's
// copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// BytewiseCached decodes Hilbert tangles, remembering the decoded upper 48
// bits of the previous call. A run of tangles sharing those bits, as produced
// by decompressing a sorted index, costs one table lookup per tangle.
//
// A BytewiseCached mutates itself on every Detangle and is not safe for
// concurrent use. Give each goroutine its own, they can all share the same
// *Hilbert.
type BytewiseCached struct {
	noCopy noCopy

	hilbert *Hilbert

	prevHigh     uint64
	baseX, baseY uint32
	swap         bool
	reflect      bool
}

// NewBytewiseCached returns a decoder over the tables of h, primed for tangles
// whose upper 48 bits are zero.
func NewBytewiseCached(h *Hilbert) *BytewiseCached {
	c := &BytewiseCached{hilbert: h, prevHigh: noPrefix}
	c.Detangle(0)
	return c
}

// Hilbert returns the shared tangler the decoder reads from.
func (c *BytewiseCached) Hilbert() *Hilbert { return c.hilbert }

// Reset forgets the cached prefix. The next Detangle rebuilds it.
func (c *BytewiseCached) Reset() {
	c.prevHigh = noPrefix
}

// Entangle is Hilbert.Entangle, it does not touch the cache.
func (c *BytewiseCached) Entangle(x, y uint32) uint64 {
	return c.hilbert.Entangle(x, y)
}

// Detangle returns the same pair as Hilbert.Detangle.
func (c *BytewiseCached) Detangle(tangle uint64) (x, y uint32) {
	p := c.hilbert.detangle[uint16(tangle)]

	if high := tangle >> 16; high != c.prevHigh {
		c.refresh(high)
	}

	xb, yb := p.x, p.y
	if c.reflect {
		xb, yb = 0xFF-xb, 0xFF-yb
	}
	if c.swap {
		xb, yb = yb, xb
	}
	x, y = c.baseX|uint32(xb), c.baseY|uint32(yb)

	if debugChecks {
		checkDetangle(tangle, x, y)
	}
	return x, y
}

// refresh decodes a sentinel under the prefix high and classifies how the
// final byte lane is oriented beneath it. 0xFF in the low chunk decodes to
// (0x0F, 0x00) on an unrotated curve, each of the four orientations maps it
// somewhere distinct.
func (c *BytewiseCached) refresh(high uint64) {
	x, y := c.hilbert.Detangle(high<<16 | sentinelLow)

	switch (bytePair{x: uint8(x), y: uint8(y)}) {
	case bytePair{x: 0x0F, y: 0x00}:
		c.swap, c.reflect = false, false
	case bytePair{x: 0x00, y: 0x0F}:
		c.swap, c.reflect = true, false
	case bytePair{x: 0xF0, y: 0xFF}:
		c.swap, c.reflect = false, true
	case bytePair{x: 0xFF, y: 0xF0}:
		c.swap, c.reflect = true, true
	default:
		// Only a corrupt table gets here, no input can.
		panic(fmt.Sprintf("curve: hilbert sentinel for prefix %#x decoded to (%#02x, %#02x)", high, uint8(x), uint8(y)))
	}

	c.prevHigh = high
	c.baseX, c.baseY = x&baseMask, y&baseMask
}
