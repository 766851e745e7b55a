package curve

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytewiseCachedPrimed(t *testing.T) {
	h := NewHilbert()
	c := NewBytewiseCached(h)
	require.Equal(t, uint64(0), c.prevHigh)
	require.Same(t, h, c.Hilbert())

	x, y := c.Detangle(255)
	require.Equal(t, uint32(15), x)
	require.Equal(t, uint32(0), y)
}

func TestBytewiseCachedLowRange(t *testing.T) {
	h := NewHilbert()
	c := NewBytewiseCached(h)
	for i := uint64(0); i < 1<<20; i++ {
		x, y := c.Detangle(i)
		wantX, wantY := h.Detangle(i)
		if x != wantX || y != wantY {
			t.Fatalf("Detangle(%#x) = (%d, %d), want (%d, %d)", i, x, y, wantX, wantY)
		}
	}
}

func TestBytewiseCachedAllOrientations(t *testing.T) {
	h := NewHilbert()
	c := NewBytewiseCached(h)

	seen := map[[2]bool]bool{}
	for high := uint64(0); high < 1<<12; high++ {
		tangle := high<<16 | 0x1234
		x, y := c.Detangle(tangle)
		wantX, wantY := h.Detangle(tangle)
		require.Equal(t, wantX, x)
		require.Equal(t, wantY, y)
		seen[[2]bool{c.swap, c.reflect}] = true
	}
	require.Len(t, seen, 4)
}

func TestBytewiseCachedReset(t *testing.T) {
	h := NewHilbert()
	c := NewBytewiseCached(h)

	tangle := uint64(0xDEADBEEFCAFEF00D)
	x1, y1 := c.Detangle(tangle)
	c.Reset()
	require.Equal(t, noPrefix, c.prevHigh)

	x2, y2 := c.Detangle(tangle)
	require.Equal(t, x1, x2)
	require.Equal(t, y1, y2)
	require.Equal(t, tangle>>16, c.prevHigh)

	require.Equal(t, h.Entangle(x1, y1), c.Entangle(x1, y1))
}

func TestBytewiseCachedPanicsOnCorruptTable(t *testing.T) {
	bad := *NewHilbert()
	// the sentinel chunk now decodes to a pair no orientation can produce
	bad.detangle[sentinelLow] = bytePair{x: 1, y: 1}

	require.Panics(t, func() { NewBytewiseCached(&bad) })
}

func TestBytewiseCachedPerGoroutine(t *testing.T) {
	h := NewHilbert()

	var wg sync.WaitGroup
	errs := make(chan uint64, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			c := NewBytewiseCached(h)
			base := uint64(g) << 40
			for i := uint64(0); i < 1<<14; i++ {
				tangle := base | i*37
				x, y := c.Detangle(tangle)
				if h.Entangle(x, y) != tangle {
					errs <- tangle
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for tangle := range errs {
		t.Errorf("tangle %#x did not round trip", tangle)
	}
}
