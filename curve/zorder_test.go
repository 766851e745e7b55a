package curve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// spread moves the low 32 bits of v onto the even bit positions.
func spread(v uint64) uint64 {
	v &= 0x00000000FFFFFFFF
	v = (v | v<<16) & 0x0000FFFF0000FFFF
	v = (v | v<<8) & 0x00FF00FF00FF00FF
	v = (v | v<<4) & 0x0F0F0F0F0F0F0F0F
	v = (v | v<<2) & 0x3333333333333333
	v = (v | v<<1) & 0x5555555555555555
	return v
}

func TestInterleave(t *testing.T) {
	require.Equal(t, uint16(0), interleave(0, 0))
	require.Equal(t, uint16(0x5555), interleave(0xFF, 0))
	require.Equal(t, uint16(0xAAAA), interleave(0, 0xFF))
	require.Equal(t, uint16(0xFFFF), interleave(0xFF, 0xFF))
	require.Equal(t, uint16(0b1001), interleave(0b01, 0b10))
}

func TestZOrderKnownValues(t *testing.T) {
	z := NewZOrder()
	tests := []struct {
		name string
		x, y uint32
		want uint64
	}{
		{"origin", 0, 0, 0},
		{"x=1", 1, 0, 1},
		{"y=1", 0, 1, 2},
		{"x=y=1", 1, 1, 3},
		{"x all ones", ^uint32(0), 0, 0x5555555555555555},
		{"y all ones", 0, ^uint32(0), 0xAAAAAAAAAAAAAAAA},
		{"x lane boundary", 0x100, 0, 0x10000},
		{"y lane boundary", 0, 0x100, 0x20000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, z.Entangle(tt.x, tt.y))
			x, y := z.Detangle(tt.want)
			require.Equal(t, tt.x, x)
			require.Equal(t, tt.y, y)
		})
	}
}

func TestZOrderMatchesMaskInterleave(t *testing.T) {
	z := NewZOrder()
	for i := uint64(0); i < 1<<16; i++ {
		x := uint32(i*0x9E3779B1) ^ uint32(i)
		y := uint32(i*0x85EBCA6B) + uint32(i<<20)
		want := spread(uint64(x)) | spread(uint64(y))<<1
		require.Equal(t, want, z.Entangle(x, y))
	}
}

func TestZOrderLowRangeBijection(t *testing.T) {
	z := NewZOrder()
	for i := uint64(0); i < 1<<20; i++ {
		require.Equal(t, i, z.Entangle(z.Detangle(i)))
	}
	for x := uint32(0); x < 1<<10; x++ {
		for y := uint32(0); y < 1<<10; y++ {
			gotX, gotY := z.Detangle(z.Entangle(x, y))
			if gotX != x || gotY != y {
				t.Fatalf("(%d, %d) round tripped to (%d, %d)", x, y, gotX, gotY)
			}
		}
	}
}
