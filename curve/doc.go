package curve

/*

# Space-filling curve tanglers

This package maps pairs of 32-bit coordinates to a single 64-bit index along a
space-filling curve, and back. We call the combined index a *tangle*; the
forward map is `Entangle` and the inverse is `Detangle`.

It follows the same "functional primitives" style as `go-merklelog/mmr`:

- small, composable functions
- explicit table layouts
- bit and shift arithmetic on fixed width integers
- a burden of knowledge on the caller for hot paths

## Z-order

Z-order (Morton order) interleaves the bits of x and y. x occupies the even bit
positions of the tangle and y the odd ones:

	x = x3 x2 x1 x0     y = y3 y2 y1 y0
	t = y3 x3 y2 x2 y1 x1 y0 x0

Because there is no dependency between bit positions, the 32 bit axes are split
into bytes and each byte pair is interleaved independently with a 65536 entry
table.

## Hilbert order

The Hilbert curve visits the four quadrants of a square in the order

	1 | 2
	--+--
	0 | 3

(y grows upwards) and recurses into each quadrant with a rotated or reflected
copy of itself, so that consecutive indexes are always adjacent cells. The
quadrant code for the bits (rx, ry) is `(3*rx) ^ ry`.

The reference implementation (`ReferenceEntangle`, `ReferenceDetangle`) does
this a bit at a time. `Hilbert` does the same thing a byte at a time: for each
(x byte, y byte) pair a table records the 16 bits of tangle that pair produces
and the orientation the curve is left in for the remaining, lower order, bytes.
The orientation is one of four states

	code  transform of the remaining bits
	   4  none
	  14  swap x and y
	  12  reflect (complement) x and y
	   6  reflect and swap

The code is the 4 bits of tangle immediately below the byte pair, obtained by
entangling the pair with a single probe bit set in the next y byte.

## Cached decoding

Sorted tangles share long prefixes. `BytewiseCached` remembers the decoded
upper 48 bits of the previous tangle, together with the orientation they leave
the final byte in, so that a run of tangles sharing that prefix costs a single
table lookup each. It mutates itself on every call and is not safe for
concurrent use. The `Hilbert` it wraps is immutable and may be shared freely.

## Debug builds

Building with `-tags curvedebug` checks every `Hilbert` entangle and detangle
against the reference implementation and panics on disagreement.

*/
