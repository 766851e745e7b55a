package delta

/*

# Delta compression for increasing uint64 sequences

This package compresses strictly increasing sequences of uint64 values, such as
a sorted run of curve indexes, by storing the difference between each value
and its predecessor (the first value is differenced against 0).

We optimistically assume the difference fits in a byte. A zero tag byte means
it did not (or that the difference really was zero), and the next entry of a
discriminator stream says which of three overflow streams holds it:

	tags    [ 1 | 255 | 0 | 7 | 0 | 0 | ...]     one per value
	widths  [ 16 | 64 | 16 | ...]                 one per zero tag
	u16s    [ 300 | 0 | ...]
	u32s    [ ... ]
	u64s    [ 1<<40 | ...]

so that

	count(tags == 0) == len(widths) == len(u16s) + len(u32s) + len(u64s)

The five arrays are kept separate, rather than interleaved in one byte stream,
so each is a plain typed slice that decodes without byte shuffling.

## Ordering is not checked

Push computes `next - current` with wrapping arithmetic and never rejects a
value. A decreasing step encodes as a huge wrapped delta in the 64 bit stream
and, because decompression adds with the same wrapping, still round trips.

*/
