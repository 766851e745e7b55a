package curve

// bitAt returns the bit of v at index i where i=0 is the LSB.
func bitAt(v uint32, i int) uint32 {
	return (v >> i) & 1
}

// quadrant returns the 2 bit Hilbert quadrant code for the bits (rx, ry).
func quadrant(rx, ry uint32) uint64 {
	return uint64((3 * rx) ^ ry)
}
