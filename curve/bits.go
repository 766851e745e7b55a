package curve

// byteAt returns byte lane i of v, lane 0 being the least significant.
func byteAt(v uint32, lane int) uint8 {
	return uint8(v >> (8 * lane))
}

// chunkAt returns 16 bit lane i of a tangle, lane 0 being the least significant.
func chunkAt(tangle uint64, lane int) uint16 {
	return uint16(tangle >> (16 * lane))
}

// pairKey packs an (x byte, y byte) pair into a table index.
func pairKey(x, y uint8) uint16 {
	return uint16(x)<<8 | uint16(y)
}

// lowOnes returns a value with the low n bits set. n may be 0 through 32.
func lowOnes(n int) uint32 {
	return uint32(uint64(1)<<n - 1)
}
