package delta

// Compressor accumulates a sequence into a Compressed.
type Compressor struct {
	current    uint64
	compressed Compressed
	done       bool
}

// NewCompressor returns an empty Compressor.
func NewCompressor() *Compressor {
	return NewCompressorWithCapacity(0)
}

// NewCompressorWithCapacity returns an empty Compressor whose tag stream has
// room for hint values.
func NewCompressorWithCapacity(hint int) *Compressor {
	return &Compressor{
		compressed: Compressed{tags: make([]uint8, 0, hint)},
	}
}

// Push appends next to the sequence. It does not check that the sequence is
// ordered, so a first value of zero, or any other non increasing step, is
// stored via the overflow streams instead of failing.
//
// Push panics with ErrCompressorDone if called after Done.
func (c *Compressor) Push(next uint64) {
	if c.done {
		panic(ErrCompressorDone)
	}
	c.compressed.push(next - c.current)
	c.current = next
}

// Len returns the number of values pushed so far.
func (c *Compressor) Len() int { return c.compressed.Len() }

// Done finalizes the sequence. The Compressor must not be used afterwards.
func (c *Compressor) Done() Compressed {
	c.done = true
	out := c.compressed
	c.compressed = Compressed{}
	return out
}
