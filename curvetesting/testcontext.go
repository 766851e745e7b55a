package curvetesting

import (
	"math/rand"
	"testing"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log  logger.Logger
	T    *testing.T
	Rand *rand.Rand
	Seed int64
}

type TestConfig struct {
	// We seed the RNG from Seed. It is normal to force it to some fixed value
	// so that the generated data is the same from run to run. Zero picks a
	// seed from the clock, which is logged so a failure can be replayed.
	Seed            int64
	TestLabelPrefix string
	LogLevel        string // can be "" defaults to NOOP
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:    t,
		Seed: cfg.Seed,
	}

	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)

	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	c.Rand = rand.New(rand.NewSource(c.Seed))
	c.Log.Infof("%s: seed %d", t.Name(), c.Seed)

	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// RandomPairs returns n uniformly random coordinate pairs.
func (c *TestContext) RandomPairs(n int) (xs, ys []uint32) {
	xs = make([]uint32, n)
	ys = make([]uint32, n)
	for i := range xs {
		xs[i] = c.Rand.Uint32()
		ys[i] = c.Rand.Uint32()
	}
	return xs, ys
}

// RandomTangles returns n uniformly random 64 bit curve indexes.
func (c *TestContext) RandomTangles(n int) []uint64 {
	tangles := make([]uint64, n)
	for i := range tangles {
		tangles[i] = c.Rand.Uint64()
	}
	return tangles
}

// PrefixRun returns n tangles that all share the upper 48 bits of prefix,
// with random low 16 bits. This is the best case for a cached decoder.
func (c *TestContext) PrefixRun(prefix uint64, n int) []uint64 {
	high := prefix &^ 0xFFFF
	tangles := make([]uint64, n)
	for i := range tangles {
		tangles[i] = high | uint64(c.Rand.Intn(1<<16))
	}
	return tangles
}

// AlternatingPrefixes returns n tangles whose upper 48 bits differ from their
// predecessor on every step. This is the worst case for a cached decoder.
func (c *TestContext) AlternatingPrefixes(n int) []uint64 {
	a := c.Rand.Uint64()
	b := a ^ (uint64(c.Rand.Intn(0xFFFF)+1) << 16)
	tangles := make([]uint64, n)
	for i := range tangles {
		low := uint64(c.Rand.Intn(1 << 16))
		if i%2 == 0 {
			tangles[i] = a&^0xFFFF | low
		} else {
			tangles[i] = b&^0xFFFF | low
		}
	}
	return tangles
}

// IncreasingSequence returns n strictly increasing values starting at or
// above zero. Each step is 1 + rand(maxStep).
func (c *TestContext) IncreasingSequence(n int, maxStep uint64) []uint64 {
	values := make([]uint64, n)
	var cur uint64
	for i := range values {
		step := uint64(1)
		if maxStep > 0 {
			step += c.Rand.Uint64() % maxStep
		}
		if i == 0 {
			step--
		}
		cur += step
		values[i] = cur
	}
	return values
}
