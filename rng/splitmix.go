package rng

// SplitMix is the splitmix64 generator: a golden-ratio Weyl counter pushed
// through an avalanche finalizer. One word of state, full 2^64 period, and
// trivially invertible and skippable since the counter is plain addition.
// It is the usual choice for expanding seeds for bigger generators and for
// cheap throwaway randomness.
type SplitMix struct {
	state uint64
}

// NewSplitMix returns a generator seeded from the entropy pool.
func NewSplitMix() *SplitMix {
	return &SplitMix{state: MakeSeed()}
}

// NewSplitMixSeed returns a generator with the given counter value.
func NewSplitMixSeed(seed uint64) *SplitMix {
	return &SplitMix{state: seed}
}

// Seed sets the counter directly. Any value is valid.
func (g *SplitMix) Seed(seed uint64) { g.state = seed }

// Uint64 advances the counter and returns the mixed output.
func (g *SplitMix) Uint64() uint64 {
	g.state += goldenGamma
	return mix64(g.state)
}

// Prev undoes the most recent forward step and returns the value that step
// produced.
func (g *SplitMix) Prev() uint64 {
	out := mix64(g.state)
	g.state -= goldenGamma
	return out
}

// Skip jumps ahead n steps in constant time.
func (g *SplitMix) Skip(n uint64) { g.state += n * goldenGamma }

// WordCount returns 1: the counter is the whole state.
func (g *SplitMix) WordCount() int { return 1 }

// Word returns the counter for any index.
func (g *SplitMix) Word(int) uint64 { return g.state }

// SetWord writes the counter for any index.
func (g *SplitMix) SetWord(_ int, v uint64) { g.state = v }

// Tag returns the algorithm identifier.
func (g *SplitMix) Tag() string { return "SM64" }

// Caps reports read, write, reverse and skip.
func (g *SplitMix) Caps() Caps { return CapRead | CapWrite | CapPrev | CapSkip }

// Clone returns an independent copy of the generator.
func (g *SplitMix) Clone() Source {
	c := *g
	return &c
}
