package rng

// PCG constants from the RXS-M-XS 64 variant of the permuted congruential
// generator family.
const (
	pcgMultiplier = 6364136223846793005
	pcgIncrement  = 1442695040888963407
	pcgPermuter   = 12605985483714917081
)

// PCG is the PCG RXS-M-XS 64 generator: a 64-bit linear congruential core
// with a random-xorshift, multiply, xorshift output permutation. One word of
// state, compact and fast, but with no reverse or skip support here.
type PCG struct {
	state uint64
}

// NewPCG returns a generator seeded from the entropy pool.
func NewPCG() *PCG {
	return &PCG{state: MakeSeed()}
}

// NewPCGSeed returns a generator with the given state word.
func NewPCGSeed(seed uint64) *PCG {
	return &PCG{state: seed}
}

// Seed sets the state directly. Any value is valid.
func (g *PCG) Seed(seed uint64) { g.state = seed }

// Uint64 advances the LCG and returns the permuted previous state.
func (g *PCG) Uint64() uint64 {
	old := g.state
	g.state = g.state*pcgMultiplier + pcgIncrement
	word := ((old >> ((old >> 59) + 5)) ^ old) * pcgPermuter
	return (word >> 43) ^ word
}

// WordCount returns 1.
func (g *PCG) WordCount() int { return 1 }

// Word returns the state word for any index.
func (g *PCG) Word(int) uint64 { return g.state }

// SetWord writes the state word for any index.
func (g *PCG) SetWord(_ int, v uint64) { g.state = v }

// Tag returns the algorithm identifier.
func (g *PCG) Tag() string { return "PCGM" }

// Caps reports read and write only.
func (g *PCG) Caps() Caps { return CapRead | CapWrite }

// Clone returns an independent copy of the generator.
func (g *PCG) Clone() Source {
	c := *g
	return &c
}
