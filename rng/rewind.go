package rng

import (
	"math"
	"math/bits"
)

// rewindWords is the number of addressable state words in a Rewind.
const rewindWords = 6

// goldenGamma is 2^64 / phi, the Weyl increment driving the first word.
const goldenGamma = 0x9E3779B97F4A7C15

// Rewind is an invertible pseudorandom generator over six 64-bit words.
// Five words (a..e) form the recurrence; the sixth (f) is a constrained
// "stream" selector that is stored, constrained and exposed but never read
// by the transition itself, so generators that differ only in f produce the
// same output sequence. That is the documented behavior of the construction
// and is preserved as-is.
//
// The forward step is a bijection on the five-word state, which gives a
// guaranteed minimum period of 2^64 (the a word is a pure Weyl sequence)
// and makes the generator exactly reversible: Prev undoes Uint64 bit for
// bit, including the returned value.
type Rewind struct {
	a, b, c, d, e uint64
	f             uint64 // stream word, kept odd with a gamma rating >= 1
}

// NewRewind returns a generator with all six words drawn independently from
// MakeSeed. The stream word passes through the gamma constraint.
func NewRewind() *Rewind {
	return NewRewindWords(MakeSeed(), MakeSeed(), MakeSeed(), MakeSeed(), MakeSeed(), MakeSeed())
}

// NewRewindSeed returns a generator whose state is expanded from a single
// 64-bit seed. Equal seeds yield byte-identical states.
func NewRewindSeed(seed uint64) *Rewind {
	g := new(Rewind)
	g.Seed(seed)
	return g
}

// NewRewindWords returns a generator with caller-supplied state words. The
// stream word f is remapped by FixGamma before being stored.
func NewRewindWords(a, b, c, d, e, f uint64) *Rewind {
	return &Rewind{a: a, b: b, c: c, d: d, e: e, f: FixGamma(f, 1)}
}

// Seed expands one 64-bit seed into all six state words using a chained
// multiplicative xor-shift hash. The constants are load-bearing: changing
// any of them breaks sequence compatibility with other implementations of
// the algorithm.
func (g *Rewind) Seed(seed uint64) {
	s := (seed ^ 0x1C69B3F74AC4AE35) * 0x3C79AC492BA7B653
	g.a = s ^ ^uint64(0xC6BC279692B5C323)
	s ^= s >> 32
	g.b = s ^ 0xD3833E804F4C574B
	s *= 0xBEA225F9EB34556D
	s ^= s >> 29
	g.c = s ^ ^uint64(0xD3833E804F4C574B)
	s *= 0xBEA225F9EB34556D
	s ^= s >> 32
	g.d = s ^ 0xC6BC279692B5C323
	s *= 0xBEA225F9EB34556D
	s ^= s >> 29
	g.e = s
	s ^= (s * s) | 7
	s ^= s >> 27
	g.f = FixGamma(s^0xBEA225F9EB34556D, 1)
}

// Uint64 advances the generator one step and returns the next output.
// Every new word is a function of the previous snapshot only, so the five
// assignments below must not observe each other's results.
func (g *Rewind) Uint64() uint64 {
	a, b, c, d, e := g.a, g.b, g.c, g.d, g.e
	g.a = a + goldenGamma
	g.b = a ^ e
	g.c = b + d
	g.d = bits.RotateLeft64(c, 52)
	g.e = b - c
	return g.e
}

// Prev is the exact algebraic inverse of Uint64: it restores the state that
// preceded the most recent forward step and returns the value that step
// produced. Uint64 followed by Prev (or the other way around) leaves both
// the state and the last-returned value exactly where they started.
func (g *Rewind) Prev() uint64 {
	out := g.e
	a := g.a - goldenGamma
	c := bits.RotateLeft64(g.d, -52)
	b := c + g.e
	d := g.c - b
	e := a ^ g.b
	g.a, g.b, g.c, g.d, g.e = a, b, c, d, e
	return out
}

// Float32 advances the generator one step and returns a float32 in [0, 1)
// built from the top 23 output bits. It consumes the generator exactly as
// one Uint64 call would.
func (g *Rewind) Float32() float32 {
	u := g.Uint64()
	return math.Float32frombits(uint32(u>>41)|0x3F800000) - 1
}

// Float64 advances the generator one step and returns a float64 in [0, 1)
// built from the top 52 output bits.
func (g *Rewind) Float64() float64 {
	u := g.Uint64()
	return math.Float64frombits(u>>12|0x3FF0000000000000) - 1
}

// WordCount returns the number of addressable state words.
func (g *Rewind) WordCount() int { return rewindWords }

// Word returns state word i (0..4 for a..e, 5 for the stream word). Indexes
// outside that range resolve to the stream word.
func (g *Rewind) Word(i int) uint64 {
	switch i {
	case 0:
		return g.a
	case 1:
		return g.b
	case 2:
		return g.c
	case 3:
		return g.d
	case 4:
		return g.e
	default:
		return g.f
	}
}

// SetWord writes state word i. Writes to the stream word (index 5 or any
// out-of-range index) pass through FixGamma.
func (g *Rewind) SetWord(i int, v uint64) {
	switch i {
	case 0:
		g.a = v
	case 1:
		g.b = v
	case 2:
		g.c = v
	case 3:
		g.d = v
	case 4:
		g.e = v
	default:
		g.f = FixGamma(v, 1)
	}
}

// Tag returns the algorithm identifier.
func (g *Rewind) Tag() string { return "RWND" }

// Caps reports read, write and reverse stepping. Skip and leap are
// unsupported: the rotate in the recurrence has no cheap n-step closed form.
func (g *Rewind) Caps() Caps { return CapRead | CapWrite | CapPrev }

// Clone returns an independent copy of the generator.
func (g *Rewind) Clone() Source {
	c := *g
	return &c
}
