package rng

import "math/bits"

// Rand wraps a Source with the usual distribution helpers: bounded integers,
// unit-interval floats, shuffles and permutations. Like the sources it
// wraps, a Rand is owned by one caller at a time.
type Rand struct {
	src Source
}

// New returns a Rand drawing from src.
func New(src Source) *Rand {
	return &Rand{src: src}
}

// Source returns the underlying generator.
func (r *Rand) Source() Source { return r.src }

// Uint64 returns the next raw 64-bit value.
func (r *Rand) Uint64() uint64 { return r.src.Uint64() }

// Int63 returns a non-negative int64.
func (r *Rand) Int63() int64 { return int64(r.src.Uint64() >> 1) }

// Uint64n returns a uniform value in [0, n). It panics if n is 0. The
// widening multiply maps the raw output onto the range; the rare biased
// low-product results are rejected so every residue is exactly equally
// likely.
func (r *Rand) Uint64n(n uint64) uint64 {
	if n == 0 {
		panic("rng: Uint64n called with n == 0")
	}
	hi, lo := bits.Mul64(r.src.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(r.src.Uint64(), n)
		}
	}
	return hi
}

// Intn returns a uniform value in [0, n). It panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	return int(r.Uint64n(uint64(n)))
}

// Float64 returns a uniform float64 in [0, 1) using the full 53 bits of
// double precision.
func (r *Rand) Float64() float64 {
	return float64(r.src.Uint64()>>11) / (1 << 53)
}

// Float32 returns a uniform float32 in [0, 1).
func (r *Rand) Float32() float32 {
	return float32(r.src.Uint64()>>40) / (1 << 24)
}

// Shuffle pseudo-randomizes the order of n elements using Fisher-Yates.
// swap exchanges elements i and j.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(r.Uint64n(uint64(i + 1)))
		swap(i, j)
	}
}

// Perm returns a pseudo-random permutation of [0, n).
func (r *Rand) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	r.Shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}
