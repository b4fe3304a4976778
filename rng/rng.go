// Package rng provides deterministic pseudorandom number generators behind a
// common Source contract. Generators are non-cryptographic: fast, statistically
// strong bit sources intended for simulation, sampling and shuffling, not for
// secrets.
//
// Every Source exposes its internal state as indexed 64-bit words so callers
// can save, restore and serialize generators without knowing their layout.
// Optional abilities (stepping backwards, jumping ahead) are advertised via
// capability flags and narrowed interfaces rather than a fat interface every
// generator must stub out.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// Caps is a bit set describing the optional capabilities of a Source.
type Caps uint8

const (
	// CapRead means state words can be read via Word.
	CapRead Caps = 1 << iota
	// CapWrite means state words can be written via SetWord.
	CapWrite
	// CapPrev means the generator can step backwards (implements Rewinder).
	CapPrev
	// CapSkip means the generator can jump ahead (implements Skipper).
	CapSkip
	// CapLeap means the generator can jump between streams.
	CapLeap
)

// Has reports whether all capabilities in mask are present.
func (c Caps) Has(mask Caps) bool { return c&mask == mask }

// Source is a deterministic 64-bit pseudorandom generator whose state is
// addressable as fixed-width words. A Source is owned by exactly one caller
// at a time; for concurrent use, Clone per goroutine.
type Source interface {
	// Uint64 advances the generator one step and returns the next value.
	Uint64() uint64
	// Seed derives the full internal state deterministically from a single
	// 64-bit seed. The same seed always produces the identical state.
	Seed(seed uint64)
	// WordCount returns the number of addressable state words.
	WordCount() int
	// Word returns state word i. Out-of-range indexes resolve to the last
	// word rather than panicking, so generic save/restore loops stay total.
	Word(i int) uint64
	// SetWord writes state word i, applying any per-word validity
	// constraint the generator defines.
	SetWord(i int, v uint64)
	// Tag returns a fixed four-character identifier for the algorithm.
	Tag() string
	// Caps describes which optional operations this generator supports.
	Caps() Caps
	// Clone returns an independent copy. The copy produces the same
	// sequence from this point on; neither affects the other.
	Clone() Source
}

// Rewinder is a Source that can step backwards. Prev undoes the most recent
// forward step and returns the value that step produced.
type Rewinder interface {
	Source
	Prev() uint64
}

// Skipper is a Source that can jump ahead n steps in O(1) or O(log n).
type Skipper interface {
	Source
	Skip(n uint64)
}

// MakeSeed returns a 64-bit seed from the operating system entropy pool.
// If the pool is unavailable it falls back to a mixed clock reading, so the
// function is total and never blocks on error handling at call sites.
func MakeSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err == nil {
		return binary.LittleEndian.Uint64(b[:])
	}
	return mix64(uint64(time.Now().UnixNano()))
}

// mix64 is the splitmix64 finalizer. It is used both as the seed fallback
// scrambler and by the SplitMix source.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31
	return x
}
