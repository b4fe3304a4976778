package rng

import (
	"testing"
)

// Reference state for seed 0, computed directly from the seed expansion
// formula. Any change to these words means sequence compatibility is broken.
var seedZeroWords = [6]uint64{
	0xBF05996BF07B15F3,
	0x55C57F82543B3F66,
	0xC2ACA7D309A2D1C3,
	0xC71B2D5F11E3F341,
	0xE50A85A17BFF0E88,
	0xF1300D75C14D6319,
}

// First outputs after seeding with 0.
var seedZeroOutputs = []uint64{
	0x9318D7AF4A986DA3,
	0x3D2E6FE92564E8D4,
	0x57DA7CF51CA94A03,
	0xCDC350A2D700852B,
	0xAD9432812F2E4E1D,
}

func TestRewindSeedZeroVector(t *testing.T) {
	g := NewRewindSeed(0)
	for i, want := range seedZeroWords {
		if got := g.Word(i); got != want {
			t.Errorf("word %d = %016X, want %016X", i, got, want)
		}
	}
	for i, want := range seedZeroOutputs {
		if got := g.Uint64(); got != want {
			t.Errorf("output %d = %016X, want %016X", i, got, want)
		}
	}
}

func TestRewindSeedDeterminism(t *testing.T) {
	for _, seed := range []uint64{0, 1, 42, 0xDEADBEEF, ^uint64(0)} {
		g1 := NewRewindSeed(seed)
		g2 := NewRewindSeed(seed)
		for i := 0; i < g1.WordCount(); i++ {
			if g1.Word(i) != g2.Word(i) {
				t.Errorf("seed %#x: word %d differs: %016X vs %016X", seed, i, g1.Word(i), g2.Word(i))
			}
		}
	}
}

func TestRewindStreamWordConstrained(t *testing.T) {
	for _, seed := range []uint64{0, 1, 2, 99, 123456789} {
		g := NewRewindSeed(seed)
		f := g.Word(5)
		if f&1 == 0 {
			t.Errorf("seed %d: stream word %016X is even", seed, f)
		}
		if GammaRating(f) < 1 {
			t.Errorf("seed %d: stream word %016X rates below 1", seed, f)
		}
	}
}

func TestRewindNextPrevInvolution(t *testing.T) {
	for _, seed := range []uint64{0, 7, 1 << 40, 0xCAFEBABE} {
		g := NewRewindSeed(seed)
		// Walk in a bit first so we also cover non-fresh states.
		for i := 0; i < 10; i++ {
			g.Uint64()
		}

		var before [6]uint64
		for i := range before {
			before[i] = g.Word(i)
		}

		forward := g.Uint64()
		backward := g.Prev()

		if forward != backward {
			t.Errorf("seed %d: Prev returned %016X, want Uint64's %016X", seed, backward, forward)
		}
		for i, want := range before {
			if got := g.Word(i); got != want {
				t.Errorf("seed %d: word %d not restored: %016X, want %016X", seed, i, got, want)
			}
		}
	}
}

func TestRewindPrevNextInvolution(t *testing.T) {
	g := NewRewindSeed(99)
	for i := 0; i < 5; i++ {
		g.Uint64()
	}

	var before [6]uint64
	for i := range before {
		before[i] = g.Word(i)
	}

	backward := g.Prev()
	forward := g.Uint64()

	if forward != backward {
		t.Errorf("Uint64 returned %016X after Prev returned %016X", forward, backward)
	}
	for i, want := range before {
		if got := g.Word(i); got != want {
			t.Errorf("word %d not restored: %016X, want %016X", i, got, want)
		}
	}
}

func TestRewindPrevRetracesSequence(t *testing.T) {
	g := NewRewindSeed(1234)
	const n = 1000

	forward := make([]uint64, n)
	for i := range forward {
		forward[i] = g.Uint64()
	}

	for i := n - 1; i >= 0; i-- {
		if got := g.Prev(); got != forward[i] {
			t.Fatalf("Prev at position %d = %016X, want %016X", i, got, forward[i])
		}
	}
}

func TestRewindNoEarlyCycle(t *testing.T) {
	g := NewRewindSeed(0)
	var start [5]uint64
	for i := range start {
		start[i] = g.Word(i)
	}

	for i := 0; i < 1<<20; i++ {
		g.Uint64()
		same := true
		for j := range start {
			if g.Word(j) != start[j] {
				same = false
				break
			}
		}
		if same {
			t.Fatalf("state returned to its seed value after %d steps", i+1)
		}
	}
}

func TestRewindCloneIndependence(t *testing.T) {
	g := NewRewindSeed(555)
	dup := g.Clone()

	var words [6]uint64
	for i := range words {
		words[i] = dup.Word(i)
	}

	for i := 0; i < 100; i++ {
		g.Uint64()
	}

	for i, want := range words {
		if got := dup.Word(i); got != want {
			t.Errorf("clone word %d changed to %016X after advancing original, want %016X", i, got, want)
		}
	}

	// The clone picks up where the original was at copy time.
	g2 := NewRewindSeed(555)
	if a, b := g2.Uint64(), dup.Uint64(); a != b {
		t.Errorf("clone output %016X diverged from fresh generator's %016X", b, a)
	}
}

func TestRewindStreamWordIgnoredByTransition(t *testing.T) {
	g1 := NewRewindSeed(77)
	g2 := g1.Clone()
	g2.SetWord(5, 0x123456789ABCDF) // different stream, same a..e

	if g1.Word(5) == g2.Word(5) {
		t.Fatal("test needs distinct stream words")
	}
	for i := 0; i < 100; i++ {
		if a, b := g1.Uint64(), g2.Uint64(); a != b {
			t.Fatalf("outputs diverged at step %d: %016X vs %016X", i, a, b)
		}
	}
}

func TestRewindFloatRanges(t *testing.T) {
	g := NewRewindSeed(2024)
	for i := 0; i < 10000; i++ {
		if v := g.Float32(); v < 0 || v >= 1 {
			t.Fatalf("Float32 returned %v, want [0,1)", v)
		}
		if v := g.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64 returned %v, want [0,1)", v)
		}
	}
}

func TestRewindFloatConsumesOneStep(t *testing.T) {
	g1 := NewRewindSeed(31337)
	g2 := g1.Clone()

	g1.Float64()
	g2.Uint64()

	for i := 0; i < 6; i++ {
		if g1.Word(i) != g2.Word(i) {
			t.Errorf("word %d differs after Float64 vs Uint64: %016X vs %016X", i, g1.Word(i), g2.Word(i))
		}
	}
}

func TestRewindWordAccessors(t *testing.T) {
	g := NewRewindWords(1, 2, 3, 4, 5, 7)
	for i, want := range []uint64{1, 2, 3, 4, 5} {
		if got := g.Word(i); got != want {
			t.Errorf("Word(%d) = %d, want %d", i, got, want)
		}
	}

	// Out-of-range indexes resolve to the stream word.
	if g.Word(5) != g.Word(17) || g.Word(5) != g.Word(-1) {
		t.Error("out-of-range Word should resolve to the stream word")
	}

	// Stream writes are constrained, wherever they land.
	g.SetWord(9, 2)
	if f := g.Word(5); f&1 == 0 || GammaRating(f) < 1 {
		t.Errorf("stream word %016X not constrained after out-of-range SetWord", f)
	}

	g.SetWord(2, 0xABCD)
	if g.Word(2) != 0xABCD {
		t.Errorf("Word(2) = %016X after SetWord, want ABCD", g.Word(2))
	}
}

func TestRewindRandomConstructor(t *testing.T) {
	g := NewRewind()
	if f := g.Word(5); f&1 == 0 || GammaRating(f) < 1 {
		t.Errorf("random stream word %016X not constrained", f)
	}
	// Two entropy-seeded generators agreeing on all words would mean the
	// entropy source is broken.
	h := NewRewind()
	same := true
	for i := 0; i < 6; i++ {
		if g.Word(i) != h.Word(i) {
			same = false
		}
	}
	if same {
		t.Error("two entropy-seeded generators have identical state")
	}
}

func BenchmarkRewindUint64(b *testing.B) {
	g := NewRewindSeed(1)
	var sink uint64
	for i := 0; i < b.N; i++ {
		sink = g.Uint64()
	}
	_ = sink
}

func BenchmarkRewindPrev(b *testing.B) {
	g := NewRewindSeed(1)
	var sink uint64
	for i := 0; i < b.N; i++ {
		sink = g.Prev()
	}
	_ = sink
}
