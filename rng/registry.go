package rng

import "fmt"

// Algorithms lists the generator names accepted by NewSource, in display
// order.
func Algorithms() []string {
	return []string{"rewind", "splitmix", "pcg"}
}

// NewSource constructs a named generator seeded from seed. It returns an
// error for unknown algorithm names so CLI flag values surface cleanly.
func NewSource(algorithm string, seed uint64) (Source, error) {
	switch algorithm {
	case "rewind":
		return NewRewindSeed(seed), nil
	case "splitmix":
		return NewSplitMixSeed(seed), nil
	case "pcg":
		return NewPCGSeed(seed), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q (want one of %v)", algorithm, Algorithms())
	}
}
