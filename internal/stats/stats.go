// Package stats accumulates streaming statistics over raw generator output
// for the analysis tooling. Nothing here proves a generator is good; the
// checks catch gross defects (stuck bits, skewed bytes, constant output)
// cheaply enough to run on every dump.
package stats

import (
	"fmt"
	"math"
	"strings"
)

// Summary tracks count, mean and variance of outputs normalized to [0,1),
// plus byte-bucket and per-bit counts for uniformity checks.
type Summary struct {
	Count uint64
	Sum   float64
	Sum2  float64
	Min   float64
	Max   float64

	// Buckets counts the high byte of every value; a uniform source fills
	// them evenly.
	Buckets [256]uint64

	// BitOnes counts set bits per position across all values.
	BitOnes [64]uint64
}

// NewSummary returns an empty accumulator.
func NewSummary() *Summary {
	return &Summary{Min: math.Inf(1), Max: math.Inf(-1)}
}

// Add folds one raw 64-bit value into the summary.
func (s *Summary) Add(v uint64) {
	u := float64(v>>11) / (1 << 53)
	s.Count++
	s.Sum += u
	s.Sum2 += u * u
	if u < s.Min {
		s.Min = u
	}
	if u > s.Max {
		s.Max = u
	}

	s.Buckets[v>>56]++
	for bit := 0; bit < 64; bit++ {
		if v&(1<<bit) != 0 {
			s.BitOnes[bit]++
		}
	}
}

// Mean returns the arithmetic mean of the normalized values. A uniform
// source converges on 0.5.
func (s *Summary) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Variance returns the sample variance of the normalized values. Uniform on
// [0,1) gives 1/12.
func (s *Summary) Variance() float64 {
	if s.Count < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Count)*mean*mean) / float64(s.Count-1)
}

// StdDev returns the sample standard deviation.
func (s *Summary) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// ChiSquare returns the chi-square statistic of the high-byte buckets
// against a uniform expectation. For 255 degrees of freedom, values far
// above ~310 indicate a skewed distribution.
func (s *Summary) ChiSquare() float64 {
	if s.Count == 0 {
		return 0
	}
	expected := float64(s.Count) / 256
	var chi float64
	for _, observed := range s.Buckets {
		d := float64(observed) - expected
		chi += d * d / expected
	}
	return chi
}

// WorstBitBias returns the largest deviation from 0.5 of any bit position's
// ones-density, and the position it occurs at.
func (s *Summary) WorstBitBias() (bias float64, position int) {
	if s.Count == 0 {
		return 0, 0
	}
	for bit, ones := range s.BitOnes {
		d := math.Abs(float64(ones)/float64(s.Count) - 0.5)
		if d > bias {
			bias = d
			position = bit
		}
	}
	return bias, position
}

// Report renders a human-readable block for CLI output.
func (s *Summary) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "values:      %d\n", s.Count)
	fmt.Fprintf(&b, "mean:        %.6f (uniform: 0.500000)\n", s.Mean())
	fmt.Fprintf(&b, "std dev:     %.6f (uniform: %.6f)\n", s.StdDev(), 1/math.Sqrt(12))
	fmt.Fprintf(&b, "min/max:     %.6f / %.6f\n", s.Min, s.Max)
	fmt.Fprintf(&b, "chi-square:  %.2f (256 buckets, 255 dof)\n", s.ChiSquare())
	bias, pos := s.WorstBitBias()
	fmt.Fprintf(&b, "worst bit:   %d (bias %.6f)\n", pos, bias)
	return b.String()
}
