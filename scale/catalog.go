// Package scale — one builder per catalog entry.
//
// Each builder is a partial application of New: the interval's ratio is bound
// at the call, the caller supplies only the base. Builders add nothing on top
// of New — no validation, no normalization — so every guarantee and every
// degradation of New holds verbatim here. The ratio values themselves live in
// package interval; nothing in this file restates a number.
package scale

import "github.com/katalvlaran/modscale/interval"

// MinorSecond builds a 16:15 scale: MinorSecond(b)(n) = b · (16/15)^n.
// Complexity: O(1). Never panics.
func MinorSecond(base float64) Scale {
	return New(interval.MinorSecond.Factor(), base)
}

// MinorThird builds a 6:5 scale.
// Complexity: O(1). Never panics.
func MinorThird(base float64) Scale {
	return New(interval.MinorThird.Factor(), base)
}

// MinorSixth builds an 8:5 scale.
// Complexity: O(1). Never panics.
func MinorSixth(base float64) Scale {
	return New(interval.MinorSixth.Factor(), base)
}

// MinorSeventh builds a 16:9 scale.
// Complexity: O(1). Never panics.
func MinorSeventh(base float64) Scale {
	return New(interval.MinorSeventh.Factor(), base)
}

// MajorSecond builds a 9:8 scale.
// Complexity: O(1). Never panics.
func MajorSecond(base float64) Scale {
	return New(interval.MajorSecond.Factor(), base)
}

// MajorThird builds a 1.25 scale, the classic typographic ramp:
// MajorThird(12) yields 12, 15, 18.75, … upward and 9.6, 7.68, … downward.
// Complexity: O(1). Never panics.
func MajorThird(base float64) Scale {
	return New(interval.MajorThird.Factor(), base)
}

// MajorSixth builds a 27:16 scale.
// Complexity: O(1). Never panics.
func MajorSixth(base float64) Scale {
	return New(interval.MajorSixth.Factor(), base)
}

// MajorSeventh builds a 15:8 scale.
// Complexity: O(1). Never panics.
func MajorSeventh(base float64) Scale {
	return New(interval.MajorSeventh.Factor(), base)
}

// PerfectFourth builds a 1.333 scale (the catalog's rounded literal, not 4/3).
// Complexity: O(1). Never panics.
func PerfectFourth(base float64) Scale {
	return New(interval.PerfectFourth.Factor(), base)
}

// PerfectFifth builds a 1.5 scale.
// Complexity: O(1). Never panics.
func PerfectFifth(base float64) Scale {
	return New(interval.PerfectFifth.Factor(), base)
}

// PerfectOctave builds a doubling scale: each step up doubles the magnitude,
// each step down halves it.
// Complexity: O(1). Never panics.
func PerfectOctave(base float64) Scale {
	return New(interval.PerfectOctave.Factor(), base)
}

// AugmentedSecond builds a 75:64 scale.
// Complexity: O(1). Never panics.
func AugmentedSecond(base float64) Scale {
	return New(interval.AugmentedSecond.Factor(), base)
}

// AugmentedThird builds a 125:96 scale.
// Complexity: O(1). Never panics.
func AugmentedThird(base float64) Scale {
	return New(interval.AugmentedThird.Factor(), base)
}

// AugmentedFourth builds a 1.414 scale (the catalog's rounded literal, not √2).
// Complexity: O(1). Never panics.
func AugmentedFourth(base float64) Scale {
	return New(interval.AugmentedFourth.Factor(), base)
}

// AugmentedFifth builds a 25:16 scale.
// Complexity: O(1). Never panics.
func AugmentedFifth(base float64) Scale {
	return New(interval.AugmentedFifth.Factor(), base)
}

// AugmentedSixth builds a 7:4 scale.
// Complexity: O(1). Never panics.
func AugmentedSixth(base float64) Scale {
	return New(interval.AugmentedSixth.Factor(), base)
}

// AugmentedSeventh builds a 125:64 scale.
// Complexity: O(1). Never panics.
func AugmentedSeventh(base float64) Scale {
	return New(interval.AugmentedSeventh.Factor(), base)
}

// AugmentedOctave builds a 25:12 scale.
// Complexity: O(1). Never panics.
func AugmentedOctave(base float64) Scale {
	return New(interval.AugmentedOctave.Factor(), base)
}

// GoldenRatio builds a φ scale, φ = (1+√5)/2: GoldenRatio(10)(1) ≈ 16.1803.
// Complexity: O(1). Never panics.
func GoldenRatio(base float64) Scale {
	return New(interval.GoldenRatio.Factor(), base)
}
