// Package interval — cents measurement over the catalog.
//
// This file places catalog ratios on the standard logarithmic cents axis
// (1200 cents per doubling) and answers "which catalog entry is this observed
// ratio closest to?". Log space is the right metric here: musical distance is
// multiplicative, so comparing raw ratio differences would skew toward the
// large end of the catalog.
//
// Design:
//   - Pure stdlib math; no state beyond the read-only catalog tables.
//   - Total functions degrade to NaN; the one partial function (Closest)
//     returns a sentinel, because a non-positive ratio has no logarithm and
//     no meaningful nearest entry.
//   - Ties in Closest resolve to the earlier table entry, deterministically.
//
// Complexity:
//   - Cents: O(1). Closest: O(Count).
package interval

import (
	"errors"
	"math"
)

// CentsPerOctave is the number of cents in one octave (one doubling of the
// ratio). 100 cents correspond to one equal-tempered semitone.
const CentsPerOctave = 1200

// ErrNonpositiveRatio indicates a ratio that cannot be placed on the cents
// axis: zero, negative, NaN, or infinite.
var ErrNonpositiveRatio = errors.New("interval: ratio must be positive and finite")

// Cents returns the size of i on the cents axis: CentsPerOctave · log₂(Factor).
// PerfectOctave is exactly 1200; out-of-range Intervals yield NaN.
// Complexity: O(1).
func (i Interval) Cents() float64 {
	if !i.Valid() {
		return math.NaN()
	}

	return ratioCents(ratios[i])
}

// Closest returns the catalog entry nearest to ratio, measured in cents, plus
// the signed deviation cents(ratio) − Cents(entry): positive when the observed
// ratio is wider than the entry, negative when narrower.
//
// Returns ErrNonpositiveRatio (with an invalid Interval and NaN deviation)
// when ratio ≤ 0, NaN, or ±Inf. When two entries are equidistant, the earlier
// table entry wins.
// Complexity: O(Count).
func Closest(ratio float64) (Interval, float64, error) {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
		return Interval(-1), math.NaN(), ErrNonpositiveRatio
	}

	target := ratioCents(ratio)
	best := MinorSecond
	bestDist := math.Inf(1)
	var dist float64
	for i := MinorSecond; i < numIntervals; i++ {
		dist = math.Abs(target - ratioCents(ratios[i]))
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}

	return best, target - ratioCents(ratios[best]), nil
}

// ratioCents converts a positive ratio to cents.
// Complexity: O(1).
func ratioCents(r float64) float64 {
	return CentsPerOctave * math.Log2(r)
}
