// Package interval — catalog entries, ratio bindings, and family taxonomy.
package interval

import (
	"fmt"
	"math"
)

// Interval identifies one entry of the ratio catalog. The zero value is
// MinorSecond; values outside [MinorSecond, GoldenRatio] are not catalog
// entries and degrade gracefully (NaN factor, FamilyUnknown, fallback String).
type Interval int

// Catalog entries, in canonical table order: the four minor intervals, the
// four major intervals, the three perfect intervals, the seven augmented
// intervals, then the golden ratio.
const (
	// MinorSecond is the just diatonic semitone, 16:15 (≈1.0667).
	MinorSecond Interval = iota
	// MinorThird is the just minor third, 6:5 (1.2).
	MinorThird
	// MinorSixth is the just minor sixth, 8:5 (1.6).
	MinorSixth
	// MinorSeventh is the just minor seventh, 16:9 (≈1.7778).
	MinorSeventh
	// MajorSecond is the just whole tone, 9:8 (1.125).
	MajorSecond
	// MajorThird is the just major third, 5:4, stored as the literal 1.25.
	MajorThird
	// MajorSixth is the Pythagorean major sixth, 27:16 (1.6875).
	MajorSixth
	// MajorSeventh is the just major seventh, 15:8 (1.875).
	MajorSeventh
	// PerfectFourth is the catalog's rounded fourth, the literal 1.333 (not 4/3).
	PerfectFourth
	// PerfectFifth is the catalog's fifth, the literal 1.5.
	PerfectFifth
	// PerfectOctave is the octave, 2.
	PerfectOctave
	// AugmentedSecond is the just augmented second, 75:64 (≈1.1719).
	AugmentedSecond
	// AugmentedThird is the just augmented third, 125:96 (≈1.3021).
	AugmentedThird
	// AugmentedFourth is the catalog's rounded tritone, the literal 1.414 (not √2).
	AugmentedFourth
	// AugmentedFifth is the just augmented fifth, 25:16 (1.5625).
	AugmentedFifth
	// AugmentedSixth is the harmonic seventh, 7:4 (1.75).
	AugmentedSixth
	// AugmentedSeventh is the just augmented seventh, 125:64 (≈1.9531).
	AugmentedSeventh
	// AugmentedOctave is the just augmented octave, 25:12 (≈2.0833).
	AugmentedOctave
	// GoldenRatio is the special non-musical entry, (1+√5)/2 (≈1.6180).
	GoldenRatio
)

// numIntervals bounds the catalog; kept adjacent to the const block so the
// two cannot drift apart.
const numIntervals = GoldenRatio + 1

// Count is the number of catalog entries.
const Count = int(numIntervals)

// ratios binds each Interval to its factor. Written once at package load
// (GoldenRatio needs math.Sqrt, so this is a var, not a const block) and
// read-only afterwards. Indexed literals guarantee exactly one value per entry.
var ratios = [numIntervals]float64{
	MinorSecond:  16.0 / 15.0,
	MinorThird:   6.0 / 5.0,
	MinorSixth:   8.0 / 5.0,
	MinorSeventh: 16.0 / 9.0,

	MajorSecond:  9.0 / 8.0,
	MajorThird:   1.25,
	MajorSixth:   27.0 / 16.0,
	MajorSeventh: 15.0 / 8.0,

	// The rounded decimals below are the catalog's binding values; do not
	// replace them with 4/3, 3/2 or math.Sqrt2 — every derived ladder would
	// silently change.
	PerfectFourth: 1.333,
	PerfectFifth:  1.5,
	PerfectOctave: 2,

	AugmentedSecond:  75.0 / 64.0,
	AugmentedThird:   125.0 / 96.0,
	AugmentedFourth:  1.414,
	AugmentedFifth:   25.0 / 16.0,
	AugmentedSixth:   7.0 / 4.0,
	AugmentedSeventh: 125.0 / 64.0,
	AugmentedOctave:  25.0 / 12.0,

	GoldenRatio: (1 + math.Sqrt(5)) / 2,
}

// names binds each Interval to its canonical lowerCamel catalog name.
var names = [numIntervals]string{
	MinorSecond:      "minorSecond",
	MinorThird:       "minorThird",
	MinorSixth:       "minorSixth",
	MinorSeventh:     "minorSeventh",
	MajorSecond:      "majorSecond",
	MajorThird:       "majorThird",
	MajorSixth:       "majorSixth",
	MajorSeventh:     "majorSeventh",
	PerfectFourth:    "perfectFourth",
	PerfectFifth:     "perfectFifth",
	PerfectOctave:    "perfectOctave",
	AugmentedSecond:  "augmentedSecond",
	AugmentedThird:   "augmentedThird",
	AugmentedFourth:  "augmentedFourth",
	AugmentedFifth:   "augmentedFifth",
	AugmentedSixth:   "augmentedSixth",
	AugmentedSeventh: "augmentedSeventh",
	AugmentedOctave:  "augmentedOctave",
	GoldenRatio:      "goldenRatio",
}

// Valid reports whether i names a catalog entry.
// Complexity: O(1).
func (i Interval) Valid() bool {
	return i >= MinorSecond && i < numIntervals
}

// Factor returns the growth ratio bound to i, the multiplier applied per
// exponent step of a scale built on this interval. For an out-of-range
// Interval it returns NaN rather than panicking.
// Complexity: O(1).
func (i Interval) Factor() float64 {
	if !i.Valid() {
		return math.NaN()
	}

	return ratios[i]
}

// String returns the canonical catalog name (e.g. "majorThird"), or
// "Interval(N)" for values outside the catalog.
// Complexity: O(1).
func (i Interval) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Interval(%d)", int(i))
	}

	return names[i]
}

// All returns every catalog entry in canonical table order. The slice is
// freshly allocated on each call; mutating it cannot affect the catalog.
// Complexity: O(Count) time and space.
func All() []Interval {
	out := make([]Interval, 0, Count)
	for i := MinorSecond; i < numIntervals; i++ {
		out = append(out, i)
	}

	return out
}

// Family labels the musical-theory group an Interval belongs to.
type Family int

const (
	// FamilyUnknown is returned for values outside the catalog.
	FamilyUnknown Family = iota
	// FamilyMinor covers MinorSecond through MinorSeventh.
	FamilyMinor
	// FamilyMajor covers MajorSecond through MajorSeventh.
	FamilyMajor
	// FamilyPerfect covers PerfectFourth, PerfectFifth and PerfectOctave.
	FamilyPerfect
	// FamilyAugmented covers AugmentedSecond through AugmentedOctave.
	FamilyAugmented
	// FamilySpecial covers the lone non-musical entry, GoldenRatio.
	FamilySpecial
)

// String returns the lower-case family label.
func (f Family) String() string {
	switch f {
	case FamilyMinor:
		return "minor"
	case FamilyMajor:
		return "major"
	case FamilyPerfect:
		return "perfect"
	case FamilyAugmented:
		return "augmented"
	case FamilySpecial:
		return "special"
	default:
		return "unknown"
	}
}

// Family returns the musical-theory family of i, relying on the catalog's
// contiguous family blocks. Out-of-range values yield FamilyUnknown.
// Complexity: O(1).
func (i Interval) Family() Family {
	switch {
	case i >= MinorSecond && i <= MinorSeventh:
		return FamilyMinor
	case i >= MajorSecond && i <= MajorSeventh:
		return FamilyMajor
	case i >= PerfectFourth && i <= PerfectOctave:
		return FamilyPerfect
	case i >= AugmentedSecond && i <= AugmentedOctave:
		return FamilyAugmented
	case i == GoldenRatio:
		return FamilySpecial
	default:
		return FamilyUnknown
	}
}
