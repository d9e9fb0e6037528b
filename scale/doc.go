// Package scale builds geometric size ladders: pure functions computing
// base · factor^exponent for integer exponents, parameterized by the named
// ratio catalog of package interval.
//
// What:
//
//   - Scale is the ladder itself: a func from integer exponent to float64
//     magnitude, closed over a (factor, base) pair fixed at construction.
//   - New is the general constructor: any factor, any base, no validation.
//   - One builder per catalog entry (MinorSecond … GoldenRatio) binds the
//     interval's ratio so callers supply only a base:
//     MajorThird(12)(2) == 18.75.
//   - Steps materializes a contiguous run of exponents as a slice, for
//     callers that want the whole ladder at once.
//
// Why:
//
//   - One baseline plus one named interval yields every size in a design
//     system; changing either rescales the whole ladder coherently.
//   - Negative exponents walk the ladder downward: MajorThird(12)(-1) is the
//     caption size below a 12-unit body.
//
// Contract:
//
//   - Every operation is deterministic, side-effect free, and total. No
//     input is validated and nothing panics: factor 0 collapses nonzero
//     exponents to 0 (±Inf below zero), negative factors alternate sign,
//     NaN propagates, and extreme exponents saturate to ±Inf or 0 exactly
//     as float64 arithmetic dictates. Callers who need stricter domains
//     validate before constructing.
//   - Scale(0) == base for every factor, including 0 and NaN
//     (math.Pow(x, ±0) == 1 for all x).
//
// Complexity: O(1) per magnitude; Steps is O(k) for a k-step ladder.
package scale
