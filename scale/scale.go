// Package scale — the Scale type and its general constructor.
package scale

import "math"

// Scale maps an integer exponent to a magnitude: Scale(n) = base · factor^n.
// A Scale is an immutable closure over the (factor, base) pair it was built
// with; it holds no other state and is safe for unsynchronized concurrent use.
//
// Exponent 0 returns the base itself; positive exponents multiply by the
// factor per step, negative exponents divide. The int exponent cannot wrap
// in practice: float64 saturates to ±Inf or 0 long before any 64-bit bound.
type Scale func(exponent int) float64

// New returns the Scale defined by factor and base.
//
// No validation is performed and no error path exists: degenerate inputs
// (factor ≤ 0, base ≤ 0, NaN, ±Inf) flow through math.Pow and out as 0,
// ±Inf, NaN, or sign-alternating magnitudes. This permissiveness is part of
// the contract; see the package doc for the exact degradation table.
// Complexity: O(1) per construction, O(1) per magnitude. Never panics.
func New(factor, base float64) Scale {
	return func(exponent int) float64 {
		return base * math.Pow(factor, float64(exponent))
	}
}
