package scale_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/modscale/interval"
	"github.com/katalvlaran/modscale/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// relTol is the relative tolerance for float identities that involve an extra
// rounding step (one multiply or divide beyond the direct computation).
const relTol = 1e-9

// propFactors covers the catalog plus off-catalog and fractional growth.
func propFactors() []float64 {
	fs := []float64{0.5, 1, 1.05, 3, 10}
	for _, iv := range interval.All() {
		fs = append(fs, iv.Factor())
	}

	return fs
}

// propBases covers typographic, tiny and large baselines.
var propBases = []float64{1, 12, 16, 0.25, 1e6}

// TestNew_ZeroExponentReturnsBase verifies Scale(0) == base exactly for every
// factor, including the degenerate ones: math.Pow(x, ±0) is 1 for all x.
func TestNew_ZeroExponentReturnsBase(t *testing.T) {
	factors := append(propFactors(), 0, -2, math.NaN(), math.Inf(1))
	for _, f := range factors {
		for _, b := range propBases {
			assert.Equal(t, b, scale.New(f, b)(0), "factor %g base %g", f, b)
		}
	}
}

// TestNew_MatchesDirectPow checks the defining identity
// Scale(n) == base · factor^n over a grid of exponents.
func TestNew_MatchesDirectPow(t *testing.T) {
	for _, f := range propFactors() {
		for _, b := range propBases {
			s := scale.New(f, b)
			for n := -8; n <= 8; n++ {
				assert.Equal(t, b*math.Pow(f, float64(n)), s(n), "factor %g base %g exp %d", f, b, n)
			}
		}
	}
}

// TestNew_ConsecutiveRatioLaw checks Scale(n) · factor ≈ Scale(n+1): adjacent
// rungs of a ladder differ by exactly one application of the factor.
func TestNew_ConsecutiveRatioLaw(t *testing.T) {
	for _, f := range propFactors() {
		for _, b := range propBases {
			s := scale.New(f, b)
			for n := -6; n <= 6; n++ {
				assert.InEpsilon(t, s(n+1), s(n)*f, relTol, "factor %g base %g exp %d", f, b, n)
			}
		}
	}
}

// TestNew_SymmetryAroundZero checks Scale(n) / Scale(−n) ≈ factor^(2n): the
// ladder is geometrically symmetric around the base.
func TestNew_SymmetryAroundZero(t *testing.T) {
	for _, f := range propFactors() {
		for _, b := range propBases {
			s := scale.New(f, b)
			for n := 1; n <= 6; n++ {
				assert.InEpsilon(t, math.Pow(f, float64(2*n)), s(n)/s(-n), relTol, "factor %g base %g exp %d", f, b, n)
			}
		}
	}
}

// TestNew_ZeroFactor pins the collapse semantics: exponent 0 still returns
// the base (0⁰ == 1 under math.Pow), positive exponents collapse to 0, and
// negative exponents blow up to +Inf. No panic anywhere.
func TestNew_ZeroFactor(t *testing.T) {
	s := scale.New(0, 5)

	assert.Equal(t, 5.0, s(0))
	assert.Zero(t, s(1))
	assert.Zero(t, s(7))
	assert.True(t, math.IsInf(s(-1), 1), "negative exponent of a zero factor must be +Inf")
	assert.True(t, math.IsInf(s(-4), 1))
}

// TestNew_NegativeFactorAlternatesSign pins integer-exponent semantics for
// negative factors: magnitudes alternate sign and never go NaN.
func TestNew_NegativeFactorAlternatesSign(t *testing.T) {
	s := scale.New(-2, 3)

	assert.Equal(t, 3.0, s(0))
	assert.Equal(t, -6.0, s(1))
	assert.Equal(t, 12.0, s(2))
	assert.Equal(t, -24.0, s(3))
	assert.Equal(t, -1.5, s(-1))
}

// TestNew_NaNAndInfPropagate verifies the permissive contract on fully
// degenerate input: NaN and ±Inf flow through, nothing raises.
func TestNew_NaNAndInfPropagate(t *testing.T) {
	require.NotPanics(t, func() {
		nanFactor := scale.New(math.NaN(), 5)
		assert.Equal(t, 5.0, nanFactor(0), "Pow(NaN, 0) is 1, so exponent 0 still returns the base")
		assert.True(t, math.IsNaN(nanFactor(1)))

		nanBase := scale.New(1.5, math.NaN())
		assert.True(t, math.IsNaN(nanBase(0)))
		assert.True(t, math.IsNaN(nanBase(3)))

		infBase := scale.New(2, math.Inf(1))
		assert.True(t, math.IsInf(infBase(0), 1))
		assert.True(t, math.IsInf(infBase(5), 1))
	})
}

// TestNew_ExtremeExponentsSaturate verifies float64 saturation long before
// any integer bound: huge exponents yield ±Inf or 0, never a wrapped value.
func TestNew_ExtremeExponentsSaturate(t *testing.T) {
	s := scale.New(2, 1)

	assert.True(t, math.IsInf(s(100000), 1))
	assert.Zero(t, s(-100000))
}

// TestNew_NegativeBase confirms a negative base simply mirrors the ladder;
// no validation rejects it.
func TestNew_NegativeBase(t *testing.T) {
	s := scale.New(1.5, -8)

	assert.Equal(t, -8.0, s(0))
	assert.Equal(t, -12.0, s(1))
	assert.Equal(t, -18.0, s(2))
}
