package scale_test

import (
	"testing"

	"github.com/katalvlaran/modscale/scale"
)

// BenchmarkScaleCall measures one magnitude computation (a single math.Pow
// plus a multiply) on a prebuilt Scale.
// Complexity: O(1) per call
func BenchmarkScaleCall(b *testing.B) {
	s := scale.GoldenRatio(12)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s(i % 32)
	}
}

// BenchmarkNewAndCall measures construction plus first call, the cost of the
// builder-per-use pattern.
// Complexity: O(1) per iteration
func BenchmarkNewAndCall(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = scale.New(1.25, 12)(2)
	}
}

// BenchmarkSteps measures materializing a 33-rung ladder.
// Complexity: O(k) per iteration, k = 33
func BenchmarkSteps(b *testing.B) {
	s := scale.MajorThird(12)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Steps(-16, 16)
	}
}
