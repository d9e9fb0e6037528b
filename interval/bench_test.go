package interval_test

import (
	"testing"

	"github.com/katalvlaran/modscale/interval"
)

// BenchmarkFactor measures the catalog ratio lookup across all entries.
// Complexity: O(1) per lookup
func BenchmarkFactor(b *testing.B) {
	all := interval.All()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = all[i%len(all)].Factor()
	}
}

// BenchmarkCents measures the log-space conversion across all entries.
// Complexity: O(1) per call
func BenchmarkCents(b *testing.B) {
	all := interval.All()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = all[i%len(all)].Cents()
	}
}

// BenchmarkClosest measures the nearest-entry scan for an off-catalog ratio.
// Complexity: O(Count) per call
func BenchmarkClosest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, _ = interval.Closest(1.42)
	}
}
