// Package scale — ladder materialization.
//
// Design:
//   - Steps walks exponents one at a time and evaluates the Scale at each,
//     so every element is bit-identical to the corresponding direct call.
//     Accumulating by repeated multiplication would be cheaper by a constant
//     but would let rounding drift grow with distance from the base.
//   - Direction follows the arguments: from > to walks downward. A reversed
//     range is a descending ladder, not an error.
//
// Complexity: O(k) time and space for a k-element ladder.
package scale

// Steps returns the magnitudes for every exponent from `from` to `to`
// inclusive, in walk order: ascending when from ≤ to, descending otherwise.
// The result has |to−from|+1 elements; Steps(n, n) yields one.
// Each element equals s(exponent) exactly.
// Complexity: O(|to−from|+1). Never panics.
func (s Scale) Steps(from, to int) []float64 {
	step := 1
	if to < from {
		step = -1
	}

	out := make([]float64, 0, (to-from)*step+1)
	for n := from; ; n += step {
		out = append(out, s(n))
		if n == to {
			break
		}
	}

	return out
}
