// Package modscale derives proportionally-related size ladders — font sizes,
// spacing steps, frequencies — from a single base value and a single named
// growth factor taken from classical musical interval ratios.
//
// 🚀 What is modscale?
//
//	A tiny, pure, zero-I/O library built around one idea:
//		• Scale(n) = base · factor^n for integer exponents n
//		• a fixed catalog of named factors: minor, major, perfect and
//		  augmented musical intervals, plus the golden ratio
//	Pick a named factor, apply it to your baseline once, then read off
//	magnitudes at integer offsets. Every size in the ladder stays in the
//	same harmonic proportion to every other.
//
// ✨ Why choose modscale?
//
//   - Deterministic – same factor, base and exponent always yield the same magnitude
//   - Permissive – degenerate inputs degrade through float64 arithmetic, never panic
//   - Concurrency-free – pure functions over immutable constants, safe everywhere
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	interval/ — the named ratio catalog: Interval constants, families, cents math
//	scale/    — the Scale constructor, one builder per catalog entry, ladder helpers
//
// Quick taste:
//
//	s := scale.MajorThird(12) // 12 is the magnitude at exponent 0
//	s(0)  // 12
//	s(1)  // 15       (12 · 1.25)
//	s(2)  // 18.75    (12 · 1.25²)
//	s(-1) // 9.6      (12 / 1.25)
//
// Dive into the per-package docs for contracts, edge-case semantics, and
// runnable examples.
//
//	go get github.com/katalvlaran/modscale
package modscale
