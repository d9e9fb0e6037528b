// Package interval defines the fixed catalog of named growth ratios used to
// build modular size scales, grouped by musical-theory family.
//
// What:
//
//   - Interval enumerates the catalog: minor, major, perfect and augmented
//     musical intervals plus the golden ratio as the one special entry.
//   - Factor returns the exact ratio bound to a name (e.g. majorThird → 1.25).
//   - Family classifies an entry (FamilyMinor … FamilySpecial).
//   - Cents measures an entry on the logarithmic 1200-cents-per-octave axis.
//   - Closest finds the catalog entry nearest to an arbitrary observed ratio.
//
// Why:
//
//   - Typography: pick one interval, derive every font size from one baseline.
//   - Layout systems: spacing ladders that stay in a single proportion.
//   - Audio/teaching tools: compare measured frequency ratios to just-intonation
//     intervals in cents.
//
// Binding rules:
//
//   - Every ratio is written once, at package load, and never recomputed or
//     mutated; each name maps to exactly one value for the process lifetime.
//   - perfectFourth (1.333), perfectFifth (1.5) and augmentedFourth (1.414)
//     are stored as those decimal literals, not as 4/3, 3/2 or √2. Ladders
//     derived from them are tied to these exact values; substituting the
//     mathematically pure ratios would silently rescale every consumer.
//
// Errors:
//
//   - ErrNonpositiveRatio: Closest was asked about a ratio ≤ 0, NaN or ±Inf,
//     which has no position on the cents axis.
//
// All other operations are total: an out-of-range Interval yields NaN factors
// and cents, a formatted fallback String, and FamilyUnknown — never a panic.
//
// Complexity: every operation is O(1) except All and Closest, which are
// O(Count) with Count == 19.
package interval
