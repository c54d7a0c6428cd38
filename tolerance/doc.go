// Package tolerance implements the equality context: one immutable tolerance
// value and the comparison and snapping operations that use it.
//
// 🚀 What problem does it solve?
//
//	Coordinates and directions in a CAD/BIM pipeline come out of parsing,
//	unit conversion and matrix composition. Two values that mean the same
//	axis can differ in the 6th decimal digit, so exact equality is useless.
//	A Context answers two questions, always under the same tolerance:
//	  • "are these two values the same?"         → Equal* (compare family)
//	  • "what is the canonical form of this?"    → Snap*  (canonicalize family)
//
// ✨ Two families, on purpose:
//
//   - Equal, EqualPoints, EqualVectors, EqualDirections compare per axis:
//     |a-b| ≤ tolerance on each component. This relation is symmetric but NOT
//     transitive (0 ~ t, t ~ 2t, yet 0 ≁ 2t).
//   - Snap, SnapPoint, SnapVector, SnapDirection map values to canonical
//     representatives (0, integers, the six signed axes). Snap is idempotent,
//     and exact equality of snapped values is a true equivalence, so it is the
//     one to use for hashing, sets and maps (see package canon).
//
// ⚙️ Usage:
//
//	ctx, err := tolerance.New(0.01)
//	if err != nil {
//	  // negative / NaN / Inf tolerance → ErrInvalidTolerance
//	}
//	ctx.EqualPoints(p, q)
//	ctx.SnapDirection(geom.Dir(0, 1.9e-6, 1.0000002)) // → geom.PosZ
//
// Concurrency:
//
//	A Context is never mutated after New returns. Any number of goroutines may
//	share one. Every call is O(1), allocation-free and never blocks.
//
// NaN and ±Inf components never compare equal to anything, themselves
// included, and snapping leaves them untouched.
package tolerance
