// Package canon provides hash and order adapters over snapped geometry, and
// the containers built on them.
//
// Approximate equality is not transitive, so it cannot back a map or a set.
// Snapped values can: once a value went through tolerance.Context.Snap*,
// "equal within tolerance" coincides with exact component equality, and
// Hash / Compare are consistent with it.
//
// Nothing in this package snaps implicitly. Callers snap before inserting,
// which keeps precision changes visible at the call site:
//
//	ctx := tolerance.MustNew(1e-6)
//	seen := canon.NewHashSet[geom.Point3]()
//	seen.Add(ctx.SnapPoint(p))
//
// Dedupe is the one helper that snaps, and it takes the snap function as an
// explicit argument.
//
// Every container uses Same (Compare(a, b) == 0) as key equality, not ==.
// Snapping leaves NaN components untouched, so NaN-bearing values can reach a
// container; two of them with NaN in the same positions and equal remaining
// components are one key in HashSet, HashMap, SortedSet and Dedupe alike, and
// can be found and removed. -0 and +0 are likewise one key.
//
// Containers here are not safe for concurrent mutation; guard them externally.
package canon
