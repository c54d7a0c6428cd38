// SPDX-License-Identifier: MIT

package canon

import "github.com/samber/lo"

// Dedupe snaps every value with snap and keeps the first occurrence of each
// canonical representative, preserving input order. Duplicates are detected
// with Same, as in HashSet.
//
//	ctx := tolerance.MustNew(1e-6)
//	pts = canon.Dedupe(ctx.SnapPoint, pts)
func Dedupe[T Triple](snap func(T) T, vs []T) []T {
	snapped := lo.Map(vs, func(v T, _ int) T { return snap(v) })
	seen := NewHashSet[T]()
	return lo.Filter(snapped, func(v T, _ int) bool { return seen.Add(v) })
}
