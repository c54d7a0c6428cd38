// SPDX-License-Identifier: MIT

package canon

import "cmp"

// Compare orders a and b lexicographically over (x, y, z) and returns -1, 0
// or +1. NaN sorts before every number and equal to other NaNs, as in
// cmp.Compare. The order is for deterministic iteration only; it carries no
// geometric meaning.
func Compare[T Triple](a, b T) int {
	ca, cb := a.Components(), b.Components()
	if c := cmp.Compare(ca[0], cb[0]); c != 0 {
		return c
	}
	if c := cmp.Compare(ca[1], cb[1]); c != 0 {
		return c
	}
	return cmp.Compare(ca[2], cb[2])
}

// Less reports Compare(a, b) < 0. It is a strict weak order usable by
// sort.Slice, slices.SortFunc and btree.
func Less[T Triple](a, b T) bool {
	return Compare(a, b) < 0
}

// Same reports Compare(a, b) == 0. It is the key equality of every container
// in this package: unlike ==, a NaN component matches another NaN.
func Same[T Triple](a, b T) bool {
	return Compare(a, b) == 0
}
