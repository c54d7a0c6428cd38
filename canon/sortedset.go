// SPDX-License-Identifier: MIT

package canon

import "github.com/google/btree"

// sortedSetDegree is the B-tree branching factor.
const sortedSetDegree = 8

// SortedSet keeps distinct snapped values in Compare order.
type SortedSet[T Triple] struct {
	tree *btree.BTreeG[T]
}

// NewSortedSet returns a set holding vs.
func NewSortedSet[T Triple](vs ...T) *SortedSet[T] {
	s := &SortedSet[T]{tree: btree.NewG[T](sortedSetDegree, Less[T])}
	for _, v := range vs {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was absent.
func (s *SortedSet[T]) Add(v T) bool {
	_, replaced := s.tree.ReplaceOrInsert(v)
	return !replaced
}

// Has reports whether v is in the set.
func (s *SortedSet[T]) Has(v T) bool { return s.tree.Has(v) }

// Remove deletes v and reports whether it was present.
func (s *SortedSet[T]) Remove(v T) bool {
	_, ok := s.tree.Delete(v)
	return ok
}

// Len returns the number of elements.
func (s *SortedSet[T]) Len() int { return s.tree.Len() }

// Min returns the smallest element.
func (s *SortedSet[T]) Min() (T, bool) { return s.tree.Min() }

// Max returns the largest element.
func (s *SortedSet[T]) Max() (T, bool) { return s.tree.Max() }

// Ascend calls fn in ascending order until fn returns false.
func (s *SortedSet[T]) Ascend(fn func(T) bool) { s.tree.Ascend(fn) }

// Values returns the elements in ascending order.
func (s *SortedSet[T]) Values() []T {
	out := make([]T, 0, s.tree.Len())
	s.tree.Ascend(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}
