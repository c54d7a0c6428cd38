// SPDX-License-Identifier: MIT

package canon

import "slices"

// HashSet stores distinct snapped values, bucketed by Hash and compared with
// Same within a bucket.
type HashSet[T Triple] struct {
	hash    func(T) uint64
	buckets map[uint64][]T
	n       int
}

// NewHashSet returns a set holding vs.
func NewHashSet[T Triple](vs ...T) *HashSet[T] {
	s := &HashSet[T]{hash: Hash[T], buckets: make(map[uint64][]T, len(vs))}
	for _, v := range vs {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was absent.
func (s *HashSet[T]) Add(v T) bool {
	h := s.hash(v)
	bucket := s.buckets[h]
	if indexOf(bucket, v) >= 0 {
		return false
	}
	s.buckets[h] = append(bucket, v)
	s.n++
	return true
}

// Has reports whether v is in the set.
func (s *HashSet[T]) Has(v T) bool {
	return indexOf(s.buckets[s.hash(v)], v) >= 0
}

// Remove deletes v and reports whether it was present.
func (s *HashSet[T]) Remove(v T) bool {
	h := s.hash(v)
	bucket := s.buckets[h]
	i := indexOf(bucket, v)
	if i < 0 {
		return false
	}
	bucket = slices.Delete(bucket, i, i+1)
	if len(bucket) == 0 {
		delete(s.buckets, h)
	} else {
		s.buckets[h] = bucket
	}
	s.n--
	return true
}

// Len returns the number of elements.
func (s *HashSet[T]) Len() int { return s.n }

// Values returns the elements in Compare order.
func (s *HashSet[T]) Values() []T {
	out := make([]T, 0, s.n)
	for _, bucket := range s.buckets {
		out = append(out, bucket...)
	}
	slices.SortFunc(out, Compare[T])
	return out
}

func indexOf[T Triple](bucket []T, v T) int {
	return slices.IndexFunc(bucket, func(x T) bool { return Same(x, v) })
}
