// SPDX-License-Identifier: MIT

package canon

import "slices"

// HashMap maps snapped values to V. Typical use is vertex welding: snapped
// position → vertex id.
type HashMap[K Triple, V any] struct {
	hash    func(K) uint64
	buckets map[uint64][]entry[K, V]
	n       int
}

type entry[K Triple, V any] struct {
	key K
	val V
}

// NewHashMap returns an empty map.
func NewHashMap[K Triple, V any]() *HashMap[K, V] {
	return &HashMap[K, V]{hash: Hash[K], buckets: make(map[uint64][]entry[K, V])}
}

func (m *HashMap[K, V]) find(h uint64, k K) int {
	for i, e := range m.buckets[h] {
		if Same(e.key, k) {
			return i
		}
	}
	return -1
}

// Get returns the value stored for k.
func (m *HashMap[K, V]) Get(k K) (V, bool) {
	h := m.hash(k)
	if i := m.find(h, k); i >= 0 {
		return m.buckets[h][i].val, true
	}
	var zero V
	return zero, false
}

// Put stores v under k, replacing any previous value.
func (m *HashMap[K, V]) Put(k K, v V) {
	h := m.hash(k)
	if i := m.find(h, k); i >= 0 {
		m.buckets[h][i].val = v
		return
	}
	m.buckets[h] = append(m.buckets[h], entry[K, V]{key: k, val: v})
	m.n++
}

// GetOrPut returns the value already stored for k, or stores and returns v.
// loaded reports whether the value was already present.
func (m *HashMap[K, V]) GetOrPut(k K, v V) (actual V, loaded bool) {
	h := m.hash(k)
	if i := m.find(h, k); i >= 0 {
		return m.buckets[h][i].val, true
	}
	m.buckets[h] = append(m.buckets[h], entry[K, V]{key: k, val: v})
	m.n++
	return v, false
}

// Delete removes k and reports whether it was present.
func (m *HashMap[K, V]) Delete(k K) bool {
	h := m.hash(k)
	i := m.find(h, k)
	if i < 0 {
		return false
	}
	bucket := m.buckets[h]
	bucket = append(bucket[:i], bucket[i+1:]...)
	if len(bucket) == 0 {
		delete(m.buckets, h)
	} else {
		m.buckets[h] = bucket
	}
	m.n--
	return true
}

// Len returns the number of keys.
func (m *HashMap[K, V]) Len() int { return m.n }

// Range calls fn for every entry in Compare order of keys until fn returns false.
func (m *HashMap[K, V]) Range(fn func(K, V) bool) {
	all := make([]entry[K, V], 0, m.n)
	for _, bucket := range m.buckets {
		all = append(all, bucket...)
	}
	sortEntries(all)
	for _, e := range all {
		if !fn(e.key, e.val) {
			return
		}
	}
}

func sortEntries[K Triple, V any](es []entry[K, V]) {
	slices.SortFunc(es, func(a, b entry[K, V]) int { return Compare(a.key, b.key) })
}
