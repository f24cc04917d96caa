package keyvalue

import "github.com/denismitr/containerops/utils"

// Map is an unordered key value container backed by a native Go map.
// As far as the facade is concerned its items are its keys.
type Map[K comparable, V any] struct {
	m map[K]V
}

func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		m: make(map[K]V),
	}
}

// Set assigns value to key, overwriting any previous value.
func (m *Map[K, V]) Set(key K, value V) {
	m.m[key] = value
}

// SetNX assigns value to key only if the key is absent
// and returns true when the assignment happened.
func (m *Map[K, V]) SetNX(key K, value V) (added bool) {
	if _, found := m.m[key]; found {
		return false
	}

	m.m[key] = value
	return true
}

func (m *Map[K, V]) Get(key K) V {
	return m.m[key]
}

func (m *Map[K, V]) HasGet(key K) (V, bool) {
	v, found := m.m[key]
	if !found {
		return utils.GetZero[V](), false
	}

	return v, true
}

func (m *Map[K, V]) Has(key K) bool {
	_, found := m.m[key]
	return found
}

// Count reports how many entries are stored under key, which
// for a unique key container is 0 or 1.
func (m *Map[K, V]) Count(key K) int {
	if _, found := m.m[key]; found {
		return 1
	}
	return 0
}

func (m *Map[K, V]) Remove(key K) (removed bool) {
	if _, found := m.m[key]; !found {
		return false
	}

	delete(m.m, key)
	return true
}

func (m *Map[K, V]) Len() int {
	return len(m.m)
}

func (m *Map[K, V]) Clear() {
	m.m = make(map[K]V)
}

// ForEach visits every key in unspecified order until fn returns false.
func (m *Map[K, V]) ForEach(fn func(key K) bool) {
	for k := range m.m {
		if !fn(k) {
			return
		}
	}
}

// ForEachPair visits every pair in unspecified order until fn returns false.
func (m *Map[K, V]) ForEachPair(fn func(key K, value V) bool) {
	for k, v := range m.m {
		if !fn(k, v) {
			return
		}
	}
}

func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.m))
	for k := range m.m {
		keys = append(keys, k)
	}
	return keys
}

func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, len(m.m))
	for _, v := range m.m {
		values = append(values, v)
	}
	return values
}

func (m *Map[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, len(m.m))
	for k, v := range m.m {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	return pairs
}
