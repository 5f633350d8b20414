// Package ordermap implements a minimal insertion-ordered map, used
// wherever the compiler's data model needs "declaration order" to
// survive a map lookup: rule order in ast.Specification, and rule
// order in the combined CompiledSpecification the emitter walks.
package ordermap

// Map is an insertion-ordered map from K to V.
type Map[K comparable, V any] struct {
	index map[K]int
	keys  []K
	vals  []V
}

// New returns an empty ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: make(map[K]int)}
}

// Set inserts or updates the value for key, preserving the key's
// original position if it already existed.
func (m *Map[K, V]) Set(key K, val V) {
	if i, ok := m.index[key]; ok {
		m.vals[i] = val
		return
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, val)
}

// Get looks up the value for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	i, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return m.vals[i], true
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.keys) }

// Each calls f for every entry in insertion order.
func (m *Map[K, V]) Each(f func(key K, val V)) {
	for i, k := range m.keys {
		f(k, m.vals[i])
	}
}
