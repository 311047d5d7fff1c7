package ordered

import "slices"

// Map is a string-keyed map that preserves insertion order.
// The zero value is not usable; construct with New.
type Map struct {
	keys   []string
	values map[string]any
}

// New returns an empty Map.
func New() *Map {
	return &Map{values: make(map[string]any)}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order. The slice is a copy.
func (m *Map) Keys() []string {
	return slices.Clone(m.keys)
}

// At returns the key and value at position i in insertion order.
func (m *Map) At(i int) (string, any) {
	k := m.keys[i]
	return k, m.values[k]
}

// Get returns the value for key and whether it is present.
// A present key may hold a nil value.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has returns true if key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Set inserts or updates key. A new key is appended; an existing key
// keeps its position.
func (m *Map) Set(key string, v any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = v
}

// Delete removes key if present.
func (m *Map) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}

	delete(m.values, key)

	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
}

// Pop removes key and returns its value and whether it was present.
func (m *Map) Pop(key string) (any, bool) {
	v, ok := m.values[key]
	if ok {
		m.Delete(key)
	}

	return v, ok
}

// Clone returns a deep copy: nested *Map and []any values are cloned
// recursively, scalars are copied as-is.
func (m *Map) Clone() *Map {
	out := &Map{
		keys:   slices.Clone(m.keys),
		values: make(map[string]any, len(m.values)),
	}

	for k, v := range m.values {
		out.values[k] = CloneValue(v)
	}

	return out
}

// CloneValue deep-copies a value of the document model.
func CloneValue(v any) any {
	switch t := v.(type) {
	case *Map:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = CloneValue(e)
		}

		return out
	default:
		return v
	}
}
