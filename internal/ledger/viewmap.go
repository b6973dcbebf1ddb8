package ledger

import (
	"bytes"
	"encoding/json"
)

// viewMap is a string-keyed map that marshals its entries in insertion
// order. Setting an existing key replaces the value but keeps the key's
// original position, so duplicate rent_month rows behave last-write-wins
// in the order the rows came back from the store.
type viewMap[V any] struct {
	keys   []string
	values map[string]V
}

func newViewMap[V any]() *viewMap[V] {
	return &viewMap[V]{values: make(map[string]V)}
}

func (m *viewMap[V]) Set(key string, value V) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *viewMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *viewMap[V]) Len() int {
	return len(m.keys)
}

func (m *viewMap[V]) Keys() []string {
	return m.keys
}

func (m *viewMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
