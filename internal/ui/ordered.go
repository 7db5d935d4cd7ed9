package ui

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/ado/internal/errors"
)

// OrderedMap is a string-keyed mapping that serializes in insertion order.
// The zero value is ready to use. Maps serialize the same by value or by pointer.
type OrderedMap struct {
	keys   []string
	values map[string]any
}

// NewOrderedMap builds a map from alternating key/value pairs.
// It panics if a key is not a string or a value is missing.
func NewOrderedMap(pairs ...any) *OrderedMap {
	if len(pairs)%2 != 0 {
		panic("ui.NewOrderedMap: odd number of arguments")
	}
	m := &OrderedMap{}
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic("ui.NewOrderedMap: key is not a string")
		}
		m.Set(key, pairs[i+1])
	}
	return m
}

// Set stores value under key. Existing keys keep their position.
func (m *OrderedMap) Set(key string, value any) {
	if m.values == nil {
		m.values = map[string]any{}
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *OrderedMap) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *OrderedMap) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int {
	return len(m.keys)
}

// MarshalJSON writes the entries as a JSON object in insertion order.
func (m OrderedMap) MarshalJSON() ([]byte, error) {
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
		v, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, errors.Wrapf(err, "key %q", key)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML returns a mapping node with the entries in insertion order.
func (m OrderedMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range m.keys {
		var value yaml.Node
		if err := value.Encode(m.values[key]); err != nil {
			return nil, errors.Wrapf(err, "key %q", key)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&value,
		)
	}
	return node, nil
}
