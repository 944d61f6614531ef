// Package ordered provides an insertion-ordered string-keyed map whose YAML and
// JSON encodings keep the order entries were declared in.
package ordered

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"gopkg.in/yaml.v3"
)

// Map is an insertion-ordered map from name to V. The zero value is empty and
// ready to use.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

// New returns an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{}
}

// Set stores value under key. Replacing an existing key keeps its position.
func (m *Map[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m Map[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m Map[V]) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of entries.
func (m Map[V]) Len() int {
	return len(m.keys)
}

// IsZero reports whether the map is empty, so omitempty drops it.
func (m Map[V]) IsZero() bool {
	return len(m.keys) == 0
}

// Keys returns a copy of the keys in insertion order.
func (m Map[V]) Keys() []string {
	return append([]string(nil), m.keys...)
}

// All iterates entries in insertion order.
func (m Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy that shares no storage with m.
func (m Map[V]) Clone() Map[V] {
	out := Map[V]{
		keys:   append([]string(nil), m.keys...),
		values: make(map[string]V, len(m.values)),
	}
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// EntryError attributes a decoding failure to the entry it happened in.
type EntryError struct {
	Key  string
	Line int
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Key, e.Err)
}

// Unwrap exposes the decoding failure.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// UnmarshalYAML decodes a mapping node, preserving key order. Duplicate keys
// are rejected.
func (m *Map[V]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*m = Map[V]{}
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of names", value.Line)
	}

	decoded := Map[V]{}
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return err
		}
		if decoded.Has(key) {
			return fmt.Errorf("line %d: duplicate name %q", keyNode.Line, key)
		}

		var v V
		if err := DecodeNode(valNode, &v); err != nil {
			return &EntryError{Key: key, Line: valNode.Line, Err: err}
		}
		decoded.Set(key, v)
	}

	*m = decoded
	return nil
}

// MarshalYAML encodes the map as a mapping node in insertion order.
func (m Map[V]) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.keys {
		var valNode yaml.Node
		if err := valNode.Encode(m.values[k]); err != nil {
			return nil, fmt.Errorf("encode %q: %w", k, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&valNode,
		)
	}
	return node, nil
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m Map[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
