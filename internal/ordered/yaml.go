package ordered

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements yaml.Unmarshaler. The node must be a mapping;
// keys decode as strings and values as the document model (scalars,
// []any, nested *Map). A duplicated key keeps its first position and
// takes the last value, matching plain map semantics.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping, got %v", node.Kind)
	}

	if m.values == nil {
		m.values = make(map[string]any, len(node.Content)/2)
	}

	for i := 0; i < len(node.Content); i += 2 {
		var key string

		err := node.Content[i].Decode(&key)
		if err != nil {
			return fmt.Errorf("invalid mapping key: %w", err)
		}

		val, err := decodeValue(node.Content[i+1])
		if err != nil {
			return fmt.Errorf("invalid value for key %q: %w", key, err)
		}

		m.Set(key, val)
	}

	return nil
}

// decodeValue converts a YAML node into the document model.
func decodeValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.MappingNode:
		sub := New()

		err := sub.UnmarshalYAML(node)
		if err != nil {
			return nil, err
		}

		return sub, nil

	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))

		for _, item := range node.Content {
			v, err := decodeValue(item)
			if err != nil {
				return nil, err
			}

			out = append(out, v)
		}

		return out, nil

	case yaml.ScalarNode:
		var v any

		err := node.Decode(&v)
		if err != nil {
			return nil, err
		}

		return v, nil

	case yaml.AliasNode:
		return decodeValue(node.Alias)

	default:
		return nil, fmt.Errorf("unsupported node kind %v", node.Kind)
	}
}

// MarshalYAML implements yaml.Marshaler, emitting a mapping node whose
// keys follow insertion order.
func (m *Map) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, key := range m.keys {
		keyNode := &yaml.Node{}

		err := keyNode.Encode(key)
		if err != nil {
			return nil, err
		}

		valNode, err := encodeValue(m.values[key])
		if err != nil {
			return nil, fmt.Errorf("cannot encode value for key %q: %w", key, err)
		}

		node.Content = append(node.Content, keyNode, valNode)
	}

	return node, nil
}

// encodeValue converts a document model value into a YAML node.
func encodeValue(v any) (*yaml.Node, error) {
	if v == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}

	node := &yaml.Node{}

	err := node.Encode(v)
	if err != nil {
		return nil, err
	}

	return node, nil
}
