package theme

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/painter/internal/ordered"
)

// SlotKind tags the content of a Slot.
type SlotKind int

const (
	// Absent is the zero value: the slot takes the entry's default.
	Absent SlotKind = iota
	// Defined slots carry their own field references.
	Defined
	// Inherited slots copy the same position of a peer entry.
	Inherited
)

func (k SlotKind) String() string {
	switch k {
	case Defined:
		return "defined"
	case Inherited:
		return "inherited"
	default:
		return "none"
	}
}

// Slot is one state position of a composite entry. In YAML it is written as
// {defined: {...}}, {inherited: name}, none, null, or left out entirely.
type Slot[S any] struct {
	Kind      SlotKind
	Value     S
	Inherited string
}

// Define builds a Defined slot.
func Define[S any](value S) Slot[S] {
	return Slot[S]{Kind: Defined, Value: value}
}

// Inherit builds an Inherited slot naming a peer entry.
func Inherit[S any](name string) Slot[S] {
	return Slot[S]{Kind: Inherited, Inherited: name}
}

// None builds an Absent slot.
func None[S any]() Slot[S] {
	return Slot[S]{}
}

// UnmarshalYAML decodes the three slot shapes.
func (s *Slot[S]) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" || strings.EqualFold(value.Value, "none") {
			*s = Slot[S]{}
			return nil
		}
		return fmt.Errorf("line %d: slot must be none, {defined: ...} or {inherited: name}, got %q", value.Line, value.Value)
	case yaml.MappingNode:
	default:
		return fmt.Errorf("line %d: slot must be none, {defined: ...} or {inherited: name}", value.Line)
	}

	if len(value.Content) != 2 {
		return fmt.Errorf("line %d: slot takes exactly one of defined or inherited", value.Line)
	}

	key, body := value.Content[0].Value, value.Content[1]
	switch key {
	case "defined":
		var v S
		if err := ordered.DecodeNode(body, &v); err != nil {
			return err
		}
		*s = Define(v)
	case "inherited":
		var name string
		if err := body.Decode(&name); err != nil {
			return err
		}
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("line %d: inherited slot needs an entry name", body.Line)
		}
		*s = Inherit[S](name)
	case "none":
		*s = Slot[S]{}
	default:
		return fmt.Errorf("line %d: unknown slot tag %q", value.Content[0].Line, key)
	}
	return nil
}

// MarshalYAML encodes the slot in the shape UnmarshalYAML accepts.
func (s Slot[S]) MarshalYAML() (interface{}, error) {
	switch s.Kind {
	case Defined:
		return map[string]S{"defined": s.Value}, nil
	case Inherited:
		return map[string]string{"inherited": s.Inherited}, nil
	default:
		return "none", nil
	}
}
