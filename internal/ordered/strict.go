package ordered

import (
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

var unmarshalerType = reflect.TypeFor[yaml.Unmarshaler]()

// DecodeNode is node.Decode(out) with unknown mapping keys rejected.
// Node.Decode does not carry the decoder's KnownFields setting, so nested
// entries decoded from a custom unmarshaler would otherwise drop typos
// silently.
func DecodeNode(node *yaml.Node, out any) error {
	if t := reflect.TypeOf(out); t != nil {
		if err := checkFields(node, t); err != nil {
			return err
		}
	}
	return node.Decode(out)
}

// checkFields walks plain structs only. Types with their own UnmarshalYAML
// check their own bodies.
func checkFields(node *yaml.Node, t reflect.Type) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || node.Kind != yaml.MappingNode {
		return nil
	}
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return nil
	}

	fields := make(map[string]reflect.Type, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = strings.ToLower(f.Name)
		}
		fields[name] = f.Type
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		ft, ok := fields[key.Value]
		if !ok {
			return fmt.Errorf("line %d: field %s not found in type %s", key.Line, key.Value, t)
		}
		if err := checkFields(node.Content[i+1], ft); err != nil {
			return err
		}
	}
	return nil
}
