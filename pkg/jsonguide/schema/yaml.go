package schema

import (
	"fmt"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a schema written in YAML. Mapping order in the document
// is the property order.
func ParseYAML(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, Errors{{Loc: []string{}, Message: "failed to parse YAML schema: " + err.Error(), Type: ErrorTypeJSONDecode}}
	}
	return FromYAML(&doc)
}

// FromYAML converts a decoded YAML node into a Node.
func FromYAML(value *yaml.Node) (*Node, error) {
	if value.Kind == yaml.DocumentNode {
		if len(value.Content) == 0 {
			return nil, Errors{{Loc: []string{}, Message: "schema is empty", Type: ErrorTypeMissingType}}
		}
		value = value.Content[0]
	}
	var errs Errors
	n := convertYAML(value, []string{}, &errs)
	if len(errs) > 0 {
		return nil, errs
	}
	return n, nil
}

// UnmarshalYAML implements yaml.Unmarshaler so schemas can be embedded in
// YAML configuration files.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := FromYAML(value)
	if err != nil {
		return err
	}
	*n = *parsed
	return nil
}

func convertYAML(value *yaml.Node, loc []string, errs *Errors) *Node {
	if value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}
	if value.Kind != yaml.MappingNode {
		*errs = append(*errs, Error{Loc: loc, Message: fmt.Sprintf("line %d: schema must be a mapping", value.Line), Type: ErrorTypeInvalidNode})
		return nil
	}

	typ, props, items := lookupYAML(value, "type"), lookupYAML(value, "properties"), lookupYAML(value, "items")
	if typ == nil {
		*errs = append(*errs, Error{Loc: loc, Message: "missing \"type\"", Type: ErrorTypeMissingType})
		return nil
	}
	kind, ok := ParseKind(typ.Value)
	if typ.Kind != yaml.ScalarNode || !ok {
		*errs = append(*errs, Error{Loc: loc, Message: fmt.Sprintf("unsupported type %q", typ.Value), Type: ErrorTypeUnsupportedType})
		return nil
	}

	switch kind {
	case KindObject:
		om := orderedmap.New[string, *Node]()
		if props != nil {
			if props.Kind != yaml.MappingNode {
				*errs = append(*errs, Error{Loc: loc, Message: "\"properties\" must be a mapping", Type: ErrorTypeInvalidNode})
				return nil
			}
			for i := 0; i+1 < len(props.Content); i += 2 {
				name := props.Content[i].Value
				om.Set(name, convertYAML(props.Content[i+1], append(slices.Clip(loc), name), errs))
			}
		}
		return &Node{kind: KindObject, props: om}
	case KindArray:
		if items == nil {
			*errs = append(*errs, Error{Loc: loc, Message: "array schema has no \"items\"", Type: ErrorTypeMissingItems})
			return nil
		}
		return &Node{kind: KindArray, items: convertYAML(items, append(slices.Clip(loc), "items"), errs)}
	default:
		return &Node{kind: kind}
	}
}

func lookupYAML(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}
