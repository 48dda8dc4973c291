package schema

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Parse decodes a JSON Schema document into a Node.
//
// Only "type", "properties" and "items" are interpreted. Every node must carry
// a supported type; arrays must carry items. Unsupported documents are
// rejected here so that completion never meets an unknown node.
func Parse(data []byte) (*Node, error) {
	var s jsonschema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, Errors{{Loc: []string{}, Message: "failed to parse JSON schema: " + err.Error(), Type: ErrorTypeJSONDecode}}
	}
	return FromJSONSchema(&s)
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level schema variables.
func MustParse(data string) *Node {
	n, err := Parse([]byte(data))
	if err != nil {
		panic(err)
	}
	return n
}

// FromJSONSchema converts an invopop/jsonschema document into a Node.
func FromJSONSchema(s *jsonschema.Schema) (*Node, error) {
	var errs Errors
	n := convert(s, []string{}, &errs)
	if len(errs) > 0 {
		return nil, errs
	}
	return n, nil
}

func convert(s *jsonschema.Schema, loc []string, errs *Errors) *Node {
	if s == nil {
		*errs = append(*errs, Error{Loc: loc, Message: "schema is empty", Type: ErrorTypeMissingType})
		return nil
	}
	if s.Type == "" {
		*errs = append(*errs, Error{Loc: loc, Message: "missing \"type\"", Type: ErrorTypeMissingType})
		return nil
	}
	kind, ok := ParseKind(s.Type)
	if !ok {
		*errs = append(*errs, Error{Loc: loc, Message: fmt.Sprintf("unsupported type %q", s.Type), Type: ErrorTypeUnsupportedType})
		return nil
	}

	switch kind {
	case KindObject:
		om := orderedmap.New[string, *Node]()
		if s.Properties != nil {
			for p := s.Properties.Oldest(); p != nil; p = p.Next() {
				om.Set(p.Key, convert(p.Value, append(slices.Clip(loc), p.Key), errs))
			}
		}
		return &Node{kind: KindObject, props: om}
	case KindArray:
		if s.Items == nil {
			*errs = append(*errs, Error{Loc: loc, Message: "array schema has no \"items\"", Type: ErrorTypeMissingItems})
			return nil
		}
		return &Node{kind: KindArray, items: convert(s.Items, append(slices.Clip(loc), "items"), errs)}
	default:
		return &Node{kind: kind}
	}
}
