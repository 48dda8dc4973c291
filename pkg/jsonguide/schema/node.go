// Package schema defines the schema tree that drives guided JSON generation.
//
// A Node is one of five kinds: string, number, boolean, object (an ordered set
// of mandatory properties) or array (a single items schema applied to every
// element). Nodes are immutable once built and safe to share between
// goroutines.
package schema

import (
	"encoding/json"
	"iter"

	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies the JSON type a Node describes.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindNumber
	KindBoolean
	KindObject
	KindArray
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindString:  "string",
	KindNumber:  "number",
	KindBoolean: "boolean",
	KindObject:  "object",
	KindArray:   "array",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return kindNames[KindInvalid]
	}
	return kindNames[k]
}

// ParseKind maps a JSON Schema "type" value to a Kind.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if Kind(k) != KindInvalid && name == s {
			return Kind(k), true
		}
	}
	return KindInvalid, false
}

// Node is an immutable schema node.
type Node struct {
	kind  Kind
	props *orderedmap.OrderedMap[string, *Node]
	items *Node
}

// Property is a named object member, used to build object nodes.
type Property struct {
	Name string
	Node *Node
}

// Prop creates a Property.
func Prop(name string, node *Node) Property {
	return Property{Name: name, Node: node}
}

// String returns a string node.
func String() *Node { return &Node{kind: KindString} }

// Number returns a number node.
func Number() *Node { return &Node{kind: KindNumber} }

// Boolean returns a boolean node.
func Boolean() *Node { return &Node{kind: KindBoolean} }

// Object returns an object node whose properties appear in the given order.
// A repeated name keeps its first position and the last node given for it.
func Object(props ...Property) *Node {
	om := orderedmap.New[string, *Node](orderedmap.WithCapacity[string, *Node](len(props)))
	for _, p := range props {
		om.Set(p.Name, p.Node)
	}
	return &Node{kind: KindObject, props: om}
}

// Array returns an array node whose elements all follow items.
func Array(items *Node) *Node {
	return &Node{kind: KindArray, items: items}
}

// Kind returns the node kind. A nil node reports KindInvalid.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindInvalid
	}
	return n.kind
}

// Items returns the element schema of an array node, or nil.
func (n *Node) Items() *Node {
	if n == nil {
		return nil
	}
	return n.items
}

// Properties iterates over an object's properties in declaration order.
func (n *Node) Properties() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		if n == nil || n.props == nil {
			return
		}
		for p := n.props.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Property looks up a property by name.
func (n *Node) Property(name string) (*Node, bool) {
	if n == nil || n.props == nil {
		return nil, false
	}
	return n.props.Get(name)
}

// NumProperties returns the number of declared properties.
func (n *Node) NumProperties() int {
	if n == nil || n.props == nil {
		return 0
	}
	return n.props.Len()
}

// Names returns the property names in declaration order.
func (n *Node) Names() []string {
	names := make([]string, 0, n.NumProperties())
	for name := range n.Properties() {
		names = append(names, name)
	}
	return names
}

// JSONSchema converts the node back to a JSON Schema document. Every object
// property is listed as required, since all of them are mandatory.
func (n *Node) JSONSchema() *jsonschema.Schema {
	s := &jsonschema.Schema{Type: n.Kind().String()}
	switch n.Kind() {
	case KindObject:
		s.Properties = jsonschema.NewProperties()
		for name, child := range n.Properties() {
			s.Properties.Set(name, child.JSONSchema())
			s.Required = append(s.Required, name)
		}
	case KindArray:
		s.Items = n.items.JSONSchema()
	}
	return s
}

// MarshalJSON implements json.Marshaler; property order is preserved.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.JSONSchema())
}

// UnmarshalJSON implements json.Unmarshaler using Parse.
func (n *Node) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*n = *parsed
	return nil
}

// String renders the node as compact JSON Schema.
func (n *Node) String() string {
	data, err := n.MarshalJSON()
	if err != nil {
		return n.Kind().String()
	}
	return string(data)
}
