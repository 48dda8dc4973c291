package schema

import (
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/deepankarm/jsonguide/pkg/internal/reflectutil"
)

// ForType derives a Node from a Go type using its JSON field names and field
// order. Integer and float kinds become number nodes; nested structs are
// inlined. Every field becomes a mandatory property regardless of omitempty.
//
// Example:
//
//	type Answer struct {
//	    Country string  `json:"country"`
//	    Capital string  `json:"capital"`
//	    Score   float64 `json:"score"`
//	}
//
//	node, err := schema.ForType[Answer]()
func ForType[T any]() (*Node, error) {
	return FromJSONSchema(newReflector().ReflectFromType(reflect.TypeFor[T]()))
}

func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		Anonymous:                 true,
		DoNotReference:            true,
		AllowAdditionalProperties: true,
		Mapper:                    mapNumericKinds,
	}
}

// mapNumericKinds collapses Go's numeric kinds onto the single number type.
func mapNumericKinds(t reflect.Type) *jsonschema.Schema {
	if reflectutil.JSONSchemaType(t) == "number" {
		return &jsonschema.Schema{Type: "number"}
	}
	return nil
}
