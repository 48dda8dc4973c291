// Package reflectutil maps Go types onto the JSON types the engine supports.
package reflectutil

import "reflect"

// JSONSchemaType returns the JSON Schema type name of a Go type: "string",
// "number", "boolean", "array" or "object". Every integer and float kind is a
// "number". Maps, interfaces and other kinds cannot be completed against and
// return "".
func JSONSchemaType(t reflect.Type) string {
	if t == nil {
		return ""
	}
	t = UnwrapPointer(t)

	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct:
		return "object"
	}
	return ""
}

// UnwrapPointer strips every level of pointer indirection.
func UnwrapPointer(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
