// Package errors defines shared error types for jsonguide.
package errors

import (
	"fmt"
	"strings"
)

// ErrorType is an enum for schema error categories.
type ErrorType string

// Error type constants.
const (
	ErrorTypeJSONDecode      ErrorType = "json_decode"      // Schema document is not valid JSON/YAML
	ErrorTypeMissingType     ErrorType = "missing_type"     // Node has no "type" keyword
	ErrorTypeUnsupportedType ErrorType = "unsupported_type" // "type" is not one of the supported kinds
	ErrorTypeMissingItems    ErrorType = "missing_items"    // Array node without "items"
	ErrorTypeInvalidNode     ErrorType = "invalid_node"     // Node is structurally malformed
)

// SchemaError represents a schema error with location information.
type SchemaError struct {
	Loc     []string  // Path to the node, e.g., ["address", "items", "zip"]
	Message string    // Human-readable error message
	Type    ErrorType // Error category
}

// Error implements the error interface.
func (e SchemaError) Error() string {
	if len(e.Loc) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", strings.Join(e.Loc, "."), e.Message)
}

// SchemaErrors is a slice of SchemaError that implements error.
type SchemaErrors []SchemaError

// Error implements the error interface.
func (es SchemaErrors) Error() string {
	if len(es) == 0 {
		return "schema errors: (none)"
	}
	if len(es) == 1 {
		return es[0].Error()
	}
	var msgs []string
	for _, e := range es {
		msgs = append(msgs, e.Error())
	}
	return fmt.Sprintf("schema errors (%d): %s", len(es), strings.Join(msgs, "; "))
}

// Unwrap returns the errors as a slice for errors.As/errors.Is compatibility.
func (es SchemaErrors) Unwrap() []error {
	errs := make([]error, len(es))
	for i, e := range es {
		errs[i] = e
	}
	return errs
}

// Has reports whether any error in the slice is of the given type.
func (es SchemaErrors) Has(t ErrorType) bool {
	for _, e := range es {
		if e.Type == t {
			return true
		}
	}
	return false
}
