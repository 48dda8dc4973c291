package schema

import "github.com/deepankarm/jsonguide/pkg/internal/errors"

// Error describes one problem found while loading a schema.
type Error = errors.SchemaError

// Errors collects every problem found while loading a schema.
type Errors = errors.SchemaErrors

// ErrorType categorises an Error.
type ErrorType = errors.ErrorType

const (
	ErrorTypeJSONDecode      = errors.ErrorTypeJSONDecode
	ErrorTypeMissingType     = errors.ErrorTypeMissingType
	ErrorTypeUnsupportedType = errors.ErrorTypeUnsupportedType
	ErrorTypeMissingItems    = errors.ErrorTypeMissingItems
	ErrorTypeInvalidNode     = errors.ErrorTypeInvalidNode
)
