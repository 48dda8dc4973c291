package jsonguide

import (
	"strings"

	"github.com/deepankarm/jsonguide/pkg/jsonguide/schema"
)

// Constrainer computes the legal continuations of partial output.
type Constrainer interface {
	Complete(text string) Completion
}

// ConstrainerFunc adapts a function to the Constrainer interface.
type ConstrainerFunc func(text string) Completion

// Complete calls f(text).
func (f ConstrainerFunc) Complete(text string) Completion { return f(text) }

// SchemaConstrainer constrains output to one schema. It holds no state
// besides the schema and is safe for concurrent use.
type SchemaConstrainer struct {
	node *schema.Node
}

// NewSchemaConstrainer returns a constrainer for node.
func NewSchemaConstrainer(node *schema.Node) *SchemaConstrainer {
	return &SchemaConstrainer{node: node}
}

// Schema returns the schema the constrainer enforces.
func (c *SchemaConstrainer) Schema() *schema.Node { return c.node }

// Complete returns Complete(text, c.Schema()).
func (c *SchemaConstrainer) Complete(text string) Completion {
	return Complete(text, c.node)
}

// FindEnd returns FindEnd(text, c.Schema()).
func (c *SchemaConstrainer) FindEnd(text string) EndPosition {
	return FindEnd(text, c.node)
}

// AfterPrompt wraps c for decoders that pass their whole history, prompt
// included. Everything up to and including the first occurrence of prompt is
// dropped before c sees the text. A history that does not contain the
// prompt is passed through unchanged.
func AfterPrompt(prompt string, c Constrainer) Constrainer {
	return ConstrainerFunc(func(history string) Completion {
		if _, after, ok := strings.Cut(history, prompt); ok {
			return c.Complete(after)
		}
		return c.Complete(history)
	})
}
