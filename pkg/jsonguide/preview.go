package jsonguide

import (
	"encoding/json"
	"fmt"

	"github.com/deepankarm/jsonguide/pkg/internal/partialjson"
	"github.com/deepankarm/jsonguide/pkg/jsonguide/schema"
)

// PreviewResult is partial output repaired into a complete document.
type PreviewResult struct {
	// JSON is a valid instance of the schema. Values the text has not
	// finished are closed or trimmed; values it has not reached are zero.
	JSON json.RawMessage `json:"json"`

	// Incomplete lists the paths of values that are cut off or missing,
	// e.g. "cities[1]" or "mayor.name".
	Incomplete []string `json:"incomplete"`

	// TruncatedAt names the construct the text stops in, such as "string"
	// or "key". It is "complete" when the value is finished.
	TruncatedAt string `json:"truncated_at"`

	paths partialjson.PathSet
}

// Preview repairs partial output into a document valid for node, so callers
// can render a value while it is still being generated.
func Preview(text string, node *schema.Node) (*PreviewResult, error) {
	res, err := partialjson.NewParser().Parse([]byte(text), node)
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}

	incomplete := make([]string, 0, len(res.Incomplete))
	for _, path := range res.Incomplete {
		incomplete = append(incomplete, partialjson.JoinPath(path))
	}
	return &PreviewResult{
		JSON:        res.Repaired,
		Incomplete:  incomplete,
		TruncatedAt: res.TruncatedAt,
		paths:       partialjson.NewPathSet(res.Incomplete),
	}, nil
}

// Complete reports whether the text already is the whole document.
func (r *PreviewResult) Complete() bool {
	return r.TruncatedAt == "complete" && len(r.Incomplete) == 0
}

// IsIncomplete reports whether the value at path, or one of its parents,
// is cut off or missing.
func (r *PreviewResult) IsIncomplete(path string) bool {
	return r.paths.Covers(path)
}

// Decode unmarshals the repaired document into v.
func (r *PreviewResult) Decode(v any) error {
	if err := json.Unmarshal(r.JSON, v); err != nil {
		return fmt.Errorf("decode preview: %w", err)
	}
	return nil
}
