package schema_test

import (
	"errors"
	"testing"

	"github.com/deepankarm/jsonguide/pkg/jsonguide/schema"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestParseYAML(t *testing.T) {
	node, err := schema.ParseYAML([]byte(`
type: object
properties:
  name:
    type: string
  scores:
    type: array
    items:
      type: number
  active:
    type: boolean
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"name", "scores", "active"}, node.Names()); diff != "" {
		t.Errorf("property order mismatch (-want +got):\n%s", diff)
	}
	scores, _ := node.Property("scores")
	if scores.Items().Kind() != schema.KindNumber {
		t.Errorf("scores items kind = %v", scores.Items().Kind())
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errType schema.ErrorType
	}{
		{"bad yaml", "type: [", schema.ErrorTypeJSONDecode},
		{"scalar", "hello", schema.ErrorTypeInvalidNode},
		{"no type", "properties: {}", schema.ErrorTypeMissingType},
		{"unknown type", "type: integer", schema.ErrorTypeUnsupportedType},
		{"no items", "type: array", schema.ErrorTypeMissingItems},
		{"properties list", "type: object\nproperties: [a, b]", schema.ErrorTypeInvalidNode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.ParseYAML([]byte(tt.input))
			var errs schema.Errors
			if !errors.As(err, &errs) {
				t.Fatalf("expected schema.Errors, got %v", err)
			}
			if errs[0].Type != tt.errType {
				t.Errorf("error type = %q, want %q", errs[0].Type, tt.errType)
			}
		})
	}
}

func TestNodeUnmarshalYAML(t *testing.T) {
	var cfg struct {
		Schemas map[string]*schema.Node `yaml:"schemas"`
	}
	err := yaml.Unmarshal([]byte(`
schemas:
  capital:
    type: object
    properties:
      country: {type: string}
      capital: {type: string}
  flags:
    type: array
    items: {type: boolean}
`), &cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"country", "capital"}, cfg.Schemas["capital"].Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if cfg.Schemas["flags"].Items().Kind() != schema.KindBoolean {
		t.Errorf("flags items = %v", cfg.Schemas["flags"].Items().Kind())
	}
}
