package jsonguide_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/deepankarm/jsonguide/pkg/jsonguide"
	"github.com/deepankarm/jsonguide/pkg/jsonguide/schema"
)

func capitalSchema() *schema.Node {
	return schema.Object(
		schema.Prop("country", schema.String()),
		schema.Prop("capital", schema.String()),
		schema.Prop("cities", schema.Array(schema.String())),
	)
}

func TestSessionFeed(t *testing.T) {
	s := jsonguide.NewSession(capitalSchema())

	steps := []struct {
		chunk string
		want  []jsonguide.Fragment
	}{
		{``, frags(lit("{"))},
		{`{`, frags(lit(`"country":`))},
		{`"country":`, frags(lit(`"`))},
		{`"Fra`, frags(open)},
		{`nce"`, frags(lit(`, "capital":`))},
		{`, "capital": "Paris"`, frags(lit(`, "cities":`))},
		{`, "cities": ["Lyon"`, frags(lit(", "), lit("]"))},
		{`]`, frags(litEnd("}"))},
		{`}`, frags(end)},
	}
	for _, step := range steps {
		checkFragments(t, s.Text(), s.Feed(step.chunk), step.want)
	}

	if got := s.End(); got != at(len(s.Text())) {
		t.Errorf("End() = %v, want Offset(%d)", got, len(s.Text()))
	}
	if !s.Completion().Done() {
		t.Errorf("Completion() = %v, want End", s.Completion())
	}
}

func TestSessionReset(t *testing.T) {
	s := jsonguide.NewSession(schema.Boolean())
	s.Feed("tr")
	s.Reset()
	if s.Text() != "" {
		t.Errorf("Text() = %q after Reset, want empty", s.Text())
	}
	checkFragments(t, "f", s.Feed("f"), frags(litEnd("alse")))
}

func TestSessionConcurrentFeed(t *testing.T) {
	s := jsonguide.NewSession(schema.Array(schema.Number()))
	s.Feed("[")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Feed("1")
		}()
	}
	wg.Wait()

	if got := s.Text(); got != "["+strings.Repeat("1", 50) {
		t.Errorf("Text() = %q", got)
	}
}

func TestSessionPreview(t *testing.T) {
	s := jsonguide.NewSession(capitalSchema())
	s.Feed(`{"country": "France", "capital": "Par`)

	p, err := s.Preview()
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	want := `{"country":"France","capital":"Par","cities":[]}`
	if string(p.JSON) != want {
		t.Errorf("JSON = %s, want %s", p.JSON, want)
	}
}
