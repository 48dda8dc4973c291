package jsonguide_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/deepankarm/jsonguide/pkg/jsonguide"
)

var (
	lit    = jsonguide.Literal
	litEnd = jsonguide.LiteralThenEnd
	end    = jsonguide.End
	open   = jsonguide.Open
)

// digits is the run of literals "0" through "9" the number generator always
// offers.
var digits = []jsonguide.Fragment{
	lit("0"), lit("1"), lit("2"), lit("3"), lit("4"),
	lit("5"), lit("6"), lit("7"), lit("8"), lit("9"),
}

// frags concatenates fragments and fragment runs into one slice.
func frags(parts ...any) []jsonguide.Fragment {
	var out []jsonguide.Fragment
	for _, p := range parts {
		switch v := p.(type) {
		case jsonguide.Fragment:
			out = append(out, v)
		case []jsonguide.Fragment:
			out = append(out, v...)
		default:
			panic("frags: unexpected part")
		}
	}
	return out
}

func checkFragments(t *testing.T, text string, got jsonguide.Completion, want []jsonguide.Fragment) {
	t.Helper()
	if diff := cmp.Diff(want, got.Fragments()); diff != "" {
		t.Errorf("Complete(%q) mismatch (-want +got):\n%s", text, diff)
	}
}
