package partialjson

import (
	"testing"
)

func TestJoinPath(t *testing.T) {
	tests := []struct {
		path []string
		want string
	}{
		{[]string{}, ""},
		{[]string{"capital"}, "capital"},
		{[]string{"mayor", "name"}, "mayor.name"},
		{[]string{"[2]"}, "[2]"},
		{[]string{"cities", "[0]"}, "cities[0]"},
		{[]string{"regions", "[1]", "cities", "[0]", "name"}, "regions[1].cities[0].name"},
		{[]string{"[0]", "[1]"}, "[0][1]"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := JoinPath(tt.path); got != tt.want {
				t.Errorf("JoinPath(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewPathSet(t *testing.T) {
	set := NewPathSet([][]string{
		{"capital"},
		{"mayor", "name"},
		{"cities", "[3]"},
	})

	if len(set) != 3 {
		t.Fatalf("len = %d, want 3", len(set))
	}
	for _, p := range []string{"capital", "mayor.name", "cities[3]"} {
		if !set[p] {
			t.Errorf("missing %q", p)
		}
	}
	for _, p := range []string{"mayor", "name", "cities"} {
		if set[p] {
			t.Errorf("unexpected %q", p)
		}
	}
}

func TestPathSetCovers(t *testing.T) {
	set := PathSet{
		"mayor":      true,
		"cities[3]":  true,
		"regions[0]": true,
	}

	tests := []struct {
		path string
		want bool
	}{
		{"mayor", true},
		{"mayor.name", true},
		{"cities[3]", true},
		{"cities[3].name", true},
		{"regions[0].cities[1]", true},

		{"capital", false},
		{"cities", false},
		{"cities[2]", false},
		{"cities[30]", false},
		{"mayors", false},
		{"regions[1].cities[0]", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := set.Covers(tt.path); got != tt.want {
				t.Errorf("Covers(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
