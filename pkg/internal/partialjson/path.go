package partialjson

import "strings"

// JoinPath joins a JSON path slice into a dot-separated string.
// Array indices like "[0]" attach without a dot.
func JoinPath(path []string) string {
	var b strings.Builder
	for i, part := range path {
		if i > 0 && !strings.HasPrefix(part, "[") {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

// PathSet is a set of joined JSON paths.
type PathSet map[string]bool

// NewPathSet builds the set of joined paths for fast lookup.
func NewPathSet(paths [][]string) PathSet {
	set := make(PathSet, len(paths))
	for _, path := range paths {
		set[JoinPath(path)] = true
	}
	return set
}

// Covers reports whether jsonPath or one of its parents is in the set.
// For example, if "user" is in the set, "user.name" is covered too.
func (s PathSet) Covers(jsonPath string) bool {
	if s[jsonPath] {
		return true
	}
	for i := len(jsonPath) - 1; i >= 0; i-- {
		if jsonPath[i] == '.' || jsonPath[i] == '[' {
			if s[jsonPath[:i]] {
				return true
			}
		}
	}
	return false
}
