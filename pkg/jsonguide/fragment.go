package jsonguide

import (
	"strconv"
	"strings"
)

// FragmentKind identifies the variant held by a Fragment.
type FragmentKind uint8

const (
	// LiteralFragment is concrete text to append, possibly followed by the
	// end of the value.
	LiteralFragment FragmentKind = iota + 1
	// EndFragment marks the open value as complete.
	EndFragment
	// OpenFragment stands for any run of characters without an unescaped
	// double quote. It only appears while a string is open.
	OpenFragment
)

func (k FragmentKind) String() string {
	switch k {
	case LiteralFragment:
		return "Literal"
	case EndFragment:
		return "End"
	case OpenFragment:
		return "Open"
	default:
		return "FragmentKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// WireEnd is the byte that marks the end of a value on the wire.
const WireEnd = "\x00"

// Fragment is one unit of a completion.
type Fragment struct {
	kind FragmentKind
	text string
	ends bool
}

var (
	// End marks the open value as complete.
	End = Fragment{kind: EndFragment, ends: true}
	// Open is the open-string constraint.
	Open = Fragment{kind: OpenFragment}
)

// Literal returns a fragment that appends text.
func Literal(text string) Fragment {
	return Fragment{kind: LiteralFragment, text: text}
}

// LiteralThenEnd returns a fragment that appends text after which the value
// is complete. With empty text it is End.
func LiteralThenEnd(text string) Fragment {
	if text == "" {
		return End
	}
	return Fragment{kind: LiteralFragment, text: text, ends: true}
}

// Kind returns the fragment variant.
func (f Fragment) Kind() FragmentKind { return f.kind }

// Text returns the literal text; it is empty for End and Open.
func (f Fragment) Text() string { return f.text }

// Ends reports whether the value is complete once the fragment is applied.
func (f Fragment) Ends() bool { return f.ends }

// Equal reports whether two fragments are identical.
func (f Fragment) Equal(o Fragment) bool { return f == o }

// withoutEnd drops the end marker: inside a container, finishing an element
// does not finish the container. A bare End has nothing left and reports false.
func (f Fragment) withoutEnd() (Fragment, bool) {
	switch f.kind {
	case EndFragment:
		return Fragment{}, false
	case LiteralFragment:
		return Literal(f.text), true
	default:
		return f, true
	}
}

// Wire renders the fragment in the NUL-terminated wire form: literal text,
// followed by WireEnd when the fragment ends the value. Open has no literal
// form and renders as the empty string.
func (f Fragment) Wire() string {
	switch f.kind {
	case LiteralFragment:
		if f.ends {
			return f.text + WireEnd
		}
		return f.text
	case EndFragment:
		return WireEnd
	default:
		return ""
	}
}

// ParseWire is the inverse of Wire for literal and end fragments.
func ParseWire(s string) Fragment {
	if text, ok := strings.CutSuffix(s, WireEnd); ok {
		return LiteralThenEnd(text)
	}
	return Literal(s)
}

func (f Fragment) String() string {
	switch f.kind {
	case LiteralFragment:
		if f.ends {
			return strconv.Quote(f.text) + "+End"
		}
		return strconv.Quote(f.text)
	case EndFragment:
		return "End"
	case OpenFragment:
		return "Open"
	default:
		return "Fragment(invalid)"
	}
}

// OpenStringAllows reports whether s may be appended inside an open string:
// it must not contain a double quote that is not escaped by a backslash.
func OpenStringAllows(s string) bool {
	escaped := false
	for i := 0; i < len(s); i++ {
		switch {
		case escaped:
			escaped = false
		case s[i] == '\\':
			escaped = true
		case s[i] == '"':
			return false
		}
	}
	return true
}
