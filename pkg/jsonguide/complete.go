package jsonguide

import (
	"strings"

	"github.com/deepankarm/jsonguide/pkg/jsonguide/schema"
)

// Complete returns the continuations that keep text on a path toward a value
// valid for node. A node of unknown kind is Incompatible with every text.
func Complete(text string, node *schema.Node) Completion {
	switch node.Kind() {
	case schema.KindString:
		return CompleteString(text)
	case schema.KindNumber:
		return CompleteNumber(text)
	case schema.KindBoolean:
		return CompleteBoolean(text)
	case schema.KindArray:
		return CompleteArray(text, node)
	case schema.KindObject:
		return CompleteObject(text, node)
	default:
		return Incompatible
	}
}

// CompleteString completes a string value. Inside an open string anything
// without an unescaped quote is legal, so the answer is Open.
func CompleteString(text string) Completion {
	t := text[skipSpace(text, 0):]
	if t == "" {
		return NewCompletion(Literal(`"`))
	}
	if t[0] != '"' {
		return Incompatible
	}
	end, closed := scanString(t, 0)
	switch {
	case !closed:
		return NewCompletion(Open)
	case isBlank(t[end:]):
		return NewCompletion(End)
	default:
		return Incompatible
	}
}

var digitFragments = func() []Fragment {
	out := make([]Fragment, 10)
	for i := range out {
		out[i] = Literal(string(rune('0' + i)))
	}
	return out
}()

// CompleteNumber completes a number value one character at a time.
func CompleteNumber(text string) Completion {
	t := text[skipSpace(text, 0):]
	if t != "" && isSpace(t[len(t)-1]) {
		// Trailing whitespace can only follow a finished number.
		core := strings.TrimRight(t, " \t\r\n")
		if scanNumber(core, 0, true) == len(core) {
			return NewCompletion(End)
		}
		return Incompatible
	}
	if !numberPrefix(t, true) {
		return Incompatible
	}

	var last byte
	if t != "" {
		last = t[len(t)-1]
	}
	exponent := strings.ContainsAny(t, "eE")

	out := make([]Fragment, 0, 14)
	out = append(out, digitFragments...)
	if t == "" || last == 'e' || last == 'E' {
		out = append(out, Literal("+"), Literal("-"))
	}
	if !exponent && !strings.Contains(t, ".") {
		out = append(out, Literal("."))
	}
	if isDigit(last) {
		if !exponent {
			out = append(out, Literal("e"))
		}
		out = append(out, End)
	}
	return NewCompletion(out...)
}

// CompleteBoolean completes a true or false literal.
func CompleteBoolean(text string) Completion {
	t := text[skipSpace(text, 0):]
	if t == "" {
		return NewCompletion(LiteralThenEnd("true"), LiteralThenEnd("false"))
	}
	for _, lit := range booleans {
		if strings.HasPrefix(lit, t) {
			return NewCompletion(LiteralThenEnd(lit[len(t):]))
		}
		if rest, ok := strings.CutPrefix(t, lit); ok && isBlank(rest) {
			return NewCompletion(End)
		}
	}
	return Incompatible
}
