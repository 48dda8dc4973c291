package jsonguide

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/deepankarm/jsonguide/pkg/jsonguide/schema"
)

// CompleteArray completes an array whose elements all follow node's items.
//
// While an element is unfinished only its own continuations are offered.
// Once it ends the answer is to continue the array or close it. A number
// element that could still grow keeps its continuations next to those two.
func CompleteArray(text string, node *schema.Node) Completion {
	items := node.Items()
	i := skipSpace(text, 0)
	if i == len(text) {
		return NewCompletion(Literal("["))
	}
	if text[i] != '[' {
		return Incompatible
	}
	i++
	if j := skipSpace(text, i); j < len(text) && text[j] == ']' {
		return closed(text[j+1:])
	}

	for {
		rest := text[i:]
		pos := findElementEnd(rest, items)
		var carried []Fragment
		switch pos.State {
		case NotYetEnded:
			return Complete(rest, items).withoutEnd()
		case EndsOrContinues:
			carried = Complete(rest, items).withoutEnd().fragments
		}
		i += pos.Offset

		j := skipSpace(text, i)
		if j == len(text) {
			return NewCompletion(Literal(", "), LiteralThenEnd("]")).with(carried)
		}
		switch text[j] {
		case ',':
			i = j + 1
		case ']':
			return closed(text[j+1:])
		default:
			return Incompatible
		}
	}
}

// CompleteObject completes an object holding every property of node in
// declaration order.
//
// Property names and their order are fixed, so a missing key is introduced
// with a single literal. Closing alternatives are withheld until every
// property has a finished value.
func CompleteObject(text string, node *schema.Node) Completion {
	i := skipSpace(text, 0)
	if i == len(text) {
		return NewCompletion(Literal("{"))
	}
	if text[i] != '{' {
		return Incompatible
	}
	i++

	var carried []Fragment
	first := true
	for name, value := range node.Properties() {
		token := quoteKey(name) + ":"
		j := skipSpace(text, i)
		sep := ""
		if !first {
			switch {
			case j == len(text):
				sep = ", "
			case text[j] == ',':
				j = skipSpace(text, j+1)
				carried = nil
			default:
				return Incompatible
			}
		}
		first = false

		n, missing, ok := matchKey(text[j:], token)
		if !ok {
			return Incompatible
		}
		if missing != "" {
			return NewCompletion(Literal(sep + missing)).with(carried)
		}
		i = j + n

		rest := text[i:]
		pos := findElementEnd(rest, value)
		carried = nil
		switch pos.State {
		case NotYetEnded:
			return Complete(rest, value).withoutEnd()
		case EndsOrContinues:
			carried = Complete(rest, value).withoutEnd().fragments
		}
		i += pos.Offset
	}

	j := skipSpace(text, i)
	switch {
	case j == len(text):
		return NewCompletion(LiteralThenEnd("}")).with(carried)
	case text[j] == '}':
		return closed(text[j+1:])
	default:
		return Incompatible
	}
}

// closed answers for a container whose closing delimiter is already written.
func closed(after string) Completion {
	if isBlank(after) {
		return NewCompletion(End)
	}
	return Incompatible
}

// matchKey matches the key token (a quoted name and a colon) at the start of
// s. Whitespace may separate the name from the colon. If s ends inside the
// token, missing holds the rest of it. ok is false when s diverges from the
// token.
func matchKey(s, token string) (n int, missing string, ok bool) {
	if len(s) < len(token) && strings.HasPrefix(token, s) {
		return 0, token[len(s):], true
	}
	quoted := token[:len(token)-1]
	if !strings.HasPrefix(s, quoted) {
		return 0, "", false
	}
	k := skipSpace(s, len(quoted))
	switch {
	case k == len(s):
		return 0, ":", true
	case s[k] == ':':
		return k + 1, "", true
	default:
		return 0, "", false
	}
}

// quoteKey renders name as a JSON string without HTML escaping.
func quoteKey(name string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(name); err != nil {
		return `""`
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
