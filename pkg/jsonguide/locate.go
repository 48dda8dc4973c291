package jsonguide

import "github.com/deepankarm/jsonguide/pkg/jsonguide/schema"

// FindEnd locates the end of the value described by node at the start of
// text. Leading whitespace is allowed and counted in the offset. A node of
// unknown kind never ends.
func FindEnd(text string, node *schema.Node) EndPosition {
	switch node.Kind() {
	case schema.KindString:
		return FindStringEnd(text)
	case schema.KindNumber:
		return FindNumberEnd(text)
	case schema.KindBoolean:
		return FindBooleanEnd(text)
	case schema.KindArray:
		return FindArrayEnd(text)
	case schema.KindObject:
		return FindObjectEnd(text)
	default:
		return notYetEnded
	}
}

// FindStringEnd locates the closing quote of a string value.
func FindStringEnd(text string) EndPosition {
	i := skipSpace(text, 0)
	if i == len(text) || text[i] != '"' {
		return notYetEnded
	}
	if end, closed := scanString(text, i); closed {
		return EndsAt(end)
	}
	return notYetEnded
}

// FindNumberEnd locates the end of a number value. A number that runs to the
// end of text could still grow, so the result is EndsOrContinues; one that
// is followed only by the unfinished tail of a longer number (as in "5." or
// "5e-") has not ended yet.
func FindNumberEnd(text string) EndPosition {
	i := skipSpace(text, 0)
	end := scanNumber(text, i, false)
	switch {
	case end < 0:
		return notYetEnded
	case end == len(text):
		return endsOrContinues(end)
	case numberPrefix(text[i:], false):
		return notYetEnded
	default:
		return EndsAt(end)
	}
}

// findElementEnd is FindEnd for a value nested in an array or object. A
// number the generator wrote in its lenient form, such as "+5" or ".5",
// ends where a JSON number would, so the container can go on past it.
func findElementEnd(text string, node *schema.Node) EndPosition {
	pos := FindEnd(text, node)
	if pos.State != NotYetEnded || node.Kind() != schema.KindNumber {
		return pos
	}
	i := skipSpace(text, 0)
	end := scanNumber(text, i, true)
	switch {
	case end < 0:
		return pos
	case end == len(text):
		return endsOrContinues(end)
	case numberPrefix(text[i:], true):
		return pos
	default:
		return EndsAt(end)
	}
}

// FindBooleanEnd locates the end of a true or false literal.
func FindBooleanEnd(text string) EndPosition {
	i := skipSpace(text, 0)
	for _, lit := range booleans {
		if len(text)-i >= len(lit) && text[i:i+len(lit)] == lit {
			return EndsAt(i + len(lit))
		}
	}
	return notYetEnded
}

// FindArrayEnd locates the bracket closing an array value.
func FindArrayEnd(text string) EndPosition {
	return findClose(text, '[', ']')
}

// FindObjectEnd locates the brace closing an object value.
func FindObjectEnd(text string) EndPosition {
	return findClose(text, '{', '}')
}

var booleans = [...]string{"true", "false"}

// findClose scans for the delimiter that brings the nesting depth of open
// back to zero. Delimiters inside strings are ignored. Only open and close
// are counted, so other container kinds nested inside are skipped over.
func findClose(text string, open, close byte) EndPosition {
	i := skipSpace(text, 0)
	if i == len(text) || text[i] != open {
		return notYetEnded
	}
	depth := 0
	for ; i < len(text); i++ {
		switch text[i] {
		case '"':
			end, closed := scanString(text, i)
			if !closed {
				return notYetEnded
			}
			i = end - 1
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return EndsAt(i + 1)
			}
		}
	}
	return notYetEnded
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// skipSpace returns the index of the first non-whitespace byte at or after i.
func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

func isBlank(s string) bool {
	return skipSpace(s, 0) == len(s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func skipDigits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

// scanString expects s[i] to be an opening quote and returns the index just
// past the matching closing quote. A backslash escapes whatever follows it.
func scanString(s string, i int) (int, bool) {
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case '"':
			return j + 1, true
		}
	}
	return len(s), false
}

// scanNumber matches -?\d+(\.\d+)?([eE][+-]?\d+)? at i and returns the index
// past the match, or -1 if there is none. Optional parts that are only
// partly present are not consumed. The lenient form also takes a leading '+'
// and a fraction without an integer part, as numberPrefix does.
func scanNumber(s string, i int, lenient bool) int {
	j := i
	if j < len(s) && (s[j] == '-' || lenient && s[j] == '+') {
		j++
	}
	end := skipDigits(s, j)
	if end == j && !lenient {
		return -1
	}
	if end < len(s) && s[end] == '.' {
		if k := skipDigits(s, end+1); k > end+1 {
			end = k
		}
	}
	if end == j {
		return -1
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		k := end + 1
		if k < len(s) && (s[k] == '+' || s[k] == '-') {
			k++
		}
		if d := skipDigits(s, k); d > k {
			end = d
		}
	}
	return end
}

// numberPrefix reports whether s can be extended into a number. The strict
// form is the JSON number grammar above. The lenient form is what the
// generator may produce: a leading '+' and a fraction without an integer part
// are allowed. Both require a digit before the exponent marker.
func numberPrefix(s string, lenient bool) bool {
	i := 0
	if i < len(s) && (s[i] == '-' || lenient && s[i] == '+') {
		i++
	}
	d := skipDigits(s, i)
	whole := d > i
	i = d
	if i < len(s) && s[i] == '.' {
		if !lenient && !whole {
			return false
		}
		i = skipDigits(s, i+1)
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		if i == 0 || !isDigit(s[i-1]) {
			return false
		}
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		i = skipDigits(s, i)
	}
	return i == len(s)
}
