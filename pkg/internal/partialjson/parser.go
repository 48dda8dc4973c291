package partialjson

import (
	"bytes"
	"encoding/json"
	"strconv"
	"unicode/utf8"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/deepankarm/jsonguide/pkg/jsonguide/schema"
)

// Parser repairs incomplete JSON into a complete document shaped by a schema.
type Parser struct{}

// NewParser creates a parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse repairs data into valid JSON for node. Unfinished values are closed
// or trimmed to their last complete form, and properties the text has not
// reached yet are filled with the zero value of their kind. A nil node
// repairs the text without a schema.
func (p *Parser) Parse(data []byte, node *schema.Node) (*ParseResult, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return &ParseResult{
			Repaired:    zeroValue(node),
			Incomplete:  [][]string{},
			TruncatedAt: "value",
		}, nil
	}

	jp := &jsonParser{
		data:       data,
		incomplete: [][]string{},
	}

	return jp.parse(node)
}

type jsonParser struct {
	data []byte
	pos  int

	// Result tracking
	incomplete [][]string
	path       []string
}

func (p *jsonParser) parse(node *schema.Node) (*ParseResult, error) {
	repaired, truncatedAt := p.parseValue(node)

	return &ParseResult{
		Repaired:    repaired,
		Incomplete:  p.incomplete,
		TruncatedAt: truncatedAt,
	}, nil
}

// parseValue parses the value for node and returns repaired bytes + truncation type.
// A value of the wrong kind is consumed and replaced by the zero value.
func (p *jsonParser) parseValue(node *schema.Node) ([]byte, string) {
	p.skipWhitespace()

	if p.pos >= len(p.data) {
		p.markIncomplete()
		return zeroValue(node), "value"
	}

	if node == nil {
		return p.parseAny()
	}
	if !startsKind(p.data[p.pos], node.Kind()) {
		_, truncatedAt := p.parseAny()
		p.markIncomplete()
		return zeroValue(node), truncatedAt
	}

	switch node.Kind() {
	case schema.KindObject:
		return p.parseObject(node)
	case schema.KindArray:
		return p.parseArray(node.Items())
	case schema.KindString:
		return p.parseString()
	case schema.KindBoolean:
		return p.parseBoolean()
	default:
		return p.parseNumber()
	}
}

// parseAny parses whatever value comes next, without a schema.
func (p *jsonParser) parseAny() ([]byte, string) {
	switch p.data[p.pos] {
	case '{':
		return p.parseObject(nil)
	case '[':
		return p.parseArray(nil)
	case '"':
		return p.parseString()
	case 't', 'f':
		return p.parseBoolean()
	case 'n':
		return p.parseNull()
	default:
		if isNumberStart(p.data[p.pos]) {
			return p.parseNumber()
		}
		// Unknown character - return null
		return []byte("null"), "value"
	}
}

func startsKind(ch byte, kind schema.Kind) bool {
	switch kind {
	case schema.KindObject:
		return ch == '{'
	case schema.KindArray:
		return ch == '['
	case schema.KindString:
		return ch == '"'
	case schema.KindBoolean:
		return ch == 't' || ch == 'f'
	case schema.KindNumber:
		return isNumberStart(ch)
	default:
		return false
	}
}

// parseObject collects the members present in the text. With a schema the
// output holds exactly the declared properties in declaration order; members
// the schema does not declare are dropped.
func (p *jsonParser) parseObject(node *schema.Node) ([]byte, string) {
	p.pos++ // consume '{'
	members := orderedmap.New[string, []byte]()
	truncatedAt := "complete"
	closed := false
	first := true

	for {
		p.skipWhitespace()

		if p.pos >= len(p.data) {
			truncatedAt = "object"
			break
		}

		if p.data[p.pos] == '}' {
			p.pos++
			closed = true
			break
		}

		if !first {
			if p.data[p.pos] != ',' {
				truncatedAt = "object"
				break
			}
			p.pos++ // consume ','
			p.skipWhitespace()
		}
		first = false

		// Parse key
		if p.pos >= len(p.data) || p.data[p.pos] != '"' {
			truncatedAt = "key"
			break
		}

		keyBytes, keyTrunc := p.parseString()
		if keyTrunc != "complete" {
			// Incomplete key - don't include it
			truncatedAt = keyTrunc
			break
		}
		key := unquote(keyBytes)
		p.path = append(p.path, key)

		p.skipWhitespace()

		// Parse colon
		if p.pos >= len(p.data) || p.data[p.pos] != ':' {
			p.path = p.path[:len(p.path)-1]
			truncatedAt = "key"
			break
		}
		p.pos++ // consume ':'

		var child *schema.Node
		declared := node == nil
		if node != nil {
			child, declared = node.Property(key)
		}
		valueBytes, valueTrunc := p.parseValue(child)
		if declared {
			members.Set(key, valueBytes)
		}

		p.path = p.path[:len(p.path)-1]

		if valueTrunc != "complete" {
			truncatedAt = valueTrunc
			break
		}
	}

	result := []byte{'{'}
	if node == nil {
		for pair := members.Oldest(); pair != nil; pair = pair.Next() {
			result = appendMember(result, pair.Key, pair.Value)
		}
		return append(result, '}'), truncatedAt
	}

	for name, child := range node.Properties() {
		value, ok := members.Get(name)
		if !ok {
			p.path = append(p.path, name)
			p.markIncomplete()
			p.path = p.path[:len(p.path)-1]
			value = zeroValue(child)
			if closed && truncatedAt == "complete" {
				truncatedAt = "object"
			}
		}
		result = appendMember(result, name, value)
	}
	return append(result, '}'), truncatedAt
}

func appendMember(result []byte, key string, value []byte) []byte {
	if len(result) > 1 {
		result = append(result, ',')
	}
	result = append(result, quote(key)...)
	result = append(result, ':')
	return append(result, value...)
}

func (p *jsonParser) parseArray(items *schema.Node) ([]byte, string) {
	result := []byte{'['}
	p.pos++ // consume '['
	truncatedAt := "complete"
	first := true
	index := 0

	for {
		p.skipWhitespace()

		if p.pos >= len(p.data) {
			truncatedAt = "array"
			break
		}

		if p.data[p.pos] == ']' {
			p.pos++
			result = append(result, ']')
			return result, truncatedAt
		}

		if !first {
			if p.data[p.pos] != ',' {
				truncatedAt = "array"
				break
			}
			p.pos++ // consume ','
			p.skipWhitespace()
		}
		first = false

		// Check if there's actually a value
		if p.pos >= len(p.data) {
			truncatedAt = "array"
			break
		}

		p.path = append(p.path, indexPath(index))
		valueBytes, valueTrunc := p.parseValue(items)

		// Add to result
		if len(result) > 1 {
			result = append(result, ',')
		}
		result = append(result, valueBytes...)

		p.path = p.path[:len(p.path)-1]
		index++

		if valueTrunc != "complete" {
			truncatedAt = valueTrunc
			break
		}
	}

	result = append(result, ']')
	return result, truncatedAt
}

// parseString reads a string value and rewrites it as a valid JSON string.
// Raw control characters are escaped and a backslash that starts no valid
// escape is dropped. An escape or multi-byte character cut off by the end of
// the text is dropped before the string is closed.
func (p *jsonParser) parseString() ([]byte, string) {
	out := []byte{'"'}
	p.pos++ // consume opening '"'

	for p.pos < len(p.data) {
		ch := p.data[p.pos]

		switch {
		case ch == '"':
			p.pos++
			return append(out, '"'), "complete"

		case ch == '\\':
			if p.pos+1 >= len(p.data) {
				p.pos++
				p.markIncomplete()
				return append(out, '"'), "string"
			}
			esc := p.data[p.pos+1]
			switch esc {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				out = append(out, '\\', esc)
				p.pos += 2
			case 'u':
				hex := p.pos + 2
				n := 0
				for n < 4 && hex+n < len(p.data) && isHexDigit(p.data[hex+n]) {
					n++
				}
				switch {
				case n == 4:
					out = append(out, p.data[p.pos:hex+4]...)
					p.pos = hex + 4
				case hex+n == len(p.data):
					p.pos = len(p.data)
					p.markIncomplete()
					return append(out, '"'), "string"
				default:
					// Not an escape; keep the text after the backslash.
					p.pos++
				}
			default:
				p.pos++
			}

		case ch < 0x20:
			out = appendControl(out, ch)
			p.pos++

		case ch < utf8.RuneSelf:
			out = append(out, ch)
			p.pos++

		default:
			rest := p.data[p.pos:]
			if !utf8.FullRune(rest) {
				p.pos = len(p.data)
				p.markIncomplete()
				return append(out, '"'), "string"
			}
			r, size := utf8.DecodeRune(rest)
			if r == utf8.RuneError && size == 1 {
				out = append(out, `\ufffd`...)
			} else {
				out = append(out, rest[:size]...)
			}
			p.pos += size
		}
	}

	// String not closed
	p.markIncomplete()
	return append(out, '"'), "string"
}

const hexDigits = "0123456789abcdef"

// appendControl appends the JSON escape of a control character.
func appendControl(out []byte, ch byte) []byte {
	switch ch {
	case '\n':
		return append(out, '\\', 'n')
	case '\r':
		return append(out, '\\', 'r')
	case '\t':
		return append(out, '\\', 't')
	case '\b':
		return append(out, '\\', 'b')
	case '\f':
		return append(out, '\\', 'f')
	default:
		return append(out, '\\', 'u', '0', '0', hexDigits[ch>>4], hexDigits[ch&0xf])
	}
}

// parseNumber reads the longest number prefix and rewrites it as a valid JSON
// number. Model output may carry a leading '+', a fraction without an
// integer part or leading zeros; those are normalised. A dangling '.', 'e' or
// exponent sign is dropped and marks the value incomplete.
func (p *jsonParser) parseNumber() ([]byte, string) {
	var out []byte
	truncated := false

	switch p.peek() {
	case '-':
		out = append(out, '-')
		p.pos++
	case '+':
		p.pos++
	}

	intStart := p.pos
	p.skipDigits()
	digits := bytes.TrimLeft(p.data[intStart:p.pos], "0")
	if len(digits) == 0 {
		digits = []byte{'0'}
	}
	out = append(out, digits...)
	hasDigits := p.pos > intStart

	if p.peek() == '.' {
		p.pos++
		fracStart := p.pos
		p.skipDigits()
		if p.pos > fracStart {
			out = append(out, '.')
			out = append(out, p.data[fracStart:p.pos]...)
		} else {
			truncated = true
		}
		hasDigits = hasDigits || p.pos > fracStart
	}

	if hasDigits && (p.peek() == 'e' || p.peek() == 'E') {
		p.pos++
		sign := p.peek()
		if sign == '+' || sign == '-' {
			p.pos++
		}
		expStart := p.pos
		p.skipDigits()
		if p.pos > expStart {
			out = append(out, 'e')
			if sign == '-' {
				out = append(out, '-')
			}
			out = append(out, p.data[expStart:p.pos]...)
		} else {
			truncated = true
		}
	}

	if !hasDigits {
		p.markIncomplete()
		return []byte{'0'}, "number"
	}
	if truncated {
		p.markIncomplete()
		return out, "number"
	}
	return out, "complete"
}

func (p *jsonParser) peek() byte {
	if p.pos < len(p.data) {
		return p.data[p.pos]
	}
	return 0
}

func (p *jsonParser) skipDigits() {
	for p.pos < len(p.data) && isDigit(p.data[p.pos]) {
		p.pos++
	}
}

func (p *jsonParser) parseBoolean() ([]byte, string) {
	expected := "false"
	if p.data[p.pos] == 't' {
		expected = "true"
	}

	for i := 0; i < len(expected); i++ {
		if p.pos >= len(p.data) || p.data[p.pos] != expected[i] {
			p.markIncomplete()
			return []byte(expected), "value"
		}
		p.pos++
	}

	return []byte(expected), "complete"
}

func (p *jsonParser) parseNull() ([]byte, string) {
	expected := "null"
	for i := 0; i < len(expected); i++ {
		if p.pos >= len(p.data) || p.data[p.pos] != expected[i] {
			p.markIncomplete()
			return []byte("null"), "value"
		}
		p.pos++
	}
	return []byte("null"), "complete"
}

func (p *jsonParser) markIncomplete() {
	if len(p.path) > 0 {
		pathCopy := make([]string, len(p.path))
		copy(pathCopy, p.path)
		p.incomplete = append(p.incomplete, pathCopy)
	}
}

func (p *jsonParser) skipWhitespace() {
	for p.pos < len(p.data) {
		ch := p.data[p.pos]
		if ch != ' ' && ch != '\t' && ch != '\n' && ch != '\r' {
			break
		}
		p.pos++
	}
}

// zeroValue is the placeholder for a value of node's kind that the text has
// not produced.
func zeroValue(node *schema.Node) []byte {
	switch node.Kind() {
	case schema.KindString:
		return []byte(`""`)
	case schema.KindNumber:
		return []byte("0")
	case schema.KindBoolean:
		return []byte("false")
	case schema.KindArray:
		return []byte("[]")
	case schema.KindObject:
		result := []byte{'{'}
		for name, child := range node.Properties() {
			result = appendMember(result, name, zeroValue(child))
		}
		return append(result, '}')
	default:
		return []byte("null")
	}
}

func quote(s string) []byte {
	b, err := json.Marshal(s)
	if err != nil {
		return []byte(`""`)
	}
	return b
}

func unquote(b []byte) string {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return string(b[1 : len(b)-1])
	}
	return s
}

func indexPath(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isNumberStart(ch byte) bool {
	return isDigit(ch) || ch == '-' || ch == '+' || ch == '.'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
