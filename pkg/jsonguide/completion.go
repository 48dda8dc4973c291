package jsonguide

import "strings"

// Mode tells a decoding loop how to act on a Completion.
type Mode uint8

const (
	// ModeIncompatible means no continuation can make the text valid.
	ModeIncompatible Mode = iota
	// ModeDone means the value is complete and nothing else is offered.
	ModeDone
	// ModeForce means exactly one literal is legal; append it outright.
	ModeForce
	// ModeBias means several continuations are legal; use them as hints.
	ModeBias
)

func (m Mode) String() string {
	switch m {
	case ModeIncompatible:
		return "incompatible"
	case ModeDone:
		return "done"
	case ModeForce:
		return "force"
	case ModeBias:
		return "bias"
	default:
		return "unknown"
	}
}

// Completion is the set of legal continuations for a text. The zero value is
// Incompatible.
type Completion struct {
	fragments []Fragment
}

// Incompatible is the completion for a text that cannot be reconciled with
// its schema.
var Incompatible = Completion{}

// NewCompletion returns a completion offering the given fragments in order.
// With no fragments it is Incompatible.
func NewCompletion(fragments ...Fragment) Completion {
	if len(fragments) == 0 {
		return Incompatible
	}
	return Completion{fragments: fragments}
}

// IsIncompatible reports whether no continuation exists.
func (c Completion) IsIncompatible() bool {
	return len(c.fragments) == 0
}

// Fragments returns a copy of the offered fragments.
func (c Completion) Fragments() []Fragment {
	if len(c.fragments) == 0 {
		return nil
	}
	out := make([]Fragment, len(c.fragments))
	copy(out, c.fragments)
	return out
}

// Len returns the number of offered fragments.
func (c Completion) Len() int { return len(c.fragments) }

// Has reports whether f is offered.
func (c Completion) Has(f Fragment) bool {
	for _, g := range c.fragments {
		if g == f {
			return true
		}
	}
	return false
}

// Done reports whether End is offered, i.e. the text already is a complete
// value.
func (c Completion) Done() bool {
	return c.Has(End)
}

// Mode classifies the completion for a decoding loop.
func (c Completion) Mode() Mode {
	switch len(c.fragments) {
	case 0:
		return ModeIncompatible
	case 1:
		switch c.fragments[0].kind {
		case EndFragment:
			return ModeDone
		case LiteralFragment:
			return ModeForce
		}
	}
	return ModeBias
}

// Accepts reports whether a candidate piece of text is compatible with at
// least one offered fragment. A literal accepts pieces that agree with it up
// to the shorter of the two; a piece may run past a literal unless that
// literal ends the value. Open accepts pieces allowed inside an open string.
// End accepts nothing, and the empty piece is never accepted.
func (c Completion) Accepts(piece string) bool {
	if piece == "" {
		return false
	}
	for _, f := range c.fragments {
		switch f.kind {
		case LiteralFragment:
			if len(piece) <= len(f.text) {
				if strings.HasPrefix(f.text, piece) {
					return true
				}
			} else if !f.ends && strings.HasPrefix(piece, f.text) {
				return true
			}
		case OpenFragment:
			if OpenStringAllows(piece) {
				return true
			}
		}
	}
	return false
}

// Wire renders the completion in the NUL-terminated wire form. It is nil for
// Incompatible.
func (c Completion) Wire() []string {
	if len(c.fragments) == 0 {
		return nil
	}
	out := make([]string, len(c.fragments))
	for i, f := range c.fragments {
		out[i] = f.Wire()
	}
	return out
}

func (c Completion) String() string {
	if len(c.fragments) == 0 {
		return "Incompatible"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, f := range c.fragments {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.String())
	}
	b.WriteByte(']')
	return b.String()
}

// withoutEnd strips end markers from every fragment. Dropping a bare End can
// leave nothing, which is Incompatible.
func (c Completion) withoutEnd() Completion {
	out := make([]Fragment, 0, len(c.fragments))
	for _, f := range c.fragments {
		if g, ok := f.withoutEnd(); ok {
			out = append(out, g)
		}
	}
	return NewCompletion(out...)
}

// with returns a completion offering c's fragments followed by more.
func (c Completion) with(more []Fragment) Completion {
	out := make([]Fragment, 0, len(c.fragments)+len(more))
	out = append(out, c.fragments...)
	out = append(out, more...)
	return NewCompletion(out...)
}
