package jsonguide

import "strconv"

// EndState classifies the result of locating the end of a value.
type EndState uint8

const (
	// NotYetEnded means the text is a valid-so-far but unfinished prefix of
	// the value.
	NotYetEnded EndState = iota
	// Ended means the value ends exactly at Offset.
	Ended
	// EndsOrContinues means the text is a complete number that further
	// digits could still extend. Offset is where it ends if it stops now.
	EndsOrContinues
)

func (s EndState) String() string {
	switch s {
	case NotYetEnded:
		return "NotYetEnded"
	case Ended:
		return "Ended"
	case EndsOrContinues:
		return "EndsOrContinues"
	default:
		return "EndState(" + strconv.Itoa(int(s)) + ")"
	}
}

// EndPosition is the result of FindEnd. Offset is an exclusive byte index into
// the text that was searched, including any leading whitespace; it is zero
// when State is NotYetEnded.
type EndPosition struct {
	State  EndState
	Offset int
}

// EndsAt returns the position of a value that ends at offset n.
func EndsAt(n int) EndPosition {
	return EndPosition{State: Ended, Offset: n}
}

// Resolved reports whether the end was located without ambiguity.
func (p EndPosition) Resolved() bool {
	return p.State == Ended
}

func (p EndPosition) String() string {
	switch p.State {
	case Ended:
		return "Offset(" + strconv.Itoa(p.Offset) + ")"
	case EndsOrContinues:
		return "EndsOrContinues(" + strconv.Itoa(p.Offset) + ")"
	default:
		return p.State.String()
	}
}

var notYetEnded = EndPosition{State: NotYetEnded}

func endsOrContinues(n int) EndPosition {
	return EndPosition{State: EndsOrContinues, Offset: n}
}
