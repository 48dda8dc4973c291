package jsonguide

import (
	"sync"

	"github.com/deepankarm/jsonguide/pkg/jsonguide/schema"
)

// Session accumulates output as a model streams it and answers for the text
// so far. Unlike Complete it holds state, so it is guarded by a mutex.
type Session struct {
	node   *schema.Node
	buffer []byte
	mu     sync.Mutex
}

// NewSession creates a session for node.
func NewSession(node *schema.Node) *Session {
	return &Session{
		node:   node,
		buffer: make([]byte, 0, 1024),
	}
}

// Feed appends a chunk of output and returns the continuations of the
// accumulated text.
//
// Example:
//
//	s := jsonguide.NewSession(node)
//
//	s.Feed(`{"country":`)        // ["\""]
//	s.Feed(`"France"`)           // [", \"capital\":"]
//	c := s.Feed(`, "capital": 4`) // Incompatible
func (s *Session) Feed(chunk string) Completion {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffer = append(s.buffer, chunk...)
	return Complete(string(s.buffer), s.node)
}

// Completion returns the continuations of the accumulated text.
func (s *Session) Completion() Completion {
	return Complete(s.Text(), s.node)
}

// End locates the end of the value in the accumulated text.
func (s *Session) End() EndPosition {
	return FindEnd(s.Text(), s.node)
}

// Preview repairs the accumulated text into a complete document.
func (s *Session) Preview() (*PreviewResult, error) {
	return Preview(s.Text(), s.node)
}

// Text returns the accumulated text.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.buffer)
}

// Reset clears the buffer and starts fresh.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffer = s.buffer[:0]
}
