package parse

import (
	"errors"

	"github.com/ef-ds/deque"
)

// ErrExhaustedInput is returned by Next when no tokens remain.
var ErrExhaustedInput = errors.New("no more command line tokens to consume")

// State is the token cursor the parsing engine and argument handlers consume
// from. It is forward-only except for Prepend, which re-injects a token so it
// is returned by the next call to Next - used for the value half of
// "--name=value" tokens.
type State interface {
	// Next returns the next token and advances. It fails with
	// ErrExhaustedInput when the cursor is at the end.
	Next() (string, error)
	// Prepend pushes tokens to the front of the cursor, in order: the first
	// of the given tokens is returned by the next call to Next.
	Prepend(tokens ...string)
	// Peek returns the token the next call to Next would return, without
	// advancing. The second return value is false at the end of input.
	Peek() (string, bool)
	// AtEnd reports whether no tokens remain.
	AtEnd() bool
	// Len returns the number of remaining tokens.
	Len() int
}

// DefaultState is the deque-backed State implementation.
type DefaultState struct {
	tokens deque.Deque
}

// NewState creates a State over the given token list. The caller is expected
// to have stripped the executable name already.
func NewState(args []string) State {
	s := &DefaultState{}
	for _, arg := range args {
		s.tokens.PushBack(arg)
	}

	return s
}

// Next returns the next token and advances the cursor.
func (s *DefaultState) Next() (string, error) {
	v, ok := s.tokens.PopFront()
	if !ok {
		return "", ErrExhaustedInput
	}

	return v.(string), nil
}

// Prepend pushes tokens back to the front of the cursor.
func (s *DefaultState) Prepend(tokens ...string) {
	for i := len(tokens) - 1; i >= 0; i-- {
		s.tokens.PushFront(tokens[i])
	}
}

// Peek returns the next token without advancing.
func (s *DefaultState) Peek() (string, bool) {
	v, ok := s.tokens.Front()
	if !ok {
		return "", false
	}

	return v.(string), true
}

// AtEnd reports whether the cursor is exhausted.
func (s *DefaultState) AtEnd() bool {
	return s.tokens.Len() == 0
}

// Len returns the number of remaining tokens.
func (s *DefaultState) Len() int {
	return s.tokens.Len()
}
