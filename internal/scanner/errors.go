package scanner

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAtBrace is returned by brace extraction when the cursor is not on '{'.
	ErrNotAtBrace = errors.New("scanner: cursor is not at '{'")
	// ErrUnbalanced is returned when the input ends before a structure closes.
	ErrUnbalanced = errors.New("scanner: unbalanced structure")
)

// PreconditionError describes a call made in a state its contract forbids.
// Scanner methods panic with a *PreconditionError; these are bugs in the
// calling parser, not malformed input.
type PreconditionError struct {
	Op     string
	Pos    int
	Reason string
	Window string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("scanner: %s at %d: %s [%s]", e.Op, e.Pos, e.Reason, e.Window)
}

func (s *Scanner) violation(op, reason string) *PreconditionError {
	return &PreconditionError{
		Op:     op,
		Pos:    s.pos,
		Reason: reason,
		Window: s.Window(DefaultWindow),
	}
}
