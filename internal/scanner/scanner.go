package scanner

import (
	"fmt"

	"fortio.org/safecast"

	"fluentscan/internal/source"
)

// Scanner is a cursor over an immutable text buffer.
//
// Scanner is a value type: copying it (or calling Clone) yields an
// independent cursor over the same buffer. Speculative scans run on a copy
// and are made visible with Commit.
type Scanner struct {
	buf  string
	pos  int
	file source.FileID
}

// New creates a scanner positioned at the start of text.
func New(text string) Scanner {
	return Scanner{buf: text}
}

// NewFile creates a scanner over the content of a loaded source file.
// Spans produced by SpanFrom carry the file's ID.
func NewFile(f *source.File) Scanner {
	return Scanner{buf: string(f.Content), file: f.ID}
}

// Len returns the length of the buffer in bytes.
func (s *Scanner) Len() int { return len(s.buf) }

// Position returns the cursor offset.
func (s *Scanner) Position() int { return s.pos }

// Remaining returns the number of unread bytes.
func (s *Scanner) Remaining() int { return len(s.buf) - s.pos }

// HasCurrent reports whether a byte is available at the cursor.
func (s *Scanner) HasCurrent() bool { return s.pos < len(s.buf) }

// HasNext reports whether a byte is available after the current one.
// It is false when exactly one byte remains.
func (s *Scanner) HasNext() bool { return s.pos < len(s.buf)-1 }

// Rest returns everything from the cursor to the end of the buffer.
func (s *Scanner) Rest() string { return s.buf[s.pos:] }

// Text returns the whole buffer.
func (s *Scanner) Text() string { return s.buf }

// Current returns the byte at the cursor. It panics when exhausted.
func (s *Scanner) Current() byte {
	return s.PeekAt(0)
}

// PeekAt returns the byte at cursor+offset. Reading outside the buffer is a
// precondition violation.
func (s *Scanner) PeekAt(offset int) byte {
	i := s.pos + offset
	if i < 0 || i >= len(s.buf) {
		panic(s.violation("PeekAt", fmt.Sprintf("offset %d is outside the buffer", offset)))
	}
	return s.buf[i]
}

// Advance moves the cursor n bytes forward (or back when n is negative).
func (s *Scanner) Advance(n int) *Scanner {
	next := s.pos + n
	if next < 0 || next > len(s.buf) {
		panic(s.violation("Advance", fmt.Sprintf("cannot move by %d", n)))
	}
	s.pos = next
	return s
}

// AdvanceOne moves the cursor one byte forward.
func (s *Scanner) AdvanceOne() *Scanner {
	return s.Advance(1)
}

// Clone returns an independent cursor over the same buffer.
func (s *Scanner) Clone() Scanner {
	return *s
}

// Commit adopts the position of a clone taken from this scanner.
func (s *Scanner) Commit(c Scanner) {
	if c.buf != s.buf {
		panic(s.violation("Commit", "clone belongs to a different buffer"))
	}
	s.pos = c.pos
}

// Mark is a saved cursor position.
type Mark int

// Mark saves the current cursor position.
func (s *Scanner) Mark() Mark {
	return Mark(s.pos)
}

// Reset moves the cursor back (or forward) to a mark.
func (s *Scanner) Reset(m Mark) {
	if int(m) < 0 || int(m) > len(s.buf) {
		panic(s.violation("Reset", fmt.Sprintf("mark %d is outside the buffer", m)))
	}
	s.pos = int(m)
}

// SpanFrom returns the span between a mark and the cursor.
func (s *Scanner) SpanFrom(m Mark) source.Span {
	start, end := int(m), s.pos
	if start > end {
		start, end = end, start
	}
	return source.Span{
		File:  s.file,
		Start: toOffset(start),
		End:   toOffset(end),
	}
}

func toOffset(n int) uint32 {
	off, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("scanner offset overflow: %w", err))
	}
	return off
}

// Matches reports whether lit occurs at the cursor.
func (s *Scanner) Matches(lit string) bool {
	return s.MatchesAt(lit, 0)
}

// MatchesAt reports whether lit occurs at cursor+offset. It never reads past
// the buffer; an overrun is simply a mismatch.
func (s *Scanner) MatchesAt(lit string, offset int) bool {
	i := s.pos + offset
	if i < 0 || i+len(lit) > len(s.buf) {
		return false
	}
	return s.buf[i:i+len(lit)] == lit
}

// Eat consumes b if it is the current byte.
func (s *Scanner) Eat(b byte) bool {
	if s.HasCurrent() && s.buf[s.pos] == b {
		s.pos++
		return true
	}
	return false
}

// EatString consumes lit if it occurs at the cursor.
func (s *Scanner) EatString(lit string) bool {
	if !s.Matches(lit) {
		return false
	}
	s.pos += len(lit)
	return true
}
