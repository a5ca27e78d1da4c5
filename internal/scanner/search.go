package scanner

import (
	"fmt"
	"strings"
)

// ReadUntil reads up to, but not including, the first target within the next
// maxLength bytes and leaves the cursor on the target.
//
// When the cursor is already on target, or target does not occur in the
// window, it returns "" and the cursor does not move.
func (s *Scanner) ReadUntil(target byte, maxLength int) string {
	text, _ := s.TryReadUntil(target, maxLength)
	return text
}

// TryReadUntil is ReadUntil that tells a miss apart from an empty match.
// A target sitting right at the cursor is found with empty text.
func (s *Scanner) TryReadUntil(target byte, maxLength int) (string, bool) {
	if !s.HasCurrent() {
		return "", false
	}
	if s.buf[s.pos] == target {
		return "", true
	}
	end := len(s.buf)
	if maxLength < end-s.pos {
		end = s.pos + max(maxLength, 0)
	}
	idx := strings.IndexByte(s.buf[s.pos:end], target)
	if idx < 0 {
		return "", false
	}
	return s.take(s.pos + idx), true
}

// TryReadUntilString reads up to the first occurrence of lit, leaving the
// cursor on it. The search is unbounded.
func (s *Scanner) TryReadUntilString(lit string) (string, bool) {
	idx := strings.Index(s.buf[s.pos:], lit)
	if idx < 0 {
		return "", false
	}
	return s.take(s.pos + idx), true
}

// TryReadAfter is TryReadUntilString that also consumes lit. The returned text
// ends with lit.
func (s *Scanner) TryReadAfter(lit string) (string, bool) {
	idx := strings.Index(s.buf[s.pos:], lit)
	if idx < 0 {
		return "", false
	}
	return s.take(s.pos + idx + len(lit)), true
}

// ReadTo reads everything up to the absolute offset end. The cursor must not
// be past end already.
func (s *Scanner) ReadTo(end int) string {
	if end < s.pos {
		panic(s.violation("ReadTo", fmt.Sprintf("cursor is already past %d", end)))
	}
	if end > len(s.buf) {
		panic(s.violation("ReadTo", fmt.Sprintf("%d is beyond the buffer", end)))
	}
	return s.take(end)
}

// ReadRest consumes and returns the rest of the buffer.
func (s *Scanner) ReadRest() string {
	return s.take(len(s.buf))
}

// take returns buf[pos:end] and moves the cursor to end.
func (s *Scanner) take(end int) string {
	text := s.buf[s.pos:end]
	s.pos = end
	return text
}

// SkipUntil moves the cursor to the next target, or to the end of input.
func (s *Scanner) SkipUntil(target byte) *Scanner {
	if !s.HasCurrent() {
		return s
	}
	if idx := strings.IndexByte(s.buf[s.pos:], target); idx >= 0 {
		s.pos += idx
	} else {
		s.pos = len(s.buf)
	}
	return s
}

// SkipUntilString moves the cursor to the next occurrence of lit, or to the end of input.
func (s *Scanner) SkipUntilString(lit string) *Scanner {
	if !s.HasCurrent() {
		return s
	}
	if idx := strings.Index(s.buf[s.pos:], lit); idx >= 0 {
		s.pos += idx
	} else {
		s.pos = len(s.buf)
	}
	return s
}

// SkipAfter moves the cursor one past the next target, or to the end of input.
func (s *Scanner) SkipAfter(target byte) *Scanner {
	if !s.HasCurrent() {
		return s
	}
	if idx := strings.IndexByte(s.buf[s.pos:], target); idx >= 0 {
		s.pos += idx + 1
	} else {
		s.pos = len(s.buf)
	}
	return s
}

// SkipAfterString moves the cursor past the next occurrence of lit, or to the end of input.
func (s *Scanner) SkipAfterString(lit string) *Scanner {
	if !s.HasCurrent() {
		return s
	}
	if idx := strings.Index(s.buf[s.pos:], lit); idx >= 0 {
		s.pos += idx + len(lit)
	} else {
		s.pos = len(s.buf)
	}
	return s
}

// ReadBackUntil scans backwards from just before the cursor for target and
// returns the text between it and the cursor. The cursor moves to just after
// the target.
//
// It returns "" without moving when the cursor is at 0, when the preceding
// byte is target, or when target does not occur before the cursor.
func (s *Scanner) ReadBackUntil(target byte) string {
	if s.pos == 0 || s.buf[s.pos-1] == target {
		return ""
	}
	idx := strings.LastIndexByte(s.buf[:s.pos], target)
	if idx < 0 {
		return ""
	}
	text := s.buf[idx+1 : s.pos]
	s.pos = idx + 1
	return text
}
