package scanner

import (
	"fmt"
	"strings"
)

// DefaultWindow is the number of bytes shown on each side of the cursor.
const DefaultWindow = 20

// CursorMarker separates the consumed and unread parts of a window.
const CursorMarker = "‸"

var windowEscaper = strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)

// Window renders up to radius bytes before and after the cursor with a marker
// at the cursor. The output is meant for people, not for parsing.
func (s *Scanner) Window(radius int) string {
	before, after := s.WindowParts(radius)
	return before + CursorMarker + after
}

// WindowParts returns the escaped text on each side of the cursor, with an
// ellipsis where the buffer continues beyond the window.
func (s *Scanner) WindowParts(radius int) (before, after string) {
	if radius < 0 {
		radius = 0
	}
	lo := max(s.pos-radius, 0)
	hi := min(s.pos+radius, len(s.buf))

	before = windowEscaper.Replace(s.buf[lo:s.pos])
	if lo > 0 {
		before = "…" + before
	}
	after = windowEscaper.Replace(s.buf[s.pos:hi])
	if hi < len(s.buf) {
		after += "…"
	}
	return before, after
}

// String implements fmt.Stringer.
func (s Scanner) String() string {
	return fmt.Sprintf("%d/%d %q", s.pos, len(s.buf), s.Window(DefaultWindow))
}
