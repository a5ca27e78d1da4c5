package scanner

import (
	"golang.org/x/text/cases"
)

// MatchesFold reports whether lit occurs at the cursor, ignoring case.
func (s *Scanner) MatchesFold(lit string) bool {
	return s.MatchesFoldAt(lit, 0)
}

// MatchesFoldAt is MatchesAt with Unicode case folding. The compared window
// is len(lit) bytes long, so an overrun is a mismatch.
func (s *Scanner) MatchesFoldAt(lit string, offset int) bool {
	i := s.pos + offset
	if i < 0 || i+len(lit) > len(s.buf) {
		return false
	}
	window := s.buf[i : i+len(lit)]
	if window == lit {
		return true
	}
	// Caser хранит состояние, поэтому новый на каждый вызов
	fold := cases.Fold()
	return fold.String(window) == fold.String(lit)
}

// EatFold consumes lit if it occurs at the cursor, ignoring case.
func (s *Scanner) EatFold(lit string) bool {
	if !s.MatchesFold(lit) {
		return false
	}
	s.pos += len(lit)
	return true
}
