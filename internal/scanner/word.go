package scanner

// TryReadWord consumes the run of ASCII letters and digits at the cursor.
func (s *Scanner) TryReadWord() (string, bool) {
	return s.TryReadWordAt(0)
}

// TryReadWordAt consumes the word starting at cursor+offset and leaves the
// cursor right after it. If no word starts there the cursor does not move.
func (s *Scanner) TryReadWordAt(offset int) (string, bool) {
	start := s.pos + offset
	if start < 0 || start >= len(s.buf) || !isWordByte(s.buf[start]) {
		return "", false
	}
	end := start + 1
	for end < len(s.buf) && isWordByte(s.buf[end]) {
		end++
	}
	s.pos = end
	return s.buf[start:end], true
}

// TryLookWord reports the word at the cursor without consuming it.
func (s *Scanner) TryLookWord() (string, bool) {
	return s.TryLookWordAt(0)
}

// TryLookWordAt is TryReadWordAt on a throwaway clone.
func (s *Scanner) TryLookWordAt(offset int) (string, bool) {
	look := s.Clone()
	return look.TryReadWordAt(offset)
}

// TryLookWordUntil looks for lit after a non-empty run of word bytes starting
// at the cursor and returns the run. The cursor never moves.
func (s *Scanner) TryLookWordUntil(lit string) (string, bool) {
	return s.TryLookWordUntilAt(lit, 0)
}

// TryLookWordUntilAt walks word bytes from cursor+offset, checking for lit at
// every step after the first. It fails as soon as a non-word byte comes
// before lit. The run before lit is never empty: lit right at cursor+offset
// is not a match, so ":abc" with lit ":" fails.
func (s *Scanner) TryLookWordUntilAt(lit string, offset int) (string, bool) {
	start := s.pos + offset
	if start < 0 {
		return "", false
	}
	for i := start; i < len(s.buf); i++ {
		if i > start && s.MatchesAt(lit, i-s.pos) {
			return s.buf[start:i], true
		}
		if !isWordByte(s.buf[i]) {
			return "", false
		}
	}
	return "", false
}
