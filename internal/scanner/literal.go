package scanner

import (
	"fmt"

	"github.com/ohler55/ojg/oj"
)

// Decoder turns the raw text of a brace-balanced literal into a value.
type Decoder[T any] func(raw string) (T, error)

// TryReadBraced extracts the brace-balanced span starting at the cursor,
// "{" through the matching "}", and moves past it. Only braces are counted;
// quoting is not interpreted. On failure the cursor does not move.
func (s *Scanner) TryReadBraced() (string, bool) {
	end, err := s.bracedEnd()
	if err != nil {
		return "", false
	}
	return s.take(end), true
}

// bracedEnd returns the offset just past the "}" closing the "{" at the cursor.
func (s *Scanner) bracedEnd() (int, error) {
	if !s.HasCurrent() || s.buf[s.pos] != '{' {
		return 0, ErrNotAtBrace
	}
	depth := 0
	for i := s.pos; i < len(s.buf); i++ {
		switch s.buf[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1, nil
			}
		}
	}
	return 0, ErrUnbalanced
}

// DecodeBraced extracts the brace-balanced literal at the cursor and hands it
// to decode. Either the whole literal is consumed and its value returned, or
// an error is returned and the cursor is where it was.
func DecodeBraced[T any](s *Scanner, decode Decoder[T]) (T, error) {
	var zero T
	end, err := s.bracedEnd()
	if err != nil {
		return zero, err
	}
	raw := s.buf[s.pos:end]
	v, err := decode(raw)
	if err != nil {
		return zero, fmt.Errorf("decode literal at %d: %w", s.pos, err)
	}
	s.pos = end
	return v, nil
}

// ParseJSON decodes a JSON document into generic Go values
// (map[string]any, []any, string, int64, float64, bool, nil).
func ParseJSON(raw string) (any, error) {
	return oj.ParseString(raw)
}

// TryReadJSON is DecodeBraced with ParseJSON.
func (s *Scanner) TryReadJSON() (any, bool) {
	v, err := DecodeBraced[any](s, ParseJSON)
	return v, err == nil
}
