package scanner

import (
	"fmt"
	"math"
)

// ReadInt consumes a run of ASCII digits (possibly empty) and returns its
// value. There is no sign handling and overflow wraps.
func (s *Scanner) ReadInt() int32 {
	var n int32
	for s.pos < len(s.buf) && isDec(s.buf[s.pos]) {
		n = n*10 + int32(s.buf[s.pos]-'0')
		s.pos++
	}
	return n
}

// ReadLong is ReadInt with 64-bit accumulation.
func (s *Scanner) ReadLong() int64 {
	var n int64
	for s.pos < len(s.buf) && isDec(s.buf[s.pos]) {
		n = n*10 + int64(s.buf[s.pos]-'0')
		s.pos++
	}
	return n
}

// ReadDigit consumes exactly one digit.
func (s *Scanner) ReadDigit() int {
	s.mustDigit("ReadDigit")
	d := int(s.buf[s.pos] - '0')
	s.pos++
	return d
}

// ReadHexString consumes a run of hex digits. An empty result is valid.
func (s *Scanner) ReadHexString() string {
	start := s.pos
	for s.pos < len(s.buf) && isHex(s.buf[s.pos]) {
		s.pos++
	}
	return s.buf[start:s.pos]
}

// SkipToDigit moves the cursor to the next ASCII digit, or to the end of input.
func (s *Scanner) SkipToDigit() *Scanner {
	for s.pos < len(s.buf) && !isDec(s.buf[s.pos]) {
		s.pos++
	}
	return s
}

// ReadNextInt skips to the next digit and reads an int. Calling it when no
// digit is left is a precondition violation.
func (s *Scanner) ReadNextInt() int32 {
	s.SkipToDigit().mustDigit("ReadNextInt")
	return s.ReadInt()
}

// ReadNextLong skips to the next digit and reads a long.
func (s *Scanner) ReadNextLong() int64 {
	s.SkipToDigit().mustDigit("ReadNextLong")
	return s.ReadLong()
}

// ReadNextDouble skips to the next digit and reads a double.
func (s *Scanner) ReadNextDouble(policy SeparatorPolicy) float64 {
	s.SkipToDigit().mustDigit("ReadNextDouble")
	return s.ReadDouble(policy)
}

// ReadDouble reads an integer part followed by '.' or ',' separated digit
// runs.
//
// Under a grouping policy a three-digit run continues the integer part
// ("1,234,567" is 1234567); any other run is the fraction and ends the
// number ("1.5" is 1.5 under every policy). A separator not followed by a
// digit is left unread.
func (s *Scanner) ReadDouble(policy SeparatorPolicy) float64 {
	result := float64(s.ReadInt())
	for s.HasNext() {
		c := s.buf[s.pos]
		if (c != '.' && c != ',') || !isDec(s.buf[s.pos+1]) {
			break
		}
		s.pos++
		start := s.pos
		run := s.readRun()
		n := s.pos - start
		if policy.IsGroup(n) {
			result = result*1000 + run
			continue
		}
		result += run / math.Pow10(n)
		break
	}
	return result
}

// readRun consumes a digit run into a float64, so long fractions do not wrap.
func (s *Scanner) readRun() float64 {
	var run float64
	for s.pos < len(s.buf) && isDec(s.buf[s.pos]) {
		run = run*10 + float64(s.buf[s.pos]-'0')
		s.pos++
	}
	return run
}

func (s *Scanner) mustDigit(op string) {
	if !s.HasCurrent() {
		panic(s.violation(op, "no digit before end of input"))
	}
	if c := s.buf[s.pos]; !isDec(c) {
		panic(s.violation(op, fmt.Sprintf("%q is not a digit", c)))
	}
}
