package scanner

import (
	"math"
	"testing"
)

func TestReadInt(t *testing.T) {
	tests := []struct {
		input   string
		want    int32
		wantPos int
	}{
		{"123abc", 123, 3},
		{"abc", 0, 0},
		{"", 0, 0},
		{"007", 7, 3},
		{"-5", 0, 0},
		{"2147483648", math.MinInt32, 10}, // переполнение заворачивается
	}
	for _, tt := range tests {
		sc := New(tt.input)
		if got := sc.ReadInt(); got != tt.want {
			t.Errorf("ReadInt(%q) = %d, want %d", tt.input, got, tt.want)
		}
		if sc.Position() != tt.wantPos {
			t.Errorf("ReadInt(%q): position %d, want %d", tt.input, sc.Position(), tt.wantPos)
		}
	}
}

func TestReadLong(t *testing.T) {
	sc := New("9007199254740993;")
	if got := sc.ReadLong(); got != 9007199254740993 {
		t.Errorf("unexpected value %d", got)
	}
	if sc.Current() != ';' {
		t.Errorf("expected cursor on ';', got %q", sc.Current())
	}
}

func TestReadNext(t *testing.T) {
	sc := New("width=640, height=480")
	if got := sc.ReadNextInt(); got != 640 {
		t.Errorf("expected 640, got %d", got)
	}
	if got := sc.ReadNextLong(); got != 480 {
		t.Errorf("expected 480, got %d", got)
	}
	mustPanic(t, "ReadNextInt", func() { sc.ReadNextInt() })

	sc = New("no digits")
	err := mustPanic(t, "ReadNextDouble", func() { sc.ReadNextDouble(PolicyInvariant) })
	if err.Pos != sc.Len() {
		t.Errorf("expected violation at end of input, got %d", err.Pos)
	}
}

func TestReadDigit(t *testing.T) {
	sc := New("7x")
	if got := sc.ReadDigit(); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
	mustPanic(t, "ReadDigit", func() { sc.ReadDigit() })
	if sc.Position() != 1 {
		t.Errorf("failed ReadDigit moved the cursor to %d", sc.Position())
	}
}

func TestReadHexString(t *testing.T) {
	tests := []struct{ input, want string }{
		{"deadBEEF;", "deadBEEF"},
		{"0x1f", "0"},
		{"xyz", ""},
		{"", ""},
		{"09afAFg", "09afAF"},
	}
	for _, tt := range tests {
		sc := New(tt.input)
		if got := sc.ReadHexString(); got != tt.want {
			t.Errorf("ReadHexString(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestReadDouble(t *testing.T) {
	tests := []struct {
		input   string
		policy  SeparatorPolicy
		want    float64
		wantPos int
	}{
		{"1,234", PolicyGrouping, 1234, 5},
		{"1,234,567", PolicyGrouping, 1234567, 9},
		{"1.5", PolicyGrouping, 1.5, 3},
		{"1.5", PolicyInvariant, 1.5, 3},
		{"1,234", PolicyInvariant, 1.234, 5},
		{"1.234,5", PolicyGrouping, 1234.5, 7},
		{"1,234.56", PolicyGrouping, 1234.56, 8},
		{"3.14.15", PolicyGrouping, 3.14, 4}, // только одна дробная часть
		{"12,", PolicyGrouping, 12, 2},
		{"12,x", PolicyGrouping, 12, 2},
		{"12.", PolicyInvariant, 12, 2},
		{"0.25)", PolicyInvariant, 0.25, 4},
		{"1,2345", PolicyGrouping, 1.2345, 6},
		{"42", PolicyInvariant, 42, 2},
		{"3.14159265358979323846", PolicyInvariant, math.Pi, 22},
		{"2,5000000000000000000000", PolicyGrouping, 2.5, 24},
	}
	for _, tt := range tests {
		sc := New(tt.input)
		got := sc.ReadDouble(tt.policy)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ReadDouble(%q, %s) = %v, want %v", tt.input, tt.policy, got, tt.want)
		}
		if sc.Position() != tt.wantPos {
			t.Errorf("ReadDouble(%q, %s): position %d, want %d", tt.input, tt.policy, sc.Position(), tt.wantPos)
		}
	}
}

func TestReadNextDoubleSequence(t *testing.T) {
	sc := New("price: 1.234,50 EUR; qty: 3")
	if got := sc.ReadNextDouble(PolicyGrouping); math.Abs(got-1234.5) > 1e-9 {
		t.Errorf("expected 1234.5, got %v", got)
	}
	if got := sc.ReadNextDouble(PolicyGrouping); got != 3 {
		t.Errorf("expected 3, got %v", got)
	}
}

func TestSeparatorPolicy(t *testing.T) {
	if PolicyInvariant.IsGroup(3) {
		t.Error("invariant policy must never group")
	}
	if !PolicyGrouping.IsGroup(3) || PolicyGrouping.IsGroup(2) || PolicyGrouping.IsGroup(4) {
		t.Error("grouping policy must group exactly three digits")
	}
	if PolicyGrouping.String() != "grouping" || SeparatorPolicy(9).String() != "unknown" {
		t.Error("unexpected policy names")
	}
}
