package scanner

import "testing"

func TestReadUntil(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		advance int
		target  byte
		max     int
		want    string
		wantPos int
	}{
		{"found", "key=value", 0, '=', 10, "key", 3},
		{"at target", "=value", 0, '=', 10, "", 0},
		{"outside window", "key=value", 0, '=', 3, "", 0},
		{"window edge", "key=value", 0, '=', 4, "key", 3},
		{"missing", "key value", 0, '=', 100, "", 0},
		{"from middle", "a;b;c", 2, ';', 5, "b", 3},
		{"exhausted", "abc", 3, 'a', 5, "", 3},
		{"negative window", "ab=", 0, '=', -1, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := New(tt.input)
			sc.Advance(tt.advance)
			got := sc.ReadUntil(tt.target, tt.max)
			if got != tt.want {
				t.Errorf("ReadUntil = %q, want %q", got, tt.want)
			}
			if sc.Position() != tt.wantPos {
				t.Errorf("position = %d, want %d", sc.Position(), tt.wantPos)
			}
		})
	}
}

// TestReadUntilAccumulates: цикл "пока не на разделителе" не требует особого случая
func TestReadUntilAccumulates(t *testing.T) {
	sc := New("abcdefgh;")
	var out string
	for sc.Current() != ';' {
		chunk := sc.ReadUntil(';', 3)
		if chunk == "" {
			out += string(sc.Current())
			sc.AdvanceOne()
			continue
		}
		out += chunk
	}
	if out != "abcdefgh" {
		t.Errorf("expected %q, got %q", "abcdefgh", out)
	}
}

func TestTryReadUntil(t *testing.T) {
	sc := New("name: value")

	text, ok := sc.TryReadUntil('#', 100)
	if ok || text != "" || sc.Position() != 0 {
		t.Errorf("expected miss, got %q %v at %d", text, ok, sc.Position())
	}

	text, ok = sc.TryReadUntil(':', 100)
	if !ok || text != "name" || sc.Current() != ':' {
		t.Errorf("expected %q before ':', got %q %v", "name", text, ok)
	}

	text, ok = sc.TryReadUntil(':', 100)
	if !ok || text != "" || sc.Position() != 4 {
		t.Errorf("expected empty hit at cursor, got %q %v at %d", text, ok, sc.Position())
	}

	sc.Advance(sc.Remaining())
	if _, ok := sc.TryReadUntil(':', 1); ok {
		t.Error("expected miss on exhausted scanner")
	}
}

func TestTryReadUntilString(t *testing.T) {
	sc := New("head-->tail-->")
	text, ok := sc.TryReadUntilString("-->")
	if !ok || text != "head" || !sc.Matches("-->") {
		t.Fatalf("expected %q, got %q %v", "head", text, ok)
	}
	text, ok = sc.TryReadUntilString("-->")
	if !ok || text != "" || sc.Position() != 4 {
		t.Errorf("expected empty hit at cursor, got %q %v", text, ok)
	}
	if _, ok := sc.TryReadUntilString("<!--"); ok || sc.Position() != 4 {
		t.Error("expected miss with unchanged position")
	}
}

func TestTryReadAfter(t *testing.T) {
	sc := New("<!-- note -->rest")
	text, ok := sc.TryReadAfter("-->")
	if !ok || text != "<!-- note -->" {
		t.Fatalf("expected comment, got %q %v", text, ok)
	}
	if sc.Rest() != "rest" {
		t.Errorf("expected cursor after delimiter, got rest %q", sc.Rest())
	}
	if _, ok := sc.TryReadAfter("-->"); ok || sc.Rest() != "rest" {
		t.Error("expected miss with unchanged position")
	}
}

func TestSkip(t *testing.T) {
	sc := New("a,b;c")
	if sc.SkipUntil(';').Current() != ';' {
		t.Errorf("SkipUntil: expected ';', got %q", sc.Current())
	}

	sc = New("a,b;c")
	if sc.SkipAfter(',').Current() != 'b' {
		t.Errorf("SkipAfter: expected 'b', got %q", sc.Current())
	}
	sc.SkipAfter('#')
	if sc.HasCurrent() {
		t.Errorf("SkipAfter miss: expected end of input, at %d", sc.Position())
	}
	sc.SkipUntil('a')
	if sc.Position() != 5 {
		t.Errorf("skip on exhausted scanner moved to %d", sc.Position())
	}

	sc = New("x /* y */ z")
	sc.SkipAfterString("*/")
	if sc.Rest() != " z" {
		t.Errorf("SkipAfterString: unexpected rest %q", sc.Rest())
	}
	sc = New("x /* y */ z")
	sc.SkipUntilString("/*")
	if sc.Position() != 2 {
		t.Errorf("SkipUntilString: unexpected position %d", sc.Position())
	}
	sc.SkipUntilString("//")
	if sc.HasCurrent() {
		t.Error("SkipUntilString miss: expected end of input")
	}
}

func TestReadBackUntil(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		at      int
		target  byte
		want    string
		wantPos int
	}{
		{"found", "dir/sub/file", 12, '/', "file", 8},
		{"adjacent", "dir/", 4, '/', "", 4},
		{"at start", "dir/", 0, '/', "", 0},
		{"missing", "file", 4, '/', "", 4},
		{"middle", "a/bc/d", 4, '/', "bc", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := New(tt.input)
			sc.Advance(tt.at)
			if got := sc.ReadBackUntil(tt.target); got != tt.want {
				t.Errorf("ReadBackUntil = %q, want %q", got, tt.want)
			}
			if sc.Position() != tt.wantPos {
				t.Errorf("position = %d, want %d", sc.Position(), tt.wantPos)
			}
		})
	}
}

func TestReadTo(t *testing.T) {
	sc := New("0123456789")
	if got := sc.ReadTo(4); got != "0123" {
		t.Errorf("expected %q, got %q", "0123", got)
	}
	if got := sc.ReadTo(4); got != "" {
		t.Errorf("expected empty read, got %q", got)
	}
	mustPanic(t, "ReadTo", func() { sc.ReadTo(2) })
	mustPanic(t, "ReadTo", func() { sc.ReadTo(11) })
	if got := sc.ReadRest(); got != "456789" || sc.HasCurrent() {
		t.Errorf("unexpected rest %q", got)
	}
}
