package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug", "DEBUG"} {
		l, err := ParseLevel(s)
		if err != nil {
			t.Errorf("ParseLevel(%q) failed: %v", s, err)
		}
		if l.String() != strings.ToLower(s) {
			t.Errorf("ParseLevel(%q) = %s", s, l)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeDriver, false},
		{LevelError, ScopeError, true},
		{LevelPhase, ScopePass, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDebug, ScopeFile, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelDetail, Format: FormatText, Output: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	root := Begin(tr, ScopeDriver, "extract", 0)
	file := Begin(tr, ScopeFile, "file:a.xml", root.ID())
	file.WithExtra("items", "3").WithExtra("bytes", "120").End("")
	root.End("ok")
	if err := tr.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 events, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[2], "← file file:a.xml {bytes=120, items=3}") {
		t.Errorf("unexpected file end line %q", lines[2])
	}
	if !strings.Contains(lines[3], "← driver extract (ok)") {
		t.Errorf("unexpected driver end line %q", lines[3])
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatNDJSON)

	Begin(tr, ScopePass, "numbers", 0).End("")
	Begin(tr, ScopeFile, "file:skipped", 0).End("") // ниже уровня
	Point(tr, ScopeError, "file:bad", "no such file", 0)

	dec := json.NewDecoder(&buf)
	var kinds []string
	for dec.More() {
		var ev map[string]any
		if err := dec.Decode(&ev); err != nil {
			t.Fatalf("invalid NDJSON: %v", err)
		}
		kinds = append(kinds, ev["kind"].(string)+":"+ev["name"].(string))
	}
	want := []string{"begin:numbers", "end:numbers", "point:file:bad"}
	if strings.Join(kinds, ",") != strings.Join(want, ",") {
		t.Errorf("unexpected events %v", kinds)
	}
}

func TestNopAndContext(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("expected disabled tracer, got %v %v", tr, err)
	}
	if FromContext(context.Background()) != Nop {
		t.Error("expected Nop from empty context")
	}

	var buf bytes.Buffer
	st := NewStreamTracer(&buf, LevelDebug, FormatText)
	ctx := WithTracer(context.Background(), st)
	if FromContext(ctx) != Tracer(st) {
		t.Error("expected tracer from context")
	}

	span := Begin(Nop, ScopeDriver, "x", 0)
	if span.End("") != 0 || span.ID() != 0 {
		t.Error("nop span must be inert")
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("ndjson"); err != nil || f != FormatNDJSON {
		t.Errorf("unexpected %v %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error")
	}
}
