package driver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ohler55/ojg/jp"

	"fluentscan/internal/scanner"
	"fluentscan/internal/source"
)

// Walk selects what a pass over a file extracts.
type Walk uint8

const (
	WalkNodes   Walk = iota + 1 // balanced <tag>...</tag> elements
	WalkObjects                 // brace-balanced JSON objects
	WalkNumbers                 // numeric literals
	WalkWords                   // ASCII words
)

// String returns the string representation of Walk.
func (w Walk) String() string {
	switch w {
	case WalkNodes:
		return "node"
	case WalkObjects:
		return "object"
	case WalkNumbers:
		return "number"
	case WalkWords:
		return "word"
	default:
		return "unknown"
	}
}

// ParseWalks converts a comma-separated list ("node,object" or "all").
func ParseWalks(s string) ([]Walk, error) {
	if s == "all" {
		return []Walk{WalkNodes, WalkObjects}, nil
	}
	var walks []Walk
	for _, part := range strings.Split(s, ",") {
		switch strings.TrimSpace(part) {
		case "node", "nodes":
			walks = append(walks, WalkNodes)
		case "object", "objects", "json":
			walks = append(walks, WalkObjects)
		case "number", "numbers":
			walks = append(walks, WalkNumbers)
		case "word", "words":
			walks = append(walks, WalkWords)
		default:
			return nil, fmt.Errorf("unknown kind %q (expected: node|object|number|word|all)", part)
		}
	}
	return walks, nil
}

// Item is one extracted piece of a file.
type Item struct {
	Walk   Walk
	Span   source.Span
	Text   string
	Value  any     // decoded object (WalkObjects)
	Number float64 // WalkNumbers
}

// walker holds per-file walk state.
type walker struct {
	sc       scanner.Scanner
	opts     *Options
	selector jp.Expr
	words    *source.Interner
	items    []Item
}

func newWalker(f *source.File, opts *Options, selector jp.Expr) *walker {
	return &walker{
		sc:       scanner.NewFile(f),
		opts:     opts,
		selector: selector,
	}
}

func (w *walker) run(walk Walk) {
	w.sc.Reset(0)
	switch walk {
	case WalkNodes:
		w.nodes()
	case WalkObjects:
		w.objects()
	case WalkNumbers:
		w.numbers()
	case WalkWords:
		w.words = source.NewInterner()
		w.wordsWalk()
	}
}

func (w *walker) emit(walk Walk, m scanner.Mark, text string) *Item {
	w.items = append(w.items, Item{Walk: walk, Span: w.sc.SpanFrom(m), Text: text})
	return &w.items[len(w.items)-1]
}

func (w *walker) nodes() {
	sc := &w.sc
	for sc.SkipUntil('<'); sc.HasCurrent(); sc.SkipUntil('<') {
		// комментарии пропускаем целиком, иначе найдём узлы внутри них
		if sc.Matches("<!--") {
			sc.SkipAfterString("-->")
			continue
		}
		m := sc.Mark()
		if text, ok := sc.TryReadXMLNode(); ok {
			w.emit(WalkNodes, m, text)
			continue
		}
		sc.AdvanceOne()
	}
}

func (w *walker) objects() {
	sc := &w.sc
	for sc.SkipUntil('{'); sc.HasCurrent(); sc.SkipUntil('{') {
		m := sc.Mark()
		v, err := scanner.DecodeBraced[any](sc, w.decode)
		if err != nil {
			// незакрытая внешняя скобка может содержать закрытые объекты
			sc.AdvanceOne()
			continue
		}
		item := w.emit(WalkObjects, m, sc.Text()[m:sc.Position()])
		item.Value = v
	}
}

var errNoMatch = errors.New("selector matched nothing")

// decode parses raw JSON and applies the selector, if any. An object the
// selector does not match is rejected so that nested objects get a chance.
func (w *walker) decode(raw string) (any, error) {
	v, err := scanner.ParseJSON(raw)
	if err != nil || w.selector == nil {
		return v, err
	}
	found := w.selector.Get(v)
	switch len(found) {
	case 0:
		return nil, errNoMatch
	case 1:
		return found[0], nil
	default:
		return found, nil
	}
}

func (w *walker) numbers() {
	sc := &w.sc
	for sc.SkipToDigit().HasCurrent() {
		m := sc.Mark()
		n := sc.ReadNextDouble(w.opts.Policy)
		item := w.emit(WalkNumbers, m, sc.Text()[m:sc.Position()])
		item.Number = n
	}
}

func (w *walker) wordsWalk() {
	sc := &w.sc
	for sc.HasCurrent() {
		m := sc.Mark()
		if word, ok := sc.TryReadWord(); ok {
			w.words.Intern(word)
			w.emit(WalkWords, m, word)
			continue
		}
		sc.AdvanceOne()
	}
}
