// Package report renders driver results.
package report

import (
	"fmt"
	"io"

	"fluentscan/internal/driver"
	"fluentscan/internal/observ"
	"fluentscan/internal/source"
)

// Position is a resolved location.
type Position struct {
	Offset uint32 `json:"offset" msgpack:"offset"`
	Line   uint32 `json:"line" msgpack:"line"`
	Col    uint32 `json:"col" msgpack:"col"`
}

// ItemOutput is the serialisable form of a driver.Item.
type ItemOutput struct {
	Kind   string   `json:"kind" msgpack:"kind"`
	Text   string   `json:"text" msgpack:"text"`
	Start  Position `json:"start" msgpack:"start"`
	End    Position `json:"end" msgpack:"end"`
	Value  any      `json:"value,omitempty" msgpack:"value,omitempty"`
	Number *float64 `json:"number,omitempty" msgpack:"number,omitempty"`
}

// FileOutput is the serialisable form of a driver.FileResult.
type FileOutput struct {
	Path     string       `json:"path" msgpack:"path"`
	Error    string       `json:"error,omitempty" msgpack:"error,omitempty"`
	Distinct int          `json:"distinct_words,omitempty" msgpack:"distinct_words,omitempty"`
	Words    []WordOutput `json:"words,omitempty" msgpack:"words,omitempty"`
	Items    []ItemOutput `json:"items" msgpack:"items"`
}

// WordOutput is a word and its number of occurrences.
type WordOutput struct {
	Word  string `json:"word" msgpack:"word"`
	Count int    `json:"count" msgpack:"count"`
}

// Output is the document written by the json and msgpack formats.
type Output struct {
	Files  []FileOutput   `json:"files" msgpack:"files"`
	Count  int            `json:"count" msgpack:"count"`
	Timing *observ.Report `json:"timing,omitempty" msgpack:"timing,omitempty"`
}

// Options controls rendering.
type Options struct {
	Color   bool
	Width   int  // pretty: column budget for item text, 0 = 80
	Timings bool // include phase timings
}

// Build converts a result into its serialisable form.
func Build(res *driver.Result, opts Options) Output {
	out := Output{
		Files: make([]FileOutput, 0, len(res.Files)),
		Count: res.Count(),
	}
	for _, fr := range res.Files {
		fo := FileOutput{Path: fr.Path, Distinct: fr.Distinct, Items: make([]ItemOutput, 0, len(fr.Items))}
		if fr.Err != nil {
			fo.Error = fr.Err.Error()
		}
		for _, wc := range fr.Words {
			fo.Words = append(fo.Words, WordOutput{Word: wc.Word, Count: wc.Count})
		}
		for _, it := range fr.Items {
			fo.Items = append(fo.Items, buildItem(res.FileSet, it))
		}
		out.Files = append(out.Files, fo)
	}
	if opts.Timings {
		timing := res.Timing
		out.Timing = &timing
	}
	return out
}

func buildItem(fs *source.FileSet, it driver.Item) ItemOutput {
	start, end := fs.Resolve(it.Span)
	out := ItemOutput{
		Kind:  it.Walk.String(),
		Text:  it.Text,
		Start: Position{Offset: it.Span.Start, Line: start.Line, Col: start.Col},
		End:   Position{Offset: it.Span.End, Line: end.Line, Col: end.Col},
		Value: it.Value,
	}
	if it.Walk == driver.WalkNumbers {
		n := it.Number
		out.Number = &n
	}
	return out
}

// Write renders res in the named format.
func Write(w io.Writer, format string, res *driver.Result, opts Options) error {
	switch format {
	case "pretty":
		return Pretty(w, res, opts)
	case "json":
		return JSON(w, Build(res, opts))
	case "msgpack":
		return MsgPack(w, Build(res, opts))
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
