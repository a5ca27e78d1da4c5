package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"fluentscan/internal/driver"
	"fluentscan/internal/source"
)

const (
	defaultWidth = 80
	maxTopWords  = 5
)

var textEscaper = strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)

type palette struct {
	header lipgloss.Style
	errorC *color.Color
	kinds  map[driver.Walk]*color.Color
	dim    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		header: lipgloss.NewStyle(),
		errorC: color.New(color.FgRed, color.Bold),
		dim:    color.New(color.Faint),
		kinds: map[driver.Walk]*color.Color{
			driver.WalkNodes:   color.New(color.FgCyan),
			driver.WalkObjects: color.New(color.FgYellow),
			driver.WalkNumbers: color.New(color.FgGreen),
			driver.WalkWords:   color.New(color.FgMagenta),
		},
	}
	if enabled {
		p.header = p.header.Bold(true).Foreground(lipgloss.Color("7"))
	}
	all := []*color.Color{p.errorC, p.dim}
	for _, c := range p.kinds {
		all = append(all, c)
	}
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty writes a human-readable listing:
//
//	path (N items)
//	   3:1    node    <a><b/></a>
func Pretty(w io.Writer, res *driver.Result, opts Options) error {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	pal := newPalette(opts.Color)

	for _, fr := range res.Files {
		if fr.Err != nil {
			if _, err := fmt.Fprintf(w, "%s %s\n", pal.errorC.Sprint("error:"), fr.Err); err != nil {
				return err
			}
			continue
		}
		header := fmt.Sprintf("%s (%s)", fr.Path, plural(len(fr.Items), "item"))
		if fr.Distinct > 0 {
			header += fmt.Sprintf(", %s", plural(fr.Distinct, "distinct word"))
		}
		if _, err := fmt.Fprintln(w, pal.header.Render(header)); err != nil {
			return err
		}
		for _, it := range fr.Items {
			if err := prettyItem(w, res.FileSet, it, pal, width); err != nil {
				return err
			}
		}
		if len(fr.Words) > 0 {
			if _, err := fmt.Fprintf(w, "  %s %s\n", pal.dim.Sprint("top words:"), topWords(fr.Words, width)); err != nil {
				return err
			}
		}
	}
	if opts.Timings {
		_, err := fmt.Fprint(w, pal.dim.Sprint(res.Timing.Summary()))
		return err
	}
	return nil
}

func prettyItem(w io.Writer, fs *source.FileSet, it driver.Item, pal palette, width int) error {
	start, _ := fs.Resolve(it.Span)
	loc := fmt.Sprintf("%d:%d", start.Line, start.Col)
	kind := fmt.Sprintf("%-7s", it.Walk.String())
	if c, ok := pal.kinds[it.Walk]; ok {
		kind = c.Sprint(kind)
	}

	text := textEscaper.Replace(it.Text)
	if it.Walk == driver.WalkNumbers {
		text = fmt.Sprintf("%s = %s", text, strconv.FormatFloat(it.Number, 'f', -1, 64))
	}
	_, err := fmt.Fprintf(w, "  %8s  %s %s\n", loc, kind, truncate(text, width))
	return err
}

// topWords lists the most frequent words as "word×n" within width columns.
func topWords(words []driver.WordCount, width int) string {
	parts := make([]string, 0, min(len(words), maxTopWords))
	for _, wc := range words[:min(len(words), maxTopWords)] {
		parts = append(parts, fmt.Sprintf("%s×%d", wc.Word, wc.Count))
	}
	return truncate(strings.Join(parts, ", "), width)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

// truncate обрезает по ширине терминала, а не по байтам
func truncate(value string, width int) string {
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
