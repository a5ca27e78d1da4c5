// Package driver runs scanner walks over a batch of input files.
package driver

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"strconv"

	"github.com/ohler55/ojg/jp"
	"golang.org/x/sync/errgroup"

	"fluentscan/internal/observ"
	"fluentscan/internal/scanner"
	"fluentscan/internal/source"
	"fluentscan/internal/trace"
)

// Options configures a Run.
type Options struct {
	Walks    []Walk
	Policy   scanner.SeparatorPolicy
	Jobs     int    // 0 = GOMAXPROCS
	Selector string // JSONPath applied to decoded objects, e.g. "$.items[*].id"
}

// FileResult holds everything extracted from one file.
type FileResult struct {
	Path     string
	FileID   source.FileID
	Items    []Item
	Distinct int         // distinct words, WalkWords only
	Words    []WordCount // WalkWords only, most frequent first
	Err      error       // load failure; Items is empty
}

// WordCount is how often a word occurs in one file.
type WordCount struct {
	Word  string
	Count int
}

// Result is the outcome of a Run.
type Result struct {
	FileSet *source.FileSet
	Files   []FileResult
	Timing  observ.Report
}

// Count returns the number of extracted items across all files.
func (r *Result) Count() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Items)
	}
	return n
}

// Failed reports whether any file could not be loaded.
func (r *Result) Failed() bool {
	for _, f := range r.Files {
		if f.Err != nil {
			return true
		}
	}
	return false
}

// Run loads paths and scans them in parallel. Load failures are recorded
// per file; the returned error is reserved for invalid options and
// cancellation.
func Run(ctx context.Context, paths []string, opts Options) (*Result, error) {
	if len(opts.Walks) == 0 {
		return nil, fmt.Errorf("no walks selected")
	}
	var selector jp.Expr
	if opts.Selector != "" {
		expr, err := jp.ParseString(opts.Selector)
		if err != nil {
			return nil, fmt.Errorf("invalid selector %q: %w", opts.Selector, err)
		}
		selector = expr
	}

	tracer := trace.FromContext(ctx)
	timer := observ.NewTimer()
	root := trace.Begin(tracer, trace.ScopeDriver, "run", 0)
	defer root.End("")

	fileSet := source.NewFileSet()
	results := make([]FileResult, len(paths))

	// FileSet не потокобезопасен: загружаем последовательно
	loadIdx := timer.Begin("load")
	loadSpan := trace.Begin(tracer, trace.ScopePass, "load", root.ID())
	for i, path := range paths {
		results[i].Path = path
		// повторный путь (и "-") читаем один раз
		if id, ok := fileSet.GetLatest(path); ok {
			results[i].FileID = id
			results[i].Path = fileSet.Get(id).Path
			continue
		}
		id, err := fileSet.Load(path)
		if err != nil {
			results[i].Err = err
			trace.Point(tracer, trace.ScopeError, "load:"+path, err.Error(), loadSpan.ID())
			continue
		}
		results[i].FileID = id
		results[i].Path = fileSet.Get(id).Path
	}
	loadSpan.End("")
	timer.End(loadIdx, strconv.Itoa(len(paths))+" files")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	scanIdx := timer.Begin("scan")
	scanSpan := trace.Begin(tracer, trace.ScopePass, "scan", root.ID())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(min(jobs, len(paths)), 1))

	// индексы уникальны для каждой горутины, мьютекс не нужен
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		file := fileSet.Get(results[i].FileID)
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			span := trace.Begin(tracer, trace.ScopeFile, "file:"+file.Path, scanSpan.ID())
			scanFile(file, &opts, selector, &results[i])
			span.WithExtra("items", strconv.Itoa(len(results[i].Items))).End("")
			return nil
		})
	}
	err := g.Wait()
	scanSpan.End("")
	timer.End(scanIdx, "")
	if err != nil {
		return nil, err
	}

	return &Result{
		FileSet: fileSet,
		Files:   results,
		Timing:  timer.Report(),
	}, nil
}

func scanFile(file *source.File, opts *Options, selector jp.Expr, out *FileResult) {
	w := newWalker(file, opts, selector)
	for _, walk := range opts.Walks {
		w.run(walk)
	}
	slices.SortStableFunc(w.items, func(a, b Item) int {
		return int(a.Span.Start) - int(b.Span.Start)
	})
	out.Items = w.items
	if w.words != nil {
		out.Distinct = w.words.Len() - 1
		out.Words = wordCounts(w.words)
	}
}

// wordCounts lists interned words by descending count, ties in order of first
// appearance.
func wordCounts(words *source.Interner) []WordCount {
	counts := make([]WordCount, 0, words.Len()-1)
	for id := source.StringID(1); int(id) < words.Len(); id++ {
		word, _ := words.Lookup(id)
		counts = append(counts, WordCount{Word: word, Count: words.Count(id)})
	}
	slices.SortStableFunc(counts, func(a, b WordCount) int {
		return b.Count - a.Count
	})
	return counts
}
