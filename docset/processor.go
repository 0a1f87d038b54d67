// Package docset drives page processing across a documentation tree and
// assembles the final Dash docset.
package docset

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/uedocset/uedocset"
)

// chunkSize is the number of pages dispatched to a worker at a time.
const chunkSize = 16

// FileError records a page that could not be processed.
type FileError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileError) Unwrap() error {
	return e.Err
}

// Result aggregates one tree run.
type Result struct {
	// Entries is the deduplicated entry set collected from all pages.
	Entries uedocset.EntrySet

	// Failures lists pages that could not be processed, ordered by path.
	Failures []*FileError

	// Pages is the number of HTML files found under the tree.
	Pages int
}

// Err returns an error summarizing failures, or nil when the run is clean.
func (r *Result) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	return uedocset.Errorf(uedocset.EINTERNAL, "%d of %d pages failed to process", len(r.Failures), r.Pages)
}

// Processor walks a documentation tree and runs a page processor over every
// HTML file. Each page is owned end-to-end by a single worker, so page
// mutation needs no locking; only the aggregate is shared.
type Processor struct {
	// Pages processes a single page. Required.
	Pages uedocset.PageProcessor

	// Workers caps concurrent page processing. Zero means GOMAXPROCS.
	Workers int

	// Logger receives per-failure and summary logs. Nil disables logging.
	Logger *slog.Logger
}

// Process runs the page processor over every HTML file under apiDir and
// returns the deduplicated entry set. A page failure does not abort the
// batch: failures are collected, logged, and reported together so one
// corrupt page surfaces alongside every other broken one.
func (p *Processor) Process(ctx context.Context, apiDir string) (*Result, error) {
	files, err := findHTMLFiles(apiDir)
	if err != nil {
		return nil, err
	}

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	result := &Result{Entries: uedocset.NewEntrySet(), Pages: len(files)}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < len(files); start += chunkSize {
		end := min(start+chunkSize, len(files))
		chunk := files[start:end]

		g.Go(func() error {
			for _, file := range chunk {
				if err := ctx.Err(); err != nil {
					return err
				}

				entries, err := p.Pages.ProcessPage(ctx, file)

				mu.Lock()
				if err != nil {
					result.Failures = append(result.Failures, &FileError{Path: file, Err: err})
				} else {
					for _, e := range entries {
						result.Entries.Add(e)
					}
				}
				mu.Unlock()

				if err != nil && p.Logger != nil {
					p.Logger.Error("page processing failed", "path", file, "error", err)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(result.Failures, func(i, j int) bool {
		return result.Failures[i].Path < result.Failures[j].Path
	})

	if p.Logger != nil {
		p.Logger.Info("tree processed",
			"pages", result.Pages,
			"entries", result.Entries.Len(),
			"failures", len(result.Failures),
		)
	}

	return result, nil
}

// findHTMLFiles enumerates all HTML files under root in lexical order.
func findHTMLFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".html") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate %q: %w", root, err)
	}
	return files, nil
}
