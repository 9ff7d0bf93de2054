// Package batch drives parallel parsing of many files through per-file
// fresh adapters and parsers. Workers own contiguous, disjoint index ranges
// and private result buffers, so the hot path needs no locking at all.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/dusk-indust/uast/internal/ast"
	"github.com/dusk-indust/uast/internal/lang"
)

// Options configures a parse run.
type Options struct {
	// Workers is the pool size, clamped to the number of files. Values
	// below 1 default to one worker per CPU.
	Workers int

	// IgnoreErrors records per-file failures as diagnostics and keeps
	// going. When false the first failure cancels the run and is returned;
	// no partial-result guarantee is made in that mode.
	IgnoreErrors bool

	// Language forces one language for every file; empty means detect per
	// file from the extension.
	Language string

	Config ast.ExtractionConfig
}

// Collection aggregates one batch run. Results within one worker's range are
// in index order; across workers the relative order is unspecified.
type Collection struct {
	Results []*ast.Result
	// Errors holds "path: message" diagnostics collected under
	// IgnoreErrors.
	Errors []string

	FilesProcessed int64
	TotalNodes     int64
	ErrorCount     int64
}

// Coordinator partitions a file list across workers and parses every file
// with a fresh adapter and parser, which keeps grammar state strictly
// per-file.
type Coordinator struct {
	registry *lang.Registry
	logger   *slog.Logger
}

// NewCoordinator creates a Coordinator using the given registry. A nil
// logger disables logging.
func NewCoordinator(registry *lang.Registry, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Coordinator{registry: registry, logger: logger}
}

// clampWorkers resolves the pool size: unset means one worker per CPU, and
// a pool never exceeds the file count.
func clampWorkers(requested, files int) int {
	workers := requested
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > files {
		workers = files
	}
	return workers
}

// ParseFiles reads and parses paths per opts. Under IgnoreErrors the
// returned error is nil and failures are in Collection.Errors; otherwise
// the first failure is returned after the errgroup drains.
func (c *Coordinator) ParseFiles(ctx context.Context, paths []string, opts Options) (*Collection, error) {
	out := &Collection{}
	if len(paths) == 0 {
		return out, nil
	}

	workers := clampWorkers(opts.Workers, len(paths))

	var (
		filesProcessed atomic.Int64
		totalNodes     atomic.Int64
		errorCount     atomic.Int64

		errMu       sync.Mutex
		diagnostics []string
	)

	// Contiguous static ranges; each worker appends to its own buffer so
	// result collection needs no synchronization.
	buffers := make([][]*ast.Result, workers)
	chunk := len(paths) / workers
	extra := len(paths) % workers

	g, gctx := errgroup.WithContext(ctx)
	start := 0
	for w := 0; w < workers; w++ {
		size := chunk
		if w < extra {
			size++
		}
		lo, hi := start, start+size
		start = hi

		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				path := paths[i]
				result, err := c.parseOne(path, opts)
				filesProcessed.Add(1)
				if err != nil {
					errorCount.Add(1)
					if !opts.IgnoreErrors {
						return fmt.Errorf("parsing %s: %w", path, err)
					}
					c.logger.Warn("skipping file", "path", path, "error", err)
					errMu.Lock()
					diagnostics = append(diagnostics, fmt.Sprintf("%s: %v", path, err))
					errMu.Unlock()
					continue
				}
				totalNodes.Add(int64(result.NodeCount))
				buffers[w] = append(buffers[w], result)
			}
			return nil
		})
	}

	err := g.Wait()

	for _, buf := range buffers {
		out.Results = append(out.Results, buf...)
	}
	out.Errors = diagnostics
	out.FilesProcessed = filesProcessed.Load()
	out.TotalNodes = totalNodes.Load()
	out.ErrorCount = errorCount.Load()

	if err != nil {
		return out, err
	}
	return out, nil
}

// parseOne reads, detects, and parses a single file through a fresh adapter.
func (c *Coordinator) parseOne(path string, opts Options) (*ast.Result, error) {
	language := opts.Language
	if language == "" {
		var err error
		language, err = DetectLanguage(path)
		if err != nil {
			return nil, err
		}
	}

	adapter, err := c.registry.Create(language)
	if err != nil {
		return nil, err
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ast.Parse(path, source, adapter, opts.Config)
}
