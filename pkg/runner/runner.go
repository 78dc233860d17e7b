package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/yaklabco/mdtidy/pkg/formatter"
	"github.com/yaklabco/mdtidy/pkg/fsutil"
)

// Runner formats files discovered under the configured paths. Files are
// processed concurrently, but each file is one isolated formatting operation
// with its own buffer; only the formatter's session memory is shared, and the
// formatter guards it.
type Runner struct {
	formatter *formatter.Formatter
}

// New creates a Runner around a formatter.
func New(f *formatter.Formatter) *Runner {
	return &Runner{formatter: f}
}

// Run discovers files, formats them, and aggregates outcomes in
// deterministic path order. When opts.Config.Write is set, changed files are
// rewritten in place atomically.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range workCh {
				outCh <- r.processFile(ctx, path, opts)
			}
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}
	return result, nil
}

// processFile runs one formatting operation and optionally writes the result
// back. The formatted text is only committed after every pass succeeded.
func (r *Runner) processFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		outcome.Error = fmt.Errorf("read: %w", err)
		return outcome
	}
	text := string(data)

	relPath := path
	if workDir, err := resolveWorkDir(opts.WorkingDir); err == nil {
		if rel, err := filepath.Rel(workDir, path); err == nil {
			relPath = rel
		}
	}

	if r.formatter.Skip(relPath, text) {
		outcome.Skipped = true
		return outcome
	}

	res, err := r.formatter.Format(ctx, text)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	if !res.Changed {
		return outcome
	}

	outcome.Changed = true
	outcome.Original = text
	outcome.Formatted = res.Text

	if opts.Config != nil && opts.Config.Write {
		if _, err := fsutil.WriteAtomicIfChanged(path, []byte(res.Text)); err != nil {
			outcome.Error = fmt.Errorf("write: %w", err)
		}
	}
	return outcome
}
