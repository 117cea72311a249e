package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/theirongolddev/spendlens/internal/model"
	"github.com/theirongolddev/spendlens/internal/source"

	"golang.org/x/sync/errgroup"
)

// LoadResult holds the output of the full data loading pipeline.
type LoadResult struct {
	Rows       []model.RawRow
	Files      []string
	TotalFiles int
	ReadFiles  int
}

// ProgressFunc is called during loading to report progress.
// current is the number of files processed so far, total is the total count.
type ProgressFunc func(current, total int)

// Load discovers and reads every ledger file under paths.
// Files are read in parallel; rows keep the discovery order of their files.
func Load(ctx context.Context, paths []string, progressFn ProgressFunc) (*LoadResult, error) {
	files, err := source.Discover(paths)
	if err != nil {
		return nil, fmt.Errorf("discovering inputs: %w", err)
	}

	result := &LoadResult{Files: files, TotalFiles: len(files)}
	if len(files) == 0 {
		return result, nil
	}

	perFile, err := readAll(ctx, files, func(n int) {
		if progressFn != nil {
			progressFn(n, len(files))
		}
	})
	if err != nil {
		return nil, err
	}

	for _, rows := range perFile {
		result.Rows = append(result.Rows, rows...)
	}
	result.ReadFiles = len(files)
	return result, nil
}

// readAll reads files with a bounded worker pool. The returned slice is
// indexed like files. The first read error cancels the remaining work.
func readAll(ctx context.Context, files []string, done func(n int)) ([][]model.RawRow, error) {
	results := make([][]model.RawRow, len(files))
	var processed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows, err := source.ReadFile(path)
			if err != nil {
				return err
			}
			results[i] = rows
			done(int(processed.Add(1)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func workerCount(jobs int) int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		n = 4
	}
	if n > jobs {
		n = jobs
	}
	return n
}
