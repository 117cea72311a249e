package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/theirongolddev/spendlens/internal/model"
	"github.com/theirongolddev/spendlens/internal/source"
	"github.com/theirongolddev/spendlens/internal/store"
)

// CachedLoadResult extends LoadResult with cache metadata.
type CachedLoadResult struct {
	LoadResult
	CacheHits int
	Reread    int
}

// LoadWithCache discovers inputs, diffs them against the cache, rereads only
// changed files, and returns the combined rows in discovery order.
func LoadWithCache(ctx context.Context, paths []string, cache *store.Cache, progressFn ProgressFunc) (*CachedLoadResult, error) {
	files, err := source.Discover(paths)
	if err != nil {
		return nil, fmt.Errorf("discovering inputs: %w", err)
	}

	result := &CachedLoadResult{
		LoadResult: LoadResult{Files: files, TotalFiles: len(files)},
	}
	if len(files) == 0 {
		return result, nil
	}

	tracked, err := cache.TrackedFiles()
	if err != nil {
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	// Diff: partition into changed and unchanged
	perFile := make([][]model.RawRow, len(files))
	infos := make([]os.FileInfo, len(files))
	var stale []int

	for i, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		infos[i] = info

		cached, ok := tracked[path]
		if !ok || !cached.Matches(info) {
			stale = append(stale, i)
			continue
		}
		rows, err := cache.LoadRows(path)
		if err != nil {
			return nil, fmt.Errorf("loading cached rows for %s: %w", path, err)
		}
		perFile[i] = rows
		result.CacheHits++
	}

	if progressFn != nil && result.CacheHits > 0 {
		progressFn(result.CacheHits, result.TotalFiles)
	}

	if len(stale) > 0 {
		toRead := make([]string, len(stale))
		for j, idx := range stale {
			toRead[j] = files[idx]
		}

		fresh, err := readAll(ctx, toRead, func(n int) {
			if progressFn != nil {
				progressFn(n+result.CacheHits, result.TotalFiles)
			}
		})
		if err != nil {
			return nil, err
		}

		for j, idx := range stale {
			perFile[idx] = fresh[j]
			if err := cache.SaveRows(files[idx], fresh[j], store.FileInfoOf(infos[idx], len(fresh[j]))); err != nil {
				slog.Warn("caching rows failed", "file", files[idx], "error", err)
			}
		}
		result.Reread = len(stale)
	}

	for _, rows := range perFile {
		result.Rows = append(result.Rows, rows...)
	}
	result.ReadFiles = len(files)
	return result, nil
}

// CacheDir returns the platform-appropriate cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "spendlens")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "spendlens")
}

// CachePath returns the full path to the cache database.
func CachePath() string {
	return filepath.Join(CacheDir(), "rows.db")
}
