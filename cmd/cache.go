package cmd

import (
	"fmt"

	"github.com/theirongolddev/spendlens/internal/pipeline"
	"github.com/theirongolddev/spendlens/internal/store"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the ledger row cache",
	RunE:  runCacheInfo,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached row",
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheInfo(_ *cobra.Command, _ []string) error {
	cache, err := store.Open(pipeline.CachePath())
	if err != nil {
		return err
	}
	defer cache.Close()

	tracked, err := cache.TrackedFiles()
	if err != nil {
		return fmt.Errorf("reading cache: %w", err)
	}
	rows, err := cache.RowCount()
	if err != nil {
		return fmt.Errorf("counting rows: %w", err)
	}

	fmt.Printf("  Cache: %s\n", pipeline.CachePath())
	fmt.Printf("  Files: %d\n", len(tracked))
	fmt.Printf("  Rows:  %s\n", formatNumber(int64(rows)))
	return nil
}

func runCacheClear(_ *cobra.Command, _ []string) error {
	cache, err := store.Open(pipeline.CachePath())
	if err != nil {
		return err
	}
	defer cache.Close()

	if err := cache.Clear(); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	fmt.Println("  Cache cleared.")
	return nil
}
