// Package cmd implements the spendlens CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"

	"github.com/theirongolddev/spendlens/internal/cli"
	"github.com/theirongolddev/spendlens/internal/config"
	"github.com/theirongolddev/spendlens/internal/model"
	"github.com/theirongolddev/spendlens/internal/pipeline"
	"github.com/theirongolddev/spendlens/internal/store"

	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagInputs      []string
	flagAverageMode string
	flagCurrency    string
	flagNoCache     bool
	flagQuiet       bool
	flagLogLevel    string
	flagLogFormat   string
)

// appCfg is the effective configuration: file, then environment, then flags.
var appCfg = config.DefaultConfig()

var errNoInputs = errors.New("no ledger inputs: pass --input or set general.inputs (run `spendlens setup`)")

var rootCmd = &cobra.Command{
	Use:               "spendlens",
	Short:             "Personal ledger analysis CLI",
	Long:              "Categorize bank transactions, summarize spending by month, and build a budget from your own history.",
	SilenceUsage:      true,
	PersistentPreRunE: setupRun,
	RunE:              runReport,
}

// Execute is the main entry point called from main.go.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVarP(&flagInputs, "input", "i", nil, "Ledger file or directory (repeatable)")
	rootCmd.PersistentFlags().StringVar(&flagAverageMode, "average-mode", "", "Historical averaging: top-three or all-categories")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "Currency label for amounts")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip SQLite cache, reread every file")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format (console, json)")
}

// setupRun builds the effective configuration and installs the logger.
func setupRun(_ *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	config.ApplyEnv(&cfg)

	if len(flagInputs) > 0 {
		cfg.General.Inputs = flagInputs
	}
	if flagAverageMode != "" {
		cfg.General.AverageMode = flagAverageMode
	}
	if flagCurrency != "" {
		cfg.General.Currency = flagCurrency
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	if flagLogFormat != "" {
		cfg.Logging.Format = flagLogFormat
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cli.SetupLogger(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return err
	}

	appCfg = cfg
	slog.Debug("configuration ready",
		"config", config.ConfigPath(),
		"inputs", cfg.General.Inputs,
		"average_mode", cfg.Mode(),
	)
	return nil
}

// loadProgress draws a progress bar once the file count is known.
type loadProgress struct {
	once sync.Once
	bar  *progressbar.ProgressBar
}

func (p *loadProgress) update(current, total int) {
	if flagQuiet || total < 2 {
		return
	}
	p.once.Do(func() {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(30),
			progressbar.OptionSetDescription("  Reading ledgers"),
			progressbar.OptionClearOnFinish(),
		)
	})
	if err := p.bar.Set(current); err != nil {
		slog.Debug("progress bar update failed", "error", err)
	}
}

// loadData is the shared data loading path used by all commands.
// Uses SQLite cache when available for fast subsequent runs.
func loadData(ctx context.Context) (*pipeline.LoadResult, error) {
	inputs := appCfg.General.Inputs
	if len(inputs) == 0 {
		return nil, errNoInputs
	}

	progress := &loadProgress{}

	if !flagNoCache {
		cache, err := store.Open(pipeline.CachePath())
		if err != nil {
			slog.Warn("cache unavailable, reading every file", "error", err)
		} else {
			defer cache.Close()

			cr, err := pipeline.LoadWithCache(ctx, inputs, cache, progress.update)
			if err == nil {
				if !flagQuiet && cr.TotalFiles > 0 {
					fmt.Fprintf(os.Stderr, "  %s (%d cached, %d reread), %s\n",
						cli.FormatCount(cr.TotalFiles, "file", "files"),
						cr.CacheHits, cr.Reread,
						cli.FormatCount(len(cr.Rows), "transaction", "transactions"),
					)
				}
				return &cr.LoadResult, nil
			}
			slog.Warn("cached load failed, falling back to full read", "error", err)
		}
	}

	result, err := pipeline.Load(ctx, inputs, progress.update)
	if err != nil {
		return nil, err
	}

	if !flagQuiet && result.TotalFiles > 0 {
		fmt.Fprintf(os.Stderr, "  Read %s, %s\n",
			cli.FormatCount(result.TotalFiles, "file", "files"),
			cli.FormatCount(len(result.Rows), "transaction", "transactions"),
		)
	}
	return result, nil
}

// analyze runs the analysis with the effective category table and mode.
func analyze(result *pipeline.LoadResult) model.Report {
	return pipeline.Analyze(result.Rows, pipeline.Options{
		Table: appCfg.CategoryTable(),
		Mode:  appCfg.Mode(),
	})
}

// loadReport loads the ledger and analyzes it. ok is false when there is
// nothing to report; a notice has already been printed.
func loadReport(ctx context.Context) (model.Report, *pipeline.LoadResult, bool, error) {
	result, err := loadData(ctx)
	if err != nil {
		return model.Report{}, nil, false, err
	}
	if len(result.Rows) == 0 {
		fmt.Println("\n  No transactions found.")
		fmt.Println("  Point --input at a CSV, JSON or OFX export from your bank.")
		return model.Report{}, result, false, nil
	}
	return analyze(result), result, true, nil
}

func money(d decimal.Decimal) string {
	return cli.FormatMoney(d, appCfg.General.Currency)
}

func whole(d decimal.Decimal) string {
	return cli.FormatWhole(d, appCfg.General.Currency)
}

func formatNumber(n int64) string {
	return cli.FormatNumber(n)
}
