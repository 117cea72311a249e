package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/theirongolddev/spendlens/internal/cli"
	"github.com/theirongolddev/spendlens/internal/pipeline"
	"github.com/theirongolddev/spendlens/internal/tui"
	"github.com/theirongolddev/spendlens/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	theme.SetActive(appCfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	// Stderr belongs to the alt screen while the dashboard runs.
	if f, err := openTUILog(); err == nil {
		defer f.Close()
		lvl, _ := cli.ParseLevel(appCfg.Logging.Level)
		slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})))
	}

	app := tui.NewApp(appCfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

func openTUILog() (*os.File, error) {
	if err := os.MkdirAll(pipeline.CacheDir(), 0o755); err != nil {
		return nil, err
	}
	return tea.LogToFile(filepath.Join(pipeline.CacheDir(), "tui.log"), "spendlens")
}
