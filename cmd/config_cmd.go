package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/spendlens/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := appCfg

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if len(cfg.General.Inputs) > 0 {
		fmt.Printf("    Inputs:       %s\n", strings.Join(cfg.General.Inputs, ", "))
	} else {
		fmt.Println("    Inputs:       not configured")
	}
	fmt.Printf("    Average mode: %s\n", cfg.Mode())
	fmt.Printf("    Currency:     %s\n", cfg.General.Currency)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Logging]")
	fmt.Printf("    Level:  %s\n", cfg.Logging.Level)
	fmt.Printf("    Format: %s\n", cfg.Logging.Format)
	fmt.Println()

	fmt.Println("  [Categories]")
	for _, rule := range cfg.CategoryTable() {
		fmt.Printf("    %-14s %s\n", rule.Name, strings.Join(rule.Keywords, ", "))
	}
	fmt.Println()

	fmt.Println("  Run `spendlens setup` to reconfigure.")
	return nil
}
