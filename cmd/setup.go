package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/spendlens/internal/cli"
	"github.com/theirongolddev/spendlens/internal/config"
	"github.com/theirongolddev/spendlens/internal/model"
	"github.com/theirongolddev/spendlens/internal/source"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to spendlens!")
	fmt.Println()

	// 1. Inputs
	fmt.Println("  1. Ledger files or directories (comma separated)")
	fmt.Println("     CSV, JSON and OFX/QFX exports are supported.")
	if len(cfg.General.Inputs) > 0 {
		fmt.Printf("     Current: %s\n", strings.Join(cfg.General.Inputs, ", "))
	}
	fmt.Print("     > ")
	line, _ := reader.ReadString('\n')
	if inputs := splitInputs(line); len(inputs) > 0 {
		cfg.General.Inputs = inputs
	}
	if files, err := source.Discover(cfg.General.Inputs); err == nil && len(files) > 0 {
		fmt.Printf("     Found %s\n", cli.FormatCount(len(files), "ledger file", "ledger files"))
	} else if err != nil {
		fmt.Printf("     Warning: %v\n", err)
	}
	fmt.Println()

	// 2. Currency
	fmt.Printf("  2. Currency label [%s]\n", cfg.General.Currency)
	fmt.Print("     > ")
	currency, _ := reader.ReadString('\n')
	if currency = strings.TrimSpace(currency); currency != "" {
		cfg.General.Currency = strings.ToUpper(currency)
	}
	fmt.Println()

	// 3. Average mode
	fmt.Println("  3. Historical averages")
	fmt.Println("     (1) Top three categories of each month [default]")
	fmt.Println("     (2) Every category")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.General.AverageMode = string(model.AverageAllCategories)
	default:
		cfg.General.AverageMode = string(model.AverageTopThree)
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `spendlens setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func splitInputs(line string) []string {
	var out []string
	for _, part := range strings.Split(line, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
