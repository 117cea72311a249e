package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/spendlens/internal/cli"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Full report: statistics, categories, budget and execution",
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	report, result, ok, err := loadReport(cmd.Context())
	if err != nil || !ok {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDLENS REPORT"))
	fmt.Println()
	fmt.Print(renderSummary(report.Basic))
	fmt.Println()
	fmt.Print(renderCategories(report.Categories))
	fmt.Println()
	fmt.Print(renderMonthly(report.Monthly))
	fmt.Println()
	fmt.Print(renderHistory(report.History))
	fmt.Println()
	fmt.Print(renderBudget(report.Budget))
	fmt.Println()
	fmt.Print(renderComparison(report.Comparison))

	if unparsed := report.Basic.TransactionsCount - report.Basic.IncomeCount - report.Basic.ExpenseCount; unparsed > 0 {
		fmt.Fprintf(os.Stderr, "\n  %s had an unreadable amount across %s\n",
			cli.FormatCount(unparsed, "row", "rows"),
			cli.FormatCount(result.TotalFiles, "file", "files"))
	}
	return nil
}
