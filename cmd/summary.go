package cmd

import (
	"fmt"

	"github.com/theirongolddev/spendlens/internal/cli"
	"github.com/theirongolddev/spendlens/internal/model"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Income, expense and balance totals",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	report, result, ok, err := loadReport(cmd.Context())
	if err != nil || !ok {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("LEDGER SUMMARY  %s", cli.FormatCount(result.TotalFiles, "file", "files"))))
	fmt.Println()
	fmt.Print(renderSummary(report.Basic))
	return nil
}

func renderSummary(s model.BasicStats) string {
	balance := money(s.Balance)
	if s.Balance.Sign() < 0 {
		balance = cli.AlertStyle.Render(balance)
	}

	return cli.RenderTable(cli.Table{
		Title:   "Basic statistics",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Transactions", cli.FormatNumber(int64(s.TransactionsCount))},
			{"Income entries", cli.FormatNumber(int64(s.IncomeCount))},
			{"Expense entries", cli.FormatNumber(int64(s.ExpenseCount))},
			{"---"},
			{"Total income", cli.IncomeStyle.Render(money(s.TotalIncome))},
			{"Total expense", cli.ExpenseStyle.Render(money(s.TotalExpense))},
			{"Balance", balance},
		},
	})
}
