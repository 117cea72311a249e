package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/spendlens/internal/categorize"
	"github.com/theirongolddev/spendlens/internal/cli"
	"github.com/theirongolddev/spendlens/internal/model"

	"github.com/spf13/cobra"
)

var flagCategory string

var categorizeCmd = &cobra.Command{
	Use:   "categorize",
	Short: "List transactions with the category each one was assigned",
	RunE:  runCategorize,
}

func init() {
	categorizeCmd.Flags().StringVarP(&flagCategory, "category", "c", "", "Only show this category (case-insensitive)")
	rootCmd.AddCommand(categorizeCmd)
}

func runCategorize(cmd *cobra.Command, _ []string) error {
	report, _, ok, err := loadReport(cmd.Context())
	if err != nil || !ok {
		return err
	}

	rows := make([][]string, 0, len(report.Transactions))
	for _, tx := range report.Transactions {
		if flagCategory != "" && !strings.EqualFold(tx.Category.String(), flagCategory) {
			continue
		}
		rows = append(rows, []string{tx.Date, transactionAmount(tx), tx.Category.String(), tx.Description})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CATEGORIZED TRANSACTIONS"))
	fmt.Println()
	if len(rows) == 0 {
		fmt.Printf("  No transactions in category %q.\n", flagCategory)
		return nil
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Amount", "Category", "Description"},
		Rows:    rows,
	}))

	tallies := categorize.Count(report.Transactions, appCfg.CategoryTable())
	parts := make([]string, 0, len(tallies))
	for _, t := range tallies {
		if t.Count > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", t.Category, t.Count))
		}
	}
	fmt.Printf("  %s\n", strings.Join(parts, "  "))
	return nil
}

func transactionAmount(tx model.Transaction) string {
	if !tx.Amount.Valid {
		return cli.AlertStyle.Render(fmt.Sprintf("? %q", tx.RawAmount))
	}
	if tx.Amount.Decimal.Sign() < 0 {
		return cli.ExpenseStyle.Render(money(tx.Amount.Decimal))
	}
	return cli.IncomeStyle.Render(money(tx.Amount.Decimal))
}
