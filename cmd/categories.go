package cmd

import (
	"fmt"

	"github.com/theirongolddev/spendlens/internal/cli"
	"github.com/theirongolddev/spendlens/internal/model"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Per-category totals and share of expenses",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	report, _, ok, err := loadReport(cmd.Context())
	if err != nil || !ok {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDING BY CATEGORY"))
	fmt.Println()
	fmt.Print(renderCategories(report.Categories))
	return nil
}

func renderCategories(stats model.CategoryStats) string {
	peak := decimal.Zero
	for _, s := range stats {
		if s.ExpenseTotal.GreaterThan(peak) {
			peak = s.ExpenseTotal
		}
	}

	rows := make([][]string, 0, len(stats)+2)
	for _, s := range stats {
		rows = append(rows, []string{
			s.Category.String(),
			cli.FormatNumber(int64(s.Count)),
			money(s.Total),
			money(s.ExpenseTotal),
			cli.FormatPercent(s.PercentOfExpenses),
			cli.RenderBar(s.ExpenseTotal, peak, 20),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", "", "", money(stats.ExpenseTotal()), "", ""})

	return cli.RenderTable(cli.Table{
		Title:   "Category statistics",
		Headers: []string{"Category", "Count", "Net", "Spent", "Share", ""},
		Rows:    rows,
	})
}
