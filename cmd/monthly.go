package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/spendlens/internal/cli"
	"github.com/theirongolddev/spendlens/internal/model"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Income, expense and top categories per month",
	RunE:  runMonthly,
}

func init() {
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(cmd *cobra.Command, _ []string) error {
	report, _, ok, err := loadReport(cmd.Context())
	if err != nil || !ok {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTHLY ANALYSIS"))
	fmt.Println()
	fmt.Print(renderMonthly(report.Monthly))
	return nil
}

func renderMonthly(months model.MonthlyAnalysis) string {
	if len(months) == 0 {
		return "  No dated transactions.\n"
	}

	rows := make([][]string, 0, len(months))
	trend := make([]decimal.Decimal, 0, len(months))
	for _, m := range months {
		top := make([]string, 0, len(m.TopCategories))
		for _, ca := range m.TopCategories {
			top = append(top, fmt.Sprintf("%s %s", ca.Category, whole(ca.Amount)))
		}
		rows = append(rows, []string{
			cli.FormatMonth(m.Month),
			money(m.Income),
			money(m.Expense),
			money(m.Income.Sub(m.Expense)),
			strings.Join(top, ", "),
		})
		trend = append(trend, m.Expense)
	}

	var b strings.Builder
	b.WriteString(cli.RenderTable(cli.Table{
		Title:   "Monthly analysis",
		Headers: []string{"Month", "Income", "Expense", "Net", "Top categories"},
		Rows:    rows,
	}))
	if len(trend) > 1 {
		fmt.Fprintf(&b, "  Expense trend  %s\n", cli.RenderSparkline(trend))
	}
	return b.String()
}
