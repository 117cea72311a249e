package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/spendlens/internal/cli"
	"github.com/theirongolddev/spendlens/internal/model"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Budget recommendations from history and how this ledger measures up",
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, _ []string) error {
	report, _, ok, err := loadReport(cmd.Context())
	if err != nil || !ok {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET  %s", report.History.Mode)))
	fmt.Println()
	fmt.Print(renderHistory(report.History))
	fmt.Println()
	fmt.Print(renderBudget(report.Budget))
	fmt.Println()
	fmt.Print(renderComparison(report.Comparison))
	return nil
}

func renderHistory(h model.HistoricalAnalysis) string {
	rows := [][]string{
		{"Months analysed", cli.FormatNumber(int64(h.MonthCount))},
		{"Average income", money(h.AverageMonthlyIncome)},
		{"Average spending", money(h.TotalAvgSpending)},
	}
	if len(h.AverageMonthlySpending) > 0 {
		rows = append(rows, []string{"---"})
		for _, ca := range h.AverageMonthlySpending {
			rows = append(rows, []string{"  " + ca.Category.String(), money(ca.Amount)})
		}
	}
	if len(h.TopCategories) > 0 {
		names := make([]string, 0, len(h.TopCategories))
		for _, ca := range h.TopCategories {
			names = append(names, ca.Category.String())
		}
		rows = append(rows, []string{"---"}, []string{"Top categories", strings.Join(names, ", ")})
	}

	return cli.RenderTable(cli.Table{
		Title:   "Historical analysis",
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	})
}

func renderBudget(b model.BudgetTemplate) string {
	var sb strings.Builder

	verdict := b.Verdict.String()
	if b.Verdict == model.VerdictGood {
		verdict = cli.IncomeStyle.Render(verdict)
	} else {
		verdict = cli.AlertStyle.Render(verdict)
	}
	fmt.Fprintf(&sb, "  Verdict: %s\n", verdict)
	fmt.Fprintf(&sb, "  %s\n", b.Advice)
	fmt.Fprintf(&sb, "  %s\n\n", b.Goal)

	if len(b.BudgetLimits) == 0 {
		sb.WriteString("  No spending history to derive limits from.\n")
		return sb.String()
	}

	rows := make([][]string, 0, len(b.BudgetLimits))
	for _, l := range b.BudgetLimits {
		rows = append(rows, []string{l.Category.String(), whole(l.Amount)})
	}
	sb.WriteString(cli.RenderTable(cli.Table{
		Title:   "Recommended limits",
		Headers: []string{"Category", "Limit"},
		Rows:    rows,
	}))
	return sb.String()
}

func renderComparison(c model.BudgetComparison) string {
	if len(c.Lines) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(c.Lines)+2)
	for _, l := range c.Lines {
		status := cli.IncomeStyle.Render(l.Status.String())
		if l.Status == model.StatusExceeded {
			status = cli.AlertStyle.Render(l.Status.String())
		}
		rows = append(rows, []string{
			l.Category.String(),
			whole(l.Budget),
			money(l.Actual),
			money(l.Difference),
			status,
		})
	}
	overall := cli.IncomeStyle.Render(c.OverallStatus.String())
	if c.OverallStatus == model.StatusExceeded {
		overall = cli.AlertStyle.Render(c.OverallStatus.String())
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", whole(c.TotalBudget), money(c.TotalActual), money(c.TotalBudget.Sub(c.TotalActual).Abs()), overall})

	var sb strings.Builder
	sb.WriteString(cli.RenderTable(cli.Table{
		Title:   "Budget execution",
		Headers: []string{"Category", "Budget", "Actual", "Difference", "Status"},
		Rows:    rows,
	}))
	fmt.Fprintf(&sb, "  Within budget: %d   Exceeded: %d\n", len(c.WithinBudget), len(c.ExceededBudget))
	return sb.String()
}
