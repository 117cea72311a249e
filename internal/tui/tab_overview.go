package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/theirongolddev/spendlens/internal/cli"
	"github.com/theirongolddev/spendlens/internal/model"
	"github.com/theirongolddev/spendlens/internal/tui/components"
	"github.com/theirongolddev/spendlens/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

func (a App) money(d decimal.Decimal) string {
	return cli.FormatMoney(d, a.cfg.General.Currency)
}

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	basic := a.report.Basic
	var b strings.Builder

	// Row 1: headline numbers
	balanceTone := components.ToneIncome
	if basic.Balance.IsNegative() {
		balanceTone = components.ToneAlert
	}
	months := len(a.report.Monthly)
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Income", Value: a.money(basic.TotalIncome), Note: cli.FormatCount(basic.IncomeCount, "deposit", "deposits"), Tone: components.ToneIncome},
		{Label: "Expenses", Value: a.money(basic.TotalExpense), Note: cli.FormatCount(basic.ExpenseCount, "payment", "payments"), Tone: components.ToneExpense},
		{Label: "Balance", Value: a.money(basic.Balance), Note: cli.FormatCount(months, "month", "months"), Tone: balanceTone},
		{Label: "Transactions", Value: cli.FormatNumber(int64(basic.TransactionsCount)), Note: cli.FormatCount(len(a.files), "file", "files")},
	}, cw))
	b.WriteString("\n")

	// Row 2: budget verdict + top categories
	var cards []string
	var widths []int
	if a.isCompactLayout() {
		widths = []int{cw, cw}
	} else {
		widths = components.LayoutRow(cw, 2)
	}
	cards = append(cards,
		components.ContentCard("Next Month", a.renderVerdictBody(components.CardInnerWidth(widths[0])), widths[0]),
		components.ContentCard("Top Spending", a.renderTopCategories(components.CardInnerWidth(widths[1]), 5), widths[1]),
	)
	if a.isCompactLayout() {
		b.WriteString(cards[0])
		b.WriteString("\n")
		b.WriteString(cards[1])
	} else {
		b.WriteString(components.CardRow(cards))
	}
	b.WriteString("\n")

	// Row 3: monthly expenses
	if months > 0 {
		vals := make([]float64, months)
		labels := make([]string, months)
		for i, ms := range a.report.Monthly {
			vals[i] = ms.Expense.InexactFloat64()
			labels[i] = shortMonth(ms.Month)
		}
		chartH := 8
		if a.isCompactLayout() {
			chartH = 5
		}
		b.WriteString(components.ContentCard(
			"Monthly Expenses",
			components.ColumnChart(vals, labels, t.Expense, components.CardInnerWidth(cw), chartH),
			cw,
		))
	}

	return b.String()
}

func (a App) renderVerdictBody(innerW int) string {
	t := theme.Active
	budget := a.report.Budget

	verdictColor := t.Income
	if budget.Verdict != model.VerdictGood {
		verdictColor = t.Warning
	}
	verdictStyle := lipgloss.NewStyle().Foreground(verdictColor).Background(t.Surface).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Width(innerW)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.Income).Background(t.Surface).Bold(true)

	var body strings.Builder
	body.WriteString(verdictStyle.Render("● " + budget.Verdict.String()))
	body.WriteString("\n")
	body.WriteString(textStyle.Render(budget.Advice))
	body.WriteString("\n")
	body.WriteString(textStyle.Render(budget.Goal))
	body.WriteString("\n")
	body.WriteString(labelStyle.Render("Savings target: ") + valueStyle.Render(a.money(budget.SavingsTarget)))
	return body.String()
}

// renderTopCategories lists the n biggest expense categories with share bars.
func (a App) renderTopCategories(innerW, n int) string {
	t := theme.Active
	ranked := rankedCategories(a.report.Categories)
	ranked = ranked[:min(n, len(ranked))]

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	if len(ranked) == 0 || ranked[0].ExpenseTotal.IsZero() {
		return pctStyle.Render("No expenses yet")
	}

	nameW := min(max(innerW/3, 10), 16)
	barW := max(innerW-nameW-8, 1)
	peak := ranked[0].ExpenseTotal.InexactFloat64()

	var body strings.Builder
	for i, cs := range ranked {
		if i > 0 {
			body.WriteString("\n")
		}
		body.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(cs.Category.String(), nameW))))
		body.WriteString(space.Render(" "))
		body.WriteString(components.HBar(cs.ExpenseTotal.InexactFloat64(), peak, barW, t.SeriesColor(i)))
		body.WriteString(pctStyle.Render(fmt.Sprintf(" %5s", cli.FormatPercent(cs.PercentOfExpenses))))
	}
	return body.String()
}

// rankedCategories returns a copy of cs ordered by expense, largest first.
// Ties keep first-seen order.
func rankedCategories(cs model.CategoryStats) model.CategoryStats {
	out := slices.Clone(cs)
	slices.SortStableFunc(out, func(x, y model.CategoryStat) int {
		return y.ExpenseTotal.Cmp(x.ExpenseTotal)
	})
	return out
}

// shortMonth turns "2024-03" into "Mar".
func shortMonth(month string) string {
	label := cli.FormatMonth(month)
	if i := strings.IndexByte(label, ' '); i > 0 {
		return label[:i]
	}
	return label
}
