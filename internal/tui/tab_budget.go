package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/spendlens/internal/cli"
	"github.com/theirongolddev/spendlens/internal/model"
	"github.com/theirongolddev/spendlens/internal/tui/components"
	"github.com/theirongolddev/spendlens/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBudgetTab(cw int) string {
	report := a.report
	cmp := report.Comparison
	var b strings.Builder

	// Row 1: totals
	overallTone := components.ToneIncome
	if cmp.OverallStatus == model.StatusExceeded {
		overallTone = components.ToneAlert
	}
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Budget", Value: a.money(cmp.TotalBudget), Note: cli.FormatCount(len(report.Budget.BudgetLimits), "limit", "limits")},
		{Label: "Actual", Value: a.money(cmp.TotalActual), Tone: components.ToneExpense},
		{Label: "Overall", Value: cmp.OverallStatus.String(), Note: a.overspendNote(cmp), Tone: overallTone},
		{Label: "Savings Target", Value: a.money(report.Budget.SavingsTarget), Tone: components.ToneIncome},
	}, cw))
	b.WriteString("\n")

	// Row 2: history + advice
	var widths []int
	if a.isCompactLayout() {
		widths = []int{cw, cw}
	} else {
		widths = components.LayoutRow(cw, 2)
	}
	history := components.ContentCard("History", a.renderHistoryBody(), widths[0])
	advice := components.ContentCard("Next Month", a.renderVerdictBody(components.CardInnerWidth(widths[1])), widths[1])
	if a.isCompactLayout() {
		b.WriteString(history + "\n" + advice)
	} else {
		b.WriteString(components.CardRow([]string{history, advice}))
	}
	b.WriteString("\n")

	// Row 3: limit gauges
	b.WriteString(components.ContentCard("Limits vs Actual", a.renderGauges(components.CardInnerWidth(cw)), cw))
	return b.String()
}

func (a App) overspendNote(cmp model.BudgetComparison) string {
	if over := cmp.Overspend(); over.IsPositive() {
		return "over by " + a.money(over)
	}
	return cli.FormatCount(len(cmp.WithinBudget), "category within", "categories within")
}

func (a App) renderHistoryBody() string {
	t := theme.Active
	h := a.report.History

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var body strings.Builder
	body.WriteString(labelStyle.Render("Months:        ") + valueStyle.Render(cli.FormatNumber(int64(h.MonthCount))) + "\n")
	body.WriteString(labelStyle.Render("Mode:          ") + valueStyle.Render(string(h.Mode)) + "\n")
	body.WriteString(labelStyle.Render("Avg income:    ") + valueStyle.Render(a.money(h.AverageMonthlyIncome)) + "\n")
	body.WriteString(labelStyle.Render("Avg spending:  ") + valueStyle.Render(a.money(h.TotalAvgSpending)))

	if len(h.TopCategories) == 0 {
		body.WriteString("\n\n")
		body.WriteString(dimStyle.Render("No spending history yet"))
		return body.String()
	}
	body.WriteString("\n")
	for i, ca := range h.TopCategories {
		body.WriteString("\n")
		body.WriteString(dimStyle.Render(fmt.Sprintf("%d. ", i+1)))
		body.WriteString(valueStyle.Render(fmt.Sprintf("%-14s ", truncStr(ca.Category.String(), 14))))
		body.WriteString(labelStyle.Render(a.money(ca.Amount) + "/mo"))
	}
	return body.String()
}

func (a App) renderGauges(innerW int) string {
	t := theme.Active
	lines := a.report.Comparison.Lines
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	if len(lines) == 0 {
		return dimStyle.Render("No limits: the budget needs at least one month of spending")
	}

	const labelW = 14
	amountW := 26
	barW := max(innerW-labelW-amountW-8, 6)

	var body strings.Builder
	for i, l := range lines {
		if i > 0 {
			body.WriteString("\n")
		}
		style := dimStyle
		if l.Status == model.StatusExceeded {
			style = lipgloss.NewStyle().Foreground(t.Alert).Background(t.Surface)
		}
		body.WriteString(components.BudgetGauge(l.Category.String(), l.Actual.InexactFloat64(), l.Budget.InexactFloat64(), labelW, barW))
		body.WriteString(style.Render(fmt.Sprintf(" %*s", amountW, wholeAmount(l.Actual)+" / "+wholeAmount(l.Budget))))
	}
	return body.String()
}
