package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/spendlens/internal/cli"
	"github.com/theirongolddev/spendlens/internal/tui/components"
	"github.com/theirongolddev/spendlens/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCategoriesTab(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	numStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	incomeStyle := lipgloss.NewStyle().Foreground(t.Income).Background(t.Surface)
	expenseStyle := lipgloss.NewStyle().Foreground(t.Expense).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	ranked := rankedCategories(a.report.Categories)

	const (
		nameW   = 16
		countW  = 6
		amountW = 18
		pctW    = 7
	)
	barW := innerW - nameW - countW - 2*amountW - pctW - 5
	showBar := barW >= 8

	var body strings.Builder
	header := fmt.Sprintf("%-*s %*s %*s %*s %*s", nameW, "Category", countW, "Txns", amountW, "Net", amountW, "Spent", pctW, "Share")
	body.WriteString(headerStyle.Render(header))
	body.WriteString("\n")

	var peak float64
	if len(ranked) > 0 {
		peak = ranked[0].ExpenseTotal.InexactFloat64()
	}
	for i, cs := range ranked {
		netStyle := incomeStyle
		if cs.Total.IsNegative() {
			netStyle = expenseStyle
		}
		body.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(cs.Category.String(), nameW))))
		body.WriteString(numStyle.Render(fmt.Sprintf(" %*s", countW, cli.FormatNumber(int64(cs.Count)))))
		body.WriteString(netStyle.Render(fmt.Sprintf(" %*s", amountW, a.money(cs.Total))))
		body.WriteString(expenseStyle.Render(fmt.Sprintf(" %*s", amountW, a.money(cs.ExpenseTotal))))
		body.WriteString(numStyle.Render(fmt.Sprintf(" %*s", pctW, cli.FormatPercent(cs.PercentOfExpenses))))
		if showBar {
			body.WriteString(space.Render(" "))
			body.WriteString(components.HBar(cs.ExpenseTotal.InexactFloat64(), peak, barW, t.SeriesColor(i)))
		}
		if i < len(ranked)-1 {
			body.WriteString("\n")
		}
	}

	var b strings.Builder
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Categories (%d)", len(ranked)),
		body.String(),
		cw,
	))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Rules", a.renderRules(innerW), cw))
	return b.String()
}

// renderRules shows the keyword table in match order.
func (a App) renderRules(innerW int) string {
	t := theme.Active
	nameStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	kwStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	const nameW = 16
	kwW := max(innerW-nameW-1, 8)

	var body strings.Builder
	for _, rule := range a.cfg.CategoryTable() {
		body.WriteString(nameStyle.Render(fmt.Sprintf("%-*s ", nameW, truncStr(rule.Name.String(), nameW))))
		body.WriteString(kwStyle.Render(truncStr(strings.Join(rule.Keywords, ", "), kwW)))
		body.WriteString("\n")
	}
	body.WriteString(dimStyle.Render("First matching rule wins; unmatched descriptions fall into \"other\"."))
	return body.String()
}
