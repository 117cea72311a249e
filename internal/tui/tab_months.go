package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/spendlens/internal/cli"
	"github.com/theirongolddev/spendlens/internal/model"
	"github.com/theirongolddev/spendlens/internal/tui/components"
	"github.com/theirongolddev/spendlens/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

func (a App) renderMonthsTab(cw, h int) string {
	months := a.report.Monthly
	if len(months) == 0 {
		return components.ContentCard("Months", "No dated transactions", cw)
	}

	cursor := min(max(a.monthCursor, 0), len(months)-1)

	if a.isCompactLayout() {
		listH := min(len(months)+3, max(h/2, 5))
		list := components.ContentCard("Months", a.renderMonthList(components.CardInnerWidth(cw), listH-3, cursor), cw)
		detail := components.ContentCard(cli.FormatMonth(months[cursor].Month), a.renderMonthDetail(months[cursor], components.CardInnerWidth(cw)), cw)
		return list + "\n" + detail
	}

	widths := components.LayoutRow(cw, 2)
	list := components.ContentCard("Months", a.renderMonthList(components.CardInnerWidth(widths[0]), h-3, cursor), widths[0])
	detail := components.ContentCard(cli.FormatMonth(months[cursor].Month), a.renderMonthDetail(months[cursor], components.CardInnerWidth(widths[1])), widths[1])
	return components.CardRow([]string{list, detail})
}

// renderMonthList draws up to visible rows around the cursor.
func (a App) renderMonthList(innerW, visible, cursor int) string {
	t := theme.Active
	months := a.report.Monthly

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)

	amountW := max((innerW-12)/3, 8)
	line := func(label, in, out, bal string) string {
		return fmt.Sprintf("%-10s %*s %*s %*s", label, amountW, in, amountW, out, amountW, bal)
	}

	var body strings.Builder
	body.WriteString(headerStyle.Render(line("Month", "Income", "Spent", "Net")))

	visible = max(visible-1, 1)
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := min(start+visible, len(months))

	for i := start; i < end; i++ {
		ms := months[i]
		net := ms.Income.Sub(ms.Expense)
		text := line(cli.FormatMonth(ms.Month),
			wholeAmount(ms.Income),
			wholeAmount(ms.Expense),
			wholeAmount(net))
		style := rowStyle
		if i == cursor {
			style = selStyle
			text = fmt.Sprintf("%-*s", innerW, text)
		}
		body.WriteString("\n")
		body.WriteString(style.Render(truncStr(text, innerW)))
	}
	return body.String()
}

func (a App) renderMonthDetail(ms model.MonthStats, innerW int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	incomeStyle := lipgloss.NewStyle().Foreground(t.Income).Background(t.Surface).Bold(true)
	expenseStyle := lipgloss.NewStyle().Foreground(t.Expense).Background(t.Surface).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	var body strings.Builder
	body.WriteString(labelStyle.Render("Income   ") + incomeStyle.Render(a.money(ms.Income)) + "\n")
	body.WriteString(labelStyle.Render("Spent    ") + expenseStyle.Render(a.money(ms.Expense)) + "\n")

	top := make([]string, 0, len(ms.TopCategories))
	for _, ca := range ms.TopCategories {
		top = append(top, ca.Category.String())
	}
	if len(top) > 0 {
		body.WriteString(labelStyle.Render("Top      ") + nameStyle.Render(truncStr(strings.Join(top, ", "), innerW-9)) + "\n")
	}
	body.WriteString("\n")

	if len(ms.Categories) == 0 {
		body.WriteString(dimStyle.Render("No spending this month"))
		return body.String()
	}

	peak := 0.0
	for _, ca := range ms.Categories {
		peak = max(peak, ca.Amount.InexactFloat64())
	}
	const nameW = 14
	amountW := 12
	barW := max(innerW-nameW-amountW-2, 1)
	for i, ca := range ms.Categories {
		if i > 0 {
			body.WriteString("\n")
		}
		body.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(ca.Category.String(), nameW))))
		body.WriteString(space.Render(" "))
		body.WriteString(components.HBar(ca.Amount.InexactFloat64(), peak, barW, t.SeriesColor(i)))
		body.WriteString(dimStyle.Render(fmt.Sprintf(" %*s", amountW, wholeAmount(ca.Amount))))
	}
	return body.String()
}

// wholeAmount formats an amount without decimals or currency for dense tables.
func wholeAmount(d decimal.Decimal) string {
	return cli.FormatWhole(d, "")
}
