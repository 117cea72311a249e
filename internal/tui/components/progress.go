package components

import (
	"fmt"

	"github.com/theirongolddev/spendlens/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a loading bar with a percentage.
func ProgressBar(pct float64, width int) string {
	t := theme.Active
	pct = min(max(pct, 0), 1)

	bar := progress.New(
		progress.WithSolidFill(string(t.Accent)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	space := lipgloss.NewStyle().Background(t.Surface)
	return bar.ViewAs(pct) + space.Render(" ") + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}

// ColorForRatio returns the gauge color for spending at ratio of a limit.
func ColorForRatio(ratio float64) lipgloss.Color {
	t := theme.Active
	switch {
	case ratio > 1:
		return t.Alert
	case ratio >= 0.8:
		return t.Warning
	default:
		return t.Income
	}
}

// BudgetGauge renders a labeled bar showing spent against a limit.
// The bar is full at the limit; overspend shows as a full red bar.
func BudgetGauge(label string, spent, limit float64, labelW, barW int) string {
	t := theme.Active

	ratio := 0.0
	switch {
	case limit > 0:
		ratio = spent / limit
	case spent > 0:
		ratio = 2
	}
	color := ColorForRatio(ratio)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	space := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, truncate(label, labelW))) +
		space.Render(" ") +
		bar.ViewAs(min(ratio, 1)) +
		space.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%4.0f%%", ratio*100))
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if limit <= 0 {
		return ""
	}
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
