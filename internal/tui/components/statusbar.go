package components

import (
	"github.com/theirongolddev/spendlens/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// info on the right, padded to width.
func RenderStatusBar(width int, hints, info string, busy bool) string {
	t := theme.Active

	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	infoStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	if busy {
		infoStyle = infoStyle.Foreground(t.Accent)
	}

	left := hintStyle.Render(" " + hints)
	right := infoStyle.Render(info + " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	fill := lipgloss.NewStyle().Background(t.Surface).Width(gap).Render("")

	return lipgloss.NewStyle().MaxWidth(width).Render(left + fill + right)
}
