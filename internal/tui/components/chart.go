package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/spendlens/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}

	var buf strings.Builder
	for _, v := range values {
		idx := 0
		if peak > 0 {
			idx = int(v / peak * float64(len(sparkBlocks)-1))
		}
		buf.WriteRune(sparkBlocks[min(max(idx, 0), len(sparkBlocks)-1)])
	}

	return lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(buf.String())
}

// HBar renders a horizontal bar of value scaled against peak, padded to width.
func HBar(value, peak float64, width int, color lipgloss.Color) string {
	t := theme.Active
	if width <= 0 {
		return ""
	}

	filled := 0
	if peak > 0 && value > 0 {
		filled = int(value / peak * float64(width))
		filled = min(max(filled, 1), width)
	}

	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	trackStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	return barStyle.Render(strings.Repeat("█", filled)) +
		trackStyle.Render(strings.Repeat("·", width-filled))
}

// ColumnChart renders one vertical column per value with labels underneath.
// Columns share the available width; the tallest value fills height rows.
func ColumnChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 10 || height < 2 {
		return Sparkline(values, color)
	}
	t := theme.Active

	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	peakLabel := formatAxis(peak)
	axisW := len(peakLabel) + 1

	n := len(values)
	plotW := width - axisW - 1
	colW := min(max((plotW-(n-1))/n, 1), 7)
	if colW*n+(n-1) > plotW {
		// Too many columns: fall back to a sparkline of the latest values.
		keep := max(plotW, 1)
		if keep < n {
			values = values[n-keep:]
		}
		return Sparkline(values, color)
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	// Eighth-block resolution per row.
	levels := make([]int, n)
	for i, v := range values {
		if peak > 0 && v > 0 {
			levels[i] = max(int(v/peak*float64(height*8)+0.5), 1)
		}
	}

	var b strings.Builder
	for row := height; row >= 1; row-- {
		label := ""
		if row == height {
			label = peakLabel
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", axisW, label)))

		for i, lvl := range levels {
			if i > 0 {
				b.WriteString(space.Render(" "))
			}
			fill := lvl - (row-1)*8
			switch {
			case fill >= 8:
				b.WriteString(barStyle.Render(strings.Repeat("█", colW)))
			case fill > 0:
				b.WriteString(barStyle.Render(strings.Repeat(string(sparkBlocks[fill-1]), colW)))
			default:
				b.WriteString(space.Render(strings.Repeat(" ", colW)))
			}
		}
		b.WriteString("\n")
	}

	axisLen := n*colW + (n - 1)
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s└%s", axisW, "0", strings.Repeat("─", axisLen))))

	if len(labels) == n {
		var lb strings.Builder
		for i, l := range labels {
			if i > 0 {
				lb.WriteString(" ")
			}
			r := []rune(l)
			if len(r) > colW {
				r = r[:colW]
			}
			lb.WriteString(string(r) + strings.Repeat(" ", colW-len(r)))
		}
		b.WriteString("\n")
		b.WriteString(axisStyle.Render(strings.Repeat(" ", axisW+1) + strings.TrimRight(lb.String(), " ")))
	}

	return b.String()
}

func formatAxis(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e4:
		return fmt.Sprintf("%.0fk", v/1e3)
	case v >= 1e3:
		return fmt.Sprintf("%.1fk", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
