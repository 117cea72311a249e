package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTabBarWidthMatchesTabWidths(t *testing.T) {
	for active := range Tabs {
		want := len(Tabs) - 1 // separators
		for i, tab := range Tabs {
			want += TabVisualWidth(tab, i == active)
		}

		bar := RenderTabBar(active, want)
		if strings.Contains(bar, "\n") {
			t.Errorf("active=%d: tabs overflow %d columns", active, want)
		}
		if got := lipgloss.Width(bar); got != want {
			t.Errorf("active=%d: bar width = %d, want %d", active, got, want)
		}
		if wide := RenderTabBar(active, 200); lipgloss.Width(wide) != 200 {
			t.Errorf("active=%d: padded bar width = %d, want 200", active, lipgloss.Width(wide))
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	tests := map[rune]int{'o': 0, 'c': 1, 'm': 2, 'b': 3, 'x': 4, 'z': -1}
	for key, want := range tests {
		if got := TabIdxByKey(key); got != want {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", key, got, want)
		}
	}
}

func TestHBarWidth(t *testing.T) {
	for _, v := range []float64{0, 1, 50, 100, 400} {
		if got := lipgloss.Width(HBar(v, 100, 20, "#fff")); got != 20 {
			t.Errorf("HBar(%v) width = %d, want 20", v, got)
		}
	}
}

func TestColumnChartShape(t *testing.T) {
	chart := ColumnChart([]float64{100, 50, 0}, []string{"Jan", "Feb", "Mar"}, "#fff", 40, 4)
	lines := strings.Split(chart, "\n")
	if len(lines) != 6 { // 4 rows, axis, labels
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), chart)
	}
	if !strings.Contains(stripANSI(lines[5]), "Jan") {
		t.Errorf("label row missing month labels: %q", stripANSI(lines[5]))
	}
}

func TestColumnChartFallsBackToSparkline(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}
	chart := ColumnChart(values, nil, "#fff", 30, 4)
	if strings.Contains(chart, "\n") {
		t.Errorf("expected a single-line sparkline for crowded data")
	}
}

func TestColorForRatio(t *testing.T) {
	if ColorForRatio(1.2) == ColorForRatio(0.2) {
		t.Error("overspend and low spend should use different colors")
	}
}

func TestBudgetGaugeWidth(t *testing.T) {
	g := BudgetGauge("Groceries and more", 120, 100, 10, 20)
	// label + space + bar + space + "NNNN%"
	if got := lipgloss.Width(g); got != 10+1+20+1+5 {
		t.Errorf("gauge width = %d, want %d", got, 37)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEsc = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
