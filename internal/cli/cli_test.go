package cli

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in       string
		currency string
		want     string
	}{
		{"12345.67", "RUB", "12 345.67 RUB"},
		{"0", "RUB", "0.00 RUB"},
		{"1000000.5", "", "1 000 000.50"},
		{"-1234.5", "EUR", "-1 234.50 EUR"},
		{"999.99", "USD", "999.99 USD"},
	}
	for _, tt := range tests {
		got := FormatMoney(decimal.RequireFromString(tt.in), tt.currency)
		if got != tt.want {
			t.Errorf("FormatMoney(%s, %q) = %q, want %q", tt.in, tt.currency, got, tt.want)
		}
	}
}

func TestFormatWhole(t *testing.T) {
	if got := FormatWhole(decimal.RequireFromString("4567"), "RUB"); got != "4 567 RUB" {
		t.Errorf("FormatWhole = %q, want %q", got, "4 567 RUB")
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1 000"},
		{1234567, "1 234 567"},
		{-42000, "-42 000"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(decimal.RequireFromString("33.33")); got != "33.3%" {
		t.Errorf("FormatPercent = %q, want %q", got, "33.3%")
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(1, "file", "files"); got != "1 file" {
		t.Errorf("FormatCount(1) = %q", got)
	}
	if got := FormatCount(1200, "file", "files"); got != "1 200 files" {
		t.Errorf("FormatCount(1200) = %q", got)
	}
}

func TestFormatMonth(t *testing.T) {
	tests := map[string]string{
		"2024-01": "Jan 2024",
		"2023-12": "Dec 2023",
		"2024-13": "2024-13",
		"garbage": "garbage",
	}
	for in, want := range tests {
		if got := FormatMonth(in); got != want {
			t.Errorf("FormatMonth(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderTableAlignsColumns(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Category", "Amount"},
		Rows: [][]string{
			{"Food", "1 200.00"},
			SeparatorRow,
			{"Total", "7.00"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	width := lipgloss.Width(lines[0])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != width {
			t.Errorf("line %d width = %d, want %d", i, w, width)
		}
	}
	if !strings.Contains(out, "    7.00") {
		t.Errorf("numeric column not right-aligned:\n%s", out)
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Errorf("RenderTable(empty) = %q, want empty", got)
	}
}

func TestRenderBar(t *testing.T) {
	d := decimal.RequireFromString
	if got := lipgloss.Width(RenderBar(d("50"), d("100"), 20)); got != 10 {
		t.Errorf("half bar width = %d, want 10", got)
	}
	if got := lipgloss.Width(RenderBar(d("500"), d("100"), 20)); got != 20 {
		t.Errorf("clamped bar width = %d, want 20", got)
	}
	if got := RenderBar(d("5"), d("0"), 20); got != "" {
		t.Errorf("bar with zero max = %q, want empty", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	d := decimal.RequireFromString
	got := lipgloss.Width(RenderSparkline([]decimal.Decimal{d("0"), d("50"), d("100")}))
	if got != 3 {
		t.Errorf("sparkline width = %d, want 3", got)
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	if err != nil || lvl != slog.LevelDebug {
		t.Errorf("ParseLevel(debug) = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}
}

func TestSetupLoggerRejectsUnknownFormat(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	if err := SetupLogger("info", "xml"); err == nil {
		t.Error("SetupLogger with format xml should fail")
	}
	if err := SetupLogger("warn", "json"); err != nil {
		t.Errorf("SetupLogger(warn, json) = %v", err)
	}
}
