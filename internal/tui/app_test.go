package tui

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/spendlens/internal/config"
	"github.com/theirongolddev/spendlens/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func sampleRows() []model.RawRow {
	return []model.RawRow{
		{Date: "2024-01-05", Amount: "50000", Description: "Salary"},
		{Date: "2024-01-10", Amount: "-1200.50", Description: "Grocery store"},
		{Date: "2024-01-12", Amount: "-300", Description: "Taxi ride"},
		{Date: "2024-02-05", Amount: "50000", Description: "Salary"},
		{Date: "2024-02-08", Amount: "-900", Description: "Cinema tickets"},
		{Date: "2024-02-14", Amount: "-2500", Description: "Restaurant dinner"},
	}
}

func newTestApp(t *testing.T) App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	a := NewApp(config.DefaultConfig())
	a.width, a.height = 140, 45
	return a
}

func update(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	next, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return next
}

func loaded(t *testing.T) App {
	t.Helper()
	a := newTestApp(t)
	return update(t, a, DataLoadedMsg{
		Rows:     sampleRows(),
		Files:    []string{"jan.csv", "feb.csv"},
		LoadTime: 150 * time.Millisecond,
	})
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDataLoadedComputesReport(t *testing.T) {
	a := loaded(t)

	if !a.loaded {
		t.Fatal("app not marked loaded")
	}
	if got := a.report.Basic.TransactionsCount; got != 6 {
		t.Errorf("TransactionsCount = %d, want 6", got)
	}
	if got := len(a.report.Monthly); got != 2 {
		t.Errorf("months = %d, want 2", got)
	}
	if len(a.report.Comparison.Lines) == 0 {
		t.Error("expected budget comparison lines")
	}
}

func TestDataLoadedErrorKeepsPreviousRows(t *testing.T) {
	a := loaded(t)
	a = update(t, a, DataLoadedMsg{Err: errors.New("boom")})

	if len(a.rows) != 6 {
		t.Errorf("rows = %d, want previous 6 kept", len(a.rows))
	}
	if view := a.View(); !strings.Contains(view, "Could not load ledgers") {
		t.Error("error card not shown")
	}
}

func TestTabKeys(t *testing.T) {
	a := loaded(t)

	a = update(t, a, key("b"))
	if a.activeTab != tabBudget {
		t.Errorf("after b: tab = %d, want %d", a.activeTab, tabBudget)
	}
	a = update(t, a, key("right"))
	if a.activeTab != tabSettings {
		t.Errorf("after right: tab = %d, want %d", a.activeTab, tabSettings)
	}
	a = update(t, a, key("right"))
	if a.activeTab != tabOverview {
		t.Errorf("right should wrap to overview, got %d", a.activeTab)
	}
	a = update(t, a, key("left"))
	if a.activeTab != tabSettings {
		t.Errorf("left should wrap to settings, got %d", a.activeTab)
	}
}

func TestMonthCursorBounds(t *testing.T) {
	a := loaded(t)
	a = update(t, a, key("m"))

	for range 5 {
		a = update(t, a, key("j"))
	}
	if a.monthCursor != 1 {
		t.Errorf("cursor = %d, want 1 (last month)", a.monthCursor)
	}
	for range 5 {
		a = update(t, a, key("k"))
	}
	if a.monthCursor != 0 {
		t.Errorf("cursor = %d, want 0", a.monthCursor)
	}
}

func TestSettingsCyclesAverageMode(t *testing.T) {
	a := loaded(t)
	a = update(t, a, key("x"))

	a = update(t, a, key("j"))
	a = update(t, a, key("j"))
	if a.settings.cursor != settingsFieldAverageMode {
		t.Fatalf("cursor = %d, want average mode field", a.settings.cursor)
	}

	a = update(t, a, key("enter"))
	if a.cfg.Mode() != model.AverageAllCategories {
		t.Errorf("mode = %s, want all-categories", a.cfg.Mode())
	}
	if a.report.History.Mode != model.AverageAllCategories {
		t.Errorf("report not recomputed: history mode = %s", a.report.History.Mode)
	}
	if a.settings.saveErr != nil {
		t.Fatalf("save failed: %v", a.settings.saveErr)
	}

	saved, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if saved.General.AverageMode != string(model.AverageAllCategories) {
		t.Errorf("saved mode = %q", saved.General.AverageMode)
	}
}

func TestSettingsEditCurrency(t *testing.T) {
	a := loaded(t)
	a = update(t, a, key("x"))
	a = update(t, a, key("j"))

	a = update(t, a, key("enter"))
	if !a.settings.editing {
		t.Fatal("enter on currency should start editing")
	}
	a.settings.input.SetValue("eur")
	a = update(t, a, key("enter"))

	if a.settings.editing {
		t.Error("still editing after enter")
	}
	if a.cfg.General.Currency != "EUR" {
		t.Errorf("currency = %q, want EUR", a.cfg.General.Currency)
	}
	if _, err := os.Stat(config.ConfigPath()); err != nil {
		t.Errorf("config not written: %v", err)
	}
}

func TestViewRendersEveryTab(t *testing.T) {
	a := loaded(t)

	for i := range 5 {
		a.activeTab = i
		view := a.View()
		if view == "" {
			t.Fatalf("tab %d: empty view", i)
		}
		if got := lipgloss.Height(view); got != a.height {
			t.Errorf("tab %d: view height = %d, want %d", i, got, a.height)
		}
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := loaded(t)
	a.width = 60
	if view := a.View(); !strings.Contains(view, "Terminal too narrow") {
		t.Errorf("narrow view = %q", view)
	}
}

func TestSplitInputs(t *testing.T) {
	got := splitInputs(" a.csv, ,b.json ,")
	if len(got) != 2 || got[0] != "a.csv" || got[1] != "b.json" {
		t.Errorf("splitInputs = %q", got)
	}
}
