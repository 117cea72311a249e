// Package tui provides the interactive Bubble Tea dashboard for spendlens.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/spendlens/internal/cli"
	"github.com/theirongolddev/spendlens/internal/config"
	"github.com/theirongolddev/spendlens/internal/model"
	"github.com/theirongolddev/spendlens/internal/pipeline"
	"github.com/theirongolddev/spendlens/internal/store"
	"github.com/theirongolddev/spendlens/internal/tui/components"
	"github.com/theirongolddev/spendlens/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the loader finishes.
type DataLoadedMsg struct {
	Rows      []model.RawRow
	Files     []string
	CacheHits int
	LoadTime  time.Duration
	Err       error
}

// ProgressMsg reports file reading progress.
type ProgressMsg struct {
	Current int
	Total   int
}

const (
	tabOverview = iota
	tabCategories
	tabMonths
	tabBudget
	tabSettings
)

// App is the root Bubble Tea model.
type App struct {
	cfg config.Config

	// Data
	rows      []model.RawRow
	files     []string
	cacheHits int
	report    model.Report
	loaded    bool
	loadTime  time.Duration
	loadErr   error
	reloading bool

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	monthCursor int
	settings    settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool

	// Loading: progress and completion arrive through loadSub
	spinner     spinner.Model
	progress    int
	progressMax int
	loadSub     chan tea.Msg
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180
	minContentHeight = 5
)

// NewApp creates a new TUI app model for the effective configuration.
func NewApp(cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		cfg:       cfg,
		needSetup: !config.Exists(),
		spinner:   sp,
		loadSub:   make(chan tea.Msg, 1),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.needSetup {
		// The form is built in Update once it can be stored on the model.
		return func() tea.Msg { return startSetupMsg{} }
	}
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.cfg.General.Inputs, a.loadSub),
		a.spinner.Tick,
	)
}

type startSetupMsg struct{}

// recompute reruns the analysis over the loaded rows.
func (a *App) recompute() {
	a.report = pipeline.Analyze(a.rows, pipeline.Options{
		Table: a.cfg.CategoryTable(),
		Mode:  a.cfg.Mode(),
	})
	if a.monthCursor >= len(a.report.Monthly) {
		a.monthCursor = len(a.report.Monthly) - 1
	}
	if a.monthCursor < 0 {
		a.monthCursor = 0
	}
}

func (a App) startLoad() (tea.Model, tea.Cmd) {
	a.loaded = false
	a.loadErr = nil
	a.progress, a.progressMax = 0, 0
	a.loadSub = make(chan tea.Msg, 1)
	return a, tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.cfg.General.Inputs, a.loadSub),
		a.spinner.Tick,
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case startSetupMsg:
		a.setupVals = defaultSetupValues(a.cfg)
		a.setupForm = newSetupForm(a.setupVals)
		if a.width > 0 {
			a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
		}
		return a, a.setupForm.Init()

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.setupForm != nil {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabMonths && a.monthCursor > 0 {
				a.monthCursor--
			}
		case tea.MouseButtonWheelDown:
			if a.activeTab == tabMonths && a.monthCursor < len(a.report.Monthly)-1 {
				a.monthCursor++
			}
		case tea.MouseButtonLeft:
			if msg.Action == tea.MouseActionPress && msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if !a.loaded {
			if key == "q" {
				return a, tea.Quit
			}
			return a, nil
		}

		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch a.activeTab {
		case tabMonths:
			switch key {
			case "j", "down":
				if a.monthCursor < len(a.report.Monthly)-1 {
					a.monthCursor++
				}
				return a, nil
			case "k", "up":
				if a.monthCursor > 0 {
					a.monthCursor--
				}
				return a, nil
			case "g":
				a.monthCursor = 0
				return a, nil
			case "G":
				a.monthCursor = max(len(a.report.Monthly)-1, 0)
				return a, nil
			}
		case tabSettings:
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsActivate()
			}
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "r":
			if !a.reloading {
				a.reloading = true
				return a, reloadDataCmd(a.cfg.General.Inputs)
			}
			return a, nil
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}
		if r := []rune(key); len(r) == 1 {
			if idx := components.TabIdxByKey(r[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil

	case ProgressMsg:
		a.progress = msg.Current
		a.progressMax = msg.Total
		return a, waitForLoadMsg(a.loadSub)

	case DataLoadedMsg:
		a.reloading = false
		a.loadTime = msg.LoadTime
		a.loadErr = msg.Err
		if msg.Err == nil {
			a.rows = msg.Rows
			a.files = msg.Files
			a.cacheHits = msg.CacheHits
		}
		a.loaded = true
		a.recompute()
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.settings.saveErr = a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		return a.startLoad()
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a.startLoad()
	}

	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  spendlens needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)
	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spinnerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	countStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ spendlens"))
	b.WriteString(subtitleStyle.Render(" · personal ledger"))
	b.WriteString("\n\n")

	if a.progressMax > 0 {
		barW := min(max(a.width-30, 20), 40)
		b.WriteString(spinnerStyle.Render(a.spinner.View()))
		b.WriteString(subtitleStyle.Render(" Reading ledgers\n\n"))
		b.WriteString(components.ProgressBar(float64(a.progress)/float64(a.progressMax), barW))
		b.WriteString("\n")
		b.WriteString(countStyle.Render(cli.FormatNumber(int64(a.progress))))
		b.WriteString(subtitleStyle.Render(" / "))
		b.WriteString(countStyle.Render(cli.FormatNumber(int64(a.progressMax))))
	} else {
		b.WriteString(spinnerStyle.Render(a.spinner.View()))
		b.WriteString(subtitleStyle.Render(" Discovering ledger files..."))
	}

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	bindings := []struct{ key, desc string }{
		{"o c m b x", "Jump to tab"},
		{"← → tab", "Previous / Next tab"},
		{"j k", "Move through months and settings"},
		{"Enter", "Edit or toggle a setting"},
		{"Esc", "Cancel editing"},
		{"r", "Reload ledger files"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "%s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	info := fmt.Sprintf("%s · %s · %s · %.1fs",
		cli.FormatCount(len(a.files), "file", "files"),
		cli.FormatCount(len(a.rows), "txn", "txns"),
		a.cfg.Mode(),
		a.loadTime.Seconds(),
	)
	if a.reloading {
		info = "reloading… " + info
	}
	statusBar := components.RenderStatusBar(w, "[?]help  [r]eload  [q]uit", info, a.reloading)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch {
	case a.loadErr != nil && a.activeTab != tabSettings:
		content = a.renderLoadError(cw)
	case len(a.rows) == 0 && a.activeTab != tabSettings:
		content = a.renderEmpty(cw)
	default:
		switch a.activeTab {
		case tabOverview:
			content = a.renderOverviewTab(cw)
		case tabCategories:
			content = a.renderCategoriesTab(cw)
		case tabMonths:
			content = a.renderMonthsTab(cw, contentH)
		case tabBudget:
			content = a.renderBudgetTab(cw)
		case tabSettings:
			content = a.renderSettingsTab(cw)
		}
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderLoadError(cw int) string {
	t := theme.Active
	errStyle := lipgloss.NewStyle().Foreground(t.Alert).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	body := errStyle.Render(a.loadErr.Error()) + "\n\n" +
		hintStyle.Render("Fix the inputs in Settings [x] and press r to reload.")
	return components.ContentCard("Could not load ledgers", body, cw)
}

func (a App) renderEmpty(cw int) string {
	t := theme.Active
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	body := hintStyle.Render("No transactions found.") + "\n" +
		hintStyle.Render("Add a CSV, JSON or OFX export under Settings [x] → Inputs, then press r.")
	return components.ContentCard("Empty ledger", body, cw)
}

// ─── Loading ────────────────────────────────────────────────────

// load reads inputs through the cache when it can be opened, else directly.
func load(ctx context.Context, inputs []string, progressFn pipeline.ProgressFunc) DataLoadedMsg {
	start := time.Now()
	if len(inputs) == 0 {
		return DataLoadedMsg{LoadTime: time.Since(start)}
	}

	if cache, err := store.Open(pipeline.CachePath()); err == nil {
		cr, loadErr := pipeline.LoadWithCache(ctx, inputs, cache, progressFn)
		_ = cache.Close()
		if loadErr == nil {
			return DataLoadedMsg{
				Rows:      cr.Rows,
				Files:     cr.Files,
				CacheHits: cr.CacheHits,
				LoadTime:  time.Since(start),
			}
		}
	}

	result, err := pipeline.Load(ctx, inputs, progressFn)
	if err != nil {
		return DataLoadedMsg{LoadTime: time.Since(start), Err: err}
	}
	return DataLoadedMsg{Rows: result.Rows, Files: result.Files, LoadTime: time.Since(start)}
}

// loadDataCmd starts loading in a background goroutine.
// It streams ProgressMsg updates and a final DataLoadedMsg through sub.
func loadDataCmd(inputs []string, sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		go func() {
			// Non-blocking send so readers aren't stalled; a later update catches up.
			progressFn := func(current, total int) {
				select {
				case sub <- ProgressMsg{Current: current, Total: total}:
				default:
				}
			}
			sub <- load(context.Background(), inputs, progressFn)
		}()

		return <-sub
	}
}

// waitForLoadMsg blocks until the next message arrives from the loader goroutine.
func waitForLoadMsg(sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-sub
	}
}

// reloadDataCmd reloads in the background without the loading screen.
func reloadDataCmd(inputs []string) tea.Cmd {
	return func() tea.Msg {
		return load(context.Background(), inputs, nil)
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow the widths RenderTabBar draws.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
