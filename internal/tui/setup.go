package tui

import (
	"strings"

	"github.com/theirongolddev/spendlens/internal/config"
	"github.com/theirongolddev/spendlens/internal/model"
	"github.com/theirongolddev/spendlens/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the first-run form answers. The form binds to its
// fields by pointer, so App keeps it behind a pointer too.
type setupValues struct {
	inputs      string
	currency    string
	averageMode string
	theme       string
}

func defaultSetupValues(cfg config.Config) *setupValues {
	return &setupValues{
		inputs:      strings.Join(cfg.General.Inputs, ", "),
		currency:    cfg.General.Currency,
		averageMode: string(cfg.Mode()),
		theme:       cfg.Appearance.Theme,
	}
}

func newSetupForm(vals *setupValues) *huh.Form {
	modeOpts := make([]huh.Option[string], 0, len(model.AverageModes))
	for _, m := range model.AverageModes {
		modeOpts = append(modeOpts, huh.NewOption(averageModeLabel(m), string(m)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to spendlens").
				Description("A few questions and the dashboard is ready.\nRun `spendlens setup` anytime to change them."),
			huh.NewInput().
				Title("Ledger files").
				Description("CSV, JSON or OFX files or directories, comma separated").
				Placeholder("~/Documents/bank/statement.csv").
				Value(&vals.inputs),
			huh.NewInput().
				Title("Currency").
				Placeholder("RUB").
				CharLimit(8).
				Value(&vals.currency),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Historical average").
				Options(modeOpts...).
				Value(&vals.averageMode),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&vals.theme),
		),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(true)
}

func averageModeLabel(m model.AverageMode) string {
	switch m {
	case model.AverageTopThree:
		return "Top three categories per month"
	case model.AverageAllCategories:
		return "Every category"
	}
	return string(m)
}

// saveSetupConfig merges the form answers into the on-disk config and the
// running app.
func (a *App) saveSetupConfig() error {
	cfg, _ := config.Load()

	if inputs := splitInputs(a.setupVals.inputs); len(inputs) > 0 {
		cfg.General.Inputs = inputs
		a.cfg.General.Inputs = inputs
	}
	if cur := strings.ToUpper(strings.TrimSpace(a.setupVals.currency)); cur != "" {
		cfg.General.Currency = cur
		a.cfg.General.Currency = cur
	}
	if _, err := model.ParseAverageMode(a.setupVals.averageMode); err == nil {
		cfg.General.AverageMode = a.setupVals.averageMode
		a.cfg.General.AverageMode = a.setupVals.averageMode
	}
	if a.setupVals.theme != "" {
		cfg.Appearance.Theme = a.setupVals.theme
		a.cfg.Appearance.Theme = a.setupVals.theme
		theme.SetActive(a.setupVals.theme)
	}

	return config.Save(cfg)
}

func splitInputs(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
