package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/spendlens/internal/cli"
	"github.com/theirongolddev/spendlens/internal/config"
	"github.com/theirongolddev/spendlens/internal/model"
	"github.com/theirongolddev/spendlens/internal/pipeline"
	"github.com/theirongolddev/spendlens/internal/tui/components"
	"github.com/theirongolddev/spendlens/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldInputs = iota
	settingsFieldCurrency
	settingsFieldAverageMode
	settingsFieldTheme
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 50
	return ti
}

// settingsActivate edits text fields and cycles choice fields.
func (a App) settingsActivate() (tea.Model, tea.Cmd) {
	a.settings.saved = false

	switch a.settings.cursor {
	case settingsFieldAverageMode:
		a.cfg.General.AverageMode = string(nextAverageMode(a.cfg.Mode()))
		a.recompute()
		a.persistSettings()
		return a, nil
	case settingsFieldTheme:
		a.cfg.Appearance.Theme = theme.Next(a.cfg.Appearance.Theme)
		theme.SetActive(a.cfg.Appearance.Theme)
		a.persistSettings()
		return a, nil
	}

	ti := newSettingsInput()
	switch a.settings.cursor {
	case settingsFieldInputs:
		ti.Placeholder = "statement.csv, ~/bank/exports"
		ti.SetValue(strings.Join(a.cfg.General.Inputs, ", "))
	case settingsFieldCurrency:
		ti.Placeholder = "RUB"
		ti.CharLimit = 8
		ti.SetValue(a.cfg.General.Currency)
	}
	ti.Focus()
	a.settings.input = ti
	a.settings.editing = true
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settings.editing = false
		reload := a.settingsSave()
		if reload && !a.reloading {
			a.reloading = true
			return a, reloadDataCmd(a.cfg.General.Inputs)
		}
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave applies the edited text field and reports whether inputs changed.
func (a *App) settingsSave() bool {
	val := strings.TrimSpace(a.settings.input.Value())
	reload := false

	switch a.settings.cursor {
	case settingsFieldInputs:
		inputs := splitInputs(val)
		reload = strings.Join(inputs, "\x00") != strings.Join(a.cfg.General.Inputs, "\x00")
		a.cfg.General.Inputs = inputs
	case settingsFieldCurrency:
		if val != "" {
			a.cfg.General.Currency = strings.ToUpper(val)
		}
	}

	a.persistSettings()
	return reload
}

// persistSettings writes the editable fields of the running config to disk.
// Fields not shown on this tab keep their on-disk values.
func (a *App) persistSettings() {
	cfg, _ := config.Load()
	cfg.General.Inputs = a.cfg.General.Inputs
	cfg.General.Currency = a.cfg.General.Currency
	cfg.General.AverageMode = a.cfg.General.AverageMode
	cfg.Appearance.Theme = a.cfg.Appearance.Theme

	a.settings.saveErr = config.Save(cfg)
	a.settings.saved = a.settings.saveErr == nil
}

func nextAverageMode(m model.AverageMode) model.AverageMode {
	for i, mode := range model.AverageModes {
		if mode == m {
			return model.AverageModes[(i+1)%len(model.AverageModes)]
		}
	}
	return model.AverageModes[0]
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceHover).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	okStyle := lipgloss.NewStyle().Foreground(t.Income).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover)

	inputs := "(none)"
	if len(a.cfg.General.Inputs) > 0 {
		inputs = strings.Join(a.cfg.General.Inputs, ", ")
	}

	fields := []struct {
		label string
		value string
	}{
		{"Inputs", inputs},
		{"Currency", a.cfg.General.Currency},
		{"Average Mode", string(a.cfg.Mode())},
		{"Theme", a.cfg.Appearance.Theme},
	}

	innerW := components.CardInnerWidth(cw)
	valueW := max(innerW-22, 8)

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(truncStr(f.value, valueW))
			formBody.WriteString(marker + label + value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			if padLen := innerW - usedWidth; padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceHover).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(truncStr(f.value, valueW)))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Warning).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(okStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit or toggle  [Esc] cancel"))

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Files read:      ") + valueStyle.Render(cli.FormatNumber(int64(len(a.files)))) + "\n")
	infoBody.WriteString(labelStyle.Render("From cache:      ") + valueStyle.Render(cli.FormatNumber(int64(a.cacheHits))) + "\n")
	infoBody.WriteString(labelStyle.Render("Rows loaded:     ") + valueStyle.Render(cli.FormatNumber(int64(len(a.rows)))) + "\n")
	infoBody.WriteString(labelStyle.Render("Load time:       ") + valueStyle.Render(fmt.Sprintf("%.1fs", a.loadTime.Seconds())) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:     ") + valueStyle.Render(truncStr(config.ConfigPath(), valueW)) + "\n")
	infoBody.WriteString(labelStyle.Render("Cache file:      ") + valueStyle.Render(truncStr(pipeline.CachePath(), valueW)))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
