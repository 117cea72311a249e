// Package theme defines color themes for the spendlens dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	SurfaceHover lipgloss.Color // Selected row, active tab
	Border       lipgloss.Color
	BorderAccent lipgloss.Color // Focused cards and overlays
	TextDim      lipgloss.Color // Hints, axes
	TextMuted    lipgloss.Color // Labels
	TextPrimary  lipgloss.Color
	Accent       lipgloss.Color
	AccentBright lipgloss.Color
	Income       lipgloss.Color // Money in, budgets kept
	Expense      lipgloss.Color // Money out
	Warning      lipgloss.Color // Nearing a limit
	Alert        lipgloss.Color // Limits exceeded, bad verdicts

	// Series colors categories cycle through in charts.
	Series []lipgloss.Color
}

// SeriesColor returns the chart color for the i-th series.
func (t Theme) SeriesColor(i int) lipgloss.Color {
	if len(t.Series) == 0 {
		return t.Accent
	}
	return t.Series[i%len(t.Series)]
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme, a warm paper-inspired dark palette.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	SurfaceHover: lipgloss.Color("#343331"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Income:       lipgloss.Color("#A3B859"),
	Expense:      lipgloss.Color("#DA702C"),
	Warning:      lipgloss.Color("#D0A215"),
	Alert:        lipgloss.Color("#D14D41"),
	Series: []lipgloss.Color{
		lipgloss.Color("#4385BE"), lipgloss.Color("#24837B"), lipgloss.Color("#CE5D97"),
		lipgloss.Color("#D0A215"), lipgloss.Color("#879A39"), lipgloss.Color("#8B7EC8"),
	},
}

// CatppuccinMocha is a soft pastel palette.
var CatppuccinMocha = Theme{
	Name:         "catppuccin-mocha",
	Background:   lipgloss.Color("#1E1E2E"),
	Surface:      lipgloss.Color("#313244"),
	SurfaceHover: lipgloss.Color("#585B70"),
	Border:       lipgloss.Color("#585B70"),
	BorderAccent: lipgloss.Color("#89B4FA"),
	TextDim:      lipgloss.Color("#6C7086"),
	TextMuted:    lipgloss.Color("#A6ADC8"),
	TextPrimary:  lipgloss.Color("#CDD6F4"),
	Accent:       lipgloss.Color("#89B4FA"),
	AccentBright: lipgloss.Color("#B4D0FB"),
	Income:       lipgloss.Color("#A6E3A1"),
	Expense:      lipgloss.Color("#FAB387"),
	Warning:      lipgloss.Color("#F9E2AF"),
	Alert:        lipgloss.Color("#F38BA8"),
	Series: []lipgloss.Color{
		lipgloss.Color("#89B4FA"), lipgloss.Color("#94E2D5"), lipgloss.Color("#F5C2E7"),
		lipgloss.Color("#F9E2AF"), lipgloss.Color("#A6E3A1"), lipgloss.Color("#CBA6F7"),
	},
}

// TokyoNight is a cool blue and purple palette.
var TokyoNight = Theme{
	Name:         "tokyo-night",
	Background:   lipgloss.Color("#1A1B26"),
	Surface:      lipgloss.Color("#24283B"),
	SurfaceHover: lipgloss.Color("#414868"),
	Border:       lipgloss.Color("#565F89"),
	BorderAccent: lipgloss.Color("#7AA2F7"),
	TextDim:      lipgloss.Color("#565F89"),
	TextMuted:    lipgloss.Color("#A9B1D6"),
	TextPrimary:  lipgloss.Color("#C0CAF5"),
	Accent:       lipgloss.Color("#7AA2F7"),
	AccentBright: lipgloss.Color("#A9C1FF"),
	Income:       lipgloss.Color("#9ECE6A"),
	Expense:      lipgloss.Color("#FF9E64"),
	Warning:      lipgloss.Color("#E0AF68"),
	Alert:        lipgloss.Color("#F7768E"),
	Series: []lipgloss.Color{
		lipgloss.Color("#7AA2F7"), lipgloss.Color("#7DCFFF"), lipgloss.Color("#BB9AF7"),
		lipgloss.Color("#E0AF68"), lipgloss.Color("#9ECE6A"), lipgloss.Color("#2AC3DE"),
	},
}

// Terminal uses ANSI 16 colors only.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	AccentBright: lipgloss.Color("14"),
	Income:       lipgloss.Color("2"),
	Expense:      lipgloss.Color("3"),
	Warning:      lipgloss.Color("11"),
	Alert:        lipgloss.Color("1"),
	Series: []lipgloss.Color{
		lipgloss.Color("4"), lipgloss.Color("6"), lipgloss.Color("5"),
		lipgloss.Color("3"), lipgloss.Color("2"), lipgloss.Color("12"),
	},
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// Names returns the theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// Next returns the name of the theme after name, wrapping around.
func Next(name string) string {
	for i, t := range All {
		if t.Name == name {
			return All[(i+1)%len(All)].Name
		}
	}
	return All[0].Name
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
