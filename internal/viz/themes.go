package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the explorer TUI chrome.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

var (
	ThemeEmber = Theme{
		Name:    "ember",
		Primary: lipgloss.Color("#ff8800"),
		Accent:  lipgloss.Color("#ffcc44"),
		Text:    lipgloss.Color("#fff4e0"),
		Muted:   lipgloss.Color("#88664a"),
		Warning: lipgloss.Color("#ffaa00"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemeIce = Theme{
		Name:    "ice",
		Primary: lipgloss.Color("#44bbff"),
		Accent:  lipgloss.Color("#aaeeff"),
		Text:    lipgloss.Color("#e8f8ff"),
		Muted:   lipgloss.Color("#4a7088"),
		Warning: lipgloss.Color("#ffcc00"),
		Error:   lipgloss.Color("#ff5566"),
	}

	ThemeMono = Theme{
		Name:    "mono",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#cccccc"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Warning: lipgloss.Color("#ffaa00"),
		Error:   lipgloss.Color("#ff0000"),
	}

	Themes = []Theme{ThemeEmber, ThemeIce, ThemeMono}
)

// GetTheme returns a theme by name, falling back to ember.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeEmber
}

// ThemeNames lists the available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
