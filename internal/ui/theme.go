package ui

import (
	"github.com/charmbracelet/lipgloss"

	"lavka/internal/notify"
)

// Theme defines the storefront color palette. The palette is a pure function
// of the dark-mode flag: two fixed tables, no mixed states.
type Theme struct {
	Name string
	Dark bool

	Primary       string
	Secondary     string
	Background    string
	Surface       string
	Text          string
	TextSecondary string
	Border        string
	Shadow        string
}

// ThemeFor returns the palette for the given dark-mode flag.
func ThemeFor(dark bool) Theme {
	if dark {
		return darkTheme()
	}
	return lightTheme()
}

func lightTheme() Theme {
	return Theme{
		Name: "light",
		Dark: false,

		Primary:       "#1976d2",
		Secondary:     "#dc004e",
		Background:    "#ffffff",
		Surface:       "#f8f9fa",
		Text:          "#333333",
		TextSecondary: "#666666",
		Border:        "#e0e0e0",
		Shadow:        "#cccccc", // terminal rendition of rgba(0,0,0,0.1)
	}
}

func darkTheme() Theme {
	return Theme{
		Name: "dark",
		Dark: true,

		Primary:       "#64b5f6",
		Secondary:     "#f48fb1",
		Background:    "#121212",
		Surface:       "#1e1e1e",
		Text:          "#ffffff",
		TextSecondary: "#b0b0b0",
		Border:        "#333333",
		Shadow:        "#444444", // terminal rendition of rgba(255,255,255,0.1)
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text          lipgloss.Style
	MutedText     lipgloss.Style
	AccentText    lipgloss.Style
	SecondaryText lipgloss.Style
	SuccessText   lipgloss.Style
	DangerText    lipgloss.Style

	Logo     lipgloss.Style
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Selected lipgloss.Style
	Panel    lipgloss.Style
	Badge    lipgloss.Style

	toastColors map[notify.Kind]string
	surface     string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	success, danger := "#2e7d32", "#d32f2f"
	if t.Dark {
		success, danger = "#66bb6a", "#f44336"
	}

	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)),

		SecondaryText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(success)).
			Bold(true),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(danger)).
			Bold(true),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.TextSecondary)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Primary)).
			Foreground(lipgloss.Color(t.Background)),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),

		toastColors: map[notify.Kind]string{
			notify.KindInfo:    t.Primary,
			notify.KindSuccess: success,
			notify.KindError:   danger,
		},
		surface: t.Surface,
	}
}

// ToastStyle returns the style for a toast of the given severity.
func (s Styles) ToastStyle(kind notify.Kind) lipgloss.Style {
	color := s.toastColors[kind]
	if color == "" {
		color = s.toastColors[notify.KindInfo]
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color)).
		Foreground(lipgloss.Color(color)).
		Background(lipgloss.Color(s.surface)).
		Padding(0, 1)
}
