// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// statusBackground sits slightly darker than the theme background.
const statusBackground = lipgloss.Color("#12100E")

// Theme is the colour palette the styles derive from.
type Theme struct {
	Primary    lipgloss.Color // accent, also the selection background
	Secondary  lipgloss.Color // secondary accent
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#D97706"), // Amber
		Secondary:  lipgloss.Color("#0D9488"), // Teal
		Background: lipgloss.Color("#1C1917"), // Warm dark
		Foreground: lipgloss.Color("#E7E5E4"), // Warm light
		Muted:      lipgloss.Color("#78716C"), // Stone gray
		Success:    lipgloss.Color("#84CC16"), // Lime
		Warning:    lipgloss.Color("#FBBF24"), // Yellow
		Error:      lipgloss.Color("#EF4444"), // Red
		Border:     lipgloss.Color("#44403C"), // Border gray
	}
}

// Styles holds the lipgloss styles the views render with, all derived
// from a single Theme.
type Styles struct {
	theme *Theme

	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	InputField lipgloss.Style // bordered query box
	StatusBar  lipgloss.Style
	Help       lipgloss.Style
	Border     lipgloss.Style // generic bordered container
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	base := lipgloss.NewStyle().Foreground(theme.Foreground)
	bordered := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	return &Styles{
		theme: theme,

		Title:    base.Bold(true).Foreground(theme.Primary),
		Subtitle: base.Bold(true).Foreground(theme.Secondary),
		Normal:   base,
		Muted:    base.Foreground(theme.Muted),
		Selected: base.Bold(true).Background(theme.Primary),
		Error:    base.Foreground(theme.Error),
		Success:  base.Foreground(theme.Success),
		Warning:  base.Foreground(theme.Warning),

		InputField: bordered.Padding(0, 1),
		StatusBar: base.Foreground(theme.Muted).
			Background(statusBackground).
			Padding(0, 1),
		Help:   base.Foreground(theme.Muted),
		Border: bordered,
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
