// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Important marks emails that need attention.
	Important lipgloss.Color

	// Unproductive marks low priority emails.
	Unproductive lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:      lipgloss.Color("#7C3AED"), // Purple
		Secondary:    lipgloss.Color("#06B6D4"), // Cyan
		Foreground:   lipgloss.Color("#CDD6F4"), // Light gray
		Muted:        lipgloss.Color("#6C7086"), // Medium gray
		Important:    lipgloss.Color("#FAB387"), // Peach
		Unproductive: lipgloss.Color("#A6E3A1"), // Green
		Error:        lipgloss.Color("#F38BA8"), // Red
		Border:       lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for field labels.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for hints and placeholders.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Important style for the "needs attention" result.
	Important lipgloss.Style

	// Unproductive style for the low priority result.
	Unproductive lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// FocusedInputField style for the input area with focus.
	FocusedInputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Important: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Important).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(theme.Important).
			Padding(0, 1),

		Unproductive: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Unproductive).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Unproductive).
			Padding(0, 1),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		FocusedInputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
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

// Label returns a border-less style for a classification label, for
// single-line output such as the classify command.
func (s *Styles) Label(important bool) lipgloss.Style {
	if important {
		return lipgloss.NewStyle().Bold(true).Foreground(s.theme.Important)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(s.theme.Unproductive)
}

// Result returns the style for a classification label.
func (s *Styles) Result(important bool) lipgloss.Style {
	if important {
		return s.Important
	}
	return s.Unproductive
}
