// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color

	// Status colours. Success doubles as the valid-expiry colour.
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// Soon marks documents expiring within the soon window but not urgently.
	Soon lipgloss.Color

	// Highlight marks the field a query asked about.
	Highlight lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2563EB"), // Blue
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Border:     lipgloss.Color("#45475A"), // Border gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Warning:    lipgloss.Color("#FAB387"), // Orange
		Error:      lipgloss.Color("#F38BA8"), // Red
		Soon:       lipgloss.Color("#F9E2AF"), // Yellow
		Highlight:  lipgloss.Color("#CBA6F7"), // Mauve
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style

	// Highlight renders the value of the field a query asked about.
	Highlight lipgloss.Style

	// Chip and ChipSelected render the suggestion chip row.
	Chip         lipgloss.Style
	ChipSelected lipgloss.Style

	// Expiry styles, one per expiry state.
	Expired  lipgloss.Style
	Urgent   lipgloss.Style
	Soon     lipgloss.Style
	Valid    lipgloss.Style
	NoExpiry lipgloss.Style

	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Help       lipgloss.Style
	Border     lipgloss.Style
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

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Highlight: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Highlight),

		Chip: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		ChipSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		Expired: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Error),

		Urgent: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Soon: lipgloss.NewStyle().
			Foreground(theme.Soon),

		Valid: lipgloss.NewStyle().
			Foreground(theme.Success),

		NoExpiry: lipgloss.NewStyle().
			Foreground(theme.Muted),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
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

// ForExpiry picks the style matching an expiry status.
func (s *Styles) ForExpiry(status domain.ExpiryStatus) lipgloss.Style {
	switch status.State {
	case domain.ExpiryExpired:
		return s.Expired
	case domain.ExpiryExpiringSoon:
		if status.Urgent {
			return s.Urgent
		}
		return s.Soon
	case domain.ExpiryValid:
		return s.Valid
	default:
		return s.NoExpiry
	}
}
