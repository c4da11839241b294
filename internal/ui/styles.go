package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - lime accent on gray, shared with the CLI diagnostics.
const (
	ColorLime     = "154" // Primary accent (#AFFF00)
	ColorLimeDim  = "106" // Dimmed lime for borders
	ColorWhite    = "255" // Headers, important text
	ColorGray     = "245" // Secondary text, labels
	ColorDarkGray = "238" // Separators
)

// Styles holds all pager styles.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Dim    lipgloss.Style
	Border lipgloss.Style
	Footer lipgloss.Style
}

// DefaultStyles returns the colored pager styles.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLimeDim)),
		Footer: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWhite)),
	}
}

// NoColorStyles returns unstyled components.
func NoColorStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle(),
		Label:  lipgloss.NewStyle(),
		Dim:    lipgloss.NewStyle(),
		Border: lipgloss.NewStyle(),
		Footer: lipgloss.NewStyle(),
	}
}

// GetStyles returns the appropriate styles based on color preference.
func GetStyles(noColor bool) Styles {
	if noColor {
		return NoColorStyles()
	}
	return DefaultStyles()
}
