package interactive

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the form view.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Required lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the adaptive default palette.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Label: lipgloss.NewStyle().
			Width(labelWidth).
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}),
		Focused: lipgloss.NewStyle().
			Width(labelWidth).
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}),
		Required: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"}),
		Error: lipgloss.NewStyle().
			PaddingLeft(labelWidth).
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"}),
		Help: lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"}),
	}
}

const labelWidth = 16
