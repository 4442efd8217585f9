package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorTitle       = "#322153" // Deep purple - screen titles
	ColorDescription = "#6C6C80" // Slate - body copy
	ColorPlaceholder = "#9EA0A4" // Gray - dropdown placeholders
	ColorAccent      = "#34CB79" // Green - button, focused borders
	ColorButtonText  = "#FFFFFF"
	ColorBorder      = "241"
	ColorDanger      = "196" // Red - fetch errors
	ColorMuted       = "243"
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Logo        lipgloss.Style
	Title       lipgloss.Style
	Description lipgloss.Style

	Field        lipgloss.Style // Dropdown field, unfocused
	FieldFocused lipgloss.Style // Dropdown field with focus
	Placeholder  lipgloss.Style
	Value        lipgloss.Style

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	BoxCompact lipgloss.Style // Modal box around dropdown lists
	Selected   lipgloss.Style
	Muted      lipgloss.Style
	Hint       lipgloss.Style
	Error      lipgloss.Style
	Section    lipgloss.Style
}{
	Logo: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorTitle)).
		MarginTop(1),
	Description: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDescription)).
		MarginTop(1),
	Field: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1),
	FieldFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Placeholder: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPlaceholder)),
	Value: lipgloss.NewStyle(),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorButtonText)).
		Background(lipgloss.Color(ColorAccent)).
		Padding(0, 2).
		MarginTop(1),
	ButtonFocused: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorButtonText)).
		Background(lipgloss.Color(ColorAccent)).
		Underline(true).
		Padding(0, 2).
		MarginTop(1),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		Margin(1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorTitle)),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Muted
	d.Styles.NormalDesc = Styles.Muted
	return d
}
