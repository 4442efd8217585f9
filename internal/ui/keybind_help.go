package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// HelpProvider is implemented by views that contribute their own key hints.
type HelpProvider interface {
	HelpBindings() []key.Binding
}

// RenderKeybindHelp renders the footer: the view's own hints followed by
// the app-wide bindings from reg.
func RenderKeybindHelp(reg *KeybindRegistry, v View) string {
	var bindings []key.Binding
	if hp, ok := v.(HelpProvider); ok {
		bindings = append(bindings, hp.HelpBindings()...)
	}
	if reg != nil {
		bindings = append(bindings, reg.Bindings()...)
	}
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true)
	helpModel.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	helpModel.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))

	return lipgloss.NewStyle().MarginTop(1).Render(helpModel.ShortHelpView(bindings))
}
