package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// PointsView is the destination of a completed location pick. It shows the
// city and UF it was opened with; listing collection points is left to the
// points service.
type PointsView struct {
	City string
	UF   string
}

// Ensure PointsView implements View.
var _ View = (*PointsView)(nil)

// NewPointsView creates the points screen from navigation params.
func NewPointsView(params map[string]string) *PointsView {
	return &PointsView{City: params["city"], UF: params["uf"]}
}

// Init implements View.
func (p *PointsView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (p *PointsView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc", "backspace", "h", "left":
			return p, func() tea.Msg { return BackMsg{} }
		}
	}
	return p, nil
}

// HelpBindings implements HelpProvider.
func (p *PointsView) HelpBindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "voltar")),
	}
}

// View implements View.
func (p *PointsView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Section.Render("Pontos de coleta") + "\n\n")
	b.WriteString(fmt.Sprintf("Cidade: %s\n", orDash(p.City)))
	b.WriteString(fmt.Sprintf("UF:     %s\n", orDash(p.UF)))
	if p.City == "" || p.UF == "" {
		b.WriteString("\n" + Styles.Muted.Render("Seleção incompleta: volte e escolha estado e cidade.") + "\n")
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
