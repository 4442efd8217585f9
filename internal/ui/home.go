package ui

import (
	"context"
	"strings"

	"ecoleta/internal/location"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	homeTitle       = "Seu marketplace de coleta de resíduos"
	homeDescription = "Ajudamos pessoas a encontrarem pontos de coleta de forma eficiente"

	statePlaceholder = "Selecione um estado..."
	cityPlaceholder  = "Selecione uma cidade..."
	submitLabel      = "Entrar"
)

// Focus IDs on the home screen, in tab order.
const (
	focusState  = "uf"
	focusCity   = "city"
	focusSubmit = "submit"
)

// HomeView is the location picker: a state dropdown, a city dropdown that
// depends on it, and a submit button that navigates to the points screen.
type HomeView struct {
	id  uint64
	svc LocationService

	ctx    context.Context
	cancel context.CancelFunc

	States    []location.Item
	Cities    []location.Item
	Selection location.Selection

	stateGen location.Generation
	cityGen  location.Generation

	LoadingStates bool
	LoadingCities bool
	StatesErr     error
	CitiesErr     error

	stateField *Dropdown
	cityField  *Dropdown
	focus      FocusManager
	spinner    spinner.Model
	width      int
}

// Ensure HomeView implements View.
var _ View = (*HomeView)(nil)

// NewHomeView creates a home screen with the given instance id.
// Nothing is fetched until Init.
func NewHomeView(id uint64, svc LocationService) *HomeView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	ctx, cancel := context.WithCancel(context.Background())
	h := &HomeView{
		id:         id,
		svc:        svc,
		ctx:        ctx,
		cancel:     cancel,
		stateField: NewDropdown(focusState, statePlaceholder),
		cityField:  NewDropdown(focusCity, cityPlaceholder),
		focus: FocusManager{
			Current: focusState,
			Order:   []string{focusState, focusCity, focusSubmit},
		},
		spinner: s,
	}
	h.syncFocus()
	return h
}

// ID returns the instance id carried by this view's lookup messages.
func (h *HomeView) ID() uint64 {
	return h.id
}

// Focused returns the ID of the focused field.
func (h *HomeView) Focused() string {
	return h.focus.Current
}

// Init implements View. It issues the one state-list fetch for this mount.
func (h *HomeView) Init() tea.Cmd {
	return tea.Batch(h.loadStates(), h.spinner.Tick)
}

// Unmount implements Unmounter: in-flight lookups are canceled and any
// result that still arrives is ignored.
func (h *HomeView) Unmount() {
	h.cancel()
	h.stateGen.Invalidate()
	h.cityGen.Invalidate()
	h.LoadingStates = false
	h.LoadingCities = false
}

func (h *HomeView) mounted() bool {
	return h.ctx.Err() == nil
}

func (h *HomeView) loadStates() tea.Cmd {
	gen := h.stateGen.Next()
	h.LoadingStates = true
	h.StatesErr = nil
	return loadStatesCmd(h.ctx, h.svc, h.id, gen)
}

func (h *HomeView) loadCities(uf string) tea.Cmd {
	gen := h.cityGen.Next()
	h.LoadingCities = true
	h.CitiesErr = nil
	return loadCitiesCmd(h.ctx, h.svc, h.id, gen, uf)
}

// Update implements View.
func (h *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case StatesLoadedMsg:
		if msg.ViewID != h.id || !h.mounted() || !h.stateGen.IsCurrent(msg.Gen) {
			return h, nil
		}
		h.LoadingStates = false
		h.StatesErr = msg.Err
		if msg.Err == nil {
			h.States = location.StateItems(msg.States)
			h.stateField.SetItems(h.States)
		}
		return h, nil

	case CitiesLoadedMsg:
		if msg.ViewID != h.id || !h.mounted() || !h.cityGen.IsCurrent(msg.Gen) || msg.UF != h.Selection.UF {
			return h, nil
		}
		h.LoadingCities = false
		h.CitiesErr = msg.Err
		if msg.Err == nil {
			h.Cities = location.CityItems(msg.Cities)
			h.cityField.SetItems(h.Cities)
		}
		return h, nil

	case StateSelectedMsg:
		return h, h.selectState(msg.Value)

	case CitySelectedMsg:
		h.Selection.City = msg.Value
		h.cityField.Value = msg.Value
		if msg.Value != "" {
			h.focusField(focusSubmit)
		}
		return h, nil

	case RetryMsg:
		return h, h.retry()

	case spinner.TickMsg:
		if !h.LoadingStates && !h.LoadingCities {
			return h, nil
		}
		var cmd tea.Cmd
		h.spinner, cmd = h.spinner.Update(msg)
		return h, cmd

	case tea.WindowSizeMsg:
		h.width = msg.Width
		return h, nil

	case tea.KeyMsg:
		return h, h.handleKey(msg)
	}
	return h, nil
}

// selectState records a new state pick. A changed state clears the city
// list and city pick, then fetches the new state's cities.
func (h *HomeView) selectState(uf string) tea.Cmd {
	if uf == h.Selection.UF {
		return nil
	}
	h.Selection.UF = uf
	h.stateField.Value = uf
	h.Selection.City = ""
	h.cityField.Value = ""
	h.Cities = nil
	h.cityField.SetItems(nil)
	h.CitiesErr = nil

	if !h.Selection.HasRegion() {
		h.cityGen.Invalidate()
		h.LoadingCities = false
		return nil
	}
	h.focusField(focusCity)
	return tea.Batch(h.loadCities(uf), h.spinner.Tick)
}

// retry re-issues whichever lookups last failed.
func (h *HomeView) retry() tea.Cmd {
	var cmds []tea.Cmd
	if h.StatesErr != nil && !h.LoadingStates {
		cmds = append(cmds, h.loadStates())
	}
	if h.CitiesErr != nil && !h.LoadingCities && h.Selection.HasRegion() {
		cmds = append(cmds, h.loadCities(h.Selection.UF))
	}
	if len(cmds) == 0 {
		return nil
	}
	cmds = append(cmds, h.spinner.Tick)
	return tea.Batch(cmds...)
}

// Submit returns the navigation to the points screen for the current pick.
// Empty picks are forwarded as-is.
func (h *HomeView) Submit() tea.Cmd {
	params := h.Selection.Params()
	return func() tea.Msg {
		return NavigateMsg{Route: RoutePoints, Params: params}
	}
}

func (h *HomeView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down", "j":
		h.focus.Next()
		h.syncFocus()
	case "shift+tab", "up", "k":
		h.focus.Prev()
		h.syncFocus()
	case "r":
		return func() tea.Msg { return RetryMsg{} }
	case "enter", " ":
		switch h.focus.Current {
		case focusState:
			modal := h.stateField.Open(func(v string) tea.Msg { return StateSelectedMsg{Value: v} })
			return h.openOverlay(modal)
		case focusCity:
			modal := h.cityField.Open(func(v string) tea.Msg { return CitySelectedMsg{Value: v} })
			return h.openOverlay(modal)
		case focusSubmit:
			return h.Submit()
		}
	}
	return nil
}

func (h *HomeView) openOverlay(modal *DropdownModal) tea.Cmd {
	id := h.id
	return func() tea.Msg { return OpenOverlayMsg{View: modal, Owner: id} }
}

// focusField moves focus to id, as after a pick advances the form.
func (h *HomeView) focusField(id string) {
	if h.focus.SetFocus(id) {
		h.syncFocus()
	}
}

func (h *HomeView) syncFocus() {
	h.stateField.Focused = h.focus.Is(focusState)
	h.cityField.Focused = h.focus.Is(focusCity)
}

// Items returns the items offered by the dropdown with the given focus ID.
func (h *HomeView) Items(field string) []location.Item {
	switch field {
	case focusState:
		return h.States
	case focusCity:
		return h.Cities
	}
	return nil
}

// HelpBindings implements HelpProvider.
func (h *HomeView) HelpBindings() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "próximo campo")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir/entrar")),
	}
	if h.StatesErr != nil || h.CitiesErr != nil {
		bindings = append(bindings, key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "tentar novamente")))
	}
	return bindings
}

// View implements View.
func (h *HomeView) View() string {
	var b strings.Builder

	b.WriteString(Styles.Logo.Render("♻ Ecoleta") + "\n")
	b.WriteString(Styles.Title.Render(homeTitle) + "\n")
	width := 44
	if h.width > 0 && h.width-4 < width {
		width = h.width - 4
	}
	b.WriteString(Styles.Description.Render(wrap(homeDescription, width)) + "\n\n")

	b.WriteString(h.stateField.View())
	if h.LoadingStates {
		b.WriteString(" " + h.spinner.View())
	}
	b.WriteString("\n")
	if h.StatesErr != nil {
		b.WriteString(Styles.Error.Render("Não foi possível carregar os estados.") + "\n")
	}

	b.WriteString(h.cityField.View())
	if h.LoadingCities {
		b.WriteString(" " + h.spinner.View())
	}
	b.WriteString("\n")
	if h.CitiesErr != nil {
		b.WriteString(Styles.Error.Render("Não foi possível carregar as cidades.") + "\n")
	}

	button := Styles.Button
	label := "→  " + submitLabel
	if h.focus.Is(focusSubmit) {
		button = Styles.ButtonFocused
	}
	b.WriteString(button.Render(label))
	return b.String()
}

// wrap breaks s on spaces so no line exceeds width columns.
func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}
