package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppModel is the root model. The home screen sits at the bottom of Screens;
// navigation pushes destination screens on top of it and overlays (dropdown
// lists) are drawn over whichever screen is current.
type AppModel struct {
	Screens    ViewStack
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Service    LocationService

	nextViewID uint64
	width      int
	height     int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model with a fresh home screen.
func NewAppModel(svc LocationService) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "sair")
	reg.BindWithDesc("ctrl+c", tea.Quit, "sair")
	reg.BindWithDesc("ctrl+r", func() tea.Msg { return ResetMsg{} }, "recomeçar")
	a := &AppModel{
		KeyHandler: NewKeyHandler(reg),
		Service:    svc,
	}
	a.Screens.Push(a.newHomeView())
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

func (a *AppModel) newHomeView() *HomeView {
	a.nextViewID++
	return NewHomeView(a.nextViewID, a.Service)
}

// Home returns the mounted home screen, or nil.
func (a *AppModel) Home() *HomeView {
	if a.Screens.Len() == 0 {
		return nil
	}
	h, _ := a.Screens.Stack[0].(*HomeView)
	return h
}

// Current returns the screen on top of the stack.
func (a *AppModel) Current() View {
	return a.Screens.Peek()
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	if v := a.Current(); v != nil {
		return v.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		var cmds []tea.Cmd
		for i, v := range a.Screens.Stack {
			nv, cmd := v.Update(msg)
			a.Screens.Stack[i] = nv
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case StatesLoadedMsg:
		cmd := a.routeToHome(msg.ViewID, msg)
		return a, tea.Batch(cmd, a.refreshOverlays(msg.ViewID))
	case CitiesLoadedMsg:
		cmd := a.routeToHome(msg.ViewID, msg)
		return a, tea.Batch(cmd, a.refreshOverlays(msg.ViewID))
	case spinner.TickMsg:
		if h := a.Home(); h != nil {
			return a, a.routeToHome(h.ID(), msg)
		}
		return a, nil

	case OpenOverlayMsg:
		if msg.View == nil {
			return a, nil
		}
		a.Overlays.Push(Overlay{View: msg.View, Owner: msg.Owner})
		return a, msg.View.Init()
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case StateSelectedMsg, CitySelectedMsg:
		top, ok := a.Overlays.Pop()
		if !ok {
			if h := a.Home(); h != nil {
				return a, a.routeToHome(h.ID(), msg)
			}
			return a, nil
		}
		return a, a.routeToHome(top.Owner, msg)

	case RetryMsg:
		if h := a.Home(); h != nil {
			return a, a.routeToHome(h.ID(), msg)
		}
		return a, nil

	case NavigateMsg:
		return a, a.navigate(msg)
	case BackMsg:
		if a.Screens.Len() > 1 {
			a.Screens.Pop()
		}
		return a, nil
	case ResetMsg:
		if h := a.Home(); h != nil {
			a.Overlays.DropOwner(h.ID())
		}
		a.Screens.Reset()
		home := a.newHomeView()
		a.Screens.Push(home)
		return a, tea.Batch(home.Init(), a.sizeCmd())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "ctrl+r":
			// Reset works with a dropdown open too.
			if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
				return a, cmd
			}
		}
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			return a, cmd
		}
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
	}

	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}
	v := a.Current()
	if v == nil {
		return a, nil
	}
	nv, cmd := v.Update(msg)
	a.Screens.ReplaceTop(nv)
	return a, cmd
}

// routeToHome delivers msg to the home screen with the given id. Results
// addressed to a home that has since been unmounted are dropped.
func (a *AppModel) routeToHome(viewID uint64, msg tea.Msg) tea.Cmd {
	h := a.Home()
	if h == nil || h.ID() != viewID {
		log.Printf("ui: dropping %T for unmounted view %d", msg, viewID)
		return nil
	}
	nv, cmd := h.Update(msg)
	a.Screens.Stack[0] = nv
	return cmd
}

// refreshOverlays pushes the home screen's current lists into the dropdowns
// it has open, so a list that loads after its dropdown opened still shows.
func (a *AppModel) refreshOverlays(viewID uint64) tea.Cmd {
	h := a.Home()
	if h == nil || h.ID() != viewID {
		return nil
	}
	var cmds []tea.Cmd
	for _, o := range a.Overlays.Stack {
		m, ok := o.View.(*DropdownModal)
		if !ok || o.Owner != viewID {
			continue
		}
		cmds = append(cmds, m.SetItems(h.Items(m.Field)))
	}
	return tea.Batch(cmds...)
}

func (a *AppModel) navigate(msg NavigateMsg) tea.Cmd {
	switch msg.Route {
	case RoutePoints:
		p := NewPointsView(msg.Params)
		a.Screens.Push(p)
		return p.Init()
	default:
		log.Printf("ui: unknown route %q", msg.Route)
		return nil
	}
}

// sizeCmd replays the last window size so a freshly mounted screen lays out.
func (a *AppModel) sizeCmd() tea.Cmd {
	if a.width == 0 && a.height == 0 {
		return nil
	}
	w, h := a.width, a.height
	return func() tea.Msg { return tea.WindowSizeMsg{Width: w, Height: h} }
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	v := a.Current()
	if v == nil {
		return ""
	}
	body := v.View()
	if top, ok := a.Overlays.Peek(); ok {
		body = top.View.View()
		if a.width > 0 && a.height > 0 {
			body = lipgloss.Place(a.width, a.height-2, lipgloss.Center, lipgloss.Center, body)
		}
	}
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Padding(1, 2).Render(body))
	if a.Overlays.Len() == 0 {
		var reg *KeybindRegistry
		if a.KeyHandler != nil {
			reg = a.KeyHandler.Registry
		}
		b.WriteString("\n" + lipgloss.NewStyle().PaddingLeft(2).Render(RenderKeybindHelp(reg, v)))
	}
	return b.String()
}
