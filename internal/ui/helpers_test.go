package ui

import (
	"context"
	"errors"
	"sync"

	"ecoleta/internal/ibge"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// fakeService is an in-memory LocationService that counts calls.
type fakeService struct {
	mu         sync.Mutex
	states     []ibge.State
	cities     map[string][]ibge.City
	statesErr  error
	citiesErr  error
	stateCalls int
	cityCalls  []string
}

func newFakeService() *fakeService {
	return &fakeService{
		states: []ibge.State{{ID: 35, Sigla: "SP", Nome: "São Paulo"}, {ID: 33, Sigla: "RJ", Nome: "Rio de Janeiro"}},
		cities: map[string][]ibge.City{
			"SP": {{ID: 1, Nome: "Campinas"}, {ID: 2, Nome: "São Paulo"}},
			"RJ": {{ID: 3, Nome: "Niterói"}},
		},
	}
}

func (f *fakeService) ListStates(ctx context.Context) ([]ibge.State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stateCalls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.statesErr != nil {
		return nil, f.statesErr
	}
	return f.states, nil
}

func (f *fakeService) ListCities(ctx context.Context, uf string) ([]ibge.City, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cityCalls = append(f.cityCalls, uf)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.citiesErr != nil {
		return nil, f.citiesErr
	}
	return f.cities[uf], nil
}

func (f *fakeService) calls() (int, []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stateCalls, append([]string(nil), f.cityCalls...)
}

var errUnavailable = errors.New("service unavailable")

// runCmd executes cmd and returns the messages it produces, flattening batches.
// Spinner ticks are dropped so tests never wait on animation timers.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch m := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range m {
			out = append(out, runCmd(c)...)
		}
		return out
	case spinner.TickMsg:
		return nil
	default:
		return []tea.Msg{msg}
	}
}

// msgsOf returns the messages of type T in msgs.
func msgsOf[T any](msgs []tea.Msg) []T {
	var out []T
	for _, m := range msgs {
		if t, ok := m.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// feed sends each message to v and returns the messages its commands produce.
func feed(v View, msgs ...tea.Msg) []tea.Msg {
	var out []tea.Msg
	for _, m := range msgs {
		_, cmd := v.Update(m)
		out = append(out, runCmd(cmd)...)
	}
	return out
}

// settle feeds msg to the app and keeps feeding the resulting messages until
// none are left. Quit messages are returned rather than fed.
func settle(m tea.Model, msgs ...tea.Msg) []tea.Msg {
	var quits []tea.Msg
	queue := append([]tea.Msg(nil), msgs...)
	for i := 0; len(queue) > 0 && i < 100; i++ {
		msg := queue[0]
		queue = queue[1:]
		if _, ok := msg.(tea.QuitMsg); ok {
			quits = append(quits, msg)
			continue
		}
		_, cmd := m.Update(msg)
		queue = append(queue, runCmd(cmd)...)
	}
	return quits
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
