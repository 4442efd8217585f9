package ui

import (
	"context"
	"log"

	"ecoleta/internal/ibge"

	tea "github.com/charmbracelet/bubbletea"
)

// LocationService is the geography lookup the home screen depends on.
// *ibge.Client satisfies it.
type LocationService interface {
	ListStates(ctx context.Context) ([]ibge.State, error)
	ListCities(ctx context.Context, uf string) ([]ibge.City, error)
}

// loadStatesCmd returns a command that fetches the state list off the UI goroutine.
func loadStatesCmd(ctx context.Context, svc LocationService, viewID, gen uint64) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return StatesLoadedMsg{ViewID: viewID, Gen: gen}
		}
		states, err := svc.ListStates(ctx)
		if err != nil && ctx.Err() == nil {
			log.Printf("ibge: list states: %v", err)
		}
		return StatesLoadedMsg{ViewID: viewID, Gen: gen, States: states, Err: err}
	}
}

// loadCitiesCmd returns a command that fetches the cities of uf off the UI goroutine.
func loadCitiesCmd(ctx context.Context, svc LocationService, viewID, gen uint64, uf string) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return CitiesLoadedMsg{ViewID: viewID, Gen: gen, UF: uf}
		}
		cities, err := svc.ListCities(ctx, uf)
		if err != nil && ctx.Err() == nil {
			log.Printf("ibge: list cities for %s: %v", uf, err)
		}
		return CitiesLoadedMsg{ViewID: viewID, Gen: gen, UF: uf, Cities: cities, Err: err}
	}
}
