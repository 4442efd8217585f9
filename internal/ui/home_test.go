package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ecoleta/internal/location"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mountedHome returns a home view whose state list has loaded.
func mountedHome(t *testing.T, svc *fakeService) *HomeView {
	t.Helper()
	h := NewHomeView(1, svc)
	feed(h, runCmd(h.Init())...)
	require.NoError(t, h.StatesErr)
	return h
}

func TestHomeView_InitFetchesStatesOnce(t *testing.T) {
	svc := newFakeService()
	h := NewHomeView(1, svc)

	msgs := runCmd(h.Init())
	loaded := msgsOf[StatesLoadedMsg](msgs)
	require.Len(t, loaded, 1)

	stateCalls, cityCalls := svc.calls()
	assert.Equal(t, 1, stateCalls, "mount should issue exactly one state request")
	assert.Empty(t, cityCalls, "empty UF must not trigger a city request")
	assert.True(t, h.LoadingStates)

	feed(h, msgs...)
	assert.False(t, h.LoadingStates)
	assert.Equal(t, []location.Item{{Label: "SP", Value: "SP"}, {Label: "RJ", Value: "RJ"}}, h.States)
}

func TestHomeView_StateChangeFetchesCitiesOnce(t *testing.T) {
	svc := newFakeService()
	h := mountedHome(t, svc)

	msgs := feed(h, StateSelectedMsg{Value: "SP"})
	assert.Equal(t, "SP", h.Selection.UF)

	loaded := msgsOf[CitiesLoadedMsg](msgs)
	require.Len(t, loaded, 1)
	assert.Equal(t, "SP", loaded[0].UF)

	_, cityCalls := svc.calls()
	assert.Equal(t, []string{"SP"}, cityCalls)

	feed(h, msgs...)
	assert.Equal(t, []location.Item{
		{Label: "Campinas", Value: "Campinas"},
		{Label: "São Paulo", Value: "São Paulo"},
	}, h.Cities)
	assert.False(t, h.LoadingCities)
}

func TestHomeView_ReselectingSameStateDoesNotRefetch(t *testing.T) {
	svc := newFakeService()
	h := mountedHome(t, svc)

	feed(h, feed(h, StateSelectedMsg{Value: "SP"})...)
	feed(h, StateSelectedMsg{Value: "SP"})

	_, cityCalls := svc.calls()
	assert.Equal(t, []string{"SP"}, cityCalls)
}

func TestHomeView_UnselectedSentinelsDoNotFetch(t *testing.T) {
	svc := newFakeService()
	h := mountedHome(t, svc)

	feed(h, StateSelectedMsg{Value: "0"})
	feed(h, StateSelectedMsg{Value: ""})

	_, cityCalls := svc.calls()
	assert.Empty(t, cityCalls)
	assert.False(t, h.LoadingCities)
}

func TestHomeView_StateChangeClearsCities(t *testing.T) {
	svc := newFakeService()
	h := mountedHome(t, svc)

	feed(h, feed(h, StateSelectedMsg{Value: "SP"})...)
	feed(h, CitySelectedMsg{Value: "Campinas"})
	require.Equal(t, location.RegionAndCitySelected, h.Selection.Stage())

	pending := feed(h, StateSelectedMsg{Value: "RJ"})
	assert.Empty(t, h.Cities, "old state's cities must not be offered while the new list loads")
	assert.Equal(t, "", h.Selection.City)
	assert.Equal(t, location.RegionSelected, h.Selection.Stage())

	feed(h, pending...)
	assert.Equal(t, []location.Item{{Label: "Niterói", Value: "Niterói"}}, h.Cities)
}

func TestHomeView_StaleCityResponseIgnored(t *testing.T) {
	svc := newFakeService()
	h := mountedHome(t, svc)

	_, spCmd := h.Update(StateSelectedMsg{Value: "SP"})
	_, rjCmd := h.Update(StateSelectedMsg{Value: "RJ"})

	// RJ resolves first, then the superseded SP response arrives.
	feed(h, runCmd(rjCmd)...)
	feed(h, runCmd(spCmd)...)

	assert.Equal(t, "RJ", h.Selection.UF)
	assert.Equal(t, []location.Item{{Label: "Niterói", Value: "Niterói"}}, h.Cities)
}

func TestHomeView_ResultsAfterUnmountIgnored(t *testing.T) {
	svc := newFakeService()
	h := NewHomeView(1, svc)
	initCmd := h.Init()

	h.Unmount()
	msgs := runCmd(initCmd)
	loaded := msgsOf[StatesLoadedMsg](msgs)
	require.Len(t, loaded, 1)
	assert.True(t, errors.Is(loaded[0].Err, context.Canceled), "unmount should cancel in-flight lookups")

	feed(h, msgs...)
	assert.Empty(t, h.States)
	assert.NoError(t, h.StatesErr)

	// Even a successful late result is dropped.
	feed(h, StatesLoadedMsg{ViewID: 1, Gen: loaded[0].Gen, States: svc.states})
	assert.Empty(t, h.States)
}

func TestHomeView_ResultsForOtherViewIgnored(t *testing.T) {
	svc := newFakeService()
	h := NewHomeView(7, svc)
	msgs := runCmd(h.Init())
	loaded := msgsOf[StatesLoadedMsg](msgs)
	require.Len(t, loaded, 1)

	other := loaded[0]
	other.ViewID = 8
	feed(h, other)
	assert.Empty(t, h.States)
	assert.True(t, h.LoadingStates)
}

func TestHomeView_SubmitNavigatesWithSelection(t *testing.T) {
	svc := newFakeService()
	h := mountedHome(t, svc)
	feed(h, feed(h, StateSelectedMsg{Value: "SP"})...)
	feed(h, CitySelectedMsg{Value: "Campinas"})

	// Picking the city moved focus to the button.
	require.Equal(t, focusSubmit, h.Focused())
	msgs := feed(h, keyMsg("enter"))

	navs := msgsOf[NavigateMsg](msgs)
	require.Len(t, navs, 1)
	assert.Equal(t, RoutePoints, navs[0].Route)
	assert.Equal(t, map[string]string{"city": "Campinas", "uf": "SP"}, navs[0].Params)
}

func TestHomeView_SubmitWithoutSelectionStillNavigates(t *testing.T) {
	h := NewHomeView(1, newFakeService())

	navs := msgsOf[NavigateMsg](runCmd(h.Submit()))
	require.Len(t, navs, 1)
	assert.Equal(t, map[string]string{"city": "", "uf": ""}, navs[0].Params)
}

func TestHomeView_FetchErrorSurfacesAndRetries(t *testing.T) {
	svc := newFakeService()
	svc.statesErr = errUnavailable
	h := NewHomeView(1, svc)

	feed(h, runCmd(h.Init())...)
	assert.ErrorIs(t, h.StatesErr, errUnavailable)
	assert.Empty(t, h.States)
	assert.Contains(t, h.View(), "Não foi possível carregar os estados.")

	svc.mu.Lock()
	svc.statesErr = nil
	svc.mu.Unlock()

	retries := msgsOf[RetryMsg](feed(h, keyMsg("r")))
	require.Len(t, retries, 1, "r should ask for a retry")
	feed(h, feed(h, retries[0])...)
	stateCalls, _ := svc.calls()
	assert.Equal(t, 2, stateCalls)
	assert.NoError(t, h.StatesErr)
	assert.Len(t, h.States, 2)
}

func TestHomeView_CityErrorRetriesForCurrentState(t *testing.T) {
	svc := newFakeService()
	svc.citiesErr = errUnavailable
	h := mountedHome(t, svc)

	feed(h, feed(h, StateSelectedMsg{Value: "RJ"})...)
	require.Error(t, h.CitiesErr)
	assert.Contains(t, h.View(), "Não foi possível carregar as cidades.")

	svc.mu.Lock()
	svc.citiesErr = nil
	svc.mu.Unlock()

	feed(h, feed(h, RetryMsg{})...)
	_, cityCalls := svc.calls()
	assert.Equal(t, []string{"RJ", "RJ"}, cityCalls)
	assert.Len(t, h.Cities, 1)
}

func TestHomeView_RetryWithoutErrorsIsNoop(t *testing.T) {
	h := mountedHome(t, newFakeService())
	_, cmd := h.Update(RetryMsg{})
	assert.Nil(t, cmd)
}

func TestHomeView_FocusCycle(t *testing.T) {
	h := NewHomeView(1, newFakeService())
	assert.Equal(t, focusState, h.Focused())

	feed(h, keyMsg("tab"))
	assert.Equal(t, focusCity, h.Focused())
	feed(h, keyMsg("tab"))
	assert.Equal(t, focusSubmit, h.Focused())
	feed(h, keyMsg("tab"))
	assert.Equal(t, focusState, h.Focused(), "focus should wrap")

	feed(h, keyMsg("shift+tab"))
	assert.Equal(t, focusSubmit, h.Focused())
}

func TestHomeView_PicksAdvanceFocus(t *testing.T) {
	h := mountedHome(t, newFakeService())

	feed(h, StateSelectedMsg{Value: "0"})
	assert.Equal(t, focusState, h.Focused(), "an unselected state keeps focus")

	feed(h, StateSelectedMsg{Value: "SP"})
	assert.Equal(t, focusCity, h.Focused())

	feed(h, CitySelectedMsg{Value: "Campinas"})
	assert.Equal(t, focusSubmit, h.Focused())
}

func TestHomeView_EnterOpensDropdown(t *testing.T) {
	h := mountedHome(t, newFakeService())

	msgs := feed(h, keyMsg("enter"))
	opens := msgsOf[OpenOverlayMsg](msgs)
	require.Len(t, opens, 1)
	assert.Equal(t, uint64(1), opens[0].Owner)

	modal, ok := opens[0].View.(*DropdownModal)
	require.True(t, ok, "expected *DropdownModal, got %T", opens[0].View)
	assert.Equal(t, "SP", modal.SelectedValue())

	// Choosing an item reports the state selection back.
	_, cmd := modal.Update(keyMsg("down"))
	runCmd(cmd)
	_, cmd = modal.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, StateSelectedMsg{Value: "RJ"}, cmd())
}

func TestHomeView_ViewRendersPlaceholdersAndSelection(t *testing.T) {
	h := mountedHome(t, newFakeService())

	out := h.View()
	for _, want := range []string{homeTitle, statePlaceholder, cityPlaceholder, submitLabel} {
		assert.Contains(t, out, want)
	}

	feed(h, feed(h, StateSelectedMsg{Value: "SP"})...)
	feed(h, CitySelectedMsg{Value: "Campinas"})
	out = h.View()
	assert.Contains(t, out, "SP")
	assert.Contains(t, out, "Campinas")
	assert.False(t, strings.Contains(out, statePlaceholder), "placeholder should be replaced by the selection")
}

func TestHomeView_WindowSizeNarrowsDescription(t *testing.T) {
	h := NewHomeView(1, newFakeService())
	_, cmd := h.Update(tea.WindowSizeMsg{Width: 30, Height: 20})
	assert.Nil(t, cmd)
	assert.Contains(t, h.View(), "Ajudamos")
}
