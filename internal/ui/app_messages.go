package ui

import "ecoleta/internal/ibge"

// RoutePoints is the destination screen for a completed selection.
const RoutePoints = "Points"

// StatesLoadedMsg is sent when the state list fetch completes.
// ViewID and Gen identify the home instance and request that issued it;
// results for an unmounted view or a superseded request are dropped.
type StatesLoadedMsg struct {
	ViewID uint64
	Gen    uint64
	States []ibge.State
	Err    error
}

// CitiesLoadedMsg is sent when a city list fetch for UF completes.
type CitiesLoadedMsg struct {
	ViewID uint64
	Gen    uint64
	UF     string
	Cities []ibge.City
	Err    error
}

// StateSelectedMsg is sent when the user picks a state in the dropdown.
type StateSelectedMsg struct {
	Value string
}

// CitySelectedMsg is sent when the user picks a city in the dropdown.
type CitySelectedMsg struct {
	Value string
}

// OpenOverlayMsg asks the app to show View as a modal over the current
// screen. Owner is the id of the screen that opened it.
type OpenOverlayMsg struct {
	View  View
	Owner uint64
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// NavigateMsg transitions to a named screen with parameters.
type NavigateMsg struct {
	Route  string
	Params map[string]string
}

// BackMsg pops the current screen.
type BackMsg struct{}

// ResetMsg unmounts every screen and mounts a fresh home screen.
type ResetMsg struct{}

// RetryMsg re-issues any lookup on the home screen that failed.
type RetryMsg struct{}
