// Package ui implements the ecoleta terminal screens with Bubble Tea.
//
// Core abstractions:
//   - View: a screen or modal with its own Init/Update/View (Elm-style)
//   - ViewStack: stack-based navigation between screens (push/pop)
//   - OverlayStack: modal views drawn over the current screen (dropdown lists)
//   - FocusManager: tab order across the fields of a screen
//   - KeybindRegistry: app-wide key bindings and their help hints
//
// The home screen (HomeView) picks a state and a city from the IBGE
// localidades API and navigates to the collection points screen (PointsView).
package ui
