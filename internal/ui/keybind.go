package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps app-wide keys to commands.
// Keys use tea.KeyMsg.String() notation: "q", "ctrl+c", "esc".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	order        []string // registration order, for stable help output
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key to a command, overwriting any existing binding.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDesc(k, cmd, "")
}

// BindWithDesc registers a key with a description for the help footer.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	n := normalizeKey(k)
	if _, exists := r.bindings[n]; !exists {
		r.order = append(r.order, n)
	}
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
}

// Lookup returns the command for a key, or nil if not bound.
func (r *KeybindRegistry) Lookup(k string) tea.Cmd {
	return r.bindings[normalizeKey(k)]
}

// Bindings returns help bindings for every described key in registration order.
// Keys sharing a description are grouped into one binding ("q/ctrl+c quit").
func (r *KeybindRegistry) Bindings() []key.Binding {
	var out []key.Binding
	groups := make(map[string][]string)
	var descOrder []string
	for _, k := range r.order {
		d, ok := r.descriptions[k]
		if !ok || r.bindings[k] == nil {
			continue
		}
		if _, seen := groups[d]; !seen {
			descOrder = append(descOrder, d)
		}
		groups[d] = append(groups[d], k)
	}
	for _, d := range descOrder {
		keys := groups[d]
		out = append(out, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), d),
		))
	}
	return out
}

// normalizeKey maps "space" to tea's " " key string. Other keys are trimmed.
func normalizeKey(k string) string {
	if k == " " || k == "space" {
		return " "
	}
	return strings.TrimSpace(k)
}

// KeyHandler dispatches app-wide keys to the registry.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler for reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true, the key was handled and should not be passed to views.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	if h == nil || h.Registry == nil {
		return false, nil
	}
	if c := h.Registry.Lookup(msg.String()); c != nil {
		return true, c
	}
	return false, nil
}
