package ui

import (
	"ecoleta/internal/location"
	"ecoleta/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// dropdownFieldWidth is the inner width of a closed dropdown field.
const dropdownFieldWidth = 32

// Dropdown is a closed select field: it shows the selected item's label,
// or its placeholder when nothing is selected.
type Dropdown struct {
	ID          string // focus ID of the field
	Placeholder string
	Items       []location.Item
	Value       string
	Focused     bool
}

// NewDropdown creates an empty dropdown for the field with the given focus ID.
func NewDropdown(id, placeholder string) *Dropdown {
	return &Dropdown{ID: id, Placeholder: placeholder}
}

// SetItems replaces the items wholesale. A value no longer offered is kept;
// the caller decides whether it stays meaningful.
func (d *Dropdown) SetItems(items []location.Item) {
	d.Items = items
}

// Label returns the label of the selected item, or "" when unselected.
func (d *Dropdown) Label() string {
	if d.Value == "" {
		return ""
	}
	for _, it := range d.Items {
		if it.Value == d.Value {
			return it.Label
		}
	}
	return d.Value
}

// View renders the closed field.
func (d *Dropdown) View() string {
	style := Styles.Field
	if d.Focused {
		style = Styles.FieldFocused
	}
	text := Styles.Placeholder.Render(textutil.PadRightVisual(d.Placeholder, dropdownFieldWidth))
	if label := d.Label(); label != "" {
		text = Styles.Value.Render(textutil.PadRightVisual(label, dropdownFieldWidth))
	}
	return style.Render(text + " ▾")
}

// Open builds the list modal for this dropdown. onSelect turns the chosen
// value into the message sent back to the screen.
func (d *Dropdown) Open(onSelect func(value string) tea.Msg) *DropdownModal {
	m := NewDropdownModal(d.Placeholder, d.Items, d.Value, onSelect)
	m.Field = d.ID
	return m
}

// dropdownItem implements list.Item for location.Item.
type dropdownItem struct {
	location.Item
}

func (i dropdownItem) FilterValue() string { return location.FoldKey(i.Label) }
func (i dropdownItem) Title() string       { return i.Label }
func (i dropdownItem) Description() string { return "" }

// foldedFilter matches accent- and case-insensitively; targets are already folded.
func foldedFilter(term string, targets []string) []list.Rank {
	return list.DefaultFilter(location.FoldKey(term), targets)
}

// DropdownModal is the open list of a dropdown. Enter selects; Esc cancels.
type DropdownModal struct {
	Field string // focus ID of the field that opened it

	list     list.Model
	current  string
	onSelect func(value string) tea.Msg
}

// Ensure DropdownModal implements View.
var _ View = (*DropdownModal)(nil)

// NewDropdownModal creates a filterable list of items with the cursor on current.
func NewDropdownModal(title string, items []location.Item, current string, onSelect func(value string) tea.Msg) *DropdownModal {
	listItems, cursor := toListItems(items, current)
	l := list.New(listItems, NewCompactListDelegate(), 40, 14)
	l.Title = title
	l.Filter = foldedFilter
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Section
	l.Select(cursor)
	return &DropdownModal{list: l, current: current, onSelect: onSelect}
}

// toListItems converts items and returns the index of want, or 0.
func toListItems(items []location.Item, want string) ([]list.Item, int) {
	out := make([]list.Item, len(items))
	cursor := 0
	for i, it := range items {
		out[i] = dropdownItem{Item: it}
		if it.Value == want {
			cursor = i
		}
	}
	return out, cursor
}

// SetItems replaces the offered items, for a list that finished loading
// while the modal was open. The cursor stays on the highlighted value when
// it is still offered, else on the field's current value.
func (m *DropdownModal) SetItems(items []location.Item) tea.Cmd {
	want := m.SelectedValue()
	if want == "" {
		want = m.current
	}
	listItems, cursor := toListItems(items, want)
	cmd := m.list.SetItems(listItems)
	if m.list.FilterState() == list.Unfiltered {
		m.list.Select(cursor)
	}
	return cmd
}

// Init implements View.
func (m *DropdownModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *DropdownModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While the filter input is active, let the list own esc/enter.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "esc":
			if m.list.FilterState() == list.FilterApplied {
				m.list.ResetFilter()
				return m, nil
			}
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			if sel, ok := m.list.SelectedItem().(dropdownItem); ok {
				value := sel.Value
				return m, func() tea.Msg { return m.onSelect(value) }
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *DropdownModal) View() string {
	help := "Enter: selecionar  /: filtrar  Esc: cancelar"
	return Styles.BoxCompact.Render(m.list.View() + "\n" + Styles.Hint.Render(help))
}

// SelectedValue returns the value under the cursor, or "" for an empty list.
func (m *DropdownModal) SelectedValue() string {
	if sel, ok := m.list.SelectedItem().(dropdownItem); ok {
		return sel.Value
	}
	return ""
}
