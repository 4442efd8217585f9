package ui

// FocusManager tracks and rotates focus across the fields of a screen.
type FocusManager struct {
	Current string   // ID of the focused field
	Order   []string // Tab order
}

// Next advances focus to the next field in order, wrapping at the end.
func (f *FocusManager) Next() string {
	return f.move(1)
}

// Prev moves focus to the previous field in order, wrapping at the start.
func (f *FocusManager) Prev() string {
	return f.move(-1)
}

func (f *FocusManager) move(step int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.index(f.Current)
	var next int
	if idx < 0 {
		// Unknown current: forward lands on the first field, backward on the last.
		next = 0
		if step < 0 {
			next = n - 1
		}
	} else {
		next = ((idx+step)%n + n) % n
	}
	f.Current = f.Order[next]
	return f.Current
}

// SetFocus sets focus to the given field ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.index(id) < 0 {
		return false
	}
	f.Current = id
	return true
}

// Is reports whether id currently has focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current == id
}

func (f *FocusManager) index(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

