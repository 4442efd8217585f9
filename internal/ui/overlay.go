package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal drawn over the current screen. Owner is the instance id
// of the screen that opened it; a selection made in an overlay whose owner
// is gone is discarded.
type Overlay struct {
	View  View
	Owner uint64
}

// OverlayStack holds open overlays. The top one receives input first.
type OverlayStack struct {
	Stack []Overlay
}

func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.Stack = s.Stack[:len(s.Stack)-1]
	}
	return top, ok
}

func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// DropOwner removes every overlay opened by the screen with the given id.
func (s *OverlayStack) DropOwner(owner uint64) int {
	kept := s.Stack[:0]
	for _, o := range s.Stack {
		if o.Owner != owner {
			kept = append(kept, o)
		}
	}
	dropped := len(s.Stack) - len(kept)
	s.Stack = kept
	return dropped
}

// UpdateTop forwards msg to the top overlay and stores the view it returns.
// The bool reports whether there was an overlay to update.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	nv, cmd := top.View.Update(msg)
	top.View = nv
	return cmd, true
}
