package ui

// ViewStack manages a stack of views for navigation (push/pop).
type ViewStack struct {
	Stack []View
}

// Push adds a view to the top of the stack.
func (s *ViewStack) Push(v View) {
	s.Stack = append(s.Stack, v)
}

// Pop removes and returns the top view, unmounting it.
// Returns nil if the stack is empty.
func (s *ViewStack) Pop() View {
	if len(s.Stack) == 0 {
		return nil
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack[len(s.Stack)-1] = nil
	s.Stack = s.Stack[:len(s.Stack)-1]
	if u, ok := top.(Unmounter); ok {
		u.Unmount()
	}
	return top
}

// Peek returns the top view without removing it.
func (s *ViewStack) Peek() View {
	if len(s.Stack) == 0 {
		return nil
	}
	return s.Stack[len(s.Stack)-1]
}

// ReplaceTop swaps the top view for v (used when a view's Update returns a new value).
func (s *ViewStack) ReplaceTop(v View) {
	if len(s.Stack) == 0 {
		s.Stack = append(s.Stack, v)
		return
	}
	s.Stack[len(s.Stack)-1] = v
}

// Reset unmounts every view and leaves the stack empty.
func (s *ViewStack) Reset() {
	for s.Len() > 0 {
		s.Pop()
	}
}

// Len returns the number of views in the stack.
func (s *ViewStack) Len() int {
	return len(s.Stack)
}
