package palette

import "nathanbeddoewebdev/huepick/internal/color"

// State is the current palette plus its undo and redo stacks. The zero
// value is not useful; use NewState.
//
// Apply pushes the outgoing palette onto the undo stack and leaves the
// redo stack alone, so entries saved by an earlier Undo stay reachable
// after a fresh Apply. Neither stack is bounded.
//
// State is not safe for concurrent use.
type State struct {
	current Palette
	undo    []Palette
	redo    []Palette
}

// NewState returns a state whose current palette is initial and whose
// history is empty.
func NewState(initial Palette) *State {
	return &State{current: initial}
}

// Current returns the current palette.
func (s *State) Current() Palette {
	return s.current
}

// Apply makes next the current palette, saving the previous one for Undo.
func (s *State) Apply(next Palette) {
	s.undo = append(s.undo, s.current)
	s.current = next
}

// Undo restores the most recently replaced palette. It reports false and
// changes nothing when there is nothing to undo.
func (s *State) Undo() bool {
	prev, ok := pop(&s.undo)
	if !ok {
		return false
	}
	s.redo = append(s.redo, s.current)
	s.current = prev
	return true
}

// Redo reverses the most recent Undo. It reports false and changes nothing
// when the redo stack is empty.
func (s *State) Redo() bool {
	next, ok := pop(&s.redo)
	if !ok {
		return false
	}
	s.undo = append(s.undo, s.current)
	s.current = next
	return true
}

// UndoDepth is the number of palettes Undo can step back through.
func (s *State) UndoDepth() int { return len(s.undo) }

// RedoDepth is the number of palettes Redo can step forward through.
func (s *State) RedoDepth() int { return len(s.redo) }

// SetRole applies a palette equal to the current one with role replaced by
// c.
func (s *State) SetRole(role Role, c color.Color) {
	s.Apply(s.current.With(role, c))
}

// InvertRole flips the colour of a single role.
func (s *State) InvertRole(role Role) {
	s.SetRole(role, s.current.Get(role).Flip())
}

// InvertAll flips every role in one step.
func (s *State) InvertAll() {
	s.Apply(s.current.Inverted())
}

func pop(stack *[]Palette) (Palette, bool) {
	n := len(*stack)
	if n == 0 {
		return Palette{}, false
	}
	top := (*stack)[n-1]
	*stack = (*stack)[:n-1]
	return top, true
}
