package cursor

import (
	"fmt"

	"github.com/dshills/glyphedit/internal/engine/document"
)

// Coordinates is an alias for document.Coordinates for convenience.
type Coordinates = document.Coordinates

// State is the cursor and selection of an editor. The selection is kept
// normalized so SelectionStart never comes after SelectionEnd.
// State is a value type; undo records capture it by copy.
type State struct {
	Cursor         Coordinates
	SelectionStart Coordinates
	SelectionEnd   Coordinates
}

// At returns a state with the cursor at c and an empty selection there.
func At(c Coordinates) State {
	return State{Cursor: c, SelectionStart: c, SelectionEnd: c}
}

// HasSelection reports whether the selection is non-empty.
func (s State) HasSelection() bool {
	return s.SelectionEnd.After(s.SelectionStart)
}

// Normalized returns s with the selection bounds in order.
func (s State) Normalized() State {
	if s.SelectionStart.After(s.SelectionEnd) {
		s.SelectionStart, s.SelectionEnd = s.SelectionEnd, s.SelectionStart
	}
	return s
}

// SelectionLines returns the number of lines the selection touches, or 0
// without a selection.
func (s State) SelectionLines() int {
	if !s.HasSelection() {
		return 0
	}
	n := s.SelectionEnd.Line - s.SelectionStart.Line
	if n < 0 {
		n = -n
	}
	return n + 1
}

// String returns a string representation of the state.
func (s State) String() string {
	return fmt.Sprintf("State(cursor=%v sel=%v-%v)", s.Cursor, s.SelectionStart, s.SelectionEnd)
}
