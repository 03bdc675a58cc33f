package engine

import (
	"errors"

	"github.com/dshills/glyphedit/internal/engine/history"
)

// Errors returned by editor operations. Editing commands never fail; these
// are reported by Undo, Redo and the host-facing helpers.
var (
	// ErrNothingToUndo indicates the undo position is at the start of the log.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrNothingToRedo indicates the undo position is at the end of the log.
	ErrNothingToRedo = history.ErrNothingToRedo

	// ErrReadOnly indicates an edit was attempted on a read-only editor.
	ErrReadOnly = errors.New("editor is read-only")
)
