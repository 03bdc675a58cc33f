package engine

import (
	"github.com/charmbracelet/log"

	"github.com/dshills/glyphedit/internal/engine/lang"
)

// Default configuration values.
const (
	DefaultUndoLimit = 1000
	DefaultPageSize  = 20
)

// Option configures an Editor during creation.
type Option func(*Editor)

// WithContent sets the initial content of the editor.
func WithContent(content string) Option {
	return func(e *Editor) {
		e.initContent = content
	}
}

// WithTabSize sets the tab width in columns.
func WithTabSize(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.tabSize = n
		}
	}
}

// WithIndentWithTab makes indentation insert tabs instead of spaces.
func WithIndentWithTab(v bool) Option {
	return func(e *Editor) {
		e.indentWithTab = v
	}
}

// WithReadOnly creates a read-only editor.
// Editing commands become no-ops.
func WithReadOnly() Option {
	return func(e *Editor) {
		e.readOnly = true
	}
}

// WithOverwrite starts the editor in overwrite mode.
func WithOverwrite() Option {
	return func(e *Editor) {
		e.overwrite = true
	}
}

// WithLanguage sets the language used for colorizing, comments and
// auto-close pairs.
func WithLanguage(def *lang.Definition) Option {
	return func(e *Editor) {
		e.language = def
	}
}

// WithMergeUndo enables or disables coalescing of similar consecutive edits
// into one undo step. It is enabled by default.
func WithMergeUndo(v bool) Option {
	return func(e *Editor) {
		e.mergeUndo = v
	}
}

// WithUndoLimit sets the maximum number of undo records. Zero keeps all.
func WithUndoLimit(n int) Option {
	return func(e *Editor) {
		if n >= 0 {
			e.undoLimit = n
		}
	}
}

// WithPageSize sets the number of visible lines used by page movement.
func WithPageSize(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.pageSize = n
		}
	}
}

// WithColorizeBatch sets the number of lines colorized per tick.
func WithColorizeBatch(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.batch = n
		}
	}
}

// WithCommentDelay sets how many ticks the block comment rescan waits after
// the last edit.
func WithCommentDelay(ticks int) Option {
	return func(e *Editor) {
		if ticks >= 0 {
			e.commentDelay = ticks
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(e *Editor) {
		e.logger = logger
	}
}

// WithClipboard sets the clipboard used by Copy, Cut and Paste.
func WithClipboard(c Clipboard) Option {
	return func(e *Editor) {
		e.clipboard = c
	}
}
