package engine

import (
	"github.com/dshills/glyphedit/internal/engine/cursor"
	"github.com/dshills/glyphedit/internal/engine/document"
)

// Host callbacks. All are invoked synchronously from the editor method that
// triggered them.
type (
	// KeyPressedFunc sees every key before the default binding runs.
	// Returning true suppresses the default.
	KeyPressedFunc func(key Key, mods Mod) bool

	// ColorizedFunc is called after a unit of colorizing work; multiline is
	// true for a block comment rescan.
	ColorizedFunc func(multiline bool)

	// ModifiedFunc is called after every edit, undo and redo.
	ModifiedFunc func()

	// TextChangedFunc is called with the changed range. Direction is 0 for
	// a command, -1 for undo and 1 for redo.
	TextChangedFunc func(start, end Coordinates, direction int)

	// ClickFunc is called with the clicked line.
	ClickFunc func(line int, double bool)
)

type handlers struct {
	keyPressed  KeyPressedFunc
	colorized   ColorizedFunc
	modified    ModifiedFunc
	textChanged TextChangedFunc
	headClicked ClickFunc
	lineClicked ClickFunc
}

// OnKeyPressed sets the key handler consulted by HandleKey.
func (e *Editor) OnKeyPressed(fn KeyPressedFunc) {
	e.handlers.keyPressed = fn
}

// OnColorized sets the colorizer progress handler.
func (e *Editor) OnColorized(fn ColorizedFunc) {
	e.handlers.colorized = fn
}

// OnModified sets the modification handler.
func (e *Editor) OnModified(fn ModifiedFunc) {
	e.handlers.modified = fn
}

// OnTextChanged sets the changed-range handler.
func (e *Editor) OnTextChanged(fn TextChangedFunc) {
	e.handlers.textChanged = fn
}

// OnHeadClicked sets the gutter click handler.
func (e *Editor) OnHeadClicked(fn ClickFunc) {
	e.handlers.headClicked = fn
}

// OnLineClicked sets the text area click handler.
func (e *Editor) OnLineClicked(fn ClickFunc) {
	e.handlers.lineClicked = fn
}

func (e *Editor) colorized(multiline bool) {
	if e.handlers.colorized != nil {
		e.handlers.colorized(multiline)
	}
}

// modified notifies the host. Any edit other than an auto-indented newline
// ends the chance to take that indent back.
func (e *Editor) modified(keepAutoIndent bool) {
	if !keepAutoIndent {
		e.lastAutoIndent = nil
	}
	if e.handlers.modified != nil {
		e.handlers.modified()
	}
}

// textChanged updates the change state of lines start..end and notifies the
// host. An undo or redo that lands on the saved position reverts the lines.
func (e *Editor) textChanged(start, end Coordinates, direction int) {
	s, t := document.Min(start, end), document.Max(start, end)
	reverted := direction != 0 && e.log.Index() == e.log.SavedIndex()
	for i := max(s.Line, 0); i <= t.Line && i < e.doc.LineCount(); i++ {
		l := e.doc.Line(i)
		if reverted {
			l.State = l.State.Revert()
		} else {
			l.State = l.State.Change()
		}
	}
	if e.handlers.textChanged != nil {
		e.handlers.textChanged(s, t, direction)
	}
}

// ============================================================================
// Mouse
// ============================================================================

// ClickHead reports a click in the gutter of line to the host.
func (e *Editor) ClickHead(line int, double bool) {
	if e.handlers.headClicked != nil {
		e.handlers.headClicked(line, double)
	}
}

// ClickText places the cursor at pos as a mouse click does. A double click,
// or a single click with wordMode, selects the word under pos.
func (e *Editor) ClickText(pos Coordinates, double, wordMode bool) {
	pos = e.doc.Sanitize(pos)
	e.dragAnchor = pos
	e.cur.SetState(cursor.At(pos))
	e.cur.SetSelection(pos, pos, double || wordMode)
	if double {
		_, end := e.cur.Selection()
		e.cur.SetPosition(end)
	}
	if e.handlers.lineClicked != nil {
		e.handlers.lineClicked(e.cur.Position().Line, double)
	}
}

// DragTo extends the selection from the last click to pos.
func (e *Editor) DragTo(pos Coordinates, wordMode bool) {
	pos = e.doc.Sanitize(pos)
	e.cur.SetPosition(pos)
	e.cur.SetSelection(e.dragAnchor, pos, wordMode)
}
