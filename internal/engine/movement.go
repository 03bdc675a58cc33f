package engine

// Cursor and selection. These forward to the cursor controller and never
// modify the document.

// State returns the cursor and selection.
func (e *Editor) State() State {
	return e.cur.State()
}

// SetState replaces the cursor and selection.
func (e *Editor) SetState(s State) {
	s.Cursor = e.doc.Sanitize(s.Cursor)
	s.SelectionStart = e.doc.Sanitize(s.SelectionStart)
	s.SelectionEnd = e.doc.Sanitize(s.SelectionEnd)
	e.cur.SetState(s.Normalized())
}

// CursorPosition returns the sanitized cursor.
func (e *Editor) CursorPosition() Coordinates {
	return e.cur.Position()
}

// SetCursorPosition moves the cursor and collapses the selection there.
func (e *Editor) SetCursorPosition(p Coordinates) {
	e.cur.Collapse(e.doc.Sanitize(p))
}

// HasSelection reports whether any text is selected.
func (e *Editor) HasSelection() bool {
	return e.cur.HasSelection()
}

// Selection returns the ordered selection bounds.
func (e *Editor) Selection() (start, end Coordinates) {
	return e.cur.Selection()
}

// SetSelection selects [start, end). In word mode both ends snap outward to
// word bounds. The cursor moves to the end of the selection.
func (e *Editor) SetSelection(start, end Coordinates, wordMode bool) {
	e.cur.SetSelection(start, end, wordMode)
	_, to := e.cur.Selection()
	e.cur.SetPosition(to)
}

// SelectAll selects the whole document.
func (e *Editor) SelectAll() {
	e.cur.SelectAll()
	_, to := e.cur.Selection()
	e.cur.SetPosition(to)
}

// SelectWordUnderCursor selects the word at the cursor.
func (e *Editor) SelectWordUnderCursor() {
	e.cur.SelectWordUnderCursor()
}

// ClearSelection collapses the selection at the cursor.
func (e *Editor) ClearSelection() {
	e.cur.Collapse(e.cur.Position())
}

// MoveUp moves the cursor up, extending the selection when selecting.
func (e *Editor) MoveUp(amount int, selecting bool) {
	e.cur.MoveUp(amount, selecting)
}

// MoveDown moves the cursor down.
func (e *Editor) MoveDown(amount int, selecting bool) {
	e.cur.MoveDown(amount, selecting)
}

// MoveLeft moves the cursor left by characters, or by words in word mode.
func (e *Editor) MoveLeft(amount int, selecting, wordMode bool) {
	e.cur.MoveLeft(amount, selecting, wordMode)
}

// MoveRight moves the cursor right by characters, or by words in word mode.
func (e *Editor) MoveRight(amount int, selecting, wordMode bool) {
	e.cur.MoveRight(amount, selecting, wordMode)
}

// MoveTop moves the cursor to the start of the document.
func (e *Editor) MoveTop(selecting bool) {
	e.cur.MoveTop(selecting)
}

// MoveBottom moves the cursor to the end of the document.
func (e *Editor) MoveBottom(selecting bool) {
	e.cur.MoveBottom(selecting)
}

// MoveHome moves the cursor to the first non-blank column, or to column 0
// when it is already there.
func (e *Editor) MoveHome(selecting bool) {
	e.cur.MoveHome(selecting)
}

// MoveEnd moves the cursor to the end of the line.
func (e *Editor) MoveEnd(selecting bool) {
	e.cur.MoveEnd(selecting)
}

// PageUp moves the cursor up by one page.
func (e *Editor) PageUp(selecting bool) {
	e.cur.PageUp(e.pageSize, selecting)
}

// PageDown moves the cursor down by one page.
func (e *Editor) PageDown(selecting bool) {
	e.cur.PageDown(e.pageSize, selecting)
}
