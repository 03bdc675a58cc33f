package cursor

import "github.com/dshills/glyphedit/internal/engine/document"

// Controller owns the cursor state of one document and implements the
// movement commands. It remembers the interactive selection anchors so a
// run of shift-moves extends the selection from the side it started on.
//
// The cursor column is kept as requested, even past the end of a shorter
// line, so vertical movement returns to the same column. Position returns
// the sanitized cursor.
type Controller struct {
	doc   *document.Document
	state State

	interactiveStart Coordinates
	interactiveEnd   Coordinates
}

// NewController returns a controller at the start of d.
func NewController(d *document.Document) *Controller {
	return &Controller{doc: d}
}

// Document returns the document the controller moves over.
func (c *Controller) Document() *document.Document {
	return c.doc
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// SetState replaces the state verbatim and resets the interactive anchors to
// the selection.
func (c *Controller) SetState(s State) {
	c.state = s
	c.interactiveStart = s.SelectionStart
	c.interactiveEnd = s.SelectionEnd
}

// Position returns the sanitized cursor position.
func (c *Controller) Position() Coordinates {
	return c.doc.Sanitize(c.state.Cursor)
}

// SetPosition moves the cursor without touching the selection.
func (c *Controller) SetPosition(p Coordinates) {
	c.state.Cursor = p
}

// HasSelection reports whether the selection is non-empty.
func (c *Controller) HasSelection() bool {
	return c.state.HasSelection()
}

// Selection returns the normalized selection bounds.
func (c *Controller) Selection() (start, end Coordinates) {
	return c.state.SelectionStart, c.state.SelectionEnd
}

// SetSelection sets the selection, sanitized and normalized. In word mode
// both ends snap outward to word bounds.
func (c *Controller) SetSelection(start, end Coordinates, wordMode bool) {
	c.state.SelectionStart, c.state.SelectionEnd = Select(c.doc, start, end, wordMode)
}

// SetSelectionStart moves the start of the selection, swapping ends if needed.
func (c *Controller) SetSelectionStart(p Coordinates) {
	c.state.SelectionStart = c.doc.Sanitize(p)
	c.state = c.state.Normalized()
}

// SetSelectionEnd moves the end of the selection, swapping ends if needed.
func (c *Controller) SetSelectionEnd(p Coordinates) {
	c.state.SelectionEnd = c.doc.Sanitize(p)
	c.state = c.state.Normalized()
}

// ClearSelection collapses the selection onto its start.
func (c *Controller) ClearSelection() {
	c.state.SelectionEnd = c.state.SelectionStart
}

// SelectAll selects the whole document.
func (c *Controller) SelectAll() {
	c.SetSelection(Coordinates{}, Coordinates{Line: c.doc.LineCount()}, false)
}

// SelectWordUnderCursor selects the word at the cursor.
func (c *Controller) SelectWordUnderCursor() {
	p := c.Position()
	c.SetSelection(FindWordStart(c.doc, p), FindWordEnd(c.doc, p), false)
}

// Collapse places the cursor at p with an empty selection there.
func (c *Controller) Collapse(p Coordinates) {
	c.SetState(At(p))
}

// extend updates the interactive anchors after the cursor moved away from
// old. forward says which anchor a fresh selection keeps at old.
func (c *Controller) extend(old Coordinates, selecting, forward bool, wordMode bool) {
	cur := c.state.Cursor
	switch {
	case !selecting:
		c.interactiveStart, c.interactiveEnd = cur, cur
	case forward && old == c.interactiveEnd:
		c.interactiveEnd = c.doc.Sanitize(cur)
	case forward && old == c.interactiveStart:
		c.interactiveStart = cur
	case forward:
		c.interactiveStart, c.interactiveEnd = old, cur
	case old == c.interactiveStart:
		c.interactiveStart = cur
	case old == c.interactiveEnd:
		c.interactiveEnd = cur
	default:
		c.interactiveStart, c.interactiveEnd = cur, old
	}
	c.SetSelection(c.interactiveStart, c.interactiveEnd, wordMode)
}

// MoveUp moves the cursor up by amount lines, keeping its column.
func (c *Controller) MoveUp(amount int, selecting bool) {
	old := c.state.Cursor
	c.state.Cursor.Line = max(0, c.state.Cursor.Line-amount)
	if c.state.Cursor != old {
		c.extend(old, selecting, false, false)
	}
}

// MoveDown moves the cursor down by amount lines, keeping its column.
func (c *Controller) MoveDown(amount int, selecting bool) {
	old := c.state.Cursor
	c.state.Cursor.Line = max(0, min(c.doc.LineCount()-1, c.state.Cursor.Line+amount))
	if c.state.Cursor != old {
		c.extend(old, selecting, true, false)
	}
}

// MoveLeft moves the cursor left by amount glyphs, wrapping to the end of
// the previous line. In word mode each step lands on a word start.
func (c *Controller) MoveLeft(amount int, selecting, wordMode bool) {
	old := c.state.Cursor
	c.state.Cursor = c.Position()
	for ; amount > 0; amount-- {
		p := c.state.Cursor
		if p.Column == 0 {
			if p.Line > 0 {
				p.Line--
				p.Column = c.doc.ColumnCount(p.Line)
			}
		} else {
			p.Column--
			if wordMode {
				p = FindWordStart(c.doc, p)
			}
		}
		c.state.Cursor = p
	}
	c.extend(old, selecting, false, selecting && wordMode)
}

// MoveRight moves the cursor right by amount glyphs, wrapping to the start
// of the next line. In word mode each step lands on a word end.
func (c *Controller) MoveRight(amount int, selecting, wordMode bool) {
	old := c.state.Cursor
	for ; amount > 0; amount-- {
		p := c.state.Cursor
		n := c.doc.ColumnCount(p.Line)
		if p.Column >= n {
			if p.Line < c.doc.LineCount()-1 {
				p.Line++
				p.Column = 0
			}
		} else {
			p.Column++
			if wordMode {
				p = FindWordEnd(c.doc, p)
			}
		}
		c.state.Cursor = p
	}
	c.extend(old, selecting, true, selecting && wordMode)
}

// MoveTop moves the cursor to the start of the document.
func (c *Controller) MoveTop(selecting bool) {
	old := c.state.Cursor
	c.state.Cursor = Coordinates{}
	if c.state.Cursor != old && selecting {
		c.interactiveStart, c.interactiveEnd = c.state.Cursor, old
	} else {
		c.interactiveStart, c.interactiveEnd = c.state.Cursor, c.state.Cursor
	}
	c.SetSelection(c.interactiveStart, c.interactiveEnd, false)
}

// MoveBottom moves the cursor to the end of the document.
func (c *Controller) MoveBottom(selecting bool) {
	old := c.Position()
	c.state.Cursor = c.doc.End()
	if selecting {
		c.interactiveStart, c.interactiveEnd = old, c.state.Cursor
	} else {
		c.interactiveStart, c.interactiveEnd = c.state.Cursor, c.state.Cursor
	}
	c.SetSelection(c.interactiveStart, c.interactiveEnd, false)
}

// MoveHome moves the cursor to the first non-blank column of the line, or
// to column 0 when it is already there or the line has no indent.
func (c *Controller) MoveHome(selecting bool) {
	old := c.state.Cursor
	to := 0
	if l := c.doc.Line(old.Line); l != nil {
		if head := l.LeadingBlanks(); head != 0 && old.Column != head {
			to = head
		}
	}
	line := c.state.Cursor.Line
	if c.HasSelection() {
		line = c.state.SelectionStart.Line
	}
	c.state.Cursor = Coordinates{Line: line, Column: to}
	c.finishLineMove(old, selecting, false)
}

// MoveEnd moves the cursor to the end of the line.
func (c *Controller) MoveEnd(selecting bool) {
	old := c.state.Cursor
	line := c.doc.Sanitize(old).Line
	if c.HasSelection() {
		line = c.state.SelectionEnd.Line
	}
	c.state.Cursor = Coordinates{Line: line, Column: c.doc.ColumnCount(line)}
	c.finishLineMove(old, selecting, true)
}

func (c *Controller) finishLineMove(old Coordinates, selecting, forward bool) {
	moved := c.state.Cursor != old
	if !moved || !selecting {
		c.interactiveStart, c.interactiveEnd = c.state.Cursor, c.state.Cursor
		if moved || !selecting {
			c.SetSelection(c.interactiveStart, c.interactiveEnd, false)
		}
		return
	}
	c.extend(old, true, forward, false)
}

// PageUp moves up by a page of pageSize visible lines, keeping two lines of
// context.
func (c *Controller) PageUp(pageSize int, selecting bool) {
	c.MoveUp(max(pageSize-2, 1), selecting)
}

// PageDown moves down by a page of pageSize visible lines, keeping two
// lines of context.
func (c *Controller) PageDown(pageSize int, selecting bool) {
	c.MoveDown(max(pageSize-2, 1), selecting)
}
