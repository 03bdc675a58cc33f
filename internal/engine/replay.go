package engine

import (
	"github.com/dshills/glyphedit/internal/engine/codec"
	"github.com/dshills/glyphedit/internal/engine/document"
	"github.com/dshills/glyphedit/internal/engine/history"
	"github.com/dshills/glyphedit/internal/engine/lang"
)

// ============================================================================
// Undo/Redo
// ============================================================================

// Undo reverts up to steps records. With coalescing enabled a single step
// reverts a whole run of similar records, such as a typed word.
func (e *Editor) Undo(steps int) error {
	if e.readOnly {
		return ErrReadOnly
	}
	_, err := e.log.Undo(replayer{e}, steps)
	return err
}

// Redo reapplies up to steps undone records.
func (e *Editor) Redo(steps int) error {
	if e.readOnly {
		return ErrReadOnly
	}
	_, err := e.log.Redo(replayer{e}, steps)
	return err
}

// CanUndo reports whether there is anything to undo.
func (e *Editor) CanUndo() bool {
	return !e.readOnly && e.log.CanUndo()
}

// CanRedo reports whether there is anything to redo.
func (e *Editor) CanRedo() bool {
	return !e.readOnly && e.log.CanRedo()
}

// ClearHistory drops every undo record.
func (e *Editor) ClearHistory() {
	e.log.Clear()
	e.lastAutoIndent = nil
}

// UndoIndex returns the position in the undo log.
func (e *Editor) UndoIndex() int {
	return e.log.Index()
}

// UndoLen returns the number of records in the undo log.
func (e *Editor) UndoLen() int {
	return e.log.Len()
}

// replayer applies records to the editor for the undo log.
type replayer struct {
	e *Editor
}

// Undo reverts r and restores the state from before it.
func (p replayer) Undo(r *history.Record) {
	e := p.e
	switch r.Kind {
	case history.Insert, history.ToLower, history.ToUpper:
		e.cur.SetState(r.After)
		e.doc.DeleteRange(r.Start, r.End)
		if r.Overwritten != "" {
			e.doc.InsertText(r.OverwrittenStart, r.Overwritten)
		}
		e.colorizer.Colorize(r.Start.Line-1, r.End.Line-r.Start.Line+2)
		e.textChanged(r.Start, r.End, -1)

	case history.Delete:
		e.doc.InsertText(r.Start, r.Content)
		e.colorizer.Colorize(r.Start.Line-1, r.End.Line-r.Start.Line+2)
		e.textChanged(r.Start, r.End, -1)

	case history.Indent:
		p.eachLine(r, -1, func(i, k int) { p.erasePrefix(i, r.Prefixes[k]) })
	case history.Unindent:
		p.eachLine(r, -1, func(i, k int) { p.insertPrefix(i, r.Prefixes[k]) })
	case history.Comment:
		p.eachLine(r, -1, func(i, k int) { e.removeComment(i, r.Ops[k]) })
	case history.Uncomment:
		p.eachLine(r, -1, func(i, k int) { e.addComment(i, r.Ops[k]) })

	case history.MoveLineUp:
		e.doc.MoveLinesDown(r.Start.Line-1, r.End.Line-1)
		p.movedLines(r, -1, -1)
	case history.MoveLineDown:
		e.doc.MoveLinesUp(r.Start.Line+1, r.End.Line+1)
		p.movedLines(r, 1, -1)
	}

	e.cur.SetState(r.Before)
	e.modified(false)
}

// Redo reapplies r and restores the state from after it.
func (p replayer) Redo(r *history.Record) {
	e := p.e
	switch r.Kind {
	case history.Insert, history.ToLower, history.ToUpper:
		e.cur.SetState(r.Before)
		if r.Overwritten != "" {
			e.doc.DeleteRange(r.OverwrittenStart, r.OverwrittenEnd)
		}
		e.doc.InsertText(r.Start, r.Content)
		e.colorizer.Colorize(r.Start.Line-1, r.End.Line-r.Start.Line+2)
		e.textChanged(r.Start, r.End, 1)

	case history.Delete:
		e.doc.DeleteRange(r.Start, r.End)
		e.colorizer.Colorize(r.Start.Line-1, r.End.Line-r.Start.Line+2)
		e.textChanged(r.Start, r.Start, 1)

	case history.Indent:
		p.eachLine(r, 1, func(i, k int) { p.insertPrefix(i, r.Prefixes[k]) })
	case history.Unindent:
		p.eachLine(r, 1, func(i, k int) { p.erasePrefix(i, r.Prefixes[k]) })
	case history.Comment:
		p.eachLine(r, 1, func(i, k int) { e.addComment(i, r.Ops[k]) })
	case history.Uncomment:
		p.eachLine(r, 1, func(i, k int) { e.removeComment(i, r.Ops[k]) })

	case history.MoveLineUp:
		e.doc.MoveLinesUp(r.Start.Line, r.End.Line)
		p.movedLines(r, -1, 1)
	case history.MoveLineDown:
		e.doc.MoveLinesDown(r.Start.Line, r.End.Line)
		p.movedLines(r, 1, 1)
	}

	e.cur.SetState(r.After)
	e.modified(false)
}

// eachLine calls fn for every line a line-wise record addresses, with the
// line index and its offset within the record.
func (p replayer) eachLine(r *history.Record, direction int, fn func(i, k int)) {
	e := p.e
	for i := r.Start.Line; i <= r.End.Line && i < e.doc.LineCount(); i++ {
		fn(i, i-r.Start.Line)
		e.textChanged(document.At(i, 0), document.At(i, 0), direction)
	}
	e.colorizer.Colorize(r.Start.Line, r.Lines())
}

func (p replayer) movedLines(r *history.Record, dir, direction int) {
	lo, hi := min(r.Start.Line, r.Start.Line+dir), max(r.End.Line, r.End.Line+dir)
	p.e.textChanged(document.At(lo, 0), document.At(hi, 0), direction)
	p.e.colorizer.Colorize(lo-1, hi-lo+3)
}

func (p replayer) insertPrefix(i int, prefix string) {
	if prefix != "" {
		p.e.doc.Line(i).InsertString(0, prefix, lang.Default)
	}
}

func (p replayer) erasePrefix(i int, prefix string) {
	if prefix == "" {
		return
	}
	l := p.e.doc.Line(i)
	l.Erase(0, min(len(codec.Split(prefix)), l.Len()))
}
