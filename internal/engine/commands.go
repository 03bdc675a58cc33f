package engine

import (
	"strings"

	"github.com/dshills/glyphedit/internal/engine/codec"
	"github.com/dshills/glyphedit/internal/engine/document"
	"github.com/dshills/glyphedit/internal/engine/history"
	"github.com/dshills/glyphedit/internal/engine/lang"
)

// Editing commands. Each captures the state before, mutates the document,
// captures the state after and pushes one record. Commands whose
// preconditions do not hold, and every command on a read-only editor, do
// nothing.

// push records r and remembers it for auto-indent continuation when asked.
func (e *Editor) push(r history.Record, autoIndent bool) {
	e.log.Push(r)
	if autoIndent {
		e.lastAutoIndent = &r
	}
}

// deleteSelection removes the selected text and collapses the selection
// onto its start.
func (e *Editor) deleteSelection() {
	start, end := e.cur.Selection()
	if start == end {
		return
	}
	e.doc.DeleteRange(start, end)
	e.cur.Collapse(start)
	e.colorizer.Colorize(start.Line, 1)
}

// Copy puts the selection on the clipboard, or the whole cursor line when
// nothing is selected.
func (e *Editor) Copy() {
	if e.cur.HasSelection() {
		e.clipboard.SetText(e.SelectionText(""))
		return
	}
	e.clipboard.SetText(e.doc.LineText(e.cur.Position().Line))
}

// Cut moves the selection to the clipboard. On a read-only editor it copies.
func (e *Editor) Cut() {
	if e.readOnly {
		e.Copy()
		return
	}
	if !e.cur.HasSelection() {
		return
	}
	start, end := e.cur.Selection()
	r := history.Record{
		Kind:    history.Delete,
		Before:  e.cur.State(),
		Content: e.SelectionText(""),
		Start:   start,
		End:     end,
	}
	e.Copy()
	e.deleteSelection()
	r.After = e.cur.State()
	e.push(r, false)
	e.modified(false)
	e.textChanged(start, start, 0)
}

// Paste inserts the clipboard text at the cursor, replacing the selection.
func (e *Editor) Paste() {
	e.PasteText(e.clipboard.Text())
}

// PasteText inserts text at the cursor, replacing the selection.
func (e *Editor) PasteText(text string) {
	if text == "" || e.readOnly {
		return
	}
	r := history.Record{
		Kind:   history.Insert,
		Before: e.cur.State(),
	}
	e.takeSelection(&r)

	r.Content = text
	r.Start = e.cur.Position()
	e.insertText(text)
	r.End = e.cur.Position()
	r.After = e.cur.State()

	e.push(r, false)
	e.modified(false)
	e.textChanged(r.Start, r.End, 0)
}

// takeSelection moves the selected text into r.Overwritten and deletes it.
func (e *Editor) takeSelection(r *history.Record) {
	if !e.cur.HasSelection() {
		return
	}
	r.OverwrittenStart, r.OverwrittenEnd = e.cur.Selection()
	r.Overwritten = e.SelectionText("")
	e.deleteSelection()
}

// Delete removes the selection, or the character after the cursor. At the
// end of a line it joins the next line.
func (e *Editor) Delete() {
	if e.readOnly {
		return
	}
	r := history.Record{
		Kind:   history.Delete,
		Before: e.cur.State(),
	}

	if e.cur.HasSelection() {
		r.Start, r.End = e.cur.Selection()
		r.Content = e.SelectionText("")
		e.deleteSelection()
		e.textChanged(r.Start, r.Start, 0)
	} else {
		pos := e.cur.Position()
		e.cur.Collapse(pos)
		line := e.doc.Line(pos.Line)

		if pos.Column == line.Len() {
			if pos.Line == e.doc.LineCount()-1 {
				return
			}
			r.Content = "\n"
			r.Start = pos
			r.End = e.doc.Advance(pos)
			next := e.doc.Line(pos.Line + 1)
			line.Glyphs = append(line.Glyphs, next.Glyphs...)
			e.doc.RemoveLine(pos.Line + 1)
		} else {
			r.Content = line.Glyphs[pos.Column].Char.String()
			r.Start = pos
			r.End = document.At(pos.Line, pos.Column+1)
			line.Erase(pos.Column, pos.Column+1)
		}

		e.colorizer.Colorize(pos.Line, 1)
		e.textChanged(pos, pos, 0)
	}

	r.After = e.cur.State()
	e.push(r, false)
	e.modified(false)
}

// BackSpace removes the selection, or the character before the cursor. At
// the start of a line it joins the line onto the previous one.
func (e *Editor) BackSpace() {
	if e.readOnly {
		return
	}
	r := history.Record{
		Kind:   history.Delete,
		Before: e.cur.State(),
	}

	if e.cur.HasSelection() {
		r.Start, r.End = e.cur.Selection()
		r.Content = e.SelectionText("")
		e.deleteSelection()
		e.textChanged(r.Start, r.Start, 0)
	} else {
		pos := e.cur.Position()

		if pos.Column == 0 {
			if pos.Line == 0 {
				return
			}
			line := e.doc.Line(pos.Line)
			prev := e.doc.Line(pos.Line - 1)
			prevSize := prev.Len()
			prev.Glyphs = append(prev.Glyphs, line.Glyphs...)
			e.doc.RemoveLine(pos.Line)

			pos = document.At(pos.Line-1, prevSize)
			r.Content = "\n"
			r.Start = pos
			r.End = document.At(pos.Line+1, 0)
		} else {
			line := e.doc.Line(pos.Line)
			r.Content = line.Glyphs[pos.Column-1].Char.String()
			r.End = pos
			pos.Column--
			r.Start = pos
			line.Erase(pos.Column, pos.Column+1)
		}

		e.cur.Collapse(pos)
		e.colorizer.Colorize(pos.Line, 1)
		e.textChanged(pos, pos, 0)
	}

	r.After = e.cur.State()
	e.push(r, false)
	e.modified(false)
}

// EnterCharacter types ch at the cursor, replacing the selection.
//
// A newline copies the indentation of the current line onto the new one.
// Pressing Enter again straight away takes that indentation back, within the
// same undo record. A character that opens one of the language's auto-close
// pairs inserts the pair with the cursor between, or wraps the selection.
// In overwrite mode ch replaces the glyph under the cursor.
func (e *Editor) EnterCharacter(ch rune) {
	if e.readOnly || ch == 0 {
		return
	}
	r := history.Record{
		Kind:   history.Insert,
		Before: e.cur.State(),
	}
	e.takeSelection(&r)

	coord := e.cur.Position()
	r.Start = coord

	autoIndent := false
	moveCursor := 0

	pair, isPair := lang.Pair{}, false
	if ch != '\n' {
		pair, isPair = e.language.FindPair(ch)
	}

	switch {
	case ch == '\n':
		indent := 0
		if last := e.lastAutoIndent; last != nil && r.Overwritten == "" && last.End == r.Start {
			indent = e.indentWidth(e.doc.Line(coord.Line))

			start := document.At(last.End.Line, 0)
			if last.End.After(start) {
				r.Overwritten = e.doc.Text(start, last.End, "")
				r.OverwrittenStart, r.OverwrittenEnd = start, last.End
				e.doc.DeleteRange(start, last.End)
				coord.Column = 0
				r.Start = coord
			}
		} else {
			e.lastAutoIndent = nil
		}

		e.doc.InsertLine(coord.Line + 1)
		line := e.doc.Line(coord.Line)
		next := e.doc.Line(coord.Line + 1)
		next.Glyphs = append(next.Glyphs, line.Glyphs[coord.Column:]...)
		line.Glyphs = line.Glyphs[:coord.Column]

		if indent == 0 {
			indent = e.indentWidth(line)
		}
		prefix := e.indentString(indent)
		next.InsertString(0, prefix, lang.Default)
		autoIndent = prefix != ""

		r.Content = "\n" + prefix
		e.cur.Collapse(document.At(coord.Line+1, len(codec.Split(prefix))))
		e.textChanged(coord, document.At(coord.Line+1, 0), 0)

	case isPair:
		r.Content = string(pair.Open) + r.Overwritten + string(pair.Close)
		r.Start = e.cur.Position()
		e.insertText(r.Content)
		e.textChanged(r.Start, e.cur.Position(), 0)
		if r.Overwritten == "" {
			moveCursor = -1
		}

	default:
		line := e.doc.Line(coord.Line)
		g := document.NewGlyph(codec.FromRune(ch), lang.Default)
		if e.overwrite && r.Overwritten == "" && coord.Column < line.Len() {
			r.Overwritten = line.Glyphs[coord.Column].Char.String()
			r.OverwrittenStart = coord
			r.OverwrittenEnd = document.At(coord.Line, coord.Column+1)
			line.Glyphs[coord.Column] = g
		} else {
			line.Insert(coord.Column, g)
		}
		r.Content = g.Char.String()
		e.cur.Collapse(document.At(coord.Line, coord.Column+1))
		e.textChanged(coord, coord, 0)
	}

	r.End = e.cur.Position()
	if moveCursor != 0 {
		p := r.End
		p.Column += moveCursor
		e.cur.Collapse(p)
	}
	r.After = e.cur.State()

	e.push(r, autoIndent)
	if !autoIndent {
		e.lastAutoIndent = nil
	}
	e.colorizer.Colorize(coord.Line-1, 3)
	e.modified(true)
}

// indentWidth returns the visual width of the leading blanks of l.
func (e *Editor) indentWidth(l *document.Line) int {
	n := 0
	for _, g := range l.Glyphs {
		switch {
		case g.Char.Is(' '):
			n++
		case g.Char.Is('\t'):
			n += e.tabSize
		default:
			return n
		}
	}
	return n
}

// indentString renders an indentation of width columns, with tabs first
// when indenting with tabs.
func (e *Editor) indentString(width int) string {
	if width <= 0 {
		return ""
	}
	if !e.indentWithTab {
		return strings.Repeat(" ", width)
	}
	return strings.Repeat("\t", width/e.tabSize) + strings.Repeat(" ", width%e.tabSize)
}

// tabString is what one level of indentation inserts.
func (e *Editor) tabString() string {
	if e.indentWithTab {
		return "\t"
	}
	return strings.Repeat(" ", e.tabSize)
}

// InsertTab types one level of indentation at the cursor: a tab, or TabSize
// spaces when not indenting with tabs.
func (e *Editor) InsertTab() {
	if e.indentWithTab {
		e.EnterCharacter('\t')
		return
	}
	for range e.tabSize {
		e.EnterCharacter(' ')
	}
}

// ToLowerCase lowers the ASCII letters of the selection.
func (e *Editor) ToLowerCase() {
	e.changeCase(history.ToLower, codec.Lower)
}

// ToUpperCase raises the ASCII letters of the selection.
func (e *Editor) ToUpperCase() {
	e.changeCase(history.ToUpper, codec.Upper)
}

// changeCase replaces the selection with fold(selection). The selection is
// kept so the command can be repeated.
func (e *Editor) changeCase(kind history.Kind, fold func(string) string) {
	if e.readOnly || !e.cur.HasSelection() {
		return
	}
	r := history.Record{
		Kind:   kind,
		Before: e.cur.State(),
	}
	e.takeSelection(&r)

	r.Content = fold(r.Overwritten)
	r.Start = e.cur.Position()
	e.insertText(r.Content)
	r.End = e.cur.Position()

	e.cur.SetState(r.Before)
	r.After = r.Before

	e.push(r, false)
	e.modified(false)
	e.textChanged(r.Start, r.End, 0)
}

// lineSpan returns the lines a line-wise command works on: those touched by
// the selection, or the cursor line.
func (e *Editor) lineSpan() (first, last int) {
	if !e.cur.HasSelection() {
		p := e.cur.Position()
		return p.Line, p.Line
	}
	start, end := e.cur.Selection()
	return start.Line, min(end.Line, e.doc.LineCount()-1)
}

// Indent adds one level of indentation to every non-empty line of the
// selection. From the keyboard it only applies to multi-line selections;
// byKey false applies it to the selection or cursor line regardless.
// Nothing is recorded when every line is empty.
func (e *Editor) Indent(byKey bool) {
	if e.readOnly {
		return
	}
	state := e.cur.State()
	if byKey && state.SelectionLines() <= 1 {
		return
	}
	first, last := e.lineSpan()
	r := history.Record{
		Kind:     history.Indent,
		Before:   state,
		Start:    document.At(first, 0),
		End:      document.At(last, 0),
		Prefixes: make([]string, last-first+1),
	}

	tab := e.tabString()
	affected := 0
	for i := first; i <= last; i++ {
		line := e.doc.Line(i)
		if line.Len() == 0 {
			continue
		}
		line.InsertString(0, tab, lang.Default)
		r.Prefixes[i-first] = tab
		affected++
		e.textChanged(document.At(i, 0), document.At(i, 0), 0)
	}
	if affected == 0 {
		return
	}

	switch lines := state.SelectionLines(); {
	case lines <= 1:
		state = state.ShiftColumns(first, len(codec.Split(r.Prefixes[0])))
	default:
		state.SelectionEnd.Column = e.doc.ColumnCount(state.SelectionEnd.Line)
		state = state.Normalized()
	}
	e.cur.SetState(state)
	e.colorizer.Colorize(first, last-first+1)

	r.After = e.cur.State()
	e.push(r, false)
	e.modified(false)
}

// Unindent removes one level of indentation, a tab or up to TabSize spaces,
// from every line of the selection or the cursor line. Nothing is recorded
// when no line had indentation to remove.
func (e *Editor) Unindent() {
	if e.readOnly {
		return
	}
	state := e.cur.State()
	first, last := e.lineSpan()
	r := history.Record{
		Kind:     history.Unindent,
		Before:   state,
		Start:    document.At(first, 0),
		End:      document.At(last, 0),
		Prefixes: make([]string, last-first+1),
	}

	affected := 0
	for i := first; i <= last; i++ {
		line := e.doc.Line(i)
		n := 0
		switch {
		case line.Len() == 0:
		case line.Glyphs[0].Char.Is('\t'):
			n = 1
		default:
			for n < e.tabSize && n < line.Len() && line.Glyphs[n].Char.Is(' ') {
				n++
			}
		}
		if n == 0 {
			continue
		}
		r.Prefixes[i-first] = e.doc.Text(document.At(i, 0), document.At(i, n), "")
		line.Erase(0, n)
		affected++
		e.textChanged(document.At(i, 0), document.At(i, 0), 0)
	}
	if affected == 0 {
		return
	}

	switch lines := state.SelectionLines(); {
	case lines <= 1:
		if step := len(codec.Split(r.Prefixes[0])); step > 0 {
			state = state.ShiftColumns(first, -step).Normalized()
		}
	default:
		if n := e.doc.ColumnCount(state.SelectionEnd.Line); state.SelectionEnd.Column > n {
			state.SelectionEnd.Column = n
			state = state.Normalized()
		}
	}
	e.cur.SetState(state)
	e.colorizer.Colorize(first, last-first+1)

	r.After = e.cur.State()
	e.push(r, false)
	e.modified(false)
}

// Comment prefixes every line of the selection or the cursor line with the
// language's line comment head. Non-empty lines also get a space after it.
func (e *Editor) Comment() {
	head := e.language.LineComment
	if e.readOnly || head == "" {
		return
	}
	state := e.cur.State()
	first, last := e.lineSpan()
	r := history.Record{
		Kind:   history.Comment,
		Before: state,
		Start:  document.At(first, 0),
		End:    document.At(last, 0),
		Ops:    make([]history.CommentOp, last-first+1),
	}

	for i := first; i <= last; i++ {
		op := history.CommentHeadSpace
		if e.doc.ColumnCount(i) == 0 {
			op = history.CommentHead
		}
		e.addComment(i, op)
		r.Ops[i-first] = op
		state = state.ShiftColumns(i, commentWidth(head, op))
		e.textChanged(document.At(i, 0), document.At(i, 0), 0)
	}

	state = state.Normalized()
	e.cur.SetState(state)
	e.colorizer.Colorize(state.SelectionStart.Line, state.SelectionEnd.Line-state.SelectionStart.Line+1)

	r.After = e.cur.State()
	e.push(r, false)
	e.modified(false)
}

// Uncomment removes the line comment head, and one space after it, from
// every line of the selection or the cursor line that starts with it.
func (e *Editor) Uncomment() {
	head := e.language.LineComment
	if e.readOnly || head == "" {
		return
	}
	state := e.cur.State()
	first, last := e.lineSpan()
	r := history.Record{
		Kind:   history.Uncomment,
		Before: state,
		Start:  document.At(first, 0),
		End:    document.At(last, 0),
		Ops:    make([]history.CommentOp, last-first+1),
	}

	affected := 0
	for i := first; i <= last; i++ {
		op := e.removeComment(i, history.CommentHeadSpace)
		r.Ops[i-first] = op
		if op == history.CommentNone {
			continue
		}
		affected++
		state = state.ShiftColumns(i, -commentWidth(head, op))
		e.textChanged(document.At(i, 0), document.At(i, 0), 0)
	}

	state = state.Normalized()
	e.cur.SetState(state)
	e.colorizer.Colorize(state.SelectionStart.Line, state.SelectionEnd.Line-state.SelectionStart.Line+1)
	if affected == 0 {
		return
	}

	r.After = e.cur.State()
	e.push(r, false)
	e.modified(false)
}

// addComment prefixes line i with the comment head, followed by a space
// for CommentHeadSpace.
func (e *Editor) addComment(i int, op history.CommentOp) {
	line := e.doc.Line(i)
	if op == history.CommentHeadSpace {
		line.InsertString(0, " ", lang.Default)
	}
	if op != history.CommentNone {
		line.InsertString(0, e.language.LineComment, lang.Comment)
	}
}

// removeComment strips the comment head from line i when it starts with one,
// and the space after it when limit allows. It returns what was removed.
func (e *Editor) removeComment(i int, limit history.CommentOp) history.CommentOp {
	head := e.language.LineComment
	line := e.doc.Line(i)
	if limit == history.CommentNone || line.Len() == 0 || !line.HasPrefix(head) {
		return history.CommentNone
	}
	n := len(codec.Split(head))
	op := history.CommentHead
	if limit == history.CommentHeadSpace && n < line.Len() && line.Glyphs[n].Char.Is(' ') {
		n++
		op = history.CommentHeadSpace
	}
	line.Erase(0, n)
	return op
}

// commentWidth is the number of glyphs op adds or removes.
func commentWidth(head string, op history.CommentOp) int {
	switch op {
	case history.CommentHead:
		return len(codec.Split(head))
	case history.CommentHeadSpace:
		return len(codec.Split(head)) + 1
	}
	return 0
}

// MoveLineUp moves the lines of the selection, or the cursor line, up by
// one together with their markers.
func (e *Editor) MoveLineUp() {
	e.moveLines(history.MoveLineUp, -1)
}

// MoveLineDown moves the lines of the selection, or the cursor line, down
// by one together with their markers.
func (e *Editor) MoveLineDown() {
	e.moveLines(history.MoveLineDown, 1)
}

func (e *Editor) moveLines(kind history.Kind, dir int) {
	if e.readOnly {
		return
	}
	first, last := e.lineSpan()
	var ok bool
	if dir < 0 {
		ok = e.doc.MoveLinesUp(first, last)
	} else {
		ok = e.doc.MoveLinesDown(first, last)
	}
	if !ok {
		return
	}
	r := history.Record{
		Kind:   kind,
		Before: e.cur.State(),
		Start:  document.At(first, 0),
		End:    document.At(last, 0),
	}

	lo, hi := min(first, first+dir), max(last, last+dir)
	e.textChanged(document.At(lo, 0), document.At(hi, 0), 0)

	e.cur.SetState(r.Before.ShiftLines(dir).Normalized())
	e.colorizer.Colorize(lo-1, hi-lo+3)

	r.After = e.cur.State()
	e.push(r, false)
	e.modified(false)
}
