package engine

import (
	"github.com/dshills/glyphedit/internal/engine/cursor"
	"github.com/dshills/glyphedit/internal/engine/document"
	"github.com/dshills/glyphedit/internal/engine/lang"
)

// Word is a run of glyphs sharing one token class.
type Word struct {
	Text  string
	Class lang.PaletteIndex
}

// WordAt returns the word containing c and its bounds.
func (e *Editor) WordAt(c Coordinates) (word string, start, end Coordinates) {
	return cursor.WordAt(e.doc, e.doc.Sanitize(c))
}

// WordUnderCursor returns the word at the cursor and its bounds.
func (e *Editor) WordUnderCursor() (word string, start, end Coordinates) {
	return e.WordAt(e.cur.Position())
}

// CharUnderCursor returns the character just before the cursor, or 0 at the
// start of a line.
func (e *Editor) CharUnderCursor() rune {
	p := e.cur.Position()
	if p.Column == 0 {
		return 0
	}
	return e.doc.Line(p.Line).Glyphs[p.Column-1].Char.Rune()
}

// TextLines returns every line, leaving out comment and string glyphs
// unless asked to include them. A line opened inside a block comment counts
// as comment throughout.
func (e *Editor) TextLines(includeComment, includeString bool) []string {
	out := make([]string, 0, e.doc.LineCount())
	for i := range e.doc.LineCount() {
		l := e.doc.Line(i)
		inComment := l.Len() > 0 && l.Glyphs[0].MultiLineComment
		var buf []byte
		for _, g := range l.Glyphs {
			if !includeComment && (inComment || g.EffectiveClass().IsComment()) {
				continue
			}
			if !includeString && g.Class == lang.String {
				continue
			}
			buf = g.Char.AppendTo(buf)
		}
		out = append(out, string(buf))
	}
	return out
}

// WordsAtLine splits line i into runs of equal token class. Comment, string
// and blank glyphs are dropped unless included; a dropped glyph ends the
// current run.
func (e *Editor) WordsAtLine(i int, includeComment, includeString, includeSpace bool) []Word {
	l := e.doc.Line(i)
	if l == nil {
		return nil
	}
	var (
		words []Word
		buf   []byte
		class lang.PaletteIndex
	)
	flush := func() {
		if len(buf) > 0 {
			words = append(words, Word{Text: string(buf), Class: class})
			buf = buf[:0]
		}
	}
	for _, g := range l.Glyphs {
		c := g.EffectiveClass()
		skip := (!includeComment && c.IsComment()) ||
			(!includeString && c == lang.String) ||
			(!includeSpace && g.IsBlank())
		if skip {
			flush()
			continue
		}
		if len(buf) > 0 && c != class {
			flush()
		}
		class = c
		buf = g.Char.AppendTo(buf)
	}
	flush()
	return words
}

// TotalTokens counts runs of equal token class over the whole document,
// ignoring Default and Space glyphs.
func (e *Editor) TotalTokens() int {
	n := 0
	prev := lang.PaletteMax
	for i := range e.doc.LineCount() {
		for _, g := range e.doc.Line(i).Glyphs {
			if g.Class == lang.Space || g.Class == lang.Default {
				continue
			}
			if g.Class != prev {
				n++
				prev = g.Class
			}
		}
	}
	return n
}

// CommentLines counts the non-empty selected lines, or the cursor line,
// that start with the line comment head.
func (e *Editor) CommentLines() int {
	head := e.language.LineComment
	if head == "" {
		return 0
	}
	first, last := e.lineSpan()
	n := 0
	for i := first; i <= last; i++ {
		l := e.doc.Line(i)
		if l.Len() > 0 && l.HasPrefix(head) {
			n++
		}
	}
	return n
}

// SelectionLines returns the number of lines the selection touches, or 0
// without a selection.
func (e *Editor) SelectionLines() int {
	return e.cur.State().SelectionLines()
}

// NonEmptySelectionLines counts the selected lines that have content.
func (e *Editor) NonEmptySelectionLines() int {
	if !e.cur.HasSelection() {
		return 0
	}
	first, last := e.lineSpan()
	n := 0
	for i := first; i <= last; i++ {
		if e.doc.ColumnCount(i) > 0 {
			n++
		}
	}
	return n
}

// TextDistanceToLineStart returns the visual column of c, expanding tabs.
func (e *Editor) TextDistanceToLineStart(c Coordinates) int {
	return e.doc.TextDistanceToLineStart(c)
}

// Declaration returns the declaration text of a known identifier, for
// tooltips.
func (e *Editor) Declaration(symbol string) (string, bool) {
	return e.language.Declaration(symbol)
}

// Glyphs returns the glyphs of line i measured for display. The slice is
// owned by the editor.
func (e *Editor) Glyphs(i int) []document.Glyph {
	l := e.doc.Line(i)
	if l == nil {
		return nil
	}
	e.doc.MeasureLine(i)
	return l.Glyphs
}
