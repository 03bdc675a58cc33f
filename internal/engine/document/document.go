package document

import (
	"maps"
	"strings"

	"github.com/dshills/glyphedit/internal/engine/codec"
	"github.com/dshills/glyphedit/internal/engine/lang"
)

// DefaultTabSize is the tab stop width used by New.
const DefaultTabSize = 4

// Document is the line/glyph buffer plus the per-line decorations that
// follow the lines around as they are inserted and removed.
//
// A Document always holds at least one line. It is not safe for concurrent
// use; the owning editor serializes access.
type Document struct {
	lines []Line

	errors         map[int]ErrorMarker
	breakpoints    map[int]bool
	programPointer int

	tabSize int
}

// New returns a document holding a single empty line.
func New() *Document {
	return &Document{
		lines:          []Line{{}},
		errors:         make(map[int]ErrorMarker),
		breakpoints:    make(map[int]bool),
		programPointer: -1,
		tabSize:        DefaultTabSize,
	}
}

// TabSize returns the tab stop width.
func (d *Document) TabSize() int {
	return d.tabSize
}

// SetTabSize sets the tab stop width. Values below 1 are ignored.
func (d *Document) SetTabSize(n int) {
	if n < 1 {
		return
	}
	d.tabSize = n
	for i := range d.lines {
		d.MeasureLine(i)
	}
}

// SetText replaces the whole content. Every newline starts a new line; all
// other bytes, carriage returns and malformed sequences included, are kept as
// glyphs so the content round-trips. All glyphs start as Default and
// unmeasured.
func (d *Document) SetText(text string) {
	d.lines = d.lines[:0]
	d.lines = append(d.lines, Line{})
	cur := &d.lines[0]
	for i := 0; i < len(text); {
		switch text[i] {
		case '\n':
			d.lines = append(d.lines, Line{})
			cur = &d.lines[len(d.lines)-1]
			i++
			continue
		}
		_, n := codec.DecodeString(text[i:])
		if n == 0 {
			n = 1
		}
		cur.Glyphs = append(cur.Glyphs, NewGlyph(codec.PackString(text[i:], n), lang.Default))
		i += n
	}
}

// AppendText appends pre-coloured text to the end of the document without
// touching any other state. Both '\r' and '\n' start a new line.
func (d *Document) AppendText(text string, class lang.PaletteIndex) {
	for i := 0; i < len(text); {
		_, n := codec.DecodeString(text[i:])
		if n == 0 {
			n = 1
		}
		switch text[i] {
		case '\r', '\n':
			d.lines = append(d.lines, Line{})
		default:
			last := &d.lines[len(d.lines)-1]
			last.Glyphs = append(last.Glyphs, NewGlyph(codec.PackString(text[i:], n), class))
		}
		i += n
	}
}

// LineCount returns the number of lines. It is never zero.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns line i, or nil when i is out of range. Callers may recolour
// glyphs in place but must use Document methods for structural edits.
func (d *Document) Line(i int) *Line {
	if i < 0 || i >= len(d.lines) {
		return nil
	}
	return &d.lines[i]
}

// ColumnCount returns the number of glyphs on line i, or 0 when i is out of
// range.
func (d *Document) ColumnCount(i int) int {
	if l := d.Line(i); l != nil {
		return l.Len()
	}
	return 0
}

// LineText returns the content of line i.
func (d *Document) LineText(i int) string {
	if l := d.Line(i); l != nil {
		return l.Text()
	}
	return ""
}

// Text returns the content between start (inclusive) and end (exclusive),
// joining lines with nl. An empty nl means "\n".
func (d *Document) Text(start, end Coordinates, nl string) string {
	if nl == "" {
		nl = "\n"
	}
	var sb strings.Builder
	last := min(end.Line, len(d.lines)-1)
	for l := max(start.Line, 0); l <= last; l++ {
		glyphs := d.lines[l].Glyphs
		from := 0
		if l == start.Line {
			from = min(max(start.Column, 0), len(glyphs))
		}
		to := len(glyphs)
		if l == end.Line {
			to = min(max(end.Column, from), len(glyphs))
		}
		var buf [codec.MaxBytes]byte
		for _, g := range glyphs[from:to] {
			sb.Write(g.Char.AppendTo(buf[:0]))
		}
		if l < end.Line && l+1 < len(d.lines) {
			sb.WriteString(nl)
		}
	}
	return sb.String()
}

// FullText returns the whole content joined with nl.
func (d *Document) FullText(nl string) string {
	return d.Text(Coordinates{}, Coordinates{Line: len(d.lines)}, nl)
}

// End returns the coordinates just past the last glyph.
func (d *Document) End() Coordinates {
	last := len(d.lines) - 1
	return Coordinates{Line: last, Column: d.lines[last].Len()}
}

// Sanitize clamps c into the document. A line past the end snaps to the end
// of the last line rather than its start.
func (d *Document) Sanitize(c Coordinates) Coordinates {
	line := min(max(c.Line, 0), len(d.lines)-1)
	n := d.lines[line].Len()
	if line < c.Line {
		return Coordinates{Line: line, Column: n}
	}
	return Coordinates{Line: line, Column: min(max(c.Column, 0), n)}
}

// Advance returns the coordinates of the glyph after c, moving to the start
// of the next line from the last glyph of a line.
func (d *Document) Advance(c Coordinates) Coordinates {
	if c.Line >= len(d.lines) {
		return c
	}
	if c.Column+1 < d.lines[c.Line].Len() {
		c.Column++
	} else {
		c.Line++
		c.Column = 0
	}
	return c
}

// InsertText inserts text at the given position. Carriage returns are
// dropped and newlines split the line. It returns the position just past the
// inserted text and the number of line breaks inserted. Inserted glyphs are
// Default and unmeasured.
func (d *Document) InsertText(at Coordinates, text string) (Coordinates, int) {
	at = d.Sanitize(at)
	total := 0
	for i := 0; i < len(text); {
		_, n := codec.DecodeString(text[i:])
		if n == 0 {
			n = 1
		}
		switch text[i] {
		case '\r':
		case '\n':
			d.InsertLine(at.Line + 1)
			cur := &d.lines[at.Line]
			next := &d.lines[at.Line+1]
			if at.Column < cur.Len() {
				next.Glyphs = append(next.Glyphs, cur.Glyphs[at.Column:]...)
				cur.Glyphs = cur.Glyphs[:at.Column]
			}
			at.Line++
			at.Column = 0
			total++
		default:
			d.lines[at.Line].Insert(at.Column, NewGlyph(codec.PackString(text[i:], n), lang.Default))
			at.Column++
		}
		i += n
	}
	return at, total
}

// DeleteRange removes the text between start and end. Lines that disappear
// take their markers with them.
func (d *Document) DeleteRange(start, end Coordinates) {
	Assert(!end.Before(start), "delete range end %v before start %v", end, start)
	if end.Before(start) {
		return
	}
	start = d.Sanitize(start)
	end = d.Sanitize(end)

	if start.Line == end.Line {
		l := &d.lines[start.Line]
		if end.Column >= l.Len() {
			l.Glyphs = l.Glyphs[:start.Column]
		} else {
			l.Erase(start.Column, end.Column)
		}
		return
	}

	first := &d.lines[start.Line]
	last := &d.lines[end.Line]
	first.Glyphs = first.Glyphs[:start.Column]
	first.Glyphs = append(first.Glyphs, last.Glyphs[end.Column:]...)
	d.RemoveLines(start.Line+1, end.Line+1)
}

// InsertLine inserts an empty line before index i. Markers at or after i
// move down by one.
func (d *Document) InsertLine(i int) {
	Assert(i >= 0 && i <= len(d.lines), "insert line %d out of range", i)
	i = min(max(i, 0), len(d.lines))
	d.lines = append(d.lines, Line{})
	copy(d.lines[i+1:], d.lines[i:])
	d.lines[i] = Line{}
	shiftKeys(d.errors, i, 1)
	shiftKeys(d.breakpoints, i, 1)
}

// RemoveLine removes line i. The last remaining line is never removed.
func (d *Document) RemoveLine(i int) {
	d.RemoveLines(i, i+1)
}

// RemoveLines removes lines in [start, end). Markers inside the range are
// dropped and those after it move up by the range length. The document keeps
// at least one line.
func (d *Document) RemoveLines(start, end int) {
	start = max(start, 0)
	end = min(end, len(d.lines))
	if start >= end {
		return
	}
	if end-start >= len(d.lines) {
		d.lines = append(d.lines[:0], Line{})
		clear(d.errors)
		clear(d.breakpoints)
		return
	}
	d.lines = append(d.lines[:start], d.lines[end:]...)
	dropKeys(d.errors, start, end)
	dropKeys(d.breakpoints, start, end)
}

// MoveLinesUp swaps the block [start, end] with the line above it. It
// reports false when the block already starts at the top.
func (d *Document) MoveLinesUp(start, end int) bool {
	if start <= 0 || end < start || end >= len(d.lines) {
		return false
	}
	above := d.lines[start-1]
	copy(d.lines[start-1:end], d.lines[start:end+1])
	d.lines[end] = above
	rotateKeys(d.errors, start-1, end, -1)
	rotateKeys(d.breakpoints, start-1, end, -1)
	return true
}

// MoveLinesDown swaps the block [start, end] with the line below it. It
// reports false when the block already ends at the bottom.
func (d *Document) MoveLinesDown(start, end int) bool {
	if start < 0 || end < start || end+1 >= len(d.lines) {
		return false
	}
	below := d.lines[end+1]
	copy(d.lines[start+1:end+2], d.lines[start:end+1])
	d.lines[start] = below
	rotateKeys(d.errors, start, end+1, 1)
	rotateKeys(d.breakpoints, start, end+1, 1)
	return true
}

// SaveStates marks every edited or reverted line as saved.
func (d *Document) SaveStates() {
	for i := range d.lines {
		d.lines[i].State = d.lines[i].State.Save()
	}
}

// ClearStates resets every line to Unchanged.
func (d *Document) ClearStates() {
	for i := range d.lines {
		d.lines[i].State = Unchanged
	}
}

// Clone returns a deep copy.
func (d *Document) Clone() *Document {
	c := &Document{}
	c.CopyFrom(d)
	return c
}

// CopyFrom replaces the content, decorations and tab size of d with a deep
// copy of src.
func (d *Document) CopyFrom(src *Document) {
	d.lines = make([]Line, len(src.lines))
	for i := range src.lines {
		d.lines[i] = src.lines[i].clone()
	}
	d.errors = maps.Clone(src.errors)
	d.breakpoints = maps.Clone(src.breakpoints)
	d.programPointer = src.programPointer
	d.tabSize = src.tabSize
}
