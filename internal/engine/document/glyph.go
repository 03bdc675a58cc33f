package document

import (
	"slices"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/glyphedit/internal/engine/codec"
	"github.com/dshills/glyphedit/internal/engine/lang"
)

// Glyph is one character cell of a line.
type Glyph struct {
	Char      codec.Cell
	Codepoint rune
	Class     lang.PaletteIndex

	// Width is the display width in columns. Zero means not yet measured;
	// see Document.MeasureLine.
	Width int

	// MultiLineComment is set by the block comment scan.
	MultiLineComment bool
}

// NewGlyph returns an unmeasured glyph holding c.
func NewGlyph(c codec.Cell, class lang.PaletteIndex) Glyph {
	g := Glyph{Char: c, Class: class}
	if c.IsASCII() {
		g.Codepoint = rune(c)
	} else {
		g.Codepoint = c.Rune()
	}
	return g
}

// ByteGlyph returns an unmeasured glyph holding the ASCII byte b.
func ByteGlyph(b byte, class lang.PaletteIndex) Glyph {
	return NewGlyph(codec.FromByte(b), class)
}

// IsBlank reports whether g is a space or a tab.
func (g Glyph) IsBlank() bool {
	return g.Char.IsBlank()
}

// EffectiveClass is the class a renderer should colour g with.
func (g Glyph) EffectiveClass() lang.PaletteIndex {
	if g.MultiLineComment {
		return lang.MultiLineComment
	}
	return g.Class
}

// literal reports whether a tab in g keeps its full width regardless of
// tab stops.
func (g Glyph) literal() bool {
	return g.MultiLineComment || g.Class == lang.String || g.Class.IsComment()
}

// charWidth is the display width of a non-tab glyph. Single-byte cells are
// always one column wide.
func charWidth(g Glyph) int {
	if g.Char.Len() <= 1 {
		return 1
	}
	if w := runewidth.RuneWidth(g.Codepoint); w > 1 {
		return w
	}
	return 1
}

// LineState tracks whether a line was edited, for gutter decorations.
type LineState uint8

const (
	// Unchanged lines have not been edited since load or the last clear.
	Unchanged LineState = iota
	// Edited lines changed since the last save.
	Edited
	// EditedSaved lines changed and were then saved.
	EditedSaved
	// EditedReverted lines were returned to their saved content by undo.
	EditedReverted
)

// String returns the state name.
func (s LineState) String() string {
	switch s {
	case Unchanged:
		return "unchanged"
	case Edited:
		return "edited"
	case EditedSaved:
		return "edited-saved"
	case EditedReverted:
		return "edited-reverted"
	}
	return "unknown"
}

// Line is an ordered run of glyphs.
type Line struct {
	Glyphs []Glyph
	State  LineState
}

// Len returns the number of glyphs.
func (l *Line) Len() int {
	return len(l.Glyphs)
}

// Text returns the line content.
func (l *Line) Text() string {
	buf := make([]byte, 0, len(l.Glyphs))
	for _, g := range l.Glyphs {
		buf = g.Char.AppendTo(buf)
	}
	return string(buf)
}

// HasPrefix reports whether the line starts with the ASCII string s.
func (l *Line) HasPrefix(s string) bool {
	if len(l.Glyphs) < len(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !l.Glyphs[i].Char.Is(s[i]) {
			return false
		}
	}
	return true
}

// LeadingBlanks returns the number of leading spaces and tabs.
func (l *Line) LeadingBlanks() int {
	n := 0
	for n < len(l.Glyphs) && l.Glyphs[n].IsBlank() {
		n++
	}
	return n
}

// Insert inserts glyphs at column i.
func (l *Line) Insert(i int, glyphs ...Glyph) {
	l.Glyphs = slices.Insert(l.Glyphs, i, glyphs...)
}

// InsertString inserts the characters of s at column i with the given class.
func (l *Line) InsertString(i int, s string, class lang.PaletteIndex) {
	cells := codec.Split(s)
	glyphs := make([]Glyph, len(cells))
	for k, c := range cells {
		glyphs[k] = NewGlyph(c, class)
	}
	l.Insert(i, glyphs...)
}

// Erase removes the glyphs in [from, to).
func (l *Line) Erase(from, to int) {
	l.Glyphs = slices.Delete(l.Glyphs, from, to)
}

func (l *Line) clone() Line {
	c := Line{State: l.State}
	if l.Glyphs != nil {
		c.Glyphs = make([]Glyph, len(l.Glyphs))
		copy(c.Glyphs, l.Glyphs)
	}
	return c
}

// Change marks a line as edited.
func (s LineState) Change() LineState {
	return Edited
}

// Revert marks a line as returned to its saved content.
func (s LineState) Revert() LineState {
	return EditedReverted
}

// Save converts pending edits into the saved state.
func (s LineState) Save() LineState {
	if s == Edited || s == EditedReverted {
		return EditedSaved
	}
	return s
}
