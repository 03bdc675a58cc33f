package cursor

import (
	"testing"

	"github.com/dshills/glyphedit/internal/engine/document"
	"github.com/dshills/glyphedit/internal/engine/lang"
)

var at = document.At

// classed builds a one-line document whose glyph classes are given by
// pattern, one letter per glyph: k keyword, s string, i identifier,
// p punctuation, d default.
func classed(text, pattern string) *document.Document {
	d := document.New()
	d.SetText(text)
	classes := map[byte]lang.PaletteIndex{
		'k': lang.Keyword,
		's': lang.String,
		'i': lang.Identifier,
		'p': lang.Punctuation,
		'd': lang.Default,
	}
	l := d.Line(0)
	for i := range l.Glyphs {
		l.Glyphs[i].Class = classes[pattern[i]]
	}
	return d
}

func TestStateHasSelection(t *testing.T) {
	s := At(at(1, 2))
	if s.HasSelection() {
		t.Error("collapsed state should have no selection")
	}
	s.SelectionEnd = at(1, 4)
	if !s.HasSelection() {
		t.Error("expected selection")
	}
	if s.SelectionLines() != 1 {
		t.Errorf("expected 1 selection line, got %d", s.SelectionLines())
	}
}

func TestStateNormalized(t *testing.T) {
	s := State{SelectionStart: at(3, 0), SelectionEnd: at(1, 5)}.Normalized()
	if s.SelectionStart != at(1, 5) || s.SelectionEnd != at(3, 0) {
		t.Errorf("expected swapped selection, got %v", s)
	}
}

func TestStateShift(t *testing.T) {
	s := State{Cursor: at(2, 3), SelectionStart: at(2, 1), SelectionEnd: at(3, 0)}
	got := s.ShiftLines(-1)
	if got.Cursor != at(1, 3) || got.SelectionStart != at(1, 1) || got.SelectionEnd != at(2, 0) {
		t.Errorf("unexpected shift: %v", got)
	}
	got = s.ShiftColumns(2, -2)
	if got.Cursor != at(2, 1) || got.SelectionStart != at(2, 0) || got.SelectionEnd != at(3, 0) {
		t.Errorf("unexpected column shift: %v", got)
	}
}

func TestFindWord(t *testing.T) {
	d := classed("int foo;", "kkkdiiip")
	tests := []struct {
		name       string
		from       Coordinates
		start, end Coordinates
	}{
		{"keyword middle", at(0, 1), at(0, 0), at(0, 3)},
		{"identifier start", at(0, 4), at(0, 4), at(0, 7)},
		{"identifier end", at(0, 6), at(0, 4), at(0, 7)},
		{"punctuation", at(0, 7), at(0, 7), at(0, 8)},
		{"past line end", at(0, 8), at(0, 8), at(0, 8)},
		{"past document end", at(4, 0), at(4, 0), at(4, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindWordStart(d, tt.from); got != tt.start {
				t.Errorf("FindWordStart(%v) = %v, want %v", tt.from, got, tt.start)
			}
			if got := FindWordEnd(d, tt.from); got != tt.end {
				t.Errorf("FindWordEnd(%v) = %v, want %v", tt.from, got, tt.end)
			}
		})
	}
}

func TestFindWordStopsAtBlanks(t *testing.T) {
	d := classed("a b", "ddd")
	if got := FindWordEnd(d, at(0, 0)); got != at(0, 1) {
		t.Errorf("expected end at blank, got %v", got)
	}
	if got := FindWordStart(d, at(0, 2)); got != at(0, 2) {
		t.Errorf("expected start after blank, got %v", got)
	}
}

func TestFindWordStringInterior(t *testing.T) {
	d := classed(`x="a b";`, "dpsssssp")
	// The string spans columns 2..6 including both quotes.
	if got := FindWordStart(d, at(0, 4)); got != at(0, 3) {
		t.Errorf("string start should exclude the opening quote, got %v", got)
	}
	if got := FindWordEnd(d, at(0, 4)); got != at(0, 6) {
		t.Errorf("string end should exclude the closing quote, got %v", got)
	}
	word, s, e := WordAt(d, at(0, 4))
	if word != "a b" || s != at(0, 3) || e != at(0, 6) {
		t.Errorf("WordAt = %q %v %v", word, s, e)
	}
}

func TestFindWordStringAtLineEdges(t *testing.T) {
	// A string occupying the whole line, starting at column 0.
	d := classed(`"ab"`, "ssss")

	// From column 0 the start scan does not run, so no inward step.
	if got := FindWordStart(d, at(0, 0)); got != at(0, 0) {
		t.Errorf("start from column 0 should stay at 0, got %v", got)
	}
	// From inside, the scan reaches column 0 and steps in by one.
	if got := FindWordStart(d, at(0, 2)); got != at(0, 1) {
		t.Errorf("expected start 1, got %v", got)
	}
	// The end scan stops at the line end and steps back by one.
	if got := FindWordEnd(d, at(0, 1)); got != at(0, 3) {
		t.Errorf("expected end 3, got %v", got)
	}
	// From the last glyph the end never leaves the line.
	got := FindWordEnd(d, at(0, 3))
	if got.Column < 0 || got.Column > d.ColumnCount(0) {
		t.Errorf("end %v out of line bounds", got)
	}
	if got != at(0, 3) {
		t.Errorf("expected end 3, got %v", got)
	}
}

func TestFindWordStringSingleGlyph(t *testing.T) {
	// A lone string glyph between other classes.
	d := classed(`a"b`, "dsd")
	start := FindWordStart(d, at(0, 1))
	end := FindWordEnd(d, at(0, 1))
	if start != at(0, 2) || end != at(0, 1) {
		t.Errorf("got start %v end %v", start, end)
	}
	// Selecting it in word mode still yields a normalized selection.
	s, e := Select(d, at(0, 1), at(0, 1), true)
	if s.After(e) {
		t.Errorf("selection not normalized: %v %v", s, e)
	}
}

func TestIsOnWordBoundary(t *testing.T) {
	d := classed("int foo", "kkkdiii")
	tests := []struct {
		c    Coordinates
		want bool
	}{
		{at(0, 0), true},
		{at(0, 1), false},
		{at(0, 3), true},
		{at(0, 4), true},
		{at(0, 5), false},
		{at(0, 7), true},
		{at(3, 1), true},
	}
	for _, tt := range tests {
		if got := IsOnWordBoundary(d, tt.c); got != tt.want {
			t.Errorf("IsOnWordBoundary(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestSelectWordMode(t *testing.T) {
	d := classed("int foo;", "kkkdiiip")
	s, e := Select(d, at(0, 5), at(0, 1), true)
	if s != at(0, 0) || e != at(0, 7) {
		t.Errorf("expected (0:0)-(0:7), got %v-%v", s, e)
	}
	s, e = Select(d, at(9, 9), at(0, 2), false)
	if s != at(0, 2) || e != at(0, 8) {
		t.Errorf("expected sanitized swap, got %v-%v", s, e)
	}
}

func newController(text string) *Controller {
	d := document.New()
	d.SetText(text)
	return NewController(d)
}

func TestControllerMoveLeftRightWrap(t *testing.T) {
	c := newController("ab\ncd")
	c.Collapse(at(0, 2))

	c.MoveRight(1, false, false)
	if c.Position() != at(1, 0) {
		t.Fatalf("expected wrap to (1:0), got %v", c.Position())
	}
	c.MoveLeft(1, false, false)
	if c.Position() != at(0, 2) {
		t.Fatalf("expected wrap back to (0:2), got %v", c.Position())
	}
	c.MoveLeft(5, false, false)
	if c.Position() != at(0, 0) {
		t.Errorf("expected clamp at (0:0), got %v", c.Position())
	}
	c.MoveRight(10, false, false)
	if c.Position() != at(1, 2) {
		t.Errorf("expected clamp at end, got %v", c.Position())
	}
	if c.HasSelection() {
		t.Error("moving without select should not select")
	}
}

func TestControllerShiftSelection(t *testing.T) {
	c := newController("hello world")
	c.Collapse(at(0, 2))

	c.MoveRight(3, true, false)
	start, end := c.Selection()
	if start != at(0, 2) || end != at(0, 5) {
		t.Fatalf("expected (0:2)-(0:5), got %v-%v", start, end)
	}

	// Shrinking from the moving end keeps the anchor.
	c.MoveLeft(1, true, false)
	start, end = c.Selection()
	if start != at(0, 2) || end != at(0, 4) {
		t.Errorf("expected (0:2)-(0:4), got %v-%v", start, end)
	}

	// Crossing the anchor flips the selection around it.
	c.MoveLeft(4, true, false)
	start, end = c.Selection()
	if start != at(0, 0) || end != at(0, 2) {
		t.Errorf("expected (0:0)-(0:2), got %v-%v", start, end)
	}
}

func TestControllerVerticalKeepsColumn(t *testing.T) {
	c := newController("long line\nx\nanother")
	c.Collapse(at(0, 6))

	c.MoveDown(1, false)
	if c.Position() != at(1, 1) {
		t.Errorf("expected sanitized (1:1), got %v", c.Position())
	}
	c.MoveDown(1, false)
	if c.Position() != at(2, 6) {
		t.Errorf("expected column restored to 6, got %v", c.Position())
	}
	c.MoveDown(5, false)
	if c.State().Cursor.Line != 2 {
		t.Errorf("expected clamp to last line, got %v", c.State().Cursor)
	}
	c.MoveUp(9, true)
	start, end := c.Selection()
	if start != at(0, 6) || end != at(2, 6) {
		t.Errorf("expected (0:6)-(2:6), got %v-%v", start, end)
	}
}

func TestControllerHomeToggles(t *testing.T) {
	c := newController("    code")
	c.Collapse(at(0, 6))

	c.MoveHome(false)
	if c.Position() != at(0, 4) {
		t.Fatalf("expected first non-blank (0:4), got %v", c.Position())
	}
	c.MoveHome(false)
	if c.Position() != at(0, 0) {
		t.Fatalf("expected column 0, got %v", c.Position())
	}
	c.MoveHome(false)
	if c.Position() != at(0, 4) {
		t.Errorf("expected toggle back to (0:4), got %v", c.Position())
	}
	c.MoveEnd(true)
	start, end := c.Selection()
	if start != at(0, 4) || end != at(0, 8) {
		t.Errorf("expected (0:4)-(0:8), got %v-%v", start, end)
	}
}

func TestControllerTopBottom(t *testing.T) {
	c := newController("a\nbb\nccc")
	c.Collapse(at(1, 1))

	c.MoveBottom(true)
	start, end := c.Selection()
	if start != at(1, 1) || end != at(2, 3) {
		t.Errorf("expected (1:1)-(2:3), got %v-%v", start, end)
	}
	c.MoveTop(false)
	if c.Position() != at(0, 0) || c.HasSelection() {
		t.Errorf("expected collapsed at top, got %v", c.State())
	}
}

func TestControllerPaging(t *testing.T) {
	c := newController("0\n1\n2\n3\n4\n5\n6\n7\n8\n9")
	c.PageDown(5, false)
	if c.Position().Line != 3 {
		t.Errorf("expected line 3, got %v", c.Position())
	}
	c.PageUp(5, false)
	if c.Position().Line != 0 {
		t.Errorf("expected line 0, got %v", c.Position())
	}
}

func TestControllerWordMoves(t *testing.T) {
	d := classed("int foo;", "kkkdiiip")
	c := NewController(d)

	c.MoveRight(1, false, true)
	if c.Position() != at(0, 3) {
		t.Errorf("expected end of keyword, got %v", c.Position())
	}
	c.Collapse(at(0, 7))
	c.MoveLeft(1, false, true)
	if c.Position() != at(0, 4) {
		t.Errorf("expected start of identifier, got %v", c.Position())
	}
}

func TestControllerSelectAllAndWord(t *testing.T) {
	d := classed("int foo;", "kkkdiiip")
	c := NewController(d)

	c.SelectAll()
	start, end := c.Selection()
	if start != at(0, 0) || end != at(0, 8) {
		t.Errorf("expected whole document, got %v-%v", start, end)
	}

	c.Collapse(at(0, 5))
	c.SelectWordUnderCursor()
	start, end = c.Selection()
	if start != at(0, 4) || end != at(0, 7) {
		t.Errorf("expected identifier, got %v-%v", start, end)
	}
}
