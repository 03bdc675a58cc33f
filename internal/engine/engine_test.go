package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/glyphedit/internal/engine/document"
	"github.com/dshills/glyphedit/internal/engine/history"
	"github.com/dshills/glyphedit/internal/engine/lang"
	"github.com/dshills/glyphedit/internal/logging"
)

func init() {
	document.Debug = true
}

func newEditor(text string, opts ...Option) *Editor {
	opts = append([]Option{WithLogger(logging.Discard()), WithContent(text)}, opts...)
	return New(opts...)
}

type snapshot struct {
	text  string
	state State
}

func snap(e *Editor) snapshot {
	return snapshot{text: e.Text(""), state: e.State()}
}

func expectText(t *testing.T, e *Editor, want string) {
	t.Helper()
	if got := e.Text(""); got != want {
		t.Errorf("expected text %q, got %q", want, got)
	}
}

// ============================================================================
// Basic Operations
// ============================================================================

func TestNew(t *testing.T) {
	e := New(WithLogger(logging.Discard()))
	if e.LineCount() != 1 {
		t.Errorf("expected one line, got %d", e.LineCount())
	}
	if e.Text("") != "" {
		t.Errorf("expected empty text, got %q", e.Text(""))
	}
	if e.Language().Name != lang.Text().Name {
		t.Errorf("expected plain text language, got %q", e.Language().Name)
	}
	if e.CanUndo() || e.CanRedo() {
		t.Error("new editor should have no history")
	}
}

func TestNewWithContent(t *testing.T) {
	e := newEditor("Hello\nWorld")
	expectText(t, e, "Hello\nWorld")
	if e.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", e.LineCount())
	}
	if e.ColumnCount(1) != 5 {
		t.Errorf("expected 5 columns, got %d", e.ColumnCount(1))
	}
}

func TestNewFromReader(t *testing.T) {
	e, err := NewFromReader(strings.NewReader("a\nb"), WithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("NewFromReader failed: %v", err)
	}
	expectText(t, e, "a\nb")
}

func TestRoundTrip(t *testing.T) {
	for _, text := range []string{"", "a", "a\nb", "\n\n", "tab\there", "日本\r\nx", "bad\xffbyte"} {
		e := newEditor("")
		e.SetText(text)
		if got := e.Text("\n"); got != text {
			t.Errorf("round trip of %q gave %q", text, got)
		}
	}
	e := newEditor("a\nb\nc")
	if got := e.Text("\r\n"); got != "a\r\nb\r\nc" {
		t.Errorf("expected CRLF join, got %q", got)
	}
}

func TestSetTextResetsHistory(t *testing.T) {
	e := newEditor("abc")
	e.SetCursorPosition(At(0, 3))
	e.EnterCharacter('d')
	if !e.CanUndo() {
		t.Fatal("expected undo after typing")
	}
	e.SetText("xyz")
	if e.CanUndo() {
		t.Error("SetText should clear the undo log")
	}
	if e.CursorPosition() != At(0, 0) {
		t.Errorf("expected cursor at origin, got %v", e.CursorPosition())
	}
}

func TestInsertTextIsNotRecorded(t *testing.T) {
	e := newEditor("ad")
	e.SetCursorPosition(At(0, 1))
	e.InsertText("b\nc")
	expectText(t, e, "ab\ncd")
	if e.CursorPosition() != At(1, 1) {
		t.Errorf("expected cursor (1:1), got %v", e.CursorPosition())
	}
	if e.CanUndo() {
		t.Error("InsertText should not record undo")
	}
}

func TestAppendText(t *testing.T) {
	e := newEditor("log:")
	e.AppendText(" ok\nnext", lang.Comment)
	expectText(t, e, "log: ok\nnext")
	if g := e.Glyphs(1)[0]; g.Class != lang.Comment {
		t.Errorf("expected appended glyph to keep its class, got %v", g.Class)
	}
}

// ============================================================================
// Scenarios
// ============================================================================

func TestDeleteSelectionAcrossLines(t *testing.T) {
	e := newEditor("ab\ncd")
	e.SetSelection(At(0, 1), At(1, 1), false)
	e.Delete()
	expectText(t, e, "ad")
	if e.LineCount() != 1 {
		t.Errorf("expected one line, got %d", e.LineCount())
	}
	if e.CursorPosition() != At(0, 1) {
		t.Errorf("expected cursor (0:1), got %v", e.CursorPosition())
	}
}

func TestAutoClosePair(t *testing.T) {
	e := newEditor("", WithLanguage(lang.C().WithPairs(lang.BracketPairs...)))
	e.EnterCharacter('(')
	expectText(t, e, "()")
	if e.CursorPosition() != At(0, 1) {
		t.Errorf("expected cursor between the pair, got %v", e.CursorPosition())
	}

	if err := e.Undo(1); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	expectText(t, e, "")
}

func TestAutoClosePairWrapsSelection(t *testing.T) {
	e := newEditor("x = a + b", WithLanguage(lang.C().WithPairs(lang.BracketPairs...)))
	e.SetSelection(At(0, 4), At(0, 9), false)
	e.EnterCharacter('(')
	expectText(t, e, "x = (a + b)")
	if e.CursorPosition() != At(0, 11) {
		t.Errorf("expected cursor after the pair, got %v", e.CursorPosition())
	}
}

func TestCommentBlankLine(t *testing.T) {
	e := newEditor("", WithLanguage(lang.Lua()))
	if e.Language().LineComment != "--" {
		t.Fatalf("expected Lua comment head, got %q", e.Language().LineComment)
	}
	e.Comment()
	expectText(t, e, "--")
	r := e.log.Last()
	if r == nil || r.Kind != history.Comment || len(r.Ops) != 1 || r.Ops[0] != history.CommentHead {
		t.Fatalf("expected a head-only comment record, got %+v", r)
	}
	if e.CursorPosition() != At(0, 2) {
		t.Errorf("expected cursor after the head, got %v", e.CursorPosition())
	}

	e.Uncomment()
	expectText(t, e, "")
}

func TestCommentAddsSpace(t *testing.T) {
	e := newEditor("x = 1\n\ny = 2", WithLanguage(lang.Lua()))
	e.SetSelection(At(0, 0), At(2, 5), false)
	e.Comment()
	expectText(t, e, "-- x = 1\n--\n-- y = 2")
	if n := e.CommentLines(); n != 3 {
		t.Errorf("expected 3 commented lines, got %d", n)
	}

	e.Uncomment()
	expectText(t, e, "x = 1\n\ny = 2")
}

func TestIndentUnindent(t *testing.T) {
	e := newEditor("a\nb", WithTabSize(4))
	e.SetSelection(At(0, 0), At(1, 1), false)
	e.Indent(true)
	expectText(t, e, "    a\n    b")

	e.Unindent()
	expectText(t, e, "a\nb")
}

func TestIndentWithTab(t *testing.T) {
	e := newEditor("a\n\nb", WithIndentWithTab(true))
	e.SetSelection(At(0, 0), At(2, 1), false)
	e.Indent(true)
	expectText(t, e, "\ta\n\n\tb")
}

func TestIndentByKeyNeedsMultiLineSelection(t *testing.T) {
	e := newEditor("a")
	e.Indent(true)
	expectText(t, e, "a")

	e.Indent(false)
	expectText(t, e, "    a")
	if e.CursorPosition() != At(0, 4) {
		t.Errorf("expected cursor shifted by the indent, got %v", e.CursorPosition())
	}
}

func TestUnindentWithoutIndentRecordsNothing(t *testing.T) {
	e := newEditor("a\nb")
	e.SelectAll()
	e.Unindent()
	if e.CanUndo() {
		t.Error("unindent that removed nothing should not be recorded")
	}
}

func TestIndentEmptyLinesRecordsNothing(t *testing.T) {
	e := newEditor("")
	e.Indent(false)
	if e.CanUndo() || e.IsDirty() {
		t.Errorf("indent of an empty line: canUndo=%v dirty=%v", e.CanUndo(), e.IsDirty())
	}

	e = newEditor("\n\n")
	e.SelectAll()
	e.Indent(true)
	if e.CanUndo() {
		t.Error("indent of empty lines should not be recorded")
	}
	expectText(t, e, "\n\n")
}

func TestUnindentPartialSpaces(t *testing.T) {
	e := newEditor("      a\n  b\n\tc", WithTabSize(4))
	e.SelectAll()
	e.Unindent()
	expectText(t, e, "  a\nb\nc")

	if err := e.Undo(1); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	expectText(t, e, "      a\n  b\n\tc")
}

func TestTypingCoalesces(t *testing.T) {
	e := newEditor("")
	e.EnterCharacter('a')
	e.EnterCharacter('b')
	if e.UndoLen() != 2 {
		t.Fatalf("expected two records, got %d", e.UndoLen())
	}
	if err := e.Undo(1); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	expectText(t, e, "")
	if e.CanUndo() {
		t.Error("one undo should have removed the whole word")
	}

	if err := e.Redo(1); err != nil {
		t.Fatalf("redo failed: %v", err)
	}
	expectText(t, e, "ab")
}

func TestTypingWithoutCoalescing(t *testing.T) {
	e := newEditor("", WithMergeUndo(false))
	e.EnterCharacter('a')
	e.EnterCharacter('b')
	if err := e.Undo(1); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	expectText(t, e, "a")
}

func TestCoalescingStopsAtClassChange(t *testing.T) {
	e := newEditor("")
	e.InputText("ab 12")
	if err := e.Undo(1); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	expectText(t, e, "ab ")
}

func TestMoveLineDownUpRestoresBreakpoints(t *testing.T) {
	e := newEditor("a\nb\nc")
	e.SetBreakpoints(map[int]bool{1: true})
	e.SetErrorMarkers(map[int]ErrorMarker{2: {Message: "bad"}})
	e.SetCursorPosition(At(1, 0))

	e.MoveLineDown()
	expectText(t, e, "a\nc\nb")
	if e.CursorPosition() != At(2, 0) {
		t.Errorf("expected cursor to follow the line, got %v", e.CursorPosition())
	}
	if bps := e.Breakpoints(); !bps[2] || len(bps) != 1 {
		t.Errorf("expected breakpoint on line 2, got %v", bps)
	}
	if _, ok := e.ErrorMarkers()[1]; !ok {
		t.Errorf("expected error marker on line 1, got %v", e.ErrorMarkers())
	}

	e.MoveLineUp()
	expectText(t, e, "a\nb\nc")
	if bps := e.Breakpoints(); !bps[1] || len(bps) != 1 {
		t.Errorf("expected breakpoint back on line 1, got %v", bps)
	}
	if _, ok := e.ErrorMarkers()[2]; !ok {
		t.Errorf("expected error marker back on line 2, got %v", e.ErrorMarkers())
	}
}

func TestMoveLineAtEdges(t *testing.T) {
	e := newEditor("a\nb")
	e.MoveLineUp()
	e.SetCursorPosition(At(1, 0))
	e.MoveLineDown()
	expectText(t, e, "a\nb")
	if e.CanUndo() {
		t.Error("moves at the edges should not be recorded")
	}
}

// ============================================================================
// Undo/Redo
// ============================================================================

func TestUndoRedoInverse(t *testing.T) {
	bracketC := lang.C().WithPairs(lang.BracketPairs...)

	tests := []struct {
		name  string
		text  string
		opts  []Option
		setup func(e *Editor)
		run   func(e *Editor)
	}{
		{"type", "abc", nil, func(e *Editor) { e.SetCursorPosition(At(0, 1)) }, func(e *Editor) { e.EnterCharacter('x') }},
		{"type over selection", "abcdef", nil, func(e *Editor) { e.SetSelection(At(0, 1), At(0, 4), false) }, func(e *Editor) { e.EnterCharacter('x') }},
		{"overwrite", "abc", []Option{WithOverwrite()}, func(e *Editor) { e.SetCursorPosition(At(0, 1)) }, func(e *Editor) { e.EnterCharacter('x') }},
		{"newline", "ab", nil, func(e *Editor) { e.SetCursorPosition(At(0, 1)) }, func(e *Editor) { e.EnterCharacter('\n') }},
		{"newline with indent", "  ab", nil, func(e *Editor) { e.SetCursorPosition(At(0, 3)) }, func(e *Editor) { e.EnterCharacter('\n') }},
		{"pair", "", []Option{WithLanguage(bracketC)}, nil, func(e *Editor) { e.EnterCharacter('[') }},
		{"pair around selection", "a\nb", []Option{WithLanguage(bracketC)}, func(e *Editor) { e.SelectAll() }, func(e *Editor) { e.EnterCharacter('{') }},
		{"paste", "ab", nil, func(e *Editor) { e.SetCursorPosition(At(0, 1)) }, func(e *Editor) { e.PasteText("x\ny\nz") }},
		{"paste over selection", "hello world", nil, func(e *Editor) { e.SetSelection(At(0, 6), At(0, 11), false) }, func(e *Editor) { e.PasteText("there") }},
		{"cut", "ab\ncd", nil, func(e *Editor) { e.SetSelection(At(0, 1), At(1, 1), false) }, func(e *Editor) { e.Cut() }},
		{"delete char", "abc", nil, func(e *Editor) { e.SetCursorPosition(At(0, 1)) }, func(e *Editor) { e.Delete() }},
		{"delete join", "ab\ncd", nil, func(e *Editor) { e.SetCursorPosition(At(0, 2)) }, func(e *Editor) { e.Delete() }},
		{"delete selection", "ab\ncd\nef", nil, func(e *Editor) { e.SetSelection(At(0, 1), At(2, 1), false) }, func(e *Editor) { e.Delete() }},
		{"backspace char", "日本語", nil, func(e *Editor) { e.SetCursorPosition(At(0, 2)) }, func(e *Editor) { e.BackSpace() }},
		{"backspace join", "ab\ncd", nil, func(e *Editor) { e.SetCursorPosition(At(1, 0)) }, func(e *Editor) { e.BackSpace() }},
		{"backspace selection", "abcd", nil, func(e *Editor) { e.SetSelection(At(0, 1), At(0, 3), false) }, func(e *Editor) { e.BackSpace() }},
		{"indent", "a\n\nb", nil, func(e *Editor) { e.SetSelection(At(0, 0), At(2, 1), false) }, func(e *Editor) { e.Indent(true) }},
		{"indent single line", "ab", nil, func(e *Editor) { e.SetSelection(At(0, 0), At(0, 1), false) }, func(e *Editor) { e.Indent(false) }},
		{"unindent", "    a\n  b", nil, func(e *Editor) { e.SetSelection(At(0, 0), At(1, 3), false) }, func(e *Editor) { e.Unindent() }},
		{"unindent single line", "\tab", nil, func(e *Editor) { e.SetCursorPosition(At(0, 2)) }, func(e *Editor) { e.Unindent() }},
		{"comment", "x\n\ny", []Option{WithLanguage(lang.Lua())}, func(e *Editor) { e.SelectAll() }, func(e *Editor) { e.Comment() }},
		{"uncomment", "-- x\n--\n--y\nz", []Option{WithLanguage(lang.Lua())}, func(e *Editor) { e.SelectAll() }, func(e *Editor) { e.Uncomment() }},
		{"upper", "abc def", nil, func(e *Editor) { e.SetSelection(At(0, 0), At(0, 3), false) }, func(e *Editor) { e.ToUpperCase() }},
		{"lower", "ABC\nDEF", nil, func(e *Editor) { e.SelectAll() }, func(e *Editor) { e.ToLowerCase() }},
		{"move up", "a\nb\nc", nil, func(e *Editor) { e.SetSelection(At(1, 0), At(2, 1), false) }, func(e *Editor) { e.MoveLineUp() }},
		{"move down", "a\nb\nc", nil, func(e *Editor) { e.SetCursorPosition(At(0, 1)) }, func(e *Editor) { e.MoveLineDown() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEditor(tt.text, tt.opts...)
			if tt.setup != nil {
				tt.setup(e)
			}
			before := snap(e)

			tt.run(e)
			after := snap(e)
			if after.text == before.text {
				t.Fatalf("command did not change the text %q", before.text)
			}
			if e.UndoLen() != 1 {
				t.Fatalf("expected one record, got %d", e.UndoLen())
			}

			if err := e.Undo(1); err != nil {
				t.Fatalf("undo failed: %v", err)
			}
			if got := snap(e); got != before {
				t.Errorf("undo: expected %+v, got %+v", before, got)
			}

			if err := e.Redo(1); err != nil {
				t.Fatalf("redo failed: %v", err)
			}
			if got := snap(e); got != after {
				t.Errorf("redo: expected %+v, got %+v", after, got)
			}
		})
	}
}

func TestUndoErrors(t *testing.T) {
	e := newEditor("a")
	if err := e.Undo(1); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
	if err := e.Redo(1); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("expected ErrNothingToRedo, got %v", err)
	}
}

func TestUndoMultipleSteps(t *testing.T) {
	e := newEditor("", WithMergeUndo(false))
	e.InputText("abc")
	if err := e.Undo(2); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	expectText(t, e, "a")
	if err := e.Redo(5); err != nil {
		t.Fatalf("redo failed: %v", err)
	}
	expectText(t, e, "abc")
}

func TestNewEditTruncatesRedo(t *testing.T) {
	e := newEditor("", WithMergeUndo(false))
	e.InputText("ab")
	_ = e.Undo(1)
	e.EnterCharacter('x')
	if e.CanRedo() {
		t.Error("a new edit should discard the redo tail")
	}
	expectText(t, e, "ax")
}

func TestDoubleEnterTakesBackIndent(t *testing.T) {
	e := newEditor("    foo")
	e.SetCursorPosition(At(0, 7))
	e.EnterCharacter('\n')
	expectText(t, e, "    foo\n    ")
	e.EnterCharacter('\n')
	expectText(t, e, "    foo\n\n    ")
	if e.CursorPosition() != At(2, 4) {
		t.Errorf("expected cursor (2:4), got %v", e.CursorPosition())
	}

	if err := e.Undo(1); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	expectText(t, e, "    foo\n    ")
	if e.CursorPosition() != At(1, 4) {
		t.Errorf("expected cursor (1:4), got %v", e.CursorPosition())
	}
}

func TestAutoIndentWithTabs(t *testing.T) {
	e := newEditor("\t  x", WithIndentWithTab(true), WithTabSize(4))
	e.SetCursorPosition(At(0, 4))
	e.EnterCharacter('\n')
	expectText(t, e, "\t  x\n\t  ")
}

// ============================================================================
// Save tracking
// ============================================================================

func TestDirtyAndLineStates(t *testing.T) {
	e := newEditor("a\nb")
	if e.IsDirty() {
		t.Fatal("fresh editor should be clean")
	}
	e.SetCursorPosition(At(1, 1))
	e.EnterCharacter('x')
	if !e.IsDirty() {
		t.Error("edit should make the editor dirty")
	}
	if st := e.Document().Line(1).State; st != document.Edited {
		t.Errorf("expected line 1 Edited, got %v", st)
	}
	if st := e.Document().Line(0).State; st != document.Unchanged {
		t.Errorf("expected line 0 Unchanged, got %v", st)
	}

	e.SetChangesSaved()
	if e.IsDirty() || !e.IsChangesSaved() {
		t.Error("expected clean after save")
	}
	if st := e.Document().Line(1).State; st != document.EditedSaved {
		t.Errorf("expected line 1 EditedSaved, got %v", st)
	}

	_ = e.Undo(1)
	if st := e.Document().Line(1).State; st != document.Edited {
		t.Errorf("expected line 1 Edited after undo, got %v", st)
	}
	_ = e.Redo(1)
	if st := e.Document().Line(1).State; st != document.EditedReverted {
		t.Errorf("expected line 1 EditedReverted back at the save point, got %v", st)
	}

	e.SetChangesCleared()
	if st := e.Document().Line(1).State; st != document.Unchanged {
		t.Errorf("expected line 1 Unchanged after clear, got %v", st)
	}
}

// ============================================================================
// Read-only, clipboard and callbacks
// ============================================================================

func TestReadOnly(t *testing.T) {
	e := newEditor("abc", WithReadOnly())
	e.SelectAll()
	e.Delete()
	e.BackSpace()
	e.EnterCharacter('x')
	e.PasteText("y")
	e.Indent(false)
	e.ToUpperCase()
	e.MoveLineDown()
	expectText(t, e, "abc")

	e.Cut()
	expectText(t, e, "abc")
	if got := e.clipboard.Text(); got != "abc" {
		t.Errorf("read-only cut should copy, clipboard has %q", got)
	}

	if err := e.Undo(1); !errors.Is(err, ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
}

func TestCopyWholeLine(t *testing.T) {
	clip := &MemoryClipboard{}
	e := newEditor("one\ntwo", WithClipboard(clip))
	e.SetCursorPosition(At(1, 1))
	e.Copy()
	if clip.Text() != "two" {
		t.Errorf("expected the cursor line, got %q", clip.Text())
	}
}

func TestCutPaste(t *testing.T) {
	e := newEditor("hello world")
	e.SetSelection(At(0, 0), At(0, 6), false)
	e.Cut()
	expectText(t, e, "world")
	e.SetCursorPosition(At(0, 5))
	e.EnterCharacter(' ')
	e.Paste()
	expectText(t, e, "world hello ")
}

func TestCallbacks(t *testing.T) {
	e := newEditor("ab")
	var modified int
	var changes [][2]Coordinates
	var directions []int
	e.OnModified(func() { modified++ })
	e.OnTextChanged(func(start, end Coordinates, direction int) {
		changes = append(changes, [2]Coordinates{start, end})
		directions = append(directions, direction)
	})

	e.SetCursorPosition(At(0, 2))
	e.EnterCharacter('c')
	_ = e.Undo(1)
	_ = e.Redo(1)

	if modified != 3 {
		t.Errorf("expected 3 modifications, got %d", modified)
	}
	if len(directions) != 3 || directions[0] != 0 || directions[1] != -1 || directions[2] != 1 {
		t.Errorf("unexpected directions %v", directions)
	}
	if changes[0][0] != At(0, 2) {
		t.Errorf("unexpected change range %v", changes[0])
	}
}

func TestClicks(t *testing.T) {
	e := newEditor("foo bar", WithLanguage(lang.C()))
	e.Flush()

	var head, line []int
	var doubles []bool
	e.OnHeadClicked(func(l int, double bool) { head = append(head, l) })
	e.OnLineClicked(func(l int, double bool) {
		line = append(line, l)
		doubles = append(doubles, double)
	})

	e.ClickHead(0, true)
	if len(head) != 1 || head[0] != 0 {
		t.Errorf("expected gutter click on line 0, got %v", head)
	}

	e.ClickText(At(0, 5), true, false)
	if got := e.SelectionText(""); got != "bar" {
		t.Errorf("double click should select the word, got %q", got)
	}
	if e.CursorPosition() != At(0, 7) {
		t.Errorf("expected cursor at the end of the word, got %v", e.CursorPosition())
	}
	if len(line) != 1 || !doubles[0] {
		t.Errorf("expected one double click, got %v %v", line, doubles)
	}

	e.ClickText(At(0, 1), false, false)
	e.DragTo(At(0, 5), false)
	if got := e.SelectionText(""); got != "oo b" {
		t.Errorf("drag should select from the click, got %q", got)
	}
}

// ============================================================================
// Keys
// ============================================================================

func TestHandleKey(t *testing.T) {
	e := newEditor("ab\ncd")
	e.SetCursorPosition(At(0, 2))

	if !e.HandleKey(KeyEnter, 0) {
		t.Fatal("enter should be handled")
	}
	expectText(t, e, "ab\n\ncd")

	e.HandleKey(KeyBackspace, 0)
	expectText(t, e, "ab\ncd")

	e.HandleKey(KeyDown, ModShift)
	if got := e.SelectionText(""); got != "\ncd" {
		t.Errorf("shift+down should select, got %q", got)
	}

	e.HandleKey(KeyU, ModCtrl|ModShift)
	expectText(t, e, "ab\nCD")

	e.HandleKey(KeyZ, ModCtrl)
	expectText(t, e, "ab\ncd")
	e.HandleKey(KeyY, ModCtrl)
	expectText(t, e, "ab\nCD")

	if e.HandleKey(KeyNone, 0) {
		t.Error("unbound key should not be handled")
	}
}

func TestHandleKeyVeto(t *testing.T) {
	e := newEditor("a")
	var seen []Key
	e.OnKeyPressed(func(key Key, mods Mod) bool {
		seen = append(seen, key)
		return key == KeyEnter
	})
	if !e.HandleKey(KeyEnter, 0) {
		t.Error("vetoed key counts as handled")
	}
	expectText(t, e, "a")

	e.HandleKey(KeyEnd, 0)
	e.HandleKey(KeyEnter, ModAlt)
	if len(seen) != 3 {
		t.Errorf("expected the handler to see every key, got %v", seen)
	}
}

func TestHandleKeyTab(t *testing.T) {
	e := newEditor("a\nb", WithIndentWithTab(true))
	e.SelectAll()
	e.HandleKey(KeyTab, 0)
	expectText(t, e, "\ta\n\tb")
	e.HandleKey(KeyTab, ModShift)
	expectText(t, e, "a\nb")

	e.SetCursorPosition(At(0, 0))
	e.HandleKey(KeyTab, 0)
	expectText(t, e, "\ta\nb")
}

func TestInputText(t *testing.T) {
	e := newEditor("", WithTabSize(2))
	e.InputText("ab\tc\rd")
	expectText(t, e, "ab  c\nd")

	e = newEditor("")
	e.InputText("x\r\ny\n")
	expectText(t, e, "x\ny\n")
}

func TestParseKey(t *testing.T) {
	k, ok := ParseKey("pagedown")
	if !ok || k != KeyPageDown {
		t.Errorf("expected KeyPageDown, got %v %v", k, ok)
	}
	if _, ok := ParseKey("hyper"); ok {
		t.Error("unknown key should not parse")
	}
	if KeyBackspace.String() != "backspace" {
		t.Errorf("unexpected name %q", KeyBackspace.String())
	}
}

// ============================================================================
// Colorizing and queries
// ============================================================================

func TestColorizeThroughTicks(t *testing.T) {
	var lines []string
	for range 25 {
		lines = append(lines, "int x;")
	}
	e := newEditor(strings.Join(lines, "\n"), WithLanguage(lang.C()), WithColorizeBatch(10))
	var calls int
	e.OnColorized(func(multiline bool) { calls++ })

	ticks := 0
	for e.Tick() {
		ticks++
	}
	if ticks < 3 {
		t.Errorf("expected at least 3 ticks for 25 lines, got %d", ticks)
	}
	if calls == 0 {
		t.Error("expected colorized callbacks")
	}
	if g := e.Glyphs(24)[0]; g.Class != lang.Keyword {
		t.Errorf("expected keyword on the last line, got %v", g.Class)
	}
}

func TestSetLanguageRecolors(t *testing.T) {
	e := newEditor("int x;")
	e.Flush()
	if g := e.Glyphs(0)[0]; g.Class == lang.Keyword {
		t.Fatal("plain text should not know keywords")
	}
	e.SetLanguage(lang.C())
	e.Flush()
	if g := e.Glyphs(0)[0]; g.Class != lang.Keyword {
		t.Errorf("expected keyword after switching language, got %v", g.Class)
	}
}

func TestSetLanguageDropsBlockComments(t *testing.T) {
	e := newEditor("/* a */ b", WithLanguage(lang.C()))
	e.Flush()
	if g := e.Glyphs(0)[3]; g.EffectiveClass() != lang.MultiLineComment {
		t.Fatalf("expected block comment in C, got %v", g.EffectiveClass())
	}
	e.SetLanguage(lang.JSON())
	e.Flush()
	for i, g := range e.Glyphs(0) {
		if g.MultiLineComment {
			t.Errorf("glyph %d still flagged as block comment", i)
		}
	}
}

func TestTokensAndWords(t *testing.T) {
	e := newEditor("int x; // note", WithLanguage(lang.C()))
	e.Flush()

	if n := e.TotalTokens(); n != 4 {
		t.Errorf("expected 4 tokens, got %d", n)
	}

	words := e.WordsAtLine(0, false, false, false)
	want := []Word{{"int", lang.Keyword}, {"x", lang.Identifier}, {";", lang.Punctuation}}
	if len(words) != len(want) {
		t.Fatalf("expected %v, got %v", want, words)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("word %d: expected %v, got %v", i, want[i], words[i])
		}
	}

	if got := e.TextLines(false, true)[0]; got != "int x; " {
		t.Errorf("expected comment stripped, got %q", got)
	}
	if got := e.TextLines(true, true)[0]; got != "int x; // note" {
		t.Errorf("expected full line, got %q", got)
	}
}

func TestWordAndChar(t *testing.T) {
	e := newEditor("alpha beta", WithLanguage(lang.C()))
	e.Flush()
	e.SetCursorPosition(At(0, 7))
	word, start, end := e.WordUnderCursor()
	if word != "beta" || start != At(0, 6) || end != At(0, 10) {
		t.Errorf("unexpected word %q %v-%v", word, start, end)
	}
	if r := e.CharUnderCursor(); r != 'b' {
		t.Errorf("expected 'b', got %q", r)
	}
	e.SetCursorPosition(At(0, 0))
	if r := e.CharUnderCursor(); r != 0 {
		t.Errorf("expected no char at line start, got %q", r)
	}
}

func TestSelectionLineCounts(t *testing.T) {
	e := newEditor("a\n\nb\nc")
	if e.SelectionLines() != 0 || e.NonEmptySelectionLines() != 0 {
		t.Error("no selection should count zero lines")
	}
	e.SetSelection(At(0, 0), At(2, 1), false)
	if n := e.SelectionLines(); n != 3 {
		t.Errorf("expected 3 selection lines, got %d", n)
	}
	if n := e.NonEmptySelectionLines(); n != 2 {
		t.Errorf("expected 2 non-empty lines, got %d", n)
	}
}

func TestDecorations(t *testing.T) {
	e := newEditor("a\nb\nc")
	e.SetProgramPointer(2)
	if e.ProgramPointer() != 2 {
		t.Errorf("expected program pointer 2, got %d", e.ProgramPointer())
	}
	e.SetProgramPointer(-5)
	if e.ProgramPointer() != -1 {
		t.Errorf("expected cleared program pointer, got %d", e.ProgramPointer())
	}

	e.SetBreakpoints(map[int]bool{2: false})
	e.SetCursorPosition(At(0, 1))
	e.EnterCharacter('\n')
	if bps := e.Breakpoints(); len(bps) != 1 {
		t.Errorf("expected one breakpoint, got %v", bps)
	} else if enabled, ok := bps[3]; !ok || enabled {
		t.Errorf("expected disabled breakpoint moved to line 3, got %v", bps)
	}
}

func TestSyncTo(t *testing.T) {
	src := newEditor("one\ntwo")
	src.SetBreakpoints(map[int]bool{1: true})
	src.SetCursorPosition(At(1, 3))
	src.EnterCharacter('!')

	dst := newEditor("other", WithTabSize(8))
	src.SyncTo(dst)
	expectText(t, dst, "one\ntwo!")
	if dst.CursorPosition() != At(1, 4) {
		t.Errorf("expected synced cursor, got %v", dst.CursorPosition())
	}
	if !dst.Breakpoints()[1] {
		t.Error("expected synced breakpoints")
	}
	if dst.TabSize() != 8 {
		t.Errorf("sync should keep the target tab size, got %d", dst.TabSize())
	}

	if err := dst.Undo(1); err != nil {
		t.Fatalf("undo on the copy failed: %v", err)
	}
	expectText(t, dst, "one\ntwo")
	expectText(t, src, "one\ntwo!")
}

func TestSanitizedCoordinates(t *testing.T) {
	e := newEditor("ab\ncd")
	e.SetCursorPosition(At(9, 0))
	if e.CursorPosition() != At(1, 2) {
		t.Errorf("expected snap to the end, got %v", e.CursorPosition())
	}
	e.SetCursorPosition(At(0, 99))
	e.EnterCharacter('x')
	expectText(t, e, "abx\ncd")
}
