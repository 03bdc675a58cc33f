package engine

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/dshills/glyphedit/internal/engine/colorize"
	"github.com/dshills/glyphedit/internal/engine/cursor"
	"github.com/dshills/glyphedit/internal/engine/document"
	"github.com/dshills/glyphedit/internal/engine/history"
	"github.com/dshills/glyphedit/internal/engine/lang"
	"github.com/dshills/glyphedit/internal/logging"
)

// Re-export commonly used types for convenience.
type (
	// Coordinates is a (line, column) position; the column counts glyphs.
	Coordinates = document.Coordinates

	// State is the cursor and selection.
	State = cursor.State

	// ErrorMarker is a diagnostic attached to a line.
	ErrorMarker = document.ErrorMarker

	// Record is one entry of the undo log.
	Record = history.Record
)

// At returns the coordinates (line, column).
func At(line, column int) Coordinates {
	return document.At(line, column)
}

// Editor is the editing core behind one text widget. It owns a document,
// its cursor, the undo log and the colorizer, and exposes the commands a
// host binds to keys and menus.
//
// An Editor is driven by a single host loop and is not safe for concurrent
// use. Colorization is incremental: call Tick once per frame.
type Editor struct {
	// Core components
	doc       *document.Document
	cur       *cursor.Controller
	log       *history.Log
	colorizer *colorize.Colorizer
	matcher   *lang.Matcher
	logger    *log.Logger

	// Configuration
	tabSize       int
	indentWithTab bool
	readOnly      bool
	overwrite     bool
	mergeUndo     bool
	undoLimit     int
	pageSize      int
	batch         int
	commentDelay  int
	language      *lang.Definition
	clipboard     Clipboard

	// lastAutoIndent is the newline record whose indent a second Enter may
	// take back.
	lastAutoIndent *history.Record

	// dragAnchor is where the last click landed.
	dragAnchor Coordinates

	handlers handlers

	// Initialization
	initContent string
}

// New creates an Editor with the given options.
func New(opts ...Option) *Editor {
	e := &Editor{
		tabSize:      document.DefaultTabSize,
		mergeUndo:    true,
		undoLimit:    DefaultUndoLimit,
		pageSize:     DefaultPageSize,
		batch:        colorize.DefaultBatch,
		commentDelay: colorize.DefaultCommentDelay,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = logging.Default()
	}
	if e.language == nil {
		e.language = lang.Text()
	}
	if e.clipboard == nil {
		e.clipboard = &MemoryClipboard{}
	}

	e.doc = document.New()
	e.doc.SetTabSize(e.tabSize)
	e.cur = cursor.NewController(e.doc)

	e.log = history.NewLog(e.undoLimit)
	if e.mergeUndo {
		e.log.SetMerge(history.Similar)
	}

	e.matcher = lang.Compile(e.language, e.logger)
	e.colorizer = colorize.New(e.doc, e.matcher,
		colorize.WithBatch(e.batch),
		colorize.WithCommentDelay(e.commentDelay),
		colorize.WithLogger(e.logger),
	)
	e.colorizer.OnColorized = e.colorized

	if e.initContent != "" {
		e.SetText(e.initContent)
	}
	return e
}

// NewFromReader creates an Editor holding the content of r.
func NewFromReader(r io.Reader, opts ...Option) (*Editor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return New(append(opts, WithContent(string(data)))...), nil
}

// ============================================================================
// Text ingestion and queries
// ============================================================================

// SetText replaces the whole content, clears the undo log and queues the
// document for colorizing. The cursor returns to the origin.
func (e *Editor) SetText(text string) {
	e.doc.SetText(text)
	e.cur.SetState(cursor.State{})
	e.log.Clear()
	e.lastAutoIndent = nil
	e.colorizer.Colorize(0, -1)
}

// Text returns the whole content with lines joined by nl ("" means "\n").
func (e *Editor) Text(nl string) string {
	return e.doc.FullText(nl)
}

// TextRange returns the text in [start, end).
func (e *Editor) TextRange(start, end Coordinates, nl string) string {
	return e.doc.Text(start, end, nl)
}

// LineText returns the text of line i.
func (e *Editor) LineText(i int) string {
	return e.doc.LineText(i)
}

// LineCount returns the number of lines. It is never less than one.
func (e *Editor) LineCount() int {
	return e.doc.LineCount()
}

// ColumnCount returns the number of glyphs on line i.
func (e *Editor) ColumnCount(i int) int {
	return e.doc.ColumnCount(i)
}

// SelectionText returns the selected text.
func (e *Editor) SelectionText(nl string) string {
	start, end := e.cur.Selection()
	return e.doc.Text(start, end, nl)
}

// AppendText adds pre-classified text at the end of the document without
// recording undo, as a console view does with program output.
func (e *Editor) AppendText(text string, class lang.PaletteIndex) {
	e.doc.AppendText(text, class)
}

// InsertText inserts text at the cursor without recording undo and leaves
// the cursor after it. Use PasteText for an undoable insertion.
func (e *Editor) InsertText(text string) {
	if text == "" || e.readOnly {
		return
	}
	e.insertText(text)
}

func (e *Editor) insertText(text string) {
	pos := e.cur.Position()
	start := document.Min(pos, e.cur.State().SelectionStart)
	total := pos.Line - start.Line

	pos, n := e.doc.InsertText(pos, text)
	total += n

	e.cur.Collapse(pos)
	e.colorizer.Colorize(start.Line-1, total+2)
}

// Document returns the underlying document for rendering. Callers must not
// mutate it directly.
func (e *Editor) Document() *document.Document {
	return e.doc
}

// ============================================================================
// Language and colorizing
// ============================================================================

// Language returns the active language definition.
func (e *Editor) Language() *lang.Definition {
	return e.language
}

// SetLanguage compiles def and recolors the whole document. Patterns that
// fail to compile are reported to the logger and skipped.
func (e *Editor) SetLanguage(def *lang.Definition) {
	if def == nil {
		def = lang.Text()
	}
	e.language = def
	e.matcher = lang.Compile(def, e.logger)
	e.colorizer.SetMatcher(e.matcher)
	e.colorizer.Colorize(0, -1)
}

// Tick performs one bounded unit of colorizing work. Hosts call it once per
// frame. It reports whether any work was done.
func (e *Editor) Tick() bool {
	return e.colorizer.Tick()
}

// Flush performs all pending colorizing work now.
func (e *Editor) Flush() {
	e.colorizer.Flush()
}

// Colorizing reports whether colorizing work is pending.
func (e *Editor) Colorizing() bool {
	return e.colorizer.Pending()
}

// ============================================================================
// Configuration
// ============================================================================

// TabSize returns the tab width in columns.
func (e *Editor) TabSize() int {
	return e.tabSize
}

// SetTabSize changes the tab width. Values below one are ignored.
func (e *Editor) SetTabSize(n int) {
	if n < 1 {
		return
	}
	e.tabSize = n
	e.doc.SetTabSize(n)
}

// IndentWithTab reports whether indentation inserts tabs.
func (e *Editor) IndentWithTab() bool {
	return e.indentWithTab
}

// SetIndentWithTab chooses tabs or spaces for indentation.
func (e *Editor) SetIndentWithTab(v bool) {
	e.indentWithTab = v
}

// IsReadOnly reports whether editing commands are disabled.
func (e *Editor) IsReadOnly() bool {
	return e.readOnly
}

// SetReadOnly enables or disables editing commands.
func (e *Editor) SetReadOnly(v bool) {
	e.readOnly = v
}

// IsOverwrite reports whether typed characters replace the glyph under the
// cursor.
func (e *Editor) IsOverwrite() bool {
	return e.overwrite
}

// SetOverwrite toggles overwrite mode.
func (e *Editor) SetOverwrite(v bool) {
	e.overwrite = v
}

// PageSize returns the number of visible lines used by page movement.
func (e *Editor) PageSize() int {
	return e.pageSize
}

// SetPageSize sets the number of visible lines.
func (e *Editor) SetPageSize(n int) {
	if n > 0 {
		e.pageSize = n
	}
}

// Clipboard returns the clipboard used by Copy, Cut and Paste.
func (e *Editor) Clipboard() Clipboard {
	return e.clipboard
}

// SetClipboard replaces the clipboard used by Copy, Cut and Paste.
func (e *Editor) SetClipboard(c Clipboard) {
	if c != nil {
		e.clipboard = c
	}
}

// ============================================================================
// Save tracking
// ============================================================================

// IsDirty reports whether the undo position differs from the last save.
func (e *Editor) IsDirty() bool {
	return e.log.IsDirty()
}

// IsChangesSaved reports whether the undo position is at the last save.
func (e *Editor) IsChangesSaved() bool {
	return e.log.IsSaved()
}

// SetChangesSaved marks the current state as saved: the undo position is
// remembered and edited lines become EditedSaved.
func (e *Editor) SetChangesSaved() {
	e.log.MarkSaved()
	e.doc.SaveStates()
}

// SetChangesCleared forgets every line change state.
func (e *Editor) SetChangesCleared() {
	e.doc.ClearStates()
}

// ============================================================================
// Decorations
// ============================================================================

// SetErrorMarkers replaces the error markers keyed by line.
func (e *Editor) SetErrorMarkers(markers map[int]ErrorMarker) {
	e.doc.SetErrorMarkers(markers)
}

// ErrorMarkers returns a copy of the error markers.
func (e *Editor) ErrorMarkers() map[int]ErrorMarker {
	return e.doc.ErrorMarkers()
}

// SetBreakpoints replaces the breakpoints; the value reports whether one is
// enabled.
func (e *Editor) SetBreakpoints(bps map[int]bool) {
	e.doc.SetBreakpoints(bps)
}

// Breakpoints returns a copy of the breakpoints.
func (e *Editor) Breakpoints() map[int]bool {
	return e.doc.Breakpoints()
}

// SetProgramPointer marks the line being executed. -1 clears it.
func (e *Editor) SetProgramPointer(line int) {
	e.doc.SetProgramPointer(line)
}

// ProgramPointer returns the executing line or -1.
func (e *Editor) ProgramPointer() int {
	return e.doc.ProgramPointer()
}

// ============================================================================
// Mirroring
// ============================================================================

// SyncTo makes other a copy of e: lines, decorations, cursor and undo log.
// Configuration and handlers of other are kept.
func (e *Editor) SyncTo(other *Editor) {
	if other == nil || other == e {
		return
	}
	other.doc.CopyFrom(e.doc)
	other.doc.SetTabSize(other.tabSize)
	other.cur.SetState(e.cur.State())
	other.log = e.log.Clone()
	if other.mergeUndo {
		other.log.SetMerge(history.Similar)
	} else {
		other.log.SetMerge(nil)
	}
	other.lastAutoIndent = nil
	other.colorizer.Colorize(0, -1)
}
