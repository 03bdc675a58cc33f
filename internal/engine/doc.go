// Package engine provides the editing core of glyphedit.
//
// The engine package is the facade a host widget talks to. It combines the
// document buffer, cursor and selection handling, the undo log and the
// incremental colorizer into one Editor whose commands mirror what a user
// does with a keyboard and mouse.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - codec: packed UTF-8 glyph storage and ASCII case folding
//   - lang: token classes, language definitions and the token matcher
//   - document: lines of glyphs, coordinates, markers and widths
//   - cursor: cursor state, word bounds and movement
//   - colorize: time-sliced re-tokenizing and block comment detection
//   - history: the linear undo log with coalescing
//
// # Threading
//
// An Editor is not safe for concurrent use. It expects to be driven from the
// host's update loop: input is forwarded with HandleKey, InputText and the
// command methods, and Tick is called once per frame so colorizing proceeds
// a bounded number of lines at a time.
//
// # Basic Usage
//
//	e := engine.New(
//		engine.WithContent("int main() {}"),
//		engine.WithLanguage(lang.C()),
//	)
//
//	e.SetCursorPosition(engine.At(0, 3))
//	e.EnterCharacter('x') // "intx main() {}"
//	_ = e.Undo(1)         // "int main() {}"
//
//	for e.Tick() {
//	}
//
// # Undo
//
// Every command pushes one record. With coalescing on (the default), a run
// of similar single-character edits on the same line undoes in one step, so
// typing a word and pressing undo removes the whole word.
//
// # Errors
//
// Editing commands never fail. When their preconditions do not hold, or the
// editor is read-only, they do nothing. Undo and Redo report
// ErrNothingToUndo, ErrNothingToRedo and ErrReadOnly.
package engine
