// Package cursor provides cursor and selection management for the editor.
//
// The cursor package handles:
//
//   - The State value (cursor plus normalized selection) captured by undo
//   - Word boundary search driven by token classes
//   - Selection normalization, optionally snapped to words
//   - Cursor movement by glyph, word, line, page and document
//
// Word Model:
//
// A word is a run of glyphs sharing one token class. Blanks break words
// except inside strings, where the search also steps one column inward so
// the string delimiters are left out of the word.
//
// Selection Model:
//
// State keeps SelectionStart <= SelectionEnd at all times. The Controller
// additionally tracks the interactive anchors of a shift-selection so that
// extending and shrinking work from the side the selection started on.
//
// Thread Safety:
//
// State is an immutable value type. Controller is not thread-safe; the
// owning editor serializes access.
package cursor
