// Package document implements the line and glyph buffer behind the editor.
//
// A Document is an ordered list of Lines, each an ordered list of Glyphs.
// A Glyph stores one character as a packed codec.Cell together with its
// token class, its cached display width and the block comment flag set by
// the colorizer. Positions are Coordinates whose Column counts glyphs, never
// bytes.
//
// # Structure
//
// Structural edits (InsertLine, RemoveLines, MoveLinesUp, MoveLinesDown) keep
// the error markers and breakpoints attached to their lines: keys after an
// inserted line move down, keys inside a removed range are dropped and keys
// after it move up by the range length.
//
// # Coordinates
//
// Every entry point sanitizes the coordinates it receives. A line past the
// end snaps to the end of the last line.
//
// # Widths
//
// Glyph widths start at zero and are filled in by MeasureLine using
// go-runewidth for multi-byte characters. Tabs advance to the next tab stop,
// except inside strings and comments where they keep the full tab width.
package document
