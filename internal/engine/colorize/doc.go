// Package colorize assigns token classes to document glyphs incrementally.
//
// Edits queue dirty line ranges with Colorize. The host calls Tick once per
// frame; each tick performs at most one unit of work so large edits are
// spread over several frames. Until a line's turn comes it is simply shown
// with its old classes.
//
// Block comments are found by a separate full-document scan that sets the
// Glyph.MultiLineComment flag. The scan is debounced: each edit pushes it a
// fixed number of ticks into the future, so typing does not rescan on every
// keystroke.
//
// Tokenizing a line follows the compiled lang.Matcher: patterns are tried in
// order at the current position, the first match wins, and unmatched text is
// skipped one character at a time.
package colorize
