package colorize

import (
	"github.com/dshills/glyphedit/internal/engine/codec"
	"github.com/dshills/glyphedit/internal/engine/document"
	"github.com/dshills/glyphedit/internal/logging"
)

// ScanComments walks the whole document and sets the MultiLineComment flag
// of every glyph between a block comment start delimiter and the matching
// end delimiter, both included. Delimiters preceded by the language's
// comment exception character do not count. Double-quoted strings are
// tracked so delimiters inside them are ignored; a string never continues
// onto the next line and never starts inside a comment. It reports false
// when the language has no block comments; any flags left from a previous
// language are cleared then.
func (c *Colorizer) ScanComments() bool {
	if !c.blockComments() {
		c.clearComments()
		return false
	}
	def := c.matcher.Definition()
	startStr := codec.Split(def.CommentStart)
	endStr := codec.Split(def.CommentEnd)
	var exception codec.Cell
	if def.CommentException != 0 {
		exception = codec.FromRune(def.CommentException)
	}

	docEnd := document.Coordinates{Line: c.doc.LineCount()}
	commentStart := docEnd
	withinString := false
	lastLine := -1

	for i := (document.Coordinates{}); i.Before(docEnd); i = c.doc.Advance(i) {
		glyphs := c.doc.Line(i.Line).Glyphs
		if len(glyphs) == 0 {
			continue
		}
		if i.Line != lastLine {
			withinString = false
			lastLine = i.Line
		}
		ch := glyphs[i.Column].Char
		inComment := !i.Before(commentStart)

		if withinString {
			glyphs[i.Column].MultiLineComment = inComment
			switch {
			case ch.Is('"') && i.Column+1 < len(glyphs) && glyphs[i.Column+1].Char.Is('"'):
				i.Column++
				glyphs[i.Column].MultiLineComment = inComment
			case ch.Is('"'):
				withinString = false
			case ch.Is('\\') && i.Column+1 < len(glyphs):
				i.Column++
				glyphs[i.Column].MultiLineComment = inComment
			}
			continue
		}

		if ch.Is('"') && !inComment {
			withinString = true
			glyphs[i.Column].MultiLineComment = false
			continue
		}

		if matchAt(glyphs, i.Column, startStr) && !excepted(glyphs, i.Column, exception) {
			commentStart = i
		}
		inComment = !i.Before(commentStart)
		glyphs[i.Column].MultiLineComment = inComment

		if from := i.Column + 1 - len(endStr); from >= 0 &&
			matchAt(glyphs, from, endStr) && !excepted(glyphs, from, exception) {
			commentStart = docEnd
		}
	}
	c.logger.Debug("scanned block comments", logging.FieldLines, c.doc.LineCount())
	return true
}

// clearComments resets the MultiLineComment flag of every glyph.
func (c *Colorizer) clearComments() {
	for i := range c.doc.LineCount() {
		glyphs := c.doc.Line(i).Glyphs
		for k := range glyphs {
			glyphs[k].MultiLineComment = false
		}
	}
}

// matchAt reports whether glyphs at col start with delim.
func matchAt(glyphs []document.Glyph, col int, delim []codec.Cell) bool {
	if len(delim) == 0 || col+len(delim) > len(glyphs) {
		return false
	}
	for k, d := range delim {
		if glyphs[col+k].Char != d {
			return false
		}
	}
	return true
}

// excepted reports whether the glyph before col is the exception character.
func excepted(glyphs []document.Glyph, col int, exception codec.Cell) bool {
	return exception != 0 && col > 0 && glyphs[col-1].Char == exception
}
