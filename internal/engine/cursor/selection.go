package cursor

import (
	"github.com/dshills/glyphedit/internal/engine/document"
	"github.com/dshills/glyphedit/internal/engine/lang"
)

// FindWordStart returns the start of the word at c. A word is a run of
// glyphs sharing the class of the glyph at c, broken by blanks unless the
// class is String. For strings the result moves one column right so the
// opening delimiter is excluded.
//
// Coordinates past the end of the line or the document are returned as is.
func FindWordStart(d *document.Document, c Coordinates) Coordinates {
	l := d.Line(c.Line)
	if l == nil || c.Column < 0 || c.Column >= l.Len() {
		return c
	}
	class := l.Glyphs[c.Column].Class
	if c.Column > 0 {
		for c.Column > 0 {
			g := l.Glyphs[c.Column-1]
			if class != lang.String && g.IsBlank() {
				break
			}
			if g.Class != class {
				break
			}
			c.Column--
		}
		if class == lang.String {
			c.Column++
		}
	}
	return c
}

// FindWordEnd returns the end of the word at c. For strings the result
// moves one column left so the closing delimiter is excluded.
func FindWordEnd(d *document.Document, c Coordinates) Coordinates {
	l := d.Line(c.Line)
	if l == nil || c.Column < 0 || c.Column >= l.Len() {
		return c
	}
	class := l.Glyphs[c.Column].Class
	for c.Column < l.Len() {
		g := l.Glyphs[c.Column]
		if class != lang.String && g.IsBlank() {
			break
		}
		if g.Class != class {
			break
		}
		c.Column++
	}
	if class == lang.String {
		c.Column--
	}
	return c
}

// IsOnWordBoundary reports whether c sits at a line edge or between glyphs
// of different classes.
func IsOnWordBoundary(d *document.Document, c Coordinates) bool {
	l := d.Line(c.Line)
	if l == nil || c.Column <= 0 || c.Column >= l.Len() {
		return true
	}
	return l.Glyphs[c.Column].Class != l.Glyphs[c.Column-1].Class
}

// WordAt returns the word at c along with its bounds.
func WordAt(d *document.Document, c Coordinates) (word string, start, end Coordinates) {
	start = FindWordStart(d, c)
	end = FindWordEnd(d, c)
	if start.Line != end.Line || !start.Before(end) {
		return "", start, end
	}
	return d.Text(start, end, ""), start, end
}

// Select returns the normalized selection between start and end, both
// sanitized against d. In word mode both ends snap outward to word bounds.
func Select(d *document.Document, start, end Coordinates, wordMode bool) (Coordinates, Coordinates) {
	start = d.Sanitize(start)
	end = d.Sanitize(end)
	if start.After(end) {
		start, end = end, start
	}
	if wordMode {
		start = FindWordStart(d, start)
		end = FindWordEnd(d, FindWordStart(d, end))
		if start.After(end) {
			start, end = end, start
		}
	}
	return start, end
}
