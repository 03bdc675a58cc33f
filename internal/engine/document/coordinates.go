package document

import "fmt"

// Coordinates addresses a glyph cell. Both fields are 0-indexed and Column
// counts glyphs, not bytes. Coordinates order lexicographically by line and
// then column.
type Coordinates struct {
	Line   int
	Column int
}

// At is shorthand for Coordinates{line, column}.
func At(line, column int) Coordinates {
	return Coordinates{Line: line, Column: column}
}

// String returns a human-readable representation of the coordinates.
func (c Coordinates) String() string {
	return fmt.Sprintf("(%d:%d)", c.Line, c.Column)
}

// Compare returns -1 if c < other, 0 if c == other, 1 if c > other.
func (c Coordinates) Compare(other Coordinates) int {
	switch {
	case c.Line < other.Line:
		return -1
	case c.Line > other.Line:
		return 1
	case c.Column < other.Column:
		return -1
	case c.Column > other.Column:
		return 1
	}
	return 0
}

// Before reports whether c comes before other.
func (c Coordinates) Before(other Coordinates) bool {
	return c.Compare(other) < 0
}

// After reports whether c comes after other.
func (c Coordinates) After(other Coordinates) bool {
	return c.Compare(other) > 0
}

// Min returns the earlier of a and b.
func Min(a, b Coordinates) Coordinates {
	if b.Before(a) {
		return b
	}
	return a
}

// Max returns the later of a and b.
func Max(a, b Coordinates) Coordinates {
	if b.After(a) {
		return b
	}
	return a
}
