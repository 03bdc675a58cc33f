package cursor

// ShiftLines returns s with every coordinate moved by delta lines. Used when
// a block of lines moves up or down together with its selection.
func (s State) ShiftLines(delta int) State {
	s.Cursor.Line += delta
	s.SelectionStart.Line += delta
	s.SelectionEnd.Line += delta
	return s
}

// ShiftColumn moves c by delta columns when it lies on line. The result
// never goes below column 0.
func ShiftColumn(c Coordinates, line, delta int) Coordinates {
	if c.Line == line {
		c.Column = max(c.Column+delta, 0)
	}
	return c
}

// ShiftColumns applies ShiftColumn to every coordinate of s.
func (s State) ShiftColumns(line, delta int) State {
	s.Cursor = ShiftColumn(s.Cursor, line, delta)
	s.SelectionStart = ShiftColumn(s.SelectionStart, line, delta)
	s.SelectionEnd = ShiftColumn(s.SelectionEnd, line, delta)
	return s
}
