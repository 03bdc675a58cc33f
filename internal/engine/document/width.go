package document

// MeasureLine fills in the display width of every unmeasured glyph on line
// i and recomputes tab widths, which depend on where the tab lands. A tab
// inside a string or comment keeps the full tab width; elsewhere it advances
// to the next tab stop.
func (d *Document) MeasureLine(i int) {
	l := d.Line(i)
	if l == nil {
		return
	}
	dist := 0
	for k := range l.Glyphs {
		g := &l.Glyphs[k]
		switch {
		case g.Char.Is('\t'):
			g.Width = d.advance(*g, dist) - dist
		case g.Width == 0:
			g.Width = charWidth(*g)
		}
		dist += g.Width
	}
}

// TextDistanceToLineStart returns the visual column of c, counting display
// widths and tab stops the same way MeasureLine does.
func (d *Document) TextDistanceToLineStart(c Coordinates) int {
	l := d.Line(c.Line)
	if l == nil {
		return 0
	}
	dist := 0
	for k := 0; k < len(l.Glyphs) && k < c.Column; k++ {
		dist = d.advance(l.Glyphs[k], dist)
	}
	return dist
}

// advance returns the visual column after g when g starts at dist.
func (d *Document) advance(g Glyph, dist int) int {
	if !g.Char.Is('\t') {
		return dist + charWidth(g)
	}
	if g.literal() {
		return dist + d.tabSize
	}
	return (dist/d.tabSize)*d.tabSize + d.tabSize
}

// Width returns the measured display width of line i. Unmeasured glyphs
// count as one column.
func (d *Document) Width(i int) int {
	l := d.Line(i)
	if l == nil {
		return 0
	}
	w := 0
	for _, g := range l.Glyphs {
		w += max(g.Width, 1)
	}
	return w
}
