package document

import "maps"

// ErrorMarker is a diagnostic attached to a line, typically supplied by a
// compiler run by the host.
type ErrorMarker struct {
	Message        string
	IsWarning      bool
	WithLineNumber bool
}

// SetErrorMarkers replaces all error markers. The map is copied.
func (d *Document) SetErrorMarkers(markers map[int]ErrorMarker) {
	d.errors = maps.Clone(markers)
	if d.errors == nil {
		d.errors = make(map[int]ErrorMarker)
	}
}

// ErrorMarkers returns a copy of the error markers keyed by line.
func (d *Document) ErrorMarkers() map[int]ErrorMarker {
	return maps.Clone(d.errors)
}

// ErrorMarker returns the marker on line i.
func (d *Document) ErrorMarker(i int) (ErrorMarker, bool) {
	m, ok := d.errors[i]
	return m, ok
}

// SetBreakpoints replaces all breakpoints. The value reports whether the
// breakpoint is enabled.
func (d *Document) SetBreakpoints(bps map[int]bool) {
	d.breakpoints = maps.Clone(bps)
	if d.breakpoints == nil {
		d.breakpoints = make(map[int]bool)
	}
}

// Breakpoints returns a copy of the breakpoints keyed by line.
func (d *Document) Breakpoints() map[int]bool {
	return maps.Clone(d.breakpoints)
}

// Breakpoint returns the breakpoint on line i.
func (d *Document) Breakpoint(i int) (enabled, ok bool) {
	enabled, ok = d.breakpoints[i]
	return enabled, ok
}

// ProgramPointer returns the execution line, or -1 for none.
func (d *Document) ProgramPointer() int {
	return d.programPointer
}

// SetProgramPointer sets the execution line. Negative values clear it.
func (d *Document) SetProgramPointer(line int) {
	d.programPointer = max(line, -1)
}

// shiftKeys moves every key >= from by delta.
func shiftKeys[V any](m map[int]V, from, delta int) {
	if len(m) == 0 {
		return
	}
	moved := make(map[int]V)
	for k, v := range m {
		if k >= from {
			moved[k+delta] = v
			delete(m, k)
		}
	}
	maps.Copy(m, moved)
}

// dropKeys deletes keys in [start, end) and moves the keys after the range
// up by its length.
func dropKeys[V any](m map[int]V, start, end int) {
	for k := range m {
		if k >= start && k < end {
			delete(m, k)
		}
	}
	shiftKeys(m, end, start-end)
}

// rotateKeys rotates the keys of lines [start, end] by one position. With
// dir -1 the key at start moves to end and the others move up; with dir 1
// the key at end moves to start and the others move down.
func rotateKeys[V any](m map[int]V, start, end, dir int) {
	if len(m) == 0 {
		return
	}
	moved := make(map[int]V)
	for k, v := range m {
		if k < start || k > end {
			continue
		}
		delete(m, k)
		switch {
		case dir < 0 && k == start:
			moved[end] = v
		case dir > 0 && k == end:
			moved[start] = v
		default:
			moved[k+dir] = v
		}
	}
	maps.Copy(m, moved)
}
