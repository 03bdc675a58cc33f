package history

import (
	"errors"
	"slices"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Log is a linear undo log: a list of records and an index into it.
// Records before the index are undoable, records from the index on are
// redoable. Pushing a record discards everything redoable.
//
// A separate saved index marks the position of the last save; the log is
// dirty whenever the index differs from it.
//
// Log is not safe for concurrent use.
type Log struct {
	records []Record
	index   int
	saved   int

	merge MergeFunc
	limit int
}

// NewLog creates a log. A limit of 0 keeps every record; otherwise the
// oldest records are dropped once the log grows past limit.
func NewLog(limit int) *Log {
	return &Log{limit: max(limit, 0)}
}

// SetMerge sets the coalescing predicate used by single-step undo and redo.
// A nil MergeFunc disables coalescing.
func (l *Log) SetMerge(fn MergeFunc) {
	l.merge = fn
}

// Merge returns the coalescing predicate.
func (l *Log) Merge() MergeFunc {
	return l.merge
}

// Push truncates the log at the index and appends r.
func (l *Log) Push(r Record) {
	l.records = append(l.records[:l.index], r)
	l.index++
	if l.saved > l.index-1 {
		// The saved position was in the discarded future.
		l.saved = -1
	}

	if l.limit > 0 && len(l.records) > l.limit {
		excess := len(l.records) - l.limit
		l.records = slices.Delete(l.records, 0, excess)
		l.index -= excess
		if l.saved >= 0 {
			l.saved -= excess
		}
	}
}

// Last returns the most recent undoable record, or nil.
func (l *Log) Last() *Record {
	if l.index == 0 {
		return nil
	}
	return &l.records[l.index-1]
}

// CanUndo reports whether a record can be undone.
func (l *Log) CanUndo() bool {
	return l.index > 0
}

// CanRedo reports whether a record can be redone.
func (l *Log) CanRedo() bool {
	return l.index < len(l.records)
}

// Undo reverts up to steps records through r and returns how many were
// reverted. With steps == 1 and a merge predicate set, a run of records
// similar to the first one reverted counts as one step. The index is moved
// before each record is replayed, so the Replayer observes the position the
// log ends up at.
func (l *Log) Undo(r Replayer, steps int) (int, error) {
	if !l.CanUndo() {
		return 0, ErrNothingToUndo
	}
	n := 0
	if steps == 1 && l.merge != nil {
		first := l.records[l.index-1]
		for l.CanUndo() && (n == 0 || l.merge(&first, &l.records[l.index-1])) {
			l.index--
			r.Undo(&l.records[l.index])
			n++
		}
		return n, nil
	}
	for ; l.CanUndo() && steps > 0; steps-- {
		l.index--
		r.Undo(&l.records[l.index])
		n++
	}
	return n, nil
}

// Redo reapplies up to steps records through r and returns how many were
// reapplied. Coalescing mirrors Undo. As with Undo, the index already points
// past the record while it is replayed.
func (l *Log) Redo(r Replayer, steps int) (int, error) {
	if !l.CanRedo() {
		return 0, ErrNothingToRedo
	}
	n := 0
	if steps == 1 && l.merge != nil {
		first := l.records[l.index]
		for l.CanRedo() && (n == 0 || l.merge(&first, &l.records[l.index])) {
			l.index++
			r.Redo(&l.records[l.index-1])
			n++
		}
		return n, nil
	}
	for ; l.CanRedo() && steps > 0; steps-- {
		l.index++
		r.Redo(&l.records[l.index-1])
		n++
	}
	return n, nil
}

// Index returns the current position in the log.
func (l *Log) Index() int {
	return l.index
}

// Len returns the number of records, undoable and redoable.
func (l *Log) Len() int {
	return len(l.records)
}

// SavedIndex returns the index at the last save, or -1 when that position
// is no longer reachable.
func (l *Log) SavedIndex() int {
	return l.saved
}

// MarkSaved records the current index as saved.
func (l *Log) MarkSaved() {
	l.saved = l.index
}

// IsSaved reports whether the index is at the saved position.
func (l *Log) IsSaved() bool {
	return l.index == l.saved
}

// IsDirty reports whether the log moved away from the saved position.
func (l *Log) IsDirty() bool {
	return l.index != l.saved
}

// Clear drops every record and resets both indexes.
func (l *Log) Clear() {
	l.records = nil
	l.index = 0
	l.saved = 0
}

// Clone returns a copy of the log sharing no record storage.
func (l *Log) Clone() *Log {
	c := *l
	c.records = make([]Record, len(l.records))
	for i, r := range l.records {
		r.Prefixes = slices.Clone(r.Prefixes)
		r.Ops = slices.Clone(r.Ops)
		c.records[i] = r
	}
	return &c
}
