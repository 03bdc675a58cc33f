package history

import (
	"fmt"

	"github.com/dshills/glyphedit/internal/engine/cursor"
	"github.com/dshills/glyphedit/internal/engine/document"
)

// Kind identifies the command that produced a record.
type Kind uint8

const (
	// Insert records text added at Start, replacing Overwritten.
	Insert Kind = iota
	// Delete records text removed between Start and End.
	Delete
	// Indent records per-line prefixes added by Indent.
	Indent
	// Unindent records per-line prefixes removed by Unindent.
	Unindent
	// Comment records line comment heads added per line.
	Comment
	// Uncomment records line comment heads removed per line.
	Uncomment
	// ToLower records a selection lowered in place.
	ToLower
	// ToUpper records a selection raised in place.
	ToUpper
	// MoveLineUp records a block of lines moved up by one.
	MoveLineUp
	// MoveLineDown records a block of lines moved down by one.
	MoveLineDown
)

var kindNames = [...]string{
	Insert:       "insert",
	Delete:       "delete",
	Indent:       "indent",
	Unindent:     "unindent",
	Comment:      "comment",
	Uncomment:    "uncomment",
	ToLower:      "to-lower",
	ToUpper:      "to-upper",
	MoveLineUp:   "move-line-up",
	MoveLineDown: "move-line-down",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// CommentOp is what Comment or Uncomment did to one line.
type CommentOp uint8

const (
	// CommentNone leaves the line alone.
	CommentNone CommentOp = iota
	// CommentHead adds or removes the comment head only.
	CommentHead
	// CommentHeadSpace adds or removes the comment head and one space.
	CommentHeadSpace
)

// Record is one reversible edit.
//
// Start and End bound the edited text. For Insert, ToLower and ToUpper the
// Content was inserted at Start after the text in
// [OverwrittenStart, OverwrittenEnd) was removed; Overwritten holds that
// removed text. For Delete the Content was removed from [Start, End).
//
// Line-wise kinds address lines Start.Line..End.Line: Prefixes holds the
// indent text added or removed per line ("" skips the line) and Ops the
// comment operation per line.
type Record struct {
	Kind Kind

	Start document.Coordinates
	End   document.Coordinates

	Content string

	Overwritten      string
	OverwrittenStart document.Coordinates
	OverwrittenEnd   document.Coordinates

	Prefixes []string
	Ops      []CommentOp

	Before cursor.State
	After  cursor.State
}

// Lines returns the number of lines the record addresses.
func (r *Record) Lines() int {
	return r.End.Line - r.Start.Line + 1
}

// String returns a short description of the record.
func (r *Record) String() string {
	return fmt.Sprintf("%s %v-%v %q", r.Kind, r.Start, r.End, r.Content)
}
