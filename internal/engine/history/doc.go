// Package history provides the undo/redo log of the editor.
//
// # Records
//
// A Record describes one reversible edit: its Kind, the coordinates it
// touched, the text it inserted or removed, and the cursor State before and
// after. Line-wise commands (indent, comment) keep what they did to each line
// so undo restores the exact whitespace.
//
// # Log
//
// The Log is linear. An index splits it into undoable and redoable records;
// pushing a record truncates the redoable part, so there is no redo tree.
// The index at the last save is remembered and IsDirty compares against it.
//
//	log := history.NewLog(0)
//	log.SetMerge(history.Similar)
//	log.Push(rec)
//	log.Undo(editor, 1)
//
// # Coalescing
//
// With a MergeFunc set, a single-step undo or redo walks over a run of
// records similar to the first one replayed, so typing a word undoes as one
// step. Similar is the default predicate.
//
// # Replay
//
// The Log never touches the document itself; it hands records to a Replayer,
// which the editor implements.
package history
