package script

import (
	"slices"

	"github.com/dshills/glyphedit/internal/engine"
)

// commands maps cmd step names to editor calls.
var commands = map[string]func(e *engine.Editor){
	"copy":           (*engine.Editor).Copy,
	"cut":            (*engine.Editor).Cut,
	"paste":          (*engine.Editor).Paste,
	"delete":         (*engine.Editor).Delete,
	"backspace":      (*engine.Editor).BackSpace,
	"newline":        func(e *engine.Editor) { e.EnterCharacter('\n') },
	"tab":            (*engine.Editor).InsertTab,
	"indent":         func(e *engine.Editor) { e.Indent(false) },
	"unindent":       (*engine.Editor).Unindent,
	"comment":        (*engine.Editor).Comment,
	"uncomment":      (*engine.Editor).Uncomment,
	"lower":          (*engine.Editor).ToLowerCase,
	"upper":          (*engine.Editor).ToUpperCase,
	"move-line-up":   (*engine.Editor).MoveLineUp,
	"move-line-down": (*engine.Editor).MoveLineDown,

	"select-all":      (*engine.Editor).SelectAll,
	"select-word":     (*engine.Editor).SelectWordUnderCursor,
	"clear-selection": (*engine.Editor).ClearSelection,
	"top":             func(e *engine.Editor) { e.MoveTop(false) },
	"bottom":          func(e *engine.Editor) { e.MoveBottom(false) },

	"save":          (*engine.Editor).SetChangesSaved,
	"clear-changes": (*engine.Editor).SetChangesCleared,
	"clear-history": (*engine.Editor).ClearHistory,
	"flush":         (*engine.Editor).Flush,
	"read-only":     func(e *engine.Editor) { e.SetReadOnly(true) },
	"writable":      func(e *engine.Editor) { e.SetReadOnly(false) },
	"overwrite":     func(e *engine.Editor) { e.SetOverwrite(!e.IsOverwrite()) },
}

// Commands returns the names accepted by cmd steps, sorted.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
