// Package script replays edit scripts against an engine.Editor.
//
// A script is a YAML document holding the starting text, a list of steps
// and the state expected at the end. It drives the editor the way a host
// widget would, through typed text, key chords and named commands, so the
// whole editing core can be exercised without a GUI.
//
//	name: auto-close
//	language: C
//	text: "int main"
//	steps:
//	  - key: end
//	  - type: "("
//	    expect:
//	      text: "int main()"
//	      cursor: [0, 9]
//	  - key: ctrl+z
//	expect:
//	  text: "int main"
//	  dirty: false
//
// Each step performs at most one action:
//
//	type:    text fed through InputText
//	key:     a chord such as "ctrl+shift+u", "enter" or "shift+down"
//	cmd:     a named command, see Commands
//	cursor:  [line, column]
//	select:  [[line, column], [line, column]]
//	paste:   text pasted as one undoable edit
//	undo:    number of undo steps
//	redo:    number of redo steps
//
// A step may repeat its action with repeat: n and may carry its own expect
// block, checked right after it.
package script
