package engine

import "github.com/dshills/glyphedit/internal/engine/codec"

// Key is a key the editor has a default binding for.
type Key uint8

// Keys with default bindings.
const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyA
	KeyC
	KeyU
	KeyV
	KeyX
	KeyY
	KeyZ
)

var keyNames = [...]string{
	KeyNone:      "none",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyA:         "a",
	KeyC:         "c",
	KeyU:         "u",
	KeyV:         "v",
	KeyX:         "x",
	KeyY:         "y",
	KeyZ:         "z",
}

// String returns the key name.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// ParseKey returns the key with the given name.
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name {
			return Key(k), true
		}
	}
	return KeyNone, false
}

// Mod is a set of modifier keys.
type Mod uint8

// Modifiers.
const (
	ModCtrl Mod = 1 << iota
	ModShift
	ModAlt
)

// Has reports whether m includes all of o.
func (m Mod) Has(o Mod) bool {
	return m&o == o
}

// HandleKey runs the default binding for key. The key handler set by
// OnKeyPressed is asked first and may claim the key. HandleKey reports
// whether the key was consumed.
func (e *Editor) HandleKey(key Key, mods Mod) bool {
	if e.handlers.keyPressed != nil && e.handlers.keyPressed(key, mods) {
		return true
	}

	ctrl, shift, alt := mods.Has(ModCtrl), mods.Has(ModShift), mods.Has(ModAlt)
	editable := !e.readOnly

	switch {
	case ctrl && !alt && key == KeyZ && editable:
		_ = e.Undo(1)
	case ctrl && !alt && key == KeyY && editable:
		_ = e.Redo(1)
	case ctrl && !alt && key == KeyA:
		e.SelectAll()
	case ctrl && !alt && key == KeyC:
		e.Copy()
	case ctrl && !alt && key == KeyX:
		e.Cut()
	case ctrl && !alt && key == KeyV && editable:
		e.Paste()
	case ctrl && !alt && key == KeyU && editable:
		if shift {
			e.ToUpperCase()
		} else {
			e.ToLowerCase()
		}

	case !alt && key == KeyUp:
		e.MoveUp(1, shift)
	case !alt && key == KeyDown:
		e.MoveDown(1, shift)
	case !alt && key == KeyLeft:
		e.MoveLeft(1, shift, ctrl)
	case !alt && key == KeyRight:
		e.MoveRight(1, shift, ctrl)
	case !alt && key == KeyPageUp:
		e.PageUp(shift)
	case !alt && key == KeyPageDown:
		e.PageDown(shift)
	case ctrl && !alt && key == KeyHome:
		e.MoveTop(shift)
	case ctrl && !alt && key == KeyEnd:
		e.MoveBottom(shift)
	case !alt && key == KeyHome:
		e.MoveHome(shift)
	case !alt && key == KeyEnd:
		e.MoveEnd(shift)

	case !ctrl && !alt && key == KeyDelete && editable:
		e.Delete()
	case !ctrl && !alt && key == KeyBackspace && editable:
		e.BackSpace()
	case !ctrl && !alt && key == KeyEnter && editable:
		e.EnterCharacter('\n')
	case !ctrl && !alt && key == KeyTab && editable:
		switch {
		case e.SelectionLines() > 1 && shift:
			e.Unindent()
		case e.SelectionLines() > 1:
			e.Indent(true)
		case shift:
			e.Unindent()
		default:
			e.EnterCharacter('\t')
		}

	default:
		return false
	}
	return true
}

// InputText types text as keyboard input: "\r\n" and lone carriage returns
// become newlines and tabs become TabSize spaces unless indenting with tabs.
func (e *Editor) InputText(text string) {
	if e.readOnly {
		return
	}
	afterCR := false
	for _, c := range codec.Split(text) {
		r := c.Rune()
		switch {
		case r == '\n' && afterCR:
		case r == '\r':
			e.EnterCharacter('\n')
		case r == '\t':
			e.InsertTab()
		default:
			e.EnterCharacter(r)
		}
		afterCR = r == '\r'
	}
}
