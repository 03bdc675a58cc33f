package script

import (
	"fmt"
	"strings"

	"github.com/dshills/glyphedit/internal/engine"
)

// keyAliases maps alternative spellings to engine key names.
var keyAliases = map[string]string{
	"return": "enter",
	"cr":     "enter",
	"bs":     "backspace",
	"del":    "delete",
	"pgup":   "pageup",
	"pgdn":   "pagedown",
	"pgdown": "pagedown",
}

// ParseChord parses a chord such as "ctrl+shift+u" or "enter". Modifier
// and key names ignore case.
func ParseChord(chord string) (engine.Key, engine.Mod, error) {
	chord = strings.ToLower(strings.TrimSpace(chord))
	if chord == "" {
		return engine.KeyNone, 0, fmt.Errorf("%w: empty", ErrInvalidKey)
	}

	parts := strings.Split(chord, "+")
	var mods engine.Mod
	for _, p := range parts[:len(parts)-1] {
		switch strings.TrimSpace(p) {
		case "ctrl", "control", "c":
			mods |= engine.ModCtrl
		case "shift", "s":
			mods |= engine.ModShift
		case "alt", "opt", "a":
			mods |= engine.ModAlt
		default:
			return engine.KeyNone, 0, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidKey, p, chord)
		}
	}

	name := strings.TrimSpace(parts[len(parts)-1])
	if alias, ok := keyAliases[name]; ok {
		name = alias
	}
	key, ok := engine.ParseKey(name)
	if !ok || key == engine.KeyNone {
		return engine.KeyNone, 0, fmt.Errorf("%w: unknown key %q in %q", ErrInvalidKey, name, chord)
	}
	return key, mods, nil
}
