package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of every environment variable the loader reads.
const EnvPrefix = "GLYPHEDIT_"

// sections lists the top-level tables an environment variable may address.
var sections = map[string]bool{
	"editor":    true,
	"log":       true,
	"languages": true,
}

// defaultEnvMapping returns the short forms that don't follow the
// SECTION_SETTING naming.
func defaultEnvMapping() map[string]string {
	return map[string]string{
		"GLYPHEDIT_TAB_SIZE":  "editor.tabSize",
		"GLYPHEDIT_LANGUAGE":  "editor.language",
		"GLYPHEDIT_PALETTE":   "editor.palette",
		"GLYPHEDIT_READ_ONLY": "editor.readOnly",
		"GLYPHEDIT_LOG_LEVEL": "log.level",
	}
}

// envLoader reads configuration overrides from the environment.
type envLoader struct {
	prefix  string
	mapping map[string]string
	environ func() []string
}

func newEnvLoader() *envLoader {
	return &envLoader{
		prefix:  EnvPrefix,
		mapping: defaultEnvMapping(),
		environ: os.Environ,
	}
}

// Load returns the overrides as a nested map. Empty values count as set.
func (l *envLoader) Load() map[string]any {
	out := make(map[string]any)
	env := make(map[string]string)
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		env[name] = value
	}

	for name, value := range env {
		path, ok := l.mapping[name]
		if !ok {
			if path, ok = l.envToPath(name); !ok {
				continue
			}
		}
		v := parseValue(value)
		if s, isString := v.(string); isString && strings.HasSuffix(path, ".paths") {
			v = splitList(s)
		}
		setByPath(out, path, v)
	}
	return out
}

// envToPath converts GLYPHEDIT_EDITOR_TAB_SIZE to editor.tabSize. It
// reports false when the first word is not a known section.
func (l *envLoader) envToPath(env string) (string, bool) {
	parts := strings.Split(strings.TrimPrefix(env, l.prefix), "_")
	if len(parts) < 2 {
		return "", false
	}
	section := strings.ToLower(parts[0])
	if !sections[section] {
		return "", false
	}

	setting := strings.ToLower(parts[1])
	for _, part := range parts[2:] {
		if part != "" {
			setting += strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
	}
	return section + "." + setting, true
}

// parseValue converts an environment string into the most specific value
// it spells. Integers are tried before booleans so "1" stays a number.
func parseValue(s string) any {
	if s == "" {
		return s
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if strings.HasPrefix(s, "[") {
		var v []any
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}
	}
	return s
}

// splitList turns a PATH-style string into a list.
func splitList(s string) []any {
	if s == "" {
		return []any{}
	}
	parts := strings.Split(s, string(os.PathListSeparator))
	v := make([]any, len(parts))
	for i, p := range parts {
		v[i] = p
	}
	return v
}
