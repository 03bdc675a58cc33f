package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loaderWith(env ...string) *envLoader {
	l := newEnvLoader()
	l.environ = func() []string { return env }
	return l
}

// getByPath retrieves a value from a nested map using a dot-separated path.
func getByPath(data map[string]any, path string) (any, bool) {
	current := any(data)
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = m[part]; !ok {
			return nil, false
		}
	}
	return current, true
}

func TestEnvLoad(t *testing.T) {
	got := loaderWith(
		"GLYPHEDIT_TAB_SIZE=2",
		"GLYPHEDIT_LOG_LEVEL=debug",
		"GLYPHEDIT_EDITOR_INDENT_WITH_TAB=yes",
		"GLYPHEDIT_EDITOR_LANGUAGE=C++",
		"GLYPHEDIT_UNKNOWN_THING=1",
		"OTHER_TAB_SIZE=9",
		"PATH=/bin",
	).Load()

	v, ok := getByPath(got, "editor.tabSize")
	require.True(t, ok)
	assert.Equal(t, int64(2), v)

	v, _ = getByPath(got, "log.level")
	assert.Equal(t, "debug", v)

	v, _ = getByPath(got, "editor.indentWithTab")
	assert.Equal(t, true, v)

	v, _ = getByPath(got, "editor.language")
	assert.Equal(t, "C++", v)

	_, ok = getByPath(got, "unknown")
	assert.False(t, ok)
	assert.Len(t, got, 2)
}

func TestEnvPaths(t *testing.T) {
	got := loaderWith("GLYPHEDIT_LANGUAGES_PATHS=a.yaml:b.lua").Load()
	v, _ := getByPath(got, "languages.paths")
	assert.Equal(t, []any{"a.yaml", "b.lua"}, v)

	got = loaderWith(`GLYPHEDIT_LANGUAGES_PATHS=["c.toml"]`).Load()
	v, _ = getByPath(got, "languages.paths")
	assert.Equal(t, []any{"c.toml"}, v)
}

func TestEnvToPath(t *testing.T) {
	l := newEnvLoader()
	tests := []struct {
		env  string
		want string
		ok   bool
	}{
		{"GLYPHEDIT_EDITOR_TAB_SIZE", "editor.tabSize", true},
		{"GLYPHEDIT_EDITOR_COLORIZE_BATCH", "editor.colorizeBatch", true},
		{"GLYPHEDIT_LOG_FORMAT", "log.format", true},
		{"GLYPHEDIT_LANGUAGES_PATHS", "languages.paths", true},
		{"GLYPHEDIT_EDITOR", "", false},
		{"GLYPHEDIT_UI_THEME", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			got, ok := l.envToPath(tt.env)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"", ""},
		{"1", int64(1)},
		{"0", int64(0)},
		{"-4", int64(-4)},
		{"true", true},
		{"ON", true},
		{"no", false},
		{`["x", "y"]`, []any{"x", "y"}},
		{"[broken", "[broken"},
		{"dark", "dark"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseValue(tt.in))
		})
	}
}

func TestBuildRejectsBadEnvironment(t *testing.T) {
	_, err := build(map[string]any{}, loaderWith("GLYPHEDIT_TAB_SIZE=0"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	cfg, err := build(map[string]any{}, loaderWith("GLYPHEDIT_PALETTE=retro"))
	require.NoError(t, err)
	assert.Equal(t, "retro", cfg.Editor.Palette)
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"editor": map[string]any{"tabSize": int64(4), "language": "C"},
	}
	src := map[string]any{
		"editor": map[string]any{"tabSize": int64(2)},
		"log":    map[string]any{"level": "warn"},
	}

	got := deepMerge(dst, src)

	assert.Equal(t, map[string]any{
		"editor": map[string]any{"tabSize": int64(2), "language": "C"},
		"log":    map[string]any{"level": "warn"},
	}, got)

	// src is copied, not aliased.
	setByPath(src, "log.level", "error")
	v, _ := getByPath(got, "log.level")
	assert.Equal(t, "warn", v)
}
