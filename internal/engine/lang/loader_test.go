package lang

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/glyphedit/internal/logging"
)

const iniTOML = `
name = "INI"
case_sensitive = false
keywords = ["true", "false"]
line_comment = ";"
pairs = ["[]"]

[identifiers]
include = "Pulls in another file"

[[patterns]]
regex = "[;#].*"
class = "comment"

[[patterns]]
regex = '[a-zA-Z_]\w*'
class = "identifier"
`

func TestLoadTOML(t *testing.T) {
	def, err := LoadTOML([]byte(iniTOML))
	if err != nil {
		t.Fatalf("LoadTOML: %v", err)
	}
	if def.Name != "INI" || def.CaseSensitive || def.LineComment != ";" {
		t.Errorf("unexpected definition: %+v", def)
	}
	if p, ok := def.FindPair('['); !ok || p.Close != ']' {
		t.Errorf("pair not loaded: %v", def.Pairs)
	}

	m := Compile(def, logging.Discard())
	got := m.Tokens("TRUE Include x ; note")
	want := []Token{
		{0, 4, Keyword},
		{5, 12, KnownIdentifier},
		{13, 14, Identifier},
		{15, 21, Comment},
	}
	if !tokensEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if d, ok := def.Declaration("INCLUDE"); !ok || d != "Pulls in another file" {
		t.Errorf("Declaration = %q, %v", d, ok)
	}
}

func TestLoadTOMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "name = "},
		{"unknown field", "name = \"x\"\ncolour = 1"},
		{"missing name", "keywords = [\"a\"]"},
		{"bad class", "name = \"x\"\n[[patterns]]\nregex = \"a\"\nclass = \"sparkle\""},
		{"bad pair", "name = \"x\"\npairs = [\"(\"]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTOML([]byte(tt.data))
			if !errors.Is(err, ErrInvalidDefinition) {
				t.Errorf("err = %v, want ErrInvalidDefinition", err)
			}
		})
	}
}

func TestLoadYAMLExtends(t *testing.T) {
	data := []byte(`
name: C-ext
extends: c
keywords: [my_kw]
identifiers:
  my_fn: "does things"
comment_exception: "\\"
`)
	def, err := LoadYAML(data)
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if def.CommentStart != "/*" || def.LineComment != "//" {
		t.Errorf("base delimiters not inherited: %+v", def)
	}
	if def.CommentException != '\\' {
		t.Errorf("CommentException = %q", def.CommentException)
	}

	m := Compile(def, logging.Discard())
	got := m.Tokens("my_kw int my_fn abs")
	want := []Token{
		{0, 5, Keyword},
		{6, 9, Keyword},
		{10, 15, KnownIdentifier},
		{16, 19, KnownIdentifier},
	}
	if !tokensEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if C().Keywords.Has("my_kw") {
		t.Error("extending modified the preset")
	}
}

func TestLoadYAMLErrors(t *testing.T) {
	if _, err := LoadYAML([]byte("name: x\nbogus: 1\n")); !errors.Is(err, ErrInvalidDefinition) {
		t.Errorf("unknown field: err = %v", err)
	}
	if _, err := LoadYAML([]byte("name: x\nextends: cobol\n")); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("bad extends: err = %v", err)
	}
}

const iniLua = `
return {
  name = "INI-lua",
  case_sensitive = false,
  keywords = { "true", "false" },
  identifiers = { include = "Pulls in another file" },
  patterns = {
    { "[;#].*", "comment" },
    { "[a-zA-Z_][a-zA-Z0-9_]*", "identifier" },
  },
  line_comment = ";",
  pairs = { "[]" },
  tokenize = function(text)
    local s, e = string.find(text, "^%$%w+")
    if s then return s, e, "preproc_identifier" end
  end,
}
`

func TestLoadLua(t *testing.T) {
	def, err := LoadLua("ini.lua", iniLua)
	if err != nil {
		t.Fatalf("LoadLua: %v", err)
	}
	if def.Name != "INI-lua" || def.CaseSensitive || def.Tokenize == nil {
		t.Fatalf("unexpected definition: %+v", def)
	}

	m := Compile(def, logging.Discard())
	got := m.Tokens("$home true ;c")
	want := []Token{
		{0, 5, PreprocIdentifier},
		{6, 10, Keyword},
		{11, 13, Comment},
	}
	if !tokensEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLoadLuaErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"syntax", "return {"},
		{"runtime", "error('boom')"},
		{"not a table", "return 42"},
		{"sandboxed", "dofile('/etc/passwd')"},
		{"missing name", "return { keywords = {} }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadLua(tt.name, tt.script); !errors.Is(err, ErrInvalidDefinition) {
				t.Errorf("err = %v, want ErrInvalidDefinition", err)
			}
		})
	}
}

func withLuaTimeouts(t *testing.T, d time.Duration) {
	t.Helper()
	load, tokenize := luaLoadTimeout, luaTokenizeTimeout
	luaLoadTimeout, luaTokenizeTimeout = d, d
	t.Cleanup(func() { luaLoadTimeout, luaTokenizeTimeout = load, tokenize })
}

func TestLoadLuaEndlessScript(t *testing.T) {
	withLuaTimeouts(t, 20*time.Millisecond)

	if _, err := LoadLua("endless", "while true do end"); !errors.Is(err, ErrInvalidDefinition) {
		t.Errorf("err = %v, want ErrInvalidDefinition", err)
	}
}

func TestLuaTokenizeTimeout(t *testing.T) {
	withLuaTimeouts(t, 20*time.Millisecond)

	def, err := LoadLua("spin.lua", `
return {
  name = "spin",
  patterns = { { "[a-z]+", "identifier" } },
  tokenize = function(text)
    while true do end
  end,
}
`)
	if err != nil {
		t.Fatalf("LoadLua: %v", err)
	}
	if _, _, _, ok := def.Tokenize("abc"); ok {
		t.Fatal("a tokenize call that times out must not match")
	}

	// The hook is off now, so the patterns take over at once.
	start := time.Now()
	got := Compile(def, logging.Discard()).Tokens("abc def")
	want := []Token{{0, 3, Identifier}, {4, 7, Identifier}}
	if !tokensEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("tokenizing took %v after the hook timed out", elapsed)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ini.toml")
	if err := os.WriteFile(path, []byte(iniTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	r := Builtin()
	def, err := r.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	got, err := r.Lookup("ini")
	if err != nil || got != def {
		t.Errorf("Lookup(ini) = %v, %v", got, err)
	}

	bad := filepath.Join(dir, "ini.xml")
	if err := os.WriteFile(bad, []byte("<x/>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRegistry(t *testing.T) {
	r := Builtin()
	if r.Len() != 9 {
		t.Errorf("Len() = %d, want 9", r.Len())
	}
	names := r.Names()
	if names[0] != "Text" || names[len(names)-1] != "SQL" {
		t.Errorf("Names() = %v", names)
	}

	for _, name := range []string{"json", "JSON", "c++", "Lua"} {
		if _, err := r.Lookup(name); err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
		}
	}
	if _, err := r.Lookup("cobol"); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("err = %v, want ErrUnknownLanguage", err)
	}
	if err := r.Register(&Definition{}); !errors.Is(err, ErrInvalidDefinition) {
		t.Errorf("err = %v, want ErrInvalidDefinition", err)
	}

	replacement := &Definition{Name: "json"}
	if err := r.Register(replacement); err != nil {
		t.Fatal(err)
	}
	if got, _ := r.Lookup("JSON"); got != replacement {
		t.Error("Register should replace an existing name")
	}
	if r.Len() != 9 {
		t.Errorf("replacement changed Len() to %d", r.Len())
	}
}
