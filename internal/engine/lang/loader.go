package lang

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// fileDefinition is the on-disk form shared by the YAML and TOML loaders.
type fileDefinition struct {
	Name string `yaml:"name" toml:"name"`

	// Extends names a preset whose tables are copied before this file's
	// entries are applied.
	Extends string `yaml:"extends" toml:"extends"`

	CaseSensitive *bool `yaml:"case_sensitive" toml:"case_sensitive"`

	Keywords           []string          `yaml:"keywords" toml:"keywords"`
	Identifiers        map[string]string `yaml:"identifiers" toml:"identifiers"`
	PreprocIdentifiers map[string]string `yaml:"preproc_identifiers" toml:"preproc_identifiers"`

	Patterns []filePattern `yaml:"patterns" toml:"patterns"`

	CommentStart     string `yaml:"comment_start" toml:"comment_start"`
	CommentEnd       string `yaml:"comment_end" toml:"comment_end"`
	LineComment      string `yaml:"line_comment" toml:"line_comment"`
	CommentException string `yaml:"comment_exception" toml:"comment_exception"`

	// Pairs holds two-character strings such as "()".
	Pairs []string `yaml:"pairs" toml:"pairs"`
}

type filePattern struct {
	Regex string `yaml:"regex" toml:"regex"`
	Class string `yaml:"class" toml:"class"`
}

// LoadYAML parses a YAML language definition.
func LoadYAML(data []byte) (*Definition, error) {
	var fd fileDefinition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fd); err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrInvalidDefinition, err)
	}
	return fd.build()
}

// LoadTOML parses a TOML language definition.
func LoadTOML(data []byte) (*Definition, error) {
	var fd fileDefinition
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fd); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: toml line %d column %d: %w", ErrInvalidDefinition, row, col, err)
		}
		return nil, fmt.Errorf("%w: toml: %w", ErrInvalidDefinition, err)
	}
	return fd.build()
}

// LoadFile loads a definition, choosing the format by extension:
// .yaml/.yml, .toml or .lua.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read language definition: %w", err)
	}
	var def *Definition
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		def, err = LoadYAML(data)
	case ".toml":
		def, err = LoadTOML(data)
	case ".lua":
		def, err = LoadLua(path, string(data))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

func (fd *fileDefinition) build() (*Definition, error) {
	if fd.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidDefinition)
	}

	def := &Definition{CaseSensitive: true}
	if fd.Extends != "" {
		base, err := Builtin().Lookup(fd.Extends)
		if err != nil {
			return nil, fmt.Errorf("%w: extends: %w", ErrInvalidDefinition, err)
		}
		def = base.Clone()
	}
	def.Name = fd.Name
	if fd.CaseSensitive != nil {
		def.CaseSensitive = *fd.CaseSensitive
	}

	if len(fd.Keywords) > 0 && def.Keywords == nil {
		def.Keywords = make(Set, len(fd.Keywords))
	}
	for _, k := range fd.Keywords {
		def.Keywords[k] = struct{}{}
	}
	def.Identifiers = mergeIdentifiers(def.Identifiers, fd.Identifiers)
	def.PreprocIdentifiers = mergeIdentifiers(def.PreprocIdentifiers, fd.PreprocIdentifiers)

	if len(fd.Patterns) > 0 {
		// Patterns replace the base list; order is significant and merging
		// would put the new rules behind the base catch-alls.
		def.Patterns = def.Patterns[:0:0]
		for i, p := range fd.Patterns {
			class, err := ParsePaletteIndex(p.Class)
			if err != nil {
				return nil, fmt.Errorf("pattern %d: %w", i, err)
			}
			def.Patterns = append(def.Patterns, Pattern{Expr: p.Regex, Class: class})
		}
	}

	if fd.CommentStart != "" {
		def.CommentStart = fd.CommentStart
	}
	if fd.CommentEnd != "" {
		def.CommentEnd = fd.CommentEnd
	}
	if fd.LineComment != "" {
		def.LineComment = fd.LineComment
	}
	if fd.CommentException != "" {
		r, size := utf8.DecodeRuneInString(fd.CommentException)
		if size != len(fd.CommentException) {
			return nil, fmt.Errorf("%w: comment_exception must be one character", ErrInvalidDefinition)
		}
		def.CommentException = r
	}

	if len(fd.Pairs) > 0 {
		pairs, err := parsePairs(fd.Pairs)
		if err != nil {
			return nil, err
		}
		def.Pairs = pairs
	}
	return def, nil
}

func mergeIdentifiers(base Identifiers, decls map[string]string) Identifiers {
	if len(decls) == 0 {
		return base
	}
	if base == nil {
		base = make(Identifiers, len(decls))
	}
	for name, decl := range decls {
		base[name] = KnownSymbol{Declaration: decl}
	}
	return base
}

func parsePairs(specs []string) ([]Pair, error) {
	pairs := make([]Pair, 0, len(specs))
	for _, s := range specs {
		runes := []rune(s)
		if len(runes) != 2 {
			return nil, fmt.Errorf("%w: pair %q must be two characters", ErrInvalidDefinition, s)
		}
		pairs = append(pairs, Pair{Open: runes[0], Close: runes[1]})
	}
	return pairs, nil
}
