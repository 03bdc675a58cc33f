package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/glyphedit/internal/engine"
	"github.com/dshills/glyphedit/internal/engine/colorize"
	"github.com/dshills/glyphedit/internal/engine/document"
	"github.com/dshills/glyphedit/internal/engine/lang"
	"github.com/dshills/glyphedit/internal/logging"
)

// FileName is the name of the configuration file inside the user config
// directory.
const FileName = "glyphedit.toml"

// Config is the complete glyphedit configuration.
type Config struct {
	Editor    EditorConfig    `toml:"editor"`
	Log       LogConfig       `toml:"log"`
	Languages LanguagesConfig `toml:"languages"`
}

// EditorConfig holds the settings applied to every editor instance.
type EditorConfig struct {
	TabSize       int    `toml:"tabSize"`
	IndentWithTab bool   `toml:"indentWithTab"`
	ReadOnly      bool   `toml:"readOnly"`
	Overwrite     bool   `toml:"overwrite"`
	MergeUndo     bool   `toml:"mergeUndo"`
	UndoLimit     int    `toml:"undoLimit"`
	PageSize      int    `toml:"pageSize"`
	ColorizeBatch int    `toml:"colorizeBatch"`
	CommentDelay  int    `toml:"commentDelay"`
	Language      string `toml:"language"`
	Palette       string `toml:"palette"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	// Level is one of "debug", "info", "warn" or "error".
	Level string `toml:"level"`
	// Format is one of "text", "json" or "logfmt".
	Format string `toml:"format"`
}

// LanguagesConfig lists extra language definition files (YAML, TOML or
// Lua) registered next to the presets.
type LanguagesConfig struct {
	Paths []string `toml:"paths"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabSize:       document.DefaultTabSize,
			MergeUndo:     true,
			UndoLimit:     engine.DefaultUndoLimit,
			PageSize:      engine.DefaultPageSize,
			ColorizeBatch: colorize.DefaultBatch,
			CommentDelay:  colorize.DefaultCommentDelay,
			Language:      lang.Text().Name,
			Palette:       "dark",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultPath returns the conventional location of the configuration file.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(dir, "glyphedit", FileName)
}

// Load builds a Config from the defaults, the TOML file at path and the
// environment, then validates it. An empty path skips the file layer.
func Load(path string) (*Config, error) {
	overrides := make(map[string]any)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
			}
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		file, err := parse(path, data)
		if err != nil {
			return nil, err
		}
		deepMerge(overrides, file)
	}
	return build(overrides, newEnvLoader())
}

// LoadDefault loads the file at DefaultPath when it exists and falls back
// to defaults plus environment otherwise.
func LoadDefault() (*Config, error) {
	path := DefaultPath()
	if _, err := os.Stat(path); err != nil {
		path = ""
	}
	return Load(path)
}

// LoadReader is Load for configuration held in r. The environment still
// applies.
func LoadReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	file, err := parse("<reader>", data)
	if err != nil {
		return nil, err
	}
	return build(file, newEnvLoader())
}

func build(overrides map[string]any, env *envLoader) (*Config, error) {
	deepMerge(overrides, env.Load())

	cfg := Default()
	if err := cfg.decode(overrides); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parse parses TOML data into a map.
func parse(source string, data []byte) (map[string]any, error) {
	var out map[string]any
	if err := toml.Unmarshal(data, &out); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return nil, perr
	}
	return out, nil
}

// decode applies a merged override map on top of c. Keys that don't match
// a setting are rejected.
func (c *Config) decode(overrides map[string]any) error {
	data, err := toml.Marshal(overrides)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("%w: unknown setting\n%s", ErrInvalidConfig, strict.String())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Validate reports every setting with an unusable value. The returned
// error matches ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, path, msg string, value any) {
		if !ok {
			errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value})
		}
	}

	e := c.Editor
	check(e.TabSize >= 1 && e.TabSize <= 32, "editor.tabSize", "must be between 1 and 32", e.TabSize)
	check(e.UndoLimit >= 0, "editor.undoLimit", "must not be negative", e.UndoLimit)
	check(e.PageSize >= 1, "editor.pageSize", "must be positive", e.PageSize)
	check(e.ColorizeBatch >= 1, "editor.colorizeBatch", "must be positive", e.ColorizeBatch)
	check(e.CommentDelay >= 0, "editor.commentDelay", "must not be negative", e.CommentDelay)
	_, ok := lang.PaletteByName(e.Palette)
	check(ok, "editor.palette", "must be dark, light or retro", e.Palette)

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		check(false, "log.level", "must be debug, info, warn or error", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json", "logfmt":
	default:
		check(false, "log.format", "must be text, json or logfmt", c.Log.Format)
	}
	for i, p := range c.Languages.Paths {
		check(strings.TrimSpace(p) != "", fmt.Sprintf("languages.paths[%d]", i), "must not be empty", p)
	}

	return errors.Join(errs...)
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(c)
}

// Logger builds the logger described by the log section.
func (c LogConfig) Logger(w io.Writer) *log.Logger {
	logger := logging.NewWriter(w, c.Level)
	switch strings.ToLower(c.Format) {
	case "json":
		logger.SetFormatter(log.JSONFormatter)
	case "logfmt":
		logger.SetFormatter(log.LogfmtFormatter)
	}
	return logger
}

// PaletteColors returns the colour table named by editor.palette.
func (c *Config) PaletteColors() *lang.Palette {
	if p, ok := lang.PaletteByName(c.Editor.Palette); ok {
		return p
	}
	return &lang.DarkPalette
}

// LoadLanguages registers every file listed in languages.paths with reg. A
// leading "~/" is expanded to the home directory. Files that fail to load
// are logged and reported together; the others are still registered.
func (c *Config) LoadLanguages(reg *lang.Registry, logger *log.Logger) error {
	logger = logging.OrDefault(logger)
	var errs []error
	for _, p := range c.Languages.Paths {
		path := expandHome(p)
		def, err := reg.LoadFile(path)
		if err != nil {
			logger.Warn("skipping language definition", logging.FieldPath, path, logging.FieldError, err)
			errs = append(errs, fmt.Errorf("language %s: %w", path, err))
			continue
		}
		logger.Debug("registered language", logging.FieldLanguage, def.Name, logging.FieldPath, path)
	}
	return errors.Join(errs...)
}

// EngineOptions converts the editor section into engine options. The
// language is resolved through reg.
func (c *Config) EngineOptions(reg *lang.Registry, logger *log.Logger) ([]engine.Option, error) {
	e := c.Editor
	def, err := reg.Lookup(e.Language)
	if err != nil {
		return nil, fmt.Errorf("%w: editor.language: %w", ErrInvalidConfig, err)
	}

	opts := []engine.Option{
		engine.WithTabSize(e.TabSize),
		engine.WithIndentWithTab(e.IndentWithTab),
		engine.WithMergeUndo(e.MergeUndo),
		engine.WithUndoLimit(e.UndoLimit),
		engine.WithPageSize(e.PageSize),
		engine.WithColorizeBatch(e.ColorizeBatch),
		engine.WithCommentDelay(e.CommentDelay),
		engine.WithLanguage(def),
	}
	if e.ReadOnly {
		opts = append(opts, engine.WithReadOnly())
	}
	if e.Overwrite {
		opts = append(opts, engine.WithOverwrite())
	}
	if logger != nil {
		opts = append(opts, engine.WithLogger(logger))
	}
	return opts, nil
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
