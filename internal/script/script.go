package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dshills/glyphedit/internal/engine"
	"github.com/dshills/glyphedit/internal/engine/lang"
)

// Script is one edit scenario.
type Script struct {
	Name     string `yaml:"name,omitempty"`
	Language string `yaml:"language,omitempty"`

	TabSize       int  `yaml:"tab_size,omitempty"`
	IndentWithTab bool `yaml:"indent_with_tab,omitempty"`
	Overwrite     bool `yaml:"overwrite,omitempty"`
	NoMerge       bool `yaml:"no_merge,omitempty"`

	// Pairs enables auto-closing for two-character strings such as "()".
	Pairs []string `yaml:"pairs,omitempty"`

	// Text is the starting content.
	Text   string  `yaml:"text,omitempty"`
	Steps  []Step  `yaml:"steps,omitempty"`
	Expect *Expect `yaml:"expect,omitempty"`
}

// Step is a single action with an optional check after it.
type Step struct {
	Type   string  `yaml:"type,omitempty"`
	Key    string  `yaml:"key,omitempty"`
	Cmd    string  `yaml:"cmd,omitempty"`
	Cursor *Pos    `yaml:"cursor,omitempty"`
	Select []Pos   `yaml:"select,omitempty"`
	Paste  *string `yaml:"paste,omitempty"`
	Undo   int     `yaml:"undo,omitempty"`
	Redo   int     `yaml:"redo,omitempty"`

	// Repeat runs the action this many times. Zero means once.
	Repeat int     `yaml:"repeat,omitempty"`
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect lists checks on the editor state. Unset fields are not checked.
type Expect struct {
	Text      *string `yaml:"text,omitempty"`
	Cursor    *Pos    `yaml:"cursor,omitempty"`
	Selection []Pos   `yaml:"selection,omitempty"`
	Lines     *int    `yaml:"lines,omitempty"`
	Dirty     *bool   `yaml:"dirty,omitempty"`
	CanUndo   *bool   `yaml:"can_undo,omitempty"`
	CanRedo   *bool   `yaml:"can_redo,omitempty"`
	Tokens    *int    `yaml:"tokens,omitempty"`
	Clipboard *string `yaml:"clipboard,omitempty"`
}

// Pos is a [line, column] pair.
type Pos struct {
	Line, Column int
}

// UnmarshalYAML decodes a two-element sequence.
func (p *Pos) UnmarshalYAML(value *yaml.Node) error {
	var pair []int
	if err := value.Decode(&pair); err != nil {
		return fmt.Errorf("line %d: position must be [line, column]: %w", value.Line, err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: position must be [line, column], got %d values", value.Line, len(pair))
	}
	p.Line, p.Column = pair[0], pair[1]
	return nil
}

// MarshalYAML encodes p as a flow sequence.
func (p Pos) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []int{p.Line, p.Column} {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)})
	}
	return n, nil
}

// Coordinates converts p for the editor.
func (p Pos) Coordinates() engine.Coordinates {
	return engine.At(p.Line, p.Column)
}

func posOf(c engine.Coordinates) Pos {
	return Pos{Line: c.Line, Column: c.Column}
}

// Parse decodes and validates a script. Unknown fields are rejected.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty script", ErrInvalidStep)
		}
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the script at path. A script without a name is
// named after the file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Encode writes s as YAML.
func (s *Script) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks every step without running anything.
func (s *Script) Validate() error {
	var errs []error
	if _, err := s.pairs(); err != nil {
		errs = append(errs, err)
	}
	for i := range s.Steps {
		if err := s.Steps[i].validate(); err != nil {
			errs = append(errs, &StepError{Index: i, Action: s.Steps[i].Action(), Err: err})
		}
	}
	return errors.Join(errs...)
}

func (s *Script) pairs() ([]lang.Pair, error) {
	out := make([]lang.Pair, 0, len(s.Pairs))
	for _, p := range s.Pairs {
		r := []rune(p)
		if len(r) != 2 {
			return nil, fmt.Errorf("%w: pair %q must be two characters", ErrInvalidStep, p)
		}
		out = append(out, lang.Pair{Open: r[0], Close: r[1]})
	}
	return out, nil
}

func (st *Step) validate() error {
	n := 0
	for _, set := range []bool{
		st.Type != "", st.Key != "", st.Cmd != "", st.Cursor != nil,
		st.Select != nil, st.Paste != nil, st.Undo != 0, st.Redo != 0,
	} {
		if set {
			n++
		}
	}
	switch {
	case n > 1:
		return fmt.Errorf("%w: %d actions in one step", ErrInvalidStep, n)
	case n == 0 && st.Expect == nil:
		return fmt.Errorf("%w: no action", ErrInvalidStep)
	case st.Repeat < 0:
		return fmt.Errorf("%w: negative repeat", ErrInvalidStep)
	case st.Undo < 0 || st.Redo < 0:
		return fmt.Errorf("%w: negative step count", ErrInvalidStep)
	case st.Select != nil && len(st.Select) != 2:
		return fmt.Errorf("%w: select needs two positions", ErrInvalidStep)
	}
	if st.Key != "" {
		if _, _, err := ParseChord(st.Key); err != nil {
			return err
		}
	}
	if st.Cmd != "" {
		if _, ok := commands[st.Cmd]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCommand, st.Cmd)
		}
	}
	return nil
}

// Action describes the step for logs and errors.
func (st *Step) Action() string {
	switch {
	case st.Type != "":
		return "type " + strconv.Quote(st.Type)
	case st.Key != "":
		return "key " + strconv.Quote(st.Key)
	case st.Cmd != "":
		return "cmd " + st.Cmd
	case st.Cursor != nil:
		return fmt.Sprintf("cursor [%d, %d]", st.Cursor.Line, st.Cursor.Column)
	case len(st.Select) == 2:
		return fmt.Sprintf("select [%d, %d]-[%d, %d]",
			st.Select[0].Line, st.Select[0].Column, st.Select[1].Line, st.Select[1].Column)
	case st.Paste != nil:
		return "paste " + strconv.Quote(*st.Paste)
	case st.Undo != 0:
		return fmt.Sprintf("undo %d", st.Undo)
	case st.Redo != 0:
		return fmt.Sprintf("redo %d", st.Redo)
	case st.Select != nil:
		return "select"
	}
	return "expect"
}
