package script

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/dshills/glyphedit/internal/engine"
	"github.com/dshills/glyphedit/internal/engine/lang"
	"github.com/dshills/glyphedit/internal/logging"
)

// Runner plays scripts. A Runner holds no per-script state and may be
// reused.
type Runner struct {
	registry *lang.Registry
	options  []engine.Option
	logger   *log.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithRegistry sets the registry used to resolve script languages.
func WithRegistry(reg *lang.Registry) Option {
	return func(r *Runner) {
		r.registry = reg
	}
}

// WithEngineOptions sets options applied to every editor before the
// script's own settings.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(r *Runner) {
		r.options = append(r.options, opts...)
	}
}

// WithLogger sets the logger. The default comes from the context passed to
// Run.
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry == nil {
		r.registry = lang.Builtin()
	}
	return r
}

// Result is the outcome of a successful run.
type Result struct {
	// Editor is the editor the script ran against, in its final state.
	Editor *engine.Editor
	// Steps is the number of steps performed.
	Steps int
}

// Run plays s against a fresh editor. It stops at the first failing step
// or expectation and when ctx is done.
func (r *Runner) Run(ctx context.Context, s *Script) (*Result, error) {
	logger := r.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	logger = logger.With(logging.FieldScript, s.Name)

	opts, err := r.editorOptions(s, logger)
	if err != nil {
		return nil, err
	}
	e := engine.New(opts...)
	e.Flush()

	res := &Result{Editor: e}
	for i := range s.Steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		st := &s.Steps[i]
		logger.Debug("step", "n", i+1, logging.FieldCommand, st.Action())

		for range max(st.Repeat, 1) {
			if err := apply(e, st); err != nil {
				return res, &StepError{Index: i, Action: st.Action(), Err: err}
			}
		}
		res.Steps++

		if st.Expect != nil {
			if err := check(e, st.Expect); err != nil {
				return res, &StepError{Index: i, Action: st.Action(), Err: err}
			}
		}
	}

	if s.Expect != nil {
		if err := check(e, s.Expect); err != nil {
			return res, &StepError{Index: -1, Action: "expect", Err: err}
		}
	}
	logger.Debug("script passed", logging.FieldSteps, res.Steps)
	return res, nil
}

func (r *Runner) editorOptions(s *Script, logger *log.Logger) ([]engine.Option, error) {
	opts := append([]engine.Option{engine.WithLogger(logger)}, r.options...)

	var def *lang.Definition
	if s.Language != "" {
		var err error
		if def, err = r.registry.Lookup(s.Language); err != nil {
			return nil, err
		}
	}
	if len(s.Pairs) > 0 {
		pairs, err := s.pairs()
		if err != nil {
			return nil, err
		}
		if def == nil {
			def = lang.Text()
		}
		def = def.WithPairs(pairs...)
	}
	if def != nil {
		opts = append(opts, engine.WithLanguage(def))
	}
	if s.TabSize > 0 {
		opts = append(opts, engine.WithTabSize(s.TabSize))
	}
	if s.IndentWithTab {
		opts = append(opts, engine.WithIndentWithTab(true))
	}
	if s.Overwrite {
		opts = append(opts, engine.WithOverwrite())
	}
	if s.NoMerge {
		opts = append(opts, engine.WithMergeUndo(false))
	}
	return append(opts, engine.WithContent(s.Text)), nil
}

func apply(e *engine.Editor, st *Step) error {
	switch {
	case st.Type != "":
		e.InputText(st.Type)
	case st.Key != "":
		key, mods, err := ParseChord(st.Key)
		if err != nil {
			return err
		}
		if !e.HandleKey(key, mods) {
			return fmt.Errorf("%w: %q is not bound", ErrInvalidKey, st.Key)
		}
	case st.Cmd != "":
		fn, ok := commands[st.Cmd]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCommand, st.Cmd)
		}
		fn(e)
	case st.Cursor != nil:
		e.SetCursorPosition(st.Cursor.Coordinates())
	case st.Select != nil:
		if len(st.Select) != 2 {
			return fmt.Errorf("%w: select needs two positions", ErrInvalidStep)
		}
		e.SetSelection(st.Select[0].Coordinates(), st.Select[1].Coordinates(), false)
	case st.Paste != nil:
		e.PasteText(*st.Paste)
	case st.Undo != 0:
		return e.Undo(st.Undo)
	case st.Redo != 0:
		return e.Redo(st.Redo)
	}
	return nil
}

func check(e *engine.Editor, want *Expect) error {
	var errs []error
	mismatch := func(field string, w, g any) {
		errs = append(errs, &MismatchError{Field: field, Want: w, Got: g})
	}

	if want.Text != nil {
		if got := e.Text("\n"); got != *want.Text {
			mismatch("text", *want.Text, got)
		}
	}
	if want.Cursor != nil {
		if got := posOf(e.CursorPosition()); got != *want.Cursor {
			mismatch("cursor", *want.Cursor, got)
		}
	}
	if want.Selection != nil {
		start, end := e.Selection()
		got := []Pos{posOf(start), posOf(end)}
		if len(want.Selection) != 2 || got[0] != want.Selection[0] || got[1] != want.Selection[1] {
			mismatch("selection", want.Selection, got)
		}
	}
	if want.Lines != nil {
		if got := e.LineCount(); got != *want.Lines {
			mismatch("lines", *want.Lines, got)
		}
	}
	if want.Dirty != nil {
		if got := e.IsDirty(); got != *want.Dirty {
			mismatch("dirty", *want.Dirty, got)
		}
	}
	if want.CanUndo != nil {
		if got := e.CanUndo(); got != *want.CanUndo {
			mismatch("can_undo", *want.CanUndo, got)
		}
	}
	if want.CanRedo != nil {
		if got := e.CanRedo(); got != *want.CanRedo {
			mismatch("can_redo", *want.CanRedo, got)
		}
	}
	if want.Tokens != nil {
		e.Flush()
		if got := e.TotalTokens(); got != *want.Tokens {
			mismatch("tokens", *want.Tokens, got)
		}
	}
	if want.Clipboard != nil {
		if got := e.Clipboard().Text(); got != *want.Clipboard {
			mismatch("clipboard", *want.Clipboard, got)
		}
	}
	return errors.Join(errs...)
}
