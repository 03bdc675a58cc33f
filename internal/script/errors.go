package script

import (
	"errors"
	"fmt"
)

// Errors returned while loading or running scripts.
var (
	// ErrUnknownCommand indicates a cmd step names no command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidStep indicates a step with zero or several actions, or an
	// unusable argument.
	ErrInvalidStep = errors.New("invalid step")

	// ErrInvalidKey indicates a key chord that can't be parsed.
	ErrInvalidKey = errors.New("invalid key chord")

	// ErrExpectation indicates the editor state differs from an expect block.
	ErrExpectation = errors.New("expectation failed")
)

// StepError reports which step of a script failed.
type StepError struct {
	// Index is the zero-based step index, or -1 for the final expect block.
	Index int
	// Action describes the step, e.g. `key "ctrl+z"`.
	Action string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("final expect: %v", e.Err)
	}
	return fmt.Sprintf("step %d (%s): %v", e.Index+1, e.Action, e.Err)
}

// Unwrap returns the underlying error.
func (e *StepError) Unwrap() error {
	return e.Err
}

// MismatchError describes one expectation that did not hold.
type MismatchError struct {
	Field string
	Want  any
	Got   any
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: want %#v, got %#v", e.Field, e.Want, e.Got)
}

// Is matches ErrExpectation.
func (e *MismatchError) Is(target error) bool {
	return target == ErrExpectation
}
