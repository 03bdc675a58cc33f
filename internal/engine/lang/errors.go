package lang

import "errors"

var (
	// ErrUnknownLanguage indicates a registry lookup found no definition.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrInvalidDefinition indicates a definition file could not be used.
	ErrInvalidDefinition = errors.New("invalid language definition")

	// ErrUnsupportedFormat indicates a definition file extension no loader handles.
	ErrUnsupportedFormat = errors.New("unsupported definition format")
)
