package lang

import (
	"fmt"
	"strings"
)

// PaletteIndex is the syntactic class of a glyph. The first block classifies
// text; the rest name gutter and decoration colours a renderer needs.
type PaletteIndex uint8

const (
	Default PaletteIndex = iota
	Keyword
	Number
	String
	CharLiteral
	Punctuation
	Preprocessor
	Symbol
	Identifier
	KnownIdentifier
	PreprocIdentifier
	Comment
	MultiLineComment
	Space
	Background
	Cursor
	Selection
	ErrorMarker
	WarningMarker
	Breakpoint
	ProgramPointer
	LineNumber
	CurrentLineFill
	CurrentLineFillInactive
	CurrentLineEdge
	LineEdited
	LineEditedSaved
	LineEditedReverted

	// PaletteMax is the number of palette entries.
	PaletteMax
)

var paletteNames = [PaletteMax]string{
	"default",
	"keyword",
	"number",
	"string",
	"char_literal",
	"punctuation",
	"preprocessor",
	"symbol",
	"identifier",
	"known_identifier",
	"preproc_identifier",
	"comment",
	"multi_line_comment",
	"space",
	"background",
	"cursor",
	"selection",
	"error_marker",
	"warning_marker",
	"breakpoint",
	"program_pointer",
	"line_number",
	"current_line_fill",
	"current_line_fill_inactive",
	"current_line_edge",
	"line_edited",
	"line_edited_saved",
	"line_edited_reverted",
}

// String returns the snake_case name used in definition files.
func (p PaletteIndex) String() string {
	if p < PaletteMax {
		return paletteNames[p]
	}
	return fmt.Sprintf("palette(%d)", uint8(p))
}

// IsComment reports whether p is one of the comment classes.
func (p PaletteIndex) IsComment() bool {
	return p == Comment || p == MultiLineComment
}

// ParsePaletteIndex parses a class name. Dashes, spaces and case are
// ignored, so "Known-Identifier" and "known_identifier" are the same.
func ParsePaletteIndex(name string) (PaletteIndex, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	for i, n := range paletteNames {
		if n == key {
			return PaletteIndex(i), nil
		}
	}
	return Default, fmt.Errorf("%w: unknown token class %q", ErrInvalidDefinition, name)
}

// Palette maps every PaletteIndex to a colour packed as 0xAABBGGRR.
type Palette [PaletteMax]uint32

// RGB returns the colour of p as a "#rrggbb" string.
func (pl *Palette) RGB(p PaletteIndex) string {
	c := pl[p]
	return fmt.Sprintf("#%02x%02x%02x", c&0xff, (c>>8)&0xff, (c>>16)&0xff)
}

// DarkPalette is the default colour scheme.
var DarkPalette = Palette{
	0xffffffff, // default
	0xffd69c56, // keyword
	0xffa8ceb5, // number
	0xff859dd6, // string
	0xff70a0e0, // char literal
	0xffb4b4b4, // punctuation
	0xff409090, // preprocessor
	0xff5ac8c8, // symbol
	0xffdadada, // identifier
	0xffb0c94e, // known identifier
	0xffc040a0, // preproc identifier
	0xff4aa657, // comment
	0xff4aa657, // multi-line comment
	0x90909090, // space
	0xff2c2c2c, // background
	0xffe0e0e0, // cursor
	0x80a06020, // selection
	0x804d00ff, // error marker
	0x8005f0fa, // warning marker
	0xe00020f0, // breakpoint
	0xe000f0f0, // program pointer
	0xffaf912b, // line number
	0x40000000, // current line fill
	0x40808080, // current line fill, inactive
	0x40a0a0a0, // current line edge
	0xff84f2ef, // line edited
	0xff307457, // line edited, saved
	0xfffa955f, // line edited, reverted
}

// LightPalette suits light backgrounds.
var LightPalette = Palette{
	0xff000000,
	0xffff0c06,
	0xff008000,
	0xff2020a0,
	0xff304070,
	0xff000000,
	0xff409090,
	0xff5ac8c8,
	0xff404040,
	0xff606010,
	0xffc040a0,
	0xff205020,
	0xff405020,
	0xffaf912b,
	0xffffffff,
	0xff000000,
	0xffffd6ad,
	0xa00010ff,
	0x8005f0fa,
	0xe00020f0,
	0xe000f0f0,
	0xffaf912b,
	0x20000000,
	0x20808080,
	0x20000000,
	0xff84f2ef,
	0xff307457,
	0xfffa955f,
}

// RetroBluePalette mimics old blue-screen IDEs.
var RetroBluePalette = Palette{
	0xff00ffff,
	0xffffff00,
	0xff00ff00,
	0xff808000,
	0xff808000,
	0xffffffff,
	0xff008000,
	0xff5ac8c8,
	0xff00ffff,
	0xffffffff,
	0xffff00ff,
	0xffb0b0b0,
	0xffa0a0a0,
	0x90909090,
	0xff753929,
	0xff0080ff,
	0x80ffff00,
	0xa00000ff,
	0x8005f0fa,
	0xe00020f0,
	0xe000f0f0,
	0xff808000,
	0x40000000,
	0x40808080,
	0x40000000,
	0xff84f2ef,
	0xff307457,
	0xfffa955f,
}

// PaletteByName returns one of the built-in palettes: "dark", "light" or
// "retro".
func PaletteByName(name string) (*Palette, bool) {
	switch strings.ToLower(name) {
	case "", "dark":
		return &DarkPalette, true
	case "light":
		return &LightPalette, true
	case "retro", "retroblue", "retro_blue":
		return &RetroBluePalette, true
	}
	return nil, false
}
