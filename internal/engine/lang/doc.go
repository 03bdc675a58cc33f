// Package lang defines how languages are tokenized for colouring.
//
// A Definition is a data table: keyword and identifier sets, an ordered list
// of regular expression patterns mapped to token classes, comment delimiters
// and auto-close pairs. The presets (Text, JSON, AngelScript, C, C++, GLSL,
// HLSL, Lua and SQL) are built once on first use and shared.
//
// # Tokenizing
//
// Compile turns a Definition into a Matcher. Patterns are tried in
// declaration order at each position and the first one that matches wins;
// longest match is not attempted. Identifier matches are then resolved
// against the keyword and identifier sets, folding case first for
// case-insensitive languages:
//
//	m := lang.Compile(lang.C(), logger)
//	for _, tok := range m.Tokens("#include <stdio.h>") {
//		fmt.Println(tok.Start, tok.End, tok.Class)
//	}
//
// A pattern that fails to compile is logged and dropped.
//
// # Loading
//
// Definitions can also be loaded from YAML, TOML or Lua files (see LoadFile)
// and interned by name in a Registry.
package lang
