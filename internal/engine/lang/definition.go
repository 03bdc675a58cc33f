package lang

import (
	"maps"
	"slices"
)

// Set is a set of symbols.
type Set map[string]struct{}

// NewSet returns a set holding words.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Has reports whether w is in the set.
func (s Set) Has(w string) bool {
	_, ok := s[w]
	return ok
}

// KnownSymbol is a symbol the language knows about.
type KnownSymbol struct {
	// Declaration is shown to the user when hovering the symbol.
	Declaration string
}

// Identifiers maps symbols to their declarations.
type Identifiers map[string]KnownSymbol

func builtins(names ...string) Identifiers {
	ids := make(Identifiers, len(names))
	for _, n := range names {
		ids[n] = KnownSymbol{Declaration: "Built-in function"}
	}
	return ids
}

// Pattern maps a regular expression to the class of text it matches.
// Patterns are tried in order and the first one that matches at the
// current position wins, even if a later one would match more text.
type Pattern struct {
	Expr  string
	Class PaletteIndex
}

// Pair is an auto-close pair such as '(' and ')'.
type Pair struct {
	Open  rune
	Close rune
}

// TokenizeFunc recognises a token at the start of text. It returns the byte
// bounds of the token within text. A token that is empty or out of bounds is
// ignored and the regular patterns are tried instead.
type TokenizeFunc func(text string) (start, end int, class PaletteIndex, ok bool)

// Definition describes how one language is coloured and edited.
// A Definition must not be modified once it is handed to an editor.
type Definition struct {
	Name string

	Keywords           Set
	Identifiers        Identifiers
	PreprocIdentifiers Identifiers

	Patterns []Pattern

	// CommentStart and CommentEnd delimit block comments. Both must be set
	// for block comments to be detected.
	CommentStart string
	CommentEnd   string

	// LineComment starts a comment that runs to the end of the line. It is
	// also what Comment and Uncomment insert and remove.
	LineComment string

	// CommentException disables a comment delimiter it immediately precedes.
	// Zero means none.
	CommentException rune

	// Pairs are the auto-close pairs for typed characters.
	Pairs []Pair

	CaseSensitive bool

	// Tokenize, when set, is consulted before Patterns at every position.
	Tokenize TokenizeFunc
}

// FindPair returns the pair opened by r.
func (d *Definition) FindPair(r rune) (Pair, bool) {
	for _, p := range d.Pairs {
		if p.Open == r {
			return p, true
		}
	}
	return Pair{}, false
}

// Declaration returns the declaration text for a known or preprocessor
// identifier.
func (d *Definition) Declaration(symbol string) (string, bool) {
	if id, ok := d.lookup(d.Identifiers, symbol); ok {
		return id.Declaration, true
	}
	if id, ok := d.lookup(d.PreprocIdentifiers, symbol); ok {
		return id.Declaration, true
	}
	return "", false
}

func (d *Definition) lookup(ids Identifiers, symbol string) (KnownSymbol, bool) {
	if id, ok := ids[symbol]; ok {
		return id, true
	}
	if d.CaseSensitive {
		return KnownSymbol{}, false
	}
	folded := foldSymbol(symbol)
	for name, id := range ids {
		if foldSymbol(name) == folded {
			return id, true
		}
	}
	return KnownSymbol{}, false
}

// Clone returns a deep copy of d that may be modified freely.
func (d *Definition) Clone() *Definition {
	c := *d
	c.Keywords = maps.Clone(d.Keywords)
	c.Identifiers = maps.Clone(d.Identifiers)
	c.PreprocIdentifiers = maps.Clone(d.PreprocIdentifiers)
	c.Patterns = slices.Clone(d.Patterns)
	c.Pairs = slices.Clone(d.Pairs)
	return &c
}

// WithPairs returns a copy of d using pairs for auto-close.
func (d *Definition) WithPairs(pairs ...Pair) *Definition {
	c := d.Clone()
	c.Pairs = slices.Clone(pairs)
	return c
}

// BracketPairs are the pairs most C-like languages want.
var BracketPairs = []Pair{
	{'(', ')'},
	{'[', ']'},
	{'{', '}'},
	{'"', '"'},
	{'\'', '\''},
}
