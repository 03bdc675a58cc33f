package lang

import (
	"regexp"

	"github.com/charmbracelet/log"

	"github.com/dshills/glyphedit/internal/engine/codec"
	"github.com/dshills/glyphedit/internal/logging"
)

// Token is a classified byte range of a line.
type Token struct {
	Start int
	End   int
	Class PaletteIndex
}

type rule struct {
	re    *regexp.Regexp
	class PaletteIndex
}

// Matcher is a Definition compiled for tokenizing.
type Matcher struct {
	def     *Definition
	rules   []rule
	dropped []string

	keywords Set
	ids      Identifiers
	preproc  Identifiers
}

// foldSymbol is the case folding applied to symbols of case-insensitive
// languages before set lookups.
func foldSymbol(s string) string {
	return codec.Upper(s)
}

// Compile builds a Matcher for def. Patterns that fail to compile are
// reported to logger and dropped; the remaining patterns keep their order.
// A nil logger means the package default.
func Compile(def *Definition, logger *log.Logger) *Matcher {
	if def == nil {
		def = Text()
	}
	logger = logging.OrDefault(logger)

	m := &Matcher{
		def:      def,
		keywords: def.Keywords,
		ids:      def.Identifiers,
		preproc:  def.PreprocIdentifiers,
	}
	if !def.CaseSensitive {
		m.keywords = make(Set, len(def.Keywords))
		for k := range def.Keywords {
			m.keywords[foldSymbol(k)] = struct{}{}
		}
		m.ids = foldIdentifiers(def.Identifiers)
		m.preproc = foldIdentifiers(def.PreprocIdentifiers)
	}

	for _, p := range def.Patterns {
		expr := `\A(?:` + p.Expr + `)`
		if !def.CaseSensitive {
			expr = `(?i)` + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			logger.Warn("dropping token pattern",
				logging.FieldLanguage, def.Name,
				logging.FieldPattern, p.Expr,
				logging.FieldError, err)
			m.dropped = append(m.dropped, p.Expr)
			continue
		}
		m.rules = append(m.rules, rule{re: re, class: p.Class})
	}
	return m
}

func foldIdentifiers(ids Identifiers) Identifiers {
	out := make(Identifiers, len(ids))
	for k, v := range ids {
		out[foldSymbol(k)] = v
	}
	return out
}

// Definition returns the definition m was compiled from.
func (m *Matcher) Definition() *Definition {
	return m.def
}

// Dropped returns the patterns that failed to compile.
func (m *Matcher) Dropped() []string {
	return m.dropped
}

// Rules returns the number of usable patterns.
func (m *Matcher) Rules() int {
	return len(m.rules)
}

// Classify resolves an identifier against the keyword and identifier sets.
// Inside a preprocessor directive only preprocessor identifiers are
// recognised.
func (m *Matcher) Classify(symbol string, preproc bool) PaletteIndex {
	if !m.def.CaseSensitive {
		symbol = foldSymbol(symbol)
	}
	if preproc {
		if _, ok := m.preproc[symbol]; ok {
			return PreprocIdentifier
		}
		return Identifier
	}
	if m.keywords.Has(symbol) {
		return Keyword
	}
	if _, ok := m.ids[symbol]; ok {
		return KnownIdentifier
	}
	if _, ok := m.preproc[symbol]; ok {
		return PreprocIdentifier
	}
	return Identifier
}

// Tokens splits one line of text into classified tokens. Text that no
// pattern matches is skipped one character at a time and yields no token,
// so every call finishes after at most len(text) steps.
func (m *Matcher) Tokens(text string) []Token {
	var tokens []Token
	preproc := false
	pos := 0
	for pos < len(text) {
		if tok, ok := m.custom(text, pos); ok {
			tokens = append(tokens, tok)
			pos = tok.End
			continue
		}

		matched := false
		rest := text[pos:]
		for _, r := range m.rules {
			loc := r.re.FindStringIndex(rest)
			if loc == nil || loc[1] == 0 {
				continue
			}
			class := r.class
			switch class {
			case Identifier:
				class = m.Classify(rest[:loc[1]], preproc)
			case Preprocessor:
				preproc = true
			}
			tokens = append(tokens, Token{Start: pos, End: pos + loc[1], Class: class})
			pos += loc[1]
			matched = true
			break
		}
		if matched {
			continue
		}

		_, n := codec.DecodeString(rest)
		if n == 0 {
			n = 1
		}
		pos += n
	}
	return tokens
}

func (m *Matcher) custom(text string, pos int) (Token, bool) {
	if m.def.Tokenize == nil {
		return Token{}, false
	}
	start, end, class, ok := m.def.Tokenize(text[pos:])
	if !ok || start < 0 || end <= start || pos+end > len(text) {
		return Token{}, false
	}
	return Token{Start: pos + start, End: pos + end, Class: class}, true
}
