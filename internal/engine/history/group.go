package history

import "github.com/dshills/glyphedit/internal/engine/codec"

// MergeFunc reports whether next may be undone or redone in the same step
// as first. A nil MergeFunc disables coalescing.
type MergeFunc func(first, next *Record) bool

// Similar is the default MergeFunc. Two records are similar when they have
// the same kind, address the same lines, and their content is, on both
// sides, a single ASCII letter, a single digit, a single blank, or a single
// multi-byte character. Typing a word thus undoes in one step.
func Similar(a, b *Record) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.Start.Line != b.Start.Line || a.End.Line != b.End.Line {
		return false
	}
	for _, class := range []func(string) bool{isLetter, isDigit, isBlank, isWideChar} {
		if class(a.Content) && class(b.Content) {
			return true
		}
	}
	return false
}

func isLetter(s string) bool {
	return len(s) == 1 && (s[0] >= 'a' && s[0] <= 'z' || s[0] >= 'A' && s[0] <= 'Z')
}

func isDigit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}

func isBlank(s string) bool {
	return len(s) == 1 && (s[0] == ' ' || s[0] == '\t')
}

// isWideChar reports whether s is exactly one UTF-8 character of 2 to 4
// bytes.
func isWideChar(s string) bool {
	if len(s) < 2 || len(s) > codec.MaxBytes {
		return false
	}
	_, n := codec.DecodeString(s)
	return n == len(s)
}
