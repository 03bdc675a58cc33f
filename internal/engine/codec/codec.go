package codec

import (
	"unicode/utf8"
)

// MaxBytes is the largest number of bytes a Cell can hold.
const MaxBytes = 4

// Cell is one character as its UTF-8 bytes packed little-endian into 32 bits.
// Unused high bytes are zero.
type Cell uint32

// LeadLength returns the length of the UTF-8 sequence introduced by b,
// or 0 when b cannot start a sequence (a continuation byte, an overlong
// lead, or a byte outside the encoding).
func LeadLength(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b < 0xC2:
		return 0
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	case b < 0xF5:
		return 4
	}
	return 0
}

// Decode decodes the first character of p. It returns the code point and the
// number of bytes it occupies. A malformed or truncated sequence reports
// n == 0; the caller must then skip a single byte.
func Decode(p []byte) (r rune, n int) {
	if len(p) == 0 {
		return 0, 0
	}
	if LeadLength(p[0]) == 0 {
		return 0, 0
	}
	r, n = utf8.DecodeRune(p)
	if r == utf8.RuneError && n <= 1 {
		return 0, 0
	}
	return r, n
}

// DecodeString is Decode for strings.
func DecodeString(s string) (r rune, n int) {
	if len(s) == 0 || LeadLength(s[0]) == 0 {
		return 0, 0
	}
	r, n = utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && n <= 1 {
		return 0, 0
	}
	return r, n
}

// Pack packs up to MaxBytes bytes of p into a Cell.
func Pack(p []byte) Cell {
	var c Cell
	for i := 0; i < len(p) && i < MaxBytes; i++ {
		c |= Cell(p[i]) << (8 * i)
	}
	return c
}

// PackString packs the first n bytes of s into a Cell.
func PackString(s string, n int) Cell {
	var c Cell
	for i := 0; i < n && i < len(s) && i < MaxBytes; i++ {
		c |= Cell(s[i]) << (8 * i)
	}
	return c
}

// FromRune returns the cell holding the UTF-8 encoding of r.
func FromRune(r rune) Cell {
	var buf [MaxBytes]byte
	n := utf8.EncodeRune(buf[:], r)
	return Pack(buf[:n])
}

// FromByte returns the cell for a single ASCII byte.
func FromByte(b byte) Cell {
	return Cell(b)
}

// Len counts the stored bytes of c. It stops at the first zero byte, so a
// cell holding NUL reports 0.
func (c Cell) Len() int {
	n := 0
	for i := 0; i < MaxBytes; i++ {
		if byte(c>>(8*i)) == 0 {
			break
		}
		n = i + 1
	}
	return n
}

// AppendTo appends the stored bytes of c to dst.
func (c Cell) AppendTo(dst []byte) []byte {
	for i := 0; i < MaxBytes; i++ {
		b := byte(c >> (8 * i))
		if b == 0 {
			break
		}
		dst = append(dst, b)
	}
	return dst
}

// String returns the character as a string.
func (c Cell) String() string {
	var buf [MaxBytes]byte
	return string(c.AppendTo(buf[:0]))
}

// Rune decodes c. Cells that do not hold valid UTF-8 decode to
// utf8.RuneError.
func (c Cell) Rune() rune {
	var buf [MaxBytes]byte
	p := c.AppendTo(buf[:0])
	if len(p) == 0 {
		return 0
	}
	r, _ := utf8.DecodeRune(p)
	return r
}

// IsASCII reports whether c holds a single ASCII byte.
func (c Cell) IsASCII() bool {
	return c < 0x80
}

// Is reports whether c holds exactly the ASCII byte b.
func (c Cell) Is(b byte) bool {
	return c == Cell(b)
}

// IsBlank reports whether c is a space or a tab.
func (c Cell) IsBlank() bool {
	return c == ' ' || c == '\t'
}

// ToLower lowers ASCII letters of p in place and returns the number of bytes
// examined. Multi-byte sequences are skipped untouched and malformed bytes
// are stepped over one at a time.
func ToLower(p []byte) int {
	return fold(p, 'A', 'Z', 'a'-'A')
}

// ToUpper raises ASCII letters of p in place. See ToLower.
func ToUpper(p []byte) int {
	return fold(p, 'a', 'z', -('a' - 'A'))
}

func fold(p []byte, lo, hi byte, delta int) int {
	i := 0
	for i < len(p) {
		_, n := Decode(p[i:])
		switch {
		case n == 0:
			i++
		case n == 1:
			if p[i] >= lo && p[i] <= hi {
				p[i] = byte(int(p[i]) + delta)
			}
			i++
		default:
			i += n
		}
	}
	return i
}

// Lower returns s with ASCII letters lowered.
func Lower(s string) string {
	p := []byte(s)
	ToLower(p)
	return string(p)
}

// Upper returns s with ASCII letters raised.
func Upper(s string) string {
	p := []byte(s)
	ToUpper(p)
	return string(p)
}

// Split decodes s into cells, dropping malformed bytes one at a time.
func Split(s string) []Cell {
	cells := make([]Cell, 0, len(s))
	for i := 0; i < len(s); {
		_, n := DecodeString(s[i:])
		if n == 0 {
			i++
			continue
		}
		cells = append(cells, PackString(s[i:], n))
		i += n
	}
	return cells
}
