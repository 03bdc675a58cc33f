// Package codec stores editor characters as fixed-width UTF-8 cells.
//
// Every character the editor holds is kept as the 1 to 4 bytes of its UTF-8
// encoding, packed little-endian into a 32-bit Cell and zero padded. Two cells
// compare equal exactly when their encodings are equal, so glyph equality and
// ordering never need to decode the character again.
//
// # Malformed input
//
// Decode reports zero bytes consumed for a malformed sequence. Callers skip
// exactly one raw byte and retry, which guarantees forward progress on any
// input:
//
//	for i := 0; i < len(p); {
//		_, n := codec.Decode(p[i:])
//		if n == 0 {
//			i++
//			continue
//		}
//		cells = append(cells, codec.Pack(p[i:i+n]))
//		i += n
//	}
//
// # Case folding
//
// ToLower and ToUpper fold ASCII letters in place and leave every multi-byte
// sequence untouched.
package codec
