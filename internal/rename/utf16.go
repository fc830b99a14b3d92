package rename

import "unicode/utf16"

// DecodeTitle converts a native UTF-16 title buffer to a string, stopping at
// the first NUL. Unpaired surrogates become U+FFFD.
func DecodeTitle(buf []uint16) string {
	for i, c := range buf {
		if c == 0 {
			buf = buf[:i]
			break
		}
	}
	return string(utf16.Decode(buf))
}

// EncodeTitle converts s to a NUL-terminated UTF-16 buffer. Embedded NULs
// truncate the title, as the native API would.
func EncodeTitle(s string) []uint16 {
	out := utf16.Encode([]rune(s))
	for i, c := range out {
		if c == 0 {
			out = out[:i]
			break
		}
	}
	return append(out, 0)
}
