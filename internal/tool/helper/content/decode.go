package content

import (
	"strings"
	"unicode/utf8"
)

// DecodeText converts raw file bytes to a string, replacing every byte that is
// not part of a valid UTF-8 sequence with U+FFFD. It never fails.
func DecodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	var sb strings.Builder
	sb.Grow(len(data) + 8)
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune(utf8.RuneError)
		} else {
			sb.Write(data[:size])
		}
		data = data[size:]
	}
	return sb.String()
}
