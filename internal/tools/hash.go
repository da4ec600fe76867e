package tools

import (
	"strconv"
	"unicode/utf16"
)

// Hash computes hash = hash*31 + c over the UTF-16 code units of the input,
// wrapping at 32 bits, and prints the absolute value in hex. Not suitable
// for anything security related.
func Hash(input string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(input)) {
		h = h*31 + int32(c)
	}

	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return "Hash: " + strconv.FormatInt(abs, 16)
}
