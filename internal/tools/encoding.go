package tools

import (
	"encoding/base64"
	"net/url"
	"strings"
	"unicode/utf8"
)

// EncodeBase64 encodes the input as Latin-1 bytes. Characters above U+00FF
// have no single-byte form and cannot be encoded.
func EncodeBase64(input string) string {
	buf := make([]byte, 0, len(input))
	for _, r := range input {
		if r > 0xFF {
			return MsgUnableToEncode
		}
		buf = append(buf, byte(r))
	}
	return "Encoded: " + base64.StdEncoding.EncodeToString(buf)
}

// DecodeBase64 is lenient in the same way browsers are: ASCII whitespace is
// ignored and padding is optional. Decoded bytes are read as Latin-1, which
// makes it the exact inverse of EncodeBase64.
func DecodeBase64(input string) string {
	s := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			return -1
		}
		return r
	}, input)

	if len(s)%4 == 0 {
		s = strings.TrimSuffix(s, "=")
		s = strings.TrimSuffix(s, "=")
	}
	if len(s)%4 == 1 {
		return MsgInvalidBase64
	}

	raw, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return MsgInvalidBase64
	}

	runes := make([]rune, len(raw))
	for i, c := range raw {
		runes[i] = rune(c)
	}
	return "Decoded: " + string(runes)
}

// EncodeURL percent-encodes every UTF-8 byte except A-Z a-z 0-9 and
// - _ . ! ~ * ' ( ).
func EncodeURL(input string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.WriteString("Encoded: ")
	for i := 0; i < len(input); i++ {
		c := input[i]
		if isURIUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func isURIUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// DecodeURL reverses EncodeURL. "+" is kept as-is; malformed escapes and
// escapes that decode to invalid UTF-8 are rejected.
func DecodeURL(input string) string {
	out, err := url.PathUnescape(input)
	if err != nil || !utf8.ValidString(out) {
		return MsgInvalidURL
	}
	return "Decoded: " + out
}
