package urlparams

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

const upperHex = "0123456789ABCDEF"

// EncodeComponent percent-encodes s like encodeURIComponent: every UTF-8 byte
// outside A-Z a-z 0-9 and - _ . ! ~ * ' ( ) becomes %XX.
func EncodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// DecodeComponent turns '+' into spaces and then percent-decodes s. Text with
// a malformed escape, or escapes that do not form valid UTF-8, is returned
// unchanged.
func DecodeComponent(s string) string {
	decoded, err := url.PathUnescape(strings.ReplaceAll(s, "+", " "))
	if err != nil || !utf8.ValidString(decoded) {
		return s
	}
	return decoded
}
