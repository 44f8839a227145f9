package formats

import "strings"

// Escape quotes a value for use between double quotes in a shell
// assignment. Only the characters special inside double quotes are
// escaped.
func Escape(s string) string {
	if !strings.ContainsAny(s, "$`\\\"") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '$', '`', '\\', '"':
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Unescape reverses Escape: a backslash takes the next byte literally. A
// trailing lone backslash is dropped.
func Unescape(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' {
			i++
			if i >= len(s) {
				break
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
