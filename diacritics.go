package diacritics

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/diacritics/ucd"
)

// IsDiacritic reports whether r is a combining diacritical mark from the
// block U+0300–U+036F.
func IsDiacritic(r rune) bool {
	return ucd.IsCombiningDiacritic(r)
}

// Lookup returns the replacement for a single character.
//
// Diacritics are replaced by the empty string. For a character with a
// table entry the entry is returned. All other characters have no
// replacement and Lookup returns "", false.
func Lookup(r rune) (string, bool) {
	if IsDiacritic(r) {
		return "", true
	}
	if r < utf8.RuneSelf {
		return "", false
	}
	return table().get(r)
}

// Strip replaces every character of s by its replacement, if it has one.
// Bytes which are not valid UTF-8 are copied unchanged.
//
// If nothing has to be replaced, s itself is returned.
func Strip(s string) string {
	var sb strings.Builder
	changed := false
	for i := 0; i < len(s); {
		if s[i] < utf8.RuneSelf {
			if changed {
				sb.WriteByte(s[i])
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		repl, ok := Lookup(r)
		if ok && !changed {
			sb.Grow(len(s))
			sb.WriteString(s[:i])
			changed = true
		}
		if changed {
			if ok {
				sb.WriteString(repl)
			} else {
				sb.WriteString(s[i : i+size])
			}
		}
		i += size
	}
	if !changed {
		return s
	}
	return sb.String()
}
