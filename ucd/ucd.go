/*
Package ucd reads per-code-point records from the Unicode Character Database
file UnicodeData.txt.

Only the fields needed for decomposition are interpreted: the code point,
its name, general category, canonical combining class and the decomposition
mapping. Records are streamed one at a time; see Reader.

	https://www.unicode.org/reports/tr44/#UnicodeData.txt
*/
package ucd

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// Errors reported for malformed input. They are wrapped with position
// information, test with errors.Is.
var (
	ErrMalformedRecord = errors.New("malformed UnicodeData record")
	ErrUnknownCategory = errors.New("unknown general category")
)

// The block of combining diacritical marks.
const (
	DiacriticFirst rune = 0x0300
	DiacriticLast  rune = 0x036F
)

// IsCombiningDiacritic reports whether r lies in the combining diacritical
// marks block [U+0300, U+036F].
func IsCombiningDiacritic(r rune) bool {
	return r >= DiacriticFirst && r <= DiacriticLast
}

// tracer writes to trace with key 'diacritics.ucd'
func tracer() tracing.Trace {
	return tracing.Select("diacritics.ucd")
}
