/*
Package diacritics removes diacritical marks from text.

Every character which decomposes, canonically or by compatibility, into a
base and combining marks from the block U+0300–U+036F is replaced by what
remains of its decomposition after the marks are dropped:

	diacritics.Strip("Ångström")  // "Angstrom"
	diacritics.Strip("ǅemal")     // "Dzemal"

Isolated combining marks are removed, every other character is kept as is.
Strip returns its argument unchanged (and without allocating) if no
character has to be replaced.

The replacement table is generated offline from the Unicode Character
Database by cmd/gendiacritics (see packages ucd and decompose) and compiled
into the package. At first use it is loaded into a static perfect hash map
(package phf), which makes every lookup O(1) and free of allocations.

Hangul syllables are not decomposed, and the package does not normalize
text. Input in decomposed form (NFD) is handled by dropping the separate
combining marks; Transformer may be chained with the transformers of
golang.org/x/text/unicode/norm for other normal forms.

Further Reading

	https://www.unicode.org/reports/tr44/
	https://www.unicode.org/reports/tr15/
	http://cmph.sourceforge.net/papers/esa09.pdf

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package diacritics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'diacritics'
func tracer() tracing.Trace {
	return tracing.Select("diacritics")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
