package diacritics

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Transformer strips diacritics from a byte stream, with the same result
// as Strip. It implements transform.SpanningTransformer and is stateless,
// so the zero value is ready to use and may be shared.
//
//	t := transform.Chain(norm.NFC, diacritics.Transformer{})
//	s, _, _ := transform.String(t, input)
type Transformer struct {
	transform.NopResetter
}

var _ transform.SpanningTransformer = Transformer{}

// Transform implements transform.Transformer.
func (Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if c := src[nSrc]; c < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		out := src[nSrc : nSrc+size]
		if repl, ok := Lookup(r); ok {
			if nDst+len(repl) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], repl)
		} else {
			if nDst+len(out) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], out)
		}
		nSrc += size
	}
	return nDst, nSrc, nil
}

// Span implements transform.SpanningTransformer. It returns the length of
// the prefix of src which Transform would leave unchanged.
func (Transformer) Span(src []byte, atEOF bool) (n int, err error) {
	for n < len(src) {
		if src[n] < utf8.RuneSelf {
			n++
			continue
		}
		if !atEOF && !utf8.FullRune(src[n:]) {
			return n, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[n:])
		if _, ok := Lookup(r); ok {
			return n, transform.ErrEndOfSpan
		}
		n += size
	}
	return n, nil
}
