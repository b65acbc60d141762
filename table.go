package diacritics

import (
	"strings"
	"sync"

	"github.com/npillmayer/diacritics/internal/bmp"
	"github.com/npillmayer/diacritics/internal/data"
	"github.com/npillmayer/diacritics/internal/tables"
	"github.com/npillmayer/diacritics/phf"
)

// replacements holds the perfect hash table and a page set of its BMP keys.
// The page set rejects most characters without hashing them.
type replacements struct {
	m     *phf.Map[string]
	pages bmp.PagedSet
}

func (t *replacements) get(r rune) (string, bool) {
	if r <= 0xFFFF && !t.pages.Contains(r) {
		return "", false
	}
	return t.m.Get(r)
}

var table = sync.OnceValue(func() *replacements {
	keys, values, err := tables.ReadAll(strings.NewReader(data.Mapping))
	assert(err == nil, "diacritics: embedded mapping is corrupt")
	m, err := phf.Build(keys, values)
	assert(err == nil, "diacritics: cannot build table from embedded mapping")
	t := &replacements{m: m}
	for _, r := range keys {
		t.pages.Add(r)
	}
	tracer().Infof("diacritics table loaded: %d entries in %d buckets, range %U..%U, %d BMP pages",
		m.Len(), len(m.Disps), m.Lo, m.Hi, t.pages.NumPages())
	return t
})

// Table returns the replacement table for all precomposed characters.
// Isolated combining marks are not part of the table.
//
// The table is built at first use and shared afterwards. Clients must not
// modify it.
func Table() *phf.Map[string] {
	return table().m
}
