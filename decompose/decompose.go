/*
Package decompose computes, for every code point, its full decomposition and
from that the diacritic-free replacement used for stripping accents.

The engine works offline on the records of UnicodeData.txt. It expands each
code point recursively under canonical rules and under canonical plus
compatibility rules, reorders combining marks canonically, and drops marks of
the combining diacritical block. Code points whose expansion contained such a
mark end up in the resulting Mapping.

Hangul syllables are skipped; their decomposition is arithmetic and carries
no diacritics.
*/
package decompose

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/npillmayer/diacritics/ucd"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'diacritics.decompose'
func tracer() tracing.Trace {
	return tracing.Select("diacritics.decompose")
}

// MaxDepth bounds the nesting of decomposition mappings. Real data nests
// at most three or four levels deep.
const MaxDepth = 32

var (
	ErrCycle    = errors.New("decomposition cycle")
	ErrTooDeep  = errors.New("decomposition nested too deeply")
	ErrNoRecord = errors.New("no decomposition records")
)

// Conjoining jamo constants, Unicode 15.0 section 3.12.
const (
	hangulBase   = 0xAC00
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulCount  = hangulLCount * hangulVCount * hangulTCount
)

func isHangulSyllable(r rune) bool {
	return r >= hangulBase && r < hangulBase+hangulCount
}

// RecordReader yields UnicodeData records one-by-one.
// It should return io.EOF when the stream is exhausted.
type RecordReader interface {
	Next() (ucd.Record, error)
}

// Tables holds the raw per-code-point data needed for decomposition.
type Tables struct {
	classes   map[rune]uint8  // non-zero combining classes only
	canonical map[rune][]rune // one-level canonical mappings
	compat    map[rune][]rune // one-level compatibility mappings
	last      rune            // highest code point with a decomposition
}

func NewTables() *Tables {
	return &Tables{
		classes:   make(map[rune]uint8),
		canonical: make(map[rune][]rune),
		compat:    make(map[rune][]rune),
		last:      -1,
	}
}

// Add registers a single record.
func (t *Tables) Add(rec ucd.Record) {
	if rec.CombiningClass != 0 {
		t.classes[rec.Codepoint] = rec.CombiningClass
	}
	if len(rec.Decomposition) == 0 {
		return
	}
	seq := slices.Clone(rec.Decomposition)
	if rec.HasCompatibility() {
		t.compat[rec.Codepoint] = seq
	} else {
		t.canonical[rec.Codepoint] = seq
	}
	t.last = max(t.last, rec.Codepoint)
}

// Load reads all records from reader.
func Load(reader RecordReader) (*Tables, error) {
	t := NewTables()
	n := 0
	for {
		rec, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		t.Add(rec)
		n++
	}
	tracer().Infof("loaded %d records: %d canonical, %d compatibility decompositions, %d marks",
		n, len(t.canonical), len(t.compat), len(t.classes))
	return t, nil
}

// LoadUnicodeData parses UnicodeData.txt formatted input.
func LoadUnicodeData(r io.Reader) (*Tables, error) {
	return Load(ucd.NewReader(r))
}

// CombiningClass returns the canonical combining class of r (0 for starters).
func (t *Tables) CombiningClass(r rune) uint8 {
	return t.classes[r]
}

// Last returns the highest code point carrying a decomposition, or -1.
func (t *Tables) Last() rune {
	return t.last
}

// Decompose returns the full decomposition of r. With compatible == false
// only canonical mappings are followed, otherwise compatibility mappings are
// followed for code points without a canonical one. ASCII never decomposes.
// A code point without any applicable mapping decomposes to itself.
func (t *Tables) Decompose(r rune, compatible bool) ([]rune, error) {
	d := decomposer{tables: t, compatible: compatible}
	if err := d.expand(r); err != nil {
		return nil, err
	}
	return d.result, nil
}

type decomposer struct {
	tables     *Tables
	compatible bool
	path       []rune // code points currently being expanded
	result     []rune
}

func (d *decomposer) expand(r rune) error {
	if r <= 0x7F {
		d.result = append(d.result, r)
		return nil
	}
	seq, ok := d.tables.canonical[r]
	if !ok && d.compatible {
		seq, ok = d.tables.compat[r]
	}
	if !ok {
		d.result = append(d.result, r)
		return nil
	}
	if slices.Contains(d.path, r) {
		return fmt.Errorf("%w: %04X via %X", ErrCycle, r, d.path)
	}
	if len(d.path) >= MaxDepth {
		return fmt.Errorf("%w: %04X", ErrTooDeep, d.path[0])
	}
	d.path = append(d.path, r)
	for _, c := range seq {
		if err := d.expand(c); err != nil {
			return err
		}
	}
	d.path = d.path[:len(d.path)-1]
	return nil
}
