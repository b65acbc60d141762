package decompose

import (
	"cmp"
	"slices"

	"github.com/npillmayer/diacritics/ucd"
)

// Reorder returns seq in canonical order: every maximal run of non-starters
// (combining class != 0) is stably sorted by combining class. Starters stay
// where they are and delimit the runs.
func Reorder(seq []rune, classOf func(rune) uint8) []rune {
	out := slices.Clone(seq)
	byClass := func(a, b rune) int {
		return cmp.Compare(classOf(a), classOf(b))
	}
	start := 0
	for i, r := range out {
		if classOf(r) == 0 {
			slices.SortStableFunc(out[start:i], byClass)
			start = i + 1
		}
	}
	slices.SortStableFunc(out[start:], byClass)
	return out
}

// FilterDiacritics removes all combining diacritical marks from seq.
// The flag reports whether anything was removed; if not, the returned slice is nil.
func FilterDiacritics(seq []rune) ([]rune, bool) {
	found := false
	out := make([]rune, 0, len(seq))
	for _, r := range seq {
		if ucd.IsCombiningDiacritic(r) {
			found = true
			continue
		}
		out = append(out, r)
	}
	if !found {
		return nil, false
	}
	return out, true
}

// Mapping maps code points to their diacritic-free replacement.
type Mapping map[rune]string

// Keys returns the keys of m in ascending order.
func (m Mapping) Keys() []rune {
	keys := make([]rune, 0, len(m))
	for r := range m {
		keys = append(keys, r)
	}
	slices.Sort(keys)
	return keys
}

// Values returns the replacements for keys, in the same order.
func (m Mapping) Values(keys []rune) []string {
	values := make([]string, len(keys))
	for i, r := range keys {
		values[i] = m[r]
	}
	return values
}

// BuildMapping computes the diacritics mapping from t.
//
// Canonical decompositions are applied first, then compatibility
// decompositions, which overwrite canonical entries for the same key.
// Combining diacritical marks themselves never become keys.
func BuildMapping(t *Tables, workers int) (Mapping, error) {
	if t.last < 0 {
		return nil, ErrNoRecord
	}
	all, err := t.DecomposeAll(workers)
	if err != nil {
		return nil, err
	}
	m := make(Mapping)
	m.add(all.Canonical, t.CombiningClass)
	n := len(m)
	m.add(all.Compatible, t.CombiningClass)
	tracer().Infof("diacritics mapping has %d entries (%d from canonical decompositions)", len(m), n)
	return m, nil
}

func (m Mapping) add(src map[rune][]rune, classOf func(rune) uint8) {
	for r, seq := range src {
		if ucd.IsCombiningDiacritic(r) {
			continue
		}
		if stripped, ok := FilterDiacritics(Reorder(seq, classOf)); ok {
			m[r] = string(stripped)
		}
	}
}
