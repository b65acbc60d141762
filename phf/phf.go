/*
Package phf implements static perfect hash maps keyed by runes.

Maps are built once for a fixed key set with the Compress-Hash-Displace
algorithm (Belazzougui, Botelho, Dietzfelbinger: "Hash, displace, and
compress", ESA 2009) and are read-only afterwards. A lookup computes one
keyed hash, selects a bucket, applies the bucket's displacement pair and
compares against the single candidate entry. It never probes, allocates
or locks, so a Map may be shared freely between goroutines.

The map is exact only for its key set: a rune outside the key set hashes to
some slot as well, which is why every lookup verifies the stored key.
*/
package phf

import (
	"encoding/binary"
	"iter"

	"github.com/dchest/siphash"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'diacritics.phf'
func tracer() tracing.Trace {
	return tracing.Select("diacritics.phf")
}

// Key is the 128-bit SipHash key a Map was built with.
type Key struct {
	K0, K1 uint64
}

// Entry is a key/value pair stored in a Map.
type Entry[V any] struct {
	Key   rune
	Value V
}

// Map is an immutable perfect hash map from runes to values of type V.
//
// Fields are exported so that maps can be emitted as Go source and compiled
// in as static data. They must not be modified after construction.
type Map[V any] struct {
	Lo, Hi  rune        // inclusive range of keys
	Key     Key         // hash key
	Disps   [][2]uint32 // displacement pair per bucket
	Entries []Entry[V]  // entries by slot
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.Entries)
}

// Get returns the value stored for r.
func (m *Map[V]) Get(r rune) (V, bool) {
	e, ok := m.Entry(r)
	return e.Value, ok
}

// Contains reports whether r is a key of m.
func (m *Map[V]) Contains(r rune) bool {
	_, ok := m.Entry(r)
	return ok
}

// Entry returns the entry for r.
func (m *Map[V]) Entry(r rune) (Entry[V], bool) {
	if len(m.Entries) == 0 || r < m.Lo || r > m.Hi {
		return Entry[V]{}, false
	}
	h := hash(r, m.Key)
	d := m.Disps[h.g%uint32(len(m.Disps))]
	e := m.Entries[h.index(d, len(m.Entries))]
	if e.Key != r {
		return Entry[V]{}, false
	}
	return e, true
}

// All iterates over all entries in slot order.
func (m *Map[V]) All() iter.Seq2[rune, V] {
	return func(yield func(rune, V) bool) {
		for _, e := range m.Entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Keys iterates over all keys in slot order.
func (m *Map[V]) Keys() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, e := range m.Entries {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// Values iterates over all values in slot order.
func (m *Map[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range m.Entries {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// --- Hashing ---------------------------------------------------------------

type hashes struct {
	g, f1, f2 uint32
}

// hash computes SipHash-2-4 (128 bit) of the little-endian encoding of r.
// g selects the bucket, f1 and f2 are combined with the bucket displacement.
func hash(r rune, key Key) hashes {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(r))
	lo, hi := siphash.Hash128(key.K0, key.K1, buf[:])
	return hashes{
		g:  uint32(lo >> 32),
		f1: uint32(lo),
		f2: uint32(hi),
	}
}

// index returns the slot for displacement d in a table of n slots.
// Arithmetic wraps around in uint32.
func (h hashes) index(d [2]uint32, n int) int {
	return int((d[1] + h.f1*d[0] + h.f2) % uint32(n))
}
