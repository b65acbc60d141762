package phf

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// Lambda is the average number of keys per bucket.
const Lambda = 5

// DefaultMaxAttempts is the number of hash keys tried before giving up.
const DefaultMaxAttempts = 64

const fixedSeed = 1234567890

var (
	ErrNoDisplacement = errors.New("no displacement found for perfect hash")
	ErrDuplicateKey   = errors.New("duplicate key")
)

// State is the outcome of a successful generation: the hash key, one
// displacement pair per bucket, and for every slot the index of the key
// placed there.
type State struct {
	Key   Key
	Disps [][2]uint32
	Order []int
}

// Generator builds perfect hash states. Each attempt draws a fresh hash key
// from Rand; after MaxAttempts failed attempts generation fails.
type Generator struct {
	Rand        *rand.Rand
	MaxAttempts int
}

// NewGenerator returns a deterministic generator: the same key set always
// produces the same state.
func NewGenerator() *Generator {
	return &Generator{
		Rand:        rand.New(rand.NewPCG(fixedSeed, fixedSeed)),
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Generate computes a perfect hash state for keys.
func (gen *Generator) Generate(keys []rune) (*State, error) {
	if r, dup := firstDuplicate(keys); dup {
		return nil, fmt.Errorf("%w: %U", ErrDuplicateKey, r)
	}
	for attempt := 1; attempt <= gen.MaxAttempts; attempt++ {
		key := Key{K0: gen.Rand.Uint64(), K1: gen.Rand.Uint64()}
		if state, ok := tryGenerate(keys, key); ok {
			tracer().Infof("perfect hash for %d keys: %d buckets, attempt %d", len(keys), len(state.Disps), attempt)
			return state, nil
		}
		tracer().Debugf("perfect hash attempt %d failed, retrying with new key", attempt)
	}
	tracer().Errorf("giving up perfect hash for %d keys after %d attempts", len(keys), gen.MaxAttempts)
	return nil, fmt.Errorf("%w: %d keys, %d attempts", ErrNoDisplacement, len(keys), gen.MaxAttempts)
}

type bucket struct {
	index int
	keys  []int
}

type placement struct {
	slot int
	key  int
}

// tryGenerate runs one round of compress-hash-displace with a fixed key.
// It fails if two keys produce identical hashes or if some bucket cannot be
// displaced into free slots.
func tryGenerate(keys []rune, key Key) (*State, bool) {
	n := len(keys)
	hs := make([]hashes, n)
	seen := make(map[hashes]struct{}, n)
	for i, r := range keys {
		hs[i] = hash(r, key)
		if _, alias := seen[hs[i]]; alias {
			return nil, false
		}
		seen[hs[i]] = struct{}{}
	}
	bucketCount := (n + Lambda - 1) / Lambda
	buckets := make([]bucket, bucketCount)
	for i := range buckets {
		buckets[i].index = i
	}
	for i, h := range hs {
		b := &buckets[h.g%uint32(bucketCount)]
		b.keys = append(b.keys, i)
	}
	slices.SortStableFunc(buckets, func(a, b bucket) int {
		return cmp.Compare(len(b.keys), len(a.keys))
	})
	state := &State{
		Key:   key,
		Disps: make([][2]uint32, bucketCount),
		Order: make([]int, n),
	}
	for i := range state.Order {
		state.Order[i] = -1
	}
	tried := make([]uint64, n) // generation a slot was last claimed in
	var generation uint64
	placed := make([]placement, 0, Lambda*2)
nextBucket:
	for _, b := range buckets {
		for d1 := range uint32(n) {
			for d2 := range uint32(n) {
				d := [2]uint32{d1, d2}
				generation++
				placed = placed[:0]
				fits := true
				for _, k := range b.keys {
					slot := hs[k].index(d, n)
					if state.Order[slot] >= 0 || tried[slot] == generation {
						fits = false
						break
					}
					tried[slot] = generation
					placed = append(placed, placement{slot: slot, key: k})
				}
				if !fits {
					continue
				}
				state.Disps[b.index] = d
				for _, p := range placed {
					state.Order[p.slot] = p.key
				}
				continue nextBucket
			}
		}
		return nil, false
	}
	return state, true
}

func firstDuplicate(keys []rune) (rune, bool) {
	seen := make(map[rune]struct{}, len(keys))
	for _, r := range keys {
		if _, ok := seen[r]; ok {
			return r, true
		}
		seen[r] = struct{}{}
	}
	return 0, false
}

// Build creates a Map from parallel slices of keys and values, using a
// deterministic generator.
func Build[V any](keys []rune, values []V) (*Map[V], error) {
	return BuildWith(NewGenerator(), keys, values)
}

// BuildWith creates a Map from parallel slices of keys and values.
func BuildWith[V any](gen *Generator, keys []rune, values []V) (*Map[V], error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("phf: %d keys but %d values", len(keys), len(values))
	}
	state, err := gen.Generate(keys)
	if err != nil {
		return nil, err
	}
	m := &Map[V]{
		Key:     state.Key,
		Disps:   state.Disps,
		Entries: make([]Entry[V], len(keys)),
	}
	if len(keys) > 0 {
		m.Lo, m.Hi = slices.Min(keys), slices.Max(keys)
	}
	for slot, k := range state.Order {
		m.Entries[slot] = Entry[V]{Key: keys[k], Value: values[k]}
	}
	return m, nil
}
