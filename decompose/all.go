package decompose

import (
	"slices"
	"sync"
)

// Decompositions holds the full decompositions of all code points which do
// not decompose to themselves, once for canonical-only and once for
// canonical plus compatibility rules.
//
// Compatible contains only entries which differ from the canonical ones.
type Decompositions struct {
	Canonical  map[rune][]rune
	Compatible map[rune][]rune
}

type chunkResult struct {
	canonical  map[rune][]rune
	compatible map[rune][]rune
	err        error
}

// DecomposeAll fully decomposes every code point up to Last, skipping Hangul
// syllables. The code point range is split into contiguous chunks, one per
// worker; workers < 1 is treated as 1.
func (t *Tables) DecomposeAll(workers int) (*Decompositions, error) {
	all := &Decompositions{
		Canonical:  make(map[rune][]rune),
		Compatible: make(map[rune][]rune),
	}
	if t.last < 0 {
		return all, nil
	}
	workers = max(1, workers)
	span := (int(t.last) + workers) / workers
	results := make([]chunkResult, workers)
	var wg sync.WaitGroup
	for w := range workers {
		from := rune(w * span)
		to := min(rune((w+1)*span-1), t.last)
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[w] = t.decomposeRange(from, to)
		}()
	}
	wg.Wait()
	for _, res := range results {
		if res.err != nil {
			tracer().Errorf("decomposition failed: %v", res.err)
			return nil, res.err
		}
		for r, seq := range res.canonical {
			all.Canonical[r] = seq
		}
		for r, seq := range res.compatible {
			all.Compatible[r] = seq
		}
	}
	pruned := 0
	for r, seq := range all.Canonical {
		if cseq, ok := all.Compatible[r]; ok && slices.Equal(seq, cseq) {
			delete(all.Compatible, r)
			pruned++
		}
	}
	tracer().Infof("decomposed code points up to %04X with %d workers: %d canonical, %d compatibility (%d pruned)",
		t.last, workers, len(all.Canonical), len(all.Compatible), pruned)
	return all, nil
}

func (t *Tables) decomposeRange(from, to rune) chunkResult {
	res := chunkResult{
		canonical:  make(map[rune][]rune),
		compatible: make(map[rune][]rune),
	}
	for r := from; r <= to; r++ {
		if isHangulSyllable(r) {
			continue
		}
		for _, compatible := range []bool{false, true} {
			seq, err := t.Decompose(r, compatible)
			if err != nil {
				res.err = err
				return res
			}
			if len(seq) == 1 && seq[0] == r {
				continue
			}
			if compatible {
				res.compatible[r] = seq
			} else {
				res.canonical[r] = seq
			}
		}
	}
	return res
}
