// Package bmp provides a compact set of BMP code points, used to reject
// characters before a table lookup.
package bmp

// PagedSet is a set of BMP code points (0..65535), organized as a two-level
// page table:
//   - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - Pages is a flat array of NumPages*4 words, one bit per code point.
//
// Contains is O(1) with two array reads. Every populated page costs 32 bytes,
// the top level 512 bytes.
type PagedSet struct {
	Top   [256]uint16 // page index (1-based); 0 means none
	Pages []uint64    // flat: NumPages*4
}

const wordsPerPage = 256 / 64

// Contains reports whether r is a member of the set. Runes outside the BMP
// are never members.
func (s *PagedSet) Contains(r rune) bool {
	if r < 0 || r > 0xFFFF {
		return false
	}
	pi := s.Top[r>>8]
	if pi == 0 {
		return false
	}
	lo := int(r & 0xFF)
	word := s.Pages[int(pi-1)*wordsPerPage+lo>>6]
	return word&(1<<(lo&63)) != 0
}

// NumPages returns the number of allocated pages.
func (s *PagedSet) NumPages() int { return len(s.Pages) / wordsPerPage }

// ensurePage ensures that the page for high byte hi exists.
// Returns the 1-based page index.
func (s *PagedSet) ensurePage(hi rune) uint16 {
	pi := s.Top[hi]
	if pi != 0 {
		return pi
	}
	s.Pages = append(s.Pages, make([]uint64, wordsPerPage)...)
	pi = uint16(s.NumPages())
	s.Top[hi] = pi
	return pi
}

// Add inserts r into the set. It reports false for runes outside the BMP,
// which cannot be stored.
func (s *PagedSet) Add(r rune) bool {
	if r < 0 || r > 0xFFFF {
		return false
	}
	pi := s.ensurePage(r >> 8)
	lo := int(r & 0xFF)
	s.Pages[int(pi-1)*wordsPerPage+lo>>6] |= 1 << (lo & 63)
	return true
}
