package dat

// PagedMapBMP maps BMP code units (0..65535) to dense IDs (uint16).
// It's a two-level page table:
//   - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - Pages is a flat array of NumPages*256 entries.
//
// Lookup is O(1) with two array reads and a couple of ops.
//
// Memory:
//   - Top: 256 * 2 = 512 bytes
//   - Each populated page: 256 * 2 = 512 bytes
//
// The CJK unified block spans 82 high bytes, so a full pinyin table costs
// roughly 42 KB of pages.
type PagedMapBMP struct {
	Top   [256]uint16 // page index (1-based); 0 means none
	Pages []uint16    // flat: NumPages*256
	count int
}

// Dense returns the dense ID for a BMP code unit.
// Returns 0 if absent.
func (m *PagedMapBMP) Dense(bmp uint16) uint16 {
	hi := bmp >> 8
	pi := m.Top[hi]
	if pi == 0 {
		return 0
	}
	base := int(pi-1) << 8 // *256
	return m.Pages[base+int(bmp&0xFF)]
}

// Lookup is like Dense for an arbitrary rune.
func (m *PagedMapBMP) Lookup(r rune) (uint16, bool) {
	if r < 0 || r > 0xFFFF {
		return 0, false
	}
	id := m.Dense(uint16(r))
	return id, id != 0
}

// NumPages returns the number of allocated pages.
func (m *PagedMapBMP) NumPages() int { return len(m.Pages) >> 8 }

// Len returns the number of code units with a non-zero mapping.
func (m *PagedMapBMP) Len() int { return m.count }

// EnsurePage ensures that the page for high byte hi exists.
// Returns the 1-based page index.
func (m *PagedMapBMP) EnsurePage(hi uint16) uint16 {
	pi := m.Top[hi]
	if pi != 0 {
		return pi
	}
	// allocate a new page (256 uint16 initialized to 0)
	m.Pages = append(m.Pages, make([]uint16, 256)...)
	pi = uint16(len(m.Pages) >> 8) // number of pages, 1-based index
	m.Top[hi] = pi
	return pi
}

// Set sets mapping bmp -> dense (dense may be 0 to clear).
func (m *PagedMapBMP) Set(bmp uint16, dense uint16) {
	hi := bmp >> 8
	pi := m.Top[hi]
	if pi == 0 {
		if dense == 0 {
			return
		}
		pi = m.EnsurePage(hi)
	}
	slot := int(pi-1)<<8 + int(bmp&0xFF)
	switch old := m.Pages[slot]; {
	case old == 0 && dense != 0:
		m.count++
	case old != 0 && dense == 0:
		m.count--
	}
	m.Pages[slot] = dense
}
