package pinsearch

import "fmt"

const absentPayload = 0xFF
const initialRomajiStoreSlots = 2 // include slot 0 + root slot
const maxRomajiAlternatives = 8

// romajiStore keeps romanization alternatives directly indexed by trie state.
// Each alternative is stored as a uint16 index into a shared table of
// spellings, so "shi" is kept once for し and シ.
type romajiStore struct {
	width     uint8
	length    []uint8  // will grow with demand
	payload   []uint16 // will grow with demand
	spellings []string
	interned  map[string]uint16 // build-time only
}

func newRomajiStore(maxAlternatives uint8) *romajiStore {
	if maxAlternatives > maxRomajiAlternatives {
		maxAlternatives = maxRomajiAlternatives
	}
	s := &romajiStore{
		width:    maxAlternatives,
		length:   make([]uint8, initialRomajiStoreSlots),
		payload:  make([]uint16, initialRomajiStoreSlots*int(maxAlternatives)),
		interned: make(map[string]uint16),
	}
	for i := range s.length {
		s.length[i] = absentPayload
	}
	return s
}

func (s *romajiStore) ensure(pos int) {
	if pos < len(s.length) {
		return
	}
	grow := pos + 1 - len(s.length)
	old := len(s.length)
	s.length = append(s.length, make([]uint8, grow)...)
	for i := old; i < len(s.length); i++ {
		s.length[i] = absentPayload
	}
	if s.width > 0 {
		s.payload = append(s.payload, make([]uint16, grow*int(s.width))...)
	}
}

func (s *romajiStore) intern(spelling string) (uint16, error) {
	if id, ok := s.interned[spelling]; ok {
		return id, nil
	}
	if len(s.spellings) >= 0xFFFF {
		return 0, fmt.Errorf("too many distinct romaji spellings")
	}
	id := uint16(len(s.spellings))
	s.spellings = append(s.spellings, spelling)
	s.interned[spelling] = id
	return id, nil
}

// Put stores romanizations at trie state pos. Alternatives already present
// at pos are kept, duplicates are dropped.
func (s *romajiStore) Put(pos int, romaji []string) error {
	if pos < 0 {
		return fmt.Errorf("negative trie position: %d", pos)
	}
	s.ensure(pos)
	n := 0
	if s.length[pos] != absentPayload {
		n = int(s.length[pos])
	}
	base := pos * int(s.width)
	for _, r := range romaji {
		id, err := s.intern(r)
		if err != nil {
			return err
		}
		dup := false
		for _, have := range s.payload[base : base+n] {
			if have == id {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		if n >= int(s.width) {
			return fmt.Errorf("too many romanizations at position %d: %d", pos, n+1)
		}
		s.payload[base+n] = id
		n++
	}
	s.length[pos] = uint8(n)
	return nil
}

// Freeze drops build-time state.
func (s *romajiStore) Freeze() {
	s.interned = nil
}

// Each calls f for every romanization stored at trie state pos.
func (s *romajiStore) Each(pos int, f func(romaji string)) {
	for _, id := range s.ids(pos) {
		f(s.spellings[id])
	}
}

// Spellings returns the romanizations stored at trie state pos.
func (s *romajiStore) Spellings(pos int) []string {
	var list []string
	s.Each(pos, func(r string) {
		list = append(list, r)
	})
	return list
}

// ids returns the spelling IDs stored at trie state pos, without allocating.
func (s *romajiStore) ids(pos int) []uint16 {
	if pos < 0 || pos >= len(s.length) {
		return nil
	}
	n := s.length[pos]
	if n == absentPayload {
		return nil
	}
	base := pos * int(s.width)
	return s.payload[base : base+int(n)]
}
