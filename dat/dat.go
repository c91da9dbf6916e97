package dat

// DAT is a frozen double-array trie over short rune sequences (kana
// syllables, in practice).
//   - Nodes/states are indices into Base/Check (0 is unused; Root is typically 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//
// Terminal states are not flagged here. Callers keep a side table indexed by
// state, which lets several tables share one trie layout.
//
// Mapping:
//   - MapPaged maps BMP code units (0..65535) to dense alphabet IDs.
//     0 means "not part of the key alphabet".
type DAT struct {
	// Root state index (commonly 1).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array.
	Base  []int32 // len == N
	Check []int32 // len == N

	// MapPaged maps BMP code units to dense IDs [0..Sigma].
	// Kana live in two pages (U+30xx and the half-width block), so the
	// paged layout costs about 1 KB instead of a flat 128 KB table.
	MapPaged PagedMapBMP
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if int(state) >= len(d.Base) || int(state) >= len(d.Check) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Dense maps a rune to a dense alphabet ID.
// Returns 0 if the rune is outside the BMP or not in the alphabet.
func (d *DAT) Dense(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	return d.MapPaged.Dense(uint16(r))
}

// Walk follows key from the root and calls visit for every state reached,
// passing the number of runes consumed so far. Walking stops at the first
// missing transition or when visit returns false.
func (d *DAT) Walk(key []rune, visit func(state uint32, n int) bool) {
	state := d.Root
	for i, r := range key {
		c := d.Dense(r)
		if c == 0 {
			return
		}
		next, ok := d.Transition(state, c)
		if !ok {
			return
		}
		state = next
		if !visit(state, i+1) {
			return
		}
	}
}
