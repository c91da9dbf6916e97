package pinsearch

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"unicode/utf8"

	"github.com/npillmayer/pinsearch/dat"
)

// datBackend collects kana keys and compiles them into a double-array trie.
// The alphabet and the array layout are fixed on Freeze: dense IDs follow
// code point order, and states are placed depth-first over the sorted keys.
type datBackend struct {
	keys     map[string]struct{}
	compiled *dat.DAT
	free     int // no Check slot below free is unoccupied
}

func newDATBackend() *datBackend {
	return &datBackend{keys: make(map[string]struct{})}
}

func (db *datBackend) Add(key []rune) error {
	assert(db.compiled == nil, "kana key added to a frozen trie")
	if len(key) == 0 {
		return errors.New("empty kana key")
	}
	for _, r := range key {
		if r == 0 || r > 0xFFFF || !utf8.ValidRune(r) {
			return fmt.Errorf("kana key %q: %U cannot be encoded", string(key), r)
		}
	}
	db.keys[string(key)] = struct{}{}
	return nil
}

func (db *datBackend) Freeze() (*dat.DAT, error) {
	if db.compiled != nil {
		return db.compiled, nil
	}
	keys := make([][]rune, 0, len(db.keys))
	alphabet := make(map[rune]struct{})
	for k := range db.keys {
		runes := []rune(k)
		keys = append(keys, runes)
		for _, r := range runes {
			alphabet[r] = struct{}{}
		}
	}
	letters := slices.Sorted(maps.Keys(alphabet))
	if len(letters) >= 0xFFFF {
		return nil, fmt.Errorf("kana alphabet too large: %d runes", len(letters))
	}
	d := &dat.DAT{
		Root:  1,
		Sigma: uint16(len(letters)),
		Base:  make([]int32, 2),
		Check: make([]int32, 2),
	}
	for i, r := range letters {
		d.MapPaged.Set(uint16(r), uint16(i+1))
	}
	slices.SortFunc(keys, func(a, b []rune) int { return slices.Compare(a, b) })
	db.compiled = d
	db.free = 2
	db.place(d.Root, keys, 0)
	db.keys = nil
	return d, nil
}

// place lays out the children of state. All keys share their first depth
// runes, which lead to state, and are sorted.
func (db *datBackend) place(state uint32, keys [][]rune, depth int) {
	d := db.compiled
	var labels []uint16
	var groups [][][]rune
	for _, k := range keys {
		if len(k) == depth {
			continue
		}
		c := d.Dense(k[depth])
		if n := len(labels); n == 0 || labels[n-1] != c {
			labels = append(labels, c)
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], k)
	}
	if len(labels) == 0 {
		return
	}
	base := db.findBase(labels)
	d.Base[state] = int32(base)
	for _, c := range labels {
		d.Check[base+int(c)] = int32(state)
	}
	for i, c := range labels {
		db.place(uint32(base+int(c)), groups[i], depth+1)
	}
}

// findBase returns the smallest base at which all labels land on free
// slots, growing the arrays to hold them. Slot 0 is unused and slot 1 is
// the root, so targets always start at 2.
func (db *datBackend) findBase(labels []uint16) int {
	d := db.compiled
	for db.free < len(d.Check) && d.Check[db.free] != 0 {
		db.free++
	}
	for base := max(1, db.free-int(labels[0])); ; base++ {
		fits := true
		for _, c := range labels {
			if t := base + int(c); t < len(d.Check) && d.Check[t] != 0 {
				fits = false
				break
			}
		}
		if fits {
			if last := base + int(labels[len(labels)-1]); last >= len(d.Base) {
				grow := last + 1 - len(d.Base)
				d.Base = append(d.Base, make([]int32, grow)...)
				d.Check = append(d.Check, make([]int32, grow)...)
			}
			return base
		}
	}
}

// Lookup returns the state key leads to, or 0. Only valid after Freeze.
func (db *datBackend) Lookup(key []rune) uint32 {
	assert(db.compiled != nil, "kana trie used before freeze")
	var state uint32
	db.compiled.Walk(key, func(s uint32, n int) bool {
		if n == len(key) {
			state = s
		}
		return true
	})
	return state
}

func (db *datBackend) Stats() keyTrieStats {
	stats := keyTrieStats{Backend: "dat"}
	if db.compiled == nil {
		return stats
	}
	stats.TotalSlots = db.compiled.NStates()
	for i, parent := range db.compiled.Check {
		if parent != 0 || i == int(db.compiled.Root) {
			stats.UsedSlots++
			stats.MaxStateID = i
		}
	}
	return stats
}
