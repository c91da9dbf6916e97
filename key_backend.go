package pinsearch

import "github.com/npillmayer/pinsearch/dat"

type keyTrieStats struct {
	Backend    string
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

func (s keyTrieStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// keyTrie is the internal backend abstraction for kana-key storage. Keys are
// added first; after Freeze the trie is read-only and Lookup resolves keys to
// the states romanizations are stored under.
type keyTrie interface {
	Add(key []rune) error
	Freeze() (*dat.DAT, error)
	Lookup(key []rune) uint32
	Stats() keyTrieStats
}
