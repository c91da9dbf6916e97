package pinsearch

import (
	"math/bits"
	"sync"
	"unicode/utf8"
)

// posSet is a set of pattern byte positions 0..MaxPhoneticPattern.
type posSet [(MaxPhoneticPattern + 64) / 64]uint64

func (s *posSet) add(p int) {
	s[p>>6] |= 1 << (p & 63)
}

func (s *posSet) has(p int) bool {
	return s[p>>6]&(1<<(p&63)) != 0
}

func trailingZeros(w uint64) int {
	return bits.TrailingZeros64(w)
}

// scratch holds per-call working memory of the phonetic automaton.
// Matchers are shared between goroutines, so scratch memory is never
// attached to a Matcher.
type scratch struct {
	runes  []rune
	offs   []int
	states []posSet
}

// keep pooled buffers for haystacks of up to this many runes
const maxPooledRunes = 4096

var scratchPool = sync.Pool{
	New: func() any {
		return &scratch{
			runes: make([]rune, 0, 128),
			offs:  make([]int, 0, 129),
		}
	},
}

func getScratch() *scratch {
	return scratchPool.Get().(*scratch)
}

func putScratch(sc *scratch) {
	if cap(sc.runes) > maxPooledRunes {
		return
	}
	scratchPool.Put(sc)
}

// decode splits haystack into runes and their byte offsets. offs has one
// extra entry for the end of the haystack. Invalid bytes decode to
// utf8.RuneError, one byte each.
func (sc *scratch) decode(haystack string) (ascii bool) {
	sc.runes = sc.runes[:0]
	sc.offs = sc.offs[:0]
	ascii = true
	for i, r := range haystack {
		sc.runes = append(sc.runes, r)
		sc.offs = append(sc.offs, i)
		if r >= utf8.RuneSelf {
			ascii = false
		}
	}
	sc.offs = append(sc.offs, len(haystack))
	return ascii
}

func (sc *scratch) resize(n int) {
	if cap(sc.states) < n {
		sc.states = make([]posSet, n)
		return
	}
	sc.states = sc.states[:n]
}
