package pinsearch

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/pinsearch/dat"
)

// RomajiData is a loaded kana romanization table.
//
// Kana sequences (single kana as well as yōon like きゃ and sokuon like
// った) are compiled into a frozen double-array trie. Romanizations are
// stored separately, indexed by trie state. RomajiData is frozen once loaded
// and may be shared by any number of matchers and goroutines.
type RomajiData struct {
	trie       *dat.DAT
	store      *romajiStore
	stats      keyTrieStats
	Identifier string // Identifies the table
}

type pendingKana struct {
	kana   []rune
	romaji []string
}

// LoadRomajiData compiles a kana table from a streaming, format-agnostic source.
//
// For every entry starting with a consonant, the corresponding sokuon entry
// (small tsu + kana, with the first consonant doubled) is derived
// automatically: かっ → "kka". Explicit sokuon entries in the source are kept.
func LoadRomajiData(name string, reader KanaReader) (*RomajiData, error) {
	var backend keyTrie = newDATBackend()
	var pending []pendingKana
	add := func(kana []rune, romaji []string) error {
		if err := backend.Add(kana); err != nil {
			return err
		}
		pending = append(pending, pendingKana{kana: kana, romaji: romaji})
		return nil
	}
	for {
		kana, romaji, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(kana) == 0 || len(romaji) == 0 {
			continue
		}
		romaji = normalizeRomaji(romaji)
		if len(romaji) == 0 {
			tracer().Debugf("skipping kana %q: no usable romanization", string(kana))
			continue
		}
		kana = append([]rune(nil), kana...)
		if err := add(kana, romaji); err != nil {
			return nil, err
		}
		if tsu, doubled := sokuon(kana, romaji); tsu != nil {
			if err := add(tsu, doubled); err != nil {
				return nil, err
			}
		}
	}
	trie, err := backend.Freeze()
	if err != nil {
		return nil, err
	}
	data := &RomajiData{
		trie:       trie,
		store:      newRomajiStore(maxRomajiAlternatives),
		stats:      backend.Stats(),
		Identifier: fmt.Sprintf("romaji: %s", name),
	}
	for _, p := range pending {
		state := backend.Lookup(p.kana)
		assert(state != 0, "kana key lost in frozen trie")
		if err := data.store.Put(int(state), p.romaji); err != nil {
			return nil, err
		}
	}
	data.store.Freeze()
	tracer().Infof("%s: %d kana sequences, trie fill=%.2f", data.Identifier,
		len(pending), data.stats.FillRatio())
	return data, nil
}

func normalizeRomaji(romaji []string) []string {
	out := make([]string, 0, len(romaji))
	for _, r := range romaji {
		r = strings.ToLower(strings.TrimSpace(r))
		if r == "" {
			continue
		}
		ok := true
		for i := 0; i < len(r); i++ {
			if r[i] >= 0x80 {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, r)
		}
	}
	return out
}

const (
	smallTsuHiragana = 'っ'
	smallTsuKatakana = 'ッ'
)

// sokuon derives the geminated entry for kana, or nil if none applies.
func sokuon(kana []rune, romaji []string) ([]rune, []string) {
	if kana[0] == smallTsuHiragana || kana[0] == smallTsuKatakana {
		return nil, nil
	}
	var doubled []string
	for _, r := range romaji {
		c := r[0]
		if strings.IndexByte("aeiouny-'", c) >= 0 {
			continue
		}
		doubled = append(doubled, string(c)+r)
		if strings.HasPrefix(r, "ch") {
			doubled = append(doubled, "t"+r) // Hepburn: matcha
		}
	}
	if len(doubled) == 0 {
		return nil, nil
	}
	tsu := smallTsuHiragana
	if isKatakana(kana[0]) {
		tsu = smallTsuKatakana
	}
	return append([]rune{tsu}, kana...), doubled
}

func isKatakana(r rune) bool {
	return r >= 0x30A0 && r <= 0x30FF
}

func isKana(r rune) bool {
	return r >= 0x3040 && r <= 0x30FF
}

// Prefixes calls f for every kana sequence in the table which is a prefix of
// kana, with the number of runes it spans and each of its romanizations.
// Shorter sequences come first.
func (data *RomajiData) Prefixes(kana []rune, f func(n int, romaji string)) {
	if data == nil || len(kana) == 0 {
		return
	}
	data.trie.Walk(kana, func(state uint32, n int) bool {
		data.store.Each(int(state), func(romaji string) {
			f(n, romaji)
		})
		return true
	})
}

// Romanize converts kana to romaji using longest matches and the first
// romanization of each sequence. Runes without an entry are copied.
func (data *RomajiData) Romanize(kana string) string {
	runes := []rune(kana)
	var b strings.Builder
	for i := 0; i < len(runes); {
		n, best := 0, ""
		data.Prefixes(runes[i:], func(k int, romaji string) {
			if k > n {
				n, best = k, romaji
			}
		})
		if n == 0 {
			b.WriteRune(runes[i])
			i++
			continue
		}
		b.WriteString(best)
		i += n
	}
	return b.String()
}

// Stats reports density metrics for the underlying kana trie.
func (data *RomajiData) Stats() (backend string, usedSlots, totalSlots int, fillRatio float64) {
	if data == nil {
		return "", 0, 0, 0
	}
	return data.stats.Backend, data.stats.UsedSlots, data.stats.TotalSlots, data.stats.FillRatio()
}
