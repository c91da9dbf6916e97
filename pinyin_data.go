package pinsearch

import (
	"fmt"
	"io"

	"github.com/derekparker/trie"
	"github.com/npillmayer/pinsearch/dat"
)

// PinyinData is a loaded pinyin dictionary: readings for Han characters.
//
// A dictionary contains:
//   - an index from BMP characters to entry IDs (paged map)
//   - per entry, the IDs of the toned syllables the character may be read as
//   - the syllable table, indexed by a trie over the numbered spelling.
//
// PinyinData is frozen once loaded and may be shared by any number of
// matchers and goroutines.
type PinyinData struct {
	index      dat.PagedMapBMP // character => entry ID (1-based)
	entries    [][]uint16      // entry ID-1 => syllable IDs
	syllables  []*Syllable     // syllable ID => syllable
	spellings  *trie.Trie      // numbered spelling => syllable ID
	Identifier string          // Identifies the dictionary
}

// LoadPinyinData compiles readings from a streaming, format-agnostic source.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package pinyindata to parse concrete formats and feed this API.
// Characters outside the BMP and malformed syllables are skipped.
func LoadPinyinData(name string, reader ReadingReader) (*PinyinData, error) {
	data := &PinyinData{
		spellings:  trie.New(),
		Identifier: fmt.Sprintf("pinyin: %s", name),
	}
	skipped := 0
	for {
		char, syllables, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if char < 0 || char > 0xFFFF {
			skipped++
			continue
		}
		for _, s := range syllables {
			id, err := data.intern(s)
			if err != nil {
				tracer().Debugf("skipping reading of %q: %v", char, err)
				skipped++
				continue
			}
			data.addReading(uint16(char), id)
		}
	}
	tracer().Infof("%s: %d characters, %d syllables, %d entries skipped",
		data.Identifier, len(data.entries), len(data.syllables), skipped)
	return data, nil
}

// intern returns the ID of a numbered syllable, adding it if necessary.
func (data *PinyinData) intern(spelling string) (uint16, error) {
	syl, err := ParseSyllable(spelling)
	if err != nil {
		return 0, err
	}
	key := syl.Code(AsciiTone)
	if node, ok := data.spellings.Find(key); ok {
		return node.Meta().(uint16), nil
	}
	if len(data.syllables) >= 0xFFFF {
		return 0, fmt.Errorf("too many distinct syllables")
	}
	id := uint16(len(data.syllables))
	data.syllables = append(data.syllables, syl)
	data.spellings.Add(key, id)
	return id, nil
}

func (data *PinyinData) addReading(char uint16, syllable uint16) {
	entry := data.index.Dense(char)
	if entry == 0 {
		data.entries = append(data.entries, nil)
		entry = uint16(len(data.entries))
		data.index.Set(char, entry)
	}
	ids := data.entries[entry-1]
	for _, id := range ids {
		if id == syllable {
			return
		}
	}
	data.entries[entry-1] = append(ids, syllable)
}

// Readings returns the syllables char may be read as, or nil.
// The returned slice must not be modified.
func (data *PinyinData) Readings(char rune) []*Syllable {
	ids := data.readingIDs(char)
	if len(ids) == 0 {
		return nil
	}
	syls := make([]*Syllable, len(ids))
	for i, id := range ids {
		syls[i] = data.syllables[id]
	}
	return syls
}

func (data *PinyinData) readingIDs(char rune) []uint16 {
	if data == nil {
		return nil
	}
	entry, ok := data.index.Lookup(char)
	if !ok {
		return nil
	}
	return data.entries[entry-1]
}

// Syllable looks up a numbered spelling like "zhong1".
func (data *PinyinData) Syllable(spelling string) (*Syllable, bool) {
	node, ok := data.spellings.Find(spelling)
	if !ok {
		return nil, false
	}
	return data.syllables[node.Meta().(uint16)], true
}

// Stats reports the number of indexed characters and distinct syllables.
func (data *PinyinData) Stats() (characters, syllables int) {
	if data == nil {
		return 0, 0
	}
	return data.index.Len(), len(data.syllables)
}
