package pinsearch

import "io"

// Reading is a format-agnostic dictionary entry: the pinyin readings of one
// character, numbered ("zhong1", "zhong4").
type Reading struct {
	Char      rune
	Syllables []string
}

// ReadingReader yields pinyin readings one-by-one.
// It should return io.EOF when the stream is exhausted.
type ReadingReader interface {
	Next() (char rune, syllables []string, err error)
}

// KanaReader yields kana sequences with their romanizations one-by-one.
// It should return io.EOF when the stream is exhausted.
type KanaReader interface {
	Next() (kana []rune, romaji []string, err error)
}

// KanaEntry is a format-agnostic romaji table entry.
type KanaEntry struct {
	Kana   string
	Romaji []string
}

// ReadingList adapts an in-memory list to a ReadingReader.
func ReadingList(list []Reading) ReadingReader {
	return &readingList{list: list}
}

type readingList struct {
	list  []Reading
	index int
}

func (r *readingList) Next() (rune, []string, error) {
	if r.index >= len(r.list) {
		return 0, nil, io.EOF
	}
	entry := r.list[r.index]
	r.index++
	return entry.Char, entry.Syllables, nil
}

// KanaList adapts an in-memory list to a KanaReader.
func KanaList(list []KanaEntry) KanaReader {
	return &kanaList{list: list}
}

type kanaList struct {
	list  []KanaEntry
	index int
}

func (r *kanaList) Next() ([]rune, []string, error) {
	if r.index >= len(r.list) {
		return nil, nil, io.EOF
	}
	entry := r.list[r.index]
	r.index++
	return []rune(entry.Kana), entry.Romaji, nil
}
