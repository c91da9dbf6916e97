package pinyindata

import (
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/npillmayer/pinsearch"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("pinsearch.pinyindata")
}

// LoadDict builds a dictionary from a code point to readings map, in the
// layout of go-pinyin's PinyinDict:
//
//	0x4E2D: "zhōng,zhòng"
func LoadDict(name string, dict map[int]string) (*pinsearch.PinyinData, error) {
	return pinsearch.LoadPinyinData(name, NewDictReader(dict))
}

// DictReader streams readings from a code point to readings map in
// ascending code point order. Readings which do not convert to numbered
// syllables are skipped.
type DictReader struct {
	dict      map[int]string
	keys      []int
	next      int
	syllables []string
}

func NewDictReader(dict map[int]string) *DictReader {
	return &DictReader{
		dict:      dict,
		keys:      slices.Sorted(maps.Keys(dict)),
		syllables: make([]string, 0, 8),
	}
}

// Next returns the next character with its numbered readings.
// It returns io.EOF when exhausted.
// The returned slice is reused by subsequent calls.
func (r *DictReader) Next() (rune, []string, error) {
	for r.next < len(r.keys) {
		cp := r.keys[r.next]
		r.next++
		r.syllables = r.syllables[:0]
		for _, reading := range strings.Split(r.dict[cp], ",") {
			reading = strings.TrimSpace(reading)
			if reading == "" {
				continue
			}
			numbered, err := Numbered(reading)
			if err != nil {
				tracer().Debugf("pinyindata: U+%04X: %v", cp, err)
				continue
			}
			r.syllables = append(r.syllables, numbered)
		}
		if len(r.syllables) > 0 {
			return rune(cp), r.syllables, nil
		}
	}
	return 0, nil, io.EOF
}
