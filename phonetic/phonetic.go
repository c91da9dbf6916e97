/*
Package phonetic provides the dictionary resources shared by all matchers of
a process: pinyin readings of Han characters and the kana romanization table.

The default pinyin readings are go-pinyin's dictionary, which covers the
CJK Unified Ideographs and their extensions. Characters outside the BMP are
not indexed.

Resources are loaded once and never mutated afterwards. Every matcher built
from them refers to the same data.

Example usage:

	res := phonetic.Default()
	py := pinsearch.NewPinyinConfig(res.Pinyin, pinsearch.Ascii|pinsearch.AsciiFirstLetter)
	m := pinsearch.NewMatcher("zw", pinsearch.WithPinyin(py))
*/
package phonetic

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sync"

	gopinyin "github.com/mozillazg/go-pinyin"
	"github.com/npillmayer/pinsearch"
	"github.com/npillmayer/pinsearch/kanadata"
	"github.com/npillmayer/pinsearch/pinyindata"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("pinsearch.phonetic")
}

//go:embed kana.txt
var kanaText []byte

// Resources bundles the shared dictionaries.
type Resources struct {
	Pinyin *pinsearch.PinyinData
	Romaji *pinsearch.RomajiData
}

var (
	defaultOnce sync.Once
	defaultRes  *Resources
)

// Default returns the resources built from go-pinyin's dictionary and the
// embedded kana table. They are loaded on first use. Both are part of the
// build, therefore a failure to load them is a programming error and panics.
func Default() *Resources {
	defaultOnce.Do(func() {
		py, err := pinyindata.LoadDict("go-pinyin", gopinyin.PinyinDict)
		if err != nil {
			panic(fmt.Sprintf("phonetic: pinyin dictionary: %v", err))
		}
		rj, err := kanadata.LoadRomaji("embedded", bytes.NewReader(kanaText))
		if err != nil {
			panic(fmt.Sprintf("phonetic: embedded kana table: %v", err))
		}
		defaultRes = newResources(py, rj)
	})
	return defaultRes
}

// Load builds resources from pinyin-data text and a kana table.
func Load(pinyin io.Reader, kana io.Reader) (*Resources, error) {
	py, err := pinyindata.LoadPinyin("custom", pinyin)
	if err != nil {
		return nil, fmt.Errorf("loading pinyin data: %w", err)
	}
	rj, err := kanadata.LoadRomaji("custom", kana)
	if err != nil {
		return nil, fmt.Errorf("loading kana table: %w", err)
	}
	return newResources(py, rj), nil
}

func newResources(py *pinsearch.PinyinData, rj *pinsearch.RomajiData) *Resources {
	chars, syllables := py.Stats()
	tracer().Infof("phonetic resources ready: %d characters, %d syllables", chars, syllables)
	return &Resources{Pinyin: py, Romaji: rj}
}
