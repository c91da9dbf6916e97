/*
Package pinsearch implements fuzzy matching of search patterns against file
names, where a pattern may be typed as plain text, as pinyin romanization of
Chinese characters, or as romaji romanization of Japanese kana.

A Matcher is compiled once per pattern and may then be used concurrently by
any number of goroutines. It consists of a literal matcher, optionally
augmented by a PinyinConfig and a RomajiConfig. Both configurations
reference dictionary data (PinyinData, RomajiData) which is loaded once and
frozen; see package phonetic for the default data set.

Matching is leftmost-shortest: Find reports the first position in the
haystack where the pattern can be consumed, and the shortest extent there.
A pattern position may be consumed by

  - the same character, compared case-insensitively,
  - any notation of any reading of a Han character (pinyin),
  - any romanization of a kana sequence (romaji).

All three kinds may be mixed within one pattern, e.g. "pinyin搜索" or "pysousuo".

Further Reading

	https://github.com/mozillazg/pinyin-data   (reading data format)
	https://en.wikipedia.org/wiki/Shuangpin    (double pinyin notations)
	https://en.wikipedia.org/wiki/Romanization_of_Japanese

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package pinsearch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pinsearch'
func tracer() tracing.Trace {
	return tracing.Select("pinsearch")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
