package pinsearch

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// MaxPhoneticPattern is the longest pattern, in bytes after folding, that is
// matched phonetically. Longer patterns are matched literally.
const MaxPhoneticPattern = 255

// Match is the byte extent of a match within a haystack.
type Match struct {
	Start, End int
}

// engineKind is the closed set of engine compositions a Matcher can have.
type engineKind uint8

const (
	literalEngine engineKind = iota
	pinyinEngine
	romajiEngine
	pinyinRomajiEngine
)

func (k engineKind) String() string {
	switch k {
	case literalEngine:
		return "literal"
	case pinyinEngine:
		return "literal+pinyin"
	case romajiEngine:
		return "literal+romaji"
	case pinyinRomajiEngine:
		return "literal+pinyin+romaji"
	}
	return fmt.Sprintf("engine(%d)", uint8(k))
}

// Matcher is a compiled search pattern. It is immutable and safe for
// concurrent use by multiple goroutines.
type Matcher struct {
	kind          engineKind
	source        string // pattern as given
	pattern       string // folded pattern
	runes         []rune // folded pattern runes
	minLen        int    // minimum haystack length in bytes
	analyzed      bool
	pinyin        *PinyinConfig
	romaji        *RomajiConfig
	pinyinPartial bool
	romajiPartial bool
}

type matcherOptions struct {
	pinyin  *PinyinConfig
	romaji  *RomajiConfig
	partial bool
	analyze bool
}

// MatcherOption configures NewMatcher.
type MatcherOption func(*matcherOptions)

// WithPinyin augments the matcher with pinyin matching. nil disables it.
func WithPinyin(c *PinyinConfig) MatcherOption {
	return func(o *matcherOptions) { o.pinyin = c }
}

// WithRomaji augments the matcher with romaji matching. nil disables it.
func WithRomaji(c *RomajiConfig) MatcherOption {
	return func(o *matcherOptions) { o.romaji = c }
}

// PatternPartial declares that the pattern may be incomplete, i.e. that the
// user may still be typing its last syllable. Whether a partial syllable
// matches is decided by each phonetic configuration.
func PatternPartial(partial bool) MatcherOption {
	return func(o *matcherOptions) { o.partial = partial }
}

// Analyze enables pattern analysis at construction time. Analysis costs a
// little when compiling and makes matching considerably faster: patterns
// without romanizable characters fall back to literal matching, haystacks
// shorter than the pattern can ever match are rejected immediately and
// ASCII-only haystacks skip phonetic transitions.
func Analyze(analyze bool) MatcherOption {
	return func(o *matcherOptions) { o.analyze = analyze }
}

// NewMatcher compiles pattern. It never fails: a pattern which cannot be
// used for phonetic matching degrades to literal matching.
func NewMatcher(pattern string, opts ...MatcherOption) *Matcher {
	var o matcherOptions
	for _, opt := range opts {
		opt(&o)
	}
	folded := foldPattern(pattern)
	m := &Matcher{
		source:   pattern,
		pattern:  folded,
		runes:    []rune(folded),
		analyzed: o.analyze,
	}
	m.kind = selectEngine(pattern, folded, &o)
	switch m.kind {
	case pinyinEngine:
		m.pinyin = o.pinyin
	case romajiEngine:
		m.romaji = o.romaji
	case pinyinRomajiEngine:
		m.pinyin, m.romaji = o.pinyin, o.romaji
	}
	if m.pinyin != nil {
		m.pinyinPartial = o.partial && m.pinyin.allowPartial
	}
	if m.romaji != nil {
		m.romajiPartial = o.partial && m.romaji.allowPartial
	}
	if m.kind == literalEngine {
		m.minLen = len(m.runes)
	} else if len(m.runes) > 0 {
		m.minLen = 1
	}
	return m
}

func foldPattern(pattern string) string {
	if !utf8.ValidString(pattern) {
		pattern = strings.ToValidUTF8(pattern, string(utf8.RuneError))
	}
	// Rune by rune: the literal engine relies on the folded pattern having
	// one rune per pattern rune.
	return strings.Map(unicode.ToLower, width.Fold.String(pattern))
}

func selectEngine(pattern, folded string, o *matcherOptions) engineKind {
	usePinyin, useRomaji := o.pinyin != nil, o.romaji != nil
	if usePinyin || useRomaji {
		reason := ""
		switch {
		case !utf8.ValidString(pattern):
			reason = "invalid UTF-8"
		case len(folded) > MaxPhoneticPattern:
			reason = "pattern too long"
		case o.analyze && !hasRomanizable(folded):
			reason = "no romanizable characters"
		}
		if reason != "" {
			tracer().Debugf("pattern %q: %s, matching literally", pattern, reason)
			usePinyin, useRomaji = false, false
		}
	}
	switch {
	case usePinyin && useRomaji:
		return pinyinRomajiEngine
	case usePinyin:
		return pinyinEngine
	case useRomaji:
		return romajiEngine
	}
	return literalEngine
}

func hasRomanizable(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' {
			return true
		}
	}
	return false
}

// Pattern returns the pattern the matcher was compiled from.
func (m *Matcher) Pattern() string { return m.source }

// Engine describes the engine composition, e.g. "literal+pinyin".
func (m *Matcher) Engine() string { return m.kind.String() }

// IsLiteral reports whether m matches literally only.
func (m *Matcher) IsLiteral() bool { return m.kind == literalEngine }

// Find reports the leftmost match of the pattern in haystack and, among the
// matches starting there, the shortest one. An empty pattern matches the
// empty prefix of any haystack.
func (m *Matcher) Find(haystack string) (Match, bool) {
	if len(m.runes) == 0 {
		return Match{}, true
	}
	if m.analyzed && len(haystack) < m.minLen {
		return Match{}, false
	}
	switch m.kind {
	case literalEngine:
		return m.findLiteral(haystack)
	case pinyinEngine, romajiEngine, pinyinRomajiEngine:
		return m.findPhonetic(haystack)
	}
	panic(fmt.Sprintf("pinsearch: unhandled %v", m.kind))
}

// IsMatch reports whether haystack contains a match.
func (m *Matcher) IsMatch(haystack string) bool {
	_, ok := m.Find(haystack)
	return ok
}

func (m *Matcher) findLiteral(haystack string) (Match, bool) {
	first := m.runes[0]
	for start := 0; start < len(haystack); {
		r, size := utf8.DecodeRuneInString(haystack[start:])
		if foldEq(first, r) {
			if end, ok := m.literalAt(haystack, start+size); ok {
				return Match{Start: start, End: end}, true
			}
		}
		start += size
	}
	return Match{}, false
}

// literalAt matches the pattern runes after the first one at byte offset i.
func (m *Matcher) literalAt(haystack string, i int) (int, bool) {
	for _, pr := range m.runes[1:] {
		if i >= len(haystack) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(haystack[i:])
		if !foldEq(pr, r) {
			return 0, false
		}
		i += size
	}
	return i, true
}

// findPhonetic runs a forward state-set automaton over the haystack runes.
// states[j] holds the pattern byte positions reachable after consuming the
// haystack runes [start, j).
func (m *Matcher) findPhonetic(haystack string) (Match, bool) {
	sc := getScratch()
	defer putScratch(sc)
	if ascii := sc.decode(haystack); ascii && m.analyzed {
		return m.findLiteral(haystack)
	}
	n := len(sc.runes)
	plen := len(m.pattern)
	sc.resize(n + 1)
	clear(sc.states)
	dirty := -1 // highest state index written so far
	for start := 0; start < n; start++ {
		if dirty >= start {
			clear(sc.states[start : dirty+1])
		}
		sc.states[start].add(0)
		reach := start
		for j := start; j <= reach; j++ {
			set := &sc.states[j]
			if set.has(plen) {
				return Match{Start: sc.offs[start], End: sc.offs[j]}, true
			}
			if j == n {
				break
			}
			for w := range set {
				for bits := set[w]; bits != 0; bits &= bits - 1 {
					p := w<<6 | trailingZeros(bits)
					if to := m.step(sc, j, p); to > reach {
						reach = to
					}
				}
			}
		}
		dirty = max(dirty, reach)
	}
	return Match{}, false
}

// step adds all successors of pattern position p at haystack rune j and
// returns the highest haystack rune index reached.
func (m *Matcher) step(sc *scratch, j, p int) int {
	rest := m.pattern[p:]
	r := sc.runes[j]
	reach := j
	if pr, size := utf8.DecodeRuneInString(rest); foldEq(pr, r) {
		sc.states[j+1].add(p + size)
		reach = j + 1
	}
	if r < utf8.RuneSelf {
		return reach
	}
	if m.pinyin != nil {
		data := m.pinyin.data
		for _, id := range data.readingIDs(r) {
			syl := data.syllables[id]
			for n := Notation(1); n < notationEnd; n <<= 1 {
				if m.pinyin.notations&n == 0 {
					continue
				}
				if q, ok := advance(rest, syl.Code(n), m.pinyinPartial); ok {
					sc.states[j+1].add(p + q)
					reach = max(reach, j+1)
				}
			}
		}
	}
	if m.romaji != nil && isKana(r) {
		data := m.romaji.data
		state := data.trie.Root
		for k := j; k < len(sc.runes); k++ {
			c := data.trie.Dense(sc.runes[k])
			if c == 0 {
				break
			}
			next, ok := data.trie.Transition(state, c)
			if !ok {
				break
			}
			state = next
			for _, id := range data.store.ids(int(state)) {
				if q, ok := advance(rest, data.store.spellings[id], m.romajiPartial); ok {
					sc.states[k+1].add(p + q)
					reach = max(reach, k+1)
				}
			}
		}
	}
	return reach
}

// advance consumes code from the front of rest. With partial set, rest may
// also end inside code.
func advance(rest, code string, partial bool) (int, bool) {
	if code == "" {
		return 0, false
	}
	if strings.HasPrefix(rest, code) {
		return len(code), true
	}
	if partial && len(rest) < len(code) && strings.HasPrefix(code, rest) {
		return len(rest), true
	}
	return 0, false
}

// foldEq compares a folded pattern rune to a haystack rune, ignoring case
// and the width of full-width ASCII.
func foldEq(pr, r rune) bool {
	if pr == r {
		return true
	}
	if r < utf8.RuneSelf && pr < utf8.RuneSelf {
		return 'A' <= r && r <= 'Z' && r+'a'-'A' == pr
	}
	if r >= 0xFF01 && r <= 0xFF5E {
		return foldEq(pr, r-0xFEE0)
	}
	if unicode.ToLower(r) == pr {
		return true
	}
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f == pr {
			return true
		}
	}
	return false
}
