package pinsearch

import (
	"fmt"
	"strings"
)

// Syllable is one toned pinyin syllable, written in ASCII with 'v' for ü.
type Syllable struct {
	Plain   string // e.g. "zhong", "lve"
	Tone    uint8  // 1..4, 5 for the neutral tone
	Initial string // e.g. "zh"; y and w count as initials
	Final   string // e.g. "ong"
	codes   [4]string
}

// Code returns the spelling of s in a single notation, or "" if s has no
// spelling in it (for example interjections like "hm" in double pinyin).
func (s *Syllable) Code(n Notation) string {
	switch n {
	case Ascii:
		return s.codes[0]
	case AsciiTone:
		return s.codes[1]
	case AsciiFirstLetter:
		return s.codes[2]
	case DiletterXiaohe:
		return s.codes[3]
	}
	return ""
}

func (s *Syllable) String() string {
	return s.codes[1]
}

// initials are ordered so that two-letter initials are tried first.
var initials = []string{
	"zh", "ch", "sh",
	"b", "p", "m", "f", "d", "t", "n", "l", "g", "k", "h",
	"j", "q", "x", "r", "z", "c", "s", "y", "w",
}

var xiaoheInitials = map[string]string{
	"zh": "v", "ch": "i", "sh": "u",
}

var xiaoheFinals = map[string]string{
	"iu": "q", "ei": "w", "uan": "r", "van": "r", "ue": "t", "ve": "t",
	"un": "y", "vn": "y", "u": "u", "i": "i", "uo": "o", "o": "o",
	"ie": "p", "a": "a", "ong": "s", "iong": "s", "ai": "d", "en": "f",
	"eng": "g", "ang": "h", "an": "j", "uai": "k", "ing": "k", "uang": "l",
	"iang": "l", "ou": "z", "ua": "x", "ia": "x", "ao": "c", "ui": "v",
	"v": "v", "in": "b", "iao": "n", "ian": "m", "e": "e",
}

// ParseSyllable parses a numbered pinyin syllable like "zhong1" or "lve4".
// A missing tone digit denotes the neutral tone.
func ParseSyllable(s string) (*Syllable, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, fmt.Errorf("empty pinyin syllable")
	}
	tone := uint8(5)
	if last := s[len(s)-1]; last >= '0' && last <= '5' {
		tone = last - '0'
		if tone == 0 {
			tone = 5
		}
		s = s[:len(s)-1]
	}
	if s == "" || len(s) > 6 {
		return nil, fmt.Errorf("malformed pinyin syllable %q", s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return nil, fmt.Errorf("malformed pinyin syllable %q", s)
		}
	}
	syl := &Syllable{Plain: s, Tone: tone}
	syl.Initial, syl.Final = splitSyllable(s)
	syl.codes[0] = s
	syl.codes[1] = fmt.Sprintf("%s%d", s, tone)
	syl.codes[2] = s[:1]
	syl.codes[3] = xiaoheCode(syl.Initial, syl.Final)
	return syl, nil
}

func splitSyllable(s string) (initial, final string) {
	for _, ini := range initials {
		if len(s) > len(ini) && strings.HasPrefix(s, ini) {
			return ini, s[len(ini):]
		}
	}
	return "", s
}

func xiaoheCode(initial, final string) string {
	if initial == "" { // zero initial: a→aa, ai→ai, ang→ah
		switch len(final) {
		case 1:
			return final + final
		case 2:
			return final
		}
		if key, ok := xiaoheFinals[final]; ok {
			return final[:1] + key
		}
		return ""
	}
	key, ok := xiaoheFinals[final]
	if !ok {
		return ""
	}
	if ik, ok := xiaoheInitials[initial]; ok {
		return ik + key
	}
	return initial + key
}
