package pinsearch

import (
	"fmt"
	"strings"
)

// Notation is a set of pinyin romanization schemes a pattern may be typed in.
type Notation uint8

const (
	// Ascii is full pinyin without tones: "zhong".
	Ascii Notation = 1 << iota
	// AsciiTone is full pinyin with a trailing tone digit: "zhong1".
	// The neutral tone is written as 5.
	AsciiTone
	// AsciiFirstLetter is the first letter of a syllable: "z".
	AsciiFirstLetter
	// DiletterXiaohe is Xiaohe double pinyin (小鹤双拼): "vs".
	DiletterXiaohe

	notationEnd
)

var notationNames = []struct {
	n    Notation
	name string
}{
	{Ascii, "ascii"},
	{AsciiTone, "ascii_tone"},
	{AsciiFirstLetter, "ascii_first_letter"},
	{DiletterXiaohe, "diletter_xiaohe"},
}

// Has reports whether all notations of o are contained in n.
func (n Notation) Has(o Notation) bool {
	return n&o == o
}

// Each calls f for every single notation contained in n, in ascending order.
func (n Notation) Each(f func(Notation)) {
	for bit := Notation(1); bit < notationEnd; bit <<= 1 {
		if n&bit != 0 {
			f(bit)
		}
	}
}

func (n Notation) String() string {
	if n == 0 {
		return "none"
	}
	var names []string
	for _, nn := range notationNames {
		if n.Has(nn.n) {
			names = append(names, nn.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseNotation maps a configuration name like "ascii_first_letter" to its notation.
func ParseNotation(name string) (Notation, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, nn := range notationNames {
		if nn.name == key {
			return nn.n, nil
		}
	}
	return 0, fmt.Errorf("unknown pinyin notation %q", name)
}

// ParseNotations combines a list of configuration names into a notation set.
func ParseNotations(names []string) (Notation, error) {
	var n Notation
	for _, name := range names {
		nn, err := ParseNotation(name)
		if err != nil {
			return 0, err
		}
		n |= nn
	}
	return n, nil
}
