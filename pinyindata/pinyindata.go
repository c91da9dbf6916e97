/*
Package pinyindata reads pinyin readings in the text format of the
pinyin-data project:

	# comment
	U+4E2D: zhōng,zhòng  # 中
	U+6587: wén  # 文

Readings are written with tone marks. The reader converts them to numbered
ASCII syllables ("zhong1", "zhong4", "lv4"), which is what
pinsearch.LoadPinyinData expects. Already numbered readings are accepted as
well.
*/
package pinyindata

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/pinsearch"
	"golang.org/x/text/unicode/norm"
)

// LoadPinyin parses pinyin-data text and returns a ready-to-use dictionary.
func LoadPinyin(name string, reader io.Reader) (*pinsearch.PinyinData, error) {
	return pinsearch.LoadPinyinData(name, NewReader(reader))
}

// Reader streams readings from pinyin-data text.
type Reader struct {
	scanner   *bufio.Scanner
	line      int
	syllables []string
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner:   bufio.NewScanner(reader),
		syllables: make([]string, 0, 8),
	}
}

// Next returns the next character with its numbered readings.
// It returns io.EOF when exhausted.
// The returned slice is reused by subsequent calls.
func (r *Reader) Next() (rune, []string, error) {
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		char, readings, err := r.decodeLine(line)
		if err != nil {
			return 0, nil, fmt.Errorf("pinyindata: line %d: %w", r.line, err)
		}
		if len(readings) == 0 {
			continue
		}
		return char, readings, nil
	}
	if err := r.scanner.Err(); err != nil {
		return 0, nil, err
	}
	return 0, nil, io.EOF
}

func (r *Reader) decodeLine(line string) (rune, []string, error) {
	code, list, ok := strings.Cut(line, ":")
	if !ok {
		return 0, nil, fmt.Errorf("missing ':' in %q", line)
	}
	code = strings.TrimSpace(code)
	if !strings.HasPrefix(code, "U+") {
		return 0, nil, fmt.Errorf("malformed code point %q", code)
	}
	cp, err := strconv.ParseUint(code[2:], 16, 32)
	if err != nil {
		return 0, nil, fmt.Errorf("malformed code point %q", code)
	}
	r.syllables = r.syllables[:0]
	for _, reading := range strings.Split(list, ",") {
		reading = strings.TrimSpace(reading)
		if reading == "" {
			continue
		}
		numbered, err := Numbered(reading)
		if err != nil {
			return 0, nil, err
		}
		r.syllables = append(r.syllables, numbered)
	}
	return rune(cp), r.syllables, nil
}

// Numbered converts a syllable with tone marks to numbered ASCII, using 'v'
// for ü and 5 for the neutral tone: "lǜ" → "lv4", "ma" → "ma5".
// A syllable which already ends in a tone digit is returned lower-cased.
func Numbered(syllable string) (string, error) {
	var b strings.Builder
	tone := 0
	for _, ch := range norm.NFD.String(strings.ToLower(syllable)) {
		switch {
		case ch >= 'a' && ch <= 'z':
			b.WriteRune(ch)
		case ch >= '1' && ch <= '5':
			if tone != 0 {
				return "", fmt.Errorf("two tones in %q", syllable)
			}
			tone = int(ch - '0')
		case ch == '\u0304': // macron
			tone = 1
		case ch == '\u0301': // acute
			tone = 2
		case ch == '\u030C': // caron
			tone = 3
		case ch == '\u0300': // grave
			tone = 4
		case ch == '\u0308': // diaeresis, u → v
			s := b.String()
			if !strings.HasSuffix(s, "u") {
				return "", fmt.Errorf("misplaced diaeresis in %q", syllable)
			}
			b.Reset()
			b.WriteString(s[:len(s)-1])
			b.WriteByte('v')
		case ch == '\u0302': // circumflex of ê, spelled e
		default:
			return "", fmt.Errorf("unexpected %q in syllable %q", ch, syllable)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("empty syllable %q", syllable)
	}
	if tone == 0 {
		tone = 5
	}
	return b.String() + strconv.Itoa(tone), nil
}
