/*
Package kanadata reads kana romanization tables.

A table has one kana sequence per line, followed by its romanizations,
separated by white space. Alternatives are separated by commas. The first
romanization of an entry is its preferred (Hepburn) spelling:

	# hiragana
	し	shi,si
	きゃ	kya

Sokuon entries (っか → kka) need not be listed; they are derived by
pinsearch.LoadRomajiData.
*/
package kanadata

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/pinsearch"
)

// LoadRomaji parses a kana table and returns a ready-to-use romaji table.
func LoadRomaji(name string, reader io.Reader) (*pinsearch.RomajiData, error) {
	return pinsearch.LoadRomajiData(name, NewReader(reader))
}

// Reader streams kana table entries.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	kana    []rune
	romaji  []string
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
		kana:    make([]rune, 0, 4),
		romaji:  make([]string, 0, 4),
	}
}

// Next returns the next entry as (kana, romanizations).
// It returns io.EOF when exhausted.
// The returned slices are reused by subsequent calls.
func (r *Reader) Next() ([]rune, []string, error) {
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("kanadata: line %d: expected kana and romaji, have %q", r.line, line)
		}
		r.kana = append(r.kana[:0], []rune(fields[0])...)
		r.romaji = r.romaji[:0]
		for _, rom := range strings.Split(fields[1], ",") {
			if rom != "" {
				r.romaji = append(r.romaji, rom)
			}
		}
		return r.kana, r.romaji, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, nil, err
	}
	return nil, nil, io.EOF
}
