package pinsearch

import (
	"errors"
	"testing"
)

func TestPinyinDataReadings(t *testing.T) {
	data := loadTestPinyin(t)
	readings := data.Readings('行')
	if len(readings) != 2 {
		t.Fatalf("expected 2 readings for 行, got %d", len(readings))
	}
	if readings[0].Code(Ascii) != "xing" || readings[1].Code(Ascii) != "hang" {
		t.Fatalf("unexpected readings %v, %v", readings[0], readings[1])
	}
	if data.Readings('x') != nil {
		t.Fatalf("expected no readings for ASCII letter")
	}
	if syl, ok := data.Syllable("zhong4"); !ok || syl.Tone != 4 {
		t.Fatalf("expected syllable zhong4 to be indexed")
	}
	if _, ok := data.Syllable("zhong2"); ok {
		t.Fatalf("zhong2 is no reading of any loaded character")
	}
	chars, syllables := data.Stats()
	if chars != 11 || syllables != 14 {
		t.Fatalf("unexpected stats: chars=%d syllables=%d", chars, syllables)
	}
}

func TestPinyinDataMergesAndSkips(t *testing.T) {
	data, err := LoadPinyinData("merge", ReadingList([]Reading{
		{Char: '中', Syllables: []string{"zhong1"}},
		{Char: '中', Syllables: []string{"zhong1", "zhong4", "zh?ng"}},
		{Char: 0x20000, Syllables: []string{"he1"}},
	}))
	if err != nil {
		t.Fatal(err)
	}
	if n := len(data.Readings('中')); n != 2 {
		t.Fatalf("expected readings to be merged into 2, got %d", n)
	}
	if chars, _ := data.Stats(); chars != 1 {
		t.Fatalf("expected characters outside the BMP to be skipped, have %d", chars)
	}
}

type failingReader struct{}

func (failingReader) Next() (rune, []string, error) {
	return 0, nil, errors.New("broken stream")
}

func TestPinyinDataReaderError(t *testing.T) {
	if _, err := LoadPinyinData("broken", failingReader{}); err == nil {
		t.Fatalf("expected reader error to be returned")
	}
}
