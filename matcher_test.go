package pinsearch

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestLiteralMatch(t *testing.T) {
	m := NewMatcher("abc")
	tests := []struct {
		haystack string
		want     Match
		found    bool
	}{
		{haystack: "xabcx", want: Match{1, 4}, found: true},
		{haystack: "XABCX", want: Match{1, 4}, found: true},
		{haystack: "ａｂｃ", want: Match{0, 9}, found: true},
		{haystack: "ab", found: false},
		{haystack: "xyz", found: false},
		{haystack: "中abc", want: Match{3, 6}, found: true},
	}
	for _, tt := range tests {
		got, ok := m.Find(tt.haystack)
		if ok != tt.found || (ok && got != tt.want) {
			t.Errorf("Find(%q) = %v, %v; want %v, %v", tt.haystack, got, ok, tt.want, tt.found)
		}
	}
	if !m.IsLiteral() || m.Engine() != "literal" {
		t.Fatalf("expected literal engine, have %s", m.Engine())
	}
}

func TestEmptyPatternMatchesEverywhere(t *testing.T) {
	m := NewMatcher("")
	if got, ok := m.Find("anything"); !ok || got != (Match{0, 0}) {
		t.Fatalf("empty pattern should match at 0, got %v, %v", got, ok)
	}
}

func TestFullWidthPattern(t *testing.T) {
	m := NewMatcher("ＡＢＣ")
	if got, ok := m.Find("xabc"); !ok || got != (Match{1, 4}) {
		t.Fatalf("full-width pattern should fold to ASCII, got %v, %v", got, ok)
	}
}

func TestPatternFoldingKeepsRuneCount(t *testing.T) {
	tests := []struct {
		pattern  string
		haystack string
		want     Match
	}{
		{"İ", "xİ", Match{1, 3}},
		{"İstanbul", "İSTANBUL.txt", Match{0, 9}},
		{"ΣΑΣ", "σας", Match{0, 6}},
		{"K", "xk", Match{1, 2}}, // Kelvin sign
	}
	for _, tt := range tests {
		got, ok := NewMatcher(tt.pattern).Find(tt.haystack)
		if !ok || got != tt.want {
			t.Errorf("%q in %q = %v, %v; want %v", tt.pattern, tt.haystack, got, ok, tt.want)
		}
	}
}

func TestPinyinMatch(t *testing.T) {
	py := NewPinyinConfig(loadTestPinyin(t), Ascii|AsciiFirstLetter)
	tests := []struct {
		pattern  string
		haystack string
		want     Match
		found    bool
	}{
		{"zhongwen", "中文.txt", Match{0, 6}, true},
		{"zw", "中文.txt", Match{0, 6}, true},
		{"zhongw", "中文.txt", Match{0, 6}, true},
		{"zhong文", "中文.txt", Match{0, 6}, true},
		{"pinyin搜索", "拼音搜索", Match{0, 12}, true},
		{"pysousuo", "用拼音搜索", Match{3, 15}, true},
		{"hang", "银行", Match{3, 6}, true},
		{"xing", "银行", Match{3, 6}, true},
		{"lv", "绿色", Match{0, 3}, true},
		{"txt", "中文.txt", Match{7, 10}, true},
		{"zho", "中文", Match{}, false},
		{"wenz", "中文", Match{}, false},
		{"z", "a中中", Match{1, 4}, true},
	}
	for _, tt := range tests {
		m := NewMatcher(tt.pattern, WithPinyin(py), Analyze(true))
		got, ok := m.Find(tt.haystack)
		if ok != tt.found || (ok && got != tt.want) {
			t.Errorf("%q in %q = %v, %v; want %v, %v", tt.pattern, tt.haystack, got, ok, tt.want, tt.found)
		}
	}
}

func TestPinyinNotations(t *testing.T) {
	data := loadTestPinyin(t)
	tone := NewMatcher("zhong1wen2", WithPinyin(NewPinyinConfig(data, AsciiTone)))
	if got, ok := tone.Find("中文"); !ok || got != (Match{0, 6}) {
		t.Errorf("tone notation: got %v, %v", got, ok)
	}
	xiaohe := NewMatcher("vswf", WithPinyin(NewPinyinConfig(data, DiletterXiaohe)))
	if got, ok := xiaohe.Find("中文"); !ok || got != (Match{0, 6}) {
		t.Errorf("xiaohe notation: got %v, %v", got, ok)
	}
	ascii := NewMatcher("zw", WithPinyin(NewPinyinConfig(data, Ascii)))
	if _, ok := ascii.Find("中文"); ok {
		t.Errorf("first letters must not match without AsciiFirstLetter")
	}
}

func TestPinyinPartialPattern(t *testing.T) {
	data := loadTestPinyin(t)
	partial := NewPinyinConfig(data, Ascii, AllowPartialPinyin(true))
	m := NewMatcher("zhongw", WithPinyin(partial), PatternPartial(true))
	if got, ok := m.Find("中文"); !ok || got != (Match{0, 6}) {
		t.Errorf("partial last syllable: got %v, %v", got, ok)
	}
	m = NewMatcher("zhongw", WithPinyin(partial), PatternPartial(false))
	if _, ok := m.Find("中文"); ok {
		t.Errorf("complete pattern must not match a partial syllable")
	}
	m = NewMatcher("zhongw", WithPinyin(NewPinyinConfig(data, Ascii)), PatternPartial(true))
	if _, ok := m.Find("中文"); ok {
		t.Errorf("partial syllables must be allowed by the pinyin configuration")
	}
}

func TestRomajiMatch(t *testing.T) {
	rj := NewRomajiConfig(loadTestRomaji(t))
	tests := []struct {
		pattern  string
		haystack string
		want     Match
		found    bool
	}{
		{"kana", "かな", Match{0, 6}, true},
		{"kitte", "きって.jpg", Match{0, 9}, true},
		{"kya", "きゃ", Match{0, 6}, true},
		{"si", "ちし", Match{3, 6}, true},
		{"ti", "ちし", Match{0, 3}, true},
		{"katakana", "カタカナ", Match{0, 12}, true},
		{"ky", "きゃ", Match{}, false},
	}
	for _, tt := range tests {
		m := NewMatcher(tt.pattern, WithRomaji(rj), Analyze(true))
		got, ok := m.Find(tt.haystack)
		if ok != tt.found || (ok && got != tt.want) {
			t.Errorf("%q in %q = %v, %v; want %v, %v", tt.pattern, tt.haystack, got, ok, tt.want, tt.found)
		}
	}
	partial := NewRomajiConfig(loadTestRomaji(t), AllowPartialRomaji(true))
	m := NewMatcher("ky", WithRomaji(partial), PatternPartial(true))
	if got, ok := m.Find("きゃ"); !ok || got != (Match{0, 6}) {
		t.Errorf("partial romaji: got %v, %v", got, ok)
	}
}

func TestMixedPinyinRomaji(t *testing.T) {
	m := NewMatcher("zhongkana",
		WithPinyin(NewPinyinConfig(loadTestPinyin(t), Ascii)),
		WithRomaji(NewRomajiConfig(loadTestRomaji(t))),
		Analyze(true))
	if m.Engine() != "literal+pinyin+romaji" {
		t.Fatalf("unexpected engine %s", m.Engine())
	}
	if got, ok := m.Find("x中かな"); !ok || got != (Match{1, 10}) {
		t.Fatalf("mixed match: got %v, %v", got, ok)
	}
}

func TestDegradesToLiteral(t *testing.T) {
	py := NewPinyinConfig(loadTestPinyin(t), Ascii)
	tests := []struct {
		name    string
		pattern string
	}{
		{"no romanizable characters", "中文"},
		{"invalid utf-8", "zh\xffong"},
		{"too long", string(make([]byte, MaxPhoneticPattern+1))},
	}
	for _, tt := range tests {
		m := NewMatcher(tt.pattern, WithPinyin(py), Analyze(true))
		if !m.IsLiteral() {
			t.Errorf("%s: expected literal engine, have %s", tt.name, m.Engine())
		}
	}
	m := NewMatcher("中文", WithPinyin(py), Analyze(true))
	if got, ok := m.Find("的中文"); !ok || got != (Match{3, 9}) {
		t.Fatalf("literal fallback should still match, got %v, %v", got, ok)
	}
}

func TestASCIIHaystackFastPath(t *testing.T) {
	m := NewMatcher("abc", WithPinyin(NewPinyinConfig(loadTestPinyin(t), Ascii)), Analyze(true))
	if got, ok := m.Find("xabcx"); !ok || got != (Match{1, 4}) {
		t.Fatalf("got %v, %v", got, ok)
	}
	if _, ok := m.Find("xyz"); ok {
		t.Fatalf("unexpected match")
	}
}

func TestConcurrentFind(t *testing.T) {
	m := NewMatcher("zw",
		WithPinyin(NewPinyinConfig(loadTestPinyin(t), Ascii|AsciiFirstLetter)),
		Analyze(true))
	haystacks := make([]string, 64)
	want := make([]Match, len(haystacks))
	found := make([]bool, len(haystacks))
	for i := range haystacks {
		haystacks[i] = fmt.Sprintf("%d-%s中文", i, string(make([]rune, i%5)))
		want[i], found[i] = m.Find(haystacks[i])
	}
	var wg sync.WaitGroup
	errs := make(chan string, 24)
	for g := 0; g < 24; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for round := 0; round < 200; round++ {
				i := (g + round) % len(haystacks)
				got, ok := m.Find(haystacks[i])
				if ok != found[i] || got != want[i] {
					errs <- fmt.Sprintf("goroutine %d: %q got %v, %v", g, haystacks[i], got, ok)
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func TestPhoneticLongHaystack(t *testing.T) {
	py := NewPinyinConfig(loadTestPinyin(t), Ascii|AsciiFirstLetter)
	tests := []struct {
		pattern  string
		haystack string
		want     Match
		found    bool
	}{
		{"pinyin", strings.Repeat("中", 300) + "拼音", Match{900, 906}, true},
		{"zw", strings.Repeat("中", 300) + "文", Match{897, 903}, true},
		{"zhongwenx", strings.Repeat("中文", 150), Match{}, false},
		{"zz", strings.Repeat("中", 300), Match{0, 6}, true},
	}
	for _, tt := range tests {
		m := NewMatcher(tt.pattern, WithPinyin(py), Analyze(true))
		for round := 0; round < 2; round++ { // the second round reuses pooled state
			got, ok := m.Find(tt.haystack)
			if ok != tt.found || (ok && got != tt.want) {
				t.Errorf("%q (round %d) = %v, %v; want %v, %v", tt.pattern, round, got, ok, tt.want, tt.found)
			}
			short, ok := m.Find("x中文")
			if want := tt.pattern == "zw"; ok != want || (ok && short != Match{1, 7}) {
				t.Errorf("%q after a long haystack: %v, %v", tt.pattern, short, ok)
			}
		}
	}
}

func BenchmarkFindPhoneticLongHaystack(b *testing.B) {
	data, err := LoadPinyinData("bench", ReadingList([]Reading{
		{Char: '中', Syllables: []string{"zhong1", "zhong4"}},
		{Char: '文', Syllables: []string{"wen2"}},
		{Char: '测', Syllables: []string{"ce4"}},
		{Char: '试', Syllables: []string{"shi4"}},
	}))
	if err != nil {
		b.Fatal(err)
	}
	m := NewMatcher("zhongwenceshix", WithPinyin(NewPinyinConfig(data, Ascii|AsciiFirstLetter)), Analyze(true))
	haystack := strings.Repeat("中文测试", 65) // 260 runes, no match
	b.SetBytes(int64(len(haystack)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := m.Find(haystack); ok {
			b.Fatal("unexpected match")
		}
	}
}
