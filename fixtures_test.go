package pinsearch

import "testing"

func loadTestPinyin(t *testing.T) *PinyinData {
	t.Helper()
	data, err := LoadPinyinData("test", ReadingList([]Reading{
		{Char: '中', Syllables: []string{"zhong1", "zhong4"}},
		{Char: '文', Syllables: []string{"wen2"}},
		{Char: '拼', Syllables: []string{"pin1"}},
		{Char: '音', Syllables: []string{"yin1"}},
		{Char: '搜', Syllables: []string{"sou1"}},
		{Char: '索', Syllables: []string{"suo3"}},
		{Char: '行', Syllables: []string{"xing2", "hang2"}},
		{Char: '绿', Syllables: []string{"lv4", "lu4"}},
		{Char: '学', Syllables: []string{"xue2"}},
		{Char: '测', Syllables: []string{"ce4"}},
		{Char: '试', Syllables: []string{"shi4"}},
	}))
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func loadTestRomaji(t *testing.T) *RomajiData {
	t.Helper()
	data, err := LoadRomajiData("test", KanaList([]KanaEntry{
		{Kana: "か", Romaji: []string{"ka"}},
		{Kana: "き", Romaji: []string{"ki"}},
		{Kana: "な", Romaji: []string{"na"}},
		{Kana: "し", Romaji: []string{"shi", "si"}},
		{Kana: "ち", Romaji: []string{"chi", "ti"}},
		{Kana: "て", Romaji: []string{"te"}},
		{Kana: "と", Romaji: []string{"to"}},
		{Kana: "ん", Romaji: []string{"n", "nn"}},
		{Kana: "きゃ", Romaji: []string{"kya"}},
		{Kana: "カ", Romaji: []string{"ka"}},
		{Kana: "タ", Romaji: []string{"ta"}},
		{Kana: "ナ", Romaji: []string{"na"}},
	}))
	if err != nil {
		t.Fatal(err)
	}
	return data
}
