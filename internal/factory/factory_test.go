package factory

import (
	"testing"

	"github.com/npillmayer/pinsearch/internal/config"
	"github.com/npillmayer/pinsearch/phonetic"
	"github.com/stretchr/testify/require"
)

func TestConfigurationsFollowEnableFlags(t *testing.T) {
	res := phonetic.Default()
	tests := []struct {
		name           string
		pinyin, romaji bool
		engine         string
	}{
		{name: "none", engine: "literal"},
		{name: "pinyin", pinyin: true, engine: "literal+pinyin"},
		{name: "romaji", romaji: true, engine: "literal+romaji"},
		{name: "both", pinyin: true, romaji: true, engine: "literal+pinyin+romaji"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.PinyinSearch.Enable = tc.pinyin
			cfg.RomajiSearch.Enable = tc.romaji
			f := New(cfg, res)
			require.Equal(t, tc.pinyin, f.Pinyin() != nil)
			require.Equal(t, tc.romaji, f.Romaji() != nil)
			require.Equal(t, tc.engine, f.Compile("abc").Engine())
		})
	}
}

func TestResourcesAreShared(t *testing.T) {
	res := phonetic.Default()
	cfg := config.Default()
	cfg.RomajiSearch.Enable = true
	a, b := New(cfg, res), New(cfg, res)
	require.Same(t, res.Pinyin, a.Pinyin().Data())
	require.Same(t, a.Pinyin().Data(), b.Pinyin().Data())
	require.Same(t, a.Romaji().Data(), b.Romaji().Data())
}

func TestPartialFlags(t *testing.T) {
	cfg := config.Default()
	cfg.RomajiSearch.Enable = true
	cfg.RomajiSearch.AllowPartialMatch = true
	yes := true
	cfg.PinyinSearch.AllowPartialMatch = &yes
	f := New(cfg, phonetic.Default())
	require.True(t, f.Pinyin().AllowsPartial())
	require.True(t, f.Romaji().AllowsPartial())

	require.True(t, f.Compile("zhonggu").IsMatch("中国"))
	require.True(t, f.Compile("ky").IsMatch("きょう"))
}

func TestCompileMatches(t *testing.T) {
	f := New(config.Default(), phonetic.Default())
	m := f.Compile("pysousuo")
	got, ok := m.Find("用拼音搜索.txt")
	require.True(t, ok)
	require.Equal(t, 3, got.Start)
	require.Equal(t, 15, got.End)

	require.False(t, f.Compile("zhonggu").IsMatch("中国"), "partial pinyin is off by default")
	require.True(t, f.Compile("zw").IsMatch("中文"))
	require.True(t, f.Compile("中文").IsLiteral())
}
