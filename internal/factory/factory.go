// Package factory builds matchers from the plugin configuration.
package factory

import (
	"github.com/npillmayer/pinsearch"
	"github.com/npillmayer/pinsearch/internal/config"
	"github.com/npillmayer/pinsearch/phonetic"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("pinsearch.factory")
}

// Factory holds the match configurations built once per plugin lifetime.
// It is immutable and safe for concurrent use.
type Factory struct {
	pinyin *pinsearch.PinyinConfig
	romaji *pinsearch.RomajiConfig
}

// New builds the match configurations for cfg. The pinyin configuration
// exists iff pinyin search is enabled, the romaji configuration iff romaji
// search is enabled. res is referenced, never copied.
func New(cfg config.Config, res *phonetic.Resources) *Factory {
	f := &Factory{}
	if cfg.PinyinSearch.Enable {
		f.pinyin = pinsearch.NewPinyinConfig(res.Pinyin, cfg.PinyinSearch.NotationSet(),
			pinsearch.AllowPartialPinyin(cfg.PinyinSearch.PartialMatch()))
		tracer().Debugf("pinyin matching: notations=%s partial=%v",
			f.pinyin.Notations(), f.pinyin.AllowsPartial())
	}
	if cfg.RomajiSearch.Enable {
		f.romaji = pinsearch.NewRomajiConfig(res.Romaji,
			pinsearch.AllowPartialRomaji(cfg.RomajiSearch.AllowPartialMatch))
		tracer().Debugf("romaji matching: partial=%v", f.romaji.AllowsPartial())
	}
	return f
}

// Compile builds the composite matcher for pattern. Patterns are treated as
// possibly incomplete and always analyzed.
func (f *Factory) Compile(pattern string) *pinsearch.Matcher {
	return pinsearch.NewMatcher(pattern,
		pinsearch.WithPinyin(f.pinyin),
		pinsearch.WithRomaji(f.romaji),
		pinsearch.PatternPartial(true),
		pinsearch.Analyze(true),
	)
}

// Pinyin returns the pinyin configuration, nil if pinyin search is disabled.
func (f *Factory) Pinyin() *pinsearch.PinyinConfig { return f.pinyin }

// Romaji returns the romaji configuration, nil if romaji search is disabled.
func (f *Factory) Romaji() *pinsearch.RomajiConfig { return f.romaji }
