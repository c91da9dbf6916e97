package config

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("pinsearch.config")
}

// Derived is the configuration handed to the native core. All optional
// fields of Config are resolved to concrete values.
type Derived struct {
	Search       SearchConfig        `json:"search"`
	PinyinSearch DerivedPinyinSearch `json:"pinyin_search"`
	RomajiSearch RomajiSearchConfig  `json:"romaji_search"`
	QuickSelect  QuickSelectConfig   `json:"quick_select"`
	Update       DerivedUpdate       `json:"update"`
	Offsets      map[string]uint32   `json:"offsets,omitempty"`
}

// DerivedPinyinSearch is PinyinSearchConfig with a concrete partial-match flag.
type DerivedPinyinSearch struct {
	Enable            bool       `json:"enable"`
	Mode              PinyinMode `json:"mode"`
	Notations         []string   `json:"notations"`
	AllowPartialMatch bool       `json:"allow_partial_match"`
}

// DerivedUpdate is UpdateConfig with a concrete prerelease flag.
type DerivedUpdate struct {
	Check      bool `json:"check"`
	Prerelease bool `json:"prerelease"`
}

// Fixup derives the native core configuration from cfg:
//
//   - romaji search is served by the pinyin hook, so enabling romaji
//     enables pinyin search as well
//   - mode auto resolves to pcre2
//   - an empty terminal command resolves to DefaultTerminal.
//
// cfg is not modified.
func Fixup(cfg Config) Derived {
	mode := cfg.PinyinSearch.Mode
	if mode == ModeAuto || mode == "" {
		mode = ModePcre2
	}
	notations := slices.Clone(cfg.PinyinSearch.Notations)
	if notations == nil {
		notations = []string{}
	}
	d := Derived{
		Search: cfg.Search,
		PinyinSearch: DerivedPinyinSearch{
			Enable:            cfg.PinyinSearch.Enable || cfg.RomajiSearch.Enable,
			Mode:              mode,
			Notations:         notations,
			AllowPartialMatch: cfg.PinyinSearch.PartialMatch(),
		},
		RomajiSearch: cfg.RomajiSearch,
		QuickSelect:  cfg.QuickSelect,
		Update: DerivedUpdate{
			Check:      cfg.Update.Check,
			Prerelease: cfg.Update.Prerelease != nil && *cfg.Update.Prerelease,
		},
	}
	d.QuickSelect.ResultList.Terminal = cfg.QuickSelect.ResultList.TerminalCommand()
	tracer().Debugf("derived config: pinyin=%v mode=%s romaji=%v",
		d.PinyinSearch.Enable, d.PinyinSearch.Mode, d.RomajiSearch.Enable)
	return d
}

// WithOffsets returns a copy of d carrying the given process offsets.
func (d Derived) WithOffsets(offsets map[string]uint32) Derived {
	d.Offsets = maps.Clone(offsets)
	return d
}

// JSON serializes d into the transport text for the native core.
func (d Derived) JSON() (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
