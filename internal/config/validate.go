package config

import (
	"fmt"

	"github.com/npillmayer/pinsearch"
)

// Validate enforces config invariants and returns non-fatal warnings.
func Validate(cfg Config) ([]Warning, error) {
	warnings := make([]Warning, 0)

	switch cfg.PinyinSearch.Mode {
	case ModeAuto, ModePcre2, ModePcre, ModeEdit:
	default:
		return nil, fmt.Errorf("%w: pinyin_search.mode must be one of: auto, pcre2, pcre, edit", ErrInvalid)
	}
	if _, err := pinsearch.ParseNotations(cfg.PinyinSearch.Notations); err != nil {
		return nil, fmt.Errorf("%w: pinyin_search.notations: %v", ErrInvalid, err)
	}
	if len(cfg.PinyinSearch.Notations) == 0 {
		warnings = append(warnings, Warning{
			Message: "pinyin_search.notations is empty; using ascii_first_letter and ascii",
		})
	}
	if cfg.RomajiSearch.Enable && !cfg.PinyinSearch.Enable {
		warnings = append(warnings, Warning{
			Message: "romaji_search.enable implies pinyin_search.enable",
		})
	}
	return warnings, nil
}

// NotationSet returns the configured notations as a pinsearch.Notation.
// An empty list yields the zero set, which pinsearch treats as its default.
func (c PinyinSearchConfig) NotationSet() pinsearch.Notation {
	n, err := pinsearch.ParseNotations(c.Notations)
	if err != nil {
		tracer().Errorf("config: %v", err)
		return 0
	}
	return n
}

// PartialMatch returns the optional partial-match flag, false if unset.
func (c PinyinSearchConfig) PartialMatch() bool {
	return c.AllowPartialMatch != nil && *c.AllowPartialMatch
}
