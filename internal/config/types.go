// Package config resolves, parses, validates, and defaults the plugin configuration.
package config

// Config is the user-facing configuration, persisted as YAML.
type Config struct {
	Search       SearchConfig       `yaml:"search" json:"search"`
	PinyinSearch PinyinSearchConfig `yaml:"pinyin_search" json:"pinyin_search"`
	RomajiSearch RomajiSearchConfig `yaml:"romaji_search" json:"romaji_search"`
	QuickSelect  QuickSelectConfig  `yaml:"quick_select" json:"quick_select"`
	Update       UpdateConfig       `yaml:"update" json:"update"`
}

// SearchConfig controls the search extension as a whole.
type SearchConfig struct {
	Enable bool `yaml:"enable" json:"enable"`
}

// PinyinMode selects how the native core hooks pinyin search into the host.
type PinyinMode string

const (
	ModeAuto  PinyinMode = "auto"
	ModePcre2 PinyinMode = "pcre2"
	ModePcre  PinyinMode = "pcre"
	ModeEdit  PinyinMode = "edit"
)

// PinyinSearchConfig controls pinyin matching.
type PinyinSearchConfig struct {
	Enable            bool       `yaml:"enable" json:"enable"`
	Mode              PinyinMode `yaml:"mode" json:"mode"`
	Notations         []string   `yaml:"notations" json:"notations"`
	AllowPartialMatch *bool      `yaml:"allow_partial_match,omitempty" json:"allow_partial_match,omitempty"`
}

// RomajiSearchConfig controls romaji matching.
type RomajiSearchConfig struct {
	Enable            bool `yaml:"enable" json:"enable"`
	AllowPartialMatch bool `yaml:"allow_partial_match" json:"allow_partial_match"`
}

// QuickSelectConfig controls keyboard quick selection in the host window.
type QuickSelectConfig struct {
	Enable     bool             `yaml:"enable" json:"enable"`
	SearchEdit SearchEditConfig `yaml:"search_edit" json:"search_edit"`
	ResultList ResultListConfig `yaml:"result_list" json:"result_list"`
}

// SearchEditConfig controls quick selection from the search edit box.
type SearchEditConfig struct {
	Enable bool `yaml:"enable" json:"enable"`
}

// ResultListConfig controls quick selection in the result list.
type ResultListConfig struct {
	Enable   bool   `yaml:"enable" json:"enable"`
	Terminal string `yaml:"terminal" json:"terminal"`
}

// UpdateConfig controls update checks.
type UpdateConfig struct {
	Check      bool  `yaml:"check" json:"check"`
	Prerelease *bool `yaml:"prerelease,omitempty" json:"prerelease,omitempty"`
}

// Warning is a non-fatal load or validation message.
type Warning struct {
	Message string
}
