package config

import _ "embed"

// DefaultTerminal is the terminal command template used when none is configured.
const DefaultTerminal = "wt -d ${fileDirname}"

// DefaultYAML is the published default configuration file.
//
//go:embed config.yaml
var DefaultYAML []byte

// Default returns the in-code defaults. Optional fields are left unset.
func Default() Config {
	return Config{
		Search: SearchConfig{Enable: true},
		PinyinSearch: PinyinSearchConfig{
			Enable:    true,
			Mode:      ModeAuto,
			Notations: []string{"ascii_first_letter", "ascii"},
		},
		RomajiSearch: RomajiSearchConfig{},
		QuickSelect: QuickSelectConfig{
			Enable:     true,
			SearchEdit: SearchEditConfig{Enable: true},
			ResultList: ResultListConfig{Enable: true},
		},
		Update: UpdateConfig{Check: true},
	}
}

// TerminalCommand returns the configured terminal command, or the default
// template if none is configured.
func (c ResultListConfig) TerminalCommand() string {
	if c.Terminal == "" {
		return DefaultTerminal
	}
	return c.Terminal
}
