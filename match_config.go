package pinsearch

// PinyinConfig configures the pinyin augmentation of a Matcher. It is
// immutable after construction and usually shared by all matchers built
// during the lifetime of a process.
type PinyinConfig struct {
	data         *PinyinData
	notations    Notation
	allowPartial bool
}

// PinyinOption configures a PinyinConfig.
type PinyinOption func(*PinyinConfig)

// AllowPartialPinyin lets the last pattern syllable be a prefix of a reading,
// e.g. "zho" matching 中. It only has an effect for partial patterns.
func AllowPartialPinyin(allow bool) PinyinOption {
	return func(c *PinyinConfig) {
		c.allowPartial = allow
	}
}

// NewPinyinConfig creates a pinyin configuration over data for the given
// notations. A zero notation set defaults to Ascii|AsciiFirstLetter.
func NewPinyinConfig(data *PinyinData, notations Notation, opts ...PinyinOption) *PinyinConfig {
	assert(data != nil, "pinyin configuration needs dictionary data")
	if notations == 0 {
		notations = Ascii | AsciiFirstLetter
	}
	c := &PinyinConfig{data: data, notations: notations}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Notations returns the configured notation set.
func (c *PinyinConfig) Notations() Notation { return c.notations }

// AllowsPartial reports whether partial pinyin patterns are allowed.
func (c *PinyinConfig) AllowsPartial() bool { return c.allowPartial }

// Data returns the dictionary data the configuration refers to.
func (c *PinyinConfig) Data() *PinyinData { return c.data }

// RomajiConfig configures the romaji augmentation of a Matcher.
// It is immutable after construction.
type RomajiConfig struct {
	data         *RomajiData
	allowPartial bool
}

// RomajiOption configures a RomajiConfig.
type RomajiOption func(*RomajiConfig)

// AllowPartialRomaji lets the last pattern syllable be a prefix of a
// romanization, e.g. "ky" matching きゃ. It only has an effect for partial
// patterns.
func AllowPartialRomaji(allow bool) RomajiOption {
	return func(c *RomajiConfig) {
		c.allowPartial = allow
	}
}

// NewRomajiConfig creates a romaji configuration over data.
func NewRomajiConfig(data *RomajiData, opts ...RomajiOption) *RomajiConfig {
	assert(data != nil, "romaji configuration needs kana data")
	c := &RomajiConfig{data: data}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AllowsPartial reports whether partial romaji patterns are allowed.
func (c *RomajiConfig) AllowsPartial() bool { return c.allowPartial }

// Data returns the kana table the configuration refers to.
func (c *RomajiConfig) Data() *RomajiData { return c.data }
