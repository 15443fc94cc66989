// Package tokenizer splits multi-script text into tagged tokens (words,
// numbers, URLs, emails, mentions, hashtags, emoji, emoticons, times,
// currency, punctuation, symbols, quoted phrases and ordinals) and encodes
// each sentence as a compact fingerprint of its token tags.
//
// A Tokenizer owns its active rules, fingerprint codes and last result, and
// is not safe for concurrent use; use one instance per goroutine or guard it
// with a lock. The master rule set and the contraction table are shared and
// read-only.
package tokenizer

// Tokenizer segments sentences with an ordered, configurable rule set.
type Tokenizer struct {
	rules        []Rule
	codes        *Fingerprints
	contractions *Contractions
	normalizer   *Normalizer
	cache        *segmentCache
	last         []Token
}

// NewTokenizer creates a tokenizer with the default configuration.
func NewTokenizer() *Tokenizer {
	return NewTokenizerWithConfig(DefaultConfig())
}

// NewTokenizerWithNormalizer creates a tokenizer that normalizes every
// sentence with norm before segmenting it.
func NewTokenizerWithNormalizer(norm *Normalizer) *Tokenizer {
	cfg := DefaultConfig()
	cfg.Normalizer = norm
	return NewTokenizerWithConfig(cfg)
}

// NewTokenizerNoCache creates a tokenizer with caching disabled.
// Use this when memory is constrained or sentences rarely repeat.
func NewTokenizerNoCache() *Tokenizer {
	cfg := DefaultConfig()
	cfg.CacheSize = 0
	return NewTokenizerWithConfig(cfg)
}

// NewTokenizerWithConfig creates a tokenizer from cfg.
func NewTokenizerWithConfig(cfg Config) *Tokenizer {
	t := &Tokenizer{
		codes:        NewFingerprints(),
		contractions: DefaultContractions(),
		normalizer:   cfg.Normalizer,
		cache:        newSegmentCache(cfg.CacheSize),
	}

	selection := cfg.Selection
	if selection == nil {
		selection = DefaultSelection()
	}
	t.DefineConfig(selection)

	return t
}

// Tokenize splits sentence into tokens and keeps them for Fingerprint.
// Empty or blank input yields an empty slice.
func (t *Tokenizer) Tokenize(sentence string) []Token {
	sentence = t.normalizer.Normalize(sentence)

	tokens, ok := t.cache.get(sentence)
	if !ok {
		tokens = Segment(sentence, t.rules, t.contractions)
		t.cache.add(sentence, tokens)
	}
	if tokens == nil {
		tokens = []Token{}
	}

	t.last = tokens
	return cloneTokens(tokens)
}

// Fingerprint encodes the tokens of the last Tokenize call. It is empty
// before the first call.
func (t *Tokenizer) Fingerprint() string {
	return t.codes.Encode(t.last)
}

// FingerprintSegments returns one fingerprint segment per token of the last
// Tokenize call.
func (t *Tokenizer) FingerprintSegments() []string {
	return t.codes.Segments(t.last)
}

// FingerprintCode returns the code registered for tag.
func (t *Tokenizer) FingerprintCode(tag string) (string, bool) {
	return t.codes.Code(tag)
}

// Tags returns every tag that currently has a fingerprint code.
func (t *Tokenizer) Tags() []string {
	return t.codes.Tags()
}

// Rules returns a copy of the active rules in precedence order.
func (t *Tokenizer) Rules() []Rule {
	rules := make([]Rule, len(t.rules))
	copy(rules, t.rules)
	return rules
}

// ActiveCategories returns the distinct categories of the active rules in
// precedence order.
func (t *Tokenizer) ActiveCategories() []string {
	return distinctCategories(t.rules)
}

// CacheSize returns the number of cached segmentations.
func (t *Tokenizer) CacheSize() int {
	return t.cache.len()
}

// ClearCache clears the segmentation cache.
func (t *Tokenizer) ClearCache() {
	t.cache.purge()
}

// CacheEnabled returns true if caching is enabled.
func (t *Tokenizer) CacheEnabled() bool {
	return t.cache != nil
}
