package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizerFunc defines a single normalization step.
type NormalizerFunc func(string) string

// Normalizer applies a configurable pipeline of normalization steps to a
// sentence before it is segmented. Token values are spans of the
// normalized text.
type Normalizer struct {
	steps []NormalizerFunc
}

// NewNormalizer creates a normalizer with the default pipeline.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		steps: []NormalizerFunc{
			NFCCompose,
			RemoveControlChars,
			NormalizeQuotes,
		},
	}
}

// NewNormalizerWithSteps creates a normalizer with a custom pipeline.
func NewNormalizerWithSteps(steps ...NormalizerFunc) *Normalizer {
	return &Normalizer{steps: steps}
}

// Normalize applies all configured steps in order. A nil Normalizer
// returns s unchanged.
func (n *Normalizer) Normalize(s string) string {
	if n == nil {
		return s
	}
	for _, step := range n.steps {
		s = step(s)
	}
	return s
}

// NFCCompose applies Unicode NFC normalization, so a decomposed é (e + U+0301)
// matches the Latin-1 word and hashtag rules.
func NFCCompose(s string) string {
	return norm.NFC.String(s)
}

// NFKCCompose applies Unicode NFKC normalization.
// Folds compatibility forms: ﬁ → fi, full-width digits → ASCII digits.
func NFKCCompose(s string) string {
	return norm.NFKC.String(s)
}

// RemoveControlChars removes Unicode control characters other than whitespace,
// which still separates tokens.
func RemoveControlChars(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

// Lowercase converts to lowercase.
func Lowercase(s string) string {
	return strings.ToLower(s)
}

// quoteReplacements maps typographic apostrophes to ASCII so contractions
// like won’t reach the contraction table. Double quotes are folded so
// quoted phrases are recognised.
var quoteReplacements = map[rune]rune{
	'\u201E': '"',  // „ low double quote
	'\u201C': '"',  // " left double quote
	'\u201D': '"',  // " right double quote
	'\u00AB': '"',  // « left-pointing double angle
	'\u00BB': '"',  // » right-pointing double angle
	'\u2018': '\'', // ' left single quote
	'\u2019': '\'', // ' right single quote
	'\u02BC': '\'', // ʼ modifier letter apostrophe
	'\u201A': '\'', // ‚ single low-9 quote
	'\u2039': '\'', // ‹ single left-pointing angle
	'\u203A': '\'', // › single right-pointing angle
}

// NormalizeQuotes converts typographic quotes to ASCII.
func NormalizeQuotes(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if replacement, ok := quoteReplacements[r]; ok {
			result.WriteRune(replacement)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
