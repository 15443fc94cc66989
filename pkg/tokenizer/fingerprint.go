package tokenizer

import (
	"maps"
	"sort"
	"strings"
	"unicode/utf8"
)

// defaultCodes are the built-in fingerprint codes. Punctuation and symbol
// have none on purpose: their literal text goes into the fingerprint.
var defaultCodes = map[string]string{
	Emoticon:     "c",
	Email:        "e",
	Emoji:        "j",
	Hashtag:      "h",
	Mention:      "m",
	Number:       "n",
	Ordinal:      "o",
	QuotedPhrase: "q",
	Currency:     "r",
	Time:         "t",
	URL:          "u",
	Word:         "w",
	Alien:        "z",
}

// Fingerprints maps tags to single-character fingerprint codes.
// Codes are unique across the table.
type Fingerprints struct {
	codes map[string]string // tag -> code
	owner map[string]string // code -> tag
}

// NewFingerprints creates a table seeded with the built-in codes.
func NewFingerprints() *Fingerprints {
	f := &Fingerprints{}
	f.Reset()
	return f
}

// Reset discards every registered tag and restores the built-in codes.
func (f *Fingerprints) Reset() {
	f.codes = make(map[string]string, len(defaultCodes)+4)
	f.owner = make(map[string]string, len(defaultCodes)+4)
	for tag, code := range defaultCodes {
		f.codes[tag] = code
		f.owner[code] = tag
	}
}

func (f *Fingerprints) clone() *Fingerprints {
	return &Fingerprints{codes: maps.Clone(f.codes), owner: maps.Clone(f.owner)}
}

// Code returns the code registered for tag.
func (f *Fingerprints) Code(tag string) (string, bool) {
	code, ok := f.codes[tag]
	return code, ok
}

// Add registers a new tag with its code.
func (f *Fingerprints) Add(tag, code string) error {
	if _, exists := f.codes[tag]; exists {
		return &DuplicateTagError{Tag: tag}
	}
	if utf8.RuneCountInString(code) != 1 {
		return &InvalidCodeError{Tag: tag, Code: code}
	}
	if owner, taken := f.owner[code]; taken {
		return &DuplicateCodeError{Code: code, Owner: owner}
	}
	f.codes[tag] = code
	f.owner[code] = tag
	return nil
}

// Tags returns the registered tag names in sorted order.
func (f *Fingerprints) Tags() []string {
	tags := make([]string, 0, len(f.codes))
	for tag := range f.codes {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Segments returns one fingerprint segment per token: the tag's code, or
// the token's own value when the tag has no code.
func (f *Fingerprints) Segments(tokens []Token) []string {
	segments := make([]string, len(tokens))
	for i, t := range tokens {
		if code, ok := f.codes[t.Tag]; ok {
			segments[i] = code
		} else {
			segments[i] = t.Value
		}
	}
	return segments
}

// Encode joins the segments of tokens into a fingerprint string.
func (f *Fingerprints) Encode(tokens []Token) string {
	return strings.Join(f.Segments(tokens), "")
}
