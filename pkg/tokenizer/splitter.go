package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// apostrophes that can mark a contraction or possessive.
const apostrophes = "'’"

// SplitFields splits text on runs of whitespace and drops empty pieces.
// Pieces are byte slices of text, so invalid UTF-8 comes through unchanged.
func SplitFields(text string) []string {
	var fields []string

	start := -1
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			if start >= 0 {
				fields = append(fields, text[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
		i += size
	}
	if start >= 0 {
		fields = append(fields, text[start:])
	}

	return fields
}

// splitAlien tags every whitespace-separated piece of text as alien.
func splitAlien(text string) []Token {
	fields := SplitFields(text)
	if len(fields) == 0 {
		return nil
	}
	tokens := make([]Token, len(fields))
	for i, f := range fields {
		tokens[i] = Token{Value: f, Tag: Alien}
	}
	return tokens
}

// hasApostrophe reports whether word may need contraction handling.
func hasApostrophe(word string) bool {
	return strings.ContainsAny(word, apostrophes)
}

// SplitContraction splits a word containing an apostrophe into 1-3 word
// tokens. Checks run in a fixed order: exact table lookup, singular
// possessive ('s), plural possessive (s'), then no split.
func SplitContraction(word string, table *Contractions) []Token {
	if table != nil {
		if pieces, ok := table.Lookup(word); ok {
			return pieces
		}
	}

	if stem, suffix, ok := singularPossessive(word); ok {
		return []Token{{Value: stem, Tag: Word}, {Value: suffix, Tag: Word}}
	}
	if stem, suffix, ok := pluralPossessive(word); ok {
		return []Token{{Value: stem, Tag: Word}, {Value: suffix, Tag: Word}}
	}

	return []Token{{Value: word, Tag: Word}}
}

// singularPossessive splits "dog's" into "dog" and "'s".
// The apostrophe must not be the first character.
func singularPossessive(word string) (stem, suffix string, ok bool) {
	for _, a := range apostrophes {
		for _, s := range []string{"s", "S"} {
			suffix = string(a) + s
			if strings.HasSuffix(word, suffix) && len(word) > len(suffix) {
				return word[:len(word)-len(suffix)], suffix, true
			}
		}
	}
	return "", "", false
}

// pluralPossessive splits "cats'" into "cats" and "'".
// At least one character must precede the final s.
func pluralPossessive(word string) (stem, suffix string, ok bool) {
	for _, a := range apostrophes {
		suffix = string(a)
		if !strings.HasSuffix(word, suffix) {
			continue
		}
		stem = word[:len(word)-len(suffix)]
		if len(stem) >= 2 && (strings.HasSuffix(stem, "s") || strings.HasSuffix(stem, "S")) {
			return stem, suffix, true
		}
	}
	return "", "", false
}
