package tokenizer

import "strings"

// Segment splits text into tokens using rules in precedence order.
//
// The first rule's matches become tokens; the gaps between them are
// segmented again with the remaining rules, and their tokens are spliced in
// at the gap's position. Once no rules remain, gaps are split on whitespace
// and tagged Alien. Word matches containing an apostrophe are refined with
// SplitContraction against table.
//
// Recursion depth is bounded by len(rules).
func Segment(text string, rules []Rule, table *Contractions) []Token {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(rules) == 0 {
		return splitAlien(text)
	}

	rule, rest := rules[0], rules[1:]
	matches := rule.Pattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return Segment(text, rest, table)
	}

	tokens := make([]Token, 0, 2*len(matches)+1)
	prev := 0
	for _, m := range matches {
		// Empty matches consume nothing; the text around them stays in the gap.
		if m[0] == m[1] {
			continue
		}
		tokens = append(tokens, Segment(text[prev:m[0]], rest, table)...)
		tokens = appendMatch(tokens, text[m[0]:m[1]], rule.Category, table)
		prev = m[1]
	}
	tokens = append(tokens, Segment(text[prev:], rest, table)...)

	return tokens
}

func appendMatch(tokens []Token, value, category string, table *Contractions) []Token {
	if category == Word && hasApostrophe(value) {
		return append(tokens, SplitContraction(value, table)...)
	}
	return append(tokens, Token{Value: value, Tag: category})
}
