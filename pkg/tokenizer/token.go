package tokenizer

import "fmt"

// Built-in token tags.
const (
	Word         = "word"
	Number       = "number"
	Ordinal      = "ordinal"
	URL          = "url"
	Email        = "email"
	Mention      = "mention"
	Hashtag      = "hashtag"
	Emoji        = "emoji"
	Emoticon     = "emoticon"
	Time         = "time"
	Currency     = "currency"
	QuotedPhrase = "quoted_phrase"
	Punctuation  = "punctuation"
	Symbol       = "symbol"

	// Alien tags whatever is left once no active rule matched.
	Alien = "alien"
)

// Token is one classified unit of the input sentence.
type Token struct {
	Value string `json:"value"`
	Tag   string `json:"tag"`
}

// String returns a debug representation, e.g. word("hello").
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Tag, t.Value)
}

func cloneTokens(tokens []Token) []Token {
	if tokens == nil {
		return nil
	}
	out := make([]Token, len(tokens))
	copy(out, tokens)
	return out
}
