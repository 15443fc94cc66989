package tokenizer

import "regexp"

// Rule tags every match of Pattern with Category.
type Rule struct {
	Pattern  *regexp.Regexp
	Category string
}

// Latin-1 letters: ASCII plus the Latin-1 Supplement block minus × and ÷.
const latin1Letters = `a-z\x{00C0}-\x{00D6}\x{00D8}-\x{00F6}\x{00F8}-\x{00FF}`

// Devanagari block without digits and Om (Om is a symbol).
const devanagariLetters = `\x{0900}-\x{094F}\x{0951}-\x{0963}\x{0970}-\x{097F}`

const devanagariDigits = `\x{0966}-\x{096F}`

//go:generate go run gen_emoji.go -data data/emoji-test.txt -out emoji_table.go

// emojiTail is what may follow an emoji code point inside one emoji:
// a presentation selector, a skin tone and a subdivision tag sequence.
const emojiTail = `[\x{FE0E}\x{FE0F}]?[\x{1F3FB}-\x{1F3FF}]?(?:[\x{E0020}-\x{E007E}]+\x{E007F})?`

// Patterns of the master rule set.
var (
	rxQuotedPhrase = regexp.MustCompile(`"[^"]*"`)
	rxURL          = regexp.MustCompile(`(?i)https?://[\da-z.\-]+\.[a-z.]{2,6}[/\w.\-?#=]*/?`)
	rxEmail        = regexp.MustCompile("(?i)[-!#$%&'*+/=?^\\w{|}~](?:\\.?[-!#$%&'*+/=?^\\w`{|}~])*" +
		`@[a-z0-9](?:-?\.?[a-z0-9])*(?:\.[a-z](?:-?[a-z0-9])*)+`)
	rxMention   = regexp.MustCompile(`@\w+`)
	rxHashtagL1 = regexp.MustCompile(`(?i)#[` + latin1Letters + `_][` + latin1Letters + `0-9_]*`)
	rxHashtagDV = regexp.MustCompile(`#[` + devanagariLetters + `_][` + devanagariLetters + devanagariDigits + `0-9_]*`)
	rxEmoji     = regexp.MustCompile(`[\x{1F1E6}-\x{1F1FF}]{2}|[#*0-9]\x{FE0F}?\x{20E3}|` +
		emojiClass + emojiTail + `(?:\x{200D}` + emojiClass + emojiTail + `)*`)
	rxEmoticon  = regexp.MustCompile(`(?i):-?[dps*/\[\]{}()]|;-?[/()d]|<3`)
	rxTime      = regexp.MustCompile(`(?i)(?:\d|[01]\d|2[0-3]):?(?:[0-5][0-9])?[\s\p{Zs}]?(?:[ap]\.?m\.?|hours|hrs)`)
	rxOrdinalL1 = regexp.MustCompile(`1\dth|[04-9]th|1st|2nd|3rd|[02-9]1st|[02-9]2nd|[02-9]3rd|` +
		`[02-9][04-9]th|\d+\d[04-9]th|\d+\d1st|\d+\d2nd|\d+\d3rd`)
	// Numbers may contain . , - / so dates, IPs, fractions and part codes stay whole.
	rxNumberL1 = regexp.MustCompile(`\d+/\d+|\d(?:[.,\-/]?\d)*(?:\.\d+)?`)
	rxNumberDV = regexp.MustCompile(`[` + devanagariDigits + `]+/[` + devanagariDigits + `]+|` +
		`[` + devanagariDigits + `](?:[.,\-/]?[` + devanagariDigits + `])*(?:\.[` + devanagariDigits + `]+)?`)
	rxCurrency    = regexp.MustCompile(`[₿₽₹₨$£¥€₩]`)
	rxWordL1      = regexp.MustCompile(`(?i)[` + latin1Letters + `][` + latin1Letters + `']*`)
	rxWordDV      = regexp.MustCompile(`[` + devanagariLetters + `]+`)
	rxPunctuation = regexp.MustCompile("[’'‘“”\"\\[\\](){}…,.!;?\\-:\\x{0964}\\x{0965}`]")
	rxSymbol      = regexp.MustCompile(`[\x{0950}~@#%^+=*|/<>&]`)
)

// masterRules is the default precedence order; earlier rules win.
// It is never mutated.
var masterRules = []Rule{
	{rxQuotedPhrase, QuotedPhrase},
	{rxURL, URL},
	{rxEmail, Email},
	{rxMention, Mention},
	{rxHashtagL1, Hashtag},
	{rxHashtagDV, Hashtag},
	{rxEmoji, Emoji},
	{rxEmoticon, Emoticon},
	{rxTime, Time},
	{rxOrdinalL1, Ordinal},
	{rxNumberL1, Number},
	{rxNumberDV, Number},
	{rxCurrency, Currency},
	{rxWordL1, Word},
	{rxWordDV, Word},
	{rxPunctuation, Punctuation},
	{rxSymbol, Symbol},
}

// MasterRules returns a copy of the default rule set.
func MasterRules() []Rule {
	rules := make([]Rule, len(masterRules))
	copy(rules, masterRules)
	return rules
}

// Categories returns the distinct built-in categories in precedence order.
func Categories() []string {
	return distinctCategories(masterRules)
}

func distinctCategories(rules []Rule) []string {
	seen := make(map[string]struct{}, len(rules))
	var cats []string
	for _, r := range rules {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		cats = append(cats, r.Category)
	}
	return cats
}
