package tokenizer

import (
	"reflect"
	"regexp"
	"testing"
)

func TestSegment(t *testing.T) {
	digits := Rule{Pattern: regexp.MustCompile(`\d+`), Category: Number}
	letters := Rule{Pattern: regexp.MustCompile(`[a-z']+`), Category: Word}
	bang := Rule{Pattern: regexp.MustCompile(`!`), Category: Punctuation}

	tests := []struct {
		name  string
		text  string
		rules []Rule
		want  []Token
	}{
		{
			name:  "no rules",
			text:  "  a  b ",
			rules: nil,
			want:  toks("a", Alien, "b", Alien),
		},
		{
			name:  "blank",
			text:  " \t ",
			rules: []Rule{digits},
			want:  nil,
		},
		{
			name:  "gaps keep their position",
			text:  "ab12cd34!",
			rules: []Rule{digits, letters, bang},
			want:  toks("ab", Word, "12", Number, "cd", Word, "34", Number, "!", Punctuation),
		},
		{
			name:  "earlier rule wins",
			text:  "ab12",
			rules: []Rule{{Pattern: regexp.MustCompile(`[a-z0-9]+`), Category: "code"}, digits},
			want:  toks("ab12", "code"),
		},
		{
			name:  "unmatched leftovers are alien",
			text:  "12 ?? 34",
			rules: []Rule{digits},
			want:  toks("12", Number, "??", Alien, "34", Number),
		},
		{
			name:  "contractions only for words",
			text:  "can't 5",
			rules: []Rule{digits, letters},
			want:  toks("ca", Word, "n't", Word, "5", Number),
		},
		{
			name:  "apostrophes in other categories stay whole",
			text:  "can't",
			rules: []Rule{{Pattern: regexp.MustCompile(`[a-z']+`), Category: "slang"}},
			want:  toks("can't", "slang"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.text, tt.rules, DefaultContractions())
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSegment_EmptyMatches(t *testing.T) {
	rules := []Rule{
		{Pattern: regexp.MustCompile(`x*`), Category: "ex"},
		{Pattern: regexp.MustCompile(`[a-z]+`), Category: Word},
	}

	got := Segment("abxxcd", rules, nil)
	want := toks("ab", Word, "xx", "ex", "cd", Word)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment() = %v, want %v", got, want)
	}

	got = Segment("abc", rules, nil)
	want = toks("abc", Word)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment() = %v, want %v", got, want)
	}
}

func TestSegment_NilTable(t *testing.T) {
	rules := []Rule{{Pattern: regexp.MustCompile(`[a-z']+`), Category: Word}}

	got := Segment("can't dog's", rules, nil)
	want := toks("can't", Word, "dog", Word, "'s", Word)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment() = %v, want %v", got, want)
	}
}

// Every non-whitespace character of the input ends up in exactly one token.
func TestSegment_CoversInput(t *testing.T) {
	inputs := []string{
		"@superman: hit me up on my email r2d2@gmail.com; & we will plan party🎉 tom at 3pm:)",
		"I have$200.0 ₿2.0 is 1%; ₽100₹200₨300 >> $10000.00",
		"दिग्गज शायर मिर्ज़ा #Ghalib की पुण्यतिथि (27 December १७९७)",
		"Ω ≈ ç √ ∫ ˜ µ ≤ ≥",
	}

	for _, input := range inputs {
		var joined, stripped []rune
		for _, tok := range Segment(input, masterRules, DefaultContractions()) {
			for _, r := range tok.Value {
				if r != ' ' {
					joined = append(joined, r)
				}
			}
		}
		for _, r := range input {
			if r != ' ' {
				stripped = append(stripped, r)
			}
		}
		if string(joined) != string(stripped) {
			t.Errorf("tokens of %q rebuild %q", input, string(joined))
		}
	}
}
