package tokenizer

import (
	"reflect"
	"testing"
)

func TestSplitFields(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"hello world", []string{"hello", "world"}},
		{"  padded\t\tand\nspaced  ", []string{"padded", "and", "spaced"}},
		{"party🎉 tom", []string{"party🎉", "tom"}},
		{"no-break\u00a0space", []string{"no-break", "space"}},
		{"", nil},
		{"   ", nil},
		{"\xff a", []string{"\xff", "a"}},
		{"ab \xfe\xff cd", []string{"ab", "\xfe\xff", "cd"}},
	}

	for _, tt := range tests {
		result := SplitFields(tt.input)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("SplitFields(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestSplitContraction(t *testing.T) {
	table := DefaultContractions()

	tests := []struct {
		input    string
		expected []string
	}{
		// Table lookups.
		{"can't", []string{"ca", "n't"}},
		{"won't", []string{"wo", "n't"}},
		{"Shouldn't've", []string{"Should", "n't", "'ve"}},
		{"I'M", []string{"I", "'M"}},
		{"let's", []string{"let", "'s"}},
		{"it's", []string{"it", "'s"}},
		// Singular possessive.
		{"dog's", []string{"dog", "'s"}},
		{"DOG'S", []string{"DOG", "'S"}},
		{"it’s", []string{"it", "’s"}},
		{"résumé's", []string{"résumé", "'s"}},
		// Plural possessive.
		{"cats'", []string{"cats", "'"}},
		{"James’", []string{"James", "’"}},
		// No split.
		{"O'Hara", []string{"O'Hara"}},
		{"'s", []string{"'s"}},
		{"s'", []string{"s'"}},
		{"rock'n'roll", []string{"rock'n'roll"}},
		{"cat'", []string{"cat'"}},
	}

	for _, tt := range tests {
		result := SplitContraction(tt.input, table)
		if len(result) != len(tt.expected) {
			t.Errorf("SplitContraction(%q) = %v, want %q", tt.input, result, tt.expected)
			continue
		}
		for i, tok := range result {
			if tok.Value != tt.expected[i] || tok.Tag != Word {
				t.Errorf("SplitContraction(%q)[%d] = %v, want word(%q)", tt.input, i, tok, tt.expected[i])
			}
		}
	}
}

func TestSplitContraction_NilTable(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"can't", []string{"can't"}},
		{"dog's", []string{"dog", "'s"}},
		{"cats'", []string{"cats", "'"}},
	}

	for _, tt := range tests {
		result := SplitContraction(tt.input, nil)
		var values []string
		for _, tok := range result {
			values = append(values, tok.Value)
		}
		if !reflect.DeepEqual(values, tt.expected) {
			t.Errorf("SplitContraction(%q, nil) = %q, want %q", tt.input, values, tt.expected)
		}
	}
}

func TestSplitContraction_PiecesRebuildWord(t *testing.T) {
	table := DefaultContractions()
	words := []string{"can't", "Wouldn't've", "THEY'LL'VE", "dog's", "cats'", "O'Hara", "there'd've"}

	for _, word := range words {
		var joined string
		for _, tok := range SplitContraction(word, table) {
			joined += tok.Value
		}
		if joined != word {
			t.Errorf("pieces of %q join to %q", word, joined)
		}
	}
}
