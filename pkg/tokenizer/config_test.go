package tokenizer

import (
	"reflect"
	"testing"
)

func TestSelection_Enabled(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		value    any
		expected bool
	}{
		{nil, true},
		{true, true},
		{false, false},
		{&yes, true},
		{&no, false},
		{"true", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"1", true},
		{"no", false},
		{" Off ", false},
		{"yes", true},
		{"on", true},
		{"maybe", true},
		{"", false},
		{0, false},
		{1, true},
		{int64(0), false},
		{uint8(3), true},
		{0.0, false},
		{float32(0.5), true},
		{[]string{}, true},
	}

	for _, tt := range tests {
		s := Selection{Word: tt.value}
		if got := s.Enabled(Word); got != tt.expected {
			t.Errorf("Enabled with %#v = %v, want %v", tt.value, got, tt.expected)
		}
	}

	if !(Selection{Word: false}).Enabled(Number) {
		t.Error("absent category should be enabled")
	}
}

func TestDefineConfig(t *testing.T) {
	tests := []struct {
		name      string
		selection Selection
		expected  int
	}{
		{"default", DefaultSelection(), 13},
		{"everything", Selection{Word: true}, 14},
		{"hashtag off", Selection{Hashtag: false}, 13},
		{"empty", Selection{}, 0},
		{"nil", nil, 0},
		{"strings", Selection{Word: "no", Number: "off", Emoji: "yes"}, 12},
		{"unknown category", Selection{"fish": false}, 14},
	}

	for _, tt := range tests {
		tok := NewTokenizer()
		if got := tok.DefineConfig(tt.selection); got != tt.expected {
			t.Errorf("%s: DefineConfig() = %d, want %d", tt.name, got, tt.expected)
		}
		if got := len(tok.ActiveCategories()); got != tt.expected {
			t.Errorf("%s: len(ActiveCategories()) = %d, want %d", tt.name, got, tt.expected)
		}
	}
}

func TestDefineConfig_KeepsMasterOrder(t *testing.T) {
	tok := NewTokenizer()
	tok.DefineConfig(Selection{Email: false, Symbol: false})

	var want []string
	for _, cat := range Categories() {
		if cat != Email && cat != Symbol {
			want = append(want, cat)
		}
	}
	if got := tok.ActiveCategories(); !reflect.DeepEqual(got, want) {
		t.Errorf("ActiveCategories() = %v, want %v", got, want)
	}
}

func TestDefineConfig_DoesNotTouchMasterRules(t *testing.T) {
	tok := NewTokenizer()
	tok.DefineConfig(Selection{Word: false})
	if err := tok.AddTag("x", "x"); err != nil {
		t.Fatalf("AddTag() error = %v", err)
	}

	if n := len(MasterRules()); n != 17 {
		t.Errorf("len(MasterRules()) = %d, want 17", n)
	}
	if n := len(Categories()); n != 14 {
		t.Errorf("len(Categories()) = %d, want 14", n)
	}

	other := NewTokenizer()
	if got := other.Tokenize("hello"); len(got) != 1 || got[0].Tag != Word {
		t.Errorf("fresh tokenizer affected by another instance: %v", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.CacheSize != DefaultCacheSize {
		t.Errorf("CacheSize = %d, want %d", cfg.CacheSize, DefaultCacheSize)
	}
	if cfg.Normalizer != nil {
		t.Error("default config should not normalize")
	}
	if cfg.Selection.Enabled(QuotedPhrase) {
		t.Error("quoted_phrase should be off by default")
	}
	if !cfg.Selection.Enabled(Word) {
		t.Error("word should be on by default")
	}
}
