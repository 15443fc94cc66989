package tokenizer

import (
	"bytes"
	"sort"
	"strings"
	"sync"

	"github.com/blevesearch/vellum"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// contractionForms lists lowercase contractions as head + tail pieces.
// Every form is expanded into lower, Title and UPPER case variants.
var contractionForms = []struct {
	heads []string
	tails [][]string
}{
	// Verbs + n't.
	{
		heads: []string{
			"ca", "could", "do", "does", "did", "had", "may", "might", "must", "need",
			"ought", "sha", "should", "wo", "would", "ai", "are", "is", "was", "were",
			"have", "has", "dare",
		},
		tails: [][]string{{"n't"}},
	},
	{
		heads: []string{"should", "could", "would"},
		tails: [][]string{{"n't", "'ve"}, {"'ve"}},
	},
	// Pronouns.
	{
		heads: []string{"i"},
		tails: [][]string{{"'m"}, {"'ve"}, {"'d"}, {"'ll"}, {"'ll", "'ve"}, {"'d", "'ve"}},
	},
	{
		heads: []string{"you", "they"},
		tails: [][]string{{"'ve"}, {"'d"}, {"'ll"}, {"'ll", "'ve"}, {"'d", "'ve"}},
	},
	{
		heads: []string{"they", "we"},
		tails: [][]string{{"'re"}},
	},
	{
		heads: []string{"we"},
		tails: [][]string{{"'ve"}, {"'d"}, {"'ll"}},
	},
	{
		heads: []string{"she", "he", "it"},
		tails: [][]string{{"'d"}, {"'ll"}, {"'s"}, {"'ll", "'ve"}, {"'d", "'ve"}},
	},
	// Wh-words, there and that.
	{
		heads: []string{"what", "who", "when", "where", "why", "how", "there", "that"},
		tails: [][]string{{"'ve"}, {"'d"}, {"'ll"}, {"'re"}},
	},
	{
		heads: []string{"there"},
		tails: [][]string{{"'d", "'ve"}},
	},
	{
		heads: []string{"let"},
		tails: [][]string{{"'s"}},
	},
}

// builtinContractions expands contractionForms into the literal lookup table.
func builtinContractions() map[string][]Token {
	title := cases.Title(language.English)
	upper := cases.Upper(language.English)

	table := make(map[string][]Token, 512)
	add := func(parts []string) {
		entry := make([]Token, len(parts))
		for i, p := range parts {
			entry[i] = Token{Value: p, Tag: Word}
		}
		table[strings.Join(parts, "")] = entry
	}

	for _, form := range contractionForms {
		for _, head := range form.heads {
			for _, tail := range form.tails {
				parts := append([]string{head}, tail...)
				add(parts)

				titled := append([]string{title.String(head)}, tail...)
				add(titled)

				shouted := make([]string, len(parts))
				for i, p := range parts {
					shouted[i] = upper.String(p)
				}
				add(shouted)
			}
		}
	}
	return table
}

// Contractions is an immutable, exact-match lookup from a contracted word to
// its 2 or 3 word pieces. Lookups are case-sensitive. The keys live in an FST
// whose values index into the expansion table.
//
// A Contractions value is safe for concurrent use.
type Contractions struct {
	fst     *vellum.FST
	entries [][]Token
}

var (
	defaultContractionsOnce sync.Once
	defaultContractions     *Contractions
)

// DefaultContractions returns the shared built-in English contraction table.
func DefaultContractions() *Contractions {
	defaultContractionsOnce.Do(func() {
		c, err := NewContractions(builtinContractions())
		if err != nil {
			panic("tokenizer: invalid built-in contractions: " + err.Error())
		}
		defaultContractions = c
	})
	return defaultContractions
}

// NewContractions builds a lookup from table. Every entry must have 2 or 3
// pieces whose concatenation is exactly the key.
func NewContractions(table map[string][]Token) (*Contractions, error) {
	keys := make([]string, 0, len(table))
	for key, pieces := range table {
		if len(pieces) < 2 || len(pieces) > 3 {
			return nil, errors.Errorf("contraction %q has %d pieces, want 2 or 3", key, len(pieces))
		}
		var joined strings.Builder
		for _, p := range pieces {
			joined.WriteString(p.Value)
		}
		if joined.String() != key {
			return nil, errors.Errorf("contraction %q does not rebuild from its pieces (%q)", key, joined.String())
		}
		keys = append(keys, key)
	}
	// vellum requires lexicographic insertion order.
	sort.Strings(keys)

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating contraction FST builder")
	}

	entries := make([][]Token, 0, len(keys))
	for i, key := range keys {
		if err := builder.Insert([]byte(key), uint64(i)); err != nil {
			builder.Close()
			return nil, errors.Wrapf(err, "inserting contraction %q", key)
		}
		entries = append(entries, cloneTokens(table[key]))
	}
	if err := builder.Close(); err != nil {
		return nil, errors.Wrap(err, "finishing contraction FST")
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "loading contraction FST")
	}

	return &Contractions{fst: fst, entries: entries}, nil
}

// Lookup returns a fresh copy of the pieces for word.
func (c *Contractions) Lookup(word string) ([]Token, bool) {
	idx, exists, err := c.fst.Get([]byte(word))
	if err != nil || !exists || idx >= uint64(len(c.entries)) {
		return nil, false
	}
	return cloneTokens(c.entries[idx]), true
}

// Contains reports whether word is a known contraction.
func (c *Contractions) Contains(word string) bool {
	_, exists, err := c.fst.Get([]byte(word))
	return err == nil && exists
}

// Len returns the number of contractions in the table.
func (c *Contractions) Len() int {
	return len(c.entries)
}

// Keys returns every contraction in byte order.
func (c *Contractions) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	itr, err := c.fst.Iterator(nil, nil)
	for err == nil {
		key, _ := itr.Current()
		keys = append(keys, string(key))
		err = itr.Next()
	}
	return keys
}
