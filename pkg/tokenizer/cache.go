package tokenizer

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the default number of sentences whose segmentation is
// memoized per tokenizer.
const DefaultCacheSize = 4096

// segmentCache memoizes sentence segmentations. A nil cache is disabled.
// Entries are only valid for the rule set they were computed with, so the
// owner purges the cache on every configuration change.
type segmentCache struct {
	lru *lru.Cache[string, []Token]
}

// newSegmentCache returns a cache holding up to size sentences, or nil when
// size is not positive.
func newSegmentCache(size int) *segmentCache {
	if size <= 0 {
		return nil
	}
	c, err := lru.New[string, []Token](size)
	if err != nil {
		return nil
	}
	return &segmentCache{lru: c}
}

// get returns a copy of the cached tokens for sentence.
func (c *segmentCache) get(sentence string) ([]Token, bool) {
	if c == nil {
		return nil, false
	}
	tokens, ok := c.lru.Get(sentence)
	if !ok {
		return nil, false
	}
	return cloneTokens(tokens), true
}

// add stores a private copy of tokens (evicts oldest if at capacity).
func (c *segmentCache) add(sentence string, tokens []Token) {
	if c == nil {
		return
	}
	c.lru.Add(sentence, cloneTokens(tokens))
}

func (c *segmentCache) purge() {
	if c != nil {
		c.lru.Purge()
	}
}

func (c *segmentCache) len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
