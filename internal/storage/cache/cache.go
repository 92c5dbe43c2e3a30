package cache

import (
	"strings"
	"sync"
)

// TermIndex counts terms case-insensitively.
type TermIndex struct {
	mu    sync.Mutex
	terms map[string]int
}

func NewTermIndex() *TermIndex {
	return &TermIndex{
		terms: make(map[string]int),
	}
}

func key(term string) string {
	return strings.ToLower(term)
}

func (c *TermIndex) Add(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.terms[key(term)]++
}

func (c *TermIndex) Contains(term string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.terms[key(term)] > 0
}

// Reset drops the current contents and indexes terms instead.
func (c *TermIndex) Reset(terms []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.terms = make(map[string]int, len(terms))
	for _, t := range terms {
		c.terms[key(t)]++
	}
}

// Len returns the number of distinct terms.
func (c *TermIndex) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.terms)
}
