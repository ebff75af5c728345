package keywords

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cloudnationhq/cpu-keywords-mcp/internal/util"
)

const defaultCacheSize = 512

// Cache memoizes expansions by normalized CPU name
type Cache struct {
	gen   *Generator
	cache *lru.Cache[string, Expansion]
}

// NewCache wraps gen with an LRU cache holding up to size expansions.
// A size of zero or less uses the default.
func NewCache(gen *Generator, size int) (*Cache, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	c, err := lru.New[string, Expansion](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create keyword cache: %w", err)
	}
	return &Cache{gen: gen, cache: c}, nil
}

// Expand returns the cached expansion for name, computing it on a miss.
// Callers get their own copy of the keyword slice.
func (c *Cache) Expand(name string) Expansion {
	key := util.NormalizeName(name)
	exp, ok := c.cache.Get(key)
	if !ok {
		exp = c.gen.Expand(key)
		c.cache.Add(key, exp)
	}
	exp.Keywords = slices.Clone(exp.Keywords)
	return exp
}

// Generate returns the keywords for name
func (c *Cache) Generate(name string) []string {
	return c.Expand(name).Keywords
}

// Len returns the number of cached expansions
func (c *Cache) Len() int {
	return c.cache.Len()
}
