// Package cache provides caching utilities shared by the CLI and MCP server.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/itchyny/gojq"
)

// ProgramCache keeps compiled jq programs keyed by their source expression,
// so repeated queries from an MCP client skip parsing and compilation.
type ProgramCache struct {
	cache *lru.Cache[string, *gojq.Code]
}

// NewProgramCache creates a new LRU cache with the specified maximum number of items.
func NewProgramCache(maxItems int) (*ProgramCache, error) {
	c, err := lru.New[string, *gojq.Code](maxItems)
	if err != nil {
		return nil, err
	}
	return &ProgramCache{cache: c}, nil
}

// Get returns the compiled program for expr, if cached.
func (c *ProgramCache) Get(expr string) (*gojq.Code, bool) {
	return c.cache.Get(expr)
}

// Put adds or replaces a compiled program.
func (c *ProgramCache) Put(expr string, code *gojq.Code) {
	c.cache.Add(expr, code)
}

// Len returns the current number of items in the cache.
func (c *ProgramCache) Len() int {
	return c.cache.Len()
}
