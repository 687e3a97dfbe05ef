package semantics

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/realearn-people/benchmarking-aa-reasoning/core"
)

// Cache memoizes ground-truth extensions keyed by the canonical framework
// encoding. Base and transformed instances repeat across relations within a
// run, and enumeration is the expensive step.
type Cache struct {
	entries *lru.Cache[string, core.Claim]

	// OnLookup, when set, observes every lookup. Set it before first use.
	OnLookup func(hit bool)
}

// NewCache creates a ground-truth cache holding up to size frameworks.
func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[string, core.Claim](size)
	if err != nil {
		return nil, fmt.Errorf("create ground-truth cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// Extensions returns the ground truth for af, computing and caching it on the
// first request.
func (c *Cache) Extensions(af *core.AF) core.Claim {
	key := core.EncodeAF(af)
	claim, ok := c.entries.Get(key)
	if c.OnLookup != nil {
		c.OnLookup(ok)
	}
	if ok {
		return claim
	}
	claim = Extensions(af)
	c.entries.Add(key, claim)
	return claim
}

// Len returns the number of cached frameworks.
func (c *Cache) Len() int { return c.entries.Len() }
