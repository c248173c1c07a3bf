package access

import (
	"github.com/hupe1980/statvec/vector"
)

// DefaultCacheSize is the default number of specialized strategies a Cache holds.
const DefaultCacheSize = 4

// Stats counts cache outcomes.
type Stats struct {
	Hits            uint64
	Specializations uint64
	Generic         uint64
}

// Cache selects strategies for one call site. It installs the specialized
// strategy of each new (representation, kind) pair until it holds bound
// entries, and uses Generic afterwards and for unknown representations.
// A Cache belongs to one evaluation and is not safe for concurrent use.
type Cache struct {
	bound   int
	mode    Mode
	entries []Strategy
	stats   Stats
}

// NewCache returns a cache holding at most bound specialized strategies
// (DefaultCacheSize if bound <= 0). The mode is read from STATVEC_ACCESS.
func NewCache(bound int) *Cache {
	return NewCacheWithMode(bound, ModeFromEnv())
}

// NewCacheWithMode is NewCache with an explicit mode.
func NewCacheWithMode(bound int, mode Mode) *Cache {
	if bound <= 0 {
		bound = DefaultCacheSize
	}
	return &Cache{
		bound:   bound,
		mode:    mode,
		entries: make([]Strategy, 0, bound),
	}
}

// Lookup returns the strategy to use for v.
func (c *Cache) Lookup(v vector.Vector) Strategy {
	if c.mode == ModeGeneric {
		c.stats.Generic++
		return Generic
	}
	for _, s := range c.entries {
		if s.Supports(v) {
			c.stats.Hits++
			return s
		}
	}
	s, ok := Specialize(KeyOf(v))
	if !ok || !s.Supports(v) || len(c.entries) >= c.bound {
		c.stats.Generic++
		return Generic
	}
	c.entries = append(c.entries, s)
	c.stats.Specializations++
	return s
}

// Open opens v for reading through the strategy chosen by Lookup.
func (c *Cache) Open(v vector.Vector) (Access, error) {
	return c.Lookup(v).Open(v)
}

// OpenWrite opens v for writing through the strategy chosen by Lookup.
func (c *Cache) OpenWrite(v vector.Writable) (Access, error) {
	return c.Lookup(v).OpenWrite(v)
}

// Mode returns the cache mode.
func (c *Cache) Mode() Mode { return c.mode }

// Len returns the number of installed specialized strategies.
func (c *Cache) Len() int { return len(c.entries) }

// Bound returns the maximum number of specialized strategies.
func (c *Cache) Bound() int { return c.bound }

// Stats returns the outcome counters.
func (c *Cache) Stats() Stats { return c.stats }

// Reset drops installed strategies and counters.
func (c *Cache) Reset() {
	c.entries = c.entries[:0]
	c.stats = Stats{}
}
