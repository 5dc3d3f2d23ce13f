package service

import (
	"sync"
	"time"

	"smarttradex/internal/domain"
)

// QuoteCache keeps the most recently fetched price series per symbol
// so chart requests don't hammer the upstream on every render. Entries
// expire after the TTL but are kept around so a failing refresh can
// fall back to stale data.
type QuoteCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	series   *domain.PriceSeries
	storedAt time.Time
}

// NewQuoteCache creates a new QuoteCache with the given entry TTL
func NewQuoteCache(ttl time.Duration) *QuoteCache {
	return &QuoteCache{
		ttl:     ttl,
		entries: make(map[string]*cacheEntry),
	}
}

// Get returns the cached series for symbol and whether it is still fresh
func (c *QuoteCache) Get(symbol string) (*domain.PriceSeries, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[symbol]
	if !ok {
		return nil, false
	}

	if time.Since(entry.storedAt) > c.ttl {
		return entry.series, false
	}

	return entry.series, true
}

// Set stores the series under its symbol
func (c *QuoteCache) Set(series *domain.PriceSeries) {
	if series == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[series.Symbol] = &cacheEntry{
		series:   series,
		storedAt: time.Now(),
	}
}

// Len returns the number of cached symbols
func (c *QuoteCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
