package cache

import (
	"context"
	"sync"
	"time"

	"fraudguard/internal/models"
)

// MemoryCache is an in-process ResultCache used when no Redis address is
// configured, and in tests. Expired entries are dropped lazily on read.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	result    models.AnalysisResult
	expiresAt time.Time
}

// NewMemoryCache builds an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

// GetResult implements ResultCache.
func (c *MemoryCache) GetResult(_ context.Context, transactionID string) (*models.AnalysisResult, error) {
	c.mu.RLock()
	entry, ok := c.entries[resultKey(transactionID)]
	c.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, resultKey(transactionID))
		c.mu.Unlock()
		return nil, nil
	}
	result := entry.result
	return &result, nil
}

// SetResult implements ResultCache.
func (c *MemoryCache) SetResult(_ context.Context, transactionID string, result *models.AnalysisResult, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[resultKey(transactionID)] = memoryEntry{
		result:    *result,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}
