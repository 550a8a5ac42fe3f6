package session

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
)

// sweepThreshold is the map size above which Set drops expired entries.
const sweepThreshold = 1024

type memoryEntry struct {
	profile   domain.Profile
	expiresAt time.Time
}

// MemoryCache is a process-local Cache for development and tests. It is not
// shared between replicas.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	prefix  string
	now     func() time.Time
}

// NewMemoryCache returns an empty cache. A nil now uses time.Now.
func NewMemoryCache(prefix string, now func() time.Time) *MemoryCache {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if now == nil {
		now = time.Now
	}
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		prefix:  prefix,
		now:     now,
	}
}

func (c *MemoryCache) Get(_ context.Context, token domain.UserToken) (domain.Profile, bool, error) {
	key := Key(c.prefix, token)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.Profile{}, false, nil
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return domain.Profile{}, false, nil
	}
	return cloneProfile(e.profile), true, nil
}

func (c *MemoryCache) Set(_ context.Context, token domain.UserToken, profile domain.Profile, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("%w: session ttl must be positive, got %s", domain.ErrInvalidInput, ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if len(c.entries) >= sweepThreshold {
		for k, e := range c.entries {
			if !now.Before(e.expiresAt) {
				delete(c.entries, k)
			}
		}
	}

	c.entries[Key(c.prefix, token)] = memoryEntry{
		profile:   cloneProfile(profile),
		expiresAt: now.Add(ttl),
	}
	return nil
}

func (c *MemoryCache) Ping(context.Context) error { return nil }

// Len reports the number of stored entries, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cloneProfile copies the attribute map so callers can't mutate cached state.
func cloneProfile(p domain.Profile) domain.Profile {
	p.Attributes = maps.Clone(p.Attributes)
	return p
}
