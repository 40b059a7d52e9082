package reconcile

import (
	"context"
	"slices"
	"sync"
	"time"

	"gear-auditor/core/files"

	"golang.org/x/sync/singleflight"
)

// SourceSpec names the three files one audit reads.
type SourceSpec struct {
	CatalogPath   string
	InventoryPath string
	GearsetPath   string
}

// CacheKey returns a unique key for caching based on spec parameters.
func (s SourceSpec) CacheKey() string {
	return s.CatalogPath + "|" + s.InventoryPath + "|" + s.GearsetPath
}

// Paths returns the file paths in a fixed order.
func (s SourceSpec) Paths() []string {
	return []string{s.CatalogPath, s.InventoryPath, s.GearsetPath}
}

// LoadFunc parses the files named by a spec.
type LoadFunc func(ctx context.Context, spec SourceSpec) (*Sources, error)

type cacheEntry struct {
	sources      *Sources
	fingerprints []files.Fingerprint
	built        time.Time
}

// SourceCache keeps parsed sources between audits. An entry is reused while
// it is younger than the TTL and none of its files changed size or mtime.
// A zero TTL disables caching.
type SourceCache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	sf      singleflight.Group
}

// NewSourceCache creates a cache with the given TTL.
func NewSourceCache(ttl time.Duration) *SourceCache {
	return &SourceCache{
		ttl:     ttl,
		entries: make(map[string]*cacheEntry),
	}
}

// Get returns cached sources for spec or loads them.
// Concurrent misses for the same spec share a single load.
func (c *SourceCache) Get(ctx context.Context, spec SourceSpec, load LoadFunc) (*Sources, error) {
	if c.ttl == 0 {
		return load(ctx, spec)
	}

	key := spec.CacheKey()

	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if exists && c.fresh(entry, spec) {
		return entry.sources, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		c.mu.RLock()
		entry, exists := c.entries[key]
		c.mu.RUnlock()
		if exists && c.fresh(entry, spec) {
			return entry.sources, nil
		}

		// Fingerprint before loading so a write during the load forces a reload next time.
		prints, err := fingerprint(spec)
		if err != nil {
			return nil, err
		}

		sources, err := load(ctx, spec)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = &cacheEntry{sources: sources, fingerprints: prints, built: time.Now()}
		c.mu.Unlock()

		return sources, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Sources), nil
}

// Invalidate drops the cached sources for spec.
func (c *SourceCache) Invalidate(spec SourceSpec) {
	c.mu.Lock()
	delete(c.entries, spec.CacheKey())
	c.mu.Unlock()
}

func (c *SourceCache) fresh(entry *cacheEntry, spec SourceSpec) bool {
	if time.Since(entry.built) > c.ttl {
		return false
	}
	prints, err := fingerprint(spec)
	if err != nil {
		return false
	}
	return slices.Equal(prints, entry.fingerprints)
}

func fingerprint(spec SourceSpec) ([]files.Fingerprint, error) {
	paths := spec.Paths()
	prints := make([]files.Fingerprint, 0, len(paths))
	for _, p := range paths {
		fp, err := files.Stat(p)
		if err != nil {
			return nil, err
		}
		prints = append(prints, fp)
	}
	return prints, nil
}
