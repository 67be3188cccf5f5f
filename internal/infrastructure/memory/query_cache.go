package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/neocommerce-api/internal/application/ports"
)

var _ ports.QueryCache = (*QueryCache)(nil)

// DefaultMaxEntries tope de vistas memoizadas.
const DefaultMaxEntries = 10000

type cacheEntry struct {
	ids      []string
	storedAt time.Time
}

// QueryCache caché en proceso de vistas filtradas con TTL y tope de entradas.
//
// Set purga las entradas expiradas como mucho una vez por TTL y, si el mapa llega
// a maxEntries, descarta las más antiguas.
type QueryCache struct {
	mu         sync.RWMutex
	ttl        time.Duration
	maxEntries int
	lastSweep  time.Time
	entries    map[string]cacheEntry
	now        func() time.Time
}

// NewQueryCache construye la caché. ttl <= 0 significa sin expiración.
func NewQueryCache(ttl time.Duration) *QueryCache {
	return &QueryCache{
		ttl:        ttl,
		maxEntries: DefaultMaxEntries,
		entries:    make(map[string]cacheEntry),
		now:        time.Now,
	}
}

// Get devuelve los IDs memoizados si la entrada existe y no ha expirado.
func (c *QueryCache) Get(_ context.Context, key string) ([]string, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if c.expired(e, c.now()) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}
	out := make([]string, len(e.ids))
	copy(out, e.ids)
	return out, true, nil
}

// Set guarda una copia de los IDs.
func (c *QueryCache) Set(_ context.Context, key string, ids []string) error {
	cp := make([]string, len(ids))
	copy(cp, ids)

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.ttl > 0 && now.Sub(c.lastSweep) >= c.ttl {
		c.purgeExpired(now)
		c.lastSweep = now
	}
	if _, exists := c.entries[key]; !exists {
		if c.maxEntries > 0 {
			for len(c.entries) >= c.maxEntries {
				c.evictOldest()
			}
		}
	}
	c.entries[key] = cacheEntry{ids: cp, storedAt: now}
	return nil
}

// Len número de entradas (incluidas las expiradas aún no purgadas).
func (c *QueryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *QueryCache) expired(e cacheEntry, now time.Time) bool {
	return c.ttl > 0 && now.Sub(e.storedAt) >= c.ttl
}

// purgeExpired requiere c.mu tomado en escritura.
func (c *QueryCache) purgeExpired(now time.Time) {
	for k, e := range c.entries {
		if c.expired(e, now) {
			delete(c.entries, k)
		}
	}
}

// evictOldest requiere c.mu tomado en escritura.
func (c *QueryCache) evictOldest() {
	var (
		oldestKey string
		oldestAt  time.Time
		found     bool
	)
	for k, e := range c.entries {
		if !found || e.storedAt.Before(oldestAt) {
			oldestKey, oldestAt, found = k, e.storedAt, true
		}
	}
	if found {
		delete(c.entries, oldestKey)
	}
}
