// Package cache is the query cache sitting between page handlers and the API.
// Entries are keyed by resource name, caller scope and filter parameters, and a
// mutation on a resource drops every entry of that resource.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"
)

const sweepThreshold = 1024

type entry struct {
	resource string
	value    any
	expires  time.Time
}

// Cache is safe for concurrent use.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]entry
	gens    map[string]uint64

	group singleflight.Group

	lookups *prometheus.CounterVec
}

// New creates a cache whose entries live for ttl. A non-positive ttl disables
// storage; concurrent identical loads are still collapsed into one.
// reg may be nil to skip metrics registration.
func New(ttl time.Duration, reg prometheus.Registerer) (*Cache, error) {
	c := &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
		gens:    make(map[string]uint64),
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "karirkit_query_cache_lookups_total",
				Help: "Query cache lookups by resource and result (hit or miss).",
			},
			[]string{"resource", "result"},
		),
	}
	if reg != nil {
		if err := reg.Register(c.lookups); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Scope fingerprints a bearer token so that cached lists of one user are never
// served to another. Anonymous callers share the "anon" scope.
func Scope(token string) string {
	if token == "" {
		return "anon"
	}
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}

// Key builds a cache key. url.Values.Encode sorts by key, so equal filter sets
// produce equal keys regardless of insertion order.
func Key(resource, scope string, params url.Values) string {
	return resource + "|" + scope + "|" + params.Encode()
}

// Fetch returns the cached value for key or calls load once for all concurrent
// callers asking for the same key.
func (c *Cache) Fetch(ctx context.Context, resource, key string, load func(context.Context) (any, error)) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		if c.now().Before(e.expires) {
			c.mu.Unlock()
			c.lookups.WithLabelValues(resource, "hit").Inc()
			return e.value, nil
		}
		delete(c.entries, key)
	}
	gen := c.gens[resource]
	c.mu.Unlock()
	c.lookups.WithLabelValues(resource, "miss").Inc()

	// Loads started before an invalidation must not be joined by later callers.
	flightKey := key + "#" + strconv.FormatUint(gen, 10)
	v, err, _ := c.group.Do(flightKey, func() (any, error) {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.store(resource, key, gen, v)
		return v, nil
	})
	return v, err
}

func (c *Cache) store(resource, key string, gen uint64, v any) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[resource] != gen {
		return
	}
	if len(c.entries) >= sweepThreshold {
		c.sweepLocked()
	}
	c.entries[key] = entry{resource: resource, value: v, expires: c.now().Add(c.ttl)}
}

// Invalidate drops every entry of resource and returns how many were removed.
func (c *Cache) Invalidate(resource string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[resource]++
	n := 0
	for k, e := range c.entries {
		if e.resource == resource {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) sweepLocked() {
	now := c.now()
	for k, e := range c.entries {
		if !now.Before(e.expires) {
			delete(c.entries, k)
		}
	}
}

// Get is the typed form of Fetch.
func Get[T any](ctx context.Context, c *Cache, resource, key string, load func(context.Context) (T, error)) (T, error) {
	v, err := c.Fetch(ctx, resource, key, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
