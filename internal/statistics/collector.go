package statistics

import (
	"cmp"
	"slices"
	"sync"
)

const (
	// DefaultTopN is how many rows each ranking keeps in a snapshot.
	DefaultTopN = 10
	// DefaultMaxTracked bounds the distinct keys tracked per ranking.
	DefaultMaxTracked = 10_000
)

// Collector accumulates proxy activity.
// All methods are safe for concurrent use.
type Collector struct {
	topN       int
	maxTracked int

	mu                sync.Mutex
	proxiedRequests   uint64
	blockedRequests   uint64
	modifiedResponses uint64
	blockedPaths      map[string]uint64
	clients           map[string]uint64
}

// CollectorOption configures a Collector.
type CollectorOption func(*Collector)

// WithTopN sets the number of ranking rows returned by Snapshot.
func WithTopN(n int) CollectorOption {
	return func(c *Collector) {
		if n > 0 {
			c.topN = n
		}
	}
}

// WithMaxTracked caps the distinct paths and clients kept in memory.
// Once a ranking is full, new keys are ignored; known keys keep counting.
func WithMaxTracked(n int) CollectorOption {
	return func(c *Collector) {
		if n > 0 {
			c.maxTracked = n
		}
	}
}

// NewCollector creates an empty statistics collector.
func NewCollector(opts ...CollectorOption) *Collector {
	c := &Collector{
		topN:         DefaultTopN,
		maxTracked:   DefaultMaxTracked,
		blockedPaths: make(map[string]uint64),
		clients:      make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RecordProxied records a request that went through the proxy.
func (c *Collector) RecordProxied() {
	c.mu.Lock()
	c.proxiedRequests++
	c.mu.Unlock()
}

// RecordBlocked records a blocked request for path issued by client.
// Empty path or client values are counted but not ranked.
func (c *Collector) RecordBlocked(path, client string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.blockedRequests++
	c.bump(c.blockedPaths, path)
	c.bump(c.clients, client)
}

// RecordModified records a response rewritten by the proxy.
func (c *Collector) RecordModified() {
	c.mu.Lock()
	c.modifiedResponses++
	c.mu.Unlock()
}

func (c *Collector) bump(m map[string]uint64, key string) {
	if key == "" {
		return
	}
	if _, ok := m[key]; !ok && len(m) >= c.maxTracked {
		return
	}
	m[key]++
}

// Snapshot returns the current statistics.
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	proxied := c.proxiedRequests
	blocked := c.blockedRequests
	modified := c.modifiedResponses

	return Snapshot{
		ProxiedRequests:   &proxied,
		BlockedRequests:   &blocked,
		ModifiedResponses: &modified,
		TopBlockedPaths:   rank(c.blockedPaths, c.topN),
		TopClients:        rank(c.clients, c.topN),
	}
}

// rank orders m by descending count, then key, and keeps the first n rows.
func rank(m map[string]uint64, n int) Ranking {
	var out Ranking
	for k, v := range m {
		out = append(out, Entry{Key: k, Count: v})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
