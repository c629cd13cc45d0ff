package metrics

import (
	"fmt"
	"sync"
)

// Collector counts AI usage at call boundaries. It is injected into each
// service instead of living in package-level state so tests can assert on
// what was recorded.
type Collector interface {
	RecordRequest(model, status string)
	RecordTokens(model, tokenType string, count int64)
	Snapshot() map[string]int64
}

// InMemoryCollector is a Collector backed by a plain counter map
type InMemoryCollector struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewInMemoryCollector creates an empty collector
func NewInMemoryCollector() *InMemoryCollector {
	return &InMemoryCollector{
		counters: make(map[string]int64),
	}
}

// RecordRequest increments the request counter for a model/status pair
func (c *InMemoryCollector) RecordRequest(model, status string) {
	c.increment(fmt.Sprintf("ai_requests_total{model=%q,status=%q}", model, status), 1)
}

// RecordTokens adds to the token counter for a model/token-type pair
func (c *InMemoryCollector) RecordTokens(model, tokenType string, count int64) {
	c.increment(fmt.Sprintf("ai_tokens_used_total{model=%q,token_type=%q}", model, tokenType), count)
}

// Snapshot returns a copy of all counters
func (c *InMemoryCollector) Snapshot() map[string]int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make(map[string]int64, len(c.counters))
	for key, value := range c.counters {
		snapshot[key] = value
	}
	return snapshot
}

func (c *InMemoryCollector) increment(key string, delta int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counters[key] += delta
}
