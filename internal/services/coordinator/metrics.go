package coordinator

import "sync"

// MetricsCollector receives coordination outcomes. Implementations must be
// safe for concurrent use.
type MetricsCollector interface {
	RecordDecision(decision string)
	RecordDegraded()
	RecordSpecialistFailure(agent string)
	RecordCacheHit()
}

// NoopMetricsCollector discards everything.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDecision(string)          {}
func (NoopMetricsCollector) RecordDegraded()                {}
func (NoopMetricsCollector) RecordSpecialistFailure(string) {}
func (NoopMetricsCollector) RecordCacheHit()                {}

// CounterMetrics accumulates counts in memory.
type CounterMetrics struct {
	mu        sync.Mutex
	decisions map[string]int
	failures  map[string]int
	degraded  int
	cacheHits int
}

// NewCounterMetrics builds an empty collector.
func NewCounterMetrics() *CounterMetrics {
	return &CounterMetrics{
		decisions: make(map[string]int),
		failures:  make(map[string]int),
	}
}

func (m *CounterMetrics) RecordDecision(decision string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decisions[decision]++
}

func (m *CounterMetrics) RecordDegraded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.degraded++
}

func (m *CounterMetrics) RecordSpecialistFailure(agent string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[agent]++
}

func (m *CounterMetrics) RecordCacheHit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits++
}

// Snapshot returns a copy of the current counters.
func (m *CounterMetrics) Snapshot() (decisions map[string]int, failures map[string]int, degraded, cacheHits int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	decisions = make(map[string]int, len(m.decisions))
	for k, v := range m.decisions {
		decisions[k] = v
	}
	failures = make(map[string]int, len(m.failures))
	for k, v := range m.failures {
		failures[k] = v
	}
	return decisions, failures, m.degraded, m.cacheHits
}
