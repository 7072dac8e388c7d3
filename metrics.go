package growvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for observing container events.
// Implement this interface to integrate with monitoring systems, or use
// BasicMetricsCollector to count events in-process.
//
// The collector is also the observable that distinguishes the two growth
// strategies: a vector built with WithTrivialRelocation reports every grown
// element under relocated and none under duplicated, while the default
// strategy reports the reverse.
type MetricsCollector interface {
	// RecordGrowth is called after each block replacement. oldCap and newCap
	// are the capacities before and after, relocated and duplicated count how
	// many existing elements were transferred by each strategy (one of the
	// two is always zero), and duration is the time the growth took.
	RecordGrowth(oldCap, newCap, relocated, duplicated int, duration time.Duration)

	// RecordClear is called after each Clear. n is the number of elements
	// removed.
	RecordClear(n int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrowth(int, int, int, int, time.Duration) {}
func (NoopMetricsCollector) RecordClear(int)                               {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and assertions without external dependencies.
type BasicMetricsCollector struct {
	Growths          atomic.Int64
	Relocated        atomic.Int64
	Duplicated       atomic.Int64
	Clears           atomic.Int64
	GrowthTotalNanos atomic.Int64
}

// RecordGrowth accumulates growth counters.
func (m *BasicMetricsCollector) RecordGrowth(oldCap, newCap, relocated, duplicated int, duration time.Duration) {
	m.Growths.Add(1)
	m.Relocated.Add(int64(relocated))
	m.Duplicated.Add(int64(duplicated))
	m.GrowthTotalNanos.Add(duration.Nanoseconds())
}

// RecordClear accumulates the clear counter.
func (m *BasicMetricsCollector) RecordClear(n int) {
	m.Clears.Add(1)
}
