package domain

import "sync/atomic"

// Stats holds the pipeline's monotonic counters. Producers and the consumer
// increment them concurrently, so all access goes through atomics.
type Stats struct {
	processed   atomic.Uint64
	batchesSent atomic.Uint64
	dropped     atomic.Uint64
}

// StatsSnapshot is a read-only view of the counters at one instant.
type StatsSnapshot struct {
	Processed   uint64
	BatchesSent uint64
	Dropped     uint64
}

// AddProcessed records n messages consumed by the tick processor.
func (s *Stats) AddProcessed(n uint64) {
	s.processed.Add(n)
}

// AddBatchesSent records n batched dispatch calls to the render sink.
func (s *Stats) AddBatchesSent(n uint64) {
	s.batchesSent.Add(n)
}

// AddDropped records n messages discarded by overflow eviction or
// per-tick coalescing. Returns the new total, which callers use for
// sampled drop logging.
func (s *Stats) AddDropped(n uint64) uint64 {
	return s.dropped.Add(n)
}

// Snapshot returns the current counter values.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Processed:   s.processed.Load(),
		BatchesSent: s.batchesSent.Load(),
		Dropped:     s.dropped.Load(),
	}
}
