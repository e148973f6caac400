package ingest

import (
	"sync"

	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/domain"
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/ports"
)

// Default queue tuning values.
const (
	DefaultQueueCapacity = 1000
	DefaultDropLogEvery  = 100
)

// Queue is a bounded multi-producer/single-consumer envelope queue.
// When full, Offer evicts the oldest envelope first, so the newest
// messages always win. Strict FIFO otherwise; no priorities, no reordering.
type Queue struct {
	mu    sync.Mutex
	buf   []domain.Envelope
	head  int
	count int

	stats        *domain.Stats
	logger       ports.Logger
	dropLogEvery uint64
}

// NewQueue creates a queue with the given capacity. Overflow drops are
// counted in stats and warn-logged once every dropLogEvery drops to avoid
// log storms under sustained overload.
func NewQueue(capacity, dropLogEvery int, stats *domain.Stats, logger ports.Logger) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	if dropLogEvery <= 0 {
		dropLogEvery = DefaultDropLogEvery
	}
	return &Queue{
		buf:          make([]domain.Envelope, capacity),
		stats:        stats,
		logger:       logger,
		dropLogEvery: uint64(dropLogEvery),
	}
}

// Offer inserts an envelope, evicting the oldest one first if the queue is
// at capacity. Never blocks and never fails from the producer's view.
func (q *Queue) Offer(env domain.Envelope) {
	var droppedTotal uint64
	evicted := false

	q.mu.Lock()
	if q.count == len(q.buf) {
		q.head = (q.head + 1) % len(q.buf)
		q.count--
		evicted = true
	}
	tail := (q.head + q.count) % len(q.buf)
	q.buf[tail] = env
	q.count++
	q.mu.Unlock()

	if evicted {
		droppedTotal = q.stats.AddDropped(1)
		if droppedTotal%q.dropLogEvery == 0 {
			q.logger.Warn("ingress queue overflow, evicting oldest",
				ports.Uint64("dropped_total", droppedTotal),
				ports.Int("capacity", len(q.buf)),
			)
		}
	}
}

// DrainAll removes and returns every queued envelope in FIFO order.
// Non-blocking; returns nil when the queue is empty. Called once per tick
// by the single consumer.
func (q *Queue) DrainAll() []domain.Envelope {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == 0 {
		return nil
	}
	out := make([]domain.Envelope, q.count)
	for i := 0; i < q.count; i++ {
		out[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.head = 0
	q.count = 0
	return out
}

// Len returns the number of queued envelopes.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Capacity returns the fixed queue capacity.
func (q *Queue) Capacity() int {
	return len(q.buf)
}
