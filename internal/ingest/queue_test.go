package ingest

import (
	"fmt"
	"sync"
	"testing"

	logadapter "github.com/ryanthemcpherson/minecraft-audio-viz/internal/adapters/log"
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/domain"
)

func newTestQueue(capacity, dropLogEvery int) (*Queue, *domain.Stats) {
	stats := &domain.Stats{}
	return NewQueue(capacity, dropLogEvery, stats, logadapter.NewNoopLogger()), stats
}

func bulkEnvelope(zone string) domain.Envelope {
	return domain.Envelope{Type: domain.TypeBulkUpdate, Zone: zone}
}

func TestQueueOfferAndDrainFIFO(t *testing.T) {
	q, _ := newTestQueue(8, 1)

	for i := 0; i < 5; i++ {
		q.Offer(bulkEnvelope(fmt.Sprintf("zone-%d", i)))
	}

	if got := q.Len(); got != 5 {
		t.Fatalf("Len() = %d, want 5", got)
	}

	out := q.DrainAll()
	if len(out) != 5 {
		t.Fatalf("DrainAll() returned %d envelopes, want 5", len(out))
	}
	for i, env := range out {
		want := fmt.Sprintf("zone-%d", i)
		if env.Zone != want {
			t.Errorf("DrainAll()[%d].Zone = %q, want %q", i, env.Zone, want)
		}
	}

	if out := q.DrainAll(); out != nil {
		t.Errorf("second DrainAll() = %v, want nil", out)
	}
	if got := q.Len(); got != 0 {
		t.Errorf("Len() after drain = %d, want 0", got)
	}
}

func TestQueueOverflowEvictsOldest(t *testing.T) {
	const capacity = 10
	q, stats := newTestQueue(capacity, 1)

	for i := 0; i < capacity+1; i++ {
		q.Offer(bulkEnvelope(fmt.Sprintf("zone-%d", i)))
	}

	if got := q.Len(); got != capacity {
		t.Fatalf("Len() = %d, want %d", got, capacity)
	}
	if got := stats.Snapshot().Dropped; got != 1 {
		t.Errorf("dropped counter = %d, want 1", got)
	}

	// The oldest envelope (zone-0) is evicted; the newest capacity
	// envelopes remain in order.
	out := q.DrainAll()
	for i, env := range out {
		want := fmt.Sprintf("zone-%d", i+1)
		if env.Zone != want {
			t.Errorf("DrainAll()[%d].Zone = %q, want %q", i, env.Zone, want)
		}
	}
}

func TestQueueOverflowWrapsRepeatedly(t *testing.T) {
	const capacity = 4
	q, stats := newTestQueue(capacity, 1)

	for i := 0; i < 3*capacity; i++ {
		q.Offer(bulkEnvelope(fmt.Sprintf("zone-%d", i)))
	}

	if got := stats.Snapshot().Dropped; got != 2*capacity {
		t.Errorf("dropped counter = %d, want %d", got, 2*capacity)
	}

	out := q.DrainAll()
	if len(out) != capacity {
		t.Fatalf("DrainAll() returned %d envelopes, want %d", len(out), capacity)
	}
	if out[0].Zone != "zone-8" || out[capacity-1].Zone != "zone-11" {
		t.Errorf("retained window = [%s .. %s], want [zone-8 .. zone-11]",
			out[0].Zone, out[capacity-1].Zone)
	}
}

func TestQueueConcurrentOffer(t *testing.T) {
	const (
		producers   = 8
		perProducer = 200
	)
	q, stats := newTestQueue(producers*perProducer, 1)

	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				q.Offer(bulkEnvelope(fmt.Sprintf("zone-%d", id)))
			}
		}(i)
	}
	wg.Wait()

	if got := q.Len(); got != producers*perProducer {
		t.Errorf("Len() = %d, want %d", got, producers*perProducer)
	}
	if got := stats.Snapshot().Dropped; got != 0 {
		t.Errorf("dropped counter = %d, want 0", got)
	}
}

func TestQueueDefaults(t *testing.T) {
	q, _ := newTestQueue(0, 0)

	if got := q.Capacity(); got != DefaultQueueCapacity {
		t.Errorf("Capacity() = %d, want %d", got, DefaultQueueCapacity)
	}
}
