package ingest

import (
	"sync"
	"time"

	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/domain"
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/ports"
)

// Default decoder pool tuning values.
const (
	DefaultDecodeWorkers = 2
	DefaultRawBacklog    = 256
)

// DecoderPool decodes raw messages on a small fixed worker pool, isolated
// from both the network-receive thread and the render tick thread.
// Successfully decoded envelopes go to the ingress queue; malformed
// messages are logged and dropped, never propagated.
type DecoderPool struct {
	queue  *Queue
	stats  *domain.Stats
	logger ports.Logger

	raw     chan []byte
	workers int

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDecoderPool creates a decoder pool feeding the given queue.
// Call Start before submitting.
func NewDecoderPool(workers int, queue *Queue, stats *domain.Stats, logger ports.Logger) *DecoderPool {
	if workers <= 0 {
		workers = DefaultDecodeWorkers
	}
	return &DecoderPool{
		queue:   queue,
		stats:   stats,
		logger:  logger,
		raw:     make(chan []byte, DefaultRawBacklog),
		workers: workers,
	}
}

// Start launches the decode workers.
func (p *DecoderPool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// SubmitRaw hands a raw message to the pool. Never blocks: if the decode
// backlog is full the message is counted as dropped. Safe to call from any
// goroutine; a no-op after Shutdown.
func (p *DecoderPool) SubmitRaw(raw []byte) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return
	}
	select {
	case p.raw <- raw:
	default:
		p.stats.AddDropped(1)
	}
}

// SubmitParsed enqueues an already-typed envelope from a trusted internal
// producer, bypassing decoding but obeying the same backpressure policy.
func (p *DecoderPool) SubmitParsed(env domain.Envelope) {
	p.queue.Offer(env)
}

// Shutdown stops accepting input and waits for the workers to drain the
// backlog. Returns domain.ErrShutdownTimeout if they do not finish within
// the given timeout.
func (p *DecoderPool) Shutdown(timeout time.Duration) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.raw)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return domain.ErrShutdownTimeout
	}
}

func (p *DecoderPool) worker() {
	defer p.wg.Done()
	for raw := range p.raw {
		env, err := DecodeMessage(raw)
		if err != nil {
			p.logger.Warn("dropping undecodable message", ports.Err(err))
			continue
		}
		p.queue.Offer(env)
	}
}
