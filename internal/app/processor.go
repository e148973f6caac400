package app

import (
	"time"

	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/domain"
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/ingest"
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/ports"
)

// ProcessorConfig contains configuration for the tick processor.
type ProcessorConfig struct {
	// DefaultZone receives bypass commands that carry no zone tag.
	DefaultZone string

	// TrigCacheLimit bounds the per-tick trig cache.
	TrigCacheLimit int
}

// DispatchEmitter is notified of per-tick dispatch outcomes.
type DispatchEmitter interface {
	OnBatchDispatch(zoneID string, commandCount int, duration time.Duration)
	OnCommandError(zoneID string, err error)
}

// handlerFunc processes one non-bulk envelope synchronously on the tick
// thread. A returned error is a protocol-level rejection for the message;
// it never aborts the tick.
type handlerFunc func(domain.Envelope) error

// Processor is the pipeline orchestrator. Once per render tick it drains
// the ingress queue, coalesces bulk updates per zone, runs extraction and
// beat projection, and issues exactly one batched dispatch per zone.
//
// All mutable state (coalescing map, pending commands, trig cache, beat
// timestamps) is owned by the single consumer goroutine that calls Tick;
// no locks are needed on this path.
type Processor struct {
	cfg     ProcessorConfig
	queue   *ingest.Queue
	zones   ports.ZoneRegistry
	sink    ports.RenderSink
	effects ports.BeatEffects
	audio   ports.AudioStatePublisher
	stats   *domain.Stats
	tuning  *Tuning
	logger  ports.Logger
	emitter DispatchEmitter
	now     func() time.Time

	handlers map[domain.MessageType]handlerFunc

	// Per-zone beat timestamps persist across ticks by design.
	lastBeat map[string]time.Time

	// Per-tick scratch state, reset at tick boundaries.
	trig      *trigCache
	coalesced *coalescer
	pending   map[string][]domain.EntityUpdateCommand
	zoneOrder []string
}

// NewProcessor creates a tick processor. The emitter may be nil.
func NewProcessor(
	cfg ProcessorConfig,
	queue *ingest.Queue,
	zones ports.ZoneRegistry,
	sink ports.RenderSink,
	effects ports.BeatEffects,
	audio ports.AudioStatePublisher,
	stats *domain.Stats,
	tuning *Tuning,
	logger ports.Logger,
	emitter DispatchEmitter,
	now func() time.Time,
) *Processor {
	if now == nil {
		now = time.Now
	}
	p := &Processor{
		cfg:       cfg,
		queue:     queue,
		zones:     zones,
		sink:      sink,
		effects:   effects,
		audio:     audio,
		stats:     stats,
		tuning:    tuning,
		logger:    logger,
		emitter:   emitter,
		now:       now,
		lastBeat:  make(map[string]time.Time),
		trig:      newTrigCache(cfg.TrigCacheLimit),
		coalesced: newCoalescer(),
		pending:   make(map[string][]domain.EntityUpdateCommand),
	}
	p.handlers = map[domain.MessageType]handlerFunc{
		domain.TypeEntityUpdate: p.handleEntityUpdate,
		domain.TypeClearZone:    p.handleClearZone,
	}
	return p
}

// Tick runs one consumer cycle: drain, coalesce, extract, dispatch.
// Must be called from a single goroutine at the host renderer's cadence.
func (p *Processor) Tick() {
	p.trig.reset()
	p.coalesced.reset()

	envelopes := p.queue.DrainAll()
	if len(envelopes) == 0 {
		return
	}
	p.stats.AddProcessed(uint64(len(envelopes)))

	for _, env := range envelopes {
		if env.Type == domain.TypeBulkUpdate {
			if superseded := p.coalesced.add(env); superseded {
				p.stats.AddDropped(1)
			}
			continue
		}
		p.dispatchMessage(env)
	}

	for _, zoneID := range p.coalesced.zones() {
		env := p.coalesced.get(zoneID)
		// Isolate each zone so one zone's failure cannot starve the rest.
		p.guard("zone processing", zoneID, func() {
			p.processZone(zoneID, env)
		})
	}

	p.flushBatches()
}

// LastBeat returns the recorded last-beat time for a zone, for diagnostics.
func (p *Processor) LastBeat(zoneID string) (time.Time, bool) {
	t, ok := p.lastBeat[zoneID]
	return t, ok
}

// dispatchMessage routes a non-bulk envelope through the handler table.
func (p *Processor) dispatchMessage(env domain.Envelope) {
	handler, ok := p.handlers[env.Type]
	if !ok {
		p.rejectCommand(env.Zone, domain.ErrUnknownCommand)
		return
	}
	p.guard("message handler", env.Zone, func() {
		if err := handler(env); err != nil {
			p.rejectCommand(env.Zone, err)
		}
	})
}

// processZone runs extraction and the audio/beat pipeline for one zone's
// retained bulk update.
func (p *Processor) processZone(zoneID string, env domain.Envelope) {
	zone, err := p.zones.Zone(zoneID)
	if err != nil {
		p.rejectCommand(zoneID, err)
		return
	}

	if cmds := extractCommands(zone, env.Entities, p.trig); len(cmds) > 0 {
		p.appendPending(zoneID, cmds...)
	}

	if env.Audio != nil {
		p.processAudio(zoneID, env.Audio)
	}
}

func (p *Processor) processAudio(zoneID string, audio *domain.AudioFields) {
	beat, intensity := projectBeat(
		zoneID,
		audio.IsBeat, audio.BeatIntensity,
		audio.BPM, audio.TempoConfidence, audio.BeatPhase,
		p.now(), p.lastBeat,
	)

	if beat && intensity >= p.tuning.BeatIntensityThreshold() {
		kind := ports.BeatProjected
		if audio.IsBeat {
			kind = ports.BeatExplicit
		}
		p.effects.OnBeat(zoneID, kind, intensity)
	}

	p.audio.Update(domain.AudioFrameState{
		Zone:            zoneID,
		Bands:           audio.Bands,
		Amplitude:       audio.Amplitude,
		IsBeat:          beat,
		BeatIntensity:   intensity,
		TempoConfidence: audio.TempoConfidence,
		BeatPhase:       audio.BeatPhase,
		Frame:           audio.Frame,
	})
}

// handleEntityUpdate merges a directly-enqueued single command into the
// tick's pending batches. Commands without a zone tag go to the default zone.
func (p *Processor) handleEntityUpdate(env domain.Envelope) error {
	if env.Command == nil {
		return nil
	}
	zoneID := env.Zone
	if zoneID == "" {
		zoneID = p.cfg.DefaultZone
	}
	p.appendPending(zoneID, *env.Command)
	return nil
}

// handleClearZone empties a zone's entity pool.
func (p *Processor) handleClearZone(env domain.Envelope) error {
	if _, err := p.zones.Zone(env.Zone); err != nil {
		return err
	}
	return p.sink.Clear(env.Zone)
}

func (p *Processor) appendPending(zoneID string, cmds ...domain.EntityUpdateCommand) {
	if _, ok := p.pending[zoneID]; !ok {
		p.zoneOrder = append(p.zoneOrder, zoneID)
	}
	p.pending[zoneID] = append(p.pending[zoneID], cmds...)
}

// flushBatches issues exactly one dispatch call per zone with pending
// commands, then clears the per-tick accumulation.
func (p *Processor) flushBatches() {
	for _, zoneID := range p.zoneOrder {
		cmds := p.pending[zoneID]
		if len(cmds) == 0 {
			continue
		}

		start := time.Now()
		err := p.sink.ApplyBatch(zoneID, cmds)
		duration := time.Since(start)

		if err != nil {
			p.logger.Error("batch dispatch failed",
				ports.String("zone", zoneID),
				ports.Int("commands", len(cmds)),
				ports.Err(err),
			)
			continue
		}

		p.stats.AddBatchesSent(1)
		if p.emitter != nil {
			p.emitter.OnBatchDispatch(zoneID, len(cmds), duration)
		}
	}

	clear(p.pending)
	p.zoneOrder = p.zoneOrder[:0]
}

// rejectCommand surfaces a protocol-level rejection without aborting the tick.
func (p *Processor) rejectCommand(zoneID string, err error) {
	p.logger.Warn("command rejected",
		ports.String("zone", zoneID),
		ports.Err(err),
	)
	if p.emitter != nil {
		p.emitter.OnCommandError(zoneID, err)
	}
}

// guard runs fn and absorbs any panic so one bad message or zone cannot
// abort the tick or crash the process.
func (p *Processor) guard(label, zoneID string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("recovered panic in "+label,
				ports.String("zone", zoneID),
				ports.Any("panic", r),
			)
		}
	}()
	fn()
}
