package vizbridge

import (
	"context"
	"sync"
	"time"

	zoneAdapter "github.com/ryanthemcpherson/minecraft-audio-viz/internal/adapters/zone"
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/app"
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/domain"
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/ingest"
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/ports"
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/sanitize"
)

// Pipeline is an embeddable update-ingestion pipeline. Use New() to create
// an instance, then Start() to begin ticking.
type Pipeline struct {
	config    Config
	opts      options
	lifecycle *app.Lifecycle
	processor *app.Processor
	queue     *ingest.Queue
	decoders  *ingest.DecoderPool
	stats     *domain.Stats
	tuning    *app.Tuning
	logger    ports.Logger

	plugins []Plugin

	mu     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a new Pipeline with the given configuration.
// The instance is created in StateStopped; call Start() to begin ticking.
// Returns an error if configuration is invalid.
func New(cfg Config, opts ...Option) (*Pipeline, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.zones == nil {
		// Identity mapping over the default zone keeps a bare pipeline usable.
		o.zones = zoneAdapter.NewStaticRegistry(zoneAdapter.Definition{
			ID:              cfg.DefaultZone,
			Size:            domain.WorldPosition{X: 1, Y: 1, Z: 1},
			EntityRendering: true,
		})
	}

	emitter := &eventEmitterWrapper{handler: o.eventHandler}
	stats := &domain.Stats{}
	tuning := app.NewTuning(cfg.BeatIntensityThreshold)
	queue := ingest.NewQueue(cfg.QueueCapacity, cfg.DropLogEvery, stats, o.logger)
	decoders := ingest.NewDecoderPool(cfg.DecodeWorkers, queue, stats, o.logger)

	processor := app.NewProcessor(
		app.ProcessorConfig{
			DefaultZone:    cfg.DefaultZone,
			TrigCacheLimit: cfg.TrigCacheLimit,
		},
		queue, o.zones, o.sink, o.effects, o.audio,
		stats, tuning, o.logger, emitter, o.clock,
	)

	return &Pipeline{
		config:    cfg,
		opts:      o,
		lifecycle: app.NewLifecycle(o.logger, emitter),
		processor: processor,
		queue:     queue,
		decoders:  decoders,
		stats:     stats,
		tuning:    tuning,
		logger:    o.logger,
		plugins:   o.plugins,
	}, nil
}

// Start begins ticking in the background.
// Returns immediately after starting the tick goroutine.
// Returns an error if already running or if a plugin fails to initialize.
func (p *Pipeline) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.lifecycle.CanStart() {
		return domain.ErrAlreadyRunning
	}

	if err := p.lifecycle.TransitionTo(app.StateStarting, "Start() called"); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	p.ctx = runCtx
	p.cancel = cancel
	p.lifecycle.SetCancel(cancel)

	pluginCfg := PluginConfig{
		DefaultZone: p.config.DefaultZone,
		Logger:      p.logger,
		Stats:       p.Stats,
		Pipeline:    p,
	}
	for _, plugin := range p.plugins {
		if err := plugin.Initialize(runCtx, pluginCfg); err != nil {
			p.logger.Error("plugin initialization failed",
				ports.String("plugin", plugin.Name()),
				ports.Err(err))
			cancel()
			_ = p.lifecycle.TransitionTo(app.StateCrashed, "plugin init failed: "+plugin.Name())
			return err
		}
		p.logger.Info("plugin initialized", ports.String("plugin", plugin.Name()))
	}

	p.decoders.Start()

	p.lifecycle.AddWorker()
	go func() {
		defer p.lifecycle.WorkerDone()

		if err := p.lifecycle.TransitionTo(app.StateRunning, "tick loop starting"); err != nil {
			p.logger.Error("failed to transition to running", ports.Err(err))
			return
		}

		p.runTicks(runCtx)
	}()

	return nil
}

// Stop gracefully shuts down the pipeline: the tick loop stops first, then
// the decoder pool is drained with a bounded timeout.
// Returns nil on graceful shutdown, ErrShutdownTimeout if forced.
func (p *Pipeline) Stop() error {
	p.mu.Lock()

	if !p.lifecycle.CanStop() {
		p.mu.Unlock()
		return domain.ErrNotRunning
	}

	if err := p.lifecycle.TransitionTo(app.StateStopping, "Stop() called"); err != nil {
		p.mu.Unlock()
		return err
	}

	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()

	err := p.lifecycle.WaitWithTimeout(p.config.ShutdownTimeout)

	if shutdownErr := p.decoders.Shutdown(p.config.ShutdownTimeout); shutdownErr != nil {
		p.logger.Warn("decoder pool shutdown forced", ports.Err(shutdownErr))
		if err == nil {
			err = shutdownErr
		}
	}

	// Shutdown plugins (in reverse order)
	shutdownCtx := context.Background()
	for i := len(p.plugins) - 1; i >= 0; i-- {
		plugin := p.plugins[i]
		if shutdownErr := plugin.Shutdown(shutdownCtx); shutdownErr != nil {
			p.logger.Error("plugin shutdown failed",
				ports.String("plugin", plugin.Name()),
				ports.Err(shutdownErr))
		} else {
			p.logger.Info("plugin shutdown complete", ports.String("plugin", plugin.Name()))
		}
	}

	if err != nil {
		_ = p.lifecycle.TransitionTo(app.StateCrashed, "shutdown timeout")
	} else {
		_ = p.lifecycle.TransitionTo(app.StateStopped, "graceful shutdown")
	}

	return err
}

// Status returns the current lifecycle state.
// Safe to call concurrently from any goroutine.
func (p *Pipeline) Status() State {
	return convertState(p.lifecycle.State())
}

// SubmitRaw hands one raw message to the decoder pool.
// Never blocks; safe to call from any producer goroutine.
func (p *Pipeline) SubmitRaw(raw []byte) {
	p.decoders.SubmitRaw(raw)
}

// SubmitEnvelope enqueues an already-typed envelope from a trusted internal
// producer, bypassing decoding but obeying the same backpressure policy.
func (p *Pipeline) SubmitEnvelope(env Envelope) {
	p.decoders.SubmitParsed(env)
}

// SubmitCommand enqueues one pre-built update command. An empty zoneID
// assigns the command to the default zone at dispatch time.
func (p *Pipeline) SubmitCommand(zoneID string, cmd EntityUpdateCommand) {
	p.decoders.SubmitParsed(domain.Envelope{
		Type:    domain.TypeEntityUpdate,
		Zone:    zoneID,
		Command: &cmd,
	})
}

// Stats returns a snapshot of the pipeline counters.
func (p *Pipeline) Stats() StatsSnapshot {
	return p.stats.Snapshot()
}

// SetBeatIntensityThreshold hot-applies a new beat-effect gate, clamped
// to [0,1]. Used by the config watcher plugin.
func (p *Pipeline) SetBeatIntensityThreshold(v float64) {
	p.tuning.SetBeatIntensityThreshold(sanitize.UnitInterval(v))
}

// BeatIntensityThreshold returns the current beat-effect gate.
func (p *Pipeline) BeatIntensityThreshold() float64 {
	return p.tuning.BeatIntensityThreshold()
}

// runTicks drives the processor at the configured cadence until the
// context is canceled.
func (p *Pipeline) runTicks(ctx context.Context) {
	ticker := time.NewTicker(p.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.processor.Tick()
		}
	}
}
