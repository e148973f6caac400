package vizbridge

import (
	"time"

	logAdapter "github.com/ryanthemcpherson/minecraft-audio-viz/internal/adapters/log"
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/domain"
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/ports"
)

// Option configures optional behavior of a Pipeline.
type Option func(*options)

// options holds the optional configuration for a Pipeline instance.
type options struct {
	logger       ports.Logger
	eventHandler EventHandler
	plugins      []Plugin
	sink         ports.RenderSink
	zones        ports.ZoneRegistry
	effects      ports.BeatEffects
	audio        ports.AudioStatePublisher
	clock        func() time.Time
}

// defaultOptions returns options with sensible defaults: a no-op logger
// and discard sinks, so a bare pipeline runs without any collaborator.
func defaultOptions() options {
	return options{
		logger:  logAdapter.NewNoopLogger(),
		sink:    noopSink{},
		effects: noopEffects{},
		audio:   noopAudio{},
		clock:   time.Now,
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEventHandler sets a handler for pipeline events.
// Events are called synchronously from the tick goroutine.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}

// WithPlugin registers a plugin to be initialized when the pipeline starts.
// Plugins are initialized in registration order and shut down in reverse order.
func WithPlugin(plugin Plugin) Option {
	return func(o *options) {
		o.plugins = append(o.plugins, plugin)
	}
}

// WithRenderSink sets the renderer bridge that receives batched commands.
func WithRenderSink(sink RenderSink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

// WithZoneRegistry sets the zone resolution service.
// If not provided, a registry containing only the default zone with an
// identity mapping is used.
func WithZoneRegistry(zones ZoneRegistry) Option {
	return func(o *options) {
		o.zones = zones
	}
}

// WithBeatEffects sets the beat-effect subsystem.
func WithBeatEffects(effects BeatEffects) Option {
	return func(o *options) {
		o.effects = effects
	}
}

// WithAudioStatePublisher sets the downstream audio state consumer.
func WithAudioStatePublisher(audio AudioStatePublisher) Option {
	return func(o *options) {
		o.audio = audio
	}
}

// WithClock overrides the time source. Intended for tests that need
// deterministic beat cooldowns.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// noopSink discards batches.
type noopSink struct{}

func (noopSink) ApplyBatch(string, []domain.EntityUpdateCommand) error { return nil }
func (noopSink) Clear(string) error                                    { return nil }

// noopEffects discards beat notifications.
type noopEffects struct{}

func (noopEffects) OnBeat(string, ports.BeatKind, float64) {}

// noopAudio discards audio state updates.
type noopAudio struct{}

func (noopAudio) Update(domain.AudioFrameState) {}
