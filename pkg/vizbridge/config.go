package vizbridge

import (
	"fmt"
	"time"

	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/app"
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/domain"
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/ingest"
)

// Default configuration values.
const (
	// DefaultTickInterval matches a 20 Hz host renderer.
	DefaultTickInterval = 50 * time.Millisecond

	// DefaultBeatIntensityThreshold gates beat-effect fan-out.
	DefaultBeatIntensityThreshold = 0.30

	// DefaultZoneID receives bypass commands without a zone tag.
	DefaultZoneID = "main"
)

// Config holds the configuration for a vizbridge pipeline.
// Zero fields are filled in by SetDefaults.
type Config struct {
	// TickInterval is the consumer cadence; it must match the host
	// renderer's tick rate.
	TickInterval time.Duration

	// QueueCapacity bounds the ingress queue.
	QueueCapacity int

	// DecodeWorkers sizes the decoder pool.
	DecodeWorkers int

	// DropLogEvery samples overflow warnings to one in N drops.
	DropLogEvery int

	// DefaultZone receives bypass commands that carry no zone tag.
	DefaultZone string

	// BeatIntensityThreshold is the minimum projected intensity that
	// triggers beat-effect fan-out.
	BeatIntensityThreshold float64

	// TrigCacheLimit bounds the per-tick trig cache.
	TrigCacheLimit int

	// ShutdownTimeout bounds graceful shutdown of the tick loop and the
	// decoder pool.
	ShutdownTimeout time.Duration
}

// SetDefaults fills zero fields with default values.
func (c *Config) SetDefaults() {
	if c.TickInterval == 0 {
		c.TickInterval = DefaultTickInterval
	}
	if c.QueueCapacity == 0 {
		c.QueueCapacity = ingest.DefaultQueueCapacity
	}
	if c.DecodeWorkers == 0 {
		c.DecodeWorkers = ingest.DefaultDecodeWorkers
	}
	if c.DropLogEvery == 0 {
		c.DropLogEvery = ingest.DefaultDropLogEvery
	}
	if c.DefaultZone == "" {
		c.DefaultZone = DefaultZoneID
	}
	if c.BeatIntensityThreshold == 0 {
		c.BeatIntensityThreshold = DefaultBeatIntensityThreshold
	}
	if c.TrigCacheLimit == 0 {
		c.TrigCacheLimit = app.DefaultTrigCacheLimit
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = app.ShutdownTimeout
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive", domain.ErrInvalidConfig)
	}
	if c.QueueCapacity <= 0 {
		return fmt.Errorf("%w: queue capacity must be positive", domain.ErrInvalidConfig)
	}
	if c.DecodeWorkers <= 0 {
		return fmt.Errorf("%w: decode workers must be positive", domain.ErrInvalidConfig)
	}
	if c.BeatIntensityThreshold < 0 || c.BeatIntensityThreshold > 1 {
		return fmt.Errorf("%w: beat intensity threshold must be in [0,1]", domain.ErrInvalidConfig)
	}
	if c.DefaultZone == "" {
		return fmt.Errorf("%w: default zone is required", domain.ErrInvalidConfig)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown timeout must be positive", domain.ErrInvalidConfig)
	}
	return nil
}
