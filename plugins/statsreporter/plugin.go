// Package statsreporter provides periodic pipeline counter logging for
// vizbridge. When enabled, it logs processed, dispatched and dropped
// totals at a fixed interval so operators can spot producer overruns
// without an external metrics stack.
package statsreporter

import (
	"context"
	"sync"
	"time"

	"github.com/ryanthemcpherson/minecraft-audio-viz/pkg/log"
	"github.com/ryanthemcpherson/minecraft-audio-viz/pkg/vizbridge"
)

// Plugin implements periodic stats reporting.
// Each interval it snapshots the pipeline counters and logs the totals
// together with the delta since the previous report.
type Plugin struct {
	mu sync.RWMutex

	// Configuration
	interval time.Duration

	// Runtime state
	stats  func() vizbridge.StatsSnapshot
	logger log.Logger
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Config holds configuration options for the stats reporter plugin.
type Config struct {
	// Interval is how often to log counter snapshots.
	// Default: 30 seconds
	Interval time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Interval: 30 * time.Second,
	}
}

// New creates a new stats reporter plugin with the given configuration.
func New(cfg Config) *Plugin {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}

	return &Plugin{
		interval: cfg.Interval,
	}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "statsreporter"
}

// Initialize sets up the plugin and starts the reporting loop.
func (p *Plugin) Initialize(ctx context.Context, cfg vizbridge.PluginConfig) error {
	p.mu.Lock()
	p.stats = cfg.Stats
	p.logger = cfg.Logger
	p.mu.Unlock()

	if p.stats == nil {
		p.logger.Warn("Stats reporter disabled: no stats source configured")
		return nil
	}

	reportCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.logger.Info("Stats reporter plugin initialized",
		log.Duration("interval", p.interval))

	p.wg.Add(1)
	go p.reportLoop(reportCtx)

	return nil
}

// Shutdown stops the reporting loop.
func (p *Plugin) Shutdown(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
	return nil
}

// reportLoop logs counters at the configured interval.
func (p *Plugin) reportLoop(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	var prev vizbridge.StatsSnapshot

	for {
		select {
		case <-ctx.Done():
			// Final report so shutdown logs carry closing totals.
			p.reportOnce(&prev)
			return
		case <-ticker.C:
			p.reportOnce(&prev)
		}
	}
}

// reportOnce logs one snapshot and updates the previous snapshot.
func (p *Plugin) reportOnce(prev *vizbridge.StatsSnapshot) {
	snap := p.stats()

	p.logger.Info("pipeline counters",
		log.Uint64("processed", snap.Processed),
		log.Uint64("batches_sent", snap.BatchesSent),
		log.Uint64("dropped", snap.Dropped),
		log.Uint64("processed_delta", snap.Processed-prev.Processed),
		log.Uint64("dropped_delta", snap.Dropped-prev.Dropped))

	*prev = snap
}

// Ensure Plugin implements vizbridge.Plugin.
var _ vizbridge.Plugin = (*Plugin)(nil)
