// Package configwatcher provides config file monitoring for vizbridge.
// When enabled, it watches the TOML config file for changes and
// hot-applies the tunable settings to the running pipeline.
package configwatcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/cliconfig"
	"github.com/ryanthemcpherson/minecraft-audio-viz/pkg/log"
	"github.com/ryanthemcpherson/minecraft-audio-viz/pkg/vizbridge"
)

// Plugin implements config watching functionality.
// It monitors the vizbridge config file and hot-applies the beat
// intensity threshold when it changes. Settings that require a restart
// are logged but not applied.
type Plugin struct {
	mu sync.RWMutex

	// Configuration
	path          string
	retryInterval time.Duration
	debounceDelay time.Duration

	// Runtime state
	pipeline *vizbridge.Pipeline
	logger   log.Logger
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	debounce *time.Timer
}

// Config holds configuration options for the config watcher plugin.
type Config struct {
	// Path is the config file to watch. When empty, the default
	// config path is used.
	Path string

	// RetryInterval is the delay between retries on read failure.
	// Default: 5 seconds
	RetryInterval time.Duration

	// DebounceDelay is the delay to wait after a file change before
	// reloading. Default: 100 milliseconds
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Path:          cliconfig.DefaultConfigPath(),
		RetryInterval: 5 * time.Second,
		DebounceDelay: 100 * time.Millisecond,
	}
}

// New creates a new config watcher plugin with the given configuration.
func New(cfg Config) *Plugin {
	if cfg.Path == "" {
		cfg.Path = cliconfig.DefaultConfigPath()
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = 5 * time.Second
	}
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}

	return &Plugin{
		path:          cfg.Path,
		retryInterval: cfg.RetryInterval,
		debounceDelay: cfg.DebounceDelay,
	}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "configwatcher"
}

// Initialize sets up the plugin and starts the config watcher.
func (p *Plugin) Initialize(ctx context.Context, cfg vizbridge.PluginConfig) error {
	p.mu.Lock()
	p.pipeline = cfg.Pipeline
	p.logger = cfg.Logger
	p.mu.Unlock()

	if p.path == "" || p.pipeline == nil {
		p.logger.Warn("Config watcher disabled: no config path or pipeline")
		return nil
	}

	// Create cancellable context for the watcher loop
	watchCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.logger.Info("Config watcher plugin initialized",
		log.String("path", p.path))

	// Start watcher loop
	p.wg.Add(1)
	go p.watchLoop(watchCtx)

	return nil
}

// Shutdown stops the config watcher.
func (p *Plugin) Shutdown(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
	return nil
}

// watchLoop watches for config file changes.
func (p *Plugin) watchLoop(ctx context.Context) {
	defer p.wg.Done()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		p.logger.Error("Config watcher: failed to create watcher", log.Err(err))
		return
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace config files
	// by rename, which drops a file-level watch.
	if err := watcher.Add(filepath.Dir(p.path)); err != nil {
		p.logger.Error("Config watcher: failed to watch directory", log.Err(err))
		return
	}

	filename := filepath.Base(p.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			p.debounceReload(ctx, p.debounceDelay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			p.logger.Error("Config watcher: watcher error", log.Err(err))
		}
	}
}

func (p *Plugin) debounceReload(ctx context.Context, delay time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.debounce != nil {
		p.debounce.Stop()
	}

	p.debounce = time.AfterFunc(delay, func() {
		p.reloadWithRetry(ctx)
	})
}

// reloadWithRetry retries until success or context cancellation.
func (p *Plugin) reloadWithRetry(ctx context.Context) {
	retryCount := 0

	for {
		err := p.reload()
		if err == nil {
			if retryCount > 0 {
				p.logger.Info("Config watcher: applied configuration update after retries")
			} else {
				p.logger.Info("Config watcher: applied configuration update")
			}
			return
		}

		retryCount++
		p.logger.Error("Config watcher: reload failed", log.Err(err))

		select {
		case <-ctx.Done():
			p.logger.Info("Config watcher: stopping retry due to context cancellation")
			return
		case <-time.After(p.retryInterval):
			// Continue to next retry
		}
	}
}

// reload re-reads the config file and hot-applies tunable settings.
func (p *Plugin) reload() error {
	fc, err := cliconfig.LoadFileConfig(p.path)
	if err != nil {
		return err
	}

	if fc.BeatIntensityThreshold > 0 {
		p.pipeline.SetBeatIntensityThreshold(fc.BeatIntensityThreshold)
		p.logger.Info("Config watcher: beat intensity threshold updated",
			log.Float64("threshold", fc.BeatIntensityThreshold))
	}

	// Structural settings cannot change on a running pipeline.
	if fc.QueueCapacity > 0 || fc.DecodeWorkers > 0 || fc.TickInterval != "" {
		p.logger.Debug("Config watcher: structural settings require a restart to apply")
	}

	return nil
}

// Ensure Plugin implements vizbridge.Plugin.
var _ vizbridge.Plugin = (*Plugin)(nil)
