package configwatcher

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ryanthemcpherson/minecraft-audio-viz/pkg/log"
	"github.com/ryanthemcpherson/minecraft-audio-viz/pkg/vizbridge"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func newTestPipeline(t *testing.T) *vizbridge.Pipeline {
	t.Helper()
	p, err := vizbridge.New(vizbridge.Config{})
	if err != nil {
		t.Fatalf("vizbridge.New() error: %v", err)
	}
	return p
}

func TestPluginName(t *testing.T) {
	if got := New(Config{}).Name(); got != "configwatcher" {
		t.Errorf("Name() = %q, want configwatcher", got)
	}
}

func TestPluginReloadAppliesThreshold(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeConfig(t, path, `beat_intensity_threshold = 0.75`)

	pipeline := newTestPipeline(t)
	plugin := New(Config{Path: path})
	plugin.pipeline = pipeline
	plugin.logger = log.NewNoopLogger()

	if err := plugin.reload(); err != nil {
		t.Fatalf("reload() error: %v", err)
	}
	if got := pipeline.BeatIntensityThreshold(); got != 0.75 {
		t.Errorf("threshold = %v, want 0.75", got)
	}
}

func TestPluginReloadMissingFile(t *testing.T) {
	plugin := New(Config{Path: filepath.Join(t.TempDir(), "absent.toml")})
	plugin.pipeline = newTestPipeline(t)
	plugin.logger = log.NewNoopLogger()

	if err := plugin.reload(); err == nil {
		t.Error("reload() = nil error for a missing file")
	}
}

func TestPluginWatchesFileChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeConfig(t, path, `beat_intensity_threshold = 0.30`)

	pipeline := newTestPipeline(t)
	plugin := New(Config{
		Path:          path,
		DebounceDelay: 10 * time.Millisecond,
		RetryInterval: 50 * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := plugin.Initialize(ctx, vizbridge.PluginConfig{
		Pipeline: pipeline,
		Logger:   log.NewNoopLogger(),
	})
	if err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	defer plugin.Shutdown(context.Background())

	// Give the watcher a moment to establish the directory watch.
	time.Sleep(50 * time.Millisecond)

	writeConfig(t, path, `beat_intensity_threshold = 0.61`)

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if math.Abs(pipeline.BeatIntensityThreshold()-0.61) < 1e-9 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("threshold = %v, want 0.61 after file change", pipeline.BeatIntensityThreshold())
}

func TestPluginShutdownStopsWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeConfig(t, path, `beat_intensity_threshold = 0.30`)

	pipeline := newTestPipeline(t)
	plugin := New(Config{Path: path, DebounceDelay: 10 * time.Millisecond})

	ctx := context.Background()
	if err := plugin.Initialize(ctx, vizbridge.PluginConfig{
		Pipeline: pipeline,
		Logger:   log.NewNoopLogger(),
	}); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	if err := plugin.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error: %v", err)
	}

	// A change after shutdown must not be applied.
	writeConfig(t, path, `beat_intensity_threshold = 0.99`)
	time.Sleep(100 * time.Millisecond)
	if got := pipeline.BeatIntensityThreshold(); got == 0.99 {
		t.Error("threshold updated after Shutdown")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.RetryInterval != 5*time.Second {
		t.Errorf("RetryInterval = %v, want 5s", cfg.RetryInterval)
	}
	if cfg.DebounceDelay != 100*time.Millisecond {
		t.Errorf("DebounceDelay = %v, want 100ms", cfg.DebounceDelay)
	}
}
