package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/adapters/render"
	zoneadapter "github.com/ryanthemcpherson/minecraft-audio-viz/internal/adapters/zone"
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/cliconfig"
	"github.com/ryanthemcpherson/minecraft-audio-viz/pkg/log"
	"github.com/ryanthemcpherson/minecraft-audio-viz/pkg/vizbridge"
	"github.com/ryanthemcpherson/minecraft-audio-viz/plugins/configwatcher"
	"github.com/ryanthemcpherson/minecraft-audio-viz/plugins/statsreporter"
)

const helpDescription = `
Bridge an audio analysis feed into a tick-driven block-world renderer.

Reads newline-delimited JSON messages on stdin, coalesces them per tick
and per zone, and dispatches world-space entity batches to the render
sink. Beats are taken from the producer when explicit and projected
from tempo otherwise.

Configure via file ($HOME/.vizbridge/config.toml), VIZBRIDGE_* env
vars, or flags; flags win, then env, then file.
`

var exampleUsage = strings.TrimSpace(`
  audio-analyzer --json | vizbridge
  vizbridge --config ./config.toml --beat-threshold 0.45
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	logger := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "vizbridge",
		Short:   "Bridge an audio analysis feed into a tick-driven block-world renderer",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.vizbridge/config.toml), then apply flag overrides
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Apply environment variables (VIZBRIDGE_*)
			// These override file config but are overridden by flags (checked via changed map)
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			// Validate and set derived defaults
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger = cliconfig.ConfigureLogger(cfg.LogLevel, cfg.LogFormat)
			logger.Info().Interface("config", cfg).Msg("configuration")

			// Create zerolog adapter for the library
			zerologAdapter := log.NewZerologAdapterWithLogger(logger)

			sink := render.NewLogSink(zerologAdapter)

			opts := []vizbridge.Option{
				vizbridge.WithLogger(zerologAdapter),
				vizbridge.WithRenderSink(sink),
				vizbridge.WithBeatEffects(sink),
				vizbridge.WithAudioStatePublisher(sink),
				statsreporter.WithStatsReporter(statsreporter.Config{
					Interval: cfg.StatsInterval,
				}),
			}

			if len(cfg.Zones) > 0 {
				defs := make([]zoneadapter.Definition, 0, len(cfg.Zones))
				for _, z := range cfg.Zones {
					defs = append(defs, zoneadapter.Definition{
						ID:              z.ID,
						Origin:          vizbridge.WorldPosition{X: z.Origin[0], Y: z.Origin[1], Z: z.Origin[2]},
						Size:            vizbridge.WorldPosition{X: z.Size[0], Y: z.Size[1], Z: z.Size[2]},
						EntityRendering: z.EntityRendering,
					})
				}
				opts = append(opts, vizbridge.WithZoneRegistry(zoneadapter.NewStaticRegistry(defs...)))
			}

			if cfg.WatchConfig && cfgFile != "" {
				opts = append(opts, configwatcher.WithConfigWatcher(configwatcher.Config{
					Path: cfgFile,
				}))
			}

			p, err := vizbridge.New(vizbridge.Config{
				TickInterval:           cfg.TickInterval,
				QueueCapacity:          cfg.QueueCapacity,
				DecodeWorkers:          cfg.DecodeWorkers,
				DropLogEvery:           cfg.DropLogEvery,
				DefaultZone:            cfg.DefaultZone,
				BeatIntensityThreshold: cfg.BeatIntensityThreshold,
				ShutdownTimeout:        cfg.ShutdownTimeout,
			}, opts...)
			if err != nil {
				return fmt.Errorf("create pipeline: %w", err)
			}

			// Setup signal handling for graceful shutdown
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			if err := p.Start(ctx); err != nil {
				return fmt.Errorf("start pipeline: %w", err)
			}

			// Feed stdin lines into the pipeline. EOF means the
			// producer went away, so the process drains and exits.
			eofCh := make(chan struct{})
			go func() {
				defer close(eofCh)
				scanner := bufio.NewScanner(os.Stdin)
				scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
				for scanner.Scan() {
					line := scanner.Bytes()
					if len(line) == 0 {
						continue
					}
					raw := make([]byte, len(line))
					copy(raw, line)
					p.SubmitRaw(raw)
				}
				if err := scanner.Err(); err != nil {
					logger.Error().Err(err).Msg("stdin read failed")
				}
			}()

			// Detect crash while running
			doneCh := make(chan struct{})
			go func() {
				ticker := time.NewTicker(100 * time.Millisecond)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						status := p.Status()
						if status == vizbridge.StateStopped || status == vizbridge.StateCrashed {
							close(doneCh)
							return
						}
					}
				}
			}()

			// Wait for signal, producer EOF, or completion
			select {
			case <-sigCh:
				logger.Info().Msg("received signal, stopping...")
			case <-eofCh:
				logger.Info().Msg("producer closed stdin, stopping...")
			case <-doneCh:
				if p.Status() == vizbridge.StateCrashed {
					logger.Error().Msg("pipeline crashed")
				}
			}

			// Graceful shutdown
			if err := p.Stop(); err != nil {
				return fmt.Errorf("stop pipeline: %w", err)
			}
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.vizbridge/config.toml)")

	root.Flags().DurationVar(&cfg.TickInterval, "tick-interval", cfg.TickInterval, "consumer tick cadence (must match the host renderer)")
	root.Flags().IntVar(&cfg.QueueCapacity, "queue-capacity", cfg.QueueCapacity, "ingress queue capacity before oldest messages are evicted")
	root.Flags().IntVar(&cfg.DecodeWorkers, "decode-workers", cfg.DecodeWorkers, "number of JSON decode workers")
	root.Flags().IntVar(&cfg.DropLogEvery, "drop-log-every", cfg.DropLogEvery, "log every Nth dropped message")
	root.Flags().DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "maximum time to wait for graceful shutdown")

	root.Flags().StringVar(&cfg.DefaultZone, "default-zone", cfg.DefaultZone, "zone used when messages omit one")
	root.Flags().Float64Var(&cfg.BeatIntensityThreshold, "beat-threshold", cfg.BeatIntensityThreshold, "minimum beat intensity that triggers beat effects")

	root.Flags().DurationVar(&cfg.StatsInterval, "stats-interval", cfg.StatsInterval, "interval between pipeline counter reports")
	root.Flags().BoolVar(&cfg.WatchConfig, "watch-config", cfg.WatchConfig, "hot-reload tunable settings when the config file changes")

	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	root.Flags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (console, json)")

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("vizbridge")
		os.Exit(1)
	}
}
