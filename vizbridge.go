// Package minecraftaudioviz provides a tick-driven bridge between an
// audio analysis producer and a block-world renderer.
//
// Example usage:
//
//	cfg := minecraftaudioviz.DefaultConfig()
//	cfg.Zones = []minecraftaudioviz.ZoneConfig{
//	    {ID: "main", Origin: [3]float64{0, 64, 0}, Size: [3]float64{32, 16, 32}, EntityRendering: true},
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	if err := minecraftaudioviz.Run(context.Background(), cfg); err != nil {
//	    log.Fatal(err)
//	}
package minecraftaudioviz

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/adapters/render"
	zoneadapter "github.com/ryanthemcpherson/minecraft-audio-viz/internal/adapters/zone"
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/cliconfig"
	"github.com/ryanthemcpherson/minecraft-audio-viz/pkg/log"
	"github.com/ryanthemcpherson/minecraft-audio-viz/pkg/vizbridge"
	"github.com/ryanthemcpherson/minecraft-audio-viz/plugins/statsreporter"
)

// Config holds the configuration for the update-ingestion pipeline.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = cliconfig.Config

// ZoneConfig describes one renderable region of the world.
type ZoneConfig = cliconfig.ZoneConfig

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return cliconfig.DefaultConfig()
}

// Logger returns the package-level zerolog logger used by the pipeline.
func Logger() zerolog.Logger {
	return cliconfig.Logger()
}

// Run starts the pipeline with the given configuration and a logging
// render sink. It blocks until the context is cancelled or the pipeline
// crashes. For custom sinks and zone mappings use vizbridge.New
// directly.
func Run(ctx context.Context, cfg Config) error {
	logger := log.NewZerologAdapterWithLogger(cliconfig.Logger())
	sink := render.NewLogSink(logger)

	defs := make([]zoneadapter.Definition, 0, len(cfg.Zones))
	for _, z := range cfg.Zones {
		defs = append(defs, zoneadapter.Definition{
			ID:              z.ID,
			Origin:          vizbridge.WorldPosition{X: z.Origin[0], Y: z.Origin[1], Z: z.Origin[2]},
			Size:            vizbridge.WorldPosition{X: z.Size[0], Y: z.Size[1], Z: z.Size[2]},
			EntityRendering: z.EntityRendering,
		})
	}

	opts := []vizbridge.Option{
		vizbridge.WithLogger(logger),
		vizbridge.WithRenderSink(sink),
		vizbridge.WithBeatEffects(sink),
		vizbridge.WithAudioStatePublisher(sink),
		statsreporter.WithStatsReporter(statsreporter.Config{Interval: cfg.StatsInterval}),
	}
	if len(defs) > 0 {
		opts = append(opts, vizbridge.WithZoneRegistry(zoneadapter.NewStaticRegistry(defs...)))
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
		return err
	}

	if err := p.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	return p.Stop()
}
