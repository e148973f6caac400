// Package vizbridge provides an embeddable update-ingestion pipeline for
// tick-driven 3D world renderers.
//
// Vizbridge converts a high-frequency stream of audio-visualization update
// messages into synchronized, rate-limited render commands. Messages can
// arrive far faster than the renderer can apply them; the pipeline absorbs
// bursts with a bounded drop-oldest queue, coalesces redundant per-zone
// updates within each tick, and issues exactly one batched dispatch per
// zone per tick.
//
// # Basic Usage
//
//	cfg := vizbridge.Config{}
//	pipeline, err := vizbridge.New(cfg,
//	    vizbridge.WithRenderSink(mySink),
//	    vizbridge.WithZoneRegistry(myZones),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	if err := pipeline.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	// producers, from any goroutine:
//	pipeline.SubmitRaw(rawMessage)
//
//	// ... run until shutdown signal ...
//
//	if err := pipeline.Stop(); err != nil {
//	    log.Printf("shutdown error: %v", err)
//	}
//
// # Configuration
//
// All [Config] fields have sensible defaults set via [Config.SetDefaults];
// a zero Config is valid.
//
// # Event Handling
//
// To observe pipeline activity, implement [EventHandler] and pass it via
// [WithEventHandler]. Events are called synchronously from the tick
// goroutine; implementations should return quickly to avoid stalling ticks.
//
// # Concurrency Model
//
// Producers only enqueue: SubmitRaw, SubmitEnvelope and SubmitCommand are
// safe from any goroutine and never block. All render-affecting state is
// mutated from the single tick goroutine; the ingress queue is the only
// cross-thread synchronization point.
package vizbridge
