package statsreporter

import "github.com/ryanthemcpherson/minecraft-audio-viz/pkg/vizbridge"

// WithStatsReporter returns a vizbridge Option that enables periodic
// counter logging.
//
// Usage:
//
//	p, err := vizbridge.New(cfg,
//	    statsreporter.WithStatsReporter(statsreporter.Config{
//	        Interval: time.Minute,
//	    }),
//	)
func WithStatsReporter(cfg Config) vizbridge.Option {
	plugin := New(cfg)
	return vizbridge.WithPlugin(plugin)
}

// WithDefaultStatsReporter returns a vizbridge Option that enables
// counter logging with default settings (every 30s).
func WithDefaultStatsReporter() vizbridge.Option {
	return WithStatsReporter(DefaultConfig())
}
