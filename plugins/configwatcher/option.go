package configwatcher

import "github.com/ryanthemcpherson/minecraft-audio-viz/pkg/vizbridge"

// WithConfigWatcher returns a vizbridge Option that enables config file
// watching. When enabled, the plugin monitors the config file for
// changes and hot-applies tunable settings to the running pipeline.
//
// Usage:
//
//	p, err := vizbridge.New(cfg,
//	    configwatcher.WithConfigWatcher(configwatcher.Config{
//	        Path:          "/etc/vizbridge/config.toml",
//	        DebounceDelay: 100 * time.Millisecond,
//	    }),
//	)
func WithConfigWatcher(cfg Config) vizbridge.Option {
	plugin := New(cfg)
	return vizbridge.WithPlugin(plugin)
}

// WithDefaultConfigWatcher returns a vizbridge Option that enables
// config watching with default settings (retry every 5s, debounce 100ms).
//
// Usage:
//
//	p, err := vizbridge.New(cfg, configwatcher.WithDefaultConfigWatcher())
func WithDefaultConfigWatcher() vizbridge.Option {
	return WithConfigWatcher(DefaultConfig())
}
