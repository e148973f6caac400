package vizbridge

import (
	"context"

	"github.com/ryanthemcpherson/minecraft-audio-viz/pkg/log"
)

// PluginConfig is passed to every plugin during initialization.
type PluginConfig struct {
	// DefaultZone is the pipeline's default zone id.
	DefaultZone string

	// Logger is the pipeline's logger.
	Logger log.Logger

	// Stats returns a current counter snapshot.
	Stats func() StatsSnapshot

	// Pipeline is the owning pipeline, for plugins that hot-apply
	// tunable settings.
	Pipeline *Pipeline
}

// Plugin extends a running pipeline. Plugins are initialized in
// registration order when the pipeline starts and shut down in reverse
// order when it stops.
type Plugin interface {
	// Name identifies the plugin in logs.
	Name() string

	// Initialize starts the plugin. The context is canceled when the
	// pipeline stops.
	Initialize(ctx context.Context, cfg PluginConfig) error

	// Shutdown stops the plugin and releases its resources.
	Shutdown(ctx context.Context) error
}
