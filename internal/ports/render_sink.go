package ports

import "github.com/ryanthemcpherson/minecraft-audio-viz/internal/domain"

// RenderSink places visual objects in the world. The tick processor issues
// at most one ApplyBatch call per zone per tick; commands within a batch
// belong to a single frame and must be applied together.
type RenderSink interface {
	// ApplyBatch applies all commands for one zone atomically with respect
	// to the render tick.
	ApplyBatch(zoneID string, commands []domain.EntityUpdateCommand) error

	// Clear removes all pooled entities for the zone.
	Clear(zoneID string) error
}
