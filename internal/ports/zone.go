package ports

import "github.com/ryanthemcpherson/minecraft-audio-viz/internal/domain"

// Zone exposes one zone's coordinate mapping and render-mode state.
type Zone interface {
	// MapToWorld converts normalized zone-local coordinates (each in [0,1])
	// to renderer world space.
	MapToWorld(x, y, z float64) domain.WorldPosition

	// EntityRenderingEnabled reports whether the zone's current render mode
	// accepts entity-style updates. When false the extractor skips the zone
	// entirely (particle-only zones).
	EntityRenderingEnabled() bool
}

// ZoneRegistry resolves zone identifiers.
type ZoneRegistry interface {
	// Zone returns the zone for the given id.
	// Returns domain.ErrUnknownZone when the id is not registered.
	Zone(id string) (Zone, error)
}
