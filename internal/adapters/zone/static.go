// Package zone provides a static, table-driven ZoneRegistry adapter.
//
// Zones are declared up front (typically from the config file) with a world
// origin and extents; normalized coordinates map linearly into that box.
package zone

import (
	"fmt"

	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/domain"
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/ports"
)

// Definition describes one zone for the static registry.
type Definition struct {
	// ID is the zone identifier referenced by inbound messages.
	ID string

	// Origin is the world-space corner the normalized origin maps to.
	Origin domain.WorldPosition

	// Size is the world-space extent along each axis; a normalized
	// coordinate of 1.0 lands at Origin + Size.
	Size domain.WorldPosition

	// EntityRendering reports whether the zone accepts entity-style
	// updates. Particle-only zones set this false.
	EntityRendering bool
}

// StaticRegistry resolves zone ids against a fixed table.
type StaticRegistry struct {
	zones map[string]*staticZone
}

// NewStaticRegistry builds a registry from the given definitions.
func NewStaticRegistry(defs ...Definition) *StaticRegistry {
	r := &StaticRegistry{zones: make(map[string]*staticZone, len(defs))}
	for _, d := range defs {
		r.zones[d.ID] = &staticZone{def: d}
	}
	return r
}

// Zone returns the zone for the given id, or domain.ErrUnknownZone.
func (r *StaticRegistry) Zone(id string) (ports.Zone, error) {
	z, ok := r.zones[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownZone, id)
	}
	return z, nil
}

type staticZone struct {
	def Definition
}

func (z *staticZone) MapToWorld(nx, ny, nz float64) domain.WorldPosition {
	return domain.WorldPosition{
		X: z.def.Origin.X + nx*z.def.Size.X,
		Y: z.def.Origin.Y + ny*z.def.Size.Y,
		Z: z.def.Origin.Z + nz*z.def.Size.Z,
	}
}

func (z *staticZone) EntityRenderingEnabled() bool {
	return z.def.EntityRendering
}
