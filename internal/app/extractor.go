package app

import (
	"math"

	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/domain"
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/ports"
)

// DefaultTrigCacheLimit bounds the per-tick trig cache so degenerate input
// (every entity at a distinct angle) cannot grow it without limit.
const DefaultTrigCacheLimit = 256

// trigCache memoizes {sin, cos} per rotation angle within a single tick.
// Entries are keyed by the exact bit pattern of the angle and the cache is
// cleared at the start of every tick. Many entities sharing one orientation
// in the same frame is the common case this amortizes.
type trigCache struct {
	entries map[uint64][2]float64
	limit   int
}

func newTrigCache(limit int) *trigCache {
	if limit <= 0 {
		limit = DefaultTrigCacheLimit
	}
	return &trigCache{
		entries: make(map[uint64][2]float64),
		limit:   limit,
	}
}

// sinCos returns sin(theta) and cos(theta), memoized for the current tick.
// Once the cache is full, further angles are computed without caching.
func (c *trigCache) sinCos(theta float64) (float64, float64) {
	key := math.Float64bits(theta)
	if v, ok := c.entries[key]; ok {
		return v[0], v[1]
	}
	sin, cos := math.Sincos(theta)
	if len(c.entries) < c.limit {
		c.entries[key] = [2]float64{sin, cos}
	}
	return sin, cos
}

// reset clears the cache at a tick boundary.
func (c *trigCache) reset() {
	clear(c.entries)
}

// extractCommands turns one zone's sanitized deltas into world-space render
// commands. Returns nil without doing any work when the zone's render mode
// suppresses entity-style rendering. Deltas without an id are skipped.
//
// The pivot keeps a corner-anchored, pre-rotation-scaled primitive visually
// centered on the normalized point after scaling and rotation.
func extractCommands(zone ports.Zone, deltas []domain.EntityDelta, trig *trigCache) []domain.EntityUpdateCommand {
	if !zone.EntityRenderingEnabled() {
		return nil
	}
	if len(deltas) == 0 {
		return nil
	}

	out := make([]domain.EntityUpdateCommand, 0, len(deltas))
	for _, d := range deltas {
		if d.ID == "" {
			continue
		}

		half := d.Scale / 2
		var pivot domain.Pivot
		if d.RotationDegrees == 0 {
			// Fast path: no trigonometry when there is no rotation.
			p := 0.5 - half
			pivot = domain.Pivot{X: p, Y: p, Z: p}
		} else {
			theta := d.RotationDegrees * math.Pi / 180
			sin, cos := trig.sinCos(theta)
			pivot = domain.Pivot{
				X: 0.5 - half*(cos+sin),
				Y: 0.5 - half,
				Z: 0.5 - half*(cos-sin),
			}
		}

		out = append(out, domain.EntityUpdateCommand{
			ID:       d.ID,
			Position: zone.MapToWorld(d.X, d.Y, d.Z),
			Transform: domain.Transform{
				Scale:           d.Scale,
				RotationDegrees: d.RotationDegrees,
				Pivot:           pivot,
			},
			Brightness:         d.Brightness,
			Glow:               d.Glow,
			InterpolationTicks: d.InterpolationTicks,
		})
	}
	return out
}
