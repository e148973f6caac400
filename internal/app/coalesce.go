package app

import "github.com/ryanthemcpherson/minecraft-audio-viz/internal/domain"

// coalescer keeps only the most recent bulk-update envelope per zone within
// one tick window. Replaced envelopes are stale frames that arrived but
// were superseded before the tick ran; they count as drops.
//
// Zones are remembered in first-seen order so dispatch stays deterministic.
type coalescer struct {
	latest map[string]domain.Envelope
	order  []string
}

func newCoalescer() *coalescer {
	return &coalescer{
		latest: make(map[string]domain.Envelope),
	}
}

// add retains env as the zone's latest bulk update.
// Returns true when an earlier envelope for the same zone was superseded.
func (c *coalescer) add(env domain.Envelope) bool {
	_, replaced := c.latest[env.Zone]
	if !replaced {
		c.order = append(c.order, env.Zone)
	}
	c.latest[env.Zone] = env
	return replaced
}

// zones returns the retained zone ids in first-seen order.
func (c *coalescer) zones() []string {
	return c.order
}

// get returns the latest envelope retained for the zone.
func (c *coalescer) get(zoneID string) domain.Envelope {
	return c.latest[zoneID]
}

// reset clears the coalescer for the next tick.
func (c *coalescer) reset() {
	clear(c.latest)
	c.order = c.order[:0]
}
