package app

import (
	"time"

	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/sanitize"
)

// Beat projection thresholds. The projector trades a small false rate for
// visual continuity when the upstream detector misses an explicit beat but
// the tempo/phase evidence is strong.
const (
	// minTempoConfidence is the confidence floor below which no beat is
	// ever synthesized.
	minTempoConfidence = 0.60

	// minTempoBPM is the slowest tempo considered usable evidence.
	minTempoBPM = 60.0

	// beatPhaseWindow is how close the phase must be to a cycle boundary
	// (0 or 1) for synthesis.
	beatPhaseWindow = 0.12

	// minBeatGap is the absolute cooldown floor between beats per zone.
	minBeatGap = 120 * time.Millisecond

	// beatGapFraction scales the beat period into a cooldown, preventing
	// double-firing across both edges of the same cycle.
	beatGapFraction = 0.60

	// synthIntensityFloor and synthIntensityGain shape the intensity of a
	// synthesized beat from tempo confidence.
	synthIntensityFloor = 0.25
	synthIntensityGain  = 0.65
)

// projectBeat decides whether this tick corresponds to a musical beat for
// the zone, from explicit or inferred evidence.
//
// An explicit beat always wins and resets the zone's cooldown clock.
// Otherwise a beat is synthesized only when tempo confidence and BPM are
// high enough, the phase sits near a cycle boundary, and the zone's
// cooldown has elapsed. lastBeat is the per-zone timestamp memory owned by
// the tick processor; projectBeat records positive decisions into it.
func projectBeat(zoneID string, explicit bool, explicitIntensity, bpm, confidence, phase float64, now time.Time, lastBeat map[string]time.Time) (bool, float64) {
	if explicit {
		lastBeat[zoneID] = now
		return true, sanitize.UnitInterval(explicitIntensity)
	}

	if confidence < minTempoConfidence || bpm < minTempoBPM {
		return false, 0
	}

	if phase > beatPhaseWindow && phase < 1-beatPhaseWindow {
		return false, 0
	}

	beatPeriod := time.Duration(60000 / bpm * float64(time.Millisecond))
	minInterval := time.Duration(float64(beatPeriod) * beatGapFraction)
	if minInterval < minBeatGap {
		minInterval = minBeatGap
	}
	if last, ok := lastBeat[zoneID]; ok && now.Sub(last) < minInterval {
		return false, 0
	}

	intensity := confidence * synthIntensityGain
	if intensity < synthIntensityFloor {
		intensity = synthIntensityFloor
	}
	lastBeat[zoneID] = now
	return true, sanitize.UnitInterval(intensity)
}
