// Package sanitize repairs individual numeric message fields.
//
// The policy is clamp, don't reject: every malformed value degrades to a
// documented safe default instead of aborting the enclosing message. The
// rest of the pipeline relies on this to assume all numbers are finite and
// in range.
package sanitize

import "math"

// Field domains and defaults.
const (
	CoordinateDefault    = 0.5
	ScaleMax             = 4.0
	ScaleDefault         = 0.5
	RotationMin          = -360.0
	RotationMax          = 360.0
	BrightnessMax        = 15
	BrightnessDefault    = 15
	InterpolationMax     = 100
	InterpolationDefault = 3
	AmplitudeMax         = 5.0
)

// Bounded clamps v to [min, max]. NaN and infinities map to def.
// Never returns a value outside [min, max].
func Bounded(v, min, max, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Coordinate sanitizes a normalized zone-local coordinate to [0,1].
func Coordinate(v float64) float64 {
	return Bounded(v, 0, 1, CoordinateDefault)
}

// Scale sanitizes a uniform scale factor to [0,4].
func Scale(v float64) float64 {
	return Bounded(v, 0, ScaleMax, ScaleDefault)
}

// RotationDegrees sanitizes a rotation angle to [-360,360].
func RotationDegrees(v float64) float64 {
	return Bounded(v, RotationMin, RotationMax, 0)
}

// Brightness sanitizes a brightness level to [0,15].
func Brightness(v float64) int {
	return int(Bounded(v, 0, BrightnessMax, BrightnessDefault))
}

// InterpolationTicks sanitizes an interpolation duration to [0,100] ticks.
func InterpolationTicks(v float64) int {
	return int(Bounded(v, 0, InterpolationMax, InterpolationDefault))
}

// Band sanitizes one frequency band value to [0,1].
func Band(v float64) float64 {
	return Bounded(v, 0, 1, 0)
}

// Amplitude sanitizes an instantaneous amplitude to [0,5].
func Amplitude(v float64) float64 {
	return Bounded(v, 0, AmplitudeMax, 0)
}

// UnitInterval sanitizes a value whose domain is [0,1] with a zero default
// (beat intensity, tempo confidence, beat phase).
func UnitInterval(v float64) float64 {
	return Bounded(v, 0, 1, 0)
}

// BPM sanitizes a tempo estimate to [0,300].
func BPM(v float64) float64 {
	return Bounded(v, 0, 300, 0)
}
