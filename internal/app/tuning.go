package app

import (
	"math"
	"sync/atomic"
)

// Tuning holds the pipeline settings that can change while it runs, such
// as when the config watcher plugin picks up a file edit. The tick thread
// reads them every tick and other goroutines write them, so values are
// stored as atomic bit patterns.
type Tuning struct {
	beatThreshold atomic.Uint64
}

// NewTuning creates a Tuning with the given initial beat threshold.
func NewTuning(beatIntensityThreshold float64) *Tuning {
	t := &Tuning{}
	t.SetBeatIntensityThreshold(beatIntensityThreshold)
	return t
}

// BeatIntensityThreshold returns the current beat-effect gate.
func (t *Tuning) BeatIntensityThreshold() float64 {
	return math.Float64frombits(t.beatThreshold.Load())
}

// SetBeatIntensityThreshold updates the beat-effect gate.
func (t *Tuning) SetBeatIntensityThreshold(v float64) {
	t.beatThreshold.Store(math.Float64bits(v))
}
