package domain

// AudioFrameState is the per-zone audio summary published downstream after
// each tick's processing. A new state supersedes the previous one for the
// same zone (last-write-wins); consumers never see a blend of two frames.
type AudioFrameState struct {
	Zone            string
	Bands           []float64
	Amplitude       float64
	IsBeat          bool
	BeatIntensity   float64
	TempoConfidence float64
	BeatPhase       float64
	Frame           int64
}
