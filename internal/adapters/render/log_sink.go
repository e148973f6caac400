// Package render provides diagnostic sink adapters.
//
// LogSink is a stand-in for a real renderer bridge: it satisfies the
// RenderSink, BeatEffects and AudioStatePublisher ports and logs what a
// renderer would have applied. The CLI uses it as its default sink.
package render

import (
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/domain"
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/ports"
)

// LogSink logs every dispatch instead of rendering it.
type LogSink struct {
	logger ports.Logger
}

// NewLogSink creates a sink writing to the given logger.
func NewLogSink(logger ports.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// ApplyBatch logs one batched dispatch.
func (s *LogSink) ApplyBatch(zoneID string, commands []domain.EntityUpdateCommand) error {
	s.logger.Info("apply batch",
		ports.String("zone", zoneID),
		ports.Int("commands", len(commands)),
	)
	for _, cmd := range commands {
		s.logger.Debug("entity update",
			ports.String("zone", zoneID),
			ports.String("id", cmd.ID),
			ports.Float64("x", cmd.Position.X),
			ports.Float64("y", cmd.Position.Y),
			ports.Float64("z", cmd.Position.Z),
			ports.Float64("scale", cmd.Transform.Scale),
			ports.Float64("rotation", cmd.Transform.RotationDegrees),
		)
	}
	return nil
}

// Clear logs a zone clear request.
func (s *LogSink) Clear(zoneID string) error {
	s.logger.Info("clear zone", ports.String("zone", zoneID))
	return nil
}

// OnBeat logs a beat notification.
func (s *LogSink) OnBeat(zoneID string, kind ports.BeatKind, intensity float64) {
	s.logger.Info("beat",
		ports.String("zone", zoneID),
		ports.String("kind", string(kind)),
		ports.Float64("intensity", intensity),
	)
}

// Update logs the published audio frame state.
func (s *LogSink) Update(state domain.AudioFrameState) {
	s.logger.Debug("audio state",
		ports.String("zone", state.Zone),
		ports.Bool("beat", state.IsBeat),
		ports.Float64("amplitude", state.Amplitude),
		ports.Int("bands", len(state.Bands)),
	)
}
