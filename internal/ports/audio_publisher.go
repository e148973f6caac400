package ports

import "github.com/ryanthemcpherson/minecraft-audio-viz/internal/domain"

// AudioStatePublisher receives the audio summary for a zone after each
// tick's processing. A new state supersedes the previous one for the same
// zone; implementations should overwrite, never merge.
type AudioStatePublisher interface {
	Update(state domain.AudioFrameState)
}
