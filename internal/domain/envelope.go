package domain

// MessageType discriminates inbound message envelopes.
type MessageType string

const (
	// TypeBulkUpdate carries a batch of entity deltas and/or audio-state
	// fields for one zone in a single frame.
	TypeBulkUpdate MessageType = "bulk_update"

	// TypeEntityUpdate carries a single pre-built update command. This is
	// the trusted bypass path used by internal producers.
	TypeEntityUpdate MessageType = "entity_update"

	// TypeClearZone requests that a zone's entity pool be cleared.
	TypeClearZone MessageType = "clear_zone"
)

// Envelope is a parsed, typed representation of one inbound message.
// An envelope is owned exclusively by whichever stage currently holds it
// (decoder, then queue, then tick processor) and is never mutated after
// creation.
type Envelope struct {
	Type MessageType

	// Zone is the target zone identifier. Empty for bypass commands,
	// which the tick processor assigns to the default zone.
	Zone string

	// Entities holds sanitized entity deltas for bulk updates.
	Entities []EntityDelta

	// Audio holds the sanitized audio summary for bulk updates, nil when
	// the message carried no audio fields.
	Audio *AudioFields

	// Command is set only for TypeEntityUpdate envelopes.
	Command *EntityUpdateCommand
}

// AudioFields is the audio evidence carried by a bulk update.
// All numeric fields are sanitized at decode time.
type AudioFields struct {
	IsBeat          bool
	BeatIntensity   float64
	BPM             float64
	TempoConfidence float64
	BeatPhase       float64
	Bands           []float64
	Amplitude       float64
	Frame           int64
}

// EntityDelta is one entity's update within a bulk update. Coordinates are
// normalized to [0,1] in zone-local space. All numeric fields are sanitized
// to their declared domain before any consumer sees them.
type EntityDelta struct {
	ID              string
	X               float64
	Y               float64
	Z               float64
	Scale           float64
	RotationDegrees float64

	// Optional pass-through fields; nil when absent from the message.
	Brightness         *int
	Glow               *bool
	InterpolationTicks *int
}
