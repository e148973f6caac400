package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/domain"
	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/sanitize"
)

// wireEntity mirrors one entry of the "entities" array on the wire.
// Optional fields are pointers so absent and zero can be told apart.
type wireEntity struct {
	ID            string   `json:"id"`
	X             *float64 `json:"x"`
	Y             *float64 `json:"y"`
	Z             *float64 `json:"z"`
	Scale         *float64 `json:"scale"`
	Rotation      *float64 `json:"rotation"`
	Brightness    *float64 `json:"brightness"`
	Glow          *bool    `json:"glow"`
	Interpolation *float64 `json:"interpolation"`
}

// wireMessage mirrors the inbound JSON envelope shape.
type wireMessage struct {
	Type     string       `json:"type"`
	Zone     string       `json:"zone"`
	Entities []wireEntity `json:"entities"`

	IsBeat          *bool     `json:"is_beat"`
	BeatIntensity   *float64  `json:"beat_intensity"`
	BPM             *float64  `json:"bpm"`
	TempoConfidence *float64  `json:"tempo_confidence"`
	BeatPhase       *float64  `json:"beat_phase"`
	Bands           []float64 `json:"bands"`
	Amplitude       *float64  `json:"amplitude"`
	Frame           *int64    `json:"frame"`
}

// DecodeMessage parses one raw message into a sanitized envelope.
// Unknown type tags return an error wrapping domain.ErrUnknownCommand.
// Malformed numeric fields never fail the message; they degrade to the
// sanitizer defaults.
func DecodeMessage(raw []byte) (domain.Envelope, error) {
	var msg wireMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return domain.Envelope{}, fmt.Errorf("decode message: %w", err)
	}

	switch domain.MessageType(msg.Type) {
	case domain.TypeBulkUpdate:
		return decodeBulkUpdate(msg), nil
	case domain.TypeClearZone:
		return domain.Envelope{Type: domain.TypeClearZone, Zone: msg.Zone}, nil
	default:
		return domain.Envelope{}, fmt.Errorf("%w: %q", domain.ErrUnknownCommand, msg.Type)
	}
}

func decodeBulkUpdate(msg wireMessage) domain.Envelope {
	env := domain.Envelope{
		Type: domain.TypeBulkUpdate,
		Zone: msg.Zone,
	}

	if len(msg.Entities) > 0 {
		env.Entities = make([]domain.EntityDelta, 0, len(msg.Entities))
		for _, e := range msg.Entities {
			env.Entities = append(env.Entities, sanitizeEntity(e))
		}
	}

	if hasAudioFields(msg) {
		env.Audio = sanitizeAudio(msg)
	}

	return env
}

func sanitizeEntity(e wireEntity) domain.EntityDelta {
	d := domain.EntityDelta{
		ID:              e.ID,
		X:               sanitize.Coordinate(valueOr(e.X, sanitize.CoordinateDefault)),
		Y:               sanitize.Coordinate(valueOr(e.Y, sanitize.CoordinateDefault)),
		Z:               sanitize.Coordinate(valueOr(e.Z, sanitize.CoordinateDefault)),
		Scale:           sanitize.Scale(valueOr(e.Scale, sanitize.ScaleDefault)),
		RotationDegrees: sanitize.RotationDegrees(valueOr(e.Rotation, 0)),
		Glow:            e.Glow,
	}
	if e.Brightness != nil {
		b := sanitize.Brightness(*e.Brightness)
		d.Brightness = &b
	}
	if e.Interpolation != nil {
		t := sanitize.InterpolationTicks(*e.Interpolation)
		d.InterpolationTicks = &t
	}
	return d
}

func hasAudioFields(msg wireMessage) bool {
	return msg.IsBeat != nil || msg.BeatIntensity != nil || msg.BPM != nil ||
		msg.TempoConfidence != nil || msg.BeatPhase != nil ||
		msg.Bands != nil || msg.Amplitude != nil || msg.Frame != nil
}

func sanitizeAudio(msg wireMessage) *domain.AudioFields {
	a := &domain.AudioFields{
		BeatIntensity:   sanitize.UnitInterval(valueOr(msg.BeatIntensity, 0)),
		BPM:             sanitize.BPM(valueOr(msg.BPM, 0)),
		TempoConfidence: sanitize.UnitInterval(valueOr(msg.TempoConfidence, 0)),
		BeatPhase:       sanitize.UnitInterval(valueOr(msg.BeatPhase, 0)),
		Amplitude:       sanitize.Amplitude(valueOr(msg.Amplitude, 0)),
	}
	if msg.IsBeat != nil {
		a.IsBeat = *msg.IsBeat
	}
	if msg.Frame != nil {
		a.Frame = *msg.Frame
	}
	if len(msg.Bands) > 0 {
		a.Bands = make([]float64, len(msg.Bands))
		for i, b := range msg.Bands {
			a.Bands[i] = sanitize.Band(b)
		}
	}
	return a
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
