package ingest

import (
	"errors"
	"testing"

	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/domain"
)

func TestDecodeMessageBulkUpdate(t *testing.T) {
	raw := []byte(`{
		"type": "bulk_update",
		"zone": "main",
		"entities": [
			{"id": "e0", "x": 0.25, "y": 0.5, "z": 0.75, "scale": 1.0, "rotation": 45,
			 "brightness": 10, "glow": true, "interpolation": 5}
		],
		"is_beat": true, "beat_intensity": 0.8,
		"bpm": 128, "tempo_confidence": 0.9, "beat_phase": 0.05,
		"bands": [0.9, 0.1], "amplitude": 0.5, "frame": 42
	}`)

	env, err := DecodeMessage(raw)
	if err != nil {
		t.Fatalf("DecodeMessage() error: %v", err)
	}

	if env.Type != domain.TypeBulkUpdate {
		t.Errorf("Type = %q, want %q", env.Type, domain.TypeBulkUpdate)
	}
	if env.Zone != "main" {
		t.Errorf("Zone = %q, want %q", env.Zone, "main")
	}
	if len(env.Entities) != 1 {
		t.Fatalf("len(Entities) = %d, want 1", len(env.Entities))
	}

	e := env.Entities[0]
	if e.ID != "e0" || e.X != 0.25 || e.Y != 0.5 || e.Z != 0.75 {
		t.Errorf("entity = %+v, want id e0 at (0.25, 0.5, 0.75)", e)
	}
	if e.Scale != 1.0 || e.RotationDegrees != 45 {
		t.Errorf("scale/rotation = %v/%v, want 1.0/45", e.Scale, e.RotationDegrees)
	}
	if e.Brightness == nil || *e.Brightness != 10 {
		t.Errorf("Brightness = %v, want 10", e.Brightness)
	}
	if e.Glow == nil || !*e.Glow {
		t.Errorf("Glow = %v, want true", e.Glow)
	}
	if e.InterpolationTicks == nil || *e.InterpolationTicks != 5 {
		t.Errorf("InterpolationTicks = %v, want 5", e.InterpolationTicks)
	}

	if env.Audio == nil {
		t.Fatal("Audio = nil, want audio fields")
	}
	a := env.Audio
	if !a.IsBeat || a.BeatIntensity != 0.8 || a.BPM != 128 {
		t.Errorf("audio = %+v, want is_beat 0.8@128bpm", a)
	}
	if a.TempoConfidence != 0.9 || a.BeatPhase != 0.05 || a.Amplitude != 0.5 || a.Frame != 42 {
		t.Errorf("audio = %+v, unexpected tempo/phase/amplitude/frame", a)
	}
	if len(a.Bands) != 2 || a.Bands[0] != 0.9 {
		t.Errorf("Bands = %v, want [0.9 0.1]", a.Bands)
	}
}

func TestDecodeMessageSanitizesOutOfRange(t *testing.T) {
	raw := []byte(`{
		"type": "bulk_update",
		"zone": "main",
		"entities": [
			{"id": "e0", "x": 2.5, "y": -1, "z": 0.5, "scale": 99, "rotation": 720,
			 "brightness": 200, "interpolation": -5}
		],
		"bpm": 900, "beat_intensity": 7, "amplitude": -3
	}`)

	env, err := DecodeMessage(raw)
	if err != nil {
		t.Fatalf("DecodeMessage() error: %v", err)
	}

	e := env.Entities[0]
	if e.X != 1 || e.Y != 0 {
		t.Errorf("coordinates = (%v, %v), want clamped to (1, 0)", e.X, e.Y)
	}
	if e.Scale != 4 {
		t.Errorf("Scale = %v, want clamped to 4", e.Scale)
	}
	if e.RotationDegrees != 360 {
		t.Errorf("RotationDegrees = %v, want clamped to 360", e.RotationDegrees)
	}
	if e.Brightness == nil || *e.Brightness != 15 {
		t.Errorf("Brightness = %v, want clamped to 15", e.Brightness)
	}
	if e.InterpolationTicks == nil || *e.InterpolationTicks != 0 {
		t.Errorf("InterpolationTicks = %v, want clamped to 0", e.InterpolationTicks)
	}

	if env.Audio.BPM != 300 {
		t.Errorf("BPM = %v, want clamped to 300", env.Audio.BPM)
	}
	if env.Audio.BeatIntensity != 1 {
		t.Errorf("BeatIntensity = %v, want clamped to 1", env.Audio.BeatIntensity)
	}
	if env.Audio.Amplitude != 0 {
		t.Errorf("Amplitude = %v, want clamped to 0", env.Audio.Amplitude)
	}
}

func TestDecodeMessageMissingFieldsUseDefaults(t *testing.T) {
	raw := []byte(`{"type": "bulk_update", "zone": "main", "entities": [{"id": "e0"}]}`)

	env, err := DecodeMessage(raw)
	if err != nil {
		t.Fatalf("DecodeMessage() error: %v", err)
	}

	e := env.Entities[0]
	if e.X != 0.5 || e.Y != 0.5 || e.Z != 0.5 {
		t.Errorf("coordinates = (%v, %v, %v), want center defaults", e.X, e.Y, e.Z)
	}
	if e.Scale != 0.5 {
		t.Errorf("Scale = %v, want default 0.5", e.Scale)
	}
	if e.Brightness != nil || e.Glow != nil || e.InterpolationTicks != nil {
		t.Errorf("optional fields should stay nil when absent: %+v", e)
	}
	if env.Audio != nil {
		t.Errorf("Audio = %+v, want nil without audio keys", env.Audio)
	}
}

func TestDecodeMessageClearZone(t *testing.T) {
	env, err := DecodeMessage([]byte(`{"type": "clear_zone", "zone": "stage"}`))
	if err != nil {
		t.Fatalf("DecodeMessage() error: %v", err)
	}
	if env.Type != domain.TypeClearZone || env.Zone != "stage" {
		t.Errorf("envelope = %+v, want clear_zone for stage", env)
	}
}

func TestDecodeMessageUnknownType(t *testing.T) {
	_, err := DecodeMessage([]byte(`{"type": "teleport", "zone": "main"}`))
	if !errors.Is(err, domain.ErrUnknownCommand) {
		t.Errorf("error = %v, want ErrUnknownCommand", err)
	}
}

func TestDecodeMessageMalformed(t *testing.T) {
	if _, err := DecodeMessage([]byte(`{not json`)); err == nil {
		t.Error("DecodeMessage() = nil error for malformed input")
	}
}
