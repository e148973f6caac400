package app

import (
	"math"
	"testing"
	"time"
)

func TestProjectBeatExplicit(t *testing.T) {
	now := time.Now()
	lastBeat := make(map[string]time.Time)

	beat, intensity := projectBeat("main", true, 0.8, 0, 0, 0, now, lastBeat)
	if !beat || intensity != 0.8 {
		t.Errorf("projectBeat() = (%v, %v), want (true, 0.8)", beat, intensity)
	}
	if got, ok := lastBeat["main"]; !ok || !got.Equal(now) {
		t.Errorf("lastBeat[main] = %v, want %v", got, now)
	}
}

func TestProjectBeatExplicitClampsIntensity(t *testing.T) {
	lastBeat := make(map[string]time.Time)

	beat, intensity := projectBeat("main", true, 3.5, 0, 0, 0, time.Now(), lastBeat)
	if !beat || intensity != 1.0 {
		t.Errorf("projectBeat() = (%v, %v), want (true, 1.0)", beat, intensity)
	}

	beat, intensity = projectBeat("main", true, math.NaN(), 0, 0, 0, time.Now(), lastBeat)
	if !beat || intensity != 0 {
		t.Errorf("projectBeat() with NaN intensity = (%v, %v), want (true, 0)", beat, intensity)
	}
}

func TestProjectBeatSynthesis(t *testing.T) {
	now := time.Now()
	lastBeat := make(map[string]time.Time)

	beat, intensity := projectBeat("main", false, 0, 128, 0.8, 0.05, now, lastBeat)
	if !beat {
		t.Fatal("projectBeat() = false, want synthesized beat")
	}
	if math.Abs(intensity-0.52) > 1e-9 {
		t.Errorf("intensity = %v, want 0.52", intensity)
	}
	if _, ok := lastBeat["main"]; !ok {
		t.Error("synthesized beat did not record a timestamp")
	}
}

func TestProjectBeatSynthesisIntensityFloor(t *testing.T) {
	lastBeat := make(map[string]time.Time)

	// 0.6 * 0.65 = 0.39, above the floor; confidence exactly at the
	// minimum still synthesizes.
	beat, intensity := projectBeat("main", false, 0, 128, 0.60, 0.0, time.Now(), lastBeat)
	if !beat || math.Abs(intensity-0.39) > 1e-9 {
		t.Errorf("projectBeat() = (%v, %v), want (true, 0.39)", beat, intensity)
	}
}

func TestProjectBeatInsufficientEvidence(t *testing.T) {
	tests := []struct {
		name       string
		bpm        float64
		confidence float64
		phase      float64
	}{
		{"low confidence", 128, 0.59, 0.05},
		{"low bpm", 59, 0.9, 0.05},
		{"mid-cycle phase", 128, 0.9, 0.5},
		{"phase just outside window", 128, 0.9, 0.13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lastBeat := make(map[string]time.Time)
			beat, intensity := projectBeat("main", false, 0, tt.bpm, tt.confidence, tt.phase, time.Now(), lastBeat)
			if beat || intensity != 0 {
				t.Errorf("projectBeat() = (%v, %v), want (false, 0)", beat, intensity)
			}
			if len(lastBeat) != 0 {
				t.Error("negative decision must not record a timestamp")
			}
		})
	}
}

func TestProjectBeatPhaseNearUpperBoundary(t *testing.T) {
	lastBeat := make(map[string]time.Time)

	beat, _ := projectBeat("main", false, 0, 128, 0.8, 0.95, time.Now(), lastBeat)
	if !beat {
		t.Error("projectBeat() = false near the 1.0 boundary, want true")
	}
}

func TestProjectBeatCooldown(t *testing.T) {
	now := time.Now()
	lastBeat := make(map[string]time.Time)

	beat, _ := projectBeat("main", false, 0, 128, 0.8, 0.05, now, lastBeat)
	if !beat {
		t.Fatal("first projection = false, want true")
	}

	// Immediately repeating the call: elapsed 0ms is under the cooldown.
	beat, intensity := projectBeat("main", false, 0, 128, 0.8, 0.05, now, lastBeat)
	if beat || intensity != 0 {
		t.Errorf("repeat projection = (%v, %v), want (false, 0)", beat, intensity)
	}

	// At 128 BPM the period is 468.75ms, so the cooldown is 281.25ms.
	beat, _ = projectBeat("main", false, 0, 128, 0.8, 0.05, now.Add(280*time.Millisecond), lastBeat)
	if beat {
		t.Error("projection inside cooldown = true, want false")
	}
	beat, _ = projectBeat("main", false, 0, 128, 0.8, 0.05, now.Add(282*time.Millisecond), lastBeat)
	if !beat {
		t.Error("projection after cooldown = false, want true")
	}
}

func TestProjectBeatCooldownFloor(t *testing.T) {
	now := time.Now()
	lastBeat := map[string]time.Time{"main": now}

	// At 300 BPM the scaled cooldown (60% of a 200ms period) meets the
	// absolute 120ms floor exactly.
	beat, _ := projectBeat("main", false, 0, 300, 0.9, 0.05, now.Add(119*time.Millisecond), lastBeat)
	if beat {
		t.Error("projection under the 120ms floor = true, want false")
	}
	beat, _ = projectBeat("main", false, 0, 300, 0.9, 0.05, now.Add(121*time.Millisecond), lastBeat)
	if !beat {
		t.Error("projection past the 120ms floor = false, want true")
	}
}

func TestProjectBeatPerZoneIsolation(t *testing.T) {
	now := time.Now()
	lastBeat := make(map[string]time.Time)

	if beat, _ := projectBeat("a", false, 0, 128, 0.8, 0.05, now, lastBeat); !beat {
		t.Fatal("zone a first projection = false, want true")
	}
	// Zone b has its own cooldown clock.
	if beat, _ := projectBeat("b", false, 0, 128, 0.8, 0.05, now, lastBeat); !beat {
		t.Error("zone b projection suppressed by zone a's cooldown")
	}
}
