package sanitize

import (
	"math"
	"testing"
)

func TestCoordinateBounds(t *testing.T) {
	inputs := []float64{
		math.NaN(), math.Inf(1), math.Inf(-1),
		-1e300, -0.001, 0, 0.25, 0.5, 1, 1.001, 1e300,
	}
	for _, in := range inputs {
		got := Coordinate(in)
		if got < 0 || got > 1 {
			t.Errorf("Coordinate(%v) = %v, outside [0,1]", in, got)
		}
	}
}

func TestCoordinateDefaults(t *testing.T) {
	for _, in := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := Coordinate(in); got != 0.5 {
			t.Errorf("Coordinate(%v) = %v, want 0.5", in, got)
		}
	}
}

func TestCoordinateClamping(t *testing.T) {
	if got := Coordinate(-3); got != 0 {
		t.Errorf("Coordinate(-3) = %v, want 0", got)
	}
	if got := Coordinate(7); got != 1 {
		t.Errorf("Coordinate(7) = %v, want 1", got)
	}
	if got := Coordinate(0.75); got != 0.75 {
		t.Errorf("Coordinate(0.75) = %v, want 0.75", got)
	}
}

func TestScale(t *testing.T) {
	if got := Scale(math.NaN()); got != 0.5 {
		t.Errorf("Scale(NaN) = %v, want 0.5", got)
	}
	if got := Scale(10); got != 4 {
		t.Errorf("Scale(10) = %v, want 4", got)
	}
	if got := Scale(-1); got != 0 {
		t.Errorf("Scale(-1) = %v, want 0", got)
	}
	if got := Scale(1.5); got != 1.5 {
		t.Errorf("Scale(1.5) = %v, want 1.5", got)
	}
}

func TestRotationDegrees(t *testing.T) {
	if got := RotationDegrees(math.Inf(1)); got != 0 {
		t.Errorf("RotationDegrees(+Inf) = %v, want 0", got)
	}
	if got := RotationDegrees(400); got != 360 {
		t.Errorf("RotationDegrees(400) = %v, want 360", got)
	}
	if got := RotationDegrees(-400); got != -360 {
		t.Errorf("RotationDegrees(-400) = %v, want -360", got)
	}
	if got := RotationDegrees(-45); got != -45 {
		t.Errorf("RotationDegrees(-45) = %v, want -45", got)
	}
}

func TestBrightness(t *testing.T) {
	if got := Brightness(math.NaN()); got != 15 {
		t.Errorf("Brightness(NaN) = %v, want 15", got)
	}
	if got := Brightness(100); got != 15 {
		t.Errorf("Brightness(100) = %v, want 15", got)
	}
	if got := Brightness(-2); got != 0 {
		t.Errorf("Brightness(-2) = %v, want 0", got)
	}
	if got := Brightness(7.9); got != 7 {
		t.Errorf("Brightness(7.9) = %v, want 7", got)
	}
}

func TestInterpolationTicks(t *testing.T) {
	if got := InterpolationTicks(math.NaN()); got != 3 {
		t.Errorf("InterpolationTicks(NaN) = %v, want 3", got)
	}
	if got := InterpolationTicks(500); got != 100 {
		t.Errorf("InterpolationTicks(500) = %v, want 100", got)
	}
	if got := InterpolationTicks(20); got != 20 {
		t.Errorf("InterpolationTicks(20) = %v, want 20", got)
	}
}

func TestBandAndAmplitude(t *testing.T) {
	if got := Band(math.Inf(-1)); got != 0 {
		t.Errorf("Band(-Inf) = %v, want 0", got)
	}
	if got := Band(2); got != 1 {
		t.Errorf("Band(2) = %v, want 1", got)
	}
	if got := Amplitude(math.NaN()); got != 0 {
		t.Errorf("Amplitude(NaN) = %v, want 0", got)
	}
	if got := Amplitude(9); got != 5 {
		t.Errorf("Amplitude(9) = %v, want 5", got)
	}
}

func TestBoundedCustomDefault(t *testing.T) {
	if got := Bounded(math.NaN(), 10, 20, 12); got != 12 {
		t.Errorf("Bounded(NaN, 10, 20, 12) = %v, want 12", got)
	}
	if got := Bounded(5, 10, 20, 12); got != 10 {
		t.Errorf("Bounded(5, 10, 20, 12) = %v, want 10", got)
	}
}
