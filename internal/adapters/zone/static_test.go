package zone

import (
	"errors"
	"testing"

	"github.com/ryanthemcpherson/minecraft-audio-viz/internal/domain"
)

func TestStaticRegistryZoneLookup(t *testing.T) {
	r := NewStaticRegistry(
		Definition{ID: "main", Size: domain.WorldPosition{X: 1, Y: 1, Z: 1}, EntityRendering: true},
		Definition{ID: "particles", Size: domain.WorldPosition{X: 1, Y: 1, Z: 1}},
	)

	z, err := r.Zone("main")
	if err != nil {
		t.Fatalf("Zone(main) error: %v", err)
	}
	if !z.EntityRenderingEnabled() {
		t.Error("main zone should render entities")
	}

	z, err = r.Zone("particles")
	if err != nil {
		t.Fatalf("Zone(particles) error: %v", err)
	}
	if z.EntityRenderingEnabled() {
		t.Error("particles zone should not render entities")
	}
}

func TestStaticRegistryUnknownZone(t *testing.T) {
	r := NewStaticRegistry()

	_, err := r.Zone("nowhere")
	if !errors.Is(err, domain.ErrUnknownZone) {
		t.Errorf("Zone(nowhere) error = %v, want ErrUnknownZone", err)
	}
}

func TestStaticZoneMapToWorld(t *testing.T) {
	r := NewStaticRegistry(Definition{
		ID:     "stage",
		Origin: domain.WorldPosition{X: 100, Y: 64, Z: -50},
		Size:   domain.WorldPosition{X: 32, Y: 16, Z: 32},
	})

	z, err := r.Zone("stage")
	if err != nil {
		t.Fatalf("Zone(stage) error: %v", err)
	}

	tests := []struct {
		nx, ny, nz float64
		want       domain.WorldPosition
	}{
		{0, 0, 0, domain.WorldPosition{X: 100, Y: 64, Z: -50}},
		{1, 1, 1, domain.WorldPosition{X: 132, Y: 80, Z: -18}},
		{0.5, 0.5, 0.5, domain.WorldPosition{X: 116, Y: 72, Z: -34}},
	}
	for _, tt := range tests {
		if got := z.MapToWorld(tt.nx, tt.ny, tt.nz); got != tt.want {
			t.Errorf("MapToWorld(%v, %v, %v) = %+v, want %+v",
				tt.nx, tt.ny, tt.nz, got, tt.want)
		}
	}
}
