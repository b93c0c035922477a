package lights

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

func TestPointLight_InverseSquareFalloff(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 4, 0), core.NewVec3(1, 1, 1), 16)

	ill, ok := light.Illuminate(core.NewVec3(0, 0, 0))
	if !ok {
		t.Fatalf("Expected illumination")
	}

	if math.Abs(ill.Distance-4) > 1e-12 {
		t.Errorf("Expected distance 4, got %f", ill.Distance)
	}
	if ill.Direction.Subtract(core.NewVec3(0, 1, 0)).Length() > 1e-12 {
		t.Errorf("Expected direction +Y, got %v", ill.Direction)
	}
	// 16 / 4² = 1
	if math.Abs(ill.Radiance.X-1) > 1e-12 {
		t.Errorf("Expected radiance 1, got %v", ill.Radiance)
	}
}

func TestPointLight_CoincidentPoint(t *testing.T) {
	light := NewPointLight(core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1), 1)
	if _, ok := light.Illuminate(core.NewVec3(1, 1, 1)); ok {
		t.Errorf("Expected no illumination at the light position")
	}
}

func TestDirectionalLight_NoFalloff(t *testing.T) {
	light := NewDirectionalLight(core.NewVec3(0, -2, 0), core.NewVec3(1, 0.5, 0.25), 2)

	near, _ := light.Illuminate(core.NewVec3(0, 0, 0))
	far, _ := light.Illuminate(core.NewVec3(100, -50, 1000))

	if near.Radiance != far.Radiance {
		t.Errorf("Directional radiance should not depend on position: %v vs %v", near.Radiance, far.Radiance)
	}
	if !math.IsInf(near.Distance, 1) {
		t.Errorf("Expected infinite distance, got %f", near.Distance)
	}
	if near.Direction.Subtract(core.NewVec3(0, 1, 0)).Length() > 1e-12 {
		t.Errorf("Expected direction toward the light (+Y), got %v", near.Direction)
	}
}

func TestLight_Validate(t *testing.T) {
	tests := []struct {
		name        string
		light       Light
		expectError bool
	}{
		{"point", NewPointLight(core.NewVec3(0, 1, 0), core.NewVec3(1, 1, 1), 10), false},
		{"directional", NewDirectionalLight(core.NewVec3(1, -1, 0), core.NewVec3(1, 1, 1), 1), false},
		{"zero intensity", NewPointLight(core.NewVec3(0, 1, 0), core.NewVec3(1, 1, 1), 0), false},
		{"negative intensity", NewPointLight(core.NewVec3(0, 1, 0), core.NewVec3(1, 1, 1), -1), true},
		{"zero direction", NewDirectionalLight(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), 1), true},
		{"negative color", NewPointLight(core.NewVec3(0, 1, 0), core.NewVec3(-1, 1, 1), 1), true},
		{"unknown kind", Light{Kind: Kind(7), Intensity: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.light.Validate()
			if tt.expectError {
				if !errors.Is(err, ErrInvalidLight) {
					t.Errorf("Expected ErrInvalidLight, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
