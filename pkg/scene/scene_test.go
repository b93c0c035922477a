package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/lights"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

func testCamera() geometry.CameraConfig {
	return geometry.CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   60,
	}
}

func TestValidateRejectsDegenerateSphere(t *testing.T) {
	s := NewScene("bad", testCamera())
	m := s.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	s.AddSphere(core.NewVec3(0, 0, -1), 0, m)

	if err := s.Validate(); !errors.Is(err, geometry.ErrDegenerateGeometry) {
		t.Errorf("Validate() error = %v, want ErrDegenerateGeometry", err)
	}
}

func TestValidateRejectsDegenerateTriangle(t *testing.T) {
	s := NewScene("bad", testCamera())
	m := s.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	p := core.NewVec3(1, 1, 1)
	s.AddTriangle(p, p, core.NewVec3(2, 2, 2), m)

	if err := s.Validate(); !errors.Is(err, geometry.ErrDegenerateGeometry) {
		t.Errorf("Validate() error = %v, want ErrDegenerateGeometry", err)
	}
}

func TestValidateRejectsUnknownMaterial(t *testing.T) {
	s := NewScene("bad", testCamera())
	s.AddSphere(core.NewVec3(0, 0, -1), 1, material.ID(3))

	if err := s.Validate(); !errors.Is(err, geometry.ErrDegenerateGeometry) {
		t.Errorf("Validate() error = %v, want ErrDegenerateGeometry", err)
	}
}

func TestValidateRejectsBadMaterial(t *testing.T) {
	s := NewScene("bad", testCamera())
	s.AddMaterial(material.NewLambertian(core.NewVec3(1.5, 0, 0)))

	err := s.Validate()
	if !errors.Is(err, material.ErrInvalidMaterial) {
		t.Errorf("Validate() error = %v, want ErrInvalidMaterial", err)
	}
	if !errors.Is(err, geometry.ErrDegenerateGeometry) {
		t.Errorf("Validate() error = %v, want ErrDegenerateGeometry", err)
	}
}

func TestValidateRejectsBadAmbient(t *testing.T) {
	s := NewScene("bad", testCamera())
	s.Ambient = core.NewVec3(2, 0, 0)

	err := s.Validate()
	if !errors.Is(err, geometry.ErrDegenerateGeometry) || !errors.Is(err, material.ErrInvalidMaterial) {
		t.Errorf("Validate() error = %v, want ErrDegenerateGeometry and ErrInvalidMaterial", err)
	}
}

func TestValidateRejectsBadLight(t *testing.T) {
	s := NewScene("bad", testCamera())
	s.AddLight(lights.NewPointLight(core.NewVec3(0, 1, 0), core.NewVec3(1, 1, 1), -1))

	err := s.Validate()
	if !errors.Is(err, lights.ErrInvalidLight) {
		t.Errorf("Validate() error = %v, want ErrInvalidLight", err)
	}
	if !errors.Is(err, geometry.ErrDegenerateGeometry) {
		t.Errorf("Validate() error = %v, want ErrDegenerateGeometry", err)
	}
}

func TestValidateRejectsBadCamera(t *testing.T) {
	config := testCamera()
	config.VFov = 180
	s := NewScene("bad", config)

	if err := s.Validate(); !errors.Is(err, geometry.ErrDegenerateGeometry) {
		t.Errorf("Validate() error = %v, want ErrDegenerateGeometry for a 180 degree field of view", err)
	}
}

func TestAddQuad(t *testing.T) {
	s := NewScene("quad", testCamera())
	m := s.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	s.AddQuad(core.NewVec3(-1, -1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), m)

	if s.GetPrimitiveCount() != 2 {
		t.Fatalf("expected 2 triangles, got %d", s.GetPrimitiveCount())
	}
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}

	// Both halves of the quad should be hit
	for _, target := range []core.Vec3{core.NewVec3(0.5, -0.5, -2), core.NewVec3(-0.5, 0.5, -2)} {
		ray := core.NewRay(core.NewVec3(0, 0, 0), target)
		hit, ok := geometry.NearestHit(s.Shapes, ray)
		if !ok {
			t.Fatalf("ray towards %v missed the quad", target)
		}
		if math.Abs(hit.Point.Z+2) > 1e-9 {
			t.Errorf("hit point %v not on the quad", hit.Point)
		}
	}
}

func TestBackgroundColor(t *testing.T) {
	s := NewScene("sky", testCamera())
	s.TopColor = core.NewVec3(0, 0, 1)
	s.BottomColor = core.NewVec3(1, 1, 1)

	if got := s.BackgroundColor(core.NewVec3(0, 1, 0)); got != s.TopColor {
		t.Errorf("straight up = %v, want %v", got, s.TopColor)
	}
	if got := s.BackgroundColor(core.NewVec3(0, -1, 0)); got != s.BottomColor {
		t.Errorf("straight down = %v, want %v", got, s.BottomColor)
	}
	horizon := s.BackgroundColor(core.NewVec3(1, 0, 0))
	want := core.NewVec3(0.5, 0.5, 1)
	if horizon.Subtract(want).Length() > 1e-9 {
		t.Errorf("horizon = %v, want %v", horizon, want)
	}
}

func TestEnclosedSceneSealsCamera(t *testing.T) {
	s, err := NewEnclosedScene()
	if err != nil {
		t.Fatal(err)
	}
	// Every light must be occluded from a point next to the camera
	origin := s.CameraConfig.Center
	for i, light := range s.Lights {
		illum, ok := light.Illuminate(origin)
		if !ok {
			t.Fatalf("light %d does not reach the camera position", i)
		}
		shadow := core.NewRaySegment(origin, illum.Direction, 1e-4, illum.Distance)
		if !geometry.Occluded(s.Shapes, shadow) {
			t.Errorf("light %d reaches the camera position", i)
		}
	}
}
