package scene

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/lights"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// NewCornellScene creates a Cornell box: a 2x2x2 room of planes with a
// red left wall, a green right wall and an emissive ceiling panel.
// The open side faces the camera.
func NewCornellScene() (*Scene, error) {
	s := NewScene("cornell", geometry.CameraConfig{
		Center: core.NewVec3(0, 1, 3.2),
		LookAt: core.NewVec3(0, 1, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   40,
	})
	// Black background
	s.TopColor = core.NewVec3(0, 0, 0)
	s.BottomColor = core.NewVec3(0, 0, 0)
	s.Ambient = core.NewVec3(0.03, 0.03, 0.03)

	white := s.AddMaterial(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	red := s.AddMaterial(material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05)))
	green := s.AddMaterial(material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15)))
	mirror := s.AddMaterial(material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0))
	panel := s.AddMaterial(material.NewEmissive(core.NewVec3(12, 11, 9)))

	// Emissive panel hangs just below the ceiling
	s.AddQuad(core.NewVec3(-0.3, 1.999, -1.3), core.NewVec3(0.6, 0, 0), core.NewVec3(0, 0, 0.6), panel)

	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), white)    // floor
	s.AddPlane(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0), white)   // ceiling
	s.AddPlane(core.NewVec3(0, 0, -2), core.NewVec3(0, 0, 1), white)   // back wall
	s.AddPlane(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0), red)     // left wall
	s.AddPlane(core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0), green)   // right wall

	s.AddSphere(core.NewVec3(-0.4, 0.35, -1.2), 0.35, mirror)
	s.AddSphere(core.NewVec3(0.45, 0.3, -0.6), 0.3, white)

	s.AddLight(lights.NewPointLight(core.NewVec3(0, 1.8, -1), core.NewVec3(1.0, 0.92, 0.8), 1.2))

	return s, nil
}
