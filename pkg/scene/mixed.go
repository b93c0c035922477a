package scene

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/lights"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// NewMixedScene combines every primitive and material kind under three
// colored point lights
func NewMixedScene() (*Scene, error) {
	s := NewScene("mixed", geometry.CameraConfig{
		Center: core.NewVec3(0, 1.6, 4.5),
		LookAt: core.NewVec3(0, 0.5, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   45,
	})
	s.TopColor = core.NewVec3(0.15, 0.15, 0.2)
	s.BottomColor = core.NewVec3(0.05, 0.05, 0.05)
	s.Ambient = core.NewVec3(0.05, 0.05, 0.05)

	floor := s.AddMaterial(material.NewGlossy(core.NewVec3(0.7, 0.7, 0.7), 0.2, 0.3))
	white := s.AddMaterial(material.NewLambertian(core.NewVec3(0.85, 0.85, 0.85)))
	copper := s.AddMaterial(material.NewMetal(core.NewVec3(0.95, 0.64, 0.54), 0.15))
	steel := s.AddMaterial(material.NewMetal(core.NewVec3(0.6, 0.6, 0.65), 0.4))
	glow := s.AddMaterial(material.NewEmissive(core.NewVec3(1.5, 1.5, 1.2)))
	panel := s.AddMaterial(material.NewGlossy(core.NewVec3(0.3, 0.3, 0.8), 0.5, 0.05))

	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), floor)
	s.AddSphere(core.NewVec3(0, 0.6, -0.5), 0.6, white)
	s.AddSphere(core.NewVec3(-1.4, 0.45, -0.2), 0.45, copper)
	s.AddSphere(core.NewVec3(1.4, 0.45, -0.2), 0.45, steel)
	s.AddSphere(core.NewVec3(0.6, 0.15, 0.9), 0.15, glow)

	// Upright panel behind the spheres
	s.AddQuad(core.NewVec3(-2, 0, -2), core.NewVec3(4, 0, 0), core.NewVec3(0, 2, 0), panel)
	s.AddTriangle(
		core.NewVec3(-0.9, 0, 0.8),
		core.NewVec3(-0.3, 0, 1.1),
		core.NewVec3(-0.6, 0.7, 0.9),
		white,
	)

	s.AddLight(lights.NewPointLight(core.NewVec3(-3, 3, 2), core.NewVec3(1, 0.2, 0.2), 30))
	s.AddLight(lights.NewPointLight(core.NewVec3(3, 3, 2), core.NewVec3(0.2, 1, 0.2), 30))
	s.AddLight(lights.NewPointLight(core.NewVec3(0, 4, 3), core.NewVec3(0.2, 0.2, 1), 30))

	return s, nil
}
