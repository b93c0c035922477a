package scene

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// NewEmissiveScene has no delta lights at all. Glowing spheres are the only
// light source, so it is mostly dark outside Pathtracing mode.
func NewEmissiveScene() (*Scene, error) {
	s := NewScene("emissive", geometry.CameraConfig{
		Center: core.NewVec3(0, 1.2, 4),
		LookAt: core.NewVec3(0, 0.5, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   45,
	})
	s.TopColor = core.NewVec3(0.01, 0.01, 0.02)
	s.BottomColor = core.NewVec3(0, 0, 0)
	s.Ambient = core.NewVec3(0.02, 0.02, 0.02)

	floor := s.AddMaterial(material.NewLambertian(core.NewVec3(0.6, 0.6, 0.6)))
	warm := s.AddMaterial(material.NewEmissive(core.NewVec3(4, 2.5, 1)))
	cool := s.AddMaterial(material.NewEmissive(core.NewVec3(1, 2, 4)))
	white := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.8)))
	metal := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.1))

	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), floor)
	s.AddSphere(core.NewVec3(-1.2, 0.4, -0.5), 0.4, warm)
	s.AddSphere(core.NewVec3(1.2, 0.4, -0.5), 0.4, cool)
	s.AddSphere(core.NewVec3(0, 0.5, -0.8), 0.5, white)
	s.AddSphere(core.NewVec3(0, 0.25, 0.5), 0.25, metal)

	return s, nil
}
