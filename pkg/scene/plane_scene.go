package scene

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/lights"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// NewPlaneScene creates a single large plane facing the camera head-on.
// Every camera ray hits it, which makes it the reference for normal visualization.
func NewPlaneScene() (*Scene, error) {
	s := NewScene("plane", geometry.CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   60,
	})
	s.TopColor = core.NewVec3(0.5, 0.7, 1.0)
	s.BottomColor = core.NewVec3(1.0, 1.0, 1.0)
	s.Ambient = core.NewVec3(0.05, 0.05, 0.05)

	gray := s.AddMaterial(material.NewLambertian(core.NewVec3(0.7, 0.7, 0.7)))
	s.AddPlane(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), gray)

	s.AddLight(lights.NewPointLight(core.NewVec3(0, 2, -2), core.NewVec3(1, 1, 1), 20))

	return s, nil
}
