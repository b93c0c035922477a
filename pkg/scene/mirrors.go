package scene

import (
	"math"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/lights"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// NewMirrorScene places mirror spheres inside a larger mirror sphere that
// also encloses the camera. Most camera rays never escape, so the image
// depends entirely on the recursion bound of the integrator.
func NewMirrorScene() (*Scene, error) {
	s := NewScene("mirrors", geometry.CameraConfig{
		Center: core.NewVec3(0, 0.5, 3),
		LookAt: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   60,
	})
	s.TopColor = core.NewVec3(0.2, 0.2, 0.3)
	s.BottomColor = core.NewVec3(0.05, 0.05, 0.1)
	s.Ambient = core.NewVec3(0.05, 0.05, 0.05)

	shell := s.AddMaterial(material.NewMetal(core.NewVec3(0.95, 0.95, 0.95), 0))
	silver := s.AddMaterial(material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0))
	tinted := s.AddMaterial(material.NewMetal(core.NewVec3(0.9, 0.6, 0.5), 0))
	glossy := s.AddMaterial(material.NewGlossy(core.NewVec3(0.3, 0.5, 0.9), 0.7, 0.05))

	s.AddSphere(core.NewVec3(0, 0, 0), 8, shell)
	s.AddSphere(core.NewVec3(0, 0, 0), 1, silver)

	// Ring of smaller mirrors around the center sphere
	const ring = 5
	for i := 0; i < ring; i++ {
		angle := 2 * math.Pi * float64(i) / ring
		center := core.NewVec3(2.2*math.Cos(angle), 0, 2.2*math.Sin(angle)-0.5)
		mat := tinted
		if i%2 == 1 {
			mat = glossy
		}
		s.AddSphere(center, 0.5, mat)
	}

	s.AddLight(lights.NewPointLight(core.NewVec3(0, 3, 2), core.NewVec3(1, 1, 1), 15))

	return s, nil
}
