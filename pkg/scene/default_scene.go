package scene

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/lights"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// NewDefaultScene creates a default scene with spheres, ground, and camera
func NewDefaultScene() (*Scene, error) {
	s := NewScene("spheres", geometry.CameraConfig{
		Center: core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
		LookAt: core.NewVec3(0, 0.5, -1), // Look at the sphere center
		Up:     core.NewVec3(0, 1, 0),
		VFov:   50,
	})
	s.TopColor = core.NewVec3(0.5, 0.7, 1.0)
	s.BottomColor = core.NewVec3(1.0, 1.0, 1.0)
	s.Ambient = core.NewVec3(0.08, 0.08, 0.1)

	// Create materials
	lambertianGreen := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6)))
	lambertianRed := s.AddMaterial(material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2)))
	lambertianBlue := s.AddMaterial(material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	metalSilver := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0))
	metalGold := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3))

	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), lambertianGreen)
	s.AddSphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianRed)
	s.AddSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver)
	s.AddSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold)
	s.AddSphere(core.NewVec3(-0.4, 0.2, -0.3), 0.2, lambertianBlue)

	s.AddLight(lights.NewPointLight(core.NewVec3(2, 4, 1), core.NewVec3(1.0, 0.95, 0.9), 25))
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(-0.3, -1, -0.5), core.NewVec3(0.6, 0.7, 1.0), 0.3))

	return s, nil
}
