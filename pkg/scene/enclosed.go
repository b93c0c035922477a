package scene

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/lights"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// EnclosedAlbedo is the albedo of every surface inside the enclosed scene
var EnclosedAlbedo = core.NewVec3(0.8, 0.8, 0.8)

// EnclosedAmbient is the ambient term of the enclosed scene
var EnclosedAmbient = core.NewVec3(0.1, 0.1, 0.1)

// NewEnclosedScene seals the camera and a few objects inside an opaque
// sphere while every light sits outside it. Direct lighting sees only
// the ambient term.
func NewEnclosedScene() (*Scene, error) {
	s := NewScene("enclosed", geometry.CameraConfig{
		Center: core.NewVec3(0, 0, 2),
		LookAt: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   70,
	})
	s.TopColor = core.NewVec3(0.5, 0.7, 1.0)
	s.BottomColor = core.NewVec3(1, 1, 1)
	s.Ambient = EnclosedAmbient

	matte := s.AddMaterial(material.NewLambertian(EnclosedAlbedo))

	s.AddSphere(core.NewVec3(0, 0, 0), 5, matte)
	s.AddSphere(core.NewVec3(0, -0.5, -1), 1, matte)
	s.AddTriangle(
		core.NewVec3(-2, -1.5, -2),
		core.NewVec3(2, -1.5, -2),
		core.NewVec3(0, 1.5, -2.5),
		matte,
	)

	s.AddLight(lights.NewPointLight(core.NewVec3(0, 20, 0), core.NewVec3(1, 1, 1), 500))
	s.AddLight(lights.NewPointLight(core.NewVec3(10, 0, 10), core.NewVec3(1, 0.5, 0.5), 200))
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1), 2))

	return s, nil
}
