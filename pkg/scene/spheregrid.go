package scene

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/lights"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// gridSize is the number of spheres per row and column
const gridSize = 4

// NewSphereGridScene creates a grid of spheres sweeping reflectivity
// along rows and roughness along columns
func NewSphereGridScene() (*Scene, error) {
	s := NewScene("spheregrid", geometry.CameraConfig{
		Center: core.NewVec3(0, 4.5, 5.5),
		LookAt: core.NewVec3(0, 0, -0.5),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   45,
	})
	s.TopColor = core.NewVec3(0.6, 0.75, 1.0)
	s.BottomColor = core.NewVec3(0.9, 0.9, 0.9)
	s.Ambient = core.NewVec3(0.06, 0.06, 0.06)

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.45, 0.45, 0.5)))
	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground)

	spacing := 1.2
	offset := spacing * float64(gridSize-1) / 2
	for row := 0; row < gridSize; row++ {
		reflectivity := float64(row) / float64(gridSize-1)
		for col := 0; col < gridSize; col++ {
			roughness := float64(col) / float64(gridSize-1) * 0.6
			// Hue shifts across the grid so neighbors are distinguishable
			albedo := core.NewVec3(
				0.3+0.6*float64(col)/float64(gridSize-1),
				0.4,
				0.9-0.6*float64(row)/float64(gridSize-1),
			)
			mat := s.AddMaterial(material.NewGlossy(albedo, reflectivity, roughness))
			center := core.NewVec3(float64(col)*spacing-offset, 0.45, float64(row)*spacing-offset-0.5)
			s.AddSphere(center, 0.45, mat)
		}
	}

	s.AddLight(lights.NewPointLight(core.NewVec3(-3, 6, 3), core.NewVec3(1, 1, 1), 60))
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(1, -1, -1), core.NewVec3(1, 0.95, 0.85), 0.5))

	return s, nil
}
