package scene

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/lights"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// NewSunsetScene lights a few objects with a low warm sun under an
// orange-to-purple sky, which produces long shadows
func NewSunsetScene() (*Scene, error) {
	s := NewScene("sunset", geometry.CameraConfig{
		Center: core.NewVec3(0, 1, 5),
		LookAt: core.NewVec3(0, 0.8, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   50,
	})
	s.TopColor = core.NewVec3(0.35, 0.2, 0.5)
	s.BottomColor = core.NewVec3(1.0, 0.55, 0.25)
	s.Ambient = core.NewVec3(0.08, 0.05, 0.06)

	sand := s.AddMaterial(material.NewLambertian(core.NewVec3(0.76, 0.6, 0.42)))
	stone := s.AddMaterial(material.NewLambertian(core.NewVec3(0.55, 0.5, 0.48)))
	bronze := s.AddMaterial(material.NewGlossy(core.NewVec3(0.8, 0.5, 0.3), 0.6, 0.2))

	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), sand)

	// Obelisk: four tapered faces built from quads and a pointed cap
	base, top, height := 0.35, 0.22, 2.2
	corners := [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	cx, cz := -1.0, -1.0
	for i := 0; i < 4; i++ {
		a, b := corners[i], corners[(i+1)%4]
		b0 := core.NewVec3(cx+a[0]*base, 0, cz+a[1]*base)
		b1 := core.NewVec3(cx+b[0]*base, 0, cz+b[1]*base)
		t0 := core.NewVec3(cx+a[0]*top, height, cz+a[1]*top)
		t1 := core.NewVec3(cx+b[0]*top, height, cz+b[1]*top)
		s.AddTriangle(b0, t1, b1, stone)
		s.AddTriangle(b0, t0, t1, stone)
	}
	apex := core.NewVec3(cx, height+0.35, cz)
	for i := 0; i < 4; i++ {
		a, b := corners[i], corners[(i+1)%4]
		t0 := core.NewVec3(cx+a[0]*top, height, cz+a[1]*top)
		t1 := core.NewVec3(cx+b[0]*top, height, cz+b[1]*top)
		s.AddTriangle(t0, apex, t1, stone)
	}

	s.AddSphere(core.NewVec3(0.9, 0.6, -0.2), 0.6, bronze)
	s.AddSphere(core.NewVec3(-0.1, 0.25, 1), 0.25, stone)

	s.AddLight(lights.NewDirectionalLight(core.NewVec3(-1, -0.2, -0.3), core.NewVec3(1.0, 0.6, 0.3), 1.5))
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(0.3, -1, 0.2), core.NewVec3(0.4, 0.4, 0.7), 0.15))

	return s, nil
}
