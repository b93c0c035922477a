package scene

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/lights"
	"github.com/df07/go-interactive-raytracer/pkg/loaders"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

//go:embed assets/icosahedron.ply
var icosahedronPLY []byte

// NewTriangleMeshScene creates a scene built from triangle meshes:
// a hand-built pyramid and an icosahedron loaded from an embedded PLY file
func NewTriangleMeshScene() (*Scene, error) {
	s := NewScene("triangles", geometry.CameraConfig{
		Center: core.NewVec3(0, 1.5, 4),
		LookAt: core.NewVec3(0, 0.6, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   45,
	})
	s.TopColor = core.NewVec3(0.5, 0.7, 1.0)
	s.BottomColor = core.NewVec3(1.0, 1.0, 1.0)
	s.Ambient = core.NewVec3(0.06, 0.06, 0.06)

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	orange := s.AddMaterial(material.NewLambertian(core.NewVec3(0.85, 0.45, 0.15)))
	teal := s.AddMaterial(material.NewGlossy(core.NewVec3(0.2, 0.7, 0.7), 0.3, 0.1))
	chrome := s.AddMaterial(material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.05))

	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground)

	// Square pyramid with counter-clockwise winding seen from outside
	pyramidVertices := []core.Vec3{
		core.NewVec3(-0.6, 0, -0.6),
		core.NewVec3(0.6, 0, -0.6),
		core.NewVec3(0.6, 0, 0.6),
		core.NewVec3(-0.6, 0, 0.6),
		core.NewVec3(0, 1.1, 0),
	}
	pyramidFaces := []int{
		0, 4, 1,
		1, 4, 2,
		2, 4, 3,
		3, 4, 0,
	}
	pyramid, err := geometry.NewTriangleMesh(pyramidVertices, pyramidFaces, orange, &geometry.TriangleMeshOptions{
		Scale:  1,
		Offset: core.NewVec3(-1.2, 0, -0.5),
	})
	if err != nil {
		return nil, fmt.Errorf("pyramid: %w", err)
	}
	s.AddMesh(pyramid)

	plyData, err := loaders.ReadPLY(bytes.NewReader(icosahedronPLY))
	if err != nil {
		return nil, fmt.Errorf("icosahedron: %w", err)
	}
	icosahedron, err := geometry.NewTriangleMesh(plyData.Vertices, plyData.Faces, teal, &geometry.TriangleMeshOptions{
		Scale:  0.4,
		Offset: core.NewVec3(1.1, 0.6, -0.3),
	})
	if err != nil {
		return nil, fmt.Errorf("icosahedron: %w", err)
	}
	s.AddMesh(icosahedron)

	s.AddSphere(core.NewVec3(0, 0.35, 0.4), 0.35, chrome)

	s.AddLight(lights.NewPointLight(core.NewVec3(2, 4, 3), core.NewVec3(1, 1, 1), 35))
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(-1, -2, -1), core.NewVec3(0.9, 0.9, 1.0), 0.4))

	return s, nil
}
