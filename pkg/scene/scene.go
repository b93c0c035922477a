package scene

import (
	"fmt"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/lights"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering.
// A scene is read-only once built; renderers share it across workers.
type Scene struct {
	Name         string
	Shapes       []geometry.Shape    // Primitives in declaration order
	Materials    []material.Material // Indexed by material.ID
	Lights       []lights.Light      // Delta lights
	CameraConfig geometry.CameraConfig
	TopColor     core.Vec3 // Background gradient color straight up
	BottomColor  core.Vec3 // Background gradient color straight down
	Ambient      core.Vec3 // Ambient term for the direct lighting modes
}

// NewScene creates an empty scene with the given camera
func NewScene(name string, cameraConfig geometry.CameraConfig) *Scene {
	return &Scene{
		Name:         name,
		Shapes:       make([]geometry.Shape, 0),
		Materials:    make([]material.Material, 0),
		Lights:       make([]lights.Light, 0),
		CameraConfig: cameraConfig,
	}
}

// AddMaterial registers a material and returns its ID
func (s *Scene) AddMaterial(m material.Material) material.ID {
	s.Materials = append(s.Materials, m)
	return material.ID(len(s.Materials) - 1)
}

// AddSphere adds a sphere
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.ID) {
	s.Shapes = append(s.Shapes, geometry.NewSphere(center, radius, mat))
}

// AddPlane adds an infinite plane
func (s *Scene) AddPlane(point, normal core.Vec3, mat material.ID) {
	s.Shapes = append(s.Shapes, geometry.NewPlane(point, normal, mat))
}

// AddTriangle adds a single triangle
func (s *Scene) AddTriangle(v0, v1, v2 core.Vec3, mat material.ID) {
	s.Shapes = append(s.Shapes, geometry.NewTriangle(v0, v1, v2, mat))
}

// AddQuad adds a parallelogram spanned by u and v from corner, as two triangles
func (s *Scene) AddQuad(corner, u, v core.Vec3, mat material.ID) {
	s.AddTriangle(corner, corner.Add(u), corner.Add(u).Add(v), mat)
	s.AddTriangle(corner, corner.Add(u).Add(v), corner.Add(v), mat)
}

// AddMesh appends every mesh triangle in face order
func (s *Scene) AddMesh(mesh *geometry.TriangleMesh) {
	for _, tri := range mesh.Triangles() {
		s.Shapes = append(s.Shapes, tri)
	}
}

// AddLight adds a delta light
func (s *Scene) AddLight(light lights.Light) {
	s.Lights = append(s.Lights, light)
}

// Material returns the material referenced by id
func (s *Scene) Material(id material.ID) material.Material {
	return s.Materials[id]
}

// BackgroundColor returns the gradient color seen along a missed ray
func (s *Scene) BackgroundColor(direction core.Vec3) core.Vec3 {
	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (direction.Normalize().Y + 1.0)
	return s.BottomColor.Lerp(s.TopColor, t)
}

// GetPrimitiveCount returns the number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// Validate checks every primitive, material, light and the camera.
// Resolve calls it so that broken scenes never reach the renderer.
func (s *Scene) Validate() error {
	if err := s.CameraConfig.Validate(); err != nil {
		return fmt.Errorf("scene %q: camera: %w", s.Name, err)
	}

	for i, m := range s.Materials {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("scene %q: material %d: %w: %w", s.Name, i, geometry.ErrDegenerateGeometry, err)
		}
	}

	for i, shape := range s.Shapes {
		if err := shape.Validate(); err != nil {
			return fmt.Errorf("scene %q: shape %d: %w", s.Name, i, err)
		}
		if id := shape.MaterialID(); id < 0 || int(id) >= len(s.Materials) {
			return fmt.Errorf("scene %q: shape %d: %w: unknown material %d",
				s.Name, i, geometry.ErrDegenerateGeometry, id)
		}
	}

	for i, light := range s.Lights {
		if err := light.Validate(); err != nil {
			return fmt.Errorf("scene %q: light %d: %w: %w", s.Name, i, geometry.ErrDegenerateGeometry, err)
		}
	}

	if !s.Ambient.InRange(0, 1) {
		return fmt.Errorf("scene %q: %w: %w: ambient %v outside [0,1]",
			s.Name, geometry.ErrDegenerateGeometry, material.ErrInvalidMaterial, s.Ambient)
	}

	return nil
}
