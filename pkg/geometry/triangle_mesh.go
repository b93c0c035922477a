package geometry

import (
	"fmt"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// TriangleMesh is an indexed triangle list. It carries no acceleration
// structure: its triangles are added to a scene one by one, in face order,
// so they take part in the usual declaration-order tie-break.
type TriangleMesh struct {
	triangles []*Triangle
}

// TriangleMeshOptions contains optional transforms applied to the vertices
type TriangleMeshOptions struct {
	Scale  float64   // Uniform scale about the origin, zero means 1
	Offset core.Vec3 // Translation applied after scaling
}

// NewTriangleMesh creates a mesh from vertices and face indices.
// Each group of 3 indices forms a triangle.
func NewTriangleMesh(vertices []core.Vec3, faces []int, mat material.ID, options *TriangleMeshOptions) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("%w: face index count %d is not a multiple of 3", ErrDegenerateGeometry, len(faces))
	}

	workingVertices := vertices
	if options != nil {
		workingVertices = transformVertices(vertices, *options)
	}

	mesh := &TriangleMesh{triangles: make([]*Triangle, 0, len(faces)/3)}
	for i := 0; i < len(faces); i += 3 {
		for _, idx := range faces[i : i+3] {
			if idx < 0 || idx >= len(workingVertices) {
				return nil, fmt.Errorf("%w: face %d references vertex %d of %d", ErrDegenerateGeometry, i/3, idx, len(workingVertices))
			}
		}
		mesh.triangles = append(mesh.triangles, NewTriangle(
			workingVertices[faces[i]],
			workingVertices[faces[i+1]],
			workingVertices[faces[i+2]],
			mat,
		))
	}

	return mesh, nil
}

func transformVertices(vertices []core.Vec3, options TriangleMeshOptions) []core.Vec3 {
	scale := options.Scale
	if scale == 0 {
		scale = 1
	}
	out := make([]core.Vec3, len(vertices))
	for i, v := range vertices {
		out[i] = v.Multiply(scale).Add(options.Offset)
	}
	return out
}

// Triangles returns the mesh triangles in face order
func (m *TriangleMesh) Triangles() []*Triangle {
	return m.triangles
}

// GetTriangleCount returns the number of triangles in the mesh
func (m *TriangleMesh) GetTriangleCount() int {
	return len(m.triangles)
}
