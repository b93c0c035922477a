package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

func quadVertices() []core.Vec3 {
	return []core.Vec3{
		core.NewVec3(0, 0, 0), // 0
		core.NewVec3(1, 0, 0), // 1
		core.NewVec3(1, 1, 0), // 2
		core.NewVec3(0, 1, 0), // 3
	}
}

func TestTriangleMesh_Creation(t *testing.T) {
	faces := []int{
		0, 1, 2, // first triangle
		0, 2, 3, // second triangle
	}

	mesh, err := NewTriangleMesh(quadVertices(), faces, 4, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mesh.GetTriangleCount() != 2 {
		t.Errorf("Expected 2 triangles, got %d", mesh.GetTriangleCount())
	}
	for i, tri := range mesh.Triangles() {
		if tri.MaterialID() != 4 {
			t.Errorf("Triangle %d: expected material 4, got %d", i, tri.MaterialID())
		}
	}
}

func TestTriangleMesh_Options(t *testing.T) {
	mesh, err := NewTriangleMesh(quadVertices(), []int{0, 1, 2}, 0, &TriangleMeshOptions{
		Scale:  2,
		Offset: core.NewVec3(0, 0, -5),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tri := mesh.Triangles()[0]
	if tri.V1.Subtract(core.NewVec3(2, 0, -5)).Length() > 1e-12 {
		t.Errorf("Expected transformed vertex (2,0,-5), got %v", tri.V1)
	}

	hit, isHit := tri.Hit(core.NewRay(core.NewVec3(1.5, 0.5, 0), core.NewVec3(0, 0, -1)), 0, math.Inf(1))
	if !isHit || math.Abs(hit.T-5) > 1e-9 {
		t.Errorf("Expected hit at t=5, got hit=%t t=%f", isHit, hit.T)
	}
}

func TestTriangleMesh_InvalidFaces(t *testing.T) {
	tests := []struct {
		name  string
		faces []int
	}{
		{"not a multiple of three", []int{0, 1}},
		{"index out of range", []int{0, 1, 9}},
		{"negative index", []int{0, -1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTriangleMesh(quadVertices(), tt.faces, 0, nil)
			if !errors.Is(err, ErrDegenerateGeometry) {
				t.Errorf("Expected ErrDegenerateGeometry, got %v", err)
			}
		})
	}
}
