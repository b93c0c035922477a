package loaders

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

const tetrahedronPLY = `ply
format ascii 1.0
comment unit tetrahedron
element vertex 4
property float x
property float y
property float z
element face 4
property list uchar int vertex_indices
end_header
0 0 0
1 0 0
0 1 0
0 0 1
3 0 2 1
3 0 1 3
3 0 3 2
3 1 2 3
`

func TestReadPLY_Tetrahedron(t *testing.T) {
	data, err := ReadPLY(strings.NewReader(tetrahedronPLY))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(data.Vertices) != 4 {
		t.Errorf("Expected 4 vertices, got %d", len(data.Vertices))
	}
	if len(data.Faces) != 12 {
		t.Errorf("Expected 12 face indices, got %d", len(data.Faces))
	}
	if data.Vertices[3] != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected last vertex (0,0,1), got %v", data.Vertices[3])
	}
}

func TestReadPLY_FanTriangulatesQuads(t *testing.T) {
	src := `ply
format ascii 1.0
element vertex 4
property float x
property float y
property float z
property float nx
element face 1
property list uchar int vertex_indices
end_header
0 0 0 9
1 0 0 9
1 1 0 9
0 1 0 9
4 0 1 2 3
`
	data, err := ReadPLY(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []int{0, 1, 2, 0, 2, 3}
	if len(data.Faces) != len(expected) {
		t.Fatalf("Expected %d indices, got %d", len(expected), len(data.Faces))
	}
	for i := range expected {
		if data.Faces[i] != expected[i] {
			t.Errorf("Index %d: expected %d, got %d", i, expected[i], data.Faces[i])
		}
	}
}

func TestReadPLY_Errors(t *testing.T) {
	tests := []struct {
		name        string
		src         string
		unsupported bool
	}{
		{"missing magic", "format ascii 1.0\nend_header\n", true},
		{"binary format", "ply\nformat binary_little_endian 1.0\nelement vertex 0\nend_header\n", true},
		{"no end_header", "ply\nformat ascii 1.0\n", true},
		{"unknown element", "ply\nformat ascii 1.0\nelement edge 1\nend_header\n", true},
		{"missing coordinates", "ply\nformat ascii 1.0\nelement vertex 1\nproperty float x\nend_header\n0\n", true},
		{"truncated vertices", "ply\nformat ascii 1.0\nelement vertex 2\nproperty float x\nproperty float y\nproperty float z\nend_header\n0 0 0\n", false},
		{"bad coordinate", "ply\nformat ascii 1.0\nelement vertex 1\nproperty float x\nproperty float y\nproperty float z\nend_header\n0 a 0\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPLY(strings.NewReader(tt.src))
			if err == nil {
				t.Fatalf("Expected error")
			}
			if tt.unsupported && !errors.Is(err, ErrUnsupportedPLY) {
				t.Errorf("Expected ErrUnsupportedPLY, got %v", err)
			}
		})
	}
}

func TestReadPLY_TruncatedIsUnexpectedEOF(t *testing.T) {
	src := "ply\nformat ascii 1.0\nelement vertex 1\nproperty float x\nproperty float y\nproperty float z\nend_header\n"
	_, err := ReadPLY(strings.NewReader(src))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Expected io.ErrUnexpectedEOF, got %v", err)
	}
}
