package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// ErrUnsupportedPLY is returned for PLY variants this reader does not handle
var ErrUnsupportedPLY = errors.New("loaders: unsupported PLY file")

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format      string // Only "ascii" is supported
	Version     string // Usually "1.0"
	VertexCount int
	FaceCount   int
	VertexProps []PLYProperty
	FaceProps   []PLYProperty
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
	DataType string // For list properties, the type of the data
}

// PLYData contains the vertex positions and triangulated faces of a PLY file
type PLYData struct {
	Vertices []core.Vec3 // Vertex positions (x, y, z)
	Faces    []int       // Triangle indices (3 per triangle)
}

// ReadPLY parses an ASCII PLY stream. Polygons with more than three
// vertices are fan-triangulated. Vertex properties other than x, y, z are skipped.
func ReadPLY(r io.Reader) (*PLYData, error) {
	scanner := bufio.NewScanner(r)

	header, err := parsePLYHeader(scanner)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	data := &PLYData{
		Vertices: make([]core.Vec3, 0, header.VertexCount),
		Faces:    make([]int, 0, header.FaceCount*3),
	}

	if err := readASCIIVertices(scanner, header, data); err != nil {
		return nil, err
	}
	if err := readASCIIFaces(scanner, header, data); err != nil {
		return nil, err
	}

	return data, nil
}

// parsePLYHeader consumes the header lines up to and including end_header
func parsePLYHeader(scanner *bufio.Scanner) (*PLYHeader, error) {
	header := &PLYHeader{}

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "ply" {
		return nil, fmt.Errorf("%w: missing ply magic", ErrUnsupportedPLY)
	}

	var currentElement string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "end_header" {
			if header.Format != "ascii" {
				return nil, fmt.Errorf("%w: format %q", ErrUnsupportedPLY, header.Format)
			}
			return header, nil
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) >= 3 {
				header.Format = parts[1]
				header.Version = parts[2]
			}
		case "comment", "obj_info":
			// Ignore comments
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element line: %q", line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}
			currentElement = parts[1]
			switch currentElement {
			case "vertex":
				header.VertexCount = count
			case "face":
				header.FaceCount = count
			default:
				return nil, fmt.Errorf("%w: element %q", ErrUnsupportedPLY, currentElement)
			}
		case "property":
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("failed to parse property: %w", err)
			}
			switch currentElement {
			case "vertex":
				header.VertexProps = append(header.VertexProps, prop)
			case "face":
				header.FaceProps = append(header.FaceProps, prop)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}
	return nil, fmt.Errorf("%w: missing end_header", ErrUnsupportedPLY)
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("invalid property definition")
	}

	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("invalid list property definition")
		}
		return PLYProperty{
			IsList:   true,
			ListType: parts[1],
			DataType: parts[2],
			Name:     parts[3],
		}, nil
	}

	return PLYProperty{Type: parts[0], Name: parts[1]}, nil
}

func readASCIIVertices(scanner *bufio.Scanner, header *PLYHeader, data *PLYData) error {
	xi, yi, zi := -1, -1, -1
	for i, prop := range header.VertexProps {
		switch prop.Name {
		case "x":
			xi = i
		case "y":
			yi = i
		case "z":
			zi = i
		}
	}
	if header.VertexCount > 0 && (xi < 0 || yi < 0 || zi < 0) {
		return fmt.Errorf("%w: vertex element lacks x, y, z", ErrUnsupportedPLY)
	}

	for i := 0; i < header.VertexCount; i++ {
		fields, err := nextFields(scanner)
		if err != nil {
			return fmt.Errorf("vertex %d: %w", i, err)
		}
		if len(fields) < len(header.VertexProps) {
			return fmt.Errorf("vertex %d: expected %d values, got %d", i, len(header.VertexProps), len(fields))
		}

		var coords [3]float64
		for j, idx := range [3]int{xi, yi, zi} {
			coords[j], err = strconv.ParseFloat(fields[idx], 64)
			if err != nil {
				return fmt.Errorf("vertex %d: invalid coordinate %q", i, fields[idx])
			}
		}
		data.Vertices = append(data.Vertices, core.NewVec3(coords[0], coords[1], coords[2]))
	}
	return nil
}

func readASCIIFaces(scanner *bufio.Scanner, header *PLYHeader, data *PLYData) error {
	for i := 0; i < header.FaceCount; i++ {
		fields, err := nextFields(scanner)
		if err != nil {
			return fmt.Errorf("face %d: %w", i, err)
		}

		count, err := strconv.Atoi(fields[0])
		if err != nil || count < 3 || len(fields) < count+1 {
			return fmt.Errorf("face %d: invalid vertex list %q", i, strings.Join(fields, " "))
		}

		indices := make([]int, count)
		for j := range indices {
			indices[j], err = strconv.Atoi(fields[j+1])
			if err != nil {
				return fmt.Errorf("face %d: invalid index %q", i, fields[j+1])
			}
		}

		for j := 1; j+1 < count; j++ {
			data.Faces = append(data.Faces, indices[0], indices[j], indices[j+1])
		}
	}
	return nil
}

// nextFields returns the fields of the next non-empty line
func nextFields(scanner *bufio.Scanner) ([]string, error) {
	for scanner.Scan() {
		if fields := strings.Fields(scanner.Text()); len(fields) > 0 {
			return fields, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.ErrUnexpectedEOF
}
