package geometry

import (
	"fmt"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// degenerateAreaEpsilon bounds |edge1 × edge2| for collinear vertices
const degenerateAreaEpsilon = 1e-12

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3   // The three vertices
	Material   material.ID // Material of the triangle
	normal     core.Vec3   // Cached normal vector
}

// NewTriangle creates a new triangle from three vertices.
// The front face is the one seen with the vertices in counter-clockwise order.
func NewTriangle(v0, v1, v2 core.Vec3, mat material.ID) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: mat,
	}
	t.normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return t
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if a > -epsilon && a < epsilon {
		return HitRecord{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return HitRecord{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return HitRecord{}, false
	}

	tParam := f * edge2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return HitRecord{}, false
	}

	hitRecord := HitRecord{
		T:        tParam,
		Point:    ray.At(tParam),
		Material: t.Material,
	}
	hitRecord.SetFaceNormal(ray, t.normal)

	return hitRecord, true
}

// Validate rejects triangles whose vertices are collinear
func (t *Triangle) Validate() error {
	area := t.V1.Subtract(t.V0).Cross(t.V2.Subtract(t.V0)).Length()
	if area < degenerateAreaEpsilon {
		return fmt.Errorf("%w: triangle vertices %v, %v, %v are collinear", ErrDegenerateGeometry, t.V0, t.V1, t.V2)
	}
	return nil
}

// MaterialID returns the triangle's material
func (t *Triangle) MaterialID() material.ID {
	return t.Material
}

// GetNormal returns the triangle's normal vector
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}
