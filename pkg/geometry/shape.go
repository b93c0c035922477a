package geometry

import (
	"errors"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// ErrDegenerateGeometry is returned when a primitive violates its construction invariant
var ErrDegenerateGeometry = errors.New("geometry: degenerate geometry")

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3   // Point of intersection
	Normal    core.Vec3   // Unit surface normal, facing against the incoming ray
	T         float64     // Parameter t along the ray
	FrontFace bool        // Whether ray hit the front face
	Material  material.ID // Material of the hit object
	Index     int         // Declaration index of the shape that was hit
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape is implemented by the sphere, plane and triangle primitives
type Shape interface {
	// Hit returns the nearest intersection with t in [tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool)
	// Validate reports ErrDegenerateGeometry when the shape cannot be intersected reliably
	Validate() error
	// MaterialID returns the material reference carried by the shape
	MaterialID() material.ID
}
