package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// ParallelEpsilon is the |direction·normal| below which a ray counts as parallel to a plane
const ParallelEpsilon = 1e-8

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3   // A point on the plane
	Normal   core.Vec3   // Unit normal vector
	Material material.ID // Material of the plane
}

// NewPlane creates a new plane. The normal is normalized; a zero normal
// is kept as-is and reported by Validate.
func NewPlane(point, normal core.Vec3, mat material.ID) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: mat,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray is parallel to the plane
	if math.Abs(denominator) < ParallelEpsilon {
		return HitRecord{}, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return HitRecord{}, false
	}

	hitRecord := HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}

// Validate checks that the normal has unit length
func (p *Plane) Validate() error {
	if !p.Normal.IsUnit(1e-6) {
		return fmt.Errorf("%w: plane normal %v is not unit length", ErrDegenerateGeometry, p.Normal)
	}
	return nil
}

// MaterialID returns the plane's material
func (p *Plane) MaterialID() material.ID {
	return p.Material
}
