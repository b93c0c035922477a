package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.ID
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.ID) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !s.acceptRoot(root, tMin, tMax) {
		root = (-halfB + sqrtD) / a
		if !s.acceptRoot(root, tMin, tMax) {
			return HitRecord{}, false
		}
	}

	hitRecord := HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Outward normal (from center to hit point)
	outwardNormal := hitRecord.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// acceptRoot rejects non-positive roots as well as roots outside [tMin, tMax]
func (s *Sphere) acceptRoot(root, tMin, tMax float64) bool {
	return root > 0 && root >= tMin && root <= tMax
}

// Validate checks that the radius is a positive finite number
func (s *Sphere) Validate() error {
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return fmt.Errorf("%w: sphere radius %f must be positive", ErrDegenerateGeometry, s.Radius)
	}
	return nil
}

// MaterialID returns the sphere's material
func (s *Sphere) MaterialID() material.ID {
	return s.Material
}
