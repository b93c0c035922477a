package core

import "math"

// Ray is a half-line query with a valid parametric interval [TMin, TMax]
type Ray struct {
	Origin    Vec3
	Direction Vec3 // Always unit length when built with NewRay
	TMin      float64
	TMax      float64
}

// NewRay creates a ray with a normalized direction spanning [0, +Inf)
func NewRay(origin, direction Vec3) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction.Normalize(),
		TMin:      0,
		TMax:      math.Inf(1),
	}
}

// NewRaySegment creates a ray restricted to [tMin, tMax]. Negative tMin is raised to zero.
func NewRaySegment(origin, direction Vec3, tMin, tMax float64) Ray {
	r := NewRay(origin, direction)
	r.TMin = max(0, tMin)
	r.TMax = tMax
	return r
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
