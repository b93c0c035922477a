package geometry

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// TieEpsilon is the distance within which two hits count as the same hit.
// The shape declared first wins such ties.
const TieEpsilon = 1e-9

// NearestHit tests the ray against every shape and returns the closest
// intersection in [ray.TMin, ray.TMax].
func NearestHit(shapes []Shape, ray core.Ray) (HitRecord, bool) {
	var closest HitRecord
	closestSoFar := ray.TMax
	hitAnything := false

	for i, shape := range shapes {
		hit, isHit := shape.Hit(ray, ray.TMin, closestSoFar)
		if !isHit {
			continue
		}
		if hitAnything && hit.T >= closestSoFar-TieEpsilon {
			continue
		}
		hit.Index = i
		closest = hit
		closestSoFar = hit.T
		hitAnything = true
	}

	return closest, hitAnything
}

// Occluded reports whether any shape intersects the ray within its interval
func Occluded(shapes []Shape, ray core.Ray) bool {
	for _, shape := range shapes {
		if _, isHit := shape.Hit(ray, ray.TMin, ray.TMax); isHit {
			return true
		}
	}
	return false
}
