package integrator

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// shadeRaytrace is Raycast plus recursive mirror reflection. Recursion
// stops at MaxDepth, where the hit falls back to direct lighting only.
func (in *Integrator) shadeRaytrace(s *scene.Scene, ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	hit, isHit := geometry.NearestHit(s.Shapes, ray)
	if !isHit {
		return s.BackgroundColor(ray.Direction)
	}

	mat := s.Material(hit.Material)
	direct := in.directLighting(s, hit, mat)
	if mat.Reflectivity <= 0 || depth >= in.config.MaxDepth {
		return direct
	}

	// A fuzzed direction below the surface is absorbed
	var reflected core.Vec3
	if direction, ok := mat.ScatterSpecular(ray.Direction, hit.Normal, sampler); ok {
		incoming := in.shadeRaytrace(s, in.spawnRay(hit, direction), depth+1, sampler)
		reflected = mat.Albedo.MultiplyVec(incoming)
	}

	return direct.Lerp(reflected, mat.Reflectivity)
}
