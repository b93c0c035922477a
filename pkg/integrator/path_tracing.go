package integrator

import (
	"math"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/material"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// shadePath is a unidirectional path tracer. Each bounce picks the specular
// lobe with probability equal to the reflectivity and the diffuse lobe
// otherwise, so the lobe weights need no further scaling.
func (in *Integrator) shadePath(s *scene.Scene, ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth >= in.config.PathMaxDepth {
		return core.Vec3{}
	}

	hit, isHit := geometry.NearestHit(s.Shapes, ray)
	if !isHit {
		return s.BackgroundColor(ray.Direction)
	}

	mat := s.Material(hit.Material)
	emitted := mat.Emission
	if mat.Albedo.IsZero() {
		return emitted // Nothing is reflected
	}

	shouldTerminate, compensation := in.applyRussianRoulette(depth, mat, sampler.Get1D())
	if shouldTerminate {
		return emitted
	}

	var scattered core.Vec3
	if mat.IsSpecular() && sampler.Get1D() < mat.Reflectivity {
		scattered = in.specularBounce(s, ray, hit, mat, depth, sampler)
	} else {
		scattered = in.diffuseBounce(s, hit, mat, depth, sampler)
	}

	return emitted.Add(scattered.Multiply(compensation))
}

func (in *Integrator) specularBounce(s *scene.Scene, ray core.Ray, hit geometry.HitRecord, mat material.Material, depth int, sampler core.Sampler) core.Vec3 {
	direction, ok := mat.ScatterSpecular(ray.Direction, hit.Normal, sampler)
	if !ok {
		return core.Vec3{}
	}
	incoming := in.shadePath(s, in.spawnRay(hit, direction), depth+1, sampler)
	return mat.Albedo.MultiplyVec(incoming)
}

// diffuseBounce combines next-event estimation of the delta lights with a
// cosine-weighted indirect bounce. Delta lights can never be hit by the
// bounce, so the two estimates do not overlap.
func (in *Integrator) diffuseBounce(s *scene.Scene, hit geometry.HitRecord, mat material.Material, depth int, sampler core.Sampler) core.Vec3 {
	direct := in.sampleLights(s, hit, mat.Albedo)

	// Cosine-weighted sampling cancels the cosine and 1/pi of the Lambertian BRDF
	direction := mat.ScatterDiffuse(hit.Normal, sampler)
	incoming := in.shadePath(s, in.spawnRay(hit, direction), depth+1, sampler)

	return direct.Add(mat.Albedo.MultiplyVec(incoming))
}

// applyRussianRoulette decides whether to end the path at this bounce.
// Returns (shouldTerminate, compensationFactor).
func (in *Integrator) applyRussianRoulette(depth int, mat material.Material, u float64) (bool, float64) {
	if depth < in.config.RussianRouletteMinBounces {
		return false, 1.0
	}

	survivalProb := SurvivalProbability(mat)
	if u > survivalProb {
		return true, 0.0
	}
	return false, 1.0 / survivalProb
}

// SurvivalProbability is the Russian roulette survival chance after a hit
// on mat: its brightest albedo channel, kept within [0.05, 0.95]
func SurvivalProbability(mat material.Material) float64 {
	return math.Min(0.95, math.Max(0.05, mat.Albedo.MaxComponent()))
}
