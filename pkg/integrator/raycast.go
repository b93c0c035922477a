package integrator

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/material"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

func (in *Integrator) shadeRaycast(s *scene.Scene, ray core.Ray) core.Vec3 {
	hit, isHit := geometry.NearestHit(s.Shapes, ray)
	if !isHit {
		return s.BackgroundColor(ray.Direction)
	}
	return in.directLighting(s, hit, s.Material(hit.Material))
}

// directLighting returns emission + ambient + the unshadowed delta lights
func (in *Integrator) directLighting(s *scene.Scene, hit geometry.HitRecord, mat material.Material) core.Vec3 {
	color := mat.Emission.Add(s.Ambient.MultiplyVec(mat.Albedo))
	return color.Add(in.sampleLights(s, hit, mat.Albedo))
}

// sampleLights sums albedo * radiance * cos over every light visible from the hit point.
// Radiance already includes the distance falloff.
func (in *Integrator) sampleLights(s *scene.Scene, hit geometry.HitRecord, albedo core.Vec3) core.Vec3 {
	var total core.Vec3
	if albedo.IsZero() {
		return total
	}

	origin := hit.Point.Add(hit.Normal.Multiply(in.config.ShadowEpsilon))
	for _, light := range s.Lights {
		illum, ok := light.Illuminate(origin)
		if !ok {
			continue
		}

		cosine := hit.Normal.Dot(illum.Direction)
		if cosine <= 0 {
			continue // Light is behind the surface
		}

		shadowRay := core.NewRaySegment(origin, illum.Direction, 0, illum.Distance)
		if geometry.Occluded(s.Shapes, shadowRay) {
			continue
		}

		total = total.Add(albedo.MultiplyVec(illum.Radiance).Multiply(cosine))
	}
	return total
}
