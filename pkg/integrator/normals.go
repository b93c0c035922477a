package integrator

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// RemapNormal maps each component of a unit normal from [-1,1] to [0,1]
func RemapNormal(normal core.Vec3) core.Vec3 {
	return normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}

func (in *Integrator) shadeNormals(s *scene.Scene, ray core.Ray) core.Vec3 {
	hit, isHit := geometry.NearestHit(s.Shapes, ray)
	if !isHit {
		return s.BackgroundColor(ray.Direction)
	}
	return RemapNormal(hit.Normal)
}
