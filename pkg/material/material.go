package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// ErrInvalidMaterial is returned when a material component is outside its range
var ErrInvalidMaterial = errors.New("material: invalid material")

// ID indexes a material in a scene's material table
type ID int

// Material describes how a surface responds to light.
// A single parametric model covers every shading mode: a diffuse lobe
// weighted by (1 - Reflectivity) and a specular lobe weighted by Reflectivity.
type Material struct {
	Albedo       core.Vec3 // Surface color, each channel in [0,1]
	Reflectivity float64   // 0 = fully diffuse, 1 = perfect specular
	Roughness    float64   // 0 = mirror, 1 = very fuzzy specular lobe
	Emission     core.Vec3 // Emitted radiance, zero for non-emitters
}

// NewLambertian creates a purely diffuse material
func NewLambertian(albedo core.Vec3) Material {
	return Material{Albedo: albedo}
}

// NewMetal creates a fully specular material with optional fuzz
func NewMetal(albedo core.Vec3, roughness float64) Material {
	return Material{Albedo: albedo, Reflectivity: 1.0, Roughness: roughness}
}

// NewGlossy creates a material that mixes diffuse and specular reflection
func NewGlossy(albedo core.Vec3, reflectivity, roughness float64) Material {
	return Material{Albedo: albedo, Reflectivity: reflectivity, Roughness: roughness}
}

// NewEmissive creates a light-emitting material. Emitters do not reflect.
func NewEmissive(emission core.Vec3) Material {
	return Material{Emission: emission}
}

// IsEmissive reports whether the material emits light
func (m Material) IsEmissive() bool {
	return !m.Emission.IsZero()
}

// IsSpecular reports whether the material has a specular lobe
func (m Material) IsSpecular() bool {
	return m.Reflectivity > 0
}

// Validate checks that every component lies in its declared range
func (m Material) Validate() error {
	if !m.Albedo.InRange(0, 1) {
		return fmt.Errorf("%w: albedo %v outside [0,1]", ErrInvalidMaterial, m.Albedo)
	}
	if m.Reflectivity < 0 || m.Reflectivity > 1 {
		return fmt.Errorf("%w: reflectivity %f outside [0,1]", ErrInvalidMaterial, m.Reflectivity)
	}
	if m.Roughness < 0 || m.Roughness > 1 {
		return fmt.Errorf("%w: roughness %f outside [0,1]", ErrInvalidMaterial, m.Roughness)
	}
	if m.Emission.X < 0 || m.Emission.Y < 0 || m.Emission.Z < 0 {
		return fmt.Errorf("%w: negative emission %v", ErrInvalidMaterial, m.Emission)
	}
	return nil
}

// ScatterSpecular returns the mirror direction for an incoming direction,
// perturbed inside a sphere scaled by the roughness.
// The boolean is false when the perturbed direction dips below the surface.
func (m Material) ScatterSpecular(incoming, normal core.Vec3, sampler core.Sampler) (core.Vec3, bool) {
	reflected := incoming.Reflect(normal)
	if m.Roughness > 0 {
		reflected = reflected.Add(core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(m.Roughness))
	}
	reflected = reflected.Normalize()
	return reflected, reflected.Dot(normal) > 0
}

// ScatterDiffuse returns a cosine-weighted direction around the normal
func (m Material) ScatterDiffuse(normal core.Vec3, sampler core.Sampler) core.Vec3 {
	return core.SampleCosineHemisphere(normal, sampler.Get2D())
}
