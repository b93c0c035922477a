package lights

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// ErrInvalidLight is returned when a light violates its invariants
var ErrInvalidLight = errors.New("lights: invalid light")

// Kind distinguishes positional from directional lights
type Kind int

const (
	Point Kind = iota
	Directional
)

func (k Kind) String() string {
	switch k {
	case Point:
		return "point"
	case Directional:
		return "directional"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Light is a delta light source: it has no area and cannot be hit by rays
type Light struct {
	Kind      Kind
	Position  core.Vec3 // Point lights only
	Direction core.Vec3 // Directional lights only: direction the light travels
	Color     core.Vec3
	Intensity float64
}

// Illumination describes how a light reaches a shading point
type Illumination struct {
	Direction core.Vec3 // Unit vector from the shading point toward the light
	Distance  float64   // Distance to the light, +Inf for directional lights
	Radiance  core.Vec3 // Color * intensity / falloff
}

// NewPointLight creates a light emitting uniformly from a position.
// Contribution falls off with the squared distance.
func NewPointLight(position, color core.Vec3, intensity float64) Light {
	return Light{Kind: Point, Position: position, Color: color, Intensity: intensity}
}

// NewDirectionalLight creates a light arriving from infinity along direction
func NewDirectionalLight(direction, color core.Vec3, intensity float64) Light {
	return Light{Kind: Directional, Direction: direction.Normalize(), Color: color, Intensity: intensity}
}

// Validate checks the light invariants
func (l Light) Validate() error {
	if l.Intensity < 0 || math.IsNaN(l.Intensity) {
		return fmt.Errorf("%w: intensity %f must be non-negative", ErrInvalidLight, l.Intensity)
	}
	if l.Color.X < 0 || l.Color.Y < 0 || l.Color.Z < 0 {
		return fmt.Errorf("%w: negative color %v", ErrInvalidLight, l.Color)
	}
	switch l.Kind {
	case Point:
		return nil
	case Directional:
		if !l.Direction.IsUnit(1e-6) {
			return fmt.Errorf("%w: directional light needs a unit direction, got %v", ErrInvalidLight, l.Direction)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %v", ErrInvalidLight, l.Kind)
	}
}

// Illuminate returns the light arriving at point.
// The boolean is false when the point coincides with a point light.
func (l Light) Illuminate(point core.Vec3) (Illumination, bool) {
	emitted := l.Color.Multiply(l.Intensity)

	if l.Kind == Directional {
		return Illumination{
			Direction: l.Direction.Negate(),
			Distance:  math.Inf(1),
			Radiance:  emitted,
		}, true
	}

	toLight := l.Position.Subtract(point)
	distSq := toLight.LengthSquared()
	if distSq < 1e-12 {
		return Illumination{}, false
	}
	distance := math.Sqrt(distSq)

	return Illumination{
		Direction: toLight.Multiply(1.0 / distance),
		Distance:  distance,
		Radiance:  emitted.Multiply(1.0 / distSq),
	}, true
}
