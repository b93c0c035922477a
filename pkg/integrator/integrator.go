package integrator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// ErrUnknownMode is returned when a render mode name or value is not recognized
var ErrUnknownMode = errors.New("integrator: unknown render mode")

// Mode selects the shading policy for a whole frame
type Mode int

const (
	Normals Mode = iota
	Raycast
	Raytrace
	Pathtracing
)

var modeNames = [...]string{
	Normals:     "normals",
	Raycast:     "raycast",
	Raytrace:    "raytrace",
	Pathtracing: "pathtracing",
}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Valid reports whether m is one of the four render modes
func (m Mode) Valid() bool {
	return m >= Normals && m <= Pathtracing
}

// IsRadiance reports whether the mode produces light values rather than
// a direct visualization
func (m Mode) IsRadiance() bool {
	return m != Normals
}

// ParseMode converts a mode name (case-insensitive) to a Mode
func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(name, n) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Modes returns every render mode in declaration order
func Modes() []Mode {
	return []Mode{Normals, Raycast, Raytrace, Pathtracing}
}

// Config contains the recursion and offset limits of the integrator
type Config struct {
	MaxDepth                  int     // Raytrace reflection bound
	PathMaxDepth              int     // Hard bound on path length, Russian roulette usually stops earlier
	RussianRouletteMinBounces int     // Bounces before Russian roulette kicks in
	ShadowEpsilon             float64 // Offset along the normal for secondary ray origins
}

// DefaultConfig returns the integrator limits used by every host
func DefaultConfig() Config {
	return Config{
		MaxDepth:                  5,
		PathMaxDepth:              50,
		RussianRouletteMinBounces: 3,
		ShadowEpsilon:             1e-4,
	}
}

// Merge returns c with zero fields replaced by the defaults.
// A negative MaxDepth turns reflection off.
func (c Config) Merge() Config {
	defaults := DefaultConfig()
	if c.MaxDepth == 0 {
		c.MaxDepth = defaults.MaxDepth
	} else if c.MaxDepth < 0 {
		c.MaxDepth = 0
	}
	if c.PathMaxDepth <= 0 {
		c.PathMaxDepth = defaults.PathMaxDepth
	}
	if c.RussianRouletteMinBounces <= 0 {
		c.RussianRouletteMinBounces = defaults.RussianRouletteMinBounces
	}
	if c.ShadowEpsilon <= 0 {
		c.ShadowEpsilon = defaults.ShadowEpsilon
	}
	return c
}

// Integrator turns camera rays into colors. It holds no per-frame state
// and is safe for concurrent use.
type Integrator struct {
	config Config
}

// New creates an integrator, filling unset limits with defaults
func New(config Config) *Integrator {
	return &Integrator{config: config.Merge()}
}

// Config returns the effective limits
func (in *Integrator) Config() Config {
	return in.config
}

// Shade returns the color seen along ray under mode. Depth is the current
// bounce count; camera rays start at 0. Unknown modes shade black.
func (in *Integrator) Shade(mode Mode, s *scene.Scene, ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	switch mode {
	case Normals:
		return in.shadeNormals(s, ray)
	case Raycast:
		return in.shadeRaycast(s, ray)
	case Raytrace:
		return in.shadeRaytrace(s, ray, depth, sampler)
	case Pathtracing:
		return in.shadePath(s, ray, depth, sampler)
	default:
		return core.Vec3{}
	}
}

// spawnRay starts a secondary ray just off the surface on the side it leaves from
func (in *Integrator) spawnRay(hit geometry.HitRecord, direction core.Vec3) core.Ray {
	offset := hit.Normal.Multiply(in.config.ShadowEpsilon)
	if direction.Dot(hit.Normal) < 0 {
		offset = offset.Negate()
	}
	return core.NewRay(hit.Point.Add(offset), direction)
}
