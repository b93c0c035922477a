package renderer

import (
	"fmt"

	"github.com/df07/go-interactive-raytracer/pkg/integrator"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

const (
	// MinSampleCount and MaxSampleCount bound the per-pixel sample budget
	MinSampleCount = 1
	MaxSampleCount = 100

	// MaxDimension bounds each side of the output buffer
	MaxDimension = 8192
)

// RenderRequest is the immutable input of one render call.
// The zero Seed is a valid seed like any other.
type RenderRequest struct {
	Width       int
	Height      int
	SampleCount int
	Mode        integrator.Mode
	SceneIndex  int
	Seed        uint64
}

// Validate checks every field, including the scene index range.
// All failures wrap ErrInvalidRequest.
func (r RenderRequest) Validate() error {
	if err := r.validateFrame(); err != nil {
		return err
	}
	if r.SceneIndex < 0 || r.SceneIndex >= scene.CatalogSize {
		return fmt.Errorf("%w: %w: %d not in [0, %d]",
			ErrInvalidRequest, scene.ErrInvalidSceneIndex, r.SceneIndex, scene.CatalogSize-1)
	}
	return nil
}

// validateFrame checks everything except the scene index
func (r RenderRequest) validateFrame() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidRequest, r.Width, r.Height)
	}
	if r.Width > MaxDimension || r.Height > MaxDimension {
		return fmt.Errorf("%w: dimensions %dx%d exceed %d", ErrInvalidRequest, r.Width, r.Height, MaxDimension)
	}
	if r.SampleCount < MinSampleCount || r.SampleCount > MaxSampleCount {
		return fmt.Errorf("%w: sample count %d not in [%d, %d]",
			ErrInvalidRequest, r.SampleCount, MinSampleCount, MaxSampleCount)
	}
	if !r.Mode.Valid() {
		return fmt.Errorf("%w: %w: %v", ErrInvalidRequest, integrator.ErrUnknownMode, r.Mode)
	}
	return nil
}
