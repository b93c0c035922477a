package renderer

import (
	"errors"
	"testing"

	"github.com/df07/go-interactive-raytracer/pkg/integrator"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

func validRequest() RenderRequest {
	return RenderRequest{
		Width:       8,
		Height:      6,
		SampleCount: 1,
		Mode:        integrator.Normals,
		SceneIndex:  0,
		Seed:        42,
	}
}

func TestRenderRequestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*RenderRequest)
		valid  bool
	}{
		{"valid", func(r *RenderRequest) {}, true},
		{"zero seed", func(r *RenderRequest) { r.Seed = 0 }, true},
		{"max samples", func(r *RenderRequest) { r.SampleCount = 100 }, true},
		{"last scene", func(r *RenderRequest) { r.SceneIndex = 9 }, true},
		{"zero samples", func(r *RenderRequest) { r.SampleCount = 0 }, false},
		{"too many samples", func(r *RenderRequest) { r.SampleCount = 101 }, false},
		{"zero width", func(r *RenderRequest) { r.Width = 0 }, false},
		{"negative height", func(r *RenderRequest) { r.Height = -4 }, false},
		{"max width", func(r *RenderRequest) { r.Width = MaxDimension }, true},
		{"huge width", func(r *RenderRequest) { r.Width = MaxDimension + 1 }, false},
		{"scene 10", func(r *RenderRequest) { r.SceneIndex = 10 }, false},
		{"negative scene", func(r *RenderRequest) { r.SceneIndex = -1 }, false},
		{"unknown mode", func(r *RenderRequest) { r.Mode = integrator.Mode(9) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(&req)
			err := req.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("Validate() error = %v, want ErrInvalidRequest", err)
			}
		})
	}
}

func TestRenderRequestSceneIndexWrapsSceneError(t *testing.T) {
	req := validRequest()
	req.SceneIndex = 10
	err := req.Validate()
	if !errors.Is(err, ErrInvalidRequest) || !errors.Is(err, scene.ErrInvalidSceneIndex) {
		t.Errorf("Validate() error = %v, want both ErrInvalidRequest and ErrInvalidSceneIndex", err)
	}
}
