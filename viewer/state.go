package viewer

import (
	"github.com/df07/go-interactive-raytracer/pkg/integrator"
	"github.com/df07/go-interactive-raytracer/pkg/renderer"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// sampleSteps are the sample counts reachable with the Up and Down keys
var sampleSteps = []int{1, 2, 4, 8, 16, 32, 64, 100}

// Action is a user command understood by the viewer
type Action int

const (
	ActionNone Action = iota
	ActionNextMode
	ActionMoreSamples
	ActionFewerSamples
	ActionReseed
)

// State holds every parameter that selects a frame
type State struct {
	Size        int
	SampleCount int
	Mode        integrator.Mode
	SceneIndex  int
	Seed        uint64
}

// SelectScene returns the state with scene index selected, ignoring invalid indices
func (s State) SelectScene(index int) State {
	if index >= 0 && index < scene.CatalogSize {
		s.SceneIndex = index
	}
	return s
}

// Apply returns the state after an action
func (s State) Apply(action Action) State {
	switch action {
	case ActionNextMode:
		modes := integrator.Modes()
		s.Mode = modes[(int(s.Mode)+1)%len(modes)]
	case ActionMoreSamples:
		s.SampleCount = stepSamples(s.SampleCount, 1)
	case ActionFewerSamples:
		s.SampleCount = stepSamples(s.SampleCount, -1)
	case ActionReseed:
		s.Seed++
	}
	return s
}

// Resize returns the state for a window of the given size. The frame is square.
func (s State) Resize(width, height int) State {
	s.Size = max(1, min(width, height, renderer.MaxDimension))
	return s
}

// Request converts the state into a render request
func (s State) Request() renderer.RenderRequest {
	return renderer.RenderRequest{
		Width:       s.Size,
		Height:      s.Size,
		SampleCount: s.SampleCount,
		Mode:        s.Mode,
		SceneIndex:  s.SceneIndex,
		Seed:        s.Seed,
	}
}

// stepSamples moves to the neighboring entry of sampleSteps
func stepSamples(current, direction int) int {
	index := 0
	for i, n := range sampleSteps {
		if n <= current {
			index = i
		}
	}
	index = max(0, min(len(sampleSteps)-1, index+direction))
	return sampleSteps[index]
}
