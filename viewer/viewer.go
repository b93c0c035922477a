package viewer

import (
	"context"
	"fmt"

	"github.com/df07/go-interactive-raytracer/pkg/integrator"
	"github.com/df07/go-interactive-raytracer/pkg/log"
	"github.com/df07/go-interactive-raytracer/pkg/renderer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var logger = log.New("viewer")

var digitKeys = map[ebiten.Key]int{
	ebiten.KeyDigit0: 0, ebiten.KeyNumpad0: 0,
	ebiten.KeyDigit1: 1, ebiten.KeyNumpad1: 1,
	ebiten.KeyDigit2: 2, ebiten.KeyNumpad2: 2,
	ebiten.KeyDigit3: 3, ebiten.KeyNumpad3: 3,
	ebiten.KeyDigit4: 4, ebiten.KeyNumpad4: 4,
	ebiten.KeyDigit5: 5, ebiten.KeyNumpad5: 5,
	ebiten.KeyDigit6: 6, ebiten.KeyNumpad6: 6,
	ebiten.KeyDigit7: 7, ebiten.KeyNumpad7: 7,
	ebiten.KeyDigit8: 8, ebiten.KeyNumpad8: 8,
	ebiten.KeyDigit9: 9, ebiten.KeyNumpad9: 9,
}

var actionKeys = map[ebiten.Key]Action{
	ebiten.KeyM:         ActionNextMode,
	ebiten.KeyArrowUp:   ActionMoreSamples,
	ebiten.KeyArrowDown: ActionFewerSamples,
	ebiten.KeyR:         ActionReseed,
}

// Config contains the initial viewer parameters
type Config struct {
	Size        int
	SampleCount int
	Mode        integrator.Mode
	SceneIndex  int
	Seed        uint64
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Size:        400,
		SampleCount: 1,
		Mode:        integrator.Raycast,
		SceneIndex:  1,
	}
}

// frameResult is a finished render tagged with the state that produced it
type frameResult struct {
	state State
	buf   *renderer.PixelBuffer
	stats renderer.FrameStats
	err   error
}

// Viewer is an ebiten game that displays frames from the raytracer.
// Frames render in the background; a parameter change abandons the
// frame in flight.
type Viewer struct {
	raytracer *renderer.Raytracer
	state     State
	shown     State // State of the frame on screen
	pending   State // State of the frame in flight
	rendering bool
	cancel    context.CancelFunc
	results   chan frameResult

	frame     *ebiten.Image
	lastStats renderer.FrameStats
	lastErr   error
}

// New creates a viewer
func New(config Config, raytracer *renderer.Raytracer) *Viewer {
	return &Viewer{
		raytracer: raytracer,
		state: State{
			Size:        config.Size,
			SampleCount: config.SampleCount,
			Mode:        config.Mode,
			SceneIndex:  config.SceneIndex,
			Seed:        config.Seed,
		},
		shown:   State{Size: -1},
		results: make(chan frameResult, 1),
	}
}

// Run opens the window and blocks until it is closed
func (v *Viewer) Run() error {
	ebiten.SetWindowSize(v.state.Size, v.state.Size)
	ebiten.SetWindowTitle("Interactive Raytracer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	defer v.stopRender()
	return ebiten.RunGame(v)
}

// Update handles input and collects finished frames
func (v *Viewer) Update() error {
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if index, ok := digitKeys[key]; ok {
			v.state = v.state.SelectScene(index)
		}
		if action, ok := actionKeys[key]; ok {
			v.state = v.state.Apply(action)
		}
	}

	select {
	case result := <-v.results:
		v.acceptFrame(result)
	default:
	}

	if !v.rendering && v.shown != v.state {
		v.startRender()
	} else if v.rendering && v.pending != v.state {
		// Abandon the frame in flight
		v.stopRender()
	}
	return nil
}

// Draw presents the latest frame with a status line
func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.frame != nil {
		screen.DrawImage(v.frame, nil)
	}

	status := fmt.Sprintf("scene %d  mode %s  samples %d  seed %d\n",
		v.state.SceneIndex, v.state.Mode, v.state.SampleCount, v.state.Seed)
	if v.lastStats.RenderTime > 0 {
		status += fmt.Sprintf("%s in %s\n", v.lastStats.Scene, v.lastStats.RenderTime)
	}
	if v.rendering {
		status += "rendering...\n"
	}
	if v.lastErr != nil {
		status += v.lastErr.Error() + "\n"
	}
	status += "0-9 scene  M mode  Up/Down samples  R reseed"
	ebitenutil.DebugPrint(screen, status)
}

// Layout keeps the logical screen square and matched to the window
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.state = v.state.Resize(outsideWidth, outsideHeight)
	return v.state.Size, v.state.Size
}

func (v *Viewer) startRender() {
	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel
	v.rendering = true
	v.pending = v.state

	state := v.state
	go func() {
		buf, stats, err := v.raytracer.RenderContext(ctx, state.Request())
		v.results <- frameResult{state: state, buf: buf, stats: stats, err: err}
	}()
}

func (v *Viewer) stopRender() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

func (v *Viewer) acceptFrame(result frameResult) {
	v.rendering = false
	v.stopRender()

	if result.err != nil {
		if result.state == v.state {
			v.lastErr = result.err
			v.shown = result.state
			logger.Warningf("render failed: %v", result.err)
		}
		return
	}

	v.lastErr = nil
	v.lastStats = result.stats
	v.shown = result.state
	if v.frame == nil || v.frame.Bounds().Dx() != result.buf.Width || v.frame.Bounds().Dy() != result.buf.Height {
		if v.frame != nil {
			v.frame.Deallocate()
		}
		v.frame = ebiten.NewImage(result.buf.Width, result.buf.Height)
	}
	v.frame.WritePixels(result.buf.Pix)
	logger.Infof("frame %s/%s %d spp in %s", result.stats.Scene, result.state.Mode, result.state.SampleCount, result.stats.RenderTime)
}
