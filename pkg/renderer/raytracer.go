package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/integrator"
	"github.com/df07/go-interactive-raytracer/pkg/log"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

var logger = log.New("renderer")

// bandsPerWorker controls how finely a frame is split; more bands than
// workers keeps the pool busy when some rows are more expensive than others
const bandsPerWorker = 4

// Config contains the renderer configuration
type Config struct {
	Workers    int               // Zero means one worker per CPU
	Integrator integrator.Config // Zero fields take the integrator defaults
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Workers:    0,
		Integrator: integrator.DefaultConfig(),
	}
}

// Raytracer renders frames. It keeps no state between frames and can
// serve concurrent Render calls.
type Raytracer struct {
	pool       *WorkerPool
	integrator *integrator.Integrator
}

// NewRaytracer creates a raytracer
func NewRaytracer(config Config) *Raytracer {
	return &Raytracer{
		pool:       NewWorkerPool(config.Workers),
		integrator: integrator.New(config.Integrator),
	}
}

// Integrator returns the integrator used for shading
func (rt *Raytracer) Integrator() *integrator.Integrator {
	return rt.integrator
}

// Render renders a request with a default raytracer
func Render(req RenderRequest) (*PixelBuffer, error) {
	return NewRaytracer(DefaultConfig()).Render(req)
}

// Render renders one frame
func (rt *Raytracer) Render(req RenderRequest) (*PixelBuffer, error) {
	buf, _, err := rt.RenderContext(context.Background(), req)
	return buf, err
}

// RenderContext validates req, resolves its scene and renders it.
// Nothing is allocated for the output when validation fails.
func (rt *Raytracer) RenderContext(ctx context.Context, req RenderRequest) (*PixelBuffer, FrameStats, error) {
	start := time.Now()
	if err := req.Validate(); err != nil {
		return nil, FrameStats{}, err
	}

	s, err := scene.Resolve(req.SceneIndex)
	if err != nil {
		if errors.Is(err, scene.ErrInvalidSceneIndex) {
			return nil, FrameStats{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		return nil, FrameStats{}, err
	}

	buf, stats, err := rt.render(ctx, s, req)
	stats.RenderTime = time.Since(start)
	if err != nil {
		return nil, stats, err
	}

	logger.Debugf("rendered %s/%s %dx%d@%d in %s", s.Name, req.Mode, req.Width, req.Height, req.SampleCount, stats.RenderTime)
	return buf, stats, nil
}

// RenderScene renders a caller-built scene. The request's scene index is ignored.
func (rt *Raytracer) RenderScene(ctx context.Context, s *scene.Scene, req RenderRequest) (*PixelBuffer, FrameStats, error) {
	start := time.Now()
	if err := req.validateFrame(); err != nil {
		return nil, FrameStats{}, err
	}
	if err := s.Validate(); err != nil {
		return nil, FrameStats{}, err
	}

	buf, stats, err := rt.render(ctx, s, req)
	stats.RenderTime = time.Since(start)
	if err != nil {
		return nil, stats, err
	}
	return buf, stats, nil
}

// render fills a new buffer for an already validated request and scene
func (rt *Raytracer) render(ctx context.Context, s *scene.Scene, req RenderRequest) (*PixelBuffer, FrameStats, error) {
	stats := FrameStats{
		Scene:       s.Name,
		Mode:        req.Mode,
		Width:       req.Width,
		Height:      req.Height,
		SampleCount: req.SampleCount,
		Workers:     rt.pool.GetNumWorkers(),
	}

	job := PixelJob{
		Integrator:  rt.integrator,
		Scene:       s,
		Camera:      geometry.NewCamera(s.CameraConfig),
		Mode:        req.Mode,
		Width:       req.Width,
		Height:      req.Height,
		SampleCount: req.SampleCount,
		Seed:        req.Seed,
	}

	buf := NewPixelBuffer(req.Width, req.Height)
	tileRenderer := NewTileRenderer(job, buf)

	bandCount := rt.pool.GetNumWorkers() * bandsPerWorker
	bandHeight := (req.Height + bandCount - 1) / bandCount
	tiles := NewRowBands(req.Width, req.Height, bandHeight)

	// Each task writes only its own slot
	stats.Bands = make([]BandStat, len(tiles))
	err := rt.pool.Run(ctx, tiles, func(tile Tile) error {
		stats.Bands[tile.Index] = tileRenderer.RenderTileBounds(tile.Bounds)
		return nil
	})
	if err != nil {
		return nil, stats, fmt.Errorf("%w: %w", ErrInterrupted, err)
	}

	return buf, stats, nil
}
