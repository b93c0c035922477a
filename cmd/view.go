package cmd

import (
	"github.com/df07/go-interactive-raytracer/pkg/integrator"
	"github.com/df07/go-interactive-raytracer/pkg/renderer"
	"github.com/df07/go-interactive-raytracer/viewer"
	"github.com/urfave/cli"
)

// View opens the desktop viewer.
func View(ctx *cli.Context) error {
	setupLogging(ctx)

	mode, err := integrator.ParseMode(ctx.String("mode"))
	if err != nil {
		return err
	}
	sceneIndex, err := ParseScene(ctx.String("scene"))
	if err != nil {
		return err
	}

	config := viewer.DefaultConfig()
	config.Mode = mode
	config.SceneIndex = sceneIndex
	if size := ctx.Int("size"); size > 0 {
		config.Size = size
	}
	if spp := ctx.Int("spp"); spp > 0 {
		config.SampleCount = spp
	}

	rt := renderer.NewRaytracer(renderer.Config{
		Workers:    ctx.Int("workers"),
		Integrator: integrator.DefaultConfig(),
	})
	return viewer.New(config, rt).Run()
}
