package cmd

import (
	"github.com/df07/go-interactive-raytracer/pkg/integrator"
	"github.com/df07/go-interactive-raytracer/pkg/renderer"
	"github.com/df07/go-interactive-raytracer/web/server"
	"github.com/urfave/cli"
)

// Serve runs the HTTP render server until it fails.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	rt := renderer.NewRaytracer(renderer.Config{
		Workers:    ctx.Int("workers"),
		Integrator: integrator.DefaultConfig(),
	})
	return server.NewServer(ctx.Int("port"), rt).Start()
}
