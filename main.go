package main

import (
	"os"

	"github.com/df07/go-interactive-raytracer/cmd"
	"github.com/df07/go-interactive-raytracer/pkg/log"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	sceneFlag := cli.StringFlag{
		Name:  "scene, s",
		Value: "1",
		Usage: "scene index (0-9) or id",
	}
	modeFlag := cli.StringFlag{
		Name:  "mode, m",
		Value: "raycast",
		Usage: "render mode: normals, raycast, raytrace or pathtracing",
	}
	workersFlag := cli.IntFlag{
		Name:  "workers",
		Value: 0,
		Usage: "number of render workers (0 uses one per CPU)",
	}

	app := cli.NewApp()
	app.Name = "go-interactive-raytracer"
	app.Usage = "render the built-in scenes with one of four shading modes"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render one frame of a catalog scene and print per-band timings together with
a checksum of the pixel buffer. Identical arguments always give the same
checksum, whatever the number of workers.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 256,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 256,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 4,
					Usage: "samples per pixel (1-100)",
				},
				cli.Uint64Flag{
					Name:  "seed",
					Value: 0,
					Usage: "random seed",
				},
				sceneFlag,
				modeFlag,
				workersFlag,
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list the scene catalog",
			Action: cmd.ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve rendered frames over HTTP",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "listen port",
				},
				workersFlag,
			},
			Action: cmd.Serve,
		},
		{
			Name:  "view",
			Usage: "open the interactive desktop viewer",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "size",
					Value: 400,
					Usage: "initial window size",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 1,
					Usage: "initial samples per pixel",
				},
				sceneFlag,
				modeFlag,
				workersFlag,
			},
			Action: cmd.View,
		},
	}
	return app
}

var logger = log.New("raytracer")

// run executes the app and logs any error, since urfave/cli only prints
// errors that carry an exit code.
func run(args []string) error {
	err := newApp().Run(args)
	if err != nil {
		logger.Error(err)
	}
	return err
}

func main() {
	if err := run(os.Args); err != nil {
		os.Exit(1)
	}
}
