package cmd

import (
	"github.com/urfave/cli"
)

var outputFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "out, o",
		Value: "-",
		Usage: "image filename, or - for stdout",
	},
	cli.StringFlag{
		Name:  "format, f",
		Usage: "output format (ppm or png); inferred from the filename when empty",
	},
}

// NewApp assembles the command line application.
func NewApp() *cli.App {
	// -v selects verbose logging, so the version flag gets no short alias
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raycaster"
	app.Usage = "render spheres by casting rays from a pinhole camera"
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
			Usage: "render a built-in scene",
			Description: `
Cast jittered rays through every pixel of the image, shade hits by their
surface normal and misses by a white to blue sky gradient, and write the
averaged result as an ASCII PPM (default) or PNG image.`,
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height; derived from --aspect when 0",
				},
				cli.Float64Flag{
					Name:  "aspect",
					Value: 16.0 / 9.0,
					Usage: "aspect ratio used when --height is 0",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 100,
					Usage: "samples per pixel",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "random seed for sample jitter",
				},
				cli.BoolFlag{
					Name:  "no-jitter",
					Usage: "sample pixel centers only",
				},
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "built-in scene to render (see the scenes command)",
				},
				cli.BoolFlag{
					Name:  "stats",
					Usage: "display render statistics",
				},
			}, outputFlags...),
			Action: RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: ListScenes,
		},
		{
			Name:  "pattern",
			Usage: "write a gradient test pattern without tracing any rays",
			Flags: append([]cli.Flag{
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
			}, outputFlags...),
			Action: RenderPattern,
		},
	}

	return app
}
