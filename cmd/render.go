package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/df07/go-raycaster/pkg/log"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) (err error) {
	setupLogging(ctx)

	config := renderer.CameraConfig{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		AspectRatio:     ctx.Float64("aspect"),
		SamplesPerPixel: ctx.Int("spp"),
		Seed:            ctx.Int64("seed"),
	}
	if err := config.Validate(); err != nil {
		return err
	}

	sceneID := ctx.String("scene")
	world, err := scene.Create(sceneID)
	if err != nil {
		return err
	}

	outPath := ctx.String("out")
	sink, closeOutput, err := setupSink(ctx, outPath)
	if err != nil {
		return err
	}
	defer func() { closeOutput(err != nil) }()

	camera := renderer.NewCamera(config)
	if ctx.Bool("no-jitter") {
		camera.SetJitter(renderer.NoJitter)
	}
	camera.SetLogger(log.Printer{Logger: logger})

	renderID := uuid.New().String()
	logger.Infof("[%s] rendering scene %q (%d shapes) at %dx%d, %d spp",
		renderID, sceneID, world.Len(), config.Width, config.ImageHeight(), config.SamplesPerPixel)

	stats, err := camera.Render(world, sink)
	if err != nil {
		return errors.Wrapf(err, "render %s", renderID)
	}

	logger.Infof("[%s] wrote %s in %s", renderID, outputName(outPath), stats.RenderTime)
	if ctx.Bool("stats") {
		displayRenderStats(renderID, sceneID, stats)
	}

	return nil
}

// Render the gradient test pattern.
func RenderPattern(ctx *cli.Context) (err error) {
	setupLogging(ctx)

	outPath := ctx.String("out")
	sink, closeOutput, err := setupSink(ctx, outPath)
	if err != nil {
		return err
	}
	defer func() { closeOutput(err != nil) }()

	width, height := ctx.Int("width"), ctx.Int("height")
	if err := renderer.RenderTestPattern(sink, width, height); err != nil {
		return err
	}

	logger.Infof("wrote %dx%d test pattern to %s", width, height, outputName(outPath))
	return nil
}

// Open the output and wrap it in a sink. The returned close function removes
// a partially written file when the command failed.
func setupSink(ctx *cli.Context, outPath string) (renderer.PixelSink, func(failed bool), error) {
	newSink, err := newSinkFactory(outputFormat(ctx.String("format"), outPath))
	if err != nil {
		return nil, nil, err
	}

	out, err := openOutput(outPath, ctx.App.Writer)
	if err != nil {
		return nil, nil, err
	}

	closeOutput := func(failed bool) {
		if err := out.Close(); err != nil {
			logger.Warningf("closing %s: %v", outputName(outPath), err)
		}
		if failed && !isStdout(outPath) {
			if err := os.Remove(outPath); err != nil {
				logger.Warningf("removing incomplete %s: %v", outPath, err)
			}
		}
	}
	return newSink(out), closeOutput, nil
}

func outputName(path string) string {
	if isStdout(path) {
		return "stdout"
	}
	return path
}

func displayRenderStats(renderID, sceneID string, stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Size", "Samples/pixel", "Total samples", "Hit ratio", "Avg luminance", "Render time"})
	table.Append([]string{
		sceneID,
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%.1f", stats.AverageSamples),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%02.1f %%", 100*stats.HitRatio()),
		fmt.Sprintf("%.3f", stats.AverageLuminance),
		stats.RenderTime.String(),
	})
	table.SetCaption(true, "render "+renderID)

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
