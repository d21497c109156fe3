package renderer

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/pkg/errors"
)

// RenderTestPattern writes a width x height gradient that needs no scene:
// red grows left to right, green grows top to bottom, blue is zero.
// Useful for checking an output pipeline end to end.
func RenderTestPattern(sink PixelSink, width, height int) error {
	if width < 1 || height < 1 {
		return errors.Wrapf(ErrInvalidDimensions, "got %dx%d", width, height)
	}

	if err := sink.Begin(width, height); err != nil {
		return errors.Wrap(err, "renderer: writing header")
	}

	spanX := float64(max(1, width-1))
	spanY := float64(max(1, height-1))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			color := core.NewVec3(float64(i)/spanX, float64(j)/spanY, 0)
			if err := sink.WritePixel(color, 1); err != nil {
				return errors.Wrapf(err, "renderer: writing pixel (%d, %d)", i, j)
			}
		}
	}

	return errors.Wrap(sink.End(), "renderer: finishing image")
}
