package renderer

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// EncodeColor converts a linear color sum taken over samples into 8-bit
// channels: divide by the sample count, clamp to [0,1], scale to 255, round.
// samples must be at least 1.
func EncodeColor(sum core.Vec3, samples int) (r, g, b uint8) {
	avg := sum.Divide(float64(samples))
	return encodeChannel(avg.X), encodeChannel(avg.Y), encodeChannel(avg.Z)
}

func encodeChannel(v float64) uint8 {
	intensity := core.NewInterval(0, 1)
	return uint8(math.Round(255 * intensity.Clamp(v)))
}
