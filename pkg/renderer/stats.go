package renderer

import (
	"time"

	"github.com/df07/go-raycaster/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width            int           // Image width in pixels
	Height           int           // Image height in pixels
	TotalPixels      int           // Total number of pixels rendered
	TotalSamples     int           // Total number of samples taken
	HitSamples       int           // Samples whose ray hit scene geometry
	MissSamples      int           // Samples that fell through to the sky
	AverageSamples   float64       // Average samples per pixel
	AverageLuminance float64       // Mean luminance of the averaged, clamped pixel colors
	RenderTime       time.Duration // Wall time spent in the pixel loop
}

// HitRatio returns the fraction of samples that hit geometry
func (rs RenderStats) HitRatio() float64 {
	if rs.TotalSamples == 0 {
		return 0
	}
	return float64(rs.HitSamples) / float64(rs.TotalSamples)
}

// PixelStats accumulates the samples taken for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // Linear RGB sum, never clamped
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Divide(float64(ps.SampleCount))
}

// Luminance returns the perceptual luminance of a linear RGB color
func Luminance(c core.Vec3) float64 {
	return 0.2126*c.X + 0.7152*c.Y + 0.0722*c.Z
}

func (rs *RenderStats) addPixel(ps *PixelStats) {
	rs.TotalPixels++
	rs.TotalSamples += ps.SampleCount

	avg := ps.GetColor()
	unit := core.NewInterval(0, 1)
	rs.AverageLuminance += Luminance(core.NewVec3(unit.Clamp(avg.X), unit.Clamp(avg.Y), unit.Clamp(avg.Z)))
}

func (rs *RenderStats) finalize() {
	if rs.TotalPixels == 0 {
		return
	}
	rs.AverageSamples = float64(rs.TotalSamples) / float64(rs.TotalPixels)
	rs.AverageLuminance /= float64(rs.TotalPixels)
}
