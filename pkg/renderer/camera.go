package renderer

import (
	"math"
	"math/rand"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/pkg/errors"
)

const (
	viewportHeight = 2.0
	focalLength    = 1.0
)

// CameraConfig contains the camera's image and sampling settings
type CameraConfig struct {
	Width           int     // Image width in pixels
	Height          int     // Image height in pixels; derived from AspectRatio when 0
	AspectRatio     float64 // Width over height, used only when Height is 0
	SamplesPerPixel int     // Number of rays per pixel
	Seed            int64   // Seed for the default jitter source
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		Seed:            42,
	}
}

// ImageHeight returns the configured height, or the height implied by the
// aspect ratio, never less than 1
func (c CameraConfig) ImageHeight() int {
	if c.Height > 0 {
		return c.Height
	}
	if c.AspectRatio <= 0 {
		return 0
	}
	return max(1, int(float64(c.Width)/c.AspectRatio))
}

// Validate checks the camera's preconditions. The camera itself does not;
// rendering with an invalid config is undefined.
func (c CameraConfig) Validate() error {
	if c.Width < 1 || c.ImageHeight() < 1 {
		return errors.Wrapf(ErrInvalidDimensions, "got %dx%d", c.Width, c.ImageHeight())
	}
	if c.SamplesPerPixel < 1 {
		return errors.Wrapf(ErrInvalidSamples, "got %d", c.SamplesPerPixel)
	}
	return nil
}

// CameraState tracks where the camera is in its render lifecycle
type CameraState int

const (
	Unconfigured CameraState = iota
	Initialized
	Rendering
	Done
)

func (s CameraState) String() string {
	switch s {
	case Unconfigured:
		return "unconfigured"
	case Initialized:
		return "initialized"
	case Rendering:
		return "rendering"
	case Done:
		return "done"
	}
	return "unknown"
}

// Jitter returns a sample offset within a pixel, each component in [-0.5, 0.5)
type Jitter func() (dx, dy float64)

// NoJitter always samples the pixel center
func NoJitter() (dx, dy float64) {
	return 0, 0
}

// RandomJitter draws uniform offsets from random
func RandomJitter(random *rand.Rand) Jitter {
	return func() (float64, float64) {
		return random.Float64() - 0.5, random.Float64() - 0.5
	}
}

// Camera is a fixed pinhole camera at the origin looking down -Z. It turns
// pixels into rays and drives the per-pixel sampling loop.
type Camera struct {
	config CameraConfig
	state  CameraState
	jitter Jitter
	logger core.Logger

	// Derived by Initialize
	imageWidth    int
	imageHeight   int
	viewportWidth float64
	center        core.Vec3 // Camera position
	pixel00       core.Vec3 // Center of the top-left pixel
	pixelDeltaU   core.Vec3 // Offset to the pixel to the right
	pixelDeltaV   core.Vec3 // Offset to the pixel below
}

// NewCamera creates a camera with the given configuration
func NewCamera(config CameraConfig) *Camera {
	return &Camera{
		config: config,
		state:  Unconfigured,
		jitter: RandomJitter(rand.New(rand.NewSource(config.Seed))),
		logger: core.NopLogger{},
	}
}

// SetJitter replaces the sample offset source
func (c *Camera) SetJitter(jitter Jitter) {
	c.jitter = jitter
}

// SetLogger sets the logger used for progress reporting
func (c *Camera) SetLogger(logger core.Logger) {
	c.logger = logger
}

// State returns the camera's lifecycle state
func (c *Camera) State() CameraState {
	return c.state
}

// Config returns the camera configuration
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Initialize derives the viewport and pixel geometry from the configuration.
// Calling it more than once yields the same geometry.
func (c *Camera) Initialize() {
	c.imageWidth = c.config.Width
	c.imageHeight = c.config.ImageHeight()
	c.viewportWidth = viewportHeight * float64(c.imageWidth) / float64(c.imageHeight)
	c.center = core.NewVec3(0, 0, 0)

	// Viewport edges: u runs left to right, v runs top to bottom
	viewportU := core.NewVec3(c.viewportWidth, 0, 0)
	viewportV := core.NewVec3(0, -viewportHeight, 0)

	c.pixelDeltaU = viewportU.Divide(float64(c.imageWidth))
	c.pixelDeltaV = viewportV.Divide(float64(c.imageHeight))

	viewportUpperLeft := c.center.
		Subtract(core.NewVec3(0, 0, focalLength)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00 = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	c.state = Initialized
}

// GetRay returns a jittered ray through pixel (i, j), counted from the top left
func (c *Camera) GetRay(i, j int) core.Ray {
	dx, dy := c.jitter()
	sample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + dx)).
		Add(c.pixelDeltaV.Multiply(float64(j) + dy))

	return core.NewRay(c.center, sample.Subtract(c.center).Normalize())
}

// RayColor shades a ray against the world: hits are colored by their normal,
// misses by a white to sky-blue vertical gradient
func RayColor(ray core.Ray, world core.Shape) core.Vec3 {
	color, _ := rayColor(ray, world)
	return color
}

func rayColor(ray core.Ray, world core.Shape) (core.Vec3, bool) {
	if hit, isHit := world.Hit(ray, core.NewInterval(0, math.Inf(1))); isHit {
		return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5), true
	}
	return backgroundGradient(ray), false
}

// backgroundGradient returns a gradient color based on ray direction
func backgroundGradient(ray core.Ray) core.Vec3 {
	white := core.NewVec3(1.0, 1.0, 1.0)
	skyBlue := core.NewVec3(0.5, 0.7, 1.0)

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return white.Lerp(skyBlue, t)
}

// Render traces the world and streams every pixel to sink. Only linear sums
// are produced here; the sink owns averaging, clamping and quantization.
// The returned error comes from the sink.
func (c *Camera) Render(world core.Shape, sink PixelSink) (RenderStats, error) {
	c.Initialize()

	stats := RenderStats{Width: c.imageWidth, Height: c.imageHeight}
	if err := sink.Begin(c.imageWidth, c.imageHeight); err != nil {
		return stats, errors.Wrap(err, "renderer: writing header")
	}

	c.state = Rendering
	startTime := time.Now()

	for j := 0; j < c.imageHeight; j++ {
		c.logger.Printf("scanlines remaining: %d", c.imageHeight-j)

		for i := 0; i < c.imageWidth; i++ {
			var ps PixelStats
			for sample := 0; sample < c.config.SamplesPerPixel; sample++ {
				color, hit := rayColor(c.GetRay(i, j), world)
				ps.AddSample(color)
				if hit {
					stats.HitSamples++
				} else {
					stats.MissSamples++
				}
			}

			if err := sink.WritePixel(ps.ColorAccum, ps.SampleCount); err != nil {
				return stats, errors.Wrapf(err, "renderer: writing pixel (%d, %d)", i, j)
			}
			stats.addPixel(&ps)
		}
	}

	stats.RenderTime = time.Since(startTime)
	stats.finalize()

	if err := sink.End(); err != nil {
		return stats, errors.Wrap(err, "renderer: finishing image")
	}

	c.state = Done
	c.logger.Printf("render done in %v", stats.RenderTime)
	return stats, nil
}
