package renderer

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/scene"
)

// recordingSink keeps every pixel it receives
type recordingSink struct {
	width, height int
	sums          []core.Vec3
	samples       []int
	ended         bool
}

func (r *recordingSink) Begin(width, height int) error {
	r.width, r.height = width, height
	return nil
}

func (r *recordingSink) WritePixel(sum core.Vec3, samples int) error {
	r.sums = append(r.sums, sum)
	r.samples = append(r.samples, samples)
	return nil
}

func (r *recordingSink) End() error {
	r.ended = true
	return nil
}

// failingSink fails once a given number of pixels have been written
type failingSink struct {
	recordingSink
	failAfter int
	err       error
}

func (f *failingSink) WritePixel(sum core.Vec3, samples int) error {
	if len(f.sums) >= f.failAfter {
		return f.err
	}
	return f.recordingSink.WritePixel(sum, samples)
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func vecClose(a, b core.Vec3) bool {
	return a.Subtract(b).Length() < 1e-9
}

func TestCameraConfig_ImageHeight(t *testing.T) {
	tests := []struct {
		name     string
		config   CameraConfig
		expected int
	}{
		{"explicit height", CameraConfig{Width: 400, Height: 300, AspectRatio: 16.0 / 9.0}, 300},
		{"derived from aspect", CameraConfig{Width: 400, AspectRatio: 16.0 / 9.0}, 225},
		{"square", CameraConfig{Width: 64, AspectRatio: 1}, 64},
		{"clamped to one", CameraConfig{Width: 1, AspectRatio: 16.0 / 9.0}, 1},
		{"no aspect", CameraConfig{Width: 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.ImageHeight(); got != tt.expected {
				t.Errorf("Expected height %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestCameraConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		config   CameraConfig
		expected error
	}{
		{"valid", CameraConfig{Width: 2, Height: 2, SamplesPerPixel: 1}, nil},
		{"default", DefaultCameraConfig(), nil},
		{"zero width", CameraConfig{Width: 0, Height: 2, SamplesPerPixel: 1}, ErrInvalidDimensions},
		{"zero height", CameraConfig{Width: 2, SamplesPerPixel: 1}, ErrInvalidDimensions},
		{"zero samples", CameraConfig{Width: 2, Height: 2}, ErrInvalidSamples},
		{"negative samples", CameraConfig{Width: 2, Height: 2, SamplesPerPixel: -4}, ErrInvalidSamples},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expected == nil {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestCamera_Initialize(t *testing.T) {
	camera := NewCamera(CameraConfig{Width: 4, Height: 2, SamplesPerPixel: 1})
	if camera.State() != Unconfigured {
		t.Fatalf("Expected new camera to be unconfigured, got %v", camera.State())
	}

	camera.Initialize()
	if camera.State() != Initialized {
		t.Errorf("Expected initialized state, got %v", camera.State())
	}

	// Viewport is 4 wide and 2 high, so each pixel spans one unit
	if math.Abs(camera.viewportWidth-4) > 1e-12 {
		t.Errorf("Expected viewport width 4, got %f", camera.viewportWidth)
	}
	if !vecClose(camera.pixelDeltaU, core.NewVec3(1, 0, 0)) {
		t.Errorf("Expected pixel delta u (1,0,0), got %v", camera.pixelDeltaU)
	}
	if !vecClose(camera.pixelDeltaV, core.NewVec3(0, -1, 0)) {
		t.Errorf("Expected pixel delta v (0,-1,0), got %v", camera.pixelDeltaV)
	}
	if !vecClose(camera.pixel00, core.NewVec3(-1.5, 0.5, -1)) {
		t.Errorf("Expected pixel00 (-1.5,0.5,-1), got %v", camera.pixel00)
	}

	before := *camera
	camera.Initialize()
	if camera.pixel00 != before.pixel00 || camera.pixelDeltaU != before.pixelDeltaU ||
		camera.pixelDeltaV != before.pixelDeltaV || camera.viewportWidth != before.viewportWidth {
		t.Error("Expected Initialize to be idempotent")
	}
}

func TestCamera_GetRay(t *testing.T) {
	camera := NewCamera(CameraConfig{Width: 4, Height: 2, SamplesPerPixel: 1})
	camera.SetJitter(NoJitter)
	camera.Initialize()

	ray := camera.GetRay(3, 1)
	if ray.Origin != (core.Vec3{}) {
		t.Errorf("Expected ray from origin, got %v", ray.Origin)
	}
	expected := core.NewVec3(1.5, -0.5, -1).Normalize()
	if !vecClose(ray.Direction, expected) {
		t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
	}

	// Jitter moves the sample by fractions of a pixel
	camera.SetJitter(func() (float64, float64) { return 0.25, -0.5 })
	ray = camera.GetRay(0, 0)
	expected = core.NewVec3(-1.25, 1, -1).Normalize()
	if !vecClose(ray.Direction, expected) {
		t.Errorf("Expected jittered direction %v, got %v", expected, ray.Direction)
	}
}

func TestRandomJitter_Range(t *testing.T) {
	jitter := RandomJitter(rand.New(rand.NewSource(1)))
	for i := 0; i < 10000; i++ {
		dx, dy := jitter()
		if dx < -0.5 || dx >= 0.5 || dy < -0.5 || dy >= 0.5 {
			t.Fatalf("Jitter (%f, %f) outside [-0.5, 0.5)", dx, dy)
		}
	}
}

func TestRayColor(t *testing.T) {
	world := scene.New(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5))

	// Straight at the sphere: normal (0,0,1)
	hitColor := RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), world)
	if !vecClose(hitColor, core.NewVec3(0.5, 0.5, 1)) {
		t.Errorf("Expected normal color (0.5,0.5,1), got %v", hitColor)
	}

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight down is white", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"straight up is sky blue", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1)},
		{"horizon is halfway", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1)},
		{"unnormalized direction", core.NewVec3(0, 5, 0), core.NewVec3(0.5, 0.7, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RayColor(core.NewRay(core.Vec3{}, tt.direction), scene.New())
			if !vecClose(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCamera_Render_Deterministic(t *testing.T) {
	render := func() string {
		camera := NewCamera(CameraConfig{Width: 2, Height: 2, SamplesPerPixel: 1})
		camera.SetJitter(NoJitter)

		var buf bytes.Buffer
		if _, err := camera.Render(scene.NewSphereScene(), NewPPMWriter(&buf)); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		return buf.String()
	}

	first := render()
	second := render()
	if first != second {
		t.Errorf("Expected identical output, got\n%s\nand\n%s", first, second)
	}

	lines := strings.Split(strings.TrimSpace(first), "\n")
	if len(lines) != 3+4 {
		t.Fatalf("Expected 7 lines, got %d:\n%s", len(lines), first)
	}
	if lines[0] != "P3" || lines[1] != "2 2" || lines[2] != "255" {
		t.Errorf("Unexpected header %q", lines[:3])
	}
}

func TestCamera_Render_SeededJitterIsRepeatable(t *testing.T) {
	config := CameraConfig{Width: 8, Height: 6, SamplesPerPixel: 4, Seed: 99}

	var first, second bytes.Buffer
	if _, err := NewCamera(config).Render(scene.NewDefaultScene(), NewPPMWriter(&first)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if _, err := NewCamera(config).Render(scene.NewDefaultScene(), NewPPMWriter(&second)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if first.String() != second.String() {
		t.Error("Expected the same seed to produce the same image")
	}
}

func TestCamera_Render_EmptySceneSkyGradient(t *testing.T) {
	const width, height = 3, 7
	camera := NewCamera(CameraConfig{Width: width, Height: height, SamplesPerPixel: 1})
	camera.SetJitter(NoJitter)

	sink := &recordingSink{}
	if _, err := camera.Render(scene.NewEmptyScene(), sink); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(sink.sums) != width*height {
		t.Fatalf("Expected %d pixels, got %d", width*height, len(sink.sums))
	}

	white := core.NewVec3(1, 1, 1)
	skyBlue := core.NewVec3(0.5, 0.7, 1)
	viewportWidth := 2.0 * width / height

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			x := -viewportWidth/2 + (float64(i)+0.5)*viewportWidth/width
			y := 1 - (float64(j)+0.5)*2/height
			unit := core.NewVec3(x, y, -1).Normalize()
			a := 0.5 * (unit.Y + 1)
			expected := white.Multiply(1 - a).Add(skyBlue.Multiply(a))

			got := sink.sums[j*width+i]
			if !vecClose(got, expected) {
				t.Errorf("Pixel (%d, %d): expected %v, got %v", i, j, expected, got)
			}
		}
	}

	// Rays through the top row point upward and are bluer than the bottom row
	top, bottom := sink.sums[1], sink.sums[(height-1)*width+1]
	if top.X >= bottom.X {
		t.Errorf("Expected top row (%v) to be bluer than bottom row (%v)", top, bottom)
	}
	// Blue stays saturated everywhere in the gradient
	for idx, sum := range sink.sums {
		if math.Abs(sum.Z-1) > 1e-12 {
			t.Errorf("Pixel %d: expected blue 1, got %f", idx, sum.Z)
		}
	}
}

func TestCamera_Render_SphereCenterPixel(t *testing.T) {
	camera := NewCamera(CameraConfig{Width: 1, Height: 1, SamplesPerPixel: 1})
	camera.SetJitter(NoJitter)

	var buf bytes.Buffer
	if _, err := camera.Render(scene.NewSphereScene(), NewPPMWriter(&buf)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// Normal (0,0,1) -> color (0.5,0.5,1)
	expected := "P3\n1 1\n255\n128 128 255\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestCamera_Render_AccumulatesWithoutClamping(t *testing.T) {
	camera := NewCamera(CameraConfig{Width: 1, Height: 1, SamplesPerPixel: 5})
	camera.SetJitter(NoJitter)

	sink := &recordingSink{}
	if _, err := camera.Render(scene.NewSphereScene(), sink); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if sink.samples[0] != 5 {
		t.Errorf("Expected sample count 5, got %d", sink.samples[0])
	}
	// Five samples of (0.5,0.5,1) sum past 1 in every channel
	if !vecClose(sink.sums[0], core.NewVec3(2.5, 2.5, 5)) {
		t.Errorf("Expected linear sum (2.5,2.5,5), got %v", sink.sums[0])
	}
	if !sink.ended {
		t.Error("Expected sink to be ended")
	}
}

func TestCamera_Render_Stats(t *testing.T) {
	camera := NewCamera(CameraConfig{Width: 4, Height: 3, SamplesPerPixel: 3})

	stats, err := camera.Render(scene.NewEmptyScene(), &recordingSink{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if stats.Width != 4 || stats.Height != 3 {
		t.Errorf("Expected 4x3, got %dx%d", stats.Width, stats.Height)
	}
	if stats.TotalPixels != 12 {
		t.Errorf("Expected 12 pixels, got %d", stats.TotalPixels)
	}
	if stats.TotalSamples != 36 || stats.MissSamples != 36 || stats.HitSamples != 0 {
		t.Errorf("Expected 36 missed samples, got total=%d hit=%d miss=%d",
			stats.TotalSamples, stats.HitSamples, stats.MissSamples)
	}
	if stats.AverageSamples != 3 {
		t.Errorf("Expected 3 average samples, got %f", stats.AverageSamples)
	}
	if stats.HitRatio() != 0 {
		t.Errorf("Expected hit ratio 0, got %f", stats.HitRatio())
	}
	if stats.AverageLuminance <= 0 || stats.AverageLuminance > 1 {
		t.Errorf("Expected luminance in (0,1], got %f", stats.AverageLuminance)
	}
	if camera.State() != Done {
		t.Errorf("Expected done state, got %v", camera.State())
	}
}

func TestCamera_Render_SinkError(t *testing.T) {
	sinkErr := errors.New("disk full")
	camera := NewCamera(CameraConfig{Width: 3, Height: 3, SamplesPerPixel: 1})
	sink := &failingSink{failAfter: 4, err: sinkErr}

	stats, err := camera.Render(scene.NewDefaultScene(), sink)
	if !errors.Is(err, sinkErr) {
		t.Fatalf("Expected sink error, got %v", err)
	}
	if stats.TotalPixels != 4 {
		t.Errorf("Expected 4 pixels before failure, got %d", stats.TotalPixels)
	}
	if sink.ended {
		t.Error("Expected End not to be called after a failure")
	}
	if camera.State() == Done {
		t.Error("Expected failed render not to reach done state")
	}
}

func TestCamera_Render_LogsProgress(t *testing.T) {
	logger := &recordingLogger{}
	camera := NewCamera(CameraConfig{Width: 2, Height: 3, SamplesPerPixel: 1})
	camera.SetLogger(logger)

	if _, err := camera.Render(scene.NewEmptyScene(), &recordingSink{}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(logger.lines) != 4 {
		t.Fatalf("Expected 3 progress lines and 1 summary, got %v", logger.lines)
	}
	if logger.lines[0] != "scanlines remaining: 3" || logger.lines[2] != "scanlines remaining: 1" {
		t.Errorf("Unexpected progress lines %v", logger.lines)
	}
}
