package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/pkg/errors"
)

// PixelSink receives a rendered image one pixel at a time in row-major order,
// top to bottom and left to right. Each pixel arrives as an unclamped linear
// color sum together with the number of samples that produced it.
type PixelSink interface {
	Begin(width, height int) error
	WritePixel(sum core.Vec3, samples int) error
	End() error
}

// PPMWriter writes an ASCII PPM (P3) image
type PPMWriter struct {
	w *bufio.Writer
}

// NewPPMWriter creates a PPM sink writing to w
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w)}
}

// Begin writes the PPM header
func (p *PPMWriter) Begin(width, height int) error {
	_, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", width, height)
	return err
}

// WritePixel writes one "r g b" line
func (p *PPMWriter) WritePixel(sum core.Vec3, samples int) error {
	r, g, b := EncodeColor(sum, samples)
	_, err := fmt.Fprintf(p.w, "%d %d %d\n", r, g, b)
	return err
}

// End flushes buffered output
func (p *PPMWriter) End() error {
	return p.w.Flush()
}

// ImageSink collects pixels into an in-memory RGBA image
type ImageSink struct {
	img  *image.RGBA
	next int
}

// NewImageSink creates an empty image sink; the image is allocated by Begin
func NewImageSink() *ImageSink {
	return &ImageSink{}
}

// Begin allocates the image
func (s *ImageSink) Begin(width, height int) error {
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.next = 0
	return nil
}

// WritePixel stores the next pixel
func (s *ImageSink) WritePixel(sum core.Vec3, samples int) error {
	if s.img == nil {
		return ErrNotStarted
	}

	width := s.img.Bounds().Dx()
	if s.next >= width*s.img.Bounds().Dy() {
		return ErrImageFull
	}

	r, g, b := EncodeColor(sum, samples)
	s.img.SetRGBA(s.next%width, s.next/width, color.RGBA{R: r, G: g, B: b, A: 255})
	s.next++
	return nil
}

// End is a no-op for in-memory images
func (s *ImageSink) End() error {
	return nil
}

// Image returns the collected image, or nil before Begin
func (s *ImageSink) Image() *image.RGBA {
	return s.img
}

// PNGWriter collects pixels and encodes them as PNG when the image is complete
type PNGWriter struct {
	ImageSink
	w io.Writer
}

// NewPNGWriter creates a PNG sink writing to w
func NewPNGWriter(w io.Writer) *PNGWriter {
	return &PNGWriter{w: w}
}

// End encodes the collected image
func (p *PNGWriter) End() error {
	if p.img == nil {
		return ErrNotStarted
	}
	return errors.Wrap(png.Encode(p.w, p.img), "encoding png")
}
