package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/pkg/errors"
)

var errUnknownFormat = errors.New("unknown output format")

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func isStdout(path string) bool {
	return path == "-" || path == ""
}

// Open the render destination. "-" selects stdout.
func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if isStdout(path) {
		return nopWriteCloser{stdout}, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, "creating output directory %s", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "creating output file %s", path)
	}
	return f, nil
}

// Pick the output format; an empty format is inferred from the file extension.
func outputFormat(format, path string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return "png"
	}
	return "ppm"
}

type sinkFactory func(w io.Writer) renderer.PixelSink

var sinkFactories = map[string]sinkFactory{
	"ppm": func(w io.Writer) renderer.PixelSink { return renderer.NewPPMWriter(w) },
	"png": func(w io.Writer) renderer.PixelSink { return renderer.NewPNGWriter(w) },
}

// Look up the sink constructor for a format. Called before any output is
// opened so a bad format leaves nothing on disk.
func newSinkFactory(format string) (sinkFactory, error) {
	factory, ok := sinkFactories[format]
	if !ok {
		return nil, errors.Wrapf(errUnknownFormat, "%q", format)
	}
	return factory, nil
}
