package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: image width and height must be at least 1")
	ErrInvalidSamples    = errors.New("renderer: samples per pixel must be at least 1")
	ErrImageFull         = errors.New("renderer: more pixels written than the image holds")
	ErrNotStarted        = errors.New("renderer: sink used before Begin")
)
