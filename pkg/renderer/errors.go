package renderer

import "errors"

var (
	ErrInvalidRequest = errors.New("renderer: invalid render request")
	ErrInterrupted    = errors.New("renderer: interrupted while rendering")
)
