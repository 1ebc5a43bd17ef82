package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnknownCity        = errors.New("unknown city")
	ErrNoPlacesDiscovered = errors.New("no places discovered")
	ErrMalformedDraft     = errors.New("malformed generator draft")
	ErrGenerationFailed   = errors.New("generation failed")
)
