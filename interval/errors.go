package interval

import "errors"

var (
	// ErrInvalidBounds signals a lower cut sorting after the upper cut.
	ErrInvalidBounds = errors.New("interval: lower bound after upper bound")
)
