package terrain

import "errors"

var (
	// ErrInvalidDimensions reports a non-positive grid width or height.
	ErrInvalidDimensions = errors.New("terrain: invalid dimensions")

	// ErrInvalidConfiguration reports an out-of-range configuration value.
	ErrInvalidConfiguration = errors.New("terrain: invalid configuration")

	// ErrOutOfBounds reports query coordinates outside the generated grid.
	ErrOutOfBounds = errors.New("terrain: coordinates out of bounds")
)
