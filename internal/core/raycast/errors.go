package raycast

import "github.com/pkg/errors"

// Configuration errors. A rejected value is never applied.
var (
	ErrInvalidFOV         = errors.New("field of view must be positive")
	ErrInvalidMaxDistance = errors.New("maximum view distance must be positive")
	ErrInvalidWallHeight  = errors.New("wall height must be positive")
)

func validPositive(v float64) bool {
	return v > 0 && !isNaNOrInf(v)
}
