package polyline

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNonFinite is reported by Validate for NaN or infinite coordinates.
	ErrNonFinite = errors.New("polyline: non-finite coordinate")

	// ErrInvalidEpsilon is reported by ValidateEpsilon for a negative or NaN
	// tolerance.
	ErrInvalidEpsilon = errors.New("polyline: epsilon must be a non-negative number")
)

// Validate returns an error wrapping ErrNonFinite for the first point with a
// NaN or infinite coordinate. Simplify itself never validates; this is for
// callers that want to reject such input.
func Validate(points []Point) error {
	for i, p := range points {
		if !p.IsFinite() {
			return fmt.Errorf("%w: point %d is (%v, %v)", ErrNonFinite, i, p.X, p.Y)
		}
	}
	return nil
}

// ValidateEpsilon returns an error wrapping ErrInvalidEpsilon unless eps is
// a non-negative number. +Inf is accepted and collapses every polyline to
// its endpoints.
func ValidateEpsilon(eps float64) error {
	if math.IsNaN(eps) || eps < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidEpsilon, eps)
	}
	return nil
}
