package polygon

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by this package's validation helpers. Callers
// branch on these with errors.Is, following the convention in
// builder/errors.go.
var (
	ErrEmptyRing    = errors.New("polygon: ring has no coordinates")
	ErrTooFewPoints = errors.New("polygon: ring has fewer than 3 distinct points")
)

func polygonErrorf(op string, err error) error {
	return fmt.Errorf("polygon: %s: %w", op, err)
}
