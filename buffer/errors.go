package buffer

import (
	"errors"
	"fmt"
)

// ErrNegativeResolution is returned by BufferPoint when asked for fewer
// than 3 sides — a polygon approximation of a disk needs at least a
// triangle.
var ErrNegativeResolution = errors.New("buffer: resolution must be at least 3 sides")

func bufferErrorf(op string, err error) error {
	return fmt.Errorf("buffer: %s: %w", op, err)
}
