package geom

import "errors"

// ErrParallel indicates that Intersect was asked for the meeting point of
// two rays whose supporting lines never cross (or coincide). Callers must
// check for parallelism with Parallel before intersecting when the input
// may legitimately be parallel.
var ErrParallel = errors.New("geom: rays are parallel")
