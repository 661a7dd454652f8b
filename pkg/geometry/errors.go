package geometry

import "errors"

// ErrConstruction reports constructor input of an unsupported shape,
// such as a component slice of the wrong length
var ErrConstruction = errors.New("invalid construction input")

// ErrDegenerateVector reports a zero-length vector where a direction is
// required, such as normalization or a line direction
var ErrDegenerateVector = errors.New("degenerate zero-length vector")

// ErrNoIntersection reports that two entities do not intersect, such as
// a line parallel to a plane
var ErrNoIntersection = errors.New("no intersection")
