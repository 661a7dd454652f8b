package geometry

import (
	"fmt"
	"math"
)

// Plane represents an infinite plane in 3D space, defined by a point on
// the plane and a unit normal. A Plane is immutable; accessors return
// copies.
type Plane struct {
	p Vector3
	n Vector3
}

// NewPlane creates a plane through point with the given normal.
// A zero-length normal fails with ErrDegenerateVector.
func NewPlane(point, normal Vector3) (Plane, error) {
	un, err := normal.Normalized()
	if err != nil {
		return Plane{}, fmt.Errorf("plane normal: %w", ErrDegenerateVector)
	}
	return Plane{p: point.AsPosition(), n: un.AsFreeVector()}, nil
}

// NewPlaneFromPoints creates a plane through three points, with the
// normal following the right-hand rule around p0, p1, p2. Collinear
// points fail with ErrDegenerateVector.
func NewPlaneFromPoints(p0, p1, p2 Vector3) (Plane, error) {
	normal := p1.Sub(p0).Cross(p2.Sub(p0))
	if normal.LengthSquared() == 0 {
		return Plane{}, fmt.Errorf("plane points are collinear: %w", ErrDegenerateVector)
	}
	return NewPlane(p0, normal)
}

// Point returns the plane's defining point as a position vector
func (pl Plane) Point() Vector3 {
	return pl.p
}

// Normal returns the plane's unit normal as a free vector
func (pl Plane) Normal() Vector3 {
	return pl.n
}

// SignedDistance returns the distance from p to the plane, positive on
// the side the normal points to
func (pl Plane) SignedDistance(p Vector3) float64 {
	return pl.n.Dot(p.Sub(pl.p))
}

// ProjectedPoint returns the orthogonal projection of p onto the plane
func (pl Plane) ProjectedPoint(p Vector3) Vector3 {
	return p.Sub(pl.n.Mul(pl.SignedDistance(p)))
}

// IntersectLine returns the point where the line crosses the plane.
// A line parallel to the plane within ParallelEpsilon fails with
// ErrNoIntersection.
func (pl Plane) IntersectLine(l Line) (Vector3, error) {
	ud := l.UnitDirection()
	denom := pl.n.Dot(ud)
	if math.Abs(denom) < ParallelEpsilon {
		return Vector3{}, fmt.Errorf("line parallel to plane: %w", ErrNoIntersection)
	}
	t := pl.n.Dot(pl.p.Sub(l.Point())) / denom
	return l.Point().Add(ud.Mul(t)), nil
}

// String formats the plane as its point and normal
func (pl Plane) String() string {
	return fmt.Sprintf("plane through %v with normal %v", pl.p, pl.n)
}
