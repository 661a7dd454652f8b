package geometry

import (
	"fmt"
	"math"
)

// Line represents an infinite line in 3D space, defined by a point on the
// line and a direction. The unit direction is computed once at
// construction and cached. A Line is immutable; accessors return copies.
type Line struct {
	p  Vector3
	d  Vector3
	ud Vector3
}

// NewLine creates a line through point with the given direction.
// A zero-length direction fails with ErrDegenerateVector.
func NewLine(point, direction Vector3) (Line, error) {
	ud, err := direction.Normalized()
	if err != nil {
		return Line{}, fmt.Errorf("line direction: %w", ErrDegenerateVector)
	}
	return Line{
		p:  point.AsPosition(),
		d:  direction.AsFreeVector(),
		ud: ud.AsFreeVector(),
	}, nil
}

// NewLineFromPoints creates a line through p0 and p1, directed from p0
// towards p1. Coincident points fail with ErrDegenerateVector.
func NewLineFromPoints(p0, p1 Vector3) (Line, error) {
	return NewLine(p0, p1.Sub(p0))
}

// Point returns the line's defining point as a position vector
func (l Line) Point() Vector3 {
	return l.p
}

// Direction returns the line's direction as a free vector, at the
// magnitude it was constructed with
func (l Line) Direction() Vector3 {
	return l.d
}

// UnitDirection returns the line's unit direction as a free vector
func (l Line) UnitDirection() Vector3 {
	return l.ud
}

// ProjectedPoint returns the orthogonal projection of p onto the line,
// the point on the line closest to p
func (l Line) ProjectedPoint(p Vector3) Vector3 {
	v := l.p.Sub(p)
	return p.Add(v).Sub(l.ud.Mul(l.ud.Dot(v)))
}

// parallel reports whether the two unit directions are parallel or
// anti-parallel within ParallelEpsilon
func parallel(u1, u2 Vector3) bool {
	return 1-math.Abs(u1.Dot(u2)) < ParallelEpsilon
}

// ProjectedLine returns the point on the line closest to other.
//
// For (anti)parallel lines every point is equally close, so the line's
// own defining point is returned as a documented fallback.
//
// https://en.wikipedia.org/wiki/Skew_lines#Nearest_points
func (l Line) ProjectedLine(other Line) Vector3 {
	d1 := l.ud
	d2 := other.ud
	if parallel(d1, d2) {
		return l.Point()
	}
	n2 := d2.Cross(d1.Cross(d2))
	t := other.p.Sub(l.p).Dot(n2) / d1.Dot(n2)
	return l.p.Add(d1.Mul(t))
}

// NearestPoints returns the pair of mutually closest points, the first on
// the receiver and the second on other. The segment between them is
// perpendicular to both lines.
//
// For (anti)parallel lines the closest pair is not unique; the receiver's
// defining point and its projection onto other are returned, which is
// still a valid mutually perpendicular pair.
func (l Line) NearestPoints(other Line) (Vector3, Vector3) {
	d1 := l.ud
	d2 := other.ud
	if parallel(d1, d2) {
		p := l.Point()
		return p, other.ProjectedPoint(p)
	}
	p1 := l.p
	p2 := other.p
	n1 := d1.Cross(d2.Cross(d1))
	n2 := d2.Cross(d1.Cross(d2))
	c1 := p1.Add(d1.Mul(p2.Sub(p1).Dot(n2) / d1.Dot(n2)))
	c2 := p2.Add(d2.Mul(p1.Sub(p2).Dot(n1) / d2.Dot(n1)))
	return c1, c2
}

// String formats the line as "point + t * direction"
func (l Line) String() string {
	return fmt.Sprintf("%v + t * %v", l.p, l.ud)
}
