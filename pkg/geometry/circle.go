package geometry

import (
	"fmt"
	"math"
)

// CircleFit represents the result of fitting a circle to points
type CircleFit struct {
	Center Vector3 // Circle center in 3D
	Radius float64 // Circle radius
	Normal Vector3 // Normal vector of the plane containing the circle
	StdDev float64 // Standard deviation of fit (quality measure)
}

// FitCircle fits a circle to a set of 3D points. The containing plane is
// derived from the first, middle and last point, and the remaining points
// are projected onto it before fitting. Collinear points fail with
// ErrDegenerateVector.
//
// Uses the 3-point determinant formula for a circle through 3 points:
//
//	D = 2(x1(y2-y3) + x2(y3-y1) + x3(y1-y2))
//	cx = ((x1²+y1²)(y2-y3) + (x2²+y2²)(y3-y1) + (x3²+y3²)(y1-y2)) / D
//	cy = ((x1²+y1²)(x3-x2) + (x2²+y2²)(x1-x3) + (x3²+y3²)(x2-x1)) / D
func FitCircle(points []Vector3) (*CircleFit, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("need at least 3 points to fit a circle")
	}

	a := points[0]
	b := points[len(points)/2]
	c := points[len(points)-1]

	plane, err := NewPlaneFromPoints(a, b, c)
	if err != nil {
		return nil, err
	}

	// Orthonormal in-plane basis. The normal is perpendicular to the
	// first edge, so both axes come out unit length.
	u, err := b.Sub(a).Normalized()
	if err != nil {
		return nil, err
	}
	w := plane.Normal().Cross(u)

	// Plane coordinates of each point, with a as origin
	points2D := make([][2]float64, len(points))
	for i, p := range points {
		rel := p.Sub(a)
		points2D[i] = [2]float64{rel.Dot(u), rel.Dot(w)}
	}

	p1 := points2D[0]
	p2 := points2D[len(points2D)/2]
	p3 := points2D[len(points2D)-1]

	x1, y1 := p1[0], p1[1]
	x2, y2 := p2[0], p2[1]
	x3, y3 := p3[0], p3[1]

	D := 2.0 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(D) < Epsilon {
		return nil, fmt.Errorf("fit points are collinear: %w", ErrDegenerateVector)
	}

	x1sq := x1*x1 + y1*y1
	x2sq := x2*x2 + y2*y2
	x3sq := x3*x3 + y3*y3

	cx2d := (x1sq*(y2-y3) + x2sq*(y3-y1) + x3sq*(y1-y2)) / D
	cy2d := (x1sq*(x3-x2) + x2sq*(x1-x3) + x3sq*(x2-x1)) / D

	dx := x1 - cx2d
	dy := y1 - cy2d
	radius := math.Sqrt(dx*dx + dy*dy)

	center := a.Add(u.Mul(cx2d)).Add(w.Mul(cy2d))

	// Fit quality: standard deviation of radial distances over all points
	var sumError float64
	for _, p := range points2D {
		dx := p[0] - cx2d
		dy := p[1] - cy2d
		dist := math.Sqrt(dx*dx + dy*dy)
		sumError += (dist - radius) * (dist - radius)
	}
	stdDev := math.Sqrt(sumError / float64(len(points2D)))

	return &CircleFit{
		Center: center,
		Radius: radius,
		Normal: plane.Normal(),
		StdDev: stdDev,
	}, nil
}
