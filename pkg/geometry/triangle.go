package geometry

import "fmt"

// Triangle represents a triangular facet in 3D space
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// CalculateNormal computes the unit normal from the vertex winding.
// A degenerate (zero-area) triangle fails with ErrDegenerateVector.
func (t Triangle) CalculateNormal() (Vector3, error) {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	normal, err := edge1.Cross(edge2).Normalized()
	if err != nil {
		return Vector3{}, fmt.Errorf("degenerate triangle: %w", ErrDegenerateVector)
	}
	return normal.AsFreeVector(), nil
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Length() / 2.0
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return t.V1.Add(t.V2).Add(t.V3).Div(3.0)
}

// Angles returns the three interior angles in radians, in vertex order.
// The clamped Angle keeps needle-thin triangles from producing NaN.
func (t Triangle) Angles() [3]float64 {
	e1 := t.V2.Sub(t.V1)
	e2 := t.V3.Sub(t.V2)
	e3 := t.V1.Sub(t.V3)

	return [3]float64{
		e1.Angle(e3.Negate()),
		e2.Angle(e1.Negate()),
		e3.Angle(e2.Negate()),
	}
}

// Plane returns the plane the triangle lies in. A degenerate triangle
// fails with ErrDegenerateVector.
func (t Triangle) Plane() (Plane, error) {
	return NewPlaneFromPoints(t.V1, t.V2, t.V3)
}
