package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Create a right triangle with sides 3, 4, 5
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	expected := 6.0 // (3 * 4) / 2 = 6

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleEdgeLengths(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	lengths := tri.EdgeLengths()

	// Expected lengths: 3, 5, 4 (Pythagorean triple)
	if math.Abs(lengths[0]-3.0) > 1e-10 {
		t.Errorf("Edge 0 length failed: expected 3.0, got %v", lengths[0])
	}
	if math.Abs(lengths[1]-5.0) > 1e-10 {
		t.Errorf("Edge 1 length failed: expected 5.0, got %v", lengths[1])
	}
	if math.Abs(lengths[2]-4.0) > 1e-10 {
		t.Errorf("Edge 2 length failed: expected 4.0, got %v", lengths[2])
	}
}

func TestTrianglePerimeter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	perimeter := tri.Perimeter()
	expected := 12.0 // 3 + 4 + 5 = 12

	if math.Abs(perimeter-expected) > 1e-10 {
		t.Errorf("Perimeter failed: expected %v, got %v", expected, perimeter)
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	center := tri.Center()
	expected := NewVector3(1, 1, 0)

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestTriangleCalculateNormal(t *testing.T) {
	tri := NewTriangle(
		Vector3{},
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	normal, err := tri.CalculateNormal()
	if err != nil {
		t.Fatalf("CalculateNormal failed: %v", err)
	}
	if !normal.Equals(NewVector3(0, 0, 1)) {
		t.Errorf("CalculateNormal failed: expected (0, 0, 1), got %v", normal)
	}
}

func TestTriangleCalculateNormalDegenerate(t *testing.T) {
	tri := NewTriangle(
		Vector3{},
		NewVector3(0, 0, 0),
		NewVector3(1, 1, 1),
		NewVector3(2, 2, 2),
	)

	_, err := tri.CalculateNormal()
	if !errors.Is(err, ErrDegenerateVector) {
		t.Errorf("CalculateNormal of collinear vertices: expected ErrDegenerateVector, got %v", err)
	}
}

func TestTriangleAngles(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	angles := tri.Angles()

	// Right angle at V1
	if math.Abs(angles[0]-math.Pi/2) > 1e-10 {
		t.Errorf("Angle at V1 failed: expected %v, got %v", math.Pi/2, angles[0])
	}

	sum := angles[0] + angles[1] + angles[2]
	if math.Abs(sum-math.Pi) > 1e-10 {
		t.Errorf("Angle sum failed: expected %v, got %v", math.Pi, sum)
	}
}

func TestTriangleAnglesThin(t *testing.T) {
	// Needle-thin triangle: the vertex angles come from nearly parallel
	// edges and must not produce NaN
	tri := NewTriangle(
		Vector3{},
		NewVector3(0, 0, 0),
		NewVector3(10, 0, 0),
		NewVector3(5, 1e-12, 0),
	)

	angles := tri.Angles()
	for i, a := range angles {
		if math.IsNaN(a) {
			t.Errorf("Angle %d of a thin triangle is NaN", i)
		}
	}
}

func TestTrianglePlane(t *testing.T) {
	tri := NewTriangle(
		Vector3{},
		NewVector3(0, 0, 2),
		NewVector3(1, 0, 2),
		NewVector3(0, 1, 2),
	)

	pl, err := tri.Plane()
	if err != nil {
		t.Fatalf("Plane failed: %v", err)
	}

	for i, v := range []Vector3{tri.V1, tri.V2, tri.V3} {
		if d := pl.SignedDistance(v); math.Abs(d) > 1e-10 {
			t.Errorf("vertex %d is off the triangle plane by %v", i, d)
		}
	}
}
