package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestNewPlaneZeroNormal(t *testing.T) {
	_, err := NewPlane(NewVector3(1, 2, 3), NewVector3(0, 0, 0))
	if !errors.Is(err, ErrDegenerateVector) {
		t.Errorf("NewPlane with zero normal: expected ErrDegenerateVector, got %v", err)
	}
}

func TestNewPlaneFromPoints(t *testing.T) {
	pl, err := NewPlaneFromPoints(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)
	if err != nil {
		t.Fatalf("NewPlaneFromPoints failed: %v", err)
	}

	// Right-hand rule: x cross y points along +z
	if !pl.Normal().Equals(NewVector3(0, 0, 1)) {
		t.Errorf("Normal failed: expected (0, 0, 1), got %v", pl.Normal())
	}
}

func TestNewPlaneFromCollinearPoints(t *testing.T) {
	_, err := NewPlaneFromPoints(
		NewVector3(0, 0, 0),
		NewVector3(1, 1, 1),
		NewVector3(2, 2, 2),
	)
	if !errors.Is(err, ErrDegenerateVector) {
		t.Errorf("NewPlaneFromPoints with collinear points: expected ErrDegenerateVector, got %v", err)
	}
}

func TestPlaneSignedDistance(t *testing.T) {
	pl, err := NewPlane(NewVector3(0, 0, 0), UnitZ())
	if err != nil {
		t.Fatalf("NewPlane failed: %v", err)
	}

	if d := pl.SignedDistance(NewVector3(1, 2, 5)); math.Abs(d-5) > 1e-10 {
		t.Errorf("SignedDistance failed: expected 5, got %v", d)
	}
	if d := pl.SignedDistance(NewVector3(-3, 0, -2)); math.Abs(d+2) > 1e-10 {
		t.Errorf("SignedDistance failed: expected -2, got %v", d)
	}
	if d := pl.SignedDistance(NewVector3(7, -4, 0)); math.Abs(d) > 1e-10 {
		t.Errorf("SignedDistance of a point on the plane: expected 0, got %v", d)
	}
}

func TestPlaneProjectedPoint(t *testing.T) {
	pl, err := NewPlane(NewVector3(0, 0, 0), UnitZ())
	if err != nil {
		t.Fatalf("NewPlane failed: %v", err)
	}

	result := pl.ProjectedPoint(NewVector3(1, 2, 3))
	if !result.Equals(NewVector3(1, 2, 0)) {
		t.Errorf("ProjectedPoint failed: expected (1, 2, 0), got %v", result)
	}
}

func TestPlaneIntersectLine(t *testing.T) {
	pl, err := NewPlane(NewVector3(0, 0, 2), UnitZ())
	if err != nil {
		t.Fatalf("NewPlane failed: %v", err)
	}
	l, err := NewLine(NewVector3(1, 1, 0), NewVector3(0, 0, 1))
	if err != nil {
		t.Fatalf("NewLine failed: %v", err)
	}

	hit, err := pl.IntersectLine(l)
	if err != nil {
		t.Fatalf("IntersectLine failed: %v", err)
	}
	if !hit.Equals(NewVector3(1, 1, 2)) {
		t.Errorf("IntersectLine failed: expected (1, 1, 2), got %v", hit)
	}
}

func TestPlaneIntersectParallelLine(t *testing.T) {
	pl, err := NewPlane(NewVector3(0, 0, 2), UnitZ())
	if err != nil {
		t.Fatalf("NewPlane failed: %v", err)
	}
	l, err := NewLine(NewVector3(0, 0, 0), NewVector3(1, 1, 0))
	if err != nil {
		t.Fatalf("NewLine failed: %v", err)
	}

	_, err = pl.IntersectLine(l)
	if !errors.Is(err, ErrNoIntersection) {
		t.Errorf("IntersectLine with parallel line: expected ErrNoIntersection, got %v", err)
	}
}

// The nearest point on l1 to l2 can also be found by intersecting l1 with
// the plane that contains l2 and the common perpendicular. Both paths must
// agree.
func TestPlaneIntersectionMatchesProjectedLine(t *testing.T) {
	l1, err := NewLine(NewVector3(0, 1, 1), NewVector3(0, 0.1, 1))
	if err != nil {
		t.Fatalf("NewLine failed: %v", err)
	}
	l2, err := NewLine(NewVector3(1, 1, 0.1), NewVector3(0, 1, 0))
	if err != nil {
		t.Fatalf("NewLine failed: %v", err)
	}

	d1 := l1.UnitDirection()
	d2 := l2.UnitDirection()
	n2 := d2.Cross(d1.Cross(d2))

	pl, err := NewPlane(l2.Point(), n2)
	if err != nil {
		t.Fatalf("NewPlane failed: %v", err)
	}

	viaPlane, err := pl.IntersectLine(l1)
	if err != nil {
		t.Fatalf("IntersectLine failed: %v", err)
	}
	viaProjection := l1.ProjectedLine(l2)

	if viaPlane.Distance(viaProjection) > 10*Epsilon {
		t.Errorf("plane intersection and line projection disagree: %v vs %v",
			viaPlane, viaProjection)
	}
}
