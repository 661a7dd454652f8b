package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestFitCircle(t *testing.T) {
	center := NewVector3(1, 1, 1)
	radius := 2.0

	// Circle in a tilted plane with normal (1, 1, 1)/sqrt(3)
	n, err := NewVector3(1, 1, 1).Normalized()
	if err != nil {
		t.Fatalf("Normalized failed: %v", err)
	}
	u, err := NewVector3(1, -1, 0).Normalized()
	if err != nil {
		t.Fatalf("Normalized failed: %v", err)
	}
	w := n.Cross(u)

	var points []Vector3
	for _, theta := range []float64{0, 0.7, 1.4, 2.8, 4.2} {
		p := center.
			Add(u.Mul(radius * math.Cos(theta))).
			Add(w.Mul(radius * math.Sin(theta)))
		points = append(points, p)
	}

	fit, err := FitCircle(points)
	if err != nil {
		t.Fatalf("FitCircle failed: %v", err)
	}

	if math.Abs(fit.Radius-radius) > 1e-9 {
		t.Errorf("Radius failed: expected %v, got %v", radius, fit.Radius)
	}
	if d := fit.Center.Distance(center); d > 1e-9 {
		t.Errorf("Center failed: expected %v, got %v (off by %v)", center, fit.Center, d)
	}
	if fit.StdDev > 1e-9 {
		t.Errorf("StdDev failed: expected near zero for exact points, got %v", fit.StdDev)
	}
	if dot := math.Abs(fit.Normal.Dot(n)); math.Abs(dot-1) > 1e-9 {
		t.Errorf("Normal failed: expected parallel to %v, got %v", n, fit.Normal)
	}
}

func TestFitCircleCollinear(t *testing.T) {
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(1, 1, 1),
		NewVector3(2, 2, 2),
		NewVector3(3, 3, 3),
	}

	_, err := FitCircle(points)
	if !errors.Is(err, ErrDegenerateVector) {
		t.Errorf("FitCircle of collinear points: expected ErrDegenerateVector, got %v", err)
	}
}

func TestFitCircleTooFewPoints(t *testing.T) {
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
	}

	if _, err := FitCircle(points); err == nil {
		t.Error("FitCircle with two points should fail")
	}
}
