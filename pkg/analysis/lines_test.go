package analysis

import (
	"math"
	"testing"

	"github.com/geomkit/geomkit/pkg/geometry"
	"github.com/geomkit/geomkit/pkg/model"
)

func mustLine(t *testing.T, point, direction geometry.Vector3) geometry.Line {
	t.Helper()
	l, err := geometry.NewLine(point, direction)
	if err != nil {
		t.Fatalf("NewLine failed: %v", err)
	}
	return l
}

// Two triangles spanning the unit square in the z=1 plane
func squareModel() *model.Model {
	m := model.NewModel("square")
	m.AddTriangle(geometry.NewTriangle(
		geometry.NewFreeVector3(0, 0, 1),
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(1, 0, 1),
		geometry.NewVector3(1, 1, 1),
	))
	m.AddTriangle(geometry.NewTriangle(
		geometry.NewFreeVector3(0, 0, 1),
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(1, 1, 1),
		geometry.NewVector3(0, 1, 1),
	))
	return m
}

func TestPointLineDistance(t *testing.T) {
	xAxis := mustLine(t, geometry.NewVector3(0, 0, 0), geometry.UnitX())

	if d := PointLineDistance(geometry.NewVector3(7, 3, 4), xAxis); math.Abs(d-5) > 1e-10 {
		t.Errorf("PointLineDistance failed: expected 5, got %v", d)
	}
	if d := PointLineDistance(geometry.NewVector3(2, 0, 0), xAxis); math.Abs(d) > 1e-10 {
		t.Errorf("PointLineDistance of a point on the line: expected 0, got %v", d)
	}
}

func TestLineLineDistance(t *testing.T) {
	l1 := mustLine(t, geometry.NewVector3(0, 0, 0), geometry.UnitX())
	l2 := mustLine(t, geometry.NewVector3(0, 0, 1), geometry.UnitY())

	if d := LineLineDistance(l1, l2); math.Abs(d-1) > 1e-10 {
		t.Errorf("LineLineDistance failed: expected 1, got %v", d)
	}
}

func TestLineLineDistanceParallel(t *testing.T) {
	l1 := mustLine(t, geometry.NewVector3(0, 0, 0), geometry.UnitX())
	l2 := mustLine(t, geometry.NewVector3(5, 3, 4), geometry.UnitX())

	if d := LineLineDistance(l1, l2); math.Abs(d-5) > 1e-10 {
		t.Errorf("LineLineDistance of parallel lines: expected 5, got %v", d)
	}
}

func TestLineLineAngle(t *testing.T) {
	l1 := mustLine(t, geometry.NewVector3(0, 0, 0), geometry.UnitX())
	l2 := mustLine(t, geometry.NewVector3(0, 0, 0), geometry.UnitY())

	if a := LineLineAngle(l1, l2); math.Abs(a-math.Pi/2) > 1e-10 {
		t.Errorf("LineLineAngle failed: expected %v, got %v", math.Pi/2, a)
	}

	// The angle is the acute one regardless of direction sense
	l3 := mustLine(t, geometry.NewVector3(0, 0, 0), geometry.NewVector3(-1, 0.0001, 0))
	if a := LineLineAngle(l1, l3); a > math.Pi/2 {
		t.Errorf("LineLineAngle returned an obtuse angle: %v", a)
	}
}

func TestFindNearestVertexToLine(t *testing.T) {
	m := squareModel()

	// Vertical line just off the (1, 1, 1) corner
	l := mustLine(t, geometry.NewVector3(1.5, 1, 0), geometry.UnitZ())

	vertex, distance := FindNearestVertexToLine(m, l)
	if !vertex.Equals(geometry.NewVector3(1, 1, 1)) {
		t.Errorf("FindNearestVertexToLine failed: expected (1, 1, 1), got %v", vertex)
	}
	if math.Abs(distance-0.5) > 1e-10 {
		t.Errorf("FindNearestVertexToLine distance failed: expected 0.5, got %v", distance)
	}
}

func TestSpanAlongLine(t *testing.T) {
	m := squareModel()

	// Axis-parallel line starting one unit outside the model
	l := mustLine(t, geometry.NewVector3(-1, 0, 1), geometry.UnitX())

	tMin, tMax := SpanAlongLine(m, l)
	if math.Abs(tMin-1) > 1e-10 {
		t.Errorf("SpanAlongLine tMin failed: expected 1, got %v", tMin)
	}
	if math.Abs(tMax-2) > 1e-10 {
		t.Errorf("SpanAlongLine tMax failed: expected 2, got %v", tMax)
	}
}
