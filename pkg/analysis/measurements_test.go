package analysis

import (
	"math"
	"testing"

	"github.com/geomkit/geomkit/pkg/geometry"
)

func TestAnalyzeModel(t *testing.T) {
	m := squareModel()
	result := AnalyzeModel(m)

	if result.TriangleCount != 2 {
		t.Errorf("TriangleCount failed: expected 2, got %d", result.TriangleCount)
	}
	if result.VertexCount != 4 {
		t.Errorf("VertexCount failed: expected 4, got %d", result.VertexCount)
	}
	// 4 perimeter edges plus the shared diagonal
	if result.EdgeCount != 5 {
		t.Errorf("EdgeCount failed: expected 5, got %d", result.EdgeCount)
	}
	if result.BoundaryEdgeCount != 4 {
		t.Errorf("BoundaryEdgeCount failed: expected 4, got %d", result.BoundaryEdgeCount)
	}
	if math.Abs(result.BoundaryLength-4.0) > 1e-10 {
		t.Errorf("BoundaryLength failed: expected 4.0, got %v", result.BoundaryLength)
	}
	if result.Watertight {
		t.Errorf("Watertight failed: an open square is not watertight")
	}
	if math.Abs(result.SurfaceArea-1.0) > 1e-10 {
		t.Errorf("SurfaceArea failed: expected 1.0, got %v", result.SurfaceArea)
	}
	if !result.Dimensions.Equals(geometry.NewVector3(1, 1, 0)) {
		t.Errorf("Dimensions failed: expected (1, 1, 0), got %v", result.Dimensions)
	}
	if math.Abs(result.MinEdgeLength-1.0) > 1e-10 {
		t.Errorf("MinEdgeLength failed: expected 1.0, got %v", result.MinEdgeLength)
	}
	if math.Abs(result.MaxEdgeLength-math.Sqrt2) > 1e-10 {
		t.Errorf("MaxEdgeLength failed: expected sqrt(2), got %v", result.MaxEdgeLength)
	}
	if math.Abs(result.AvgEdgeLength-(4+math.Sqrt2)/5) > 1e-10 {
		t.Errorf("AvgEdgeLength failed: expected %v, got %v", (4+math.Sqrt2)/5, result.AvgEdgeLength)
	}
}

func TestFindLongestEdges(t *testing.T) {
	result := AnalyzeModel(squareModel())

	longest := FindLongestEdges(result, 2)
	if len(longest) != 2 {
		t.Fatalf("FindLongestEdges failed: expected 2 edges, got %d", len(longest))
	}
	if math.Abs(longest[0].Length-math.Sqrt2) > 1e-10 {
		t.Errorf("longest edge failed: expected sqrt(2), got %v", longest[0].Length)
	}
	if math.Abs(longest[1].Length-1.0) > 1e-10 {
		t.Errorf("second longest failed: expected 1.0, got %v", longest[1].Length)
	}

	// Requesting more edges than exist returns them all
	if all := FindLongestEdges(result, 100); len(all) != result.EdgeCount {
		t.Errorf("FindLongestEdges overflow failed: expected %d edges, got %d", result.EdgeCount, len(all))
	}
}

func TestFindShortestEdges(t *testing.T) {
	result := AnalyzeModel(squareModel())

	shortest := FindShortestEdges(result, 3)
	if len(shortest) != 3 {
		t.Fatalf("FindShortestEdges failed: expected 3 edges, got %d", len(shortest))
	}
	for i, edge := range shortest {
		if math.Abs(edge.Length-1.0) > 1e-10 {
			t.Errorf("edge %d length failed: expected 1.0, got %v", i, edge.Length)
		}
	}
}

func TestFindEdgesByLength(t *testing.T) {
	result := AnalyzeModel(squareModel())

	unit := FindEdgesByLength(result, 0.99, 1.01)
	if len(unit) != 4 {
		t.Errorf("FindEdgesByLength failed: expected 4 unit edges, got %d", len(unit))
	}
}

func TestFormatMeasurement(t *testing.T) {
	if got := FormatMeasurement(1.5, "mm"); got != "1.500000 mm" {
		t.Errorf("FormatMeasurement failed: expected %q, got %q", "1.500000 mm", got)
	}
	if got := FormatMeasurement(2, ""); got != "2.000000 units" {
		t.Errorf("FormatMeasurement default unit failed: got %q", got)
	}
}
