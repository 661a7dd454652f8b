package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/geomkit/geomkit/pkg/geometry"
	"github.com/geomkit/geomkit/pkg/model"
)

// EdgeInfo describes a distinct edge for length queries
type EdgeInfo struct {
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
}

// MeasurementResult contains various measurements of a model. Edge
// statistics cover distinct undirected edges; an edge shared by two
// triangles counts once.
type MeasurementResult struct {
	BoundingBox       geometry.BoundingBox
	Dimensions        geometry.Vector3
	Volume            float64
	SurfaceArea       float64
	TriangleCount     int
	VertexCount       int
	EdgeCount         int
	BoundaryEdgeCount int
	BoundaryLength    float64
	Watertight        bool
	MinEdgeLength     float64
	MaxEdgeLength     float64
	AvgEdgeLength     float64
	AllEdges          []EdgeInfo
}

// AnalyzeModel performs comprehensive analysis on a model
func AnalyzeModel(m *model.Model) *MeasurementResult {
	edges := UniqueEdges(m)
	boundary := BoundaryEdges(edges)

	result := &MeasurementResult{
		BoundingBox:       m.BoundingBox(),
		SurfaceArea:       m.SurfaceArea(),
		TriangleCount:     m.TriangleCount(),
		VertexCount:       len(UniqueVertices(m)),
		EdgeCount:         len(edges),
		BoundaryEdgeCount: len(boundary),
		Watertight:        IsWatertight(edges),
		AllEdges:          make([]EdgeInfo, 0, len(edges)),
	}

	result.Dimensions = result.BoundingBox.Size()
	result.Volume = result.BoundingBox.Volume()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, edge := range edges {
		result.AllEdges = append(result.AllEdges, EdgeInfo{
			Start:  edge.Start,
			End:    edge.End,
			Length: edge.Length,
		})

		totalLength += edge.Length
		if edge.Length < minLength {
			minLength = edge.Length
		}
		if edge.Length > maxLength {
			maxLength = edge.Length
		}
	}

	for _, edge := range boundary {
		result.BoundaryLength += edge.Length
	}

	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the model
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// FindShortestEdges returns the N shortest edges in the model
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length < edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// DistanceBetweenPoints calculates the distance between two arbitrary points
func DistanceBetweenPoints(p1, p2 geometry.Vector3) float64 {
	return p1.Distance(p2)
}

// FindNearestVertex finds the vertex in the model nearest to a given point
func FindNearestVertex(m *model.Model, point geometry.Vector3) (geometry.Vector3, float64) {
	var nearestVertex geometry.Vector3
	minDistance := math.MaxFloat64

	for _, vertex := range UniqueVertices(m) {
		distance := point.Distance(vertex)
		if distance < minDistance {
			minDistance = distance
			nearestVertex = vertex
		}
	}

	return nearestVertex, minDistance
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return v.String()
}
