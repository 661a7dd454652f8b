package analysis

import (
	"math"

	"github.com/geomkit/geomkit/pkg/geometry"
	"github.com/geomkit/geomkit/pkg/model"
)

// PointLineDistance returns the perpendicular distance from a point to a line
func PointLineDistance(p geometry.Vector3, l geometry.Line) float64 {
	return p.Distance(l.ProjectedPoint(p))
}

// LineLineDistance returns the distance of closest approach between two lines.
// Parallel lines report their constant offset.
func LineLineDistance(l1, l2 geometry.Line) float64 {
	c1, c2 := l1.NearestPoints(l2)
	return c1.Distance(c2)
}

// LineLineAngle returns the acute angle between two lines in radians,
// independent of the direction sense either line was constructed with
func LineLineAngle(l1, l2 geometry.Line) float64 {
	angle := l1.UnitDirection().Angle(l2.UnitDirection())
	if angle > math.Pi/2 {
		angle = math.Pi - angle
	}
	return angle
}

// FindNearestVertexToLine finds the model vertex closest to a line
func FindNearestVertexToLine(m *model.Model, l geometry.Line) (geometry.Vector3, float64) {
	var nearestVertex geometry.Vector3
	minDistance := math.MaxFloat64

	for _, vertex := range UniqueVertices(m) {
		distance := PointLineDistance(vertex, l)
		if distance < minDistance {
			minDistance = distance
			nearestVertex = vertex
		}
	}

	return nearestVertex, minDistance
}

// SpanAlongLine returns the extent of the model's vertices projected onto
// the line, as signed parameters along the unit direction measured from
// the line's defining point
func SpanAlongLine(m *model.Model, l geometry.Line) (tMin, tMax float64) {
	tMin = math.MaxFloat64
	tMax = -math.MaxFloat64

	point := l.Point()
	ud := l.UnitDirection()

	for _, vertex := range UniqueVertices(m) {
		t := vertex.Sub(point).Dot(ud)
		tMin = math.Min(tMin, t)
		tMax = math.Max(tMax, t)
	}

	return tMin, tMax
}
