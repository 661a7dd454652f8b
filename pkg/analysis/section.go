package analysis

import (
	"slices"

	"github.com/geomkit/geomkit/pkg/geometry"
	"github.com/geomkit/geomkit/pkg/model"
)

// Contour is an ordered polyline from a model cross section. Closed
// contours wrap from the last point back to the first.
type Contour struct {
	Points []geometry.Vector3
	Closed bool
}

// Length returns the total polyline length, including the closing edge
// of a closed contour
func (c Contour) Length() float64 {
	total := 0.0
	for i := 0; i+1 < len(c.Points); i++ {
		total += c.Points[i].Distance(c.Points[i+1])
	}
	if c.Closed && len(c.Points) > 2 {
		total += c.Points[len(c.Points)-1].Distance(c.Points[0])
	}
	return total
}

// Segments returns the contour as point pairs
func (c Contour) Segments() [][2]geometry.Vector3 {
	var segments [][2]geometry.Vector3
	for i := 0; i+1 < len(c.Points); i++ {
		segments = append(segments, [2]geometry.Vector3{c.Points[i], c.Points[i+1]})
	}
	if c.Closed && len(c.Points) > 2 {
		segments = append(segments, [2]geometry.Vector3{c.Points[len(c.Points)-1], c.Points[0]})
	}
	return segments
}

// CrossSection intersects the model with a plane and chains the
// resulting cuts into contours. Triangles lying in the plane are
// skipped; their boundary comes from the adjacent triangles.
func CrossSection(m *model.Model, pl geometry.Plane) []Contour {
	var segments [][2]geometry.Vector3

	for _, triangle := range m.Triangles {
		if segment, ok := trianglePlaneSegment(triangle, pl); ok {
			segments = append(segments, segment)
		}
	}

	return chainSegments(segments)
}

// trianglePlaneSegment intersects one triangle with the plane
func trianglePlaneSegment(t geometry.Triangle, pl geometry.Plane) ([2]geometry.Vector3, bool) {
	vertices := [3]geometry.Vector3{t.V1, t.V2, t.V3}

	var dist [3]float64
	onPlane := 0
	for i, v := range vertices {
		dist[i] = pl.SignedDistance(v)
		if dist[i] == 0 {
			onPlane++
		}
	}
	if onPlane == 3 {
		return [2]geometry.Vector3{}, false
	}

	var points []geometry.Vector3
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		if dist[i] == 0 {
			points = append(points, vertices[i])
			continue
		}
		if (dist[i] > 0) == (dist[j] > 0) || dist[j] == 0 {
			continue
		}
		// Edge crosses the plane
		f := dist[i] / (dist[i] - dist[j])
		points = append(points, vertices[i].Add(vertices[j].Sub(vertices[i]).Mul(f)))
	}

	// Drop duplicates from cuts through a vertex
	unique := points[:0]
	for _, p := range points {
		duplicate := false
		for _, q := range unique {
			if p.Equals(q) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, p)
		}
	}

	if len(unique) < 2 {
		return [2]geometry.Vector3{}, false
	}
	return [2]geometry.Vector3{unique[0], unique[1]}, true
}

// chainSegments orders unordered cut segments into contours
func chainSegments(segments [][2]geometry.Vector3) []Contour {
	unused := slices.Clone(segments)

	// extend walks forward from the last point, consuming matching
	// segments, and reports whether the contour closed on itself
	extend := func(points []geometry.Vector3) ([]geometry.Vector3, bool) {
		for {
			last := points[len(points)-1]
			next := -1
			var nextPoint geometry.Vector3

			for j, segment := range unused {
				if segment[0].Equals(last) {
					next, nextPoint = j, segment[1]
					break
				}
				if segment[1].Equals(last) {
					next, nextPoint = j, segment[0]
					break
				}
			}
			if next < 0 {
				return points, false
			}

			unused = append(unused[:next], unused[next+1:]...)
			points = append(points, nextPoint)

			if points[0].Equals(points[len(points)-1]) {
				return points[:len(points)-1], true
			}
		}
	}

	var contours []Contour
	for len(unused) > 0 {
		points := []geometry.Vector3{unused[0][0], unused[0][1]}
		unused = unused[1:]

		points, closed := extend(points)
		if !closed {
			// The first segment may sit mid-chain; walk the other way too
			slices.Reverse(points)
			points, closed = extend(points)
		}

		contours = append(contours, Contour{Points: points, Closed: closed})
	}

	return contours
}
