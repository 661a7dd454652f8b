package analysis

import (
	"github.com/geomkit/geomkit/pkg/geometry"
	"github.com/geomkit/geomkit/pkg/model"
)

// EdgeUse describes an undirected edge and how many triangles use it
type EdgeUse struct {
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
	Count  int
}

// UniqueVertices returns the model's distinct vertices in first-seen
// order. Vertices are distinct by exact coordinates, the way mesh files
// repeat them across triangles.
func UniqueVertices(m *model.Model) []geometry.Vector3 {
	seen := make(map[geometry.Vector3]bool)
	var vertices []geometry.Vector3

	for _, triangle := range m.Triangles {
		for _, vertex := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			if seen[vertex] {
				continue
			}
			seen[vertex] = true
			vertices = append(vertices, vertex)
		}
	}

	return vertices
}

// UniqueEdges returns the model's distinct undirected edges in
// first-seen order, each with the number of triangles using it
func UniqueEdges(m *model.Model) []EdgeUse {
	index := make(map[[2]geometry.Vector3]int)
	var edges []EdgeUse

	for _, triangle := range m.Triangles {
		corners := [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3}
		for i := range corners {
			start, end := corners[i], corners[(i+1)%3]

			key := [2]geometry.Vector3{start, end}
			if vertexLess(end, start) {
				key[0], key[1] = end, start
			}

			if at, ok := index[key]; ok {
				edges[at].Count++
				continue
			}
			index[key] = len(edges)
			edges = append(edges, EdgeUse{
				Start:  start,
				End:    end,
				Length: start.Distance(end),
				Count:  1,
			})
		}
	}

	return edges
}

// BoundaryEdges returns the edges used by exactly one triangle. A closed
// surface has none; on an open mesh they outline the holes.
func BoundaryEdges(edges []EdgeUse) []EdgeUse {
	var boundary []EdgeUse
	for _, edge := range edges {
		if edge.Count == 1 {
			boundary = append(boundary, edge)
		}
	}
	return boundary
}

// IsWatertight reports whether every edge is shared by exactly two
// triangles
func IsWatertight(edges []EdgeUse) bool {
	for _, edge := range edges {
		if edge.Count != 2 {
			return false
		}
	}
	return len(edges) > 0
}

// vertexLess orders vertices lexicographically by component, to pick a
// canonical endpoint order for undirected edges
func vertexLess(a, b geometry.Vector3) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}
