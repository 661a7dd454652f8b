package model

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/geomkit/geomkit/pkg/geometry"
)

// Model represents a triangle mesh loaded from a file
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new empty model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.ExtendTriangle(triangle)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// Load reads a model file, dispatching on the file extension.
// STL (.stl) and glTF (.glb, .gltf) are supported.
func Load(path string) (*Model, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		return ParseSTL(path)
	case ".glb", ".gltf":
		return LoadGLTF(path)
	default:
		return nil, fmt.Errorf("unsupported model format %q", filepath.Ext(path))
	}
}
