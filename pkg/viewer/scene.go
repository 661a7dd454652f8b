package viewer

import (
	"github.com/geomkit/geomkit/pkg/geometry"
	"github.com/geomkit/geomkit/pkg/model"
)

// Scene holds everything the renderer can draw: an optional model mesh,
// infinite line overlays, free-standing marker points and straight
// segments such as a nearest-points connector.
type Scene struct {
	Model    *model.Model
	Lines    []geometry.Line
	Points   []geometry.Vector3
	Segments [][2]geometry.Vector3
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{}
}

// AddLine adds an infinite line overlay
func (s *Scene) AddLine(l geometry.Line) {
	s.Lines = append(s.Lines, l)
}

// AddPoint adds a marker point
func (s *Scene) AddPoint(p geometry.Vector3) {
	s.Points = append(s.Points, p)
}

// AddSegment adds a straight segment between two points
func (s *Scene) AddSegment(from, to geometry.Vector3) {
	s.Segments = append(s.Segments, [2]geometry.Vector3{from, to})
}

// Bounds returns the bounding box enclosing the scene's model, points,
// segments and line anchor points. A scene without extent falls back to
// a unit box around the origin so the camera always has something to
// frame.
func (s *Scene) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	empty := true

	if s.Model != nil && s.Model.TriangleCount() > 0 {
		mb := s.Model.BoundingBox()
		bbox.Extend(mb.Min)
		bbox.Extend(mb.Max)
		empty = false
	}
	for _, l := range s.Lines {
		bbox.Extend(l.Point())
		empty = false
	}
	for _, p := range s.Points {
		bbox.Extend(p)
		empty = false
	}
	for _, seg := range s.Segments {
		bbox.Extend(seg[0])
		bbox.Extend(seg[1])
		empty = false
	}

	if empty {
		bbox.Extend(geometry.NewVector3(-1, -1, -1))
		bbox.Extend(geometry.NewVector3(1, 1, 1))
		return bbox
	}

	// A flat or single-point extent still needs volume to frame
	if bbox.Diagonal() < 1e-6 {
		center := bbox.Center()
		bbox.Extend(center.Add(geometry.NewVector3(1, 1, 1)))
		bbox.Extend(center.Sub(geometry.NewVector3(1, 1, 1)))
	}

	return bbox
}

// clipBounds returns the scene bounds inflated for clipping infinite
// lines, so overlays extend visibly past the model
func (s *Scene) clipBounds() geometry.BoundingBox {
	bbox := s.Bounds()
	margin := bbox.Size().Mul(0.5).Add(geometry.NewVector3(0.5, 0.5, 0.5))

	clip := geometry.NewBoundingBox()
	clip.Extend(bbox.Min.Sub(margin))
	clip.Extend(bbox.Max.Add(margin))
	return clip
}
