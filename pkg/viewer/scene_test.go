package viewer

import (
	"testing"

	"github.com/geomkit/geomkit/pkg/geometry"
	"github.com/geomkit/geomkit/pkg/model"
)

func TestSceneBoundsEmpty(t *testing.T) {
	scene := NewScene()

	bbox := scene.Bounds()
	if !bbox.Min.Equals(geometry.NewVector3(-1, -1, -1)) || !bbox.Max.Equals(geometry.NewVector3(1, 1, 1)) {
		t.Errorf("empty scene bounds failed: expected unit box, got %v to %v", bbox.Min, bbox.Max)
	}
}

func TestSceneBoundsSinglePoint(t *testing.T) {
	scene := NewScene()
	scene.AddPoint(geometry.NewVector3(5, 5, 5))

	bbox := scene.Bounds()
	if bbox.Diagonal() < 1e-6 {
		t.Errorf("single point bounds failed: expected inflated box, got diagonal %v", bbox.Diagonal())
	}
	if !bbox.Center().Equals(geometry.NewVector3(5, 5, 5)) {
		t.Errorf("single point bounds failed: expected center (5,5,5), got %v", bbox.Center())
	}
}

func TestSceneBoundsModel(t *testing.T) {
	m := model.NewModel("box")
	m.AddTriangle(geometry.Triangle{
		V1: geometry.NewVector3(0, 0, 0),
		V2: geometry.NewVector3(2, 0, 0),
		V3: geometry.NewVector3(0, 3, 1),
	})

	scene := NewScene()
	scene.Model = m

	bbox := scene.Bounds()
	if !bbox.Min.Equals(geometry.NewVector3(0, 0, 0)) || !bbox.Max.Equals(geometry.NewVector3(2, 3, 1)) {
		t.Errorf("model bounds failed: got %v to %v", bbox.Min, bbox.Max)
	}
}

func TestSceneClipBoundsContainsBounds(t *testing.T) {
	scene := NewScene()
	scene.AddPoint(geometry.NewVector3(-2, 0, 0))
	scene.AddPoint(geometry.NewVector3(2, 1, 3))

	bbox := scene.Bounds()
	clip := scene.clipBounds()

	if !clip.Contains(bbox.Min) || !clip.Contains(bbox.Max) {
		t.Errorf("clip bounds failed: %v to %v does not contain %v to %v",
			clip.Min, clip.Max, bbox.Min, bbox.Max)
	}
	if clip.Volume() <= bbox.Volume() {
		t.Errorf("clip bounds failed: expected inflated volume, got %v <= %v", clip.Volume(), bbox.Volume())
	}
}

func TestSceneClipBoundsClipsLine(t *testing.T) {
	scene := NewScene()
	scene.AddPoint(geometry.NewVector3(-1, -1, -1))
	scene.AddPoint(geometry.NewVector3(1, 1, 1))

	l, err := geometry.NewLine(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))
	if err != nil {
		t.Fatalf("NewLine failed: %v", err)
	}
	scene.AddLine(l)

	entry, exit, ok := scene.clipBounds().IntersectLine(l)
	if !ok {
		t.Fatalf("clip intersect failed: expected intersection")
	}
	if entry.Equals(exit) {
		t.Errorf("clip intersect failed: expected a visible span, got %v", entry)
	}
}
