package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an empty bounding box that any Extend resets
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Vector3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// ExtendTriangle expands the bounding box to include all three vertices
func (b *BoundingBox) ExtendTriangle(t Triangle) {
	b.Extend(t.V1)
	b.Extend(t.V2)
	b.Extend(t.V3)
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector3 {
	return b.Min.Add(b.Max).Div(2.0)
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}

// Volume returns the volume of the bounding box
func (b BoundingBox) Volume() float64 {
	size := b.Size()
	return size.X * size.Y * size.Z
}

// Contains reports whether the point lies inside or on the box
func (b BoundingBox) Contains(p Vector3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// IntersectLine clips the line against the box using the slab method and
// returns the entry and exit points. ok is false when the line misses the
// box entirely.
func (b BoundingBox) IntersectLine(l Line) (entry, exit Vector3, ok bool) {
	p := l.Point()
	d := l.UnitDirection()

	tMin := math.Inf(-1)
	tMax := math.Inf(1)
	for i := 0; i < 3; i++ {
		if d.At(i) == 0 {
			if p.At(i) < b.Min.At(i) || p.At(i) > b.Max.At(i) {
				return Vector3{}, Vector3{}, false
			}
			continue
		}
		t0 := (b.Min.At(i) - p.At(i)) / d.At(i)
		t1 := (b.Max.At(i) - p.At(i)) / d.At(i)
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMin > tMax {
			return Vector3{}, Vector3{}, false
		}
	}

	return p.Add(d.Mul(tMin)), p.Add(d.Mul(tMax)), true
}
