package flags

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/geomkit/geomkit/pkg/geometry"
)

// ParseVector parses a comma-separated coordinate pair or triple like
// "1,2,3". Two components leave Z at zero.
func ParseVector(s string) (geometry.Vector3, error) {
	parts := strings.Split(s, ",")
	coords := make([]float64, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("invalid coordinate %q in %q", strings.TrimSpace(part), s)
		}
		coords = append(coords, value)
	}
	return geometry.NewVector3FromSlice(coords)
}

// ParseLine parses a line given as "px,py,pz:dx,dy,dz", an anchor point
// and a direction
func ParseLine(s string) (geometry.Line, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return geometry.Line{}, fmt.Errorf("invalid line %q: expected point:direction", s)
	}

	point, err := ParseVector(parts[0])
	if err != nil {
		return geometry.Line{}, err
	}
	direction, err := ParseVector(parts[1])
	if err != nil {
		return geometry.Line{}, err
	}

	return geometry.NewLine(point, direction)
}

// ParsePlane parses a plane given as "px,py,pz:nx,ny,nz", a point on
// the plane and a normal
func ParsePlane(s string) (geometry.Plane, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return geometry.Plane{}, fmt.Errorf("invalid plane %q: expected point:normal", s)
	}

	point, err := ParseVector(parts[0])
	if err != nil {
		return geometry.Plane{}, err
	}
	normal, err := ParseVector(parts[1])
	if err != nil {
		return geometry.Plane{}, err
	}

	return geometry.NewPlane(point, normal)
}

// ParsePoints parses semicolon-separated coordinate triples like
// "0,0,0;1,0,0;1,1,0"
func ParsePoints(s string) ([]geometry.Vector3, error) {
	var points []geometry.Vector3
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		point, err := ParseVector(part)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}

// ParseIndices parses a comma-separated list of non-negative integers
func ParseIndices(s string) ([]int, error) {
	var indices []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		index, err := strconv.Atoi(part)
		if err != nil || index < 0 {
			return nil, fmt.Errorf("invalid vertex index %q", part)
		}
		indices = append(indices, index)
	}
	return indices, nil
}
