package model

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/geomkit/geomkit/pkg/geometry"
)

const asciiFixture = `solid tetra
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
  facet normal 0 -1 0
    outer loop
      vertex 0 0 0
      vertex 0 0 1
      vertex 1 0 0
    endloop
  endfacet
endsolid tetra
`

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestParseSTLASCII(t *testing.T) {
	path := writeTempFile(t, "tetra.stl", []byte(asciiFixture))

	m, err := ParseSTL(path)
	if err != nil {
		t.Fatalf("ParseSTL failed: %v", err)
	}

	if m.Name != "tetra" {
		t.Errorf("Name failed: expected %q, got %q", "tetra", m.Name)
	}
	if m.TriangleCount() != 2 {
		t.Fatalf("TriangleCount failed: expected 2, got %d", m.TriangleCount())
	}

	first := m.Triangles[0]
	if !first.Normal.Equals(geometry.NewVector3(0, 0, -1)) {
		t.Errorf("Normal failed: expected (0, 0, -1), got %v", first.Normal)
	}
	if !first.V2.Equals(geometry.NewVector3(1, 0, 0)) {
		t.Errorf("V2 failed: expected (1, 0, 0), got %v", first.V2)
	}

	if area := first.Area(); math.Abs(area-0.5) > 1e-10 {
		t.Errorf("Area failed: expected 0.5, got %v", area)
	}
}

func TestParseSTLBinary(t *testing.T) {
	var buf bytes.Buffer

	header := make([]byte, 80)
	copy(header, "binary fixture")
	buf.Write(header)

	binary.Write(&buf, binary.LittleEndian, uint32(1))
	binary.Write(&buf, binary.LittleEndian, [3]float32{0, 0, 1})  // normal
	binary.Write(&buf, binary.LittleEndian, [3]float32{0, 0, 0})  // v1
	binary.Write(&buf, binary.LittleEndian, [3]float32{2, 0, 0})  // v2
	binary.Write(&buf, binary.LittleEndian, [3]float32{0, 2, 0})  // v3
	binary.Write(&buf, binary.LittleEndian, uint16(0))            // attributes

	path := writeTempFile(t, "fixture.stl", buf.Bytes())

	m, err := ParseSTL(path)
	if err != nil {
		t.Fatalf("ParseSTL failed: %v", err)
	}

	if m.Name != "binary fixture" {
		t.Errorf("Name failed: expected %q, got %q", "binary fixture", m.Name)
	}
	if m.TriangleCount() != 1 {
		t.Fatalf("TriangleCount failed: expected 1, got %d", m.TriangleCount())
	}

	tri := m.Triangles[0]
	if !tri.V2.Equals(geometry.NewVector3(2, 0, 0)) {
		t.Errorf("V2 failed: expected (2, 0, 0), got %v", tri.V2)
	}
	if area := tri.Area(); math.Abs(area-2) > 1e-10 {
		t.Errorf("Area failed: expected 2, got %v", area)
	}
}

func TestParseSTLRecomputesZeroNormal(t *testing.T) {
	fixture := `solid flat
  facet normal 0 0 0
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
endsolid flat
`
	path := writeTempFile(t, "flat.stl", []byte(fixture))

	m, err := ParseSTL(path)
	if err != nil {
		t.Fatalf("ParseSTL failed: %v", err)
	}
	if m.TriangleCount() != 1 {
		t.Fatalf("TriangleCount failed: expected 1, got %d", m.TriangleCount())
	}

	// The winding (0,0,0) -> (1,0,0) -> (0,1,0) faces +Z
	if normal := m.Triangles[0].Normal; !normal.Equals(geometry.NewVector3(0, 0, 1)) {
		t.Errorf("Normal failed: expected (0, 0, 1), got %v", normal)
	}
}

func TestParseSTLMalformedASCII(t *testing.T) {
	fixtures := map[string]string{
		"bad coordinate": "solid s\n  facet normal 0 0 1\n    outer loop\n      vertex 0 a 0\n",
		"short vertex":   "solid s\n  facet normal 0 0 1\n    outer loop\n      vertex 0 0\n",
		"short facet":    "solid s\n  facet normal 0 0\n",
		"vertex count":   "solid s\n  facet normal 0 0 1\n    outer loop\n      vertex 0 0 0\n      vertex 1 0 0\n    endloop\n  endfacet\n",
	}

	for name, fixture := range fixtures {
		path := writeTempFile(t, "bad.stl", []byte(fixture))
		if _, err := ParseSTL(path); err == nil {
			t.Errorf("ParseSTL with %s should fail", name)
		}
	}
}

func TestParseSTLTruncatedBinary(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	binary.Write(&buf, binary.LittleEndian, uint32(2))
	binary.Write(&buf, binary.LittleEndian, [3]float32{0, 0, 1})

	path := writeTempFile(t, "truncated.stl", buf.Bytes())

	if _, err := ParseSTL(path); err == nil {
		t.Error("ParseSTL of a truncated binary file should fail")
	}
}

func TestParseSTLMissingFile(t *testing.T) {
	if _, err := ParseSTL(filepath.Join(t.TempDir(), "missing.stl")); err == nil {
		t.Error("ParseSTL of a missing file should fail")
	}
}

func TestLoadDispatch(t *testing.T) {
	path := writeTempFile(t, "tetra.stl", []byte(asciiFixture))

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.TriangleCount() != 2 {
		t.Errorf("TriangleCount failed: expected 2, got %d", m.TriangleCount())
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeTempFile(t, "model.obj", []byte("v 0 0 0\n"))

	if _, err := Load(path); err == nil {
		t.Error("Load of an unsupported format should fail")
	}
}

func TestModelBoundingBoxAndArea(t *testing.T) {
	path := writeTempFile(t, "tetra.stl", []byte(asciiFixture))

	m, err := ParseSTL(path)
	if err != nil {
		t.Fatalf("ParseSTL failed: %v", err)
	}

	bbox := m.BoundingBox()
	if !bbox.Min.Equals(geometry.NewVector3(0, 0, 0)) {
		t.Errorf("Min failed: expected (0, 0, 0), got %v", bbox.Min)
	}
	if !bbox.Max.Equals(geometry.NewVector3(1, 1, 1)) {
		t.Errorf("Max failed: expected (1, 1, 1), got %v", bbox.Max)
	}

	if area := m.SurfaceArea(); math.Abs(area-1.0) > 1e-10 {
		t.Errorf("SurfaceArea failed: expected 1.0, got %v", area)
	}
}
