package openscad

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/geomkit/geomkit/pkg/geometry"
)

// Scene describes measured geometry to export: an optional model file
// referenced by import(), infinite lines, marker points and straight
// segments such as a nearest-points connector
type Scene struct {
	ModelPath string
	Lines     []geometry.Line
	Points    []geometry.Vector3
	Segments  [][2]geometry.Vector3
}

// Exporter writes scenes as OpenSCAD source so measurements can be
// inspected next to the model
type Exporter struct {
	LineLength  float64 // drawn length for infinite lines
	LineRadius  float64
	PointRadius float64
}

// NewExporter creates an exporter with default sizing
func NewExporter() *Exporter {
	return &Exporter{
		LineLength:  200,
		LineRadius:  0.5,
		PointRadius: 1.5,
	}
}

// ScaleTo adjusts line length and radii to suit a scene of the given
// diagonal extent
func (e *Exporter) ScaleTo(diagonal float64) {
	if diagonal <= 0 {
		return
	}
	e.LineLength = diagonal * 2
	e.LineRadius = diagonal / 400
	e.PointRadius = diagonal / 150
}

// Export writes the scene as OpenSCAD source
func (e *Exporter) Export(w io.Writer, scene Scene) error {
	var sb strings.Builder

	sb.WriteString("// geomkit measurement scene\n")
	sb.WriteString("$fn = 48;\n\n")

	if scene.ModelPath != "" {
		// Background modifier renders the model translucent behind the overlays
		fmt.Fprintf(&sb, "%%import(%q);\n\n", scene.ModelPath)
	}

	lineColors := []string{"RoyalBlue", "MediumSeaGreen"}
	for i, l := range scene.Lines {
		half := l.UnitDirection().Mul(e.LineLength / 2)
		from := l.Point().Sub(half)
		to := l.Point().Add(half)
		fmt.Fprintf(&sb, "color(%q) capsule(%s, %s, %g);\n",
			lineColors[i%len(lineColors)], scadVec(from), scadVec(to), e.LineRadius)
	}

	for _, seg := range scene.Segments {
		fmt.Fprintf(&sb, "color(\"Orange\") capsule(%s, %s, %g);\n",
			scadVec(seg[0]), scadVec(seg[1]), e.LineRadius)
	}

	for _, p := range scene.Points {
		fmt.Fprintf(&sb, "color(\"Red\") translate(%s) sphere(r = %g);\n",
			scadVec(p), e.PointRadius)
	}

	sb.WriteString("\nmodule capsule(from, to, r) {\n")
	sb.WriteString("    hull() {\n")
	sb.WriteString("        translate(from) sphere(r = r);\n")
	sb.WriteString("        translate(to) sphere(r = r);\n")
	sb.WriteString("    }\n")
	sb.WriteString("}\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// ExportFile writes the scene to a .scad file
func (e *Exporter) ExportFile(path string, scene Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := e.Export(f, scene); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// scadVec formats a vector as an OpenSCAD coordinate triple
func scadVec(v geometry.Vector3) string {
	return fmt.Sprintf("[%g, %g, %g]", v.X, v.Y, v.Z)
}
