package main

import (
	"fmt"
	"os"

	"github.com/geomkit/geomkit/internal/flags"
	"github.com/geomkit/geomkit/pkg/analysis"
	"github.com/geomkit/geomkit/pkg/geometry"
	"github.com/geomkit/geomkit/pkg/model"
	"github.com/geomkit/geomkit/pkg/openscad"
	"github.com/spf13/cobra"
)

var (
	projectPoint  string
	projectLine   string
	projectExport string
)

var projectCmd = &cobra.Command{
	Use:   "project [file]",
	Short: "Project a point onto a line",
	Long: `Project a point onto a line and report the projected point and the
perpendicular distance. With a model file, also report the model vertex
nearest to the line and the model's span along the line.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)

	projectCmd.Flags().StringVar(&projectPoint, "point", "", "Point as x,y,z")
	projectCmd.Flags().StringVar(&projectLine, "line", "", "Line as px,py,pz:dx,dy,dz")
	projectCmd.Flags().StringVar(&projectExport, "export", "", "Write the scene as an OpenSCAD file")

	projectCmd.MarkFlagRequired("point")
	projectCmd.MarkFlagRequired("line")
}

func runProject(cmd *cobra.Command, args []string) {
	point, err := flags.ParseVector(projectPoint)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing --point: %v\n", err)
		os.Exit(1)
	}
	line, err := flags.ParseLine(projectLine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing --line: %v\n", err)
		os.Exit(1)
	}

	projected := line.ProjectedPoint(point)
	distance := analysis.PointLineDistance(point, line)

	fmt.Println("Point Projection")
	fmt.Println("================")
	fmt.Printf("Point: %s\n", analysis.FormatVector(point))
	fmt.Printf("Line:  %s\n", line)

	fmt.Printf("\nProjected point: %s\n", analysis.FormatVector(projected))
	fmt.Printf("Perpendicular distance: %.6f units\n", distance)

	var m *model.Model
	if len(args) == 1 {
		m, err = model.Load(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
			os.Exit(1)
		}

		vertex, vertexDist := analysis.FindNearestVertexToLine(m, line)
		tMin, tMax := analysis.SpanAlongLine(m, line)

		fmt.Printf("\nNearest model vertex to line: %s (distance: %.6f)\n",
			analysis.FormatVector(vertex), vertexDist)
		fmt.Printf("Model span along line: %.6f to %.6f (length: %.6f units)\n",
			tMin, tMax, tMax-tMin)
	}

	if projectExport == "" {
		return
	}

	scene := openscad.Scene{
		Lines:    []geometry.Line{line},
		Points:   []geometry.Vector3{point, projected},
		Segments: [][2]geometry.Vector3{{point, projected}},
	}
	if len(args) == 1 {
		scene.ModelPath = args[0]
	}

	exporter := openscad.NewExporter()
	if m != nil {
		exporter.ScaleTo(m.BoundingBox().Diagonal())
	}
	if err := exporter.ExportFile(projectExport, scene); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing OpenSCAD scene: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nScene written to %s\n", projectExport)
}
