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
	arcIndices string
	arcCoords  string
	arcExport  string
)

var arcCmd = &cobra.Command{
	Use:   "arc [file]",
	Short: "Fit a circle through sampled points",
	Long: `Fit a circle through three or more points and report its center,
radius, plane normal and fit deviation. Points are given either as
explicit coordinates or as vertex indices into a model file.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runArc,
}

func init() {
	rootCmd.AddCommand(arcCmd)

	arcCmd.Flags().StringVar(&arcIndices, "points", "", "Vertex indices as i,j,k,...")
	arcCmd.Flags().StringVar(&arcCoords, "coords", "", "Coordinates as x,y,z;x,y,z;...")
	arcCmd.Flags().StringVar(&arcExport, "export", "", "Write the scene as an OpenSCAD file")

	arcCmd.MarkFlagsMutuallyExclusive("points", "coords")
	arcCmd.MarkFlagsOneRequired("points", "coords")
}

func runArc(cmd *cobra.Command, args []string) {
	var m *model.Model
	var err error
	if len(args) == 1 {
		m, err = model.Load(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
			os.Exit(1)
		}
	}

	points, err := arcPoints(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fit, err := geometry.FitCircle(points)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fitting circle: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Circle Fit")
	fmt.Println("==========")
	fmt.Printf("Points: %d\n", len(points))

	fmt.Printf("\nCenter: %s\n", analysis.FormatVector(fit.Center))
	fmt.Printf("Radius: %.6f units\n", fit.Radius)
	fmt.Printf("Plane normal: %s\n", analysis.FormatVector(fit.Normal))
	fmt.Printf("Fit deviation: %.6f units\n", fit.StdDev)

	if arcExport == "" {
		return
	}

	scene := openscad.Scene{
		Points: append([]geometry.Vector3{fit.Center}, points...),
	}
	if axis, err := geometry.NewLine(fit.Center, fit.Normal); err == nil {
		scene.Lines = []geometry.Line{axis}
	}
	if len(args) == 1 {
		scene.ModelPath = args[0]
	}

	exporter := openscad.NewExporter()
	exporter.ScaleTo(fit.Radius * 4)
	if err := exporter.ExportFile(arcExport, scene); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing OpenSCAD scene: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nScene written to %s\n", arcExport)
}

// arcPoints resolves the sample points from either flag. Vertex indices
// address the model's unique vertices in first-seen order.
func arcPoints(m *model.Model) ([]geometry.Vector3, error) {
	if arcCoords != "" {
		return flags.ParsePoints(arcCoords)
	}

	if m == nil {
		return nil, fmt.Errorf("--points requires a model file")
	}

	indices, err := flags.ParseIndices(arcIndices)
	if err != nil {
		return nil, err
	}

	vertices := analysis.UniqueVertices(m)
	points := make([]geometry.Vector3, 0, len(indices))
	for _, index := range indices {
		if index >= len(vertices) {
			return nil, fmt.Errorf("vertex index %d out of range (model has %d vertices)", index, len(vertices))
		}
		points = append(points, vertices[index])
	}
	return points, nil
}
