package main

import (
	"fmt"
	"os"

	"github.com/geomkit/geomkit/pkg/analysis"
	"github.com/geomkit/geomkit/pkg/model"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a model file",
	Long:  "Show comprehensive information including dimensions, triangle count, surface area, topology and edge statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	m, err := model.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		os.Exit(1)
	}

	result := analysis.AnalyzeModel(m)

	fmt.Println("Model Information")
	fmt.Println("=================")
	if m.Name != "" {
		fmt.Printf("Name: %s\n", m.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Unique vertices: %d\n", result.VertexCount)
	fmt.Printf("  Distinct edges: %d\n", result.EdgeCount)
	fmt.Printf("  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Println("Topology:")
	if result.Watertight {
		fmt.Println("  Watertight: yes")
	} else {
		fmt.Println("  Watertight: no")
	}
	fmt.Printf("  Boundary edges: %d\n", result.BoundaryEdgeCount)
	if result.BoundaryLength > 0 {
		fmt.Printf("  Boundary length: %.6f units\n", result.BoundaryLength)
	}
	fmt.Println()

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n", result.BoundingBox.Diagonal())
	fmt.Printf("  Bounding volume: %.6f cubic units\n\n", result.Volume)

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", result.AvgEdgeLength)
}
