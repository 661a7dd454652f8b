package main

import (
	"fmt"
	"math"
	"os"

	"github.com/geomkit/geomkit/internal/flags"
	"github.com/geomkit/geomkit/pkg/analysis"
	"github.com/geomkit/geomkit/pkg/model"
	"github.com/spf13/cobra"
)

var (
	measureP1 string
	measureP2 string
)

var measureCmd = &cobra.Command{
	Use:   "measure [file]",
	Short: "Measure the distance between two points",
	Long: `Measure the straight-line distance between two 3D points.
With a model file, the tool also snaps both points to their nearest vertices.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().StringVar(&measureP1, "p1", "", "First point as x,y,z")
	measureCmd.Flags().StringVar(&measureP2, "p2", "", "Second point as x,y,z")

	measureCmd.MarkFlagRequired("p1")
	measureCmd.MarkFlagRequired("p2")
}

func runMeasure(cmd *cobra.Command, args []string) {
	p1, err := flags.ParseVector(measureP1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing --p1: %v\n", err)
		os.Exit(1)
	}
	p2, err := flags.ParseVector(measureP2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing --p2: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Point-to-Point Measurement")
	fmt.Println("==========================")

	fmt.Printf("\nPoint 1: %s\n", analysis.FormatVector(p1))
	fmt.Printf("Point 2: %s\n", analysis.FormatVector(p2))

	delta := p2.Sub(p1)
	fmt.Printf("\nDistance X: %.6f units\n", math.Abs(delta.X))
	fmt.Printf("Distance Y: %.6f units\n", math.Abs(delta.Y))
	fmt.Printf("Distance Z: %.6f units\n", math.Abs(delta.Z))
	fmt.Printf("Direct distance: %.6f units\n", analysis.DistanceBetweenPoints(p1, p2))

	if len(args) == 0 {
		return
	}

	m, err := model.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		os.Exit(1)
	}

	nearest1, dist1 := analysis.FindNearestVertex(m, p1)
	nearest2, dist2 := analysis.FindNearestVertex(m, p2)

	fmt.Printf("\nNearest vertex to point 1: %s (distance: %.6f)\n", analysis.FormatVector(nearest1), dist1)
	fmt.Printf("Nearest vertex to point 2: %s (distance: %.6f)\n", analysis.FormatVector(nearest2), dist2)
	fmt.Printf("Distance between nearest vertices: %.6f units\n", analysis.DistanceBetweenPoints(nearest1, nearest2))
}
