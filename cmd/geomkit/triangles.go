package main

import (
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/geomkit/geomkit/pkg/analysis"
	"github.com/geomkit/geomkit/pkg/model"
	"github.com/spf13/cobra"
)

var (
	triCount       int
	triLargest     bool
	triSmallest    bool
	triSlivers     bool
	triSliverAngle float64
)

type triangleInfo struct {
	Index      int
	Area       float64
	Perimeter  float64
	MinAngle   float64
	Degenerate bool
	Vertices   string
}

var trianglesCmd = &cobra.Command{
	Use:   "triangles [file]",
	Short: "Analyze triangles in a model file",
	Long: `Display triangle areas, perimeters, interior angles and vertex
positions. The slivers filter lists degenerate and needle-thin triangles,
which are common artifacts of mesh exports.`,
	Args: cobra.ExactArgs(1),
	Run:  runTriangles,
}

func init() {
	rootCmd.AddCommand(trianglesCmd)

	trianglesCmd.Flags().IntVarP(&triCount, "count", "n", 10, "Number of triangles to display")
	trianglesCmd.Flags().BoolVarP(&triLargest, "largest", "l", false, "Show largest triangles by area")
	trianglesCmd.Flags().BoolVarP(&triSmallest, "smallest", "s", false, "Show smallest triangles by area")
	trianglesCmd.Flags().BoolVar(&triSlivers, "slivers", false, "Show only degenerate or needle-thin triangles")
	trianglesCmd.Flags().Float64Var(&triSliverAngle, "angle", 1.0, "Sliver threshold on the minimum interior angle, in degrees")

	trianglesCmd.MarkFlagsMutuallyExclusive("largest", "smallest")
}

func runTriangles(cmd *cobra.Command, args []string) {
	m, err := model.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		os.Exit(1)
	}

	triangles := make([]triangleInfo, 0, len(m.Triangles))
	totalArea := 0.0
	minArea := math.MaxFloat64
	maxArea := 0.0
	slivers := 0

	for i, tri := range m.Triangles {
		info := triangleInfo{
			Index:     i,
			Area:      tri.Area(),
			Perimeter: tri.Perimeter(),
			Vertices: fmt.Sprintf("%s, %s, %s",
				analysis.FormatVector(tri.V1),
				analysis.FormatVector(tri.V2),
				analysis.FormatVector(tri.V3)),
		}

		// A zero-area triangle has no meaningful interior angles
		if _, err := tri.CalculateNormal(); err != nil {
			info.Degenerate = true
		} else {
			angles := tri.Angles()
			info.MinAngle = math.Min(angles[0], math.Min(angles[1], angles[2])) * 180 / math.Pi
		}
		if info.Degenerate || info.MinAngle < triSliverAngle {
			slivers++
		}

		triangles = append(triangles, info)

		totalArea += info.Area
		if info.Area < minArea {
			minArea = info.Area
		}
		if info.Area > maxArea {
			maxArea = info.Area
		}
	}

	if triSlivers {
		var thin []triangleInfo
		for _, tri := range triangles {
			if tri.Degenerate || tri.MinAngle < triSliverAngle {
				thin = append(thin, tri)
			}
		}
		triangles = thin
	}

	if triLargest {
		sort.Slice(triangles, func(i, j int) bool {
			return triangles[i].Area > triangles[j].Area
		})
	} else if triSmallest {
		sort.Slice(triangles, func(i, j int) bool {
			return triangles[i].Area < triangles[j].Area
		})
	}

	var title string
	switch {
	case triSlivers:
		title = fmt.Sprintf("Sliver Triangles (min angle below %.2f degrees)", triSliverAngle)
	case triLargest:
		title = "Largest Triangles"
	case triSmallest:
		title = "Smallest Triangles"
	default:
		title = "Triangles"
	}

	fmt.Println(title)
	fmt.Println("====================")
	fmt.Printf("Total triangles: %d\n", m.TriangleCount())
	fmt.Printf("Slivers: %d\n", slivers)
	fmt.Printf("Total surface area: %.6f square units\n", totalArea)
	if m.TriangleCount() > 0 {
		fmt.Printf("Min triangle area: %.6f square units\n", minArea)
		fmt.Printf("Max triangle area: %.6f square units\n", maxArea)
		fmt.Printf("Avg triangle area: %.6f square units\n", totalArea/float64(m.TriangleCount()))
	}
	fmt.Println()

	if len(triangles) == 0 {
		fmt.Println("No triangles found matching the criteria.")
		return
	}

	shown := min(triCount, len(triangles))
	fmt.Printf("Showing %d of %d:\n\n", shown, len(triangles))
	for _, tri := range triangles[:shown] {
		fmt.Printf("Triangle #%d:\n", tri.Index)
		fmt.Printf("  Area: %.6f square units\n", tri.Area)
		fmt.Printf("  Perimeter: %.6f units\n", tri.Perimeter)
		if tri.Degenerate {
			fmt.Printf("  Degenerate: zero area\n")
		} else {
			fmt.Printf("  Min angle: %.2f degrees\n", tri.MinAngle)
		}
		fmt.Printf("  Vertices: %s\n\n", tri.Vertices)
	}
}
