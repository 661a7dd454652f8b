package main

import (
	"fmt"
	"os"

	"github.com/geomkit/geomkit/internal/flags"
	"github.com/geomkit/geomkit/pkg/analysis"
	"github.com/geomkit/geomkit/pkg/model"
	"github.com/geomkit/geomkit/pkg/openscad"
	"github.com/spf13/cobra"
)

var (
	sectionPlane  string
	sectionExport string
)

var sectionCmd = &cobra.Command{
	Use:   "section <file>",
	Short: "Cut a model with a plane and report the contours",
	Long: `Intersect a model with a plane and chain the cuts into contours.
Reports each contour's point count, whether it is closed, and its length.`,
	Args: cobra.ExactArgs(1),
	Run:  runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	sectionCmd.Flags().StringVar(&sectionPlane, "plane", "", "Plane as px,py,pz:nx,ny,nz")
	sectionCmd.Flags().StringVar(&sectionExport, "export", "", "Write the scene as an OpenSCAD file")

	sectionCmd.MarkFlagRequired("plane")
}

func runSection(cmd *cobra.Command, args []string) {
	plane, err := flags.ParsePlane(sectionPlane)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing --plane: %v\n", err)
		os.Exit(1)
	}

	m, err := model.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		os.Exit(1)
	}

	contours := analysis.CrossSection(m, plane)

	fmt.Println("Cross Section")
	fmt.Println("=============")
	fmt.Printf("Model: %s\n", m.Name)
	fmt.Printf("Plane: %s\n", plane)
	fmt.Printf("Contours: %d\n", len(contours))

	if len(contours) == 0 {
		fmt.Println("\nThe plane does not intersect the model.")
		return
	}

	total := 0.0
	for i, contour := range contours {
		kind := "open"
		if contour.Closed {
			kind = "closed"
		}
		fmt.Printf("\nContour %d (%s, %d points): length %.6f units\n",
			i+1, kind, len(contour.Points), contour.Length())
		total += contour.Length()
	}
	fmt.Printf("\nTotal contour length: %.6f units\n", total)

	if sectionExport == "" {
		return
	}

	scene := openscad.Scene{ModelPath: args[0]}
	for _, contour := range contours {
		scene.Segments = append(scene.Segments, contour.Segments()...)
	}

	exporter := openscad.NewExporter()
	exporter.ScaleTo(m.BoundingBox().Diagonal())
	if err := exporter.ExportFile(sectionExport, scene); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing OpenSCAD scene: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nScene written to %s\n", sectionExport)
}
