package main

import (
	"fmt"
	"os"

	"github.com/geomkit/geomkit/pkg/analysis"
	"github.com/geomkit/geomkit/pkg/model"
	"github.com/spf13/cobra"
)

var verticesCount int

var verticesCmd = &cobra.Command{
	Use:   "vertices [file]",
	Short: "List the unique vertices of a model file",
	Long:  "List unique vertices with their indices, as used by the arc command's --points flag.",
	Args:  cobra.ExactArgs(1),
	Run:   runVertices,
}

func init() {
	rootCmd.AddCommand(verticesCmd)

	verticesCmd.Flags().IntVarP(&verticesCount, "count", "n", 20, "Number of vertices to display")
}

func runVertices(cmd *cobra.Command, args []string) {
	m, err := model.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		os.Exit(1)
	}

	vertices := analysis.UniqueVertices(m)

	fmt.Printf("Unique Vertices (showing first %d of %d)\n", min(verticesCount, len(vertices)), len(vertices))
	fmt.Println("====================")

	for i, vertex := range vertices {
		if i >= verticesCount {
			break
		}
		fmt.Printf("%-6d %s\n", i, analysis.FormatVector(vertex))
	}
}
