package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/geomkit/geomkit/pkg/analysis"
	"github.com/geomkit/geomkit/pkg/model"
	"github.com/spf13/cobra"
)

var (
	edgesCount     int
	edgesLongest   bool
	edgesShortest  bool
	edgesMinLength float64
	edgesMaxLength float64
	edgesBoundary  bool
)

var edgesCmd = &cobra.Command{
	Use:   "edges [file]",
	Short: "Analyze and measure edges in a model file",
	Long: `List the distinct edges of a model with their lengths and use counts.
Edges can be sorted by length, filtered to a length range, or restricted
to boundary edges (used by a single triangle), which outline open holes.`,
	Args: cobra.ExactArgs(1),
	Run:  runEdges,
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 10, "Number of edges to display")
	edgesCmd.Flags().BoolVarP(&edgesLongest, "longest", "l", false, "Show longest edges first")
	edgesCmd.Flags().BoolVarP(&edgesShortest, "shortest", "s", false, "Show shortest edges first")
	edgesCmd.Flags().Float64Var(&edgesMinLength, "min", 0.0, "Minimum edge length filter")
	edgesCmd.Flags().Float64Var(&edgesMaxLength, "max", 0.0, "Maximum edge length filter")
	edgesCmd.Flags().BoolVar(&edgesBoundary, "boundary", false, "Show only boundary edges")

	edgesCmd.MarkFlagsMutuallyExclusive("longest", "shortest")
}

func runEdges(cmd *cobra.Command, args []string) {
	m, err := model.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		os.Exit(1)
	}

	all := analysis.UniqueEdges(m)
	boundary := analysis.BoundaryEdges(all)

	edges := all
	title := "Edges"
	if edgesBoundary {
		edges = boundary
		title = "Boundary Edges"
	}
	if edgesMaxLength > 0 {
		var inRange []analysis.EdgeUse
		for _, edge := range edges {
			if edge.Length >= edgesMinLength && edge.Length <= edgesMaxLength {
				inRange = append(inRange, edge)
			}
		}
		edges = inRange
		title = fmt.Sprintf("%s between %.6f and %.6f units", title, edgesMinLength, edgesMaxLength)
	}

	if edgesLongest {
		sort.Slice(edges, func(i, j int) bool { return edges[i].Length > edges[j].Length })
		title = title + ", longest first"
	} else if edgesShortest {
		sort.Slice(edges, func(i, j int) bool { return edges[i].Length < edges[j].Length })
		title = title + ", shortest first"
	}

	fmt.Println(title)
	fmt.Println("====================")
	fmt.Printf("Distinct edges: %d\n", len(all))
	fmt.Printf("Boundary edges: %d\n", len(boundary))
	watertight := "no"
	if analysis.IsWatertight(all) {
		watertight = "yes"
	}
	fmt.Printf("Watertight: %s\n", watertight)
	if len(all) > 0 {
		minLength, maxLength, total := all[0].Length, all[0].Length, 0.0
		for _, edge := range all {
			if edge.Length < minLength {
				minLength = edge.Length
			}
			if edge.Length > maxLength {
				maxLength = edge.Length
			}
			total += edge.Length
		}
		fmt.Printf("Min edge length: %.6f units\n", minLength)
		fmt.Printf("Max edge length: %.6f units\n", maxLength)
		fmt.Printf("Avg edge length: %.6f units\n", total/float64(len(all)))
	}
	fmt.Println()

	if len(edges) == 0 {
		fmt.Println("No edges found matching the criteria.")
		return
	}

	shown := min(edgesCount, len(edges))
	fmt.Printf("Showing %d of %d:\n", shown, len(edges))
	fmt.Printf("%-6s %-35s %-35s %-12s %s\n", "Index", "Start", "End", "Length", "Uses")
	fmt.Println("--------------------------------------------------------------------------------------------------------")
	for i, edge := range edges[:shown] {
		fmt.Printf("%-6d %-35s %-35s %-12.6f %d\n",
			i+1,
			analysis.FormatVector(edge.Start),
			analysis.FormatVector(edge.End),
			edge.Length,
			edge.Count)
	}
}
