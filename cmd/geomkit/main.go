package main

import (
	"fmt"
	"os"

	"github.com/geomkit/geomkit/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "geomkit",
	Short: "A CLI toolkit for 3D line geometry and model measurement",
	Long: `geomkit measures 3D models and the lines fitted around them.
It reads ASCII and binary STL as well as glTF files and provides precise
measurements for edges, point projections, skew line distances and
circle fits.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
