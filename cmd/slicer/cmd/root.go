package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the base command when slicer is called without any
// subcommand.
var RootCmd = &cobra.Command{
	Use:   "slicer",
	Short: "slice a triangulated mesh into FFF G-code",
	Long: `slicer converts a triangulated surface mesh (ASCII STL) into
the G-code moves that drive a fused-filament-fabrication 3D printer to
build that object layer by layer.`,
}

// Execute adds all child commands to RootCmd and runs it. Called once
// from main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
