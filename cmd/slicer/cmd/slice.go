package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/arl/assertgo"
	"github.com/arl/slicer/internal/buildlog"
	"github.com/arl/slicer/param"
	"github.com/arl/slicer/pipeline"
	"github.com/arl/slicer/slice"
	"github.com/spf13/cobra"
)

var (
	perimeterFlag int
	infillFlag    int
	thicknessFlag float64
	configFlag    string
	outputFlag    string
)

// sliceCmd is the sole subcommand: slice an STL file into G-code.
// Flags overlay DefaultOptions() in the documented precedence order —
// defaults < --config file < explicit -p/-i/-t flags (spec.md §6,
// §6.1).
var sliceCmd = &cobra.Command{
	Use:   "slice STLFILE",
	Short: "slice a mesh and write G-code",
	Long: `Read an ASCII STL file, slice it into layers, generate infill
and support, and write the resulting G-code to the output file.`,
	Args: cobra.ExactArgs(1),
	Run:  runSlice,
}

func init() {
	RootCmd.AddCommand(sliceCmd)

	sliceCmd.Flags().IntVarP(&perimeterFlag, "perimeter", "p", param.DefaultPerimeterLayers, "number of perimeter wall layers")
	sliceCmd.Flags().IntVarP(&infillFlag, "infill", "i", param.DefaultInfillPercent, "percentage infill")
	sliceCmd.Flags().Float64VarP(&thicknessFlag, "thickness", "t", param.DefaultThickness, "layer thickness in millimetres")
	sliceCmd.Flags().StringVar(&configFlag, "config", "", "YAML file overlaying perimeterLayers/infill/thickness")
	sliceCmd.Flags().StringVarP(&outputFlag, "output", "o", param.DefaultOutputFile, "output G-code file")
}

func runSlice(cmd *cobra.Command, args []string) {
	stlPath := args[0]
	if err := fileExists(stlPath); err != nil {
		check(fmt.Errorf("input mesh: %w", err))
	}

	opts := slice.DefaultOptions()

	fileOverlay, err := loadConfigOverlay(configFlag)
	check(err)
	opts = opts.Apply(fileOverlay)

	opts = opts.Apply(flagOverlay(cmd))

	// Options.Apply only ever merges in-range overlay fields on top of
	// DefaultOptions() (itself always in range), so opts must already
	// be valid here; assert.True checks that invariant rather than
	// silently trusting it, instead of exposing Valid() as a
	// user-facing validation gate the permissive parsing contract
	// (spec.md §6-§7) doesn't want.
	assert.True(opts.Valid(), "composed Options out of range despite Apply's field-level guards: %+v", opts)

	f, err := os.Open(stlPath)
	check(err)
	defer f.Close()

	ctx := buildlog.New()
	lines, err := pipeline.Run(f, opts, ctx)
	check(err)

	out := strings.Join(lines, "\n") + "\n"
	check(ioutil.WriteFile(outputFlag, []byte(out), 0644))

	fmt.Printf("wrote %d lines to %s\n", len(lines), outputFlag)
}

// flagOverlay builds an Overlay from the CLI flags actually set on the
// command line, leaving unset flags nil so Options.Apply falls through
// to whatever DefaultOptions()/the config file already decided.
func flagOverlay(cmd *cobra.Command) slice.Overlay {
	var ov slice.Overlay
	if cmd.Flags().Changed("perimeter") {
		ov.PerimeterLayers = &perimeterFlag
	}
	if cmd.Flags().Changed("infill") {
		ov.Infill = &infillFlag
	}
	if cmd.Flags().Changed("thickness") {
		ov.Thickness = &thicknessFlag
	}
	return ov
}
