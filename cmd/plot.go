package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosap/internal/diagram"
)

var (
	plotFrames []string
	plotPlane  string
	plotFile   string
	plotASCII  bool
	plotWidth  int
	plotHeight int
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Draw frames read back from the model",
	Long: `Read the end joints of the named frames and draw them projected on a
global plane, as an image (PNG, SVG or PDF by extension) and optionally as a
character sketch.

Examples:
  gosap plot --frames C1,B1,C2 --export portal.png
  gosap plot --frames C1,B1,C2 --plane yz --ascii`,
	RunE: runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)

	plotCmd.Flags().StringSliceVarP(&plotFrames, "frames", "f", nil, "Frame names [required]")
	plotCmd.Flags().StringVar(&plotPlane, "plane", "xz", "Projection plane: xz, yz or xy")
	plotCmd.Flags().StringVar(&plotFile, "export", "", "Write the elevation to this file")
	plotCmd.Flags().BoolVar(&plotASCII, "ascii", false, "Print a character sketch")
	plotCmd.Flags().IntVar(&plotWidth, "width", 60, "Sketch width in characters")
	plotCmd.Flags().IntVar(&plotHeight, "height", 20, "Sketch height in characters")
	plotCmd.MarkFlagRequired("frames")
}

func runPlot(cmd *cobra.Command, args []string) (err error) {
	plane, err := diagram.ParsePlane(plotPlane)
	if err != nil {
		return err
	}
	if plotFile == "" && !plotASCII {
		return errors.New("nothing to draw: give --export or --ascii")
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession(s, &err)
	m, err := s.bindModel(state.cfg.ProgramName())
	if err != nil {
		return err
	}
	frames, err := diagram.ReadFrames(m.frames, m.points, plotFrames)
	if err != nil {
		return err
	}

	if plotASCII {
		fmt.Println()
		fmt.Print(diagram.DrawASCIIElevation(frames, plane, plotWidth, plotHeight))
		fmt.Println()
		fmt.Print(diagram.DrawSummaryBox("FRAMES", diagram.FrameTable(frames)))
	}
	if plotFile != "" {
		path, err := diagram.ExportElevation(frames, plane, "Elevation "+string(plane), plotFile)
		if err != nil {
			return fmt.Errorf("export elevation: %w", err)
		}
		fmt.Printf("\n  ✓ Elevation exported to: %s\n", path)
	}
	return nil
}
