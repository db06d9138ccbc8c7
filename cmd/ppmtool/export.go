package main

import (
	"fmt"
	"os"

	"github.com/davesmith10/ppmtool/internal/imageio"
	"github.com/davesmith10/ppmtool/internal/ppm"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Convert a PPM image to PNG, JPEG, GIF, BMP, TIFF or binary PNM",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("input", "i", "", "Input PPM file")
	exportCmd.Flags().StringP("output", "o", "", "Output image file")
	exportCmd.Flags().String("format", "", "Output format (default: from output extension)")
	exportCmd.Flags().Int("max", 0, "Shrink so neither side exceeds this many pixels (0 = keep size)")
	exportCmd.Flags().Int("quality", 0, "JPEG quality (1-100, 0 = default)")
	exportCmd.Flags().Bool("lenient", false, "Stop at malformed pixel data instead of failing")
	exportCmd.MarkFlagRequired("input")
	exportCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	formatStr, _ := cmd.Flags().GetString("format")
	maxDim, _ := cmd.Flags().GetInt("max")
	quality, _ := cmd.Flags().GetInt("quality")
	lenient, _ := cmd.Flags().GetBool("lenient")

	var format imageio.Format
	var err error
	if formatStr != "" {
		format, err = imageio.ParseFormat(formatStr)
	} else {
		format, err = imageio.FormatFromPath(outputPath)
	}
	if err != nil {
		return err
	}

	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	raster, err := ppm.DecodeWithOptions(inputData, ppm.DecoderOptions{Lenient: lenient})
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inputPath, err)
	}

	encoded, err := imageio.Export(raster, format, imageio.ExportOptions{MaxDim: maxDim, Quality: quality})
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, encoded, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	statusf(cmd, "Exported %dx%d PPM → %s %s (%d bytes)\n", raster.Width, raster.Height, format, outputPath, len(encoded))
	return nil
}
