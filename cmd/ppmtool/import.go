package main

import (
	"fmt"
	"os"

	"github.com/davesmith10/ppmtool/internal/imageio"
	"github.com/davesmith10/ppmtool/internal/ppm"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Convert a PNG, JPEG, GIF, BMP, TIFF or netpbm image to plain PPM",
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringP("input", "i", "", "Input image file")
	importCmd.Flags().StringP("output", "o", "", "Output PPM file")
	importCmd.Flags().String("comment", defaultComment, "Header comment (empty for none)")
	importCmd.MarkFlagRequired("input")
	importCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	comment, _ := cmd.Flags().GetString("comment")

	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	raster, format, err := imageio.Import(inputData)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	encoded, err := ppm.Encode(raster, ppm.EncoderOptions{Comment: comment})
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if err := os.WriteFile(outputPath, encoded, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	statusf(cmd, "Imported %dx%d %s → %s (%d bytes)\n", raster.Width, raster.Height, format, outputPath, len(encoded))
	return nil
}
