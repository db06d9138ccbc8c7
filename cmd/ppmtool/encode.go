package main

import (
	"fmt"
	"os"

	"github.com/davesmith10/ppmtool/internal/ir"
	"github.com/davesmith10/ppmtool/internal/ppm"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode raw interleaved RGB data to plain PPM",
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringP("input", "i", "", "Input raw RGB file")
	encodeCmd.Flags().StringP("output", "o", "", "Output PPM file")
	encodeCmd.Flags().Int("width", 0, "Image width")
	encodeCmd.Flags().Int("height", 0, "Image height")
	encodeCmd.Flags().String("comment", defaultComment, "Header comment (empty for none)")
	encodeCmd.MarkFlagRequired("input")
	encodeCmd.MarkFlagRequired("output")
	encodeCmd.MarkFlagRequired("width")
	encodeCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	comment, _ := cmd.Flags().GetString("comment")

	pixels, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	raster := &ir.Raster{Width: width, Height: height, MaxVal: ir.MaxVal, Pixels: pixels}
	encoded, err := ppm.Encode(raster, ppm.EncoderOptions{Comment: comment})
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if err := os.WriteFile(outputPath, encoded, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	statusf(cmd, "Encoded %dx%d RGB → %s (%d bytes)\n", width, height, outputPath, len(encoded))
	return nil
}
