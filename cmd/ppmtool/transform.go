package main

import (
	"fmt"
	"os"

	"github.com/davesmith10/ppmtool/internal/pipeline"
	"github.com/davesmith10/ppmtool/internal/ppm"
	"github.com/davesmith10/ppmtool/internal/transform"
	"github.com/spf13/cobra"
)

const defaultComment = "CREATOR: ppmtool"

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Apply flip, invert, grayscale and pixelate to a PPM image",
	Long: `Decode a plain PPM image, apply the given transforms in order and
write the result as plain PPM with maxval 255.

  ppmtool transform -i in.ppm -o out.ppm --op flip --op grayscale`,
	RunE: runTransform,
}

func init() {
	transformCmd.Flags().StringP("input", "i", "", "Input PPM file")
	transformCmd.Flags().StringP("output", "o", "", "Output PPM file")
	transformCmd.Flags().StringSlice("op", nil, "Transform to apply (flip, invert, grayscale, pixelate); repeatable")
	transformCmd.Flags().Bool("lenient", false, "Stop at malformed pixel data instead of failing")
	transformCmd.Flags().Int("max-pixels", ppm.DefaultMaxPixels, "Largest accepted width*height")
	transformCmd.Flags().String("comment", defaultComment, "Header comment for the output (empty for none)")
	transformCmd.MarkFlagRequired("input")
	transformCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(transformCmd)
}

func runTransform(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	opNames, _ := cmd.Flags().GetStringSlice("op")
	lenient, _ := cmd.Flags().GetBool("lenient")
	maxPixels, _ := cmd.Flags().GetInt("max-pixels")
	comment, _ := cmd.Flags().GetString("comment")

	ops := make([]transform.Op, 0, len(opNames))
	for _, name := range opNames {
		op, err := transform.ParseOp(name)
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}

	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := pipeline.Run(inputData, pipeline.Options{
		Ops:     ops,
		Decoder: ppm.DecoderOptions{Lenient: lenient, MaxPixels: maxPixels},
		Comment: comment,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	statusf(cmd, "Transformed %dx%d (maxval %d) with %d op(s) %v\n",
		result.SrcWidth, result.SrcHeight, result.SrcMaxVal, len(ops), ops)
	statusf(cmd, "Input:  %s (%d bytes)\n", inputPath, len(inputData))
	statusf(cmd, "Output: %s (%d bytes)\n", outputPath, len(result.Data))
	return nil
}
