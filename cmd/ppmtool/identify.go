package main

import (
	"fmt"
	"os"

	"github.com/davesmith10/ppmtool/internal/ppm"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect a PPM header and validate its pixel data",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := ppm.Info(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:       %s\n", path)
	fmt.Fprintf(out, "Format:     plain PPM (P3)\n")
	fmt.Fprintf(out, "Dimensions: %d x %d\n", info.Width, info.Height)
	fmt.Fprintf(out, "Maxval:     %d\n", info.MaxVal)
	fmt.Fprintf(out, "File size:  %d bytes (%.1f KB)\n", len(data), float64(len(data))/1024)
	for _, c := range info.Comments {
		fmt.Fprintf(out, "Comment:    %s\n", c)
	}

	if _, err := ppm.Decode(data); err != nil {
		fmt.Fprintf(out, "Pixel data: invalid: %v\n", err)
	} else {
		fmt.Fprintf(out, "Pixel data: ok (%d samples)\n", info.Width*info.Height*3)
	}
	return nil
}
