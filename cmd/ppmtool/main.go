package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "ppmtool",
	Short:         "Decode, transform and encode plain PPM (P3) images",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress status output")
}

// statusf prints a status line unless --quiet is set.
func statusf(cmd *cobra.Command, format string, args ...any) {
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

func run(args []string, stdout io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	return rootCmd.Execute()
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
