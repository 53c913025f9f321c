package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version information for the gwtgen CLI. Overridable at build time via -ldflags.
var (
	Version   = "0.1.0"
	GitCommit = ""
)

var versionColor = color.New(color.FgGreen, color.Bold)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gwtgen version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunVersion(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func RunVersion(w io.Writer) error {
	line := "gwtgen " + versionColor.Sprint(Version)
	if GitCommit != "" {
		line += " (" + GitCommit + ")"
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
