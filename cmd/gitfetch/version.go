package main

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/gitfetch/gitfetch/pkg/output"
	"github.com/spf13/cobra"
)

// Set by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printer := output.NewWithWriters(a.stdout, a.stderr)
			printer.Banner(displayVersion(version))
			fmt.Fprintf(a.stdout, "  commit: %s\n", commit)
			fmt.Fprintf(a.stdout, "  built:  %s\n", date)
		},
	}
}

// displayVersion normalises release versions to vMAJOR.MINOR.PATCH and
// leaves development builds untouched.
func displayVersion(v string) string {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return v
	}
	return "v" + sv.String()
}
