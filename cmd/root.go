package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gymbot",
		Short:         "Roster automation for the Bink 36 box: daily reports, enrollment and workout analysis",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newEnrollCmd())
	root.AddCommand(newWithdrawCmd())
	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newServeCmd())

	return root
}

// Execute runs the CLI. A failed run exits non-zero so wrapping cron jobs
// and shell scripts can tell success from failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
