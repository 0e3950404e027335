package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the top-level "flowbatch" command. Subcommands are
// added by their own constructors, mirroring how a larger CLI keeps
// each command's flags and RunE next to its own help text instead of
// centralizing them here.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flowbatch",
		Short: "flowbatch solves minimum-cost batched network flow problems",

		// We print errors ourselves in main, so cobra shouldn't also
		// dump usage text on every error.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.AddCommand(newSolveCmd())

	return cmd
}
