package main

import (
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	f := &sharedFlags{}
	cmd := &cobra.Command{
		Use:   "check <path>",
		Short: "Report diagnostics for a Joy source file without emitting C",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0], f)
		},
	}
	addSharedFlags(cmd.Flags(), f)
	return cmd
}

func runCheck(sourcePath string, f *sharedFlags) error {
	rc, err := resolve(sourcePath, *f)
	if err != nil {
		return err
	}
	_, failed := runPipeline(sourcePath, rc, false)
	if failed {
		return errSilent
	}
	return nil
}
