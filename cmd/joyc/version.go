package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eyelash/joy/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show joyc build fingerprints",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "joyc %s\n", strings.TrimSpace(version.Version))
			if version.GitCommit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", version.GitCommit)
			}
			if version.BuildDate != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", version.BuildDate)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "emits: %s\n", version.CDialect)
			return nil
		},
	}
}
