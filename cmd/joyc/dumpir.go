package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type dumpIRFlags struct {
	sharedFlags
	format string
	output string
}

func newDumpIRCmd() *cobra.Command {
	f := &dumpIRFlags{}
	cmd := &cobra.Command{
		Use:   "dump-ir <path>",
		Short: "Emit the instantiated program as JSON or msgpack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDumpIR(args[0], f)
		},
	}
	addSharedFlags(cmd.Flags(), &f.sharedFlags)
	cmd.Flags().StringVar(&f.format, "format", "json", "output format (json|msgpack)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write to this path instead of stdout")
	return cmd
}

func runDumpIR(sourcePath string, f *dumpIRFlags) error {
	rc, err := resolve(sourcePath, f.sharedFlags)
	if err != nil {
		return err
	}
	res, failed := runPipeline(sourcePath, rc, false)
	if failed {
		return errSilent
	}

	if f.output != "" {
		return writeIRDump(f.output, f.format, res.Program)
	}

	data, err := marshalIR(res.Program, f.format)
	if err != nil {
		return fmt.Errorf("failed to encode IR dump: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
