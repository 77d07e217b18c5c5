package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eyelash/joy/internal/emitc"
)

type buildFlags struct {
	sharedFlags
	uiMode  string
	dumpIR  string
	dumpFmt string
	output  string
}

func newBuildCmd() *cobra.Command {
	f := &buildFlags{}
	cmd := &cobra.Command{
		Use:   "build <path>",
		Short: "Compile a Joy source file to C",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args[0], f)
		},
	}
	addSharedFlags(cmd.Flags(), &f.sharedFlags)
	cmd.Flags().StringVar(&f.uiMode, "ui", "auto", "show progress UI (auto|on|off)")
	cmd.Flags().StringVar(&f.dumpIR, "dump-ir", "", "also write the instantiated program to this path")
	cmd.Flags().StringVar(&f.dumpFmt, "dump-ir-format", "msgpack", "format for --dump-ir (msgpack|json)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output path for the generated C file (default: <path>.c, or [build].output from joy.toml)")
	return cmd
}

func runBuild(sourcePath string, f *buildFlags) error {
	rc, err := resolve(sourcePath, f.sharedFlags)
	if err != nil {
		return err
	}

	res, failed := runPipeline(sourcePath, rc, resolveUI(f.uiMode))
	if failed {
		return errSilent
	}

	outPath := f.output
	if outPath == "" {
		outPath = rc.output
	}
	if outPath == "" {
		outPath = emitc.FileName(sourcePath)
	}
	if err := os.WriteFile(outPath, []byte(res.CSource), 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write %q: %w", outPath, err)
	}

	if f.dumpIR != "" {
		if err := writeIRDump(f.dumpIR, f.dumpFmt, res.Program); err != nil {
			return err
		}
	}
	return nil
}

