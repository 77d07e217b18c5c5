package main

import (
	"fmt"
	"os"

	"github.com/eyelash/joy/internal/ir"
	"github.com/eyelash/joy/internal/irdump"
)

func marshalIR(prog *ir.Program, format string) ([]byte, error) {
	if format == "msgpack" {
		return irdump.Marshal(prog)
	}
	return irdump.MarshalJSON(prog)
}

func writeIRDump(path, format string, prog *ir.Program) error {
	data, err := marshalIR(prog, format)
	if err != nil {
		return fmt.Errorf("failed to encode IR dump: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
