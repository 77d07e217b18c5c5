// Package emitc is a small, mechanical projection from an instantiated
// program to C source text. It never re-derives or re-checks anything the
// semantic pass already decided: every type and call it prints already
// carries a resolved tN/fN identity.
package emitc

import (
	"fmt"

	"github.com/eyelash/joy/internal/ir"
)

// Emit renders prog as a complete C translation unit. It is only ever
// called once the diagnostics bag is free of errors; Emit itself performs
// no further checking.
func Emit(prog *ir.Program) string {
	w := newWriter()
	w.line("#include <stdio.h>")
	w.line("")

	writeTypeDecls(w, prog.Interner.Types())
	w.line("")

	for _, fi := range prog.Funcs {
		if isPrintIntBuiltin(fi) {
			continue
		}
		writeFuncProto(w, fi)
	}
	w.line("")

	for _, fi := range prog.Funcs {
		if isPrintIntBuiltin(fi) {
			continue
		}
		writeFuncDef(w, fi)
		w.line("")
	}

	writeMain(w, prog.EntryID)
	return w.String()
}

// FileName derives the emitted C file's path from the source path: it
// always writes <path>.c next to the source.
func FileName(sourcePath string) string {
	return fmt.Sprintf("%s.c", sourcePath)
}
