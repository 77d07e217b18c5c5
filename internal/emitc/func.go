package emitc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eyelash/joy/internal/ir"
)

func paramList(fi *ir.FunctionInstance) string {
	if len(fi.Params) == 0 {
		return "void"
	}
	parts := make([]string, len(fi.Params))
	for i, p := range fi.Params {
		parts[i] = cType(p.Type) + " " + p.Name
	}
	return strings.Join(parts, ", ")
}

func signature(fi *ir.FunctionInstance) string {
	return fmt.Sprintf("%s f%s(%s)", cType(fi.Return), strconv.FormatUint(fi.ID, 10), paramList(fi))
}

func writeFuncProto(w *Writer, fi *ir.FunctionInstance) {
	w.line(signature(fi) + ";")
}

func writeFuncDef(w *Writer, fi *ir.FunctionInstance) {
	w.line(signature(fi))
	writeStmt(w, fi.Body)
}

// writeMain emits the fixed entry wrapper that calls the program's entry
// function and returns 0.
func writeMain(w *Writer, entryID uint64) {
	w.line("int main(void)")
	w.line("{")
	w.indentIn()
	w.line(fmt.Sprintf("f%s();", strconv.FormatUint(entryID, 10)))
	w.line("return 0;")
	w.indentOut()
	w.line("}")
}
