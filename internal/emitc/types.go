package emitc

import (
	"fmt"
	"strconv"

	"github.com/eyelash/joy/internal/types"
)

// cType renders t's use-site C spelling: the lowered builtins, or the tN
// typedef/struct tag of a struct instance, where N is the type's id.
func cType(t *types.Type) string {
	switch {
	case t.IsVoid():
		return "void"
	case t.IsInt():
		return "int"
	default:
		return "t" + strconv.FormatUint(t.ID, 10)
	}
}

// writeStructDecl emits one struct instance's full declaration: a tagged
// struct plus a typedef to its tN name, with one field per member in
// source order.
func writeStructDecl(w *Writer, t *types.Type) {
	name := cType(t)
	w.line(fmt.Sprintf("typedef struct %s {", name))
	w.indentIn()
	for _, m := range t.Members {
		w.line(fmt.Sprintf("%s %s;", cType(m.Type), m.Name))
	}
	w.indentOut()
	w.line(fmt.Sprintf("} %s;", name))
}

// writeTypeDecls emits the ordered type list's declarations, builtins
// skipped since Void/Int lower directly to C keywords with no declaration
// of their own.
func writeTypeDecls(w *Writer, all []*types.Type) {
	for _, t := range all {
		if t.IsStruct() {
			writeStructDecl(w, t)
		}
	}
}
