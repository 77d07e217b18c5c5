package emitc

import (
	"fmt"

	"github.com/eyelash/joy/internal/ir"
)

func writeStmt(w *Writer, s *ir.Stmt) {
	if s == nil {
		return
	}
	switch s.Kind {
	case ir.StmtBlock:
		w.line("{")
		w.indentIn()
		for _, c := range s.Stmts {
			writeStmt(w, c)
		}
		w.indentOut()
		w.line("}")
	case ir.StmtEmpty:
		w.line(";")
	case ir.StmtLet:
		w.line(fmt.Sprintf("%s %s = %s;", cType(s.Decl), s.Name, exprText(s.Val)))
	case ir.StmtIf:
		w.line(fmt.Sprintf("if (%s)", exprText(s.Cond)))
		writeStmt(w, s.Then)
		if s.Else != nil {
			w.line("else")
			writeStmt(w, s.Else)
		}
	case ir.StmtWhile:
		w.line(fmt.Sprintf("while (%s)", exprText(s.Cond)))
		writeStmt(w, s.Body)
	case ir.StmtReturn:
		if s.Val != nil {
			w.line(fmt.Sprintf("return %s;", exprText(s.Val)))
		} else {
			w.line("return;")
		}
	case ir.StmtExpr:
		w.line(exprText(s.Val) + ";")
	}
}
