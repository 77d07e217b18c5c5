package emitc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eyelash/joy/internal/ast"
	"github.com/eyelash/joy/internal/ir"
)

func opText(op ast.BinOp) string { return op.String() }

// isPrintIntBuiltin recognises print_int structurally: the semantic pass
// never special-cases it, the emitter does, by shape alone, a function
// instance named print_int taking one Int and returning Void with an
// empty body.
func isPrintIntBuiltin(fi *ir.FunctionInstance) bool {
	if fi.Origin.Name != "print_int" {
		return false
	}
	if len(fi.Params) != 1 || !fi.Params[0].Type.IsInt() || !fi.Return.IsVoid() {
		return false
	}
	body := fi.Body
	return body != nil && body.Kind == ir.StmtBlock && len(body.Stmts) == 0
}

// exprText renders e as a fully parenthesised binary/assignment form,
// with no operator-precedence logic needed on the C side because every
// compound expression already carries its own parentheses.
func exprText(e *ir.Expr) string {
	switch e.Kind {
	case ir.ExprInt:
		return strconv.FormatInt(e.IntValue, 10)
	case ir.ExprName:
		return e.Name
	case ir.ExprBinary:
		return fmt.Sprintf("(%s %s %s)", exprText(e.Left), opText(e.Op), exprText(e.Right))
	case ir.ExprAssign:
		return fmt.Sprintf("(%s = %s)", e.Name, exprText(e.Right))
	case ir.ExprCall:
		return callText(e)
	case ir.ExprMember:
		return fmt.Sprintf("%s.%s", exprText(e.Receiver), e.Member)
	}
	return ""
}

func callText(e *ir.Expr) string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = exprText(a)
	}
	if isPrintIntBuiltin(e.Func) {
		return fmt.Sprintf(`printf("%%d\n", %s)`, strings.Join(args, ", "))
	}
	return fmt.Sprintf("f%d(%s)", e.Func.ID, strings.Join(args, ", "))
}
