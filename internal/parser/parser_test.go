package parser

import (
	"testing"

	"github.com/eyelash/joy/internal/ast"
	"github.com/eyelash/joy/internal/diag"
	"github.com/eyelash/joy/internal/lexer"
	"github.com/eyelash/joy/internal/source"
)

func parse(t *testing.T, src string) (*ast.Program, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.Add("test.joy", []byte(src))
	file := fs.Get(id)
	bag := diag.NewBag()
	toks := lexer.New(file, bag).Tokenize()
	return New(file, toks, bag).ParseProgram(), bag
}

func TestParseEmptyFunction(t *testing.T) {
	prog, bag := parse(t, `func main() { }`)
	if bag.Len() > 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if len(prog.Functions) != 1 {
		t.Fatalf("want 1 function, got %d", len(prog.Functions))
	}
	fn := prog.Functions[0]
	if fn.Name != "main" || len(fn.Params) != 0 || fn.ReturnType != 0 {
		t.Errorf("parsed function = %+v, want bare main() with no return type", fn)
	}
}

func TestParseFunctionWithTemplateParamsAndParams(t *testing.T) {
	prog, bag := parse(t, `func id<T>(x: T): T { return x; }`)
	if bag.Len() > 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	fn := prog.Functions[0]
	if len(fn.TemplateParams) != 1 || fn.TemplateParams[0] != "T" {
		t.Fatalf("template params = %v, want [T]", fn.TemplateParams)
	}
	if len(fn.Params) != 1 || fn.Params[0].Name != "x" {
		t.Fatalf("params = %+v, want [x: T]", fn.Params)
	}
	if fn.ReturnType == 0 {
		t.Fatal("want a non-absent return type")
	}
}

func TestParseStructWithTemplateParamsAndMembers(t *testing.T) {
	prog, bag := parse(t, `struct Pair<A,B> { x: A, y: B }`)
	if bag.Len() > 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if len(prog.Structures) != 1 {
		t.Fatalf("want 1 structure, got %d", len(prog.Structures))
	}
	st := prog.Structures[0]
	if len(st.TemplateParams) != 2 {
		t.Fatalf("template params = %v, want 2 of them", st.TemplateParams)
	}
	if len(st.Members) != 2 || st.Members[0].Name != "x" || st.Members[1].Name != "y" {
		t.Fatalf("members = %+v, want x and y", st.Members)
	}
}

func TestParseAssignmentIsLowestPrecedence(t *testing.T) {
	prog, bag := parse(t, `func main() { x = 1 + 2; }`)
	if bag.Len() > 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	fn := prog.Functions[0]
	block := prog.Stmts.Block(fn.Body)
	if len(block.Stmts) != 1 {
		t.Fatalf("want 1 statement, got %d", len(block.Stmts))
	}
	stmt := prog.Stmts.ExprStmt(block.Stmts[0])
	assign := prog.Exprs.Assign(stmt.Value)
	if assign == nil {
		t.Fatal("want an assignment expression")
	}
	right := prog.Exprs.Binary(assign.Right)
	if right == nil || right.Op != ast.OpAdd {
		t.Fatalf("assignment's right-hand side = %+v, want an addition", right)
	}
}

func TestParseOperatorPrecedenceMultiplyBeforeAdd(t *testing.T) {
	prog, bag := parse(t, `func main() { 1 + 2 * 3; }`)
	if bag.Len() > 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	fn := prog.Functions[0]
	block := prog.Stmts.Block(fn.Body)
	stmt := prog.Stmts.ExprStmt(block.Stmts[0])
	top := prog.Exprs.Binary(stmt.Value)
	if top == nil || top.Op != ast.OpAdd {
		t.Fatalf("top-level op = %+v, want addition", top)
	}
	right := prog.Exprs.Binary(top.Right)
	if right == nil || right.Op != ast.OpMul {
		t.Fatalf("right-hand side = %+v, want a multiplication", right)
	}
}

func TestParseUFCSMemberCallChain(t *testing.T) {
	prog, bag := parse(t, `func main() { recv.m(1, 2); }`)
	if bag.Len() > 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	fn := prog.Functions[0]
	block := prog.Stmts.Block(fn.Body)
	stmt := prog.Stmts.ExprStmt(block.Stmts[0])
	call := prog.Exprs.Call(stmt.Value)
	if call == nil || len(call.Args) != 2 {
		t.Fatalf("call = %+v, want a 2-argument call", call)
	}
	member := prog.Exprs.Member(call.Callee)
	if member == nil || member.Member != "m" {
		t.Fatalf("callee = %+v, want a member access to m", member)
	}
}

func TestParseGenericTypeApplication(t *testing.T) {
	prog, bag := parse(t, `struct Pair<A,B> { x: A, y: B } func main(): Pair<Int,Int> { return p; }`)
	if bag.Len() > 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	fn := prog.Functions[0]
	call := prog.Exprs.Call(fn.ReturnType)
	if call == nil || len(call.Args) != 2 {
		t.Fatalf("return type = %+v, want Pair<Int,Int>", call)
	}
}

func TestParseUnexpectedTopLevelTokenRecoversToNextDefinition(t *testing.T) {
	prog, bag := parse(t, `garbage func main() { }`)
	if !bag.HasErrors() {
		t.Fatal("want an error for a non-'func'/'struct' top-level token")
	}
	if len(prog.Functions) != 1 {
		t.Fatalf("want recovery to still parse main, got %d functions", len(prog.Functions))
	}
}

func TestParseMissingSemicolonIsAnError(t *testing.T) {
	_, bag := parse(t, `func main() { let x = 1 }`)
	if !bag.HasErrors() {
		t.Fatal("want an error for a missing ';'")
	}
}
