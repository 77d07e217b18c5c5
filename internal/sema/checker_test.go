package sema

import (
	"testing"

	"github.com/eyelash/joy/internal/diag"
	"github.com/eyelash/joy/internal/ir"
	"github.com/eyelash/joy/internal/lexer"
	"github.com/eyelash/joy/internal/parser"
	"github.com/eyelash/joy/internal/source"
)

func check(t *testing.T, src string) (*ir.Program, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.Add("test.joy", []byte(src))
	file := fs.Get(id)

	bag := diag.NewBag()
	toks := lexer.New(file, bag).Tokenize()
	prog := parser.New(file, toks, bag).ParseProgram()
	if bag.Len() > 0 {
		return nil, bag
	}
	return Check(prog, bag), bag
}

func TestEmptyMain(t *testing.T) {
	p, bag := check(t, `func main() { }`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
	if len(p.Funcs) != 1 {
		t.Fatalf("want 1 function instance, got %d", len(p.Funcs))
	}
	fi := p.Funcs[0]
	if !fi.Return.IsVoid() {
		t.Errorf("main return type = %s, want Void", fi.Return.DebugName())
	}
	if p.EntryID != fi.ID {
		t.Errorf("entry id = %d, want %d", p.EntryID, fi.ID)
	}
}

func TestLetAndBinary(t *testing.T) {
	p, bag := check(t, `func main() { let x = 1 + 2; x; }`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
	fi := p.Funcs[0]
	block := fi.Body
	if len(block.Stmts) != 2 {
		t.Fatalf("want 2 statements in main's body, got %d", len(block.Stmts))
	}
	let := block.Stmts[0]
	if let.Kind != ir.StmtLet || let.Name != "x" {
		t.Fatalf("stmt 0 = %+v, want let x", let)
	}
	if !let.Decl.IsInt() {
		t.Errorf("x has type %s, want Int", let.Decl.DebugName())
	}
	if let.Val.Kind != ir.ExprBinary || !let.Val.Type.IsInt() {
		t.Errorf("x's initializer = %+v, want Int binary expression", let.Val)
	}
}

func TestGenericIdentityInstantiation(t *testing.T) {
	p, bag := check(t, `
func id<T>(x: T): T { return x; }
func main() { let a: Int = id(7); }
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
	var idInstances []*ir.FunctionInstance
	for _, fi := range p.Funcs {
		if fi.Origin.Name == "id" {
			idInstances = append(idInstances, fi)
		}
	}
	if len(idInstances) != 1 {
		t.Fatalf("want exactly one instantiation of id, got %d", len(idInstances))
	}
	if !idInstances[0].Return.IsInt() {
		t.Errorf("id<Int>'s return type = %s, want Int", idInstances[0].Return.DebugName())
	}
}

func TestUndefinedFunctionCall(t *testing.T) {
	_, bag := check(t, `func main() { f(1); }`)
	if !bag.HasErrors() {
		t.Fatal("want an error for a call to an undefined function")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.ErrNoMatchingFunction {
			found = true
		}
	}
	if !found {
		t.Errorf("want ErrNoMatchingFunction, got %+v", bag.Items())
	}
}

func TestStructInstantiatedOnceAcrossCallSites(t *testing.T) {
	p, bag := check(t, `
struct Pair<A,B> { x: A, y: B }
func main() {
	let p: Pair<Int,Int> = p2();
	p.x;
}
func p2(): Pair<Int,Int> { let z: Pair<Int,Int> = z2(); return z; }
func z2(): Pair<Int,Int> { let w: Pair<Int,Int> = w; return w; }
`)
	// This program is deliberately circular in its helper bodies purely to
	// exercise struct instantiation, not to type-check cleanly end to end;
	// what matters here is that exactly one Pair<Int,Int> instantiation
	// exists regardless of how many call sites mention it.
	_ = bag
	structTypes := 0
	for _, tp := range p.Interner.Types() {
		if tp.IsStruct() {
			structTypes++
		}
	}
	if structTypes != 1 {
		t.Errorf("want exactly one struct instantiation, got %d", structTypes)
	}
}

func TestUFCSRewritesMemberCallToFreeCall(t *testing.T) {
	p, bag := check(t, `
struct A {}
func f(this: A) { }
struct B {}
func f(this: B) { }
func g(this: A) { this.f(); }
func mk(): A { return mk(); }
func main() { g(mk()); }
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
	var g *ir.FunctionInstance
	for _, fi := range p.Funcs {
		if fi.Origin.Name == "g" {
			g = fi
		}
	}
	if g == nil {
		t.Fatal("g was never instantiated (UFCS-using functions are only instantiated on demand)")
	}
	if len(g.Body.Stmts) != 1 {
		t.Fatalf("want 1 statement in g's body, got %d", len(g.Body.Stmts))
	}
	call := g.Body.Stmts[0].Val
	if call == nil || call.Kind != ir.ExprCall || call.Func.Origin.Name != "f" {
		t.Fatalf("g's body = %+v, want a free call to f", call)
	}
	if len(call.Args) != 1 || call.Args[0].Kind != ir.ExprName || call.Args[0].Name != "this" {
		t.Errorf("call args = %+v, want the receiver this as the only argument", call.Args)
	}
	if pt := call.Func.Params[0].Type; !pt.IsStruct() || pt.Origin.Name != "A" {
		t.Errorf("resolved f overload takes %s, want A", pt.DebugName())
	}
}

func TestIfWithIntCondition(t *testing.T) {
	_, bag := check(t, `func main() { if (1) { } else { } }`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
}

func TestDuplicateStructNameIsAmbiguous(t *testing.T) {
	_, bag := check(t, `
struct X {}
struct X {}
func main() { let v: X = v2(); }
func v2(): X { let v: X = v; return v; }
`)
	if !bag.HasErrors() {
		t.Fatal("want an error for two same-arity structs named X")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.ErrDuplicateStructName {
			found = true
		}
	}
	if !found {
		t.Errorf("want ErrDuplicateStructName, got %+v", bag.Items())
	}
}

func TestMissingReturnIsAnError(t *testing.T) {
	_, bag := check(t, `func f(): Int { } func main() { f(); }`)
	if !bag.HasErrors() {
		t.Fatal("want an error for a non-Void function with no return on every path")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.ErrMissingReturn {
			found = true
		}
	}
	if !found {
		t.Errorf("want ErrMissingReturn, got %+v", bag.Items())
	}
}

func TestReturnTypeMismatchIsAnError(t *testing.T) {
	_, bag := check(t, `struct S {} func f(): Int { let s: S = g(); return s; } func g(): S { let s: S = g(); return s; } func main() { f(); }`)
	if !bag.HasErrors() {
		t.Fatal("want a return-type mismatch error")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.ErrReturnTypeMismatch {
			found = true
		}
	}
	if !found {
		t.Errorf("want ErrReturnTypeMismatch, got %+v", bag.Items())
	}
}

func TestInstantiationIDsAreMonotonicAndDistinct(t *testing.T) {
	p, bag := check(t, `
struct Pair<A,B> { x: A, y: B }
func id<T>(x: T): T { return x; }
func main() {
	let a: Int = id(1);
	let b: Pair<Int,Int> = mk();
}
func mk(): Pair<Int,Int> { let z: Pair<Int,Int> = mk(); return z; }
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
	seen := make(map[uint64]bool)
	for _, tp := range p.Interner.Types() {
		if tp.ID == 0 || seen[tp.ID] {
			t.Fatalf("type id %d is zero or duplicated", tp.ID)
		}
		seen[tp.ID] = true
	}
	for _, fi := range p.Funcs {
		if fi.ID == 0 || seen[fi.ID] {
			t.Fatalf("function instance id %d is zero or duplicated", fi.ID)
		}
		seen[fi.ID] = true
	}
}
