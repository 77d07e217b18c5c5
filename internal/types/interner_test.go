package types

import (
	"testing"

	"github.com/eyelash/joy/internal/ast"
)

func TestBuiltinsAreSingletons(t *testing.T) {
	in := NewInterner()
	if in.Void() != in.Void() {
		t.Error("Void() returned two different objects")
	}
	if in.Int() != in.Int() {
		t.Error("Int() returned two different objects")
	}
	if in.Void() == in.Int() {
		t.Error("Void and Int must not be identity-equal")
	}
	if in.Void().ID == 0 || in.Int().ID == 0 {
		t.Error("builtin ids must be non-zero")
	}
}

func TestStructInstantiationIsCachedByTypeIdentity(t *testing.T) {
	in := NewInterner()
	def := &ast.Structure{Name: "Pair", TemplateParams: []string{"A", "B"}}

	args := []*Type{in.Int(), in.Int()}
	t1 := in.NewStruct(def, args)
	t1.SetMembers([]Member{{Name: "x", Type: in.Int()}, {Name: "y", Type: in.Int()}})

	if got, ok := in.LookupStruct(def, []*Type{in.Int(), in.Int()}); !ok || got != t1 {
		t.Errorf("LookupStruct with an equal-by-identity argument tuple must hit the cache, got (%v, %v)", got, ok)
	}

	other := []*Type{in.Void(), in.Int()}
	if _, ok := in.LookupStruct(def, other); ok {
		t.Error("LookupStruct with a different argument tuple must miss")
	}
}

func TestAppendOrdersAStructAfterItsMemberTypes(t *testing.T) {
	in := NewInterner()
	inner := &ast.Structure{Name: "Inner"}
	outer := &ast.Structure{Name: "Outer"}

	outerT := in.NewStruct(outer, nil)
	innerT := in.NewStruct(inner, nil)
	innerT.SetMembers(nil)
	in.Append(innerT)
	outerT.SetMembers([]Member{{Name: "i", Type: innerT}})
	in.Append(outerT)

	all := in.Types()
	innerIdx, outerIdx := -1, -1
	for i, tp := range all {
		if tp == innerT {
			innerIdx = i
		}
		if tp == outerT {
			outerIdx = i
		}
	}
	if innerIdx == -1 || outerIdx == -1 || innerIdx > outerIdx {
		t.Fatalf("Types() = %v, want Inner appended before Outer", all)
	}
}

func TestNewStructDoesNotAppendUntilAppendIsCalled(t *testing.T) {
	in := NewInterner()
	def := &ast.Structure{Name: "Lonely"}
	before := len(in.Types())
	t1 := in.NewStruct(def, nil)
	if len(in.Types()) != before {
		t.Fatal("NewStruct must not append to the ordered type list")
	}
	t1.SetMembers(nil)
	in.Append(t1)
	if len(in.Types()) != before+1 {
		t.Fatal("Append must add the instance to the ordered type list")
	}
}

func TestDebugName(t *testing.T) {
	in := NewInterner()
	def := &ast.Structure{Name: "Pair", TemplateParams: []string{"A", "B"}}
	p := in.NewStruct(def, []*Type{in.Int(), in.Int()})
	p.SetMembers([]Member{{Name: "x", Type: in.Int()}, {Name: "y", Type: in.Int()}})
	if got, want := p.DebugName(), "Pair<Int, Int>"; got != want {
		t.Errorf("DebugName() = %q, want %q", got, want)
	}
}
