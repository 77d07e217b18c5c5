package ir

import (
	"strconv"
	"strings"

	"github.com/eyelash/joy/internal/ast"
	"github.com/eyelash/joy/internal/types"
)

// Param is a resolved, named formal argument of a FunctionInstance.
type Param struct {
	Name string
	Type *types.Type
}

// FunctionInstance is a monomorphised copy of a Function definition bound
// to a concrete type-argument tuple.
type FunctionInstance struct {
	ID       uint64
	Origin   *ast.Function
	TypeArgs []*types.Type
	Params   []Param
	Return   *types.Type
	Body     *Stmt
}

type funcKey struct {
	origin *ast.Function
	args   string
}

// Program is the instantiated program container: it owns every type and
// function instantiation, assigns their (shared) monotonic ids via
// Interner, and names the entry function.
type Program struct {
	SourcePath string
	Interner   *types.Interner

	// Funcs is appended to in completion order (a function instance is
	// appended only once its body has been fully rewritten), not
	// id-assignment order: a recursive or mutually recursive instantiation
	// can finish after an instance it called.
	Funcs []*FunctionInstance

	EntryID uint64

	cache map[funcKey]*FunctionInstance
}

// NewProgram creates an empty Program sharing interner's id counter.
func NewProgram(sourcePath string, interner *types.Interner) *Program {
	return &Program{
		SourcePath: sourcePath,
		Interner:   interner,
		cache:      make(map[funcKey]*FunctionInstance, 16),
	}
}

// LookupFunc consults the instantiation cache for (origin, args).
func (p *Program) LookupFunc(origin *ast.Function, args []*types.Type) (*FunctionInstance, bool) {
	fi, ok := p.cache[funcKeyOf(origin, args)]
	return fi, ok
}

// NewFuncInstance allocates a fresh, bodyless FunctionInstance, assigns it
// an id from the shared counter, and installs it in the cache immediately,
// before its body is rewritten, so that direct and generic recursion
// resolve to this in-progress instance instead of looping forever.
func (p *Program) NewFuncInstance(origin *ast.Function, args []*types.Type) *FunctionInstance {
	fi := &FunctionInstance{
		ID:       p.Interner.NextID(),
		Origin:   origin,
		TypeArgs: args,
	}
	p.cache[funcKeyOf(origin, args)] = fi
	return fi
}

// Append adds a completed FunctionInstance to the program's function list.
// Call this only after fi.Body has been filled in.
func (p *Program) Append(fi *FunctionInstance) {
	p.Funcs = append(p.Funcs, fi)
}

func funcKeyOf(origin *ast.Function, args []*types.Type) funcKey {
	var b strings.Builder
	for i, a := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(a.ID, 10))
	}
	return funcKey{origin: origin, args: b.String()}
}
