// Package sema implements the semantic pass: the Unifier (unify.go), the
// Type Resolver (resolve.go), the Expression/Statement Rewriter
// (rewrite_expr.go, rewrite_stmt.go), and the Function/Structure
// Instantiator (instantiate.go). Name resolution, overload resolution,
// type checking and AST rewriting all happen as one mutually recursive
// pass over a single Checker rather than as separate compiler stages,
// since template instantiation only knows which overload resolved and
// which types a body needs once it actually walks that body.
package sema

import (
	"github.com/eyelash/joy/internal/ast"
	"github.com/eyelash/joy/internal/diag"
	"github.com/eyelash/joy/internal/ir"
	"github.com/eyelash/joy/internal/source"
	"github.com/eyelash/joy/internal/types"
)

// Checker carries the state threaded through every stage of the pass: the
// definitions being read, the diagnostics sink, the type interner, and the
// instantiated program under construction.
type Checker struct {
	prog     *ast.Program
	bag      *diag.Bag
	interner *types.Interner
	out      *ir.Program
}

// Check runs the full semantic pass over prog and returns the instantiated
// program. It returns nil without doing any work if bag already carries a
// diagnostic when called: a lexer or parser failure pre-empts semantic
// analysis entirely rather than running it over a partial or malformed
// tree.
func Check(prog *ast.Program, bag *diag.Bag) *ir.Program {
	if bag.Len() > 0 {
		return nil
	}

	c := &Checker{
		prog:     prog,
		bag:      bag,
		interner: types.NewInterner(),
	}
	c.out = ir.NewProgram(prog.Path, c.interner)

	c.resolveEntry()
	return c.out
}

// resolveEntry instantiates the program's entry point: the function named
// main that takes no arguments and returns Void. Going through
// resolveOverload rather than picking the lone "main" by name means a
// mis-signed main (wrong arity, non-Void return) is rejected as "no
// matching function" instead of being instantiated and emitted with a C
// prototype that doesn't match main's, and an overload set where only one
// candidate has the entry signature resolves to that candidate instead of
// being reported ambiguous.
func (c *Checker) resolveEntry() {
	fi, _ := c.resolveOverload("main", nil, c.interner.Void(), source.NoSpan)
	if fi != nil {
		c.out.EntryID = fi.ID
	}
}
