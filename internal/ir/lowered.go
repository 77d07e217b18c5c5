// Package ir holds the instantiated program: the output of the semantic
// pass. Every node here is fully resolved: every Expr carries a concrete,
// non-nil *types.Type, and every Call names a FunctionInstance by id
// rather than an expression. Because this tree is never mutated again
// (the emitter only reads it), it is built as ordinary tagged pointer
// structs rather than arena-indexed like internal/ast; both shapes rely
// on tagged variants with exhaustive pattern matching.
package ir

import (
	"github.com/eyelash/joy/internal/ast"
	"github.com/eyelash/joy/internal/types"
)

type ExprKind uint8

const (
	ExprInt ExprKind = iota
	ExprName
	ExprBinary
	ExprAssign
	ExprCall
	ExprMember
)

// Expr is a fully type-checked expression. Type is never nil; a node that
// could not be checked is not built at all (the rewriter reports failure
// instead); an expression that failed to type never survives into a parent
// Expr, and the enclosing Stmt is dropped from its block.
type Expr struct {
	Kind ExprKind
	Type *types.Type

	IntValue int64
	Name     string // ExprName, and the bound variable name for ExprAssign.Left

	Op          ast.BinOp
	Left, Right *Expr

	Func *FunctionInstance // ExprCall
	Args []*Expr           // ExprCall

	Receiver *Expr // ExprMember
	Member   string
}

type StmtKind uint8

const (
	StmtBlock StmtKind = iota
	StmtEmpty
	StmtLet
	StmtIf
	StmtWhile
	StmtReturn
	StmtExpr
)

// Stmt is a fully type-checked statement.
type Stmt struct {
	Kind StmtKind

	Stmts []*Stmt // StmtBlock

	Name string       // StmtLet
	Decl *types.Type  // StmtLet
	Val  *Expr        // StmtLet, StmtReturn (nil means no value), StmtExpr

	Cond *Expr // StmtIf, StmtWhile
	Then *Stmt // StmtIf
	Else *Stmt // StmtIf (nil means no else)
	Body *Stmt // StmtWhile
}
