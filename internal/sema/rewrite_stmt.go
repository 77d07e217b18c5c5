package sema

import (
	"github.com/eyelash/joy/internal/ast"
	"github.com/eyelash/joy/internal/diag"
	"github.com/eyelash/joy/internal/ir"
	"github.com/eyelash/joy/internal/scope"
	"github.com/eyelash/joy/internal/types"
)

// rewriteStmt returns the rewritten statement, whether it (and every
// nested construct) type-checked, and whether it is guaranteed to return
// on every control-flow path out of it. The return check is a
// conservative structural one: both branches of an if must return, a
// while body never counts regardless of its condition.
func (c *Checker) rewriteStmt(id ast.StmtID, terms, typeVars *scope.Chain[*types.Type], retType *types.Type) (*ir.Stmt, bool, bool) {
	st := c.prog.Stmts.Get(id)
	if st == nil {
		return nil, false, false
	}

	switch st.Kind {
	case ast.StmtBlock:
		data := c.prog.Stmts.Block(id)
		inner := terms.Push()
		var stmts []*ir.Stmt
		ok := true
		returns := false
		for _, sid := range data.Stmts {
			sn, sok, sret := c.rewriteStmt(sid, inner, typeVars, retType)
			if !sok {
				ok = false
			}
			if sn != nil && sok {
				stmts = append(stmts, sn)
			}
			if sret {
				returns = true
			}
		}
		return &ir.Stmt{Kind: ir.StmtBlock, Stmts: stmts}, ok, returns

	case ast.StmtEmpty:
		return &ir.Stmt{Kind: ir.StmtEmpty}, true, false

	case ast.StmtLet:
		return c.rewriteLet(id, terms, typeVars)

	case ast.StmtIf:
		data := c.prog.Stmts.If(id)
		cond, cok := c.rewriteExpr(data.Cond, terms, typeVars, c.interner.Int())
		ok := cok
		if cok && !cond.Type.IsInt() {
			c.bag.Error(c.prog.Path, st.Span, diag.ErrTypeMismatch, "if condition is not Int")
			ok = false
		}
		thenNode, thenOK, thenReturns := c.rewriteStmt(data.Then, terms, typeVars, retType)
		ok = ok && thenOK

		var elseNode *ir.Stmt
		elseReturns := false
		hasElse := data.Else != 0
		if hasElse {
			var elseOK bool
			elseNode, elseOK, elseReturns = c.rewriteStmt(data.Else, terms, typeVars, retType)
			ok = ok && elseOK
		}
		return &ir.Stmt{Kind: ir.StmtIf, Cond: cond, Then: thenNode, Else: elseNode}, ok, thenReturns && hasElse && elseReturns

	case ast.StmtWhile:
		data := c.prog.Stmts.While(id)
		cond, cok := c.rewriteExpr(data.Cond, terms, typeVars, c.interner.Int())
		ok := cok
		if cok && !cond.Type.IsInt() {
			c.bag.Error(c.prog.Path, st.Span, diag.ErrTypeMismatch, "while condition is not Int")
			ok = false
		}
		body, bodyOK, _ := c.rewriteStmt(data.Body, terms, typeVars, retType)
		return &ir.Stmt{Kind: ir.StmtWhile, Cond: cond, Body: body}, ok && bodyOK, false

	case ast.StmtReturn:
		return c.rewriteReturn(id, terms, typeVars, retType)

	case ast.StmtExpr:
		data := c.prog.Stmts.ExprStmt(id)
		val, ok := c.rewriteExpr(data.Value, terms, typeVars, nil)
		return &ir.Stmt{Kind: ir.StmtExpr, Val: val}, ok, false
	}
	return nil, false, false
}

func (c *Checker) rewriteLet(id ast.StmtID, terms, typeVars *scope.Chain[*types.Type]) (*ir.Stmt, bool, bool) {
	st := c.prog.Stmts.Get(id)
	data := c.prog.Stmts.Let(id)

	_, redeclared := terms.LookupLocal(data.Name)
	if redeclared {
		c.bag.Error(c.prog.Path, st.Span, diag.ErrRedeclaredVariable, "redeclaration of "+quote(data.Name)+" in the same scope")
	}

	var declared *types.Type
	ok := true
	if data.DeclaredType != 0 {
		declared = c.resolveTypeExpr(data.DeclaredType, typeVars)
		if declared == nil {
			ok = false
		}
	}

	// The binding is not visible to its own initializer: insert it only
	// after the initializer has been rewritten, whether or not a type was
	// declared up front, so "let x: Int = x;" reports x as undefined
	// rather than resolving it to the in-progress binding.
	val, vok := c.rewriteExpr(data.Value, terms, typeVars, declared)
	if !vok {
		ok = false
	}

	if declared != nil && !redeclared {
		terms.Insert(data.Name, declared)
	}

	finalType := declared
	if declared == nil {
		if vok {
			finalType = val.Type
			if !redeclared {
				terms.Insert(data.Name, finalType)
			}
		}
	} else if vok && val.Type != declared {
		c.bag.Error(c.prog.Path, st.Span, diag.ErrTypeMismatch,
			"cannot initialize "+quote(data.Name)+" of type "+declared.DebugName()+" with "+val.Type.DebugName())
		ok = false
	}

	if redeclared {
		ok = false
	}
	return &ir.Stmt{Kind: ir.StmtLet, Name: data.Name, Decl: finalType, Val: val}, ok, false
}

func (c *Checker) rewriteReturn(id ast.StmtID, terms, typeVars *scope.Chain[*types.Type], retType *types.Type) (*ir.Stmt, bool, bool) {
	st := c.prog.Stmts.Get(id)
	data := c.prog.Stmts.Return(id)

	if data.Value == 0 {
		if !retType.IsVoid() {
			c.bag.Error(c.prog.Path, st.Span, diag.ErrReturnTypeMismatch,
				"missing return value; function returns "+retType.DebugName())
			return &ir.Stmt{Kind: ir.StmtReturn}, false, true
		}
		return &ir.Stmt{Kind: ir.StmtReturn}, true, true
	}

	val, ok := c.rewriteExpr(data.Value, terms, typeVars, retType)
	if !ok {
		return &ir.Stmt{Kind: ir.StmtReturn}, false, true
	}
	if val.Type != retType {
		c.bag.Error(c.prog.Path, st.Span, diag.ErrReturnTypeMismatch,
			"returned "+val.Type.DebugName()+", function returns "+retType.DebugName())
		return &ir.Stmt{Kind: ir.StmtReturn, Val: val}, false, true
	}
	return &ir.Stmt{Kind: ir.StmtReturn, Val: val}, true, true
}
