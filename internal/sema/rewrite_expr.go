package sema

import (
	"github.com/eyelash/joy/internal/ast"
	"github.com/eyelash/joy/internal/diag"
	"github.com/eyelash/joy/internal/ir"
	"github.com/eyelash/joy/internal/scope"
	"github.com/eyelash/joy/internal/types"
)

// rewriteExpr produces a fresh, type-annotated ir.Expr from a source
// expression, or reports false if any nested error occurred. expected
// carries the enclosing context's expected type, if any, and is threaded
// into call-site overload resolution.
func (c *Checker) rewriteExpr(id ast.ExprID, terms, typeVars *scope.Chain[*types.Type], expected *types.Type) (*ir.Expr, bool) {
	expr := c.prog.Exprs.Get(id)
	if expr == nil {
		return nil, false
	}
	switch expr.Kind {
	case ast.ExprInt:
		return &ir.Expr{Kind: ir.ExprInt, Type: c.interner.Int(), IntValue: c.prog.Exprs.Int(id).Value}, true

	case ast.ExprName:
		name := c.prog.Exprs.Name(id).Name
		t, ok := terms.Lookup(name)
		if !ok {
			c.bag.Error(c.prog.Path, expr.Span, diag.ErrUndefinedVariable, "undefined variable "+quote(name))
			return nil, false
		}
		return &ir.Expr{Kind: ir.ExprName, Type: t, Name: name}, true

	case ast.ExprBinary:
		data := c.prog.Exprs.Binary(id)
		intT := c.interner.Int()
		left, lok := c.rewriteExpr(data.Left, terms, typeVars, intT)
		right, rok := c.rewriteExpr(data.Right, terms, typeVars, intT)
		if !lok || !rok {
			return nil, false
		}
		if !left.Type.IsInt() || !right.Type.IsInt() {
			c.bag.Error(c.prog.Path, expr.Span, diag.ErrTypeMismatch, "operand of '"+data.Op.String()+"' is not Int")
			return nil, false
		}
		return &ir.Expr{Kind: ir.ExprBinary, Type: intT, Op: data.Op, Left: left, Right: right}, true

	case ast.ExprAssign:
		data := c.prog.Exprs.Assign(id)
		leftExpr := c.prog.Exprs.Get(data.Left)
		if leftExpr == nil || leftExpr.Kind != ast.ExprName {
			c.bag.Error(c.prog.Path, expr.Span, diag.ErrAssignToNonName, "left-hand side of assignment must be a name")
			return nil, false
		}
		name := c.prog.Exprs.Name(data.Left).Name
		leftType, ok := terms.Lookup(name)
		if !ok {
			c.bag.Error(c.prog.Path, leftExpr.Span, diag.ErrUndefinedVariable, "undefined variable "+quote(name))
			return nil, false
		}
		right, rok := c.rewriteExpr(data.Right, terms, typeVars, leftType)
		if !rok {
			return nil, false
		}
		if right.Type != leftType {
			c.bag.Error(c.prog.Path, expr.Span, diag.ErrTypeMismatch,
				"cannot assign "+right.Type.DebugName()+" to "+quote(name)+" of type "+leftType.DebugName())
			return nil, false
		}
		return &ir.Expr{Kind: ir.ExprAssign, Type: leftType, Name: name, Right: right}, true

	case ast.ExprCall:
		return c.rewriteCall(id, terms, typeVars, expected)

	case ast.ExprMember:
		data := c.prog.Exprs.Member(id)
		recv, ok := c.rewriteExpr(data.Receiver, terms, typeVars, nil)
		if !ok {
			return nil, false
		}
		if !recv.Type.IsStruct() {
			c.bag.Error(c.prog.Path, expr.Span, diag.ErrMemberOnNonStruct, recv.Type.DebugName()+" is not a struct")
			return nil, false
		}
		mt, found := recv.Type.Member(data.Member)
		if !found {
			c.bag.Error(c.prog.Path, expr.Span, diag.ErrMissingMember, recv.Type.DebugName()+" has no member "+quote(data.Member))
			return nil, false
		}
		return &ir.Expr{Kind: ir.ExprMember, Type: mt, Receiver: recv, Member: data.Member}, true
	}
	return nil, false
}

// rewriteCall lowers a call expression, including uniform function call
// syntax: `recv.m(args)` becomes the free call `m(recv, args)` before
// overload resolution ever runs.
func (c *Checker) rewriteCall(id ast.ExprID, terms, typeVars *scope.Chain[*types.Type], expected *types.Type) (*ir.Expr, bool) {
	expr := c.prog.Exprs.Get(id)
	data := c.prog.Exprs.Call(id)
	callee := c.prog.Exprs.Get(data.Callee)

	var name string
	actualArgs := data.Args
	if callee != nil && callee.Kind == ast.ExprMember {
		member := c.prog.Exprs.Member(data.Callee)
		name = member.Member
		actualArgs = append([]ast.ExprID{member.Receiver}, data.Args...)
	} else if callee != nil && callee.Kind == ast.ExprName {
		name = c.prog.Exprs.Name(data.Callee).Name
	} else {
		c.bag.Error(c.prog.Path, expr.Span, diag.ErrCallCalleeNotName, "call target must be a name or a member access")
		return nil, false
	}

	args := make([]*ir.Expr, 0, len(actualArgs))
	ok := true
	for _, a := range actualArgs {
		ae, aok := c.rewriteExpr(a, terms, typeVars, nil)
		if !aok {
			ok = false
			continue
		}
		args = append(args, ae)
	}
	if !ok {
		return nil, false
	}

	argTypes := make([]*types.Type, len(args))
	for i, a := range args {
		argTypes[i] = a.Type
	}

	fi, fok := c.resolveOverload(name, argTypes, expected, expr.Span)
	if !fok {
		return nil, false
	}
	return &ir.Expr{Kind: ir.ExprCall, Type: fi.Return, Func: fi, Args: args}, true
}

func quote(s string) string { return "\"" + s + "\"" }
