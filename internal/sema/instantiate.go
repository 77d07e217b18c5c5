package sema

import (
	"fmt"

	"github.com/eyelash/joy/internal/ast"
	"github.com/eyelash/joy/internal/diag"
	"github.com/eyelash/joy/internal/ir"
	"github.com/eyelash/joy/internal/scope"
	"github.com/eyelash/joy/internal/source"
	"github.com/eyelash/joy/internal/types"
)

// instantiateFunction resolves a function definition plus concrete type
// arguments to an instantiated function: arity check, cache lookup, fresh
// scopes bound to the type arguments, cache-before-recurse registration,
// body rewriting, and appending to the program's function list.
func (c *Checker) instantiateFunction(def *ast.Function, args []*types.Type, span source.Span) (*ir.FunctionInstance, bool) {
	if len(args) != len(def.TemplateParams) {
		c.bag.Error(c.prog.Path, span, diag.ErrWrongTypeArgCount, fmt.Sprintf(
			"function %q expects %d type argument(s), got %d", def.Name, len(def.TemplateParams), len(args)))
		return nil, false
	}

	if fi, ok := c.out.LookupFunc(def, args); ok {
		return fi, true
	}

	// Allocate the instance and install it in the cache before the body is
	// touched: this is what lets direct and generic recursion terminate
	// instead of looping forever.
	fi := c.out.NewFuncInstance(def, args)

	typeVars := scope.New[*types.Type]()
	for i, p := range def.TemplateParams {
		typeVars.Insert(p, args[i])
	}
	terms := scope.New[*types.Type]()

	ok := true

	params := make([]ir.Param, 0, len(def.Params))
	for _, p := range def.Params {
		pt := c.resolveTypeExpr(p.Type, typeVars)
		if pt == nil {
			ok = false
			continue
		}
		params = append(params, ir.Param{Name: p.Name, Type: pt})
		terms.Insert(p.Name, pt)
	}
	fi.Params = params

	ret := c.resolveTypeExpr(def.ReturnType, typeVars)
	if ret == nil {
		ok = false
		ret = c.interner.Void()
	}
	fi.Return = ret

	body, bodyOK, returns := c.rewriteStmt(def.Body, terms, typeVars, ret)
	fi.Body = body
	if !bodyOK {
		ok = false
	}
	if !ret.IsVoid() && !returns {
		c.bag.Error(c.prog.Path, def.Span, diag.ErrMissingReturn, fmt.Sprintf(
			"function %q must return a value of type %s on every path", def.Name, ret.DebugName()))
		ok = false
	}

	// Append only now that the body is fully rewritten.
	c.out.Append(fi)
	return fi, ok
}
