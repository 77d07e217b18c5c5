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

// unifyFunction is a first-order syntactic unifier: it tries to assign a
// concrete type to every one of f's template parameters from the actual
// argument types (and, if provided, the expected return type), and reports
// whether a fully determined assignment exists.
func (c *Checker) unifyFunction(f *ast.Function, argTypes []*types.Type, expected *types.Type) ([]*types.Type, bool) {
	if len(argTypes) != len(f.Params) {
		return nil, false
	}

	bound := make([]*types.Type, len(f.TemplateParams))
	tplIndex := make(map[string]int, len(f.TemplateParams))
	for i, p := range f.TemplateParams {
		tplIndex[p] = i
	}

	ok := true
	for i, p := range f.Params {
		if !c.matchTypeExpr(p.Type, argTypes[i], tplIndex, bound) {
			ok = false
		}
	}
	if expected != nil {
		if !c.matchTypeExpr(f.ReturnType, expected, tplIndex, bound) {
			ok = false
		}
	}
	if !ok {
		return nil, false
	}
	for _, b := range bound {
		// Every template parameter must be determined by the argument (and
		// return-type) positions; a partial assignment is not an instantiation.
		if b == nil {
			return nil, false
		}
	}
	return bound, true
}

// matchTypeExpr matches a formal (possibly template-parameterised) type
// expression against a concrete actual type, binding template parameters
// as it goes.
func (c *Checker) matchTypeExpr(formal ast.TypeExprID, actual *types.Type, tplIndex map[string]int, bound []*types.Type) bool {
	if actual == nil {
		return false
	}
	if formal == 0 {
		return actual == c.interner.Void()
	}
	expr := c.prog.Exprs.Get(formal)
	if expr == nil {
		return false
	}
	switch expr.Kind {
	case ast.ExprName:
		name := c.prog.Exprs.Name(formal).Name
		if idx, isTplParam := tplIndex[name]; isTplParam {
			if bound[idx] == nil {
				bound[idx] = actual
				return true
			}
			return bound[idx] == actual
		}
		resolved := c.resolveTypeExprQuiet(formal, scope.New[*types.Type]())
		return resolved != nil && resolved == actual
	case ast.ExprCall:
		if !actual.IsStruct() {
			return false
		}
		call := c.prog.Exprs.Call(formal)
		callee := c.prog.Exprs.Get(call.Callee)
		if callee == nil || callee.Kind != ast.ExprName {
			return false
		}
		name := c.prog.Exprs.Name(call.Callee).Name
		if actual.Origin == nil || actual.Origin.Name != name {
			return false
		}
		if len(call.Args) != len(actual.Args) {
			return false
		}
		for i, a := range call.Args {
			if !c.matchTypeExpr(a, actual.Args[i], tplIndex, bound) {
				return false
			}
		}
		return true
	}
	return false
}

// resolveOverload tries every definition named name, keeps the ones that
// unify, then instantiates the unique match. Zero matches is "no matching
// function"; more than one is "ambiguous"; the instantiator
// (instantiate.go) takes over from there.
func (c *Checker) resolveOverload(name string, argTypes []*types.Type, expected *types.Type, span source.Span) (*ir.FunctionInstance, bool) {
	defs := c.prog.FunctionsNamed(name)
	var matchDef *ast.Function
	var matchArgs []*types.Type
	count := 0
	for _, def := range defs {
		bound, ok := c.unifyFunction(def, argTypes, expected)
		if ok {
			matchDef, matchArgs = def, bound
			count++
		}
	}
	switch {
	case count == 0:
		c.bag.Error(c.prog.Path, span, diag.ErrNoMatchingFunction, fmt.Sprintf("no matching function %q found", name))
		return nil, false
	case count > 1:
		c.bag.Error(c.prog.Path, span, diag.ErrAmbiguousFunction, fmt.Sprintf("ambiguous call to %q", name))
		return nil, false
	}
	return c.instantiateFunction(matchDef, matchArgs, span)
}
