package sema

import (
	"fmt"

	"github.com/eyelash/joy/internal/ast"
	"github.com/eyelash/joy/internal/diag"
	"github.com/eyelash/joy/internal/scope"
	"github.com/eyelash/joy/internal/source"
	"github.com/eyelash/joy/internal/types"
)

// resolveTypeExpr resolves a parsed type expression to an instantiated
// Type, reporting diagnostics for every failure it encounters.
func (c *Checker) resolveTypeExpr(texpr ast.TypeExprID, typeVars *scope.Chain[*types.Type]) *types.Type {
	return c.resolveTypeExprOpt(texpr, typeVars, true)
}

// resolveTypeExprQuiet resolves a type expression without recording
// diagnostics on failure. The Unifier (unify.go) uses this for bare-name
// formal types: a failed speculative match against one overload candidate
// must not leave a diagnostic behind for every candidate tried.
func (c *Checker) resolveTypeExprQuiet(texpr ast.TypeExprID, typeVars *scope.Chain[*types.Type]) *types.Type {
	return c.resolveTypeExprOpt(texpr, typeVars, false)
}

func (c *Checker) resolveTypeExprOpt(texpr ast.TypeExprID, typeVars *scope.Chain[*types.Type], report bool) *types.Type {
	// An absent return-type expression defaults to Void.
	if texpr == 0 {
		return c.interner.Void()
	}
	expr := c.prog.Exprs.Get(texpr)
	if expr == nil {
		return nil
	}
	switch expr.Kind {
	case ast.ExprName:
		name := c.prog.Exprs.Name(texpr).Name
		if t, ok := typeVars.Lookup(name); ok {
			return t
		}
		switch name {
		case "Void":
			return c.interner.Void()
		case "Int":
			return c.interner.Int()
		}
		return c.resolveStructRef(name, nil, expr.Span, report)
	case ast.ExprCall:
		call := c.prog.Exprs.Call(texpr)
		callee := c.prog.Exprs.Get(call.Callee)
		if callee == nil || callee.Kind != ast.ExprName {
			if report {
				c.bag.Error(c.prog.Path, expr.Span, diag.ErrUnknownType, "generic type application requires a plain name")
			}
			return nil
		}
		name := c.prog.Exprs.Name(call.Callee).Name
		args := make([]*types.Type, 0, len(call.Args))
		ok := true
		for _, a := range call.Args {
			at := c.resolveTypeExprOpt(a, typeVars, report)
			if at == nil {
				ok = false
				continue
			}
			args = append(args, at)
		}
		if !ok {
			return nil
		}
		return c.resolveStructRef(name, args, expr.Span, report)
	}
	if report {
		c.bag.Error(c.prog.Path, expr.Span, diag.ErrUnknownType, "not a valid type expression")
	}
	return nil
}

// resolveStructRef disambiguates name among every same-named struct
// definition by type-argument arity and instantiates the unique match.
func (c *Checker) resolveStructRef(name string, args []*types.Type, span source.Span, report bool) *types.Type {
	defs := c.prog.StructuresNamed(name)
	if len(defs) == 0 {
		if report {
			c.bag.Error(c.prog.Path, span, diag.ErrUnknownType, fmt.Sprintf("unknown type %q", name))
		}
		return nil
	}
	var match *ast.Structure
	count := 0
	for _, s := range defs {
		if len(s.TemplateParams) == len(args) {
			match = s
			count++
		}
	}
	switch {
	case count == 0:
		if report {
			c.bag.Error(c.prog.Path, span, diag.ErrWrongTypeArgCount, fmt.Sprintf("type %q has no definition taking %d type argument(s)", name, len(args)))
		}
		return nil
	case count > 1:
		if report {
			c.bag.Error(c.prog.Path, span, diag.ErrDuplicateStructName, fmt.Sprintf("multiple structs named %q found", name))
		}
		return nil
	}
	return c.instantiateStructure(match, args, report)
}

// instantiateStructure resolves a structure definition plus concrete type
// arguments to an instantiated Type: cache lookup, then cache-before-recurse
// allocation so that a generic struct whose own members mention itself
// (directly or through another generic) terminates.
func (c *Checker) instantiateStructure(def *ast.Structure, args []*types.Type, report bool) *types.Type {
	if t, ok := c.interner.LookupStruct(def, args); ok {
		return t
	}
	t := c.interner.NewStruct(def, args)

	typeVars := scope.New[*types.Type]()
	for i, p := range def.TemplateParams {
		typeVars.Insert(p, args[i])
	}

	members := make([]types.Member, 0, len(def.Members))
	for _, m := range def.Members {
		mt := c.resolveTypeExprOpt(m.Type, typeVars, report)
		if mt == nil {
			continue
		}
		members = append(members, types.Member{Name: m.Name, Type: mt})
	}
	t.SetMembers(members)
	// Append only now that members are resolved, so a struct's member
	// types are already in the ordered list (and so already emitted)
	// before the struct itself.
	c.interner.Append(t)
	return t
}
