package ast

// Program is the parser's complete output for one source file: every
// top-level definition, plus the shared expression/statement arenas they
// reference.
type Program struct {
	Path       string
	Functions  []*Function
	Structures []*Structure
	Exprs      *Exprs
	Stmts      *Stmts
}

// NewProgram creates an empty Program with freshly allocated node arenas.
func NewProgram(path string) *Program {
	return &Program{
		Path:  path,
		Exprs: NewExprs(0),
		Stmts: NewStmts(0),
	}
}

// FunctionsNamed returns every function definition with the given name, in
// declaration order. Overload resolution iterates this set.
func (p *Program) FunctionsNamed(name string) []*Function {
	var out []*Function
	for _, f := range p.Functions {
		if f.Name == name {
			out = append(out, f)
		}
	}
	return out
}

// StructuresNamed returns every structure definition with the given name.
// More than one same-named structure is legal as long as their
// template-parameter arities differ enough to disambiguate a given
// reference's arity.
func (p *Program) StructuresNamed(name string) []*Structure {
	var out []*Structure
	for _, s := range p.Structures {
		if s.Name == name {
			out = append(out, s)
		}
	}
	return out
}
