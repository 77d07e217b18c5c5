package ast

import "github.com/eyelash/joy/internal/source"

// Param is a name paired with a declared type expression, used both for a
// Function's formal arguments and a Structure's members.
type Param struct {
	Name string
	Type TypeExprID
}

// Function is a parsed, immutable-for-the-rest-of-the-pipeline function
// definition. ReturnType of 0 means the absent return type defaults to
// Void.
type Function struct {
	Name           string
	TemplateParams []string
	Params         []Param
	ReturnType     TypeExprID
	Body           StmtID
	Span           source.Span
}

// IsTemplate reports whether instantiating Function requires type arguments.
func (f *Function) IsTemplate() bool {
	return len(f.TemplateParams) > 0
}
