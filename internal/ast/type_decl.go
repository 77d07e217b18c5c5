package ast

import "github.com/eyelash/joy/internal/source"

// Structure is a parsed structure definition; members are resolved lazily,
// once per concrete type-argument tuple, by the type resolver.
type Structure struct {
	Name           string
	TemplateParams []string
	Members        []Param
	Span           source.Span
}

// IsTemplate reports whether instantiating Structure requires type arguments.
func (s *Structure) IsTemplate() bool {
	return len(s.TemplateParams) > 0
}
