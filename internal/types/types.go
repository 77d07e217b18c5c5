// Package types implements the instantiated-type side of the semantic
// pass: Void, Int, and struct instances, plus the Interner that is the
// sole creator of Type values. Two types are equal iff they are the same
// allocated object.
package types

import "github.com/eyelash/joy/internal/ast"

// Kind discriminates the three type shapes a Type can take.
type Kind uint8

const (
	KindVoid Kind = iota
	KindInt
	KindStruct
)

// Member is one field of a struct instance, in source declaration order.
type Member struct {
	Name string
	Type *Type
}

// Type is an instantiated type. Every Type is allocated exactly once by an
// Interner and referred to everywhere else by pointer; pointer equality is
// type identity.
type Type struct {
	ID   uint64
	Kind Kind

	// Set only for KindStruct.
	Origin  *ast.Structure
	Args    []*Type
	Members []Member
}

func (t *Type) IsVoid() bool   { return t.Kind == KindVoid }
func (t *Type) IsInt() bool    { return t.Kind == KindInt }
func (t *Type) IsStruct() bool { return t.Kind == KindStruct }

// Member looks up a field by name, returning (nil, false) if t is not a
// struct instance or has no such member.
func (t *Type) Member(name string) (*Type, bool) {
	if t == nil || t.Kind != KindStruct {
		return nil, false
	}
	for _, m := range t.Members {
		if m.Name == name {
			return m.Type, true
		}
	}
	return nil, false
}
