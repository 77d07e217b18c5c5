package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eyelash/joy/internal/ast"
)

// Interner is the sole creator of Type values and owns the instantiation
// cache for struct instances (the function-instance half of that cache
// lives in internal/ir, which shares this Interner's id counter). Ids are
// assigned in creation order starting at 1; the counter is shared with
// function-instance ids, so it is exposed via NextID rather than kept
// private to type creation.
type Interner struct {
	nextID uint64

	void *Type
	intT *Type

	// All types in append order, builtins included; this is the program's
	// ordered type list, whose struct entries are emitted as the tN
	// declarations.
	all []*Type

	cache map[structKey]*Type
}

type structKey struct {
	origin *ast.Structure
	args   string // joined Type.ID values; identity-equal args share a key
}

// NewInterner creates an Interner seeded with the Void and Int builtins.
func NewInterner() *Interner {
	in := &Interner{cache: make(map[structKey]*Type, 16)}
	in.void = in.alloc(&Type{Kind: KindVoid})
	in.intT = in.alloc(&Type{Kind: KindInt})
	return in
}

// NextID allocates the next id in the shared, per-program, monotonic
// counter. internal/ir.Program calls this for function instances too, so
// that types and function instances draw from one sequence.
func (in *Interner) NextID() uint64 {
	in.nextID++
	return in.nextID
}

func (in *Interner) alloc(t *Type) *Type {
	t.ID = in.NextID()
	in.all = append(in.all, t)
	return t
}

// Append adds a completed struct instance to the program's ordered type
// list. Call this only after SetMembers: the emitter walks Types() in
// this order and must see a struct's member types declared before the
// struct itself.
func (in *Interner) Append(t *Type) {
	in.all = append(in.all, t)
}

// Void returns the singleton Void type.
func (in *Interner) Void() *Type { return in.void }

// Int returns the singleton Int type.
func (in *Interner) Int() *Type { return in.intT }

// Types returns the program's ordered type list (builtins included).
func (in *Interner) Types() []*Type { return in.all }

// LookupStruct consults the instantiation cache for (origin, args). On a
// hit it returns the existing instance; on a miss it returns (nil, false)
// and installs nothing: the caller then calls NewStruct, which caches the
// new, member-less instance before its members are resolved. Caching
// before resolving members is what lets a generic struct that references
// itself through its own type arguments terminate.
func (in *Interner) LookupStruct(origin *ast.Structure, args []*Type) (*Type, bool) {
	key := structKeyOf(origin, args)
	t, ok := in.cache[key]
	return t, ok
}

// NewStruct allocates a fresh struct instance, assigns it an id, and
// installs it in the cache. Callers must have already checked
// LookupStruct for a hit. Members are filled in afterward via SetMembers;
// the instance is not yet part of the ordered type list (see Append) so
// that a type depending on another struct's members cannot be emitted
// ahead of that dependency.
func (in *Interner) NewStruct(origin *ast.Structure, args []*Type) *Type {
	t := &Type{Kind: KindStruct, Origin: origin, Args: args, ID: in.NextID()}
	in.cache[structKeyOf(origin, args)] = t
	return t
}

// SetMembers finalises a struct instance's member list, in source order.
func (t *Type) SetMembers(members []Member) {
	t.Members = members
}

func structKeyOf(origin *ast.Structure, args []*Type) structKey {
	var b strings.Builder
	for i, a := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(a.ID, 10))
	}
	return structKey{origin: origin, args: b.String()}
}

// DebugName renders a human-readable name for diagnostics, e.g. "Pair<Int, Int>".
func (t *Type) DebugName() string {
	if t == nil {
		return "<absent>"
	}
	switch t.Kind {
	case KindVoid:
		return "Void"
	case KindInt:
		return "Int"
	case KindStruct:
		name := "<struct>"
		if t.Origin != nil {
			name = t.Origin.Name
		}
		if len(t.Args) == 0 {
			return name
		}
		parts := make([]string, len(t.Args))
		for i, a := range t.Args {
			parts[i] = a.DebugName()
		}
		return fmt.Sprintf("%s<%s>", name, strings.Join(parts, ", "))
	}
	return "<unknown>"
}
