package ast

import "github.com/eyelash/joy/internal/source"

// Exprs owns every expression/type-expression node produced while parsing
// one program, split into a spine arena (Expr) and one payload arena per
// kind.
type Exprs struct {
	arena    *Arena[Expr]
	ints     *Arena[IntData]
	names    *Arena[NameData]
	binaries *Arena[BinaryData]
	assigns  *Arena[AssignData]
	calls    *Arena[CallData]
	members  *Arena[MemberData]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		arena:    NewArena[Expr](capHint),
		ints:     NewArena[IntData](capHint / 4),
		names:    NewArena[NameData](capHint / 2),
		binaries: NewArena[BinaryData](capHint / 4),
		assigns:  NewArena[AssignData](capHint / 8),
		calls:    NewArena[CallData](capHint / 4),
		members:  NewArena[MemberData](capHint / 8),
	}
}

func (e *Exprs) Get(id ExprID) *Expr {
	return e.arena.Get(uint32(id))
}

func (e *Exprs) NewInt(span source.Span, value int64) ExprID {
	p := e.ints.Allocate(IntData{Value: value})
	return ExprID(e.arena.Allocate(Expr{Kind: ExprInt, Span: span, Payload: p}))
}

func (e *Exprs) Int(id ExprID) *IntData {
	if x := e.Get(id); x == nil || x.Kind != ExprInt {
		return nil
	}
	return e.ints.Get(e.Get(id).Payload)
}

func (e *Exprs) NewName(span source.Span, name string) ExprID {
	p := e.names.Allocate(NameData{Name: name})
	return ExprID(e.arena.Allocate(Expr{Kind: ExprName, Span: span, Payload: p}))
}

func (e *Exprs) Name(id ExprID) *NameData {
	if x := e.Get(id); x == nil || x.Kind != ExprName {
		return nil
	}
	return e.names.Get(e.Get(id).Payload)
}

func (e *Exprs) NewBinary(span source.Span, op BinOp, left, right ExprID) ExprID {
	p := e.binaries.Allocate(BinaryData{Op: op, Left: left, Right: right})
	return ExprID(e.arena.Allocate(Expr{Kind: ExprBinary, Span: span, Payload: p}))
}

func (e *Exprs) Binary(id ExprID) *BinaryData {
	if x := e.Get(id); x == nil || x.Kind != ExprBinary {
		return nil
	}
	return e.binaries.Get(e.Get(id).Payload)
}

func (e *Exprs) NewAssign(span source.Span, left, right ExprID) ExprID {
	p := e.assigns.Allocate(AssignData{Left: left, Right: right})
	return ExprID(e.arena.Allocate(Expr{Kind: ExprAssign, Span: span, Payload: p}))
}

func (e *Exprs) Assign(id ExprID) *AssignData {
	if x := e.Get(id); x == nil || x.Kind != ExprAssign {
		return nil
	}
	return e.assigns.Get(e.Get(id).Payload)
}

func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	p := e.calls.Allocate(CallData{Callee: callee, Args: args})
	return ExprID(e.arena.Allocate(Expr{Kind: ExprCall, Span: span, Payload: p}))
}

func (e *Exprs) Call(id ExprID) *CallData {
	if x := e.Get(id); x == nil || x.Kind != ExprCall {
		return nil
	}
	return e.calls.Get(e.Get(id).Payload)
}

func (e *Exprs) NewMember(span source.Span, receiver ExprID, member string) ExprID {
	p := e.members.Allocate(MemberData{Receiver: receiver, Member: member})
	return ExprID(e.arena.Allocate(Expr{Kind: ExprMember, Span: span, Payload: p}))
}

func (e *Exprs) Member(id ExprID) *MemberData {
	if x := e.Get(id); x == nil || x.Kind != ExprMember {
		return nil
	}
	return e.members.Get(e.Get(id).Payload)
}
