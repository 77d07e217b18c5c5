package ast

import "github.com/eyelash/joy/internal/source"

// ExprKind discriminates the shape of an Expr node. Joy's source AST is
// small enough that a single tagged struct plus an exhaustive switch covers
// every case, rather than a separate arena type per node kind.
type ExprKind uint8

const (
	ExprInt ExprKind = iota
	ExprName
	ExprBinary
	ExprAssign
	ExprCall
	ExprMember
)

// BinOp enumerates the hard-coded Int-only binary operators. There is no
// operator overloading: every operator stays Int -> Int -> Int.
type BinOp uint8

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpRem
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

// IsComparison reports whether op yields a boolean-as-Int result rather
// than an arithmetic Int result. Both kinds type as Int either way; this
// only matters to pretty-printers and the emitter.
func (op BinOp) IsComparison() bool {
	return op >= OpEq
}

func (op BinOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpRem:
		return "%"
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	}
	return "?"
}

// Expr is the common envelope for every expression (and type-expression)
// node; Payload indexes into the arena selected by Kind.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload uint32
}

type IntData struct {
	Value int64
}

type NameData struct {
	Name string
}

type BinaryData struct {
	Op    BinOp
	Left  ExprID
	Right ExprID
}

type AssignData struct {
	Left  ExprID
	Right ExprID
}

type CallData struct {
	Callee ExprID
	Args   []ExprID
}

type MemberData struct {
	Receiver ExprID
	Member   string
}
