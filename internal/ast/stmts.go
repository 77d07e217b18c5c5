package ast

import "github.com/eyelash/joy/internal/source"

// Stmts owns every statement node produced while parsing one program.
type Stmts struct {
	arena   *Arena[Stmt]
	blocks  *Arena[BlockData]
	lets    *Arena[LetData]
	ifs     *Arena[IfData]
	whiles  *Arena[WhileData]
	returns *Arena[ReturnData]
	exprs   *Arena[ExprStmtData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		arena:   NewArena[Stmt](capHint),
		blocks:  NewArena[BlockData](capHint / 4),
		lets:    NewArena[LetData](capHint / 4),
		ifs:     NewArena[IfData](capHint / 8),
		whiles:  NewArena[WhileData](capHint / 8),
		returns: NewArena[ReturnData](capHint / 8),
		exprs:   NewArena[ExprStmtData](capHint / 2),
	}
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.arena.Get(uint32(id))
}

func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	p := s.blocks.Allocate(BlockData{Stmts: stmts})
	return StmtID(s.arena.Allocate(Stmt{Kind: StmtBlock, Span: span, Payload: p}))
}

func (s *Stmts) Block(id StmtID) *BlockData {
	if x := s.Get(id); x == nil || x.Kind != StmtBlock {
		return nil
	}
	return s.blocks.Get(s.Get(id).Payload)
}

func (s *Stmts) NewEmpty(span source.Span) StmtID {
	return StmtID(s.arena.Allocate(Stmt{Kind: StmtEmpty, Span: span}))
}

func (s *Stmts) NewLet(span source.Span, data LetData) StmtID {
	p := s.lets.Allocate(data)
	return StmtID(s.arena.Allocate(Stmt{Kind: StmtLet, Span: span, Payload: p}))
}

func (s *Stmts) Let(id StmtID) *LetData {
	if x := s.Get(id); x == nil || x.Kind != StmtLet {
		return nil
	}
	return s.lets.Get(s.Get(id).Payload)
}

func (s *Stmts) NewIf(span source.Span, data IfData) StmtID {
	p := s.ifs.Allocate(data)
	return StmtID(s.arena.Allocate(Stmt{Kind: StmtIf, Span: span, Payload: p}))
}

func (s *Stmts) If(id StmtID) *IfData {
	if x := s.Get(id); x == nil || x.Kind != StmtIf {
		return nil
	}
	return s.ifs.Get(s.Get(id).Payload)
}

func (s *Stmts) NewWhile(span source.Span, data WhileData) StmtID {
	p := s.whiles.Allocate(data)
	return StmtID(s.arena.Allocate(Stmt{Kind: StmtWhile, Span: span, Payload: p}))
}

func (s *Stmts) While(id StmtID) *WhileData {
	if x := s.Get(id); x == nil || x.Kind != StmtWhile {
		return nil
	}
	return s.whiles.Get(s.Get(id).Payload)
}

func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	p := s.returns.Allocate(ReturnData{Value: value})
	return StmtID(s.arena.Allocate(Stmt{Kind: StmtReturn, Span: span, Payload: p}))
}

func (s *Stmts) Return(id StmtID) *ReturnData {
	if x := s.Get(id); x == nil || x.Kind != StmtReturn {
		return nil
	}
	return s.returns.Get(s.Get(id).Payload)
}

func (s *Stmts) NewExprStmt(span source.Span, value ExprID) StmtID {
	p := s.exprs.Allocate(ExprStmtData{Value: value})
	return StmtID(s.arena.Allocate(Stmt{Kind: StmtExpr, Span: span, Payload: p}))
}

func (s *Stmts) ExprStmt(id StmtID) *ExprStmtData {
	if x := s.Get(id); x == nil || x.Kind != StmtExpr {
		return nil
	}
	return s.exprs.Get(s.Get(id).Payload)
}
