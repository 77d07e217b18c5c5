// Package parser implements a small recursive-descent parser over
// token.Token, producing an ast.Program. Like internal/lexer, this is an
// external-shaped front end: its only contract with the semantic core is
// the syntax tree plus source.Span locations.
package parser

import (
	"strconv"

	"github.com/eyelash/joy/internal/ast"
	"github.com/eyelash/joy/internal/diag"
	"github.com/eyelash/joy/internal/source"
	"github.com/eyelash/joy/internal/token"
)

// Parser consumes a flat token slice and builds an ast.Program.
type Parser struct {
	toks []token.Token
	pos  int
	file *source.File
	bag  *diag.Bag
	prog *ast.Program
}

// New creates a Parser over toks (as produced by lexer.Tokenize).
func New(file *source.File, toks []token.Token, bag *diag.Bag) *Parser {
	return &Parser{toks: toks, file: file, bag: bag, prog: ast.NewProgram(file.Path)}
}

// ParseProgram parses every top-level function and structure definition.
// Parse errors are reported into the bag and recovery resumes at the next
// top-level keyword, so one malformed definition does not hide diagnostics
// in the rest of the file, mirroring the error-tolerant policy the
// semantic pass itself follows.
func (p *Parser) ParseProgram() *ast.Program {
	for !p.atEOF() {
		switch p.cur().Kind {
		case token.KwFunc:
			if fn := p.parseFunction(); fn != nil {
				p.prog.Functions = append(p.prog.Functions, fn)
			}
		case token.KwStruct:
			if st := p.parseStruct(); st != nil {
				p.prog.Structures = append(p.prog.Structures, st)
			}
		default:
			p.errorf(p.cur().Span, diag.SynUnexpectedToken, "expected 'func' or 'struct'")
			p.syncToTopLevel()
		}
	}
	return p.prog
}

func (p *Parser) cur() token.Token  { return p.toks[p.pos] }
func (p *Parser) atEOF() bool       { return p.cur().Kind == token.EOF }
func (p *Parser) peekKind() token.Kind {
	if p.pos+1 < len(p.toks) {
		return p.toks[p.pos+1].Kind
	}
	return token.EOF
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if !p.atEOF() {
		p.pos++
	}
	return t
}

func (p *Parser) expect(k token.Kind, what string) (token.Token, bool) {
	if p.cur().Kind == k {
		return p.advance(), true
	}
	p.errorf(p.cur().Span, diag.SynUnexpectedToken, "expected "+what)
	return token.Token{}, false
}

func (p *Parser) errorf(sp source.Span, code diag.Code, msg string) {
	p.bag.Error(p.file.Path, sp, code, msg)
}

func (p *Parser) syncToTopLevel() {
	for !p.atEOF() && p.cur().Kind != token.KwFunc && p.cur().Kind != token.KwStruct {
		p.advance()
	}
}

func (p *Parser) parseTemplateParams() []string {
	if p.cur().Kind != token.Lt {
		return nil
	}
	p.advance()
	var names []string
	for {
		if id, ok := p.expect(token.Ident, "a template parameter name"); ok {
			names = append(names, id.Text)
		}
		if p.cur().Kind == token.Comma {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.Gt, "'>'")
	return names
}

// parseTypeExpr parses a bare Name or a Name<T1,...,Tn> application,
// reusing the expression arena: type expressions and expressions share a
// tree shape.
func (p *Parser) parseTypeExpr() ast.TypeExprID {
	nameTok, ok := p.expect(token.Ident, "a type name")
	if !ok {
		return 0
	}
	name := p.prog.Exprs.NewName(nameTok.Span, nameTok.Text)
	if p.cur().Kind != token.Lt {
		return name
	}
	p.advance()
	var args []ast.ExprID
	for {
		args = append(args, p.parseTypeExpr())
		if p.cur().Kind == token.Comma {
			p.advance()
			continue
		}
		break
	}
	closeTok, _ := p.expect(token.Gt, "'>'")
	sp := nameTok.Span.Cover(closeTok.Span)
	return p.prog.Exprs.NewCall(sp, name, args)
}

func (p *Parser) parseParams() []ast.Param {
	var params []ast.Param
	if p.cur().Kind == token.RParen {
		return params
	}
	for {
		nameTok, ok := p.expect(token.Ident, "a parameter name")
		if !ok {
			break
		}
		p.expect(token.Colon, "':'")
		ty := p.parseTypeExpr()
		params = append(params, ast.Param{Name: nameTok.Text, Type: ty})
		if p.cur().Kind == token.Comma {
			p.advance()
			continue
		}
		break
	}
	return params
}

func (p *Parser) parseFunction() *ast.Function {
	start := p.cur().Span
	p.advance() // 'func'
	nameTok, ok := p.expect(token.Ident, "a function name")
	if !ok {
		p.syncToTopLevel()
		return nil
	}
	templateParams := p.parseTemplateParams()
	p.expect(token.LParen, "'('")
	params := p.parseParams()
	p.expect(token.RParen, "')'")

	var retType ast.TypeExprID
	if p.cur().Kind == token.Colon {
		p.advance()
		retType = p.parseTypeExpr()
	}

	body := p.parseBlock()
	return &ast.Function{
		Name:           nameTok.Text,
		TemplateParams: templateParams,
		Params:         params,
		ReturnType:     retType,
		Body:           body,
		Span:           start.Cover(p.prog.Stmts.Get(body).Span),
	}
}

func (p *Parser) parseStruct() *ast.Structure {
	start := p.cur().Span
	p.advance() // 'struct'
	nameTok, ok := p.expect(token.Ident, "a structure name")
	if !ok {
		p.syncToTopLevel()
		return nil
	}
	templateParams := p.parseTemplateParams()
	openTok, _ := p.expect(token.LBrace, "'{'")
	var members []ast.Param
	for p.cur().Kind != token.RBrace && !p.atEOF() {
		fieldTok, ok := p.expect(token.Ident, "a member name")
		if !ok {
			p.advance()
			continue
		}
		p.expect(token.Colon, "':'")
		ty := p.parseTypeExpr()
		members = append(members, ast.Param{Name: fieldTok.Text, Type: ty})
		if p.cur().Kind == token.Comma {
			p.advance()
		}
	}
	closeTok, _ := p.expect(token.RBrace, "'}'")
	_ = openTok
	return &ast.Structure{
		Name:           nameTok.Text,
		TemplateParams: templateParams,
		Members:        members,
		Span:           start.Cover(closeTok.Span),
	}
}

func (p *Parser) parseBlock() ast.StmtID {
	openTok, _ := p.expect(token.LBrace, "'{'")
	var stmts []ast.StmtID
	for p.cur().Kind != token.RBrace && !p.atEOF() {
		stmts = append(stmts, p.parseStmt())
	}
	closeTok, _ := p.expect(token.RBrace, "'}'")
	return p.prog.Stmts.NewBlock(openTok.Span.Cover(closeTok.Span), stmts)
}

func (p *Parser) parseStmt() ast.StmtID {
	switch p.cur().Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.Semicolon:
		sp := p.advance().Span
		return p.prog.Stmts.NewEmpty(sp)
	case token.KwLet:
		return p.parseLet()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwReturn:
		return p.parseReturn()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseLet() ast.StmtID {
	start := p.advance().Span // 'let'
	nameTok, _ := p.expect(token.Ident, "a variable name")
	var declared ast.TypeExprID
	if p.cur().Kind == token.Colon {
		p.advance()
		declared = p.parseTypeExpr()
	}
	p.expect(token.Assign, "'='")
	value := p.parseExpr()
	end, _ := p.expect(token.Semicolon, "';'")
	return p.prog.Stmts.NewLet(start.Cover(end.Span), ast.LetData{
		Name: nameTok.Text, DeclaredType: declared, Value: value,
	})
}

func (p *Parser) parseIf() ast.StmtID {
	start := p.advance().Span // 'if'
	p.expect(token.LParen, "'('")
	cond := p.parseExpr()
	p.expect(token.RParen, "')'")
	then := p.parseStmt()
	var els ast.StmtID
	if p.cur().Kind == token.KwElse {
		p.advance()
		els = p.parseStmt()
	}
	end := p.prog.Stmts.Get(then).Span
	if els != 0 {
		end = p.prog.Stmts.Get(els).Span
	}
	return p.prog.Stmts.NewIf(start.Cover(end), ast.IfData{Cond: cond, Then: then, Else: els})
}

func (p *Parser) parseWhile() ast.StmtID {
	start := p.advance().Span // 'while'
	p.expect(token.LParen, "'('")
	cond := p.parseExpr()
	p.expect(token.RParen, "')'")
	body := p.parseStmt()
	return p.prog.Stmts.NewWhile(start.Cover(p.prog.Stmts.Get(body).Span), ast.WhileData{Cond: cond, Body: body})
}

func (p *Parser) parseReturn() ast.StmtID {
	start := p.advance().Span // 'return'
	var value ast.ExprID
	if p.cur().Kind != token.Semicolon {
		value = p.parseExpr()
	}
	end, _ := p.expect(token.Semicolon, "';'")
	return p.prog.Stmts.NewReturn(start.Cover(end.Span), value)
}

func (p *Parser) parseExprStmt() ast.StmtID {
	value := p.parseExpr()
	end, _ := p.expect(token.Semicolon, "';'")
	sp := p.prog.Exprs.Get(value).Span
	if end.Span != source.NoSpan {
		sp = sp.Cover(end.Span)
	}
	return p.prog.Stmts.NewExprStmt(sp, value)
}

// parseExpr parses an assignment, the lowest-precedence form: `l = r` is
// its own node, not chained with the comparison ladder.
func (p *Parser) parseExpr() ast.ExprID {
	left := p.parseEquality()
	if p.cur().Kind == token.Assign {
		p.advance()
		right := p.parseExpr()
		sp := p.prog.Exprs.Get(left).Span.Cover(p.prog.Exprs.Get(right).Span)
		return p.prog.Exprs.NewAssign(sp, left, right)
	}
	return left
}

func (p *Parser) parseEquality() ast.ExprID {
	left := p.parseComparison()
	for {
		var op ast.BinOp
		switch p.cur().Kind {
		case token.EqEq:
			op = ast.OpEq
		case token.BangEq:
			op = ast.OpNe
		default:
			return left
		}
		p.advance()
		right := p.parseComparison()
		left = p.mkBinary(op, left, right)
	}
}

func (p *Parser) parseComparison() ast.ExprID {
	left := p.parseAdditive()
	for {
		var op ast.BinOp
		switch p.cur().Kind {
		case token.Lt:
			op = ast.OpLt
		case token.LtEq:
			op = ast.OpLe
		case token.Gt:
			op = ast.OpGt
		case token.GtEq:
			op = ast.OpGe
		default:
			return left
		}
		p.advance()
		right := p.parseAdditive()
		left = p.mkBinary(op, left, right)
	}
}

func (p *Parser) parseAdditive() ast.ExprID {
	left := p.parseMultiplicative()
	for {
		var op ast.BinOp
		switch p.cur().Kind {
		case token.Plus:
			op = ast.OpAdd
		case token.Minus:
			op = ast.OpSub
		default:
			return left
		}
		p.advance()
		right := p.parseMultiplicative()
		left = p.mkBinary(op, left, right)
	}
}

func (p *Parser) parseMultiplicative() ast.ExprID {
	left := p.parsePostfix()
	for {
		var op ast.BinOp
		switch p.cur().Kind {
		case token.Star:
			op = ast.OpMul
		case token.Slash:
			op = ast.OpDiv
		case token.Percent:
			op = ast.OpRem
		default:
			return left
		}
		p.advance()
		right := p.parsePostfix()
		left = p.mkBinary(op, left, right)
	}
}

func (p *Parser) mkBinary(op ast.BinOp, left, right ast.ExprID) ast.ExprID {
	sp := p.prog.Exprs.Get(left).Span.Cover(p.prog.Exprs.Get(right).Span)
	return p.prog.Exprs.NewBinary(sp, op, left, right)
}

// parsePostfix parses a primary expression followed by any chain of member
// accesses and calls: `f(args)`, `x.m`, `x.m(args)`.
func (p *Parser) parsePostfix() ast.ExprID {
	expr := p.parsePrimary()
	for {
		switch p.cur().Kind {
		case token.Dot:
			p.advance()
			memberTok, ok := p.expect(token.Ident, "a member name")
			if !ok {
				return expr
			}
			sp := p.prog.Exprs.Get(expr).Span.Cover(memberTok.Span)
			expr = p.prog.Exprs.NewMember(sp, expr, memberTok.Text)
		case token.LParen:
			p.advance()
			var args []ast.ExprID
			if p.cur().Kind != token.RParen {
				for {
					args = append(args, p.parseExpr())
					if p.cur().Kind == token.Comma {
						p.advance()
						continue
					}
					break
				}
			}
			closeTok, _ := p.expect(token.RParen, "')'")
			sp := p.prog.Exprs.Get(expr).Span.Cover(closeTok.Span)
			expr = p.prog.Exprs.NewCall(sp, expr, args)
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.ExprID {
	tok := p.cur()
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			p.errorf(tok.Span, diag.SynUnexpectedToken, "malformed integer literal")
			v = 0
		}
		return p.prog.Exprs.NewInt(tok.Span, v)
	case token.Ident:
		p.advance()
		return p.prog.Exprs.NewName(tok.Span, tok.Text)
	case token.LParen:
		p.advance()
		inner := p.parseExpr()
		p.expect(token.RParen, "')'")
		return inner
	default:
		p.errorf(tok.Span, diag.SynUnexpectedToken, "expected an expression")
		p.advance()
		return p.prog.Exprs.NewInt(tok.Span, 0)
	}
}
