// Package lexer turns source bytes into a token.Stream. It is one of two
// external-collaborator front-end packages: the semantic core only needs
// the resulting stream and the source.Span mapping, not how it was
// produced.
package lexer

import (
	"github.com/eyelash/joy/internal/diag"
	"github.com/eyelash/joy/internal/source"
	"github.com/eyelash/joy/internal/token"
)

// Lexer scans one source file into a flat sequence of tokens.
type Lexer struct {
	file *source.File
	pos  uint32
	bag  *diag.Bag
}

// New creates a Lexer over file, reporting lexical diagnostics into bag.
func New(file *source.File, bag *diag.Bag) *Lexer {
	return &Lexer{file: file, bag: bag}
}

// Tokenize scans the whole file and returns its tokens, terminated by a
// single EOF token.
func (lx *Lexer) Tokenize() []token.Token {
	var out []token.Token
	for {
		tok := lx.next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func (lx *Lexer) content() []byte {
	return lx.file.Content
}

func (lx *Lexer) eof() bool {
	return int(lx.pos) >= len(lx.content())
}

func (lx *Lexer) peek() byte {
	if lx.eof() {
		return 0
	}
	return lx.content()[lx.pos]
}

func (lx *Lexer) peekAt(off uint32) byte {
	i := int(lx.pos + off)
	if i >= len(lx.content()) {
		return 0
	}
	return lx.content()[i]
}

func (lx *Lexer) span(start uint32) source.Span {
	return source.Span{File: lx.file.ID, Start: start, End: lx.pos}
}

func (lx *Lexer) skipTrivia() {
	for !lx.eof() {
		c := lx.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			lx.pos++
		case c == '/' && lx.peekAt(1) == '/':
			for !lx.eof() && lx.peek() != '\n' {
				lx.pos++
			}
		case c == '/' && lx.peekAt(1) == '*':
			start := lx.pos
			lx.pos += 2
			for !lx.eof() && !(lx.peek() == '*' && lx.peekAt(1) == '/') {
				lx.pos++
			}
			if lx.eof() {
				lx.bag.Error(lx.file.Path, lx.span(start), diag.LexUnknownChar, "unterminated block comment")
				return
			}
			lx.pos += 2
		default:
			return
		}
	}
}

func (lx *Lexer) next() token.Token {
	lx.skipTrivia()
	start := lx.pos
	if lx.eof() {
		return token.Token{Kind: token.EOF, Span: lx.span(start)}
	}

	c := lx.peek()
	switch {
	case isIdentStart(c):
		return lx.scanIdent(start)
	case isDigit(c):
		return lx.scanInt(start)
	default:
		return lx.scanPunct(start)
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentContinue(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (lx *Lexer) scanIdent(start uint32) token.Token {
	for !lx.eof() && isIdentContinue(lx.peek()) {
		lx.pos++
	}
	text := string(lx.content()[start:lx.pos])
	sp := lx.span(start)
	if kw, ok := token.Lookup(text); ok {
		return token.Token{Kind: kw, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

func (lx *Lexer) scanInt(start uint32) token.Token {
	for !lx.eof() && isDigit(lx.peek()) {
		lx.pos++
	}
	sp := lx.span(start)
	return token.Token{Kind: token.IntLit, Span: sp, Text: string(lx.content()[start:lx.pos])}
}

func (lx *Lexer) scanPunct(start uint32) token.Token {
	c := lx.peek()
	two := func(k2 token.Kind, expect byte) (token.Kind, bool) {
		if lx.peek() == expect {
			return k2, true
		}
		return 0, false
	}
	lx.pos++
	switch c {
	case '+':
		return token.Token{Kind: token.Plus, Span: lx.span(start), Text: "+"}
	case '-':
		return token.Token{Kind: token.Minus, Span: lx.span(start), Text: "-"}
	case '*':
		return token.Token{Kind: token.Star, Span: lx.span(start), Text: "*"}
	case '/':
		return token.Token{Kind: token.Slash, Span: lx.span(start), Text: "/"}
	case '%':
		return token.Token{Kind: token.Percent, Span: lx.span(start), Text: "%"}
	case '.':
		return token.Token{Kind: token.Dot, Span: lx.span(start), Text: "."}
	case ',':
		return token.Token{Kind: token.Comma, Span: lx.span(start), Text: ","}
	case ':':
		return token.Token{Kind: token.Colon, Span: lx.span(start), Text: ":"}
	case ';':
		return token.Token{Kind: token.Semicolon, Span: lx.span(start), Text: ";"}
	case '(':
		return token.Token{Kind: token.LParen, Span: lx.span(start), Text: "("}
	case ')':
		return token.Token{Kind: token.RParen, Span: lx.span(start), Text: ")"}
	case '{':
		return token.Token{Kind: token.LBrace, Span: lx.span(start), Text: "{"}
	case '}':
		return token.Token{Kind: token.RBrace, Span: lx.span(start), Text: "}"}
	case '=':
		if k, ok := two(token.EqEq, '='); ok {
			lx.pos++
			return token.Token{Kind: k, Span: lx.span(start), Text: "=="}
		}
		return token.Token{Kind: token.Assign, Span: lx.span(start), Text: "="}
	case '!':
		if k, ok := two(token.BangEq, '='); ok {
			lx.pos++
			return token.Token{Kind: k, Span: lx.span(start), Text: "!="}
		}
		lx.bag.Error(lx.file.Path, lx.span(start), diag.LexUnknownChar, "unexpected character '!'")
		return token.Token{Kind: token.Invalid, Span: lx.span(start), Text: "!"}
	case '<':
		if k, ok := two(token.LtEq, '='); ok {
			lx.pos++
			return token.Token{Kind: k, Span: lx.span(start), Text: "<="}
		}
		return token.Token{Kind: token.Lt, Span: lx.span(start), Text: "<"}
	case '>':
		if k, ok := two(token.GtEq, '='); ok {
			lx.pos++
			return token.Token{Kind: k, Span: lx.span(start), Text: ">="}
		}
		return token.Token{Kind: token.Gt, Span: lx.span(start), Text: ">"}
	default:
		lx.bag.Error(lx.file.Path, lx.span(start), diag.LexUnknownChar, "unexpected character '"+string(c)+"'")
		return token.Token{Kind: token.Invalid, Span: lx.span(start), Text: string(c)}
	}
}
