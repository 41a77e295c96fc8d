package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/absurd-lang/absurd/ast"
	"github.com/absurd-lang/absurd/token"
)

// Parse consumes the remaining tokens and returns the statement list. The
// first fatal diagnostic stops the parse and is returned as *Error with no
// statements.
func (p *Parser) Parse() (stmts []ast.Stmt, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			stmts, err = nil, b.err
		}
	}()
	for !p.check(token.EOF) {
		stmts = append(stmts, p.stmt())
	}
	return stmts, nil
}

func (p *Parser) stmt() ast.Stmt {
	tok := p.advance()
	switch tok.Kind {
	case token.Let:
		return p.varStmt(tok)
	case token.Func:
		return p.funcStmt(tok)
	case token.If:
		return p.ifStmt(tok)
	case token.Return:
		return p.returnStmt(tok)
	case token.While:
		return p.whileStmt(tok)
	case token.Loop:
		return p.loopStmt(tok)
	case token.Break:
		p.consume(token.Semi)
		return &ast.Break{Posn: tok.Pos}
	case token.Match:
		return p.matchStmt(tok)
	case token.Mod:
		return p.modStmt(tok)
	case token.Use:
		return p.useStmt(tok)
	case token.Enum:
		return p.enumStmt(tok)
	case token.LBrace:
		return &ast.Block{Stmts: p.blockStmts(), Posn: tok.Pos}
	default:
		p.retreat()
		return p.exprStmt()
	}
}

// block parses statements up to, but not including, the closing brace.
func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isToken(token.RBrace) && !p.check(token.EOF) {
		stmts = append(stmts, p.stmt())
	}
	return stmts
}

// blockStmts parses statements and the closing brace.
func (p *Parser) blockStmts() []ast.Stmt {
	stmts := p.block()
	p.consume(token.RBrace)
	return stmts
}

func (p *Parser) braced() []ast.Stmt {
	p.consume(token.LBrace)
	return p.blockStmts()
}

// terminate consumes the semicolon ending a statement. A function literal
// with an expression body has already taken it.
func (p *Parser) terminate() {
	if p.prev(1).Kind == token.Semi {
		return
	}
	p.consume(token.Semi)
}

func (p *Parser) exprStmt() ast.Stmt {
	e := p.expr()
	p.terminate()
	return &ast.ExprStmt{Expr: e, Posn: e.Pos()}
}

func (p *Parser) varStmt(start token.Token) ast.Stmt {
	decl := &ast.VarDecl{Posn: start.Pos}
	if p.accept(token.Mut) {
		decl.Mutable = true
	} else if p.accept(token.Pub) {
		decl.Public = true
		if p.accept(token.LParen) {
			for {
				decl.Exports = append(decl.Exports, p.consume(token.Ident))
				if !p.accept(token.Comma) || p.isToken(token.RParen) {
					break
				}
			}
			p.consume(token.RParen)
		}
	}

	short := false
	for {
		decl.Names = append(decl.Names, p.consume(token.Ident))
		if p.isToken(token.Semi) {
			short = true
			break
		}
		if !p.accept(token.Comma) {
			break
		}
	}
	if decl.Exports == nil {
		decl.Exports = append([]token.Token(nil), decl.Names...)
	}

	if short {
		p.advance()
		return p.nullBinding(decl)
	}
	p.consume(token.Colon)
	decl.Type = p.parseType()
	if ast.IsNullType(decl.Type.Type) {
		p.terminate()
		return p.nullBinding(decl)
	}
	p.consume(token.Assign)
	decl.FuncValue = p.isToken(token.Pipe)
	if decl.FuncValue {
		p.binding = decl
	}
	decl.Value = p.expr()
	p.binding = nil
	p.terminate()
	return decl
}

// nullBinding completes decl as a null-typed binding initialised to null.
func (p *Parser) nullBinding(decl *ast.VarDecl) ast.Stmt {
	at := decl.Names[0].Pos
	typ := token.Token{Kind: token.NullIdent, Lexeme: "null", Pos: at}
	decl.Type = ast.TypeToken{Tok: typ, Type: &ast.NamedType{Name: typ, Builtin: true}}
	decl.Value = p.nullLiteral(at)
	return decl
}

func (p *Parser) nullLiteral(at token.Position) *ast.Literal {
	return &ast.Literal{
		NodeID: p.id(),
		Tok:    token.Token{Kind: token.NullLit, Lexeme: "null", Pos: at},
	}
}

func (p *Parser) funcStmt(start token.Token) ast.Stmt {
	decl := &ast.FuncDecl{Posn: start.Pos}
	if p.accept(token.Pub) {
		decl.Public = true
		decl.Async = p.accept(token.Async)
	}
	if p.accept(token.Async) {
		decl.Async = true
		if p.accept(token.Pub) {
			decl.Public = true
		}
	}
	decl.Name = p.consume(token.Ident)
	p.consume(token.LParen)
	decl.Params = p.params(token.RParen)
	p.consume(token.Arrow)
	decl.ReturnType = p.parseType()

	if p.accept(token.Assign) {
		value := p.expr()
		p.terminate()
		decl.Body = []ast.Stmt{&ast.Return{Value: value, Posn: value.Pos()}}
		return decl
	}
	decl.Body = p.braced()
	return decl
}

// params parses `name: type` pairs up to and including the closing token.
// Commas between pairs are optional.
func (p *Parser) params(end token.Kind) []ast.Param {
	var params []ast.Param
	for !p.accept(end) {
		switch {
		case p.isToken(token.Ident):
			name := p.advance()
			p.consume(token.Colon)
			params = append(params, ast.Param{Name: name, Type: p.parseType()})
		case p.accept(token.Comma):
		default:
			p.throwError(UnexpectedToken, "parameter", p.found())
		}
	}
	return params
}

func (p *Parser) ifStmt(start token.Token) ast.Stmt {
	s := &ast.If{Posn: start.Pos}
	s.Cond = p.expr()
	s.Body = p.braced()
	for p.accept(token.ElseIf) {
		cond := p.expr()
		s.ElseIfs = append(s.ElseIfs, ast.ElseIf{Cond: cond, Body: p.braced()})
	}
	if p.accept(token.Else) {
		at := p.peek().Pos
		s.Else = &ast.Block{Stmts: p.braced(), Posn: at}
	}
	return s
}

func (p *Parser) returnStmt(start token.Token) ast.Stmt {
	if p.accept(token.Semi) {
		return &ast.Return{Value: p.nullLiteral(start.Pos), Posn: start.Pos}
	}
	value := p.expr()
	p.terminate()
	return &ast.Return{Value: value, Posn: start.Pos}
}

func (p *Parser) whileStmt(start token.Token) ast.Stmt {
	cond := p.expr()
	return &ast.While{Cond: cond, Body: p.braced(), Posn: start.Pos}
}

func (p *Parser) loopStmt(start token.Token) ast.Stmt {
	s := &ast.Loop{Posn: start.Pos, Infinite: true}
	if p.isToken(token.NumberLit) {
		tok := p.advance()
		n, ok := tok.Value.(float64)
		if !ok {
			p.throwErrorAt(tok.Pos, MalformedLiteral, tok.Kind.String())
		}
		s.Infinite = false
		if n < 0 {
			s.Count = 1
		} else {
			s.Count = int(n)
		}
	}
	s.Body = p.braced()
	return s
}

func (p *Parser) matchStmt(start token.Token) ast.Stmt {
	s := &ast.Match{Posn: start.Pos}
	s.Subject = p.expr()
	p.consume(token.LBrace)
	for p.peek().Kind.IsLiteral() || p.isUppercaseIdent() {
		key := p.expr()
		p.consume(token.ArrowBig)
		c := ast.MatchCase{Key: key}
		if p.accept(token.LBrace) {
			c.Body.Stmts = p.blockStmts()
		} else {
			c.Body.Expr = p.expr()
			p.consume(token.Comma)
		}
		s.Cases = append(s.Cases, c)
	}
	if p.accept(token.Underscore) {
		p.consume(token.ArrowBig)
		if p.accept(token.LBrace) {
			s.Default.Stmts = p.blockStmts()
		} else {
			s.Default.Expr = p.expr()
			p.accept(token.Comma)
		}
	}
	p.consume(token.RBrace)
	return s
}

func (p *Parser) modStmt(start token.Token) ast.Stmt {
	path := p.stringLit()
	p.consume(token.Semi)
	return &ast.ModDecl{Path: path, Posn: start.Pos}
}

func (p *Parser) useStmt(start token.Token) ast.Stmt {
	s := &ast.UseDecl{Posn: start.Pos}
	if p.accept(token.Mult) {
		s.All = true
		p.consume(token.From)
	} else {
		for !p.accept(token.From) {
			u := ast.UseName{Name: p.consume(token.Ident)}
			if p.accept(token.As) {
				alias := p.consume(token.Ident)
				u.Alias = &alias
			}
			s.Names = append(s.Names, u)
			p.accept(token.Comma)
		}
	}
	s.Path = p.stringLit()
	p.consume(token.Semi)
	return s
}

func (p *Parser) enumStmt(start token.Token) ast.Stmt {
	s := &ast.EnumDecl{Posn: start.Pos}
	s.Public = p.accept(token.Pub)
	s.Name = p.consumeUppercaseIdent()
	p.consume(token.LBrace)
	for !p.accept(token.RBrace) {
		s.Members = append(s.Members, p.consume(token.Ident))
		if !p.accept(token.Comma) && !p.isToken(token.RBrace) {
			p.throwError(UnexpectedToken, expected(token.Comma, token.RBrace), p.found())
		}
	}
	return s
}

// stringLit consumes a string literal and returns its decoded content.
func (p *Parser) stringLit() string {
	tok := p.consume(token.StringLit)
	s, ok := tok.Value.(string)
	if !ok {
		p.throwErrorAt(tok.Pos, MalformedLiteral, tok.Kind.String())
	}
	return s
}

func (p *Parser) isUppercaseIdent() bool {
	r, _ := utf8.DecodeRuneInString(p.peek().Lexeme)
	return unicode.IsUpper(r)
}

func (p *Parser) consumeUppercaseIdent() token.Token {
	if !p.isUppercaseIdent() {
		p.throwError(ExpectedUppercaseIdentifier, "uppercase identifier", p.found())
	}
	return p.consume(token.Ident)
}
