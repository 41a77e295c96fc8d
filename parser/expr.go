package parser

import (
	"github.com/absurd-lang/absurd/ast"
	"github.com/absurd-lang/absurd/token"
)

var assignOps = map[token.Kind]ast.AssignOp{
	token.Assign: ast.AssignSet,
	token.PlusEq: ast.AssignAdd,
	token.MinEq:  ast.AssignSub,
	token.MultEq: ast.AssignMul,
	token.DivEq:  ast.AssignDiv,
}

// Binary operators share a single precedence level and associate to the
// left: `1 + 2 * 3` is `(1 + 2) * 3`.
var binaryOps = []token.Kind{
	token.Plus, token.Minus, token.Mult, token.Divide, token.Percent, token.Square,
	token.Eq, token.NotEq, token.Less, token.LessOrEq, token.Greater, token.GreaterOrEq,
	token.AndAnd, token.Or, token.And,
}

var unaryOps = []token.Kind{
	token.Not, token.NotNot, token.Question, token.Decr, token.Increment, token.Minus,
}

func (p *Parser) expr() ast.Expr {
	e := p.binary()
	if op, ok := assignOps[p.peek().Kind]; ok {
		return p.assign(e, op)
	}
	return e
}

// assign parses the right-hand side of an assignment to target.
func (p *Parser) assign(target ast.Expr, op ast.AssignOp) ast.Expr {
	v, ok := target.(*ast.Variable)
	if !ok {
		p.throwErrorAt(target.Pos(), InvalidConstruct, "invalid assignment target")
	}
	p.advance()
	value := p.expr()
	return &ast.Assign{NodeID: p.id(), Target: v, Op: op, Value: value}
}

func (p *Parser) binary() ast.Expr {
	left := p.unary()
	for p.areTokens(binaryOps...) {
		op := p.advance()
		right := p.unary()
		left = &ast.Binary{NodeID: p.id(), Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) unary() ast.Expr {
	if p.areTokens(unaryOps...) {
		op := p.advance()
		operand := p.unary()
		return &ast.Unary{NodeID: p.id(), Op: op, Operand: operand}
	}
	return p.call()
}

func (p *Parser) primary() ast.Expr {
	tok := p.peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return p.variable(tok)
	case token.LBracket:
		p.advance()
		return p.arrayLit(tok)
	case token.LParen:
		if name := p.prev(1); name.Kind == token.Ident {
			p.advance()
			return p.funcCall(p.variable(name))
		}
		p.advance()
		inner := p.expr()
		p.consume(token.RParen)
		return &ast.Grouping{NodeID: p.id(), Inner: inner, Posn: tok.Pos}
	case token.Pipe:
		return p.funcLiteral()
	case token.Await:
		p.advance()
		inner := p.expr()
		return &ast.Await{NodeID: p.id(), Inner: inner, Posn: tok.Pos}
	}
	if tok.Kind.IsLiteral() {
		p.advance()
		value := p.literalValue(tok)
		return &ast.Literal{NodeID: p.id(), Value: value, Tok: tok}
	}
	p.throwError(UnexpectedToken, "expression", p.found())
	return nil
}

func (p *Parser) variable(name token.Token) *ast.Variable {
	return &ast.Variable{NodeID: p.id(), Name: name}
}

// literalValue returns the decoded payload of a literal token.
func (p *Parser) literalValue(tok token.Token) interface{} {
	switch tok.Kind {
	case token.TrueLit:
		return true
	case token.FalseLit:
		return false
	case token.NullLit:
		return nil
	}
	ok := false
	switch tok.Value.(type) {
	case float64:
		ok = tok.Kind == token.NumberLit
	case string:
		ok = tok.Kind == token.StringLit
	case rune:
		ok = tok.Kind == token.CharLit
	}
	if !ok {
		p.throwErrorAt(tok.Pos, MalformedLiteral, tok.Kind.String())
	}
	return tok.Value
}

func (p *Parser) arrayLit(open token.Token) ast.Expr {
	var items []ast.Expr
	for !p.accept(token.RBracket) {
		items = append(items, p.expr())
		if !p.accept(token.Comma) && !p.isToken(token.RBracket) {
			p.throwError(UnexpectedToken, expected(token.Comma, token.RBracket), p.found())
		}
	}
	return &ast.Array{NodeID: p.id(), Items: items, Posn: open.Pos}
}

// funcLiteral parses `|params|: expr;` or `|params| { ... }`. A `_` in
// place of the parameters declares none. The literal that directly
// initialises a let binding takes that binding's first name, visibility
// and declared type.
func (p *Parser) funcLiteral() ast.Expr {
	lit := &ast.FuncLiteral{Posn: p.peek().Pos}
	if decl := p.binding; decl != nil {
		p.binding = nil
		lit.Name = decl.Names[0]
		lit.Public = decl.Public
		lit.ReturnType = decl.Type
	}
	p.consume(token.Pipe)
	if p.accept(token.Underscore) {
		p.consume(token.Pipe)
	} else {
		lit.Params = p.params(token.Pipe)
	}

	if p.accept(token.Colon) {
		lit.Body.Expr = p.expr()
		p.consume(token.Semi)
	} else {
		lit.Body.Stmts = p.braced()
	}
	lit.NodeID = p.id()
	return lit
}
