package parser

import (
	"github.com/absurd-lang/absurd/ast"
	"github.com/absurd-lang/absurd/token"
)

// call parses an operand and its suffixes:
//
//	a.b(1)   method call
//	a.b      struct field
//	A::B     enum variant
//	f(x, y)  function call
//	a[i]     array index
//	f x      juxtaposition, applies f to the call chain starting at x
func (p *Parser) call() ast.Expr {
	if name := p.prev(1); name.Kind == token.Ident && p.isToken(token.LBracket) {
		p.advance()
		return p.indexCall(p.variable(name), name)
	}

	expr := p.method()
	for {
		switch {
		case p.accept(token.Dot):
			if _, ok := expr.(*ast.Method); ok && p.nameCallAhead() {
				expr = p.methodBody(expr)
			} else {
				expr = p.memberCall(expr, ast.CallStructField)
			}
		case p.accept(token.DblColon):
			expr = p.memberCall(expr, ast.CallEnumVariant)
		case p.accept(token.LParen):
			expr = p.funcCall(expr)
		case p.accept(token.LBracket):
			expr = p.indexCall(expr, p.prev(2))
		case p.isToken(token.Ident):
			expr = p.juxtapose(expr)
		default:
			return expr
		}
	}
}

// method parses a primary expression followed by at most one `.name(...)`.
// Any other dot is left for call.
func (p *Parser) method() ast.Expr {
	expr := p.primary()
	if p.accept(token.Dot) {
		if p.nameCallAhead() {
			return p.methodBody(expr)
		}
		p.retreat()
	}
	return expr
}

// nameCallAhead reports whether the cursor sits on `name (`.
func (p *Parser) nameCallAhead() bool {
	if !p.isToken(token.Ident) {
		return false
	}
	p.advance()
	ok := p.isToken(token.LParen)
	p.retreat()
	return ok
}

func (p *Parser) methodBody(recv ast.Expr) ast.Expr {
	name := p.consume(token.Ident)
	p.consume(token.LParen)
	var args []ast.Expr
	for !p.accept(token.RParen) {
		args = append(args, p.expr())
		p.accept(token.Comma)
	}
	return &ast.Method{NodeID: p.id(), Receiver: recv, Name: name, Args: args}
}

func (p *Parser) memberCall(recv ast.Expr, kind ast.CallKind) ast.Expr {
	name := p.consume(token.Ident)
	return &ast.Call{NodeID: p.id(), Callee: recv, Name: name, Kind: kind}
}

// funcCall parses the arguments of a call whose opening parenthesis has
// just been consumed.
func (p *Parser) funcCall(callee ast.Expr) ast.Expr {
	name := p.prev(2)
	var args []ast.Expr
	for !p.isToken(token.RParen) {
		args = append(args, p.expr())
		if p.isToken(token.RParen) {
			break
		}
		if !p.accept(token.Comma) {
			p.throwError(UnexpectedToken, expected(token.Comma, token.RParen), p.found())
		}
	}
	p.consume(token.RParen)
	return &ast.Call{NodeID: p.id(), Callee: callee, Name: name, Args: args, Kind: ast.CallFunction}
}

// indexCall parses `expr]` after an opening bracket.
func (p *Parser) indexCall(callee ast.Expr, name token.Token) ast.Expr {
	index := p.expr()
	p.consume(token.RBracket)
	return &ast.Call{NodeID: p.id(), Callee: callee, Name: name, Args: []ast.Expr{index}, Kind: ast.CallArrayIndex}
}

func (p *Parser) juxtapose(callee ast.Expr) ast.Expr {
	name := p.prev(1)
	arg := p.call()
	return &ast.Call{NodeID: p.id(), Callee: callee, Name: name, Args: []ast.Expr{arg}, Kind: ast.CallFunction}
}
