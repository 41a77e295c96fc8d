package parser

import (
	"github.com/absurd-lang/absurd/ast"
	"github.com/absurd-lang/absurd/token"
)

var builtinTypes = []token.Kind{
	token.NumberIdent, token.StringIdent, token.CharIdent, token.BoolIdent,
	token.NullIdent, token.VoidIdent, token.ArrayIdent, token.AnyIdent,
}

// parseType parses a type annotation:
//
//	number             builtin
//	Point              user-defined
//	"on", 3, null      literal
//	<T>, <(d...) T>    array
//	|P, ...| R         function
//
// Any other token is returned as is, unconsumed and without a descriptor.
func (p *Parser) parseType() ast.TypeToken {
	tok := p.peek()
	switch {
	case tok.Kind == token.Less:
		return p.arrayType()
	case tok.Kind == token.Pipe:
		return p.funcType()
	case tok.Kind == token.Ident:
		p.advance()
		return ast.TypeToken{Tok: tok, Type: &ast.NamedType{Name: tok}}
	case tok.Kind.IsBuiltinType():
		tok = p.consumeSome(builtinTypes...)
		return ast.TypeToken{Tok: tok, Type: &ast.NamedType{Name: tok, Builtin: true}}
	case tok.Kind.IsLiteral() || tok.Kind == token.ArrayLit:
		p.advance()
		return ast.TypeToken{Tok: tok, Type: &ast.LiteralType{Kind: tok.Kind, Value: tok.Value}}
	}
	return ast.TypeToken{Tok: tok}
}

func (p *Parser) arrayType() ast.TypeToken {
	open := p.consume(token.Less)
	t := &ast.ArrayType{}
	if p.accept(token.LParen) {
		t.Dims = []ast.TypeDescriptor{}
		for !p.accept(token.RParen) {
			t.Dims = append(t.Dims, p.parseType().Type)
			if !p.accept(token.Comma) && !p.isToken(token.RParen) {
				p.throwError(UnexpectedToken, expected(token.Comma, token.RParen), p.found())
			}
		}
	}
	t.Elem = p.parseType().Type
	p.consume(token.Greater)
	return ast.TypeToken{Tok: p.typeTok(token.ArrayIdent, t, open.Pos), Type: t}
}

func (p *Parser) funcType() ast.TypeToken {
	open := p.consume(token.Pipe)
	t := &ast.FuncType{}
	for !p.accept(token.Pipe) {
		t.Params = append(t.Params, p.parseType().Type)
		if !p.accept(token.Comma) && !p.isToken(token.Pipe) {
			p.throwError(UnexpectedToken, expected(token.Comma, token.Pipe), p.found())
		}
	}
	t.Return = p.parseType().Type
	return ast.TypeToken{Tok: p.typeTok(token.FuncIdent, t, open.Pos), Type: t}
}

// typeTok synthesises the token standing for a composite type.
func (p *Parser) typeTok(kind token.Kind, t ast.TypeDescriptor, at token.Position) token.Token {
	end := p.prev(1).Pos
	return token.Token{
		Kind:   kind,
		Lexeme: t.String(),
		Pos:    token.Position{Line: at.Line, Column: at.Column, End: end.End},
	}
}
