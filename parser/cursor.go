package parser

import (
	"strings"

	"github.com/absurd-lang/absurd/ast"
	"github.com/absurd-lang/absurd/token"
)

// Parser turns a token sequence into statements. A Parser owns its cursor
// and node-id counter and is not safe for concurrent use.
type Parser struct {
	tokens []token.Token
	crnt   int
	nextID ast.NodeID

	// binding is the let declaration whose initializer is a function
	// literal still to be parsed.
	binding *ast.VarDecl
}

// NewParser returns a parser over tokens. A missing trailing EOF token is
// added.
func NewParser(tokens []token.Token) *Parser {
	n := len(tokens)
	if n == 0 || tokens[n-1].Kind != token.EOF {
		eof := token.Token{Kind: token.EOF}
		if n > 0 {
			last := tokens[n-1].Pos
			eof.Pos = token.Position{Line: last.Line, Column: last.End, End: last.End + 1}
		}
		tokens = append(tokens[:n:n], eof)
	}
	return &Parser{tokens: tokens}
}

// NodeCount returns the number of expression identities issued so far.
func (p *Parser) NodeCount() int {
	return int(p.nextID)
}

// peek returns the current token.
func (p *Parser) peek() token.Token {
	return p.tokens[p.crnt]
}

// advance moves past the current token unless it is EOF and returns the
// token just behind the cursor.
func (p *Parser) advance() token.Token {
	if !p.check(token.EOF) {
		p.crnt++
	}
	return p.prev(1)
}

// retreat moves back one token, stopping at the start.
func (p *Parser) retreat() token.Token {
	if p.crnt > 0 {
		p.crnt--
	}
	return p.prev(1)
}

// prev returns the token n positions behind the cursor, or a line-zero EOF
// sentinel when there is no such token.
func (p *Parser) prev(n int) token.Token {
	if n > p.crnt {
		return token.Token{Kind: token.EOF, Lexeme: "\x00"}
	}
	return p.tokens[p.crnt-n]
}

func (p *Parser) check(k token.Kind) bool {
	return p.peek().Kind == k
}

// isToken reports whether the current token is k. It is always false at EOF.
func (p *Parser) isToken(k token.Kind) bool {
	return !p.check(token.EOF) && p.check(k)
}

func (p *Parser) areTokens(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.isToken(k) {
			return true
		}
	}
	return false
}

// accept advances past the current token if it is k.
func (p *Parser) accept(k token.Kind) bool {
	if p.isToken(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(k token.Kind) token.Token {
	if p.accept(k) {
		return p.prev(1)
	}
	p.throwError(UnexpectedToken, k.String(), p.found())
	return token.Token{}
}

// consumeSome consumes the first of kinds that matches.
func (p *Parser) consumeSome(kinds ...token.Kind) token.Token {
	for _, k := range kinds {
		if p.accept(k) {
			return p.prev(1)
		}
	}
	p.throwError(UnexpectedToken, expected(kinds...), p.found())
	return token.Token{}
}

// expected joins the display strings of kinds for an UnexpectedToken
// diagnostic.
func expected(kinds ...token.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, " or ")
}

func (p *Parser) id() ast.NodeID {
	id := p.nextID
	p.nextID++
	return id
}

// found describes the current token for diagnostics.
func (p *Parser) found() string {
	tok := p.peek()
	if tok.Kind == token.EOF || tok.Lexeme == "" {
		return tok.Kind.String()
	}
	return tok.Lexeme
}

// throwError aborts the parse at the current token.
func (p *Parser) throwError(code Code, args ...string) {
	p.throwErrorAt(p.peek().Pos, code, args...)
}

func (p *Parser) throwErrorAt(pos token.Position, code Code, args ...string) {
	panic(bailout{err: &Error{
		Code:       code,
		Pos:        pos,
		Args:       args,
		Incomplete: p.check(token.EOF),
	}})
}
