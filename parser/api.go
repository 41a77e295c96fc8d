package parser

import (
	"io"

	"github.com/absurd-lang/absurd/ast"
	"github.com/absurd-lang/absurd/lexer"
	"github.com/absurd-lang/absurd/token"
)

// ParseTokens parses a token sequence into statements.
func ParseTokens(tokens []token.Token) ([]ast.Stmt, error) {
	return NewParser(tokens).Parse()
}

// ParseString tokenizes and parses source text. Lexical errors are returned
// as *lexer.Error, syntax errors as *Error.
func ParseString(src string) ([]ast.Stmt, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseReader consumes source from an io.Reader and parses it.
func ParseReader(r io.Reader) ([]ast.Stmt, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(data))
}
