// Package lexer turns Absurd source text into the token sequence consumed by
// the parser. Literal payloads are decoded here so the parser never looks at
// raw lexemes of numbers, strings or chars.
package lexer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/absurd-lang/absurd/token"
)

// Tokenize scans the whole source and returns its tokens, terminated by
// exactly one EOF token.
func Tokenize(src string) ([]token.Token, error) {
	lx := New(src)
	var tokens []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// Lexer produces tokens one at a time from an in-memory source.
type Lexer struct {
	src    string
	pos    int
	line   int
	column int

	hasLast  bool
	lastKind token.Kind
}

// New returns a lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{
		src:    src,
		line:   1,
		column: 1,
	}
}

type runeState struct {
	pos    int
	line   int
	column int
}

func (lx *Lexer) mark() runeState {
	return runeState{
		pos:    lx.pos,
		line:   lx.line,
		column: lx.column,
	}
}

func (lx *Lexer) restore(state runeState) {
	lx.pos = state.pos
	lx.line = state.line
	lx.column = state.column
}

func (lx *Lexer) readRune() (rune, runeState, error) {
	if lx.pos >= len(lx.src) {
		return 0, lx.mark(), io.EOF
	}
	state := lx.mark()
	r, w := utf8.DecodeRuneInString(lx.src[lx.pos:])
	if r == utf8.RuneError && w == 1 {
		return 0, state, newError(lx.position(state), fmt.Errorf("invalid UTF-8 encoding at byte %d", lx.pos))
	}
	lx.pos += w
	if r == '\n' {
		lx.line++
		lx.column = 1
	} else {
		lx.column++
	}
	return r, state, nil
}

func (lx *Lexer) peekRune() rune {
	state := lx.mark()
	r, _, err := lx.readRune()
	lx.restore(state)
	if err != nil {
		return 0
	}
	return r
}

func (lx *Lexer) match(expected rune) bool {
	state := lx.mark()
	r, _, err := lx.readRune()
	if err != nil {
		return false
	}
	if r != expected {
		lx.restore(state)
		return false
	}
	return true
}

func (lx *Lexer) skipWhitespace() error {
	for {
		r, state, err := lx.readRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '/':
			if lx.match('/') {
				lx.skipLine()
				continue
			}
			if lx.match('*') {
				if err := lx.skipBlockComment(state); err != nil {
					return err
				}
				continue
			}
			lx.restore(state)
			return nil
		default:
			lx.restore(state)
			return nil
		}
	}
}

func (lx *Lexer) skipLine() {
	for {
		r, _, err := lx.readRune()
		if err != nil || r == '\n' {
			return
		}
	}
}

func (lx *Lexer) skipBlockComment(start runeState) error {
	for {
		r, _, err := lx.readRune()
		if err == io.EOF {
			return newIncompleteError(lx.position(start), fmt.Errorf("unterminated block comment"))
		}
		if err != nil {
			return err
		}
		if r == '*' && lx.match('/') {
			return nil
		}
	}
}

// Next returns the next token. Once the source is exhausted every call
// returns an EOF token.
func (lx *Lexer) Next() (token.Token, error) {
	if err := lx.skipWhitespace(); err != nil {
		return token.Token{}, err
	}

	start := lx.mark()
	r, _, err := lx.readRune()
	if err == io.EOF {
		return lx.emit(token.Token{Kind: token.EOF, Pos: lx.span(start)}), nil
	}
	if err != nil {
		return token.Token{}, err
	}

	switch {
	case isIdentifierStart(r):
		lexeme := lx.scanIdentifier(r)
		return lx.emit(makeIdentifierToken(lexeme, lx.span(start))), nil
	case isDigit(r):
		return lx.scanNumber(start)
	case r == '-' && isDigit(lx.peekRune()) && !lx.lastEndsOperand():
		return lx.scanNumber(start)
	case r == '"':
		return lx.scanString(start)
	case r == '\'':
		return lx.scanChar(start)
	}

	lx.restore(start)
	for _, op := range operators {
		if strings.HasPrefix(lx.src[lx.pos:], op.text) {
			for range op.text {
				lx.readRune()
			}
			return lx.emit(token.Token{
				Kind:   op.kind,
				Lexeme: op.text,
				Pos:    lx.span(start),
			}), nil
		}
	}
	lx.readRune()
	return token.Token{}, newError(lx.position(start), fmt.Errorf("unexpected character %q", r))
}

func (lx *Lexer) emit(tok token.Token) token.Token {
	lx.hasLast = true
	lx.lastKind = tok.Kind
	return tok
}

// lastEndsOperand reports whether the previous token can end an operand, in
// which case a following '-' is a binary minus rather than a sign.
func (lx *Lexer) lastEndsOperand() bool {
	if !lx.hasLast {
		return false
	}
	switch lx.lastKind {
	case token.Ident,
		token.NumberLit,
		token.StringLit,
		token.CharLit,
		token.TrueLit,
		token.FalseLit,
		token.NullLit,
		token.RParen,
		token.RBracket,
		token.RBrace:
		return true
	}
	return false
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentifierPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// isDigit accepts ASCII digits only; number literals are parsed with
// strconv.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func (lx *Lexer) scanIdentifier(initial rune) string {
	var builder strings.Builder
	builder.WriteRune(initial)
	for {
		r, state, err := lx.readRune()
		if err != nil {
			break
		}
		if !isIdentifierPart(r) {
			lx.restore(state)
			break
		}
		builder.WriteRune(r)
	}
	return builder.String()
}

func (lx *Lexer) scanNumber(start runeState) (token.Token, error) {
	seenDot := false
	seenExponent := false
	for {
		r, state, err := lx.readRune()
		if err != nil {
			break
		}
		if isDigit(r) {
			continue
		}
		if r == '.' && !seenDot && !seenExponent && isDigit(lx.peekRune()) {
			seenDot = true
			continue
		}
		if (r == 'e' || r == 'E') && !seenExponent {
			seenExponent = true
			if !lx.match('+') {
				lx.match('-')
			}
			if !isDigit(lx.peekRune()) {
				return token.Token{}, newError(lx.position(start), fmt.Errorf("malformed exponent in number literal"))
			}
			continue
		}
		lx.restore(state)
		break
	}

	lexeme := lx.src[start.pos:lx.pos]
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return token.Token{}, newError(lx.position(start), fmt.Errorf("invalid number literal %q: %w", lexeme, err))
	}
	return lx.emit(token.Token{
		Kind:   token.NumberLit,
		Lexeme: lexeme,
		Value:  value,
		Pos:    lx.span(start),
	}), nil
}

func (lx *Lexer) scanString(start runeState) (token.Token, error) {
	var builder strings.Builder
	for {
		r, _, err := lx.readRune()
		if err == io.EOF {
			return token.Token{}, newIncompleteError(lx.position(start), fmt.Errorf("unterminated string literal"))
		}
		if err != nil {
			return token.Token{}, err
		}
		if r == '"' {
			break
		}
		if r == '\\' {
			esc, err := lx.scanEscape(start)
			if err != nil {
				return token.Token{}, err
			}
			builder.WriteRune(esc)
			continue
		}
		builder.WriteRune(r)
	}
	return lx.emit(token.Token{
		Kind:   token.StringLit,
		Lexeme: lx.src[start.pos:lx.pos],
		Value:  builder.String(),
		Pos:    lx.span(start),
	}), nil
}

func (lx *Lexer) scanChar(start runeState) (token.Token, error) {
	r, _, err := lx.readRune()
	if err == io.EOF {
		return token.Token{}, newIncompleteError(lx.position(start), fmt.Errorf("unterminated char literal"))
	}
	if err != nil {
		return token.Token{}, err
	}
	switch r {
	case '\'':
		return token.Token{}, newError(lx.position(start), fmt.Errorf("empty char literal"))
	case '\n':
		return token.Token{}, newError(lx.position(start), fmt.Errorf("newline in char literal"))
	case '\\':
		if r, err = lx.scanEscape(start); err != nil {
			return token.Token{}, err
		}
	}
	closing, _, err := lx.readRune()
	if err == io.EOF {
		return token.Token{}, newIncompleteError(lx.position(start), fmt.Errorf("unterminated char literal"))
	}
	if err != nil {
		return token.Token{}, err
	}
	if closing != '\'' {
		return token.Token{}, newError(lx.position(start), fmt.Errorf("char literal holds more than one character"))
	}
	return lx.emit(token.Token{
		Kind:   token.CharLit,
		Lexeme: lx.src[start.pos:lx.pos],
		Value:  r,
		Pos:    lx.span(start),
	}), nil
}

func (lx *Lexer) scanEscape(start runeState) (rune, error) {
	esc, _, err := lx.readRune()
	if err == io.EOF {
		return 0, newIncompleteError(lx.position(start), fmt.Errorf("unterminated escape sequence"))
	}
	if err != nil {
		return 0, err
	}
	switch esc {
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	case '0':
		return 0, nil
	default:
		return esc, nil
	}
}

func makeIdentifierToken(lexeme string, pos token.Position) token.Token {
	kind := token.Ident
	if lexeme == "_" {
		kind = token.Underscore
	} else if kw, ok := token.Keyword(lexeme); ok {
		kind = kw
	}
	return token.Token{
		Kind:   kind,
		Lexeme: lexeme,
		Pos:    pos,
	}
}

func (lx *Lexer) position(state runeState) token.Position {
	return token.Position{
		Line:   state.line,
		Column: state.column,
		End:    state.column + 1,
	}
}

func (lx *Lexer) span(start runeState) token.Position {
	end := lx.column
	if lx.line != start.line || end <= start.column {
		end = start.column + 1
	}
	return token.Position{
		Line:   start.line,
		Column: start.column,
		End:    end,
	}
}
