// Package token defines the lexical vocabulary shared by the lexer, the
// parser and the diagnostic renderer.
package token

import "fmt"

// Kind enumerates lexical categories recognised by the Absurd lexer.
type Kind int

const (
	EOF Kind = iota
	Illegal

	Ident
	NumberLit
	StringLit
	CharLit
	TrueLit
	FalseLit
	NullLit
	ArrayLit
	FuncIdent // synthesised for function types

	// Keywords
	Let
	If
	Else
	ElseIf
	Return
	While
	Loop
	Break
	Match
	Mod
	Use
	As
	From
	Enum
	Async
	Await
	Pub
	Mut
	Func

	// Builtin type names
	NumberIdent
	StringIdent
	CharIdent
	BoolIdent
	NullIdent
	VoidIdent
	ArrayIdent
	AnyIdent

	// Operators and punctuation
	Not         // !
	NotNot      // !!
	Tilde       // ~
	Percent     // %
	And         // &
	AndAnd      // &&
	Mult        // *
	Square      // **
	LParen      // (
	RParen      // )
	Minus       // -
	Decr        // --
	Arrow       // ->
	ArrowBig    // =>
	Underscore  // _
	Plus        // +
	Increment   // ++
	Assign      // =
	Eq          // ==
	NotEq       // !=
	PlusEq      // +=
	MinEq       // -=
	MultEq      // *=
	DivEq       // /=
	LBrace      // {
	RBrace      // }
	LBracket    // [
	RBracket    // ]
	Semi        // ;
	Colon       // :
	DblColon    // ::
	Less        // <
	LessOrEq    // <=
	Greater     // >
	GreaterOrEq // >=
	Comma       // ,
	Dot         // .
	DotDot      // ..
	Divide      // /
	Escape      // \
	StartParse  // \{
	EndParse    // \}
	Question    // ?
	Pipe        // |
	Or          // ||

	kindCount
)

var kindNames = [...]string{
	EOF:     "end of file",
	Illegal: "illegal",

	Ident:     "identifier",
	NumberLit: "number literal",
	StringLit: "string literal",
	CharLit:   "char literal",
	TrueLit:   "true literal",
	FalseLit:  "false literal",
	NullLit:   "null literal",
	ArrayLit:  "array literal",
	FuncIdent: "function type",

	Let:    "let keyword",
	If:     "if keyword",
	Else:   "else keyword",
	ElseIf: "elif keyword",
	Return: "return keyword",
	While:  "while keyword",
	Loop:   "loop keyword",
	Break:  "break keyword",
	Match:  "match keyword",
	Mod:    "mod keyword",
	Use:    "use keyword",
	As:     "as keyword",
	From:   "from keyword",
	Enum:   "enum keyword",
	Async:  "async keyword",
	Await:  "await keyword",
	Pub:    "pub keyword",
	Mut:    "mut keyword",
	Func:   "function keyword",

	NumberIdent: "number",
	StringIdent: "string",
	CharIdent:   "char",
	BoolIdent:   "bool",
	NullIdent:   "null",
	VoidIdent:   "void",
	ArrayIdent:  "array",
	AnyIdent:    "any",

	Not:         "!",
	NotNot:      "!!",
	Tilde:       "~",
	Percent:     "%",
	And:         "&",
	AndAnd:      "&&",
	Mult:        "*",
	Square:      "**",
	LParen:      "(",
	RParen:      ")",
	Minus:       "-",
	Decr:        "--",
	Arrow:       "->",
	ArrowBig:    "=>",
	Underscore:  "_",
	Plus:        "+",
	Increment:   "++",
	Assign:      "=",
	Eq:          "==",
	NotEq:       "!=",
	PlusEq:      "+=",
	MinEq:       "-=",
	MultEq:      "*=",
	DivEq:       "/=",
	LBrace:      "{",
	RBrace:      "}",
	LBracket:    "[",
	RBracket:    "]",
	Semi:        ";",
	Colon:       ":",
	DblColon:    "::",
	Less:        "<",
	LessOrEq:    "<=",
	Greater:     ">",
	GreaterOrEq: ">=",
	Comma:       ",",
	Dot:         ".",
	DotDot:      "..",
	Divide:      "/",
	Escape:      "\\",
	StartParse:  "\\{",
	EndParse:    "\\}",
	Question:    "?",
	Pipe:        "|",
	Or:          "||",
}

// String returns the display form of the kind as used in diagnostics.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

var keywords = map[string]Kind{
	"let":    Let,
	"if":     If,
	"else":   Else,
	"elif":   ElseIf,
	"return": Return,
	"while":  While,
	"loop":   Loop,
	"break":  Break,
	"match":  Match,
	"mod":    Mod,
	"use":    Use,
	"as":     As,
	"from":   From,
	"enum":   Enum,
	"async":  Async,
	"await":  Await,
	"pub":    Pub,
	"mut":    Mut,
	"func":   Func,
	"true":   TrueLit,
	"false":  FalseLit,
	"null":   NullLit,
	"number": NumberIdent,
	"string": StringIdent,
	"char":   CharIdent,
	"bool":   BoolIdent,
	"void":   VoidIdent,
	"array":  ArrayIdent,
	"any":    AnyIdent,
}

// Keyword reports the reserved kind for lexeme, if any.
func Keyword(lexeme string) (Kind, bool) {
	k, ok := keywords[lexeme]
	return k, ok
}

// IsLiteral reports whether k carries a value in expression position.
func (k Kind) IsLiteral() bool {
	switch k {
	case NumberLit, StringLit, CharLit, TrueLit, FalseLit, NullLit:
		return true
	}
	return false
}

// IsBuiltinType reports whether k names one of the builtin types.
func (k Kind) IsBuiltinType() bool {
	return k >= NumberIdent && k <= AnyIdent
}

// Position locates a token in the source.
type Position struct {
	Line   int // one-based line number, zero for synthetic tokens
	Column int // one-based column of the first rune
	End    int // one-based column just past the last rune
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit produced by the lexer.
type Token struct {
	Kind   Kind
	Lexeme string
	Value  interface{} // decoded payload: float64, string or rune
	Pos    Position
}

func (t Token) String() string {
	if t.Lexeme == "" {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
}
