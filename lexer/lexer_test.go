package lexer

import (
	"strings"
	"testing"

	"github.com/absurd-lang/absurd/token"
)

func lexAllTokens(t *testing.T, src string) []token.Token {
	t.Helper()
	tokens, err := Tokenize(src)
	if err != nil {
		t.Fatalf("unexpected lexer error: %v", err)
	}
	if last := tokens[len(tokens)-1]; last.Kind != token.EOF {
		t.Fatalf("expected trailing EOF, got %v", last)
	}
	return tokens
}

func mustNextToken(t *testing.T, lx *Lexer) token.Token {
	t.Helper()
	tok, err := lx.Next()
	if err != nil {
		t.Fatalf("unexpected lexer error: %v", err)
	}
	return tok
}

func TestLexerIdentifiersAndKeywords(t *testing.T) {
	src := "let mut pub func async await elif match enum use as from mod loop break foo _bar baz123 _ Color"
	tokens := lexAllTokens(t, src)
	tokens = tokens[:len(tokens)-1] // drop EOF

	want := []struct {
		kind   token.Kind
		lexeme string
	}{
		{token.Let, "let"},
		{token.Mut, "mut"},
		{token.Pub, "pub"},
		{token.Func, "func"},
		{token.Async, "async"},
		{token.Await, "await"},
		{token.ElseIf, "elif"},
		{token.Match, "match"},
		{token.Enum, "enum"},
		{token.Use, "use"},
		{token.As, "as"},
		{token.From, "from"},
		{token.Mod, "mod"},
		{token.Loop, "loop"},
		{token.Break, "break"},
		{token.Ident, "foo"},
		{token.Ident, "_bar"},
		{token.Ident, "baz123"},
		{token.Underscore, "_"},
		{token.Ident, "Color"},
	}

	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, tt := range want {
		tok := tokens[i]
		if tok.Kind != tt.kind {
			t.Errorf("token %d: expected kind %v, got %v", i, tt.kind, tok.Kind)
		}
		if tok.Lexeme != tt.lexeme {
			t.Errorf("token %d: expected lexeme %q, got %q", i, tt.lexeme, tok.Lexeme)
		}
	}
}

func TestLexerBuiltinTypesAndLiterals(t *testing.T) {
	tokens := lexAllTokens(t, "number string char bool void array any true false null")
	want := []token.Kind{
		token.NumberIdent,
		token.StringIdent,
		token.CharIdent,
		token.BoolIdent,
		token.VoidIdent,
		token.ArrayIdent,
		token.AnyIdent,
		token.TrueLit,
		token.FalseLit,
		token.NullLit,
		token.EOF,
	}
	for i, kind := range want {
		if tokens[i].Kind != kind {
			t.Errorf("token %d: expected %v, got %v", i, kind, tokens[i].Kind)
		}
	}
}

func TestLexerNumberLiterals(t *testing.T) {
	tokens := lexAllTokens(t, "0 123 3.14 6.022e23 1e-9 42e+7")
	tokens = tokens[:len(tokens)-1]

	want := []struct {
		lexeme string
		value  float64
	}{
		{"0", 0},
		{"123", 123},
		{"3.14", 3.14},
		{"6.022e23", 6.022e23},
		{"1e-9", 1e-9},
		{"42e+7", 42e+7},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, tt := range want {
		tok := tokens[i]
		if tok.Kind != token.NumberLit {
			t.Errorf("token %d: expected number literal, got %v", i, tok.Kind)
		}
		if tok.Lexeme != tt.lexeme {
			t.Errorf("token %d: expected lexeme %q, got %q", i, tt.lexeme, tok.Lexeme)
		}
		if v, ok := tok.Value.(float64); !ok || v != tt.value {
			t.Errorf("token %d: expected value %v, got %#v", i, tt.value, tok.Value)
		}
	}
}

func TestLexerNumberDoesNotSwallowDots(t *testing.T) {
	tokens := lexAllTokens(t, "1..5 xs.len")
	want := []token.Kind{token.NumberLit, token.DotDot, token.NumberLit, token.Ident, token.Dot, token.Ident, token.EOF}
	for i, kind := range want {
		if tokens[i].Kind != kind {
			t.Fatalf("token %d: expected %v, got %v", i, kind, tokens[i].Kind)
		}
	}
}

func TestLexerNegativeNumbers(t *testing.T) {
	cases := []struct {
		src  string
		want []token.Kind
	}{
		{"loop -5", []token.Kind{token.Loop, token.NumberLit}},
		{"x = -2", []token.Kind{token.Ident, token.Assign, token.NumberLit}},
		{"a -2", []token.Kind{token.Ident, token.Minus, token.NumberLit}},
		{"f(1)-2", []token.Kind{token.Ident, token.LParen, token.NumberLit, token.RParen, token.Minus, token.NumberLit}},
		{"-x", []token.Kind{token.Minus, token.Ident}},
	}
	for _, tc := range cases {
		tokens := lexAllTokens(t, tc.src)
		tokens = tokens[:len(tokens)-1]
		if len(tokens) != len(tc.want) {
			t.Fatalf("%q: expected %d tokens, got %d", tc.src, len(tc.want), len(tokens))
		}
		for i, kind := range tc.want {
			if tokens[i].Kind != kind {
				t.Errorf("%q token %d: expected %v, got %v", tc.src, i, kind, tokens[i].Kind)
			}
		}
	}

	tokens := lexAllTokens(t, "loop -5")
	if v := tokens[1].Value.(float64); v != -5 {
		t.Fatalf("expected folded value -5, got %v", v)
	}
}

func TestLexerNumberErrors(t *testing.T) {
	lx := New("1e")
	if _, err := lx.Next(); err == nil || !strings.Contains(err.Error(), "malformed exponent") {
		t.Fatalf("expected malformed exponent error, got %v", err)
	}
}

func TestLexerStringLiterals(t *testing.T) {
	src := "\"hello\\nworld\" \"tab\\tquote\\\" backslash\\\\\""
	tokens := lexAllTokens(t, src)
	tokens = tokens[:len(tokens)-1]

	want := []string{
		"hello\nworld",
		"tab\tquote\" backslash\\",
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, expected := range want {
		tok := tokens[i]
		if tok.Kind != token.StringLit {
			t.Errorf("token %d: expected string literal, got %v", i, tok.Kind)
		}
		value, ok := tok.Value.(string)
		if !ok {
			t.Fatalf("token %d: expected string value type, got %T", i, tok.Value)
		}
		if value != expected {
			t.Errorf("token %d: expected value %q, got %q", i, expected, value)
		}
	}
}

func TestLexerMultiLineString(t *testing.T) {
	tokens := lexAllTokens(t, "\"line1\nline2\" x")
	if tokens[0].Kind != token.StringLit || tokens[0].Value != "line1\nline2" {
		t.Fatalf("expected multi-line string, got %#v", tokens[0])
	}
	if tokens[1].Pos.Line != 2 || tokens[1].Pos.Column != 8 {
		t.Fatalf("expected x at 2:8, got %v", tokens[1].Pos)
	}

	_, err := Tokenize("\"line1\nline2")
	if err == nil || !IsIncomplete(err) {
		t.Fatalf("expected incomplete error for open multi-line string, got %v", err)
	}
}

func TestLexerNonASCIIDigits(t *testing.T) {
	for _, src := range []string{"\u0663", "-\u0663"} {
		_, err := Tokenize(src)
		if err == nil || !strings.Contains(err.Error(), "unexpected character") {
			t.Fatalf("%q: expected unexpected character error, got %v", src, err)
		}
	}
	tokens := lexAllTokens(t, "x\u0663")
	if tokens[0].Kind != token.Ident || tokens[0].Lexeme != "x\u0663" {
		t.Fatalf("expected identifier with digit part, got %#v", tokens[0])
	}
}

func TestLexerCharLiterals(t *testing.T) {
	tokens := lexAllTokens(t, `'a' '\n' 'é'`)
	want := []rune{'a', '\n', 'é'}
	for i, r := range want {
		tok := tokens[i]
		if tok.Kind != token.CharLit {
			t.Fatalf("token %d: expected char literal, got %v", i, tok.Kind)
		}
		if v, ok := tok.Value.(rune); !ok || v != r {
			t.Errorf("token %d: expected %q, got %#v", i, r, tok.Value)
		}
	}
}

func TestLexerLiteralErrors(t *testing.T) {
	cases := []struct {
		name       string
		src        string
		wantErr    string
		incomplete bool
	}{
		{"unterminated", "\"unterminated", "unterminated string literal", true},
		{"unterminated escape", "\"unterminated escape " + string('\\'), "unterminated escape sequence", true},
		{"empty char", "''", "empty char literal", false},
		{"long char", "'ab'", "more than one character", false},
		{"unterminated char", "'a", "unterminated char literal", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lx := New(tc.src)
			_, err := lx.Next()
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
			if IsIncomplete(err) != tc.incomplete {
				t.Fatalf("expected incomplete=%v for %v", tc.incomplete, err)
			}
		})
	}
}

func TestLexerSkipWhitespaceAndComments(t *testing.T) {
	src := " \t\n// comment\n/* block\ncomment */\nfoo"
	lx := New(src)

	tok := mustNextToken(t, lx)
	if tok.Kind != token.Ident {
		t.Fatalf("expected identifier token, got %v", tok.Kind)
	}
	if tok.Lexeme != "foo" {
		t.Fatalf("expected lexeme foo, got %q", tok.Lexeme)
	}
	if tok.Pos.Line != 5 || tok.Pos.Column != 1 || tok.Pos.End != 4 {
		t.Fatalf("expected position 5:1-4, got %+v", tok.Pos)
	}
}

func TestLexerBlockCommentUnterminated(t *testing.T) {
	lx := New("/* unterminated")
	_, err := lx.Next()
	if err == nil || !strings.Contains(err.Error(), "unterminated block comment") {
		t.Fatalf("expected unterminated block comment error, got %v", err)
	}
	if !IsIncomplete(err) {
		t.Fatalf("expected incomplete error, got %v", err)
	}
}

func TestLexerOperatorAndPunctuationTokens(t *testing.T) {
	src := "! !! ~ % & && * ** ( ) - -- -> => + ++ = == != += -= *= /= { } [ ] ; : :: < <= > >= , . .. / \\ \\{ \\} ? | ||"
	lx := New(src)

	want := []token.Kind{
		token.Not, token.NotNot, token.Tilde, token.Percent, token.And, token.AndAnd,
		token.Mult, token.Square, token.LParen, token.RParen, token.Minus, token.Decr,
		token.Arrow, token.ArrowBig, token.Plus, token.Increment, token.Assign, token.Eq,
		token.NotEq, token.PlusEq, token.MinEq, token.MultEq, token.DivEq, token.LBrace,
		token.RBrace, token.LBracket, token.RBracket, token.Semi, token.Colon, token.DblColon,
		token.Less, token.LessOrEq, token.Greater, token.GreaterOrEq, token.Comma, token.Dot,
		token.DotDot, token.Divide, token.Escape, token.StartParse, token.EndParse,
		token.Question, token.Pipe, token.Or,
	}

	for i, kind := range want {
		tok := mustNextToken(t, lx)
		if tok.Kind != kind {
			t.Fatalf("token %d: expected %v, got %v", i, kind, tok.Kind)
		}
		if tok.Lexeme != kind.String() {
			t.Fatalf("token %d: expected lexeme %q, got %q", i, kind.String(), tok.Lexeme)
		}
	}

	tok := mustNextToken(t, lx)
	if tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
	if again := mustNextToken(t, lx); again.Kind != token.EOF {
		t.Fatalf("expected EOF to repeat, got %v", again.Kind)
	}
}

func TestLexerUnexpectedCharacter(t *testing.T) {
	lx := New("@")
	_, err := lx.Next()
	if err == nil {
		t.Fatalf("expected error for unexpected character")
	}
	if !strings.Contains(err.Error(), "unexpected character '@'") {
		t.Fatalf("unexpected error message: %v", err)
	}
	if !strings.HasPrefix(err.Error(), "1:1") {
		t.Fatalf("expected position prefix, got %v", err)
	}
}

func TestLexerInvalidUTF8(t *testing.T) {
	lx := New(string([]byte{0xff}))
	if _, err := lx.Next(); err == nil || !strings.Contains(err.Error(), "invalid UTF-8 encoding") {
		t.Fatalf("expected invalid UTF-8 error, got %v", err)
	}
}
