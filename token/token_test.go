package token

import "testing"

func TestKindDisplayStrings(t *testing.T) {
	cases := map[Kind]string{
		EOF:         "end of file",
		Ident:       "identifier",
		Semi:        ";",
		DblColon:    "::",
		ElseIf:      "elif keyword",
		Func:        "function keyword",
		NullIdent:   "null",
		NullLit:     "null literal",
		StartParse:  "\\{",
		GreaterOrEq: ">=",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
	if got := Kind(-1).String(); got != "unknown" {
		t.Errorf("expected unknown for out-of-range kind, got %q", got)
	}
}

func TestEveryKindHasDisplayString(t *testing.T) {
	for k := EOF; k < kindCount; k++ {
		if k.String() == "" {
			t.Errorf("kind %d has no display string", int(k))
		}
	}
}

func TestKeywordLookup(t *testing.T) {
	if k, ok := Keyword("elif"); !ok || k != ElseIf {
		t.Fatalf("expected elif keyword, got %v %v", k, ok)
	}
	if k, ok := Keyword("null"); !ok || k != NullLit {
		t.Fatalf("expected null to lex as literal, got %v", k)
	}
	if _, ok := Keyword("Null"); ok {
		t.Fatalf("keywords are case sensitive")
	}
}

func TestKindClasses(t *testing.T) {
	for _, k := range []Kind{NumberIdent, StringIdent, CharIdent, BoolIdent, NullIdent, VoidIdent, ArrayIdent, AnyIdent} {
		if !k.IsBuiltinType() {
			t.Errorf("%s should be a builtin type", k)
		}
	}
	if Ident.IsBuiltinType() || Or.IsBuiltinType() {
		t.Errorf("identifier and operators are not builtin types")
	}
	if !CharLit.IsLiteral() || ArrayLit.IsLiteral() {
		t.Errorf("unexpected literal classification")
	}
}
