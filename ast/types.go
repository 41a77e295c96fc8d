package ast

import (
	"fmt"
	"strings"

	"github.com/absurd-lang/absurd/token"
)

// TypeDescriptor is the decoded shape of a type annotation.
type TypeDescriptor interface {
	String() string
	typeNode()
}

// NamedType refers to a builtin or user-defined type by name.
type NamedType struct {
	Name    token.Token
	Builtin bool
}

func (t *NamedType) String() string {
	if t.Name.Lexeme != "" {
		return t.Name.Lexeme
	}
	return t.Name.Kind.String()
}
func (*NamedType) typeNode() {}

// LiteralType pins a type to the shape of a literal, e.g. `"on"` or `3`.
type LiteralType struct {
	Kind  token.Kind
	Value interface{}
}

func (t *LiteralType) String() string {
	switch v := t.Value.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case rune:
		return fmt.Sprintf("%q", v)
	case float64:
		return fmt.Sprintf("%g", v)
	}
	switch t.Kind {
	case token.TrueLit:
		return "true"
	case token.FalseLit:
		return "false"
	case token.NullLit:
		return "null"
	case token.ArrayLit:
		return "[]"
	}
	return t.Kind.String()
}
func (*LiteralType) typeNode() {}

// ArrayType is `<T>` or `<(d1, d2) T>` with static dimensions.
type ArrayType struct {
	Elem TypeDescriptor
	Dims []TypeDescriptor // nil when no dimension list was given
}

func (t *ArrayType) String() string {
	var sb strings.Builder
	sb.WriteString("<")
	if t.Dims != nil {
		sb.WriteString("(")
		writeTypeList(&sb, t.Dims)
		sb.WriteString(") ")
	}
	sb.WriteString(typeString(t.Elem))
	sb.WriteString(">")
	return sb.String()
}
func (*ArrayType) typeNode() {}

// FuncType is `|P1, P2| R`.
type FuncType struct {
	Params []TypeDescriptor
	Return TypeDescriptor
}

func (t *FuncType) String() string {
	var sb strings.Builder
	sb.WriteString("|")
	writeTypeList(&sb, t.Params)
	sb.WriteString("| ")
	sb.WriteString(typeString(t.Return))
	return sb.String()
}
func (*FuncType) typeNode() {}

// TypeToken joins the token found at a type position with its decoded
// descriptor. Type is nil when the token was not a type and was handed back
// unconsumed.
type TypeToken struct {
	Tok  token.Token
	Type TypeDescriptor
}

func (t TypeToken) String() string {
	if t.Type == nil {
		return t.Tok.Kind.String()
	}
	return t.Type.String()
}

// IsNullType reports whether t denotes the null type, either through the
// builtin name or the null literal.
func IsNullType(t TypeDescriptor) bool {
	switch tt := t.(type) {
	case *NamedType:
		return tt.Builtin && (tt.Name.Kind == token.NullIdent || tt.Name.Kind == token.NullLit)
	case *LiteralType:
		return tt.Kind == token.NullLit
	}
	return false
}

func typeString(t TypeDescriptor) string {
	if t == nil {
		return "?"
	}
	return t.String()
}

func writeTypeList(sb *strings.Builder, ts []TypeDescriptor) {
	for i, t := range ts {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(typeString(t))
	}
}
