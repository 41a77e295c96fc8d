// Package sexpr prints statement trees as S-expressions, one list per
// statement, for inspection and golden tests.
package sexpr

import (
	"fmt"
	"strings"
)

// ValueType enumerates the S-expression value categories.
type ValueType int

const (
	TypeSymbol ValueType = iota
	TypeString
	TypeNumber
	TypeList
)

// Value is an atom or a list.
type Value struct {
	Type  ValueType
	Atom  string
	Num   float64
	Items []Value
}

// Symbol returns a bare symbol.
func Symbol(s string) Value { return Value{Type: TypeSymbol, Atom: s} }

// String returns a quoted string atom.
func String(s string) Value { return Value{Type: TypeString, Atom: s} }

// Number returns a numeric atom.
func Number(f float64) Value { return Value{Type: TypeNumber, Num: f} }

// List returns a list of vals.
func List(vals ...Value) Value { return Value{Type: TypeList, Items: vals} }

// Head returns the symbol at the front of a list, or "" for atoms and
// empty lists.
func (v Value) Head() string {
	if v.Type != TypeList || len(v.Items) == 0 || v.Items[0].Type != TypeSymbol {
		return ""
	}
	return v.Items[0].Atom
}

func (v Value) String() string {
	switch v.Type {
	case TypeSymbol:
		return v.Atom
	case TypeString:
		return fmt.Sprintf("%q", v.Atom)
	case TypeNumber:
		return fmt.Sprintf("%g", v.Num)
	case TypeList:
		var sb strings.Builder
		sb.WriteString("(")
		for i, item := range v.Items {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(item.String())
		}
		sb.WriteString(")")
		return sb.String()
	default:
		return "<unknown>"
	}
}
