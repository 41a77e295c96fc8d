package ast

import "github.com/absurd-lang/absurd/token"

// CallKind records which surface form produced a Call. All four share one
// shape so later passes can reinterpret them through name resolution.
type CallKind int

const (
	CallFunction CallKind = iota
	CallArrayIndex
	CallStructField
	CallEnumVariant
)

func (k CallKind) String() string {
	switch k {
	case CallFunction:
		return "function"
	case CallArrayIndex:
		return "index"
	case CallStructField:
		return "field"
	case CallEnumVariant:
		return "variant"
	default:
		return "unknown"
	}
}

// AssignOp enumerates the assignment operators.
type AssignOp int

const (
	AssignSet AssignOp = iota // =
	AssignAdd                 // +=
	AssignSub                 // -=
	AssignMul                 // *=
	AssignDiv                 // /=
)

func (op AssignOp) String() string {
	switch op {
	case AssignSet:
		return "="
	case AssignAdd:
		return "+="
	case AssignSub:
		return "-="
	case AssignMul:
		return "*="
	case AssignDiv:
		return "/="
	default:
		return "?"
	}
}

// Literal is a constant value: float64, string, rune, bool or nil.
type Literal struct {
	NodeID NodeID
	Value  interface{}
	Tok    token.Token
}

func (e *Literal) Pos() token.Position { return e.Tok.Pos }
func (e *Literal) ID() NodeID          { return e.NodeID }
func (*Literal) exprNode()             {}

// Variable refers to a binding by name.
type Variable struct {
	NodeID NodeID
	Name   token.Token
}

func (e *Variable) Pos() token.Position { return e.Name.Pos }
func (e *Variable) ID() NodeID          { return e.NodeID }
func (*Variable) exprNode()             {}

// Assign stores Value into Target.
type Assign struct {
	NodeID NodeID
	Target *Variable
	Op     AssignOp
	Value  Expr
}

func (e *Assign) Pos() token.Position { return e.Target.Pos() }
func (e *Assign) ID() NodeID          { return e.NodeID }
func (*Assign) exprNode()             {}

// Binary applies an infix operator.
type Binary struct {
	NodeID NodeID
	Left   Expr
	Op     token.Token
	Right  Expr
}

func (e *Binary) Pos() token.Position { return e.Op.Pos }
func (e *Binary) ID() NodeID          { return e.NodeID }
func (*Binary) exprNode()             {}

// Unary applies a prefix operator.
type Unary struct {
	NodeID  NodeID
	Op      token.Token
	Operand Expr
}

func (e *Unary) Pos() token.Position { return e.Op.Pos }
func (e *Unary) ID() NodeID          { return e.NodeID }
func (*Unary) exprNode()             {}

// Call covers function calls, array indexing, struct field access and enum
// variant access. Name is the identifier recovered from the tokens around
// the suffix: the token before the opening bracket for function and index
// calls, the member name for field and variant access.
type Call struct {
	NodeID NodeID
	Callee Expr
	Name   token.Token
	Args   []Expr
	Kind   CallKind
}

func (e *Call) Pos() token.Position { return e.Name.Pos }
func (e *Call) ID() NodeID          { return e.NodeID }
func (*Call) exprNode()             {}

// Method invokes Name on a receiver expression.
type Method struct {
	NodeID   NodeID
	Receiver Expr
	Name     token.Token
	Args     []Expr
}

func (e *Method) Pos() token.Position { return e.Name.Pos }
func (e *Method) ID() NodeID          { return e.NodeID }
func (*Method) exprNode()             {}

// FuncLiteral is an anonymous function. When it is the whole initializer
// of a let binding, Name, Public and ReturnType are copied from that
// binding's first name, visibility and declared type; otherwise they are
// zero.
type FuncLiteral struct {
	NodeID     NodeID
	Name       token.Token
	Public     bool
	ReturnType TypeToken
	Params     []Param
	Body       Body
	Posn       token.Position
}

func (e *FuncLiteral) Pos() token.Position { return e.Posn }
func (e *FuncLiteral) ID() NodeID          { return e.NodeID }
func (*FuncLiteral) exprNode()             {}

// Array is a literal list [a, b, ...].
type Array struct {
	NodeID NodeID
	Items  []Expr
	Posn   token.Position
}

func (e *Array) Pos() token.Position { return e.Posn }
func (e *Array) ID() NodeID          { return e.NodeID }
func (*Array) exprNode()             {}

// Grouping is a parenthesised expression.
type Grouping struct {
	NodeID NodeID
	Inner  Expr
	Posn   token.Position
}

func (e *Grouping) Pos() token.Position { return e.Posn }
func (e *Grouping) ID() NodeID          { return e.NodeID }
func (*Grouping) exprNode()             {}

// Await suspends on the inner expression at run time.
type Await struct {
	NodeID NodeID
	Inner  Expr
	Posn   token.Position
}

func (e *Await) Pos() token.Position { return e.Posn }
func (e *Await) ID() NodeID          { return e.NodeID }
func (*Await) exprNode()             {}
