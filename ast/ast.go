// Package ast defines the statement tree produced by the parser.
package ast

import "github.com/absurd-lang/absurd/token"

// NodeID identifies an expression node within a single parse run. IDs are
// issued in construction order starting at zero and are never reused.
type NodeID int

// Node represents any AST node with a source position.
type Node interface {
	Pos() token.Position
}

// Stmt represents a statement.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression. Every expression carries its identity.
type Expr interface {
	Node
	ID() NodeID
	exprNode()
}

// Body is either a statement list or a single expression.
type Body struct {
	Stmts []Stmt
	Expr  Expr // non-nil for expression bodies
}

// IsExpr reports whether the body is a single expression.
func (b Body) IsExpr() bool { return b.Expr != nil }

// Param is a named, typed parameter of a function declaration or literal.
type Param struct {
	Name token.Token
	Type TypeToken
}

// VarDecl binds one or more names.
type VarDecl struct {
	Names     []token.Token
	Type      TypeToken
	Value     Expr // null literal for the short form
	Mutable   bool
	Public    bool
	Exports   []token.Token // defaults to Names
	FuncValue bool          // initializer opens with a parameter-list pipe
	Posn      token.Position
}

func (s *VarDecl) Pos() token.Position { return s.Posn }
func (*VarDecl) stmtNode()             {}

// FuncDecl introduces a named function.
type FuncDecl struct {
	Name       token.Token
	Params     []Param
	ReturnType TypeToken
	Body       []Stmt
	Async      bool
	Public     bool
	Posn       token.Position
}

func (s *FuncDecl) Pos() token.Position { return s.Posn }
func (*FuncDecl) stmtNode()             {}

// ElseIf is one elif branch of an if statement.
type ElseIf struct {
	Cond Expr
	Body []Stmt
}

// If conditionally executes branches.
type If struct {
	Cond    Expr
	Body    []Stmt
	ElseIfs []ElseIf
	Else    *Block // may be nil
	Posn    token.Position
}

func (s *If) Pos() token.Position { return s.Posn }
func (*If) stmtNode()             {}

// Return exits the current function with a value.
type Return struct {
	Value Expr
	Posn  token.Position
}

func (s *Return) Pos() token.Position { return s.Posn }
func (*Return) stmtNode()             {}

// While repeats while the condition holds.
type While struct {
	Cond Expr
	Body []Stmt
	Posn token.Position
}

func (s *While) Pos() token.Position { return s.Posn }
func (*While) stmtNode()             {}

// Loop repeats its body Count times, or forever when Infinite is set.
type Loop struct {
	Count    int
	Infinite bool
	Body     []Stmt
	Posn     token.Position
}

func (s *Loop) Pos() token.Position { return s.Posn }
func (*Loop) stmtNode()             {}

// Break leaves the innermost loop.
type Break struct {
	Posn token.Position
}

func (s *Break) Pos() token.Position { return s.Posn }
func (*Break) stmtNode()             {}

// MatchCase pairs a literal or tag key with its arm.
type MatchCase struct {
	Key  Expr
	Body Body
}

// Match selects the first case whose key equals the subject.
type Match struct {
	Subject Expr
	Cases   []MatchCase
	Default Body
	Posn    token.Position
}

func (s *Match) Pos() token.Position { return s.Posn }
func (*Match) stmtNode()             {}

// ModDecl declares a module by path.
type ModDecl struct {
	Path string
	Posn token.Position
}

func (s *ModDecl) Pos() token.Position { return s.Posn }
func (*ModDecl) stmtNode()             {}

// UseName is one imported name with its optional alias.
type UseName struct {
	Name  token.Token
	Alias *token.Token
}

// UseDecl imports names, or everything when All is set, from a path.
type UseDecl struct {
	Path  string
	Names []UseName
	All   bool
	Posn  token.Position
}

func (s *UseDecl) Pos() token.Position { return s.Posn }
func (*UseDecl) stmtNode()             {}

// EnumDecl declares an enumeration.
type EnumDecl struct {
	Name    token.Token
	Members []token.Token
	Public  bool
	Posn    token.Position
}

func (s *EnumDecl) Pos() token.Position { return s.Posn }
func (*EnumDecl) stmtNode()             {}

// Block is a braced statement list.
type Block struct {
	Stmts []Stmt
	Posn  token.Position
}

func (s *Block) Pos() token.Position { return s.Posn }
func (*Block) stmtNode()             {}

// ExprStmt evaluates an expression for side effects.
type ExprStmt struct {
	Expr Expr
	Posn token.Position
}

func (s *ExprStmt) Pos() token.Position { return s.Posn }
func (*ExprStmt) stmtNode()             {}
