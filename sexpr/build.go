package sexpr

import (
	"fmt"

	"github.com/absurd-lang/absurd/ast"
	"github.com/absurd-lang/absurd/token"
)

// Options controls the printed form.
type Options struct {
	// IDs appends #id to the head of every expression.
	IDs bool
}

// FromStmts converts each statement to a Value.
func FromStmts(stmts []ast.Stmt, opts Options) []Value {
	b := builder{opts: opts}
	out := make([]Value, len(stmts))
	for i, s := range stmts {
		out[i] = b.stmt(s)
	}
	return out
}

// Format renders stmts one per line.
func Format(stmts []ast.Stmt, opts Options) string {
	var out []byte
	for _, v := range FromStmts(stmts, opts) {
		out = append(out, v.String()...)
		out = append(out, '\n')
	}
	return string(out)
}

type builder struct {
	opts Options
}

func (b builder) stmts(stmts []ast.Stmt) Value {
	items := []Value{Symbol("do")}
	for _, s := range stmts {
		items = append(items, b.stmt(s))
	}
	return List(items...)
}

func (b builder) body(body ast.Body) Value {
	if body.IsExpr() {
		return b.expr(body.Expr)
	}
	return b.stmts(body.Stmts)
}

func (b builder) stmt(s ast.Stmt) Value {
	switch n := s.(type) {
	case *ast.VarDecl:
		items := []Value{Symbol("let")}
		if n.Mutable {
			items = append(items, Symbol(":mut"))
		}
		if n.Public {
			items = append(items, List(append([]Value{Symbol(":pub")}, names(n.Exports)...)...))
		}
		items = append(items, List(names(n.Names)...), typeValue(n.Type), b.expr(n.Value))
		return List(items...)
	case *ast.FuncDecl:
		items := []Value{Symbol("func"), Symbol(n.Name.Lexeme)}
		if n.Public {
			items = append(items, Symbol(":pub"))
		}
		if n.Async {
			items = append(items, Symbol(":async"))
		}
		items = append(items, params(n.Params), typeValue(n.ReturnType), b.stmts(n.Body))
		return List(items...)
	case *ast.If:
		items := []Value{Symbol("if"), b.expr(n.Cond), b.stmts(n.Body)}
		for _, branch := range n.ElseIfs {
			items = append(items, List(Symbol("elif"), b.expr(branch.Cond), b.stmts(branch.Body)))
		}
		if n.Else != nil {
			items = append(items, List(Symbol("else"), b.stmts(n.Else.Stmts)))
		}
		return List(items...)
	case *ast.Return:
		return List(Symbol("return"), b.expr(n.Value))
	case *ast.While:
		return List(Symbol("while"), b.expr(n.Cond), b.stmts(n.Body))
	case *ast.Loop:
		count := Symbol("forever")
		if !n.Infinite {
			count = Number(float64(n.Count))
		}
		return List(Symbol("loop"), count, b.stmts(n.Body))
	case *ast.Break:
		return List(Symbol("break"))
	case *ast.Match:
		items := []Value{Symbol("match"), b.expr(n.Subject)}
		for _, c := range n.Cases {
			items = append(items, List(Symbol("case"), b.expr(c.Key), b.body(c.Body)))
		}
		items = append(items, List(Symbol("default"), b.body(n.Default)))
		return List(items...)
	case *ast.ModDecl:
		return List(Symbol("mod"), String(n.Path))
	case *ast.UseDecl:
		items := []Value{Symbol("use"), String(n.Path)}
		if n.All {
			return List(append(items, Symbol("*"))...)
		}
		for _, u := range n.Names {
			if u.Alias != nil {
				items = append(items, List(Symbol("as"), Symbol(u.Name.Lexeme), Symbol(u.Alias.Lexeme)))
				continue
			}
			items = append(items, Symbol(u.Name.Lexeme))
		}
		return List(items...)
	case *ast.EnumDecl:
		items := []Value{Symbol("enum"), Symbol(n.Name.Lexeme)}
		if n.Public {
			items = append(items, Symbol(":pub"))
		}
		return List(append(items, names(n.Members)...)...)
	case *ast.Block:
		return b.stmts(n.Stmts)
	case *ast.ExprStmt:
		return b.expr(n.Expr)
	default:
		return Symbol(fmt.Sprintf("<%T>", s))
	}
}

func (b builder) expr(e ast.Expr) Value {
	if e == nil {
		return Symbol("<nil>")
	}
	v := b.exprValue(e)
	if !b.opts.IDs {
		return v
	}
	id := fmt.Sprintf("#%d", e.ID())
	if v.Type == TypeList && len(v.Items) > 0 {
		v.Items[0] = Symbol(v.Items[0].String() + id)
		return v
	}
	return Symbol(v.String() + id)
}

func (b builder) exprValue(e ast.Expr) Value {
	switch n := e.(type) {
	case *ast.Literal:
		return literal(n.Value)
	case *ast.Variable:
		return Symbol(n.Name.Lexeme)
	case *ast.Assign:
		return List(Symbol(n.Op.String()), b.expr(n.Target), b.expr(n.Value))
	case *ast.Binary:
		return List(Symbol(n.Op.Kind.String()), b.expr(n.Left), b.expr(n.Right))
	case *ast.Unary:
		return List(Symbol(n.Op.Kind.String()), b.expr(n.Operand))
	case *ast.Call:
		switch n.Kind {
		case ast.CallStructField, ast.CallEnumVariant:
			return List(Symbol(n.Kind.String()), b.expr(n.Callee), Symbol(n.Name.Lexeme))
		}
		items := []Value{Symbol(callHead(n.Kind)), b.expr(n.Callee)}
		for _, arg := range n.Args {
			items = append(items, b.expr(arg))
		}
		return List(items...)
	case *ast.Method:
		items := []Value{Symbol("method"), b.expr(n.Receiver), Symbol(n.Name.Lexeme)}
		for _, arg := range n.Args {
			items = append(items, b.expr(arg))
		}
		return List(items...)
	case *ast.FuncLiteral:
		return List(Symbol("fn"), params(n.Params), b.body(n.Body))
	case *ast.Array:
		items := []Value{Symbol("array")}
		for _, item := range n.Items {
			items = append(items, b.expr(item))
		}
		return List(items...)
	case *ast.Grouping:
		return List(Symbol("group"), b.expr(n.Inner))
	case *ast.Await:
		return List(Symbol("await"), b.expr(n.Inner))
	default:
		return Symbol(fmt.Sprintf("<%T>", e))
	}
}

func callHead(kind ast.CallKind) string {
	if kind == ast.CallFunction {
		return "call"
	}
	return kind.String()
}

func literal(v interface{}) Value {
	switch x := v.(type) {
	case float64:
		return Number(x)
	case string:
		return String(x)
	case rune:
		return Symbol(fmt.Sprintf("%q", x))
	case bool:
		return Symbol(fmt.Sprintf("%t", x))
	case nil:
		return Symbol("null")
	default:
		return Symbol(fmt.Sprint(x))
	}
}

func names(toks []token.Token) []Value {
	out := make([]Value, len(toks))
	for i, t := range toks {
		out[i] = Symbol(t.Lexeme)
	}
	return out
}

func params(ps []ast.Param) Value {
	items := make([]Value, len(ps))
	for i, p := range ps {
		items[i] = List(Symbol(p.Name.Lexeme), typeValue(p.Type))
	}
	return List(items...)
}

func typeValue(t ast.TypeToken) Value {
	return Symbol(t.String())
}
