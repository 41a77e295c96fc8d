package ast

// Inspect traverses every statement and expression reachable from stmts in
// source order, calling fn for each node. If fn returns false the children
// of that node are skipped.
func Inspect(stmts []Stmt, fn func(Node) bool) {
	for _, s := range stmts {
		inspectStmt(s, fn)
	}
}

func inspectStmt(s Stmt, fn func(Node) bool) {
	if s == nil || !fn(s) {
		return
	}
	switch n := s.(type) {
	case *VarDecl:
		inspectExpr(n.Value, fn)
	case *FuncDecl:
		Inspect(n.Body, fn)
	case *If:
		inspectExpr(n.Cond, fn)
		Inspect(n.Body, fn)
		for _, branch := range n.ElseIfs {
			inspectExpr(branch.Cond, fn)
			Inspect(branch.Body, fn)
		}
		if n.Else != nil {
			inspectStmt(n.Else, fn)
		}
	case *Return:
		inspectExpr(n.Value, fn)
	case *While:
		inspectExpr(n.Cond, fn)
		Inspect(n.Body, fn)
	case *Loop:
		Inspect(n.Body, fn)
	case *Match:
		inspectExpr(n.Subject, fn)
		for _, c := range n.Cases {
			inspectExpr(c.Key, fn)
			inspectBody(c.Body, fn)
		}
		inspectBody(n.Default, fn)
	case *Block:
		Inspect(n.Stmts, fn)
	case *ExprStmt:
		inspectExpr(n.Expr, fn)
	}
}

func inspectBody(b Body, fn func(Node) bool) {
	if b.Expr != nil {
		inspectExpr(b.Expr, fn)
		return
	}
	Inspect(b.Stmts, fn)
}

func inspectExpr(e Expr, fn func(Node) bool) {
	if e == nil || !fn(e) {
		return
	}
	switch n := e.(type) {
	case *Assign:
		inspectExpr(n.Target, fn)
		inspectExpr(n.Value, fn)
	case *Binary:
		inspectExpr(n.Left, fn)
		inspectExpr(n.Right, fn)
	case *Unary:
		inspectExpr(n.Operand, fn)
	case *Call:
		inspectExpr(n.Callee, fn)
		inspectExprs(n.Args, fn)
	case *Method:
		inspectExpr(n.Receiver, fn)
		inspectExprs(n.Args, fn)
	case *FuncLiteral:
		inspectBody(n.Body, fn)
	case *Array:
		inspectExprs(n.Items, fn)
	case *Grouping:
		inspectExpr(n.Inner, fn)
	case *Await:
		inspectExpr(n.Inner, fn)
	}
}

func inspectExprs(es []Expr, fn func(Node) bool) {
	for _, e := range es {
		inspectExpr(e, fn)
	}
}

// Exprs returns every expression reachable from stmts in source order.
func Exprs(stmts []Stmt) []Expr {
	var out []Expr
	Inspect(stmts, func(n Node) bool {
		if e, ok := n.(Expr); ok {
			out = append(out, e)
		}
		return true
	})
	return out
}
