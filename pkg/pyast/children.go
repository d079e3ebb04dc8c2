package pyast

// ChildNodes returns a node's children in source order. The order is fixed
// and reproducible for a given tree: it is the only traversal order the
// engine ever uses, so violation ordering and tests depend on it.
//
// Nil children (optional clauses that are absent) are skipped.
func ChildNodes(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c == nil {
			return
		}
		out = append(out, c)
	}
	addExpr := func(e Expr) {
		if e == nil {
			return
		}
		out = append(out, e)
	}
	addExprs := func(es []Expr) {
		for _, e := range es {
			addExpr(e)
		}
	}
	addStmts := func(ss []Stmt) {
		for _, s := range ss {
			if s != nil {
				out = append(out, s)
			}
		}
	}

	switch t := n.(type) {
	case *Module:
		addStmts(t.Body)

	case *FunctionDef:
		addExprs(t.Decorators)
		if t.Args != nil {
			add(t.Args)
		}
		addStmts(t.Body)

	case *ClassDef:
		addExprs(t.Decorators)
		addExprs(t.Bases)
		addStmts(t.Body)

	case *For:
		addExpr(t.Target)
		addExpr(t.Iter)
		addStmts(t.Body)
		addStmts(t.Else)

	case *While:
		addExpr(t.Cond)
		addStmts(t.Body)
		addStmts(t.Else)

	case *If:
		addExpr(t.Cond)
		addStmts(t.Body)
		addStmts(t.Else)

	case *With:
		for _, item := range t.Items {
			add(item)
		}
		addStmts(t.Body)

	case *WithItem:
		addExpr(t.Context)
		addExpr(t.As)

	case *Try:
		addStmts(t.Body)
		for _, h := range t.Handlers {
			add(h)
		}
		addStmts(t.Else)
		addStmts(t.Final)

	case *ExceptHandler:
		addExpr(t.Type)
		addStmts(t.Body)

	case *Raise:
		addExpr(t.Exc)
		addExpr(t.Cause)

	case *Return:
		addExpr(t.Value)

	case *Assert:
		addExpr(t.Test)
		addExpr(t.Msg)

	case *Assign:
		addExprs(t.Targets)
		addExpr(t.Value)

	case *AugAssign:
		addExpr(t.Target)
		addExpr(t.Value)

	case *ExprStmt:
		addExpr(t.Value)

	case *Lambda:
		if t.Args != nil {
			add(t.Args)
		}
		addExpr(t.Body)

	case *BoolOp:
		addExprs(t.Values)

	case *BinOp:
		addExpr(t.Left)
		addExpr(t.Right)

	case *UnaryOp:
		addExpr(t.Operand)

	case *Compare:
		addExpr(t.Left)
		addExprs(t.Comparators)

	case *Call:
		addExpr(t.Func)
		addExprs(t.Args)
		for _, kw := range t.Keywords {
			add(kw)
		}

	case *Keyword:
		addExpr(t.Value)

	case *Attribute:
		addExpr(t.Value)

	case *Yield:
		addExpr(t.Value)

	case *Tuple:
		addExprs(t.Elts)

	case *List:
		addExprs(t.Elts)

	case *Dict:
		// Keys[i] may be nil for ** expansion; keep key/value pairing order.
		for i := range t.Values {
			if i < len(t.Keys) {
				addExpr(t.Keys[i])
			}
			addExpr(t.Values[i])
		}

	case *Set:
		addExprs(t.Elts)

	case *Starred:
		addExpr(t.Value)

	case *Subscript:
		addExpr(t.Value)
		addExpr(t.Index)

	case *Comprehension:
		addExpr(t.Target)
		addExpr(t.Iter)
		addExprs(t.Ifs)

	case *ListComp:
		addExpr(t.Elt)
		for _, g := range t.Generators {
			add(g)
		}

	case *SetComp:
		addExpr(t.Elt)
		for _, g := range t.Generators {
			add(g)
		}

	case *DictComp:
		addExpr(t.Key)
		addExpr(t.Value)
		for _, g := range t.Generators {
			add(g)
		}

	case *GeneratorExp:
		addExpr(t.Elt)
		for _, g := range t.Generators {
			add(g)
		}

	case *Arguments:
		for _, a := range t.Args {
			add(a)
		}
		addExprs(t.Defaults)
		for _, a := range t.KwOnlyArgs {
			add(a)
		}
		addExprs(t.KwDefaults)
		if t.Vararg != nil {
			add(t.Vararg)
		}
		if t.Kwarg != nil {
			add(t.Kwarg)
		}

	case *Name, *Str, *Num, *Const, *Arg,
		*Global, *Nonlocal, *Import, *ImportFrom,
		*Break, *Continue, *Pass:
		// Leaf nodes
	}

	return out
}
