package lint

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// walker performs the single depth-first traversal of one tree. It owns
// the scope tracker for the duration of the run and is the only code that
// mutates it. All per-run state lives here, so concurrent Analyze calls
// share nothing.
type walker struct {
	reg    *Registry
	cfg    *Config
	scopes *Scopes
	col    collector
	faults []Fault
}

func newWalker(reg *Registry, cfg *Config) *walker {
	return &walker{reg: reg, cfg: cfg, scopes: newScopes()}
}

// run traverses the module and returns an error only for malformed trees;
// rule-internal faults are recorded, not propagated.
func (w *walker) run(m *pyast.Module) error {
	if m == nil {
		return fmt.Errorf("%w: nil module", ErrMalformedTree)
	}
	w.scopes.pushScope(ScopeModule, m)
	w.declareStmts(m.Body)
	w.dispatch(m)
	err := w.walkStmts(m.Body)
	w.scopes.popScope()
	return err
}

func (w *walker) walkStmts(stmts []pyast.Stmt) error {
	for _, st := range stmts {
		if st == nil {
			continue
		}
		if err := w.walk(st); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) walkExprs(exprs []pyast.Expr) error {
	for _, e := range exprs {
		if e == nil {
			continue
		}
		if err := w.walk(e); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) walkExpr(e pyast.Expr) error {
	if e == nil {
		return nil
	}
	return w.walk(e)
}

// walk visits one node: dispatches subscribed rules with the context of
// the enclosing scope, then visits children, adjusting scope, loop and
// handler state around the child lists that introduce it.
func (w *walker) walk(n pyast.Node) error {
	if n == nil {
		return nil
	}
	if _, isModule := n.(*pyast.Module); !isModule {
		w.dispatch(n)
	}

	switch t := n.(type) {
	case *pyast.FunctionDef:
		if t.Args == nil {
			return fmt.Errorf("%w: FunctionDef %q at line %d has no arguments node",
				ErrMalformedTree, t.Name, t.Span.Start.Line)
		}
		if err := w.walkExprs(t.Decorators); err != nil {
			return err
		}
		// Default expressions evaluate in the enclosing scope at
		// definition time; the parameters they belong to do not exist
		// yet when they run.
		if err := w.walkExprs(t.Args.Defaults); err != nil {
			return err
		}
		if err := w.walkExprs(t.Args.KwDefaults); err != nil {
			return err
		}
		w.scopes.pushScope(ScopeFunction, t)
		w.declareParams(t.Args)
		w.declareStmts(t.Body)
		if err := w.walkStmts(t.Body); err != nil {
			return err
		}
		w.scopes.popScope()

	case *pyast.Lambda:
		if t.Args == nil {
			return fmt.Errorf("%w: Lambda at line %d has no arguments node",
				ErrMalformedTree, t.Span.Start.Line)
		}
		if err := w.walkExprs(t.Args.Defaults); err != nil {
			return err
		}
		if err := w.walkExprs(t.Args.KwDefaults); err != nil {
			return err
		}
		w.scopes.pushScope(ScopeLambda, t)
		w.declareParams(t.Args)
		if err := w.walkExpr(t.Body); err != nil {
			return err
		}
		w.scopes.popScope()

	case *pyast.ClassDef:
		if err := w.walkExprs(t.Decorators); err != nil {
			return err
		}
		if err := w.walkExprs(t.Bases); err != nil {
			return err
		}
		w.scopes.pushScope(ScopeClass, t)
		w.declareStmts(t.Body)
		if err := w.walkStmts(t.Body); err != nil {
			return err
		}
		w.scopes.popScope()

	case *pyast.For:
		if err := w.walkExpr(t.Target); err != nil {
			return err
		}
		if err := w.walkExpr(t.Iter); err != nil {
			return err
		}
		w.scopes.pushLoop(LoopInfo{Node: t, ControlVars: controlVars(t.Target)})
		if err := w.walkStmts(t.Body); err != nil {
			return err
		}
		w.scopes.popLoop()
		// The else block runs after the loop; it is not "inside" it.
		if err := w.walkStmts(t.Else); err != nil {
			return err
		}

	case *pyast.While:
		if err := w.walkExpr(t.Cond); err != nil {
			return err
		}
		w.scopes.pushLoop(LoopInfo{Node: t, ControlVars: map[string]*pyast.Name{}})
		if err := w.walkStmts(t.Body); err != nil {
			return err
		}
		w.scopes.popLoop()
		if err := w.walkStmts(t.Else); err != nil {
			return err
		}

	case *pyast.Try:
		w.scopes.pushTry(t)
		if err := w.walkStmts(t.Body); err != nil {
			return err
		}
		w.scopes.popTry()
		for _, h := range t.Handlers {
			if h == nil {
				continue
			}
			w.dispatch(h)
			if err := w.walkExpr(h.Type); err != nil {
				return err
			}
			w.scopes.pushHandler(h)
			if err := w.walkStmts(h.Body); err != nil {
				return err
			}
			w.scopes.popHandler()
		}
		if err := w.walkStmts(t.Else); err != nil {
			return err
		}
		if err := w.walkStmts(t.Final); err != nil {
			return err
		}

	case *pyast.ListComp:
		return w.walkComprehension(t, t.Generators, nil, t.Elt)
	case *pyast.SetComp:
		return w.walkComprehension(t, t.Generators, nil, t.Elt)
	case *pyast.GeneratorExp:
		return w.walkComprehension(t, t.Generators, nil, t.Elt)
	case *pyast.DictComp:
		return w.walkComprehension(t, t.Generators, t.Key, t.Value)

	default:
		for _, c := range pyast.ChildNodes(n) {
			if err := w.walk(c); err != nil {
				return err
			}
		}
	}
	return nil
}

// walkComprehension handles the four comprehension forms. The first
// generator's iterable evaluates in the enclosing scope; everything else
// lives in the comprehension's own scope, so its bindings never leak.
func (w *walker) walkComprehension(n pyast.Node, gens []*pyast.Comprehension, key, elt pyast.Expr) error {
	if len(gens) == 0 {
		return fmt.Errorf("%w: %s at line %d has no generators",
			ErrMalformedTree, n.Kind(), n.GetSpan().Start.Line)
	}
	if err := w.walkExpr(gens[0].Iter); err != nil {
		return err
	}
	w.scopes.pushScope(ScopeComprehension, n)
	for _, g := range gens {
		w.declareTarget(g.Target)
	}
	for i, g := range gens {
		w.dispatch(g)
		if err := w.walkExpr(g.Target); err != nil {
			return err
		}
		if i > 0 {
			if err := w.walkExpr(g.Iter); err != nil {
				return err
			}
		}
		if err := w.walkExprs(g.Ifs); err != nil {
			return err
		}
	}
	if err := w.walkExpr(key); err != nil {
		return err
	}
	if err := w.walkExpr(elt); err != nil {
		return err
	}
	w.scopes.popScope()
	return nil
}

// dispatch invokes every enabled rule subscribed to the node's kind.
// Each invocation is isolated: a panicking rule contributes a Fault and
// the traversal carries on with the remaining rules.
func (w *walker) dispatch(n pyast.Node) {
	for _, def := range w.reg.forKind(n.Kind()) {
		if !w.cfg.Enabled(def) {
			continue
		}
		w.invoke(def, n)
	}
}

func (w *walker) invoke(def *RuleDef, n pyast.Node) {
	defer func() {
		if r := recover(); r != nil {
			w.faults = append(w.faults, Fault{
				RuleCode: def.Code,
				Pos:      n.GetSpan().Start,
				Err:      fmt.Errorf("rule %s failed on %s node: %v", def.Code, n.Kind(), r),
			})
		}
	}()
	vs := def.Check(n, w.scopes, w.cfg.GetRuleOptions(def.Code))
	for i := range vs {
		vs[i].Severity = w.cfg.GetSeverity(def.Code, def.Severity)
	}
	w.col.add(vs...)
}

// --- binding pre-collection ---
//
// Python makes a name local to a scope if it is assigned anywhere inside
// it, regardless of where the assignment appears. declareStmts walks a
// statement list without descending into nested scope-introducing nodes
// and records every binding the scope will own.

func (w *walker) declareStmts(stmts []pyast.Stmt) {
	for _, st := range stmts {
		w.declareStmt(st)
	}
}

func (w *walker) declareStmt(st pyast.Stmt) {
	switch t := st.(type) {
	case *pyast.FunctionDef:
		w.scopes.bind(t.Name, t)
	case *pyast.ClassDef:
		w.scopes.bind(t.Name, t)
	case *pyast.Assign:
		for _, tgt := range t.Targets {
			w.declareTarget(tgt)
		}
	case *pyast.AugAssign:
		w.declareTarget(t.Target)
	case *pyast.For:
		w.declareTarget(t.Target)
		w.declareStmts(t.Body)
		w.declareStmts(t.Else)
	case *pyast.While:
		w.declareStmts(t.Body)
		w.declareStmts(t.Else)
	case *pyast.If:
		w.declareStmts(t.Body)
		w.declareStmts(t.Else)
	case *pyast.With:
		for _, item := range t.Items {
			if item != nil {
				w.declareTarget(item.As)
			}
		}
		w.declareStmts(t.Body)
	case *pyast.Try:
		w.declareStmts(t.Body)
		for _, h := range t.Handlers {
			if h == nil {
				continue
			}
			if h.Name != "" {
				w.scopes.bind(h.Name, h)
			}
			w.declareStmts(h.Body)
		}
		w.declareStmts(t.Else)
		w.declareStmts(t.Final)
	case *pyast.Global:
		for _, name := range t.Names {
			w.scopes.poison(name)
		}
	case *pyast.Nonlocal:
		for _, name := range t.Names {
			w.scopes.poison(name)
		}
	case *pyast.Import:
		for _, alias := range t.Names {
			w.scopes.bind(importBoundName(alias), t)
		}
	case *pyast.ImportFrom:
		for _, alias := range t.Names {
			if alias.Name == "*" {
				w.scopes.markUnresolved()
				continue
			}
			w.scopes.bind(importBoundName(alias), t)
		}
	}
}

func (w *walker) declareParams(args *pyast.Arguments) {
	for _, a := range args.Args {
		if a != nil {
			w.scopes.bind(a.Name, a)
		}
	}
	for _, a := range args.KwOnlyArgs {
		if a != nil {
			w.scopes.bind(a.Name, a)
		}
	}
	if args.Vararg != nil {
		w.scopes.bind(args.Vararg.Name, args.Vararg)
	}
	if args.Kwarg != nil {
		w.scopes.bind(args.Kwarg.Name, args.Kwarg)
	}
}

func (w *walker) declareTarget(e pyast.Expr) {
	switch t := e.(type) {
	case *pyast.Name:
		w.scopes.bind(t.ID, t)
	case *pyast.Tuple:
		for _, elt := range t.Elts {
			w.declareTarget(elt)
		}
	case *pyast.List:
		for _, elt := range t.Elts {
			w.declareTarget(elt)
		}
	case *pyast.Starred:
		w.declareTarget(t.Value)
	}
	// Attribute and Subscript targets mutate objects, not the scope.
}

// importBoundName returns the name an import alias binds in the scope:
// the asname when present, otherwise the first dotted segment.
func importBoundName(alias pyast.ImportAlias) string {
	if alias.AsName != "" {
		return alias.AsName
	}
	if i := strings.IndexByte(alias.Name, '.'); i >= 0 {
		return alias.Name[:i]
	}
	return alias.Name
}

// controlVars collects the Name nodes bound by a loop target.
func controlVars(target pyast.Expr) map[string]*pyast.Name {
	vars := make(map[string]*pyast.Name)
	var collect func(e pyast.Expr)
	collect = func(e pyast.Expr) {
		switch t := e.(type) {
		case *pyast.Name:
			vars[t.ID] = t
		case *pyast.Tuple:
			for _, elt := range t.Elts {
				collect(elt)
			}
		case *pyast.List:
			for _, elt := range t.Elts {
				collect(elt)
			}
		case *pyast.Starred:
			collect(t.Value)
		}
	}
	collect(target)
	return vars
}
