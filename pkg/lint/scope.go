package lint

import "github.com/leapstack-labs/bearlint/pkg/pyast"

// ScopeKind identifies the flavor of a lexical scope.
type ScopeKind int

// Scope kinds.
const (
	ScopeModule ScopeKind = iota
	ScopeFunction
	ScopeClass
	ScopeComprehension
	ScopeLambda
)

// String returns the scope kind name.
func (k ScopeKind) String() string {
	switch k {
	case ScopeModule:
		return "module"
	case ScopeFunction:
		return "function"
	case ScopeClass:
		return "class"
	case ScopeComprehension:
		return "comprehension"
	case ScopeLambda:
		return "lambda"
	default:
		return "unknown"
	}
}

// LookupStatus is the tri-state answer to a binding query. Unknown means
// the engine cannot decide (star imports, global/nonlocal declarations);
// rules must treat Unknown conservatively and not flag.
type LookupStatus int

// Lookup outcomes.
const (
	LookupUnbound LookupStatus = iota
	LookupBound
	LookupUnknown
)

// LookupResult describes where a name resolved.
type LookupResult struct {
	Status LookupStatus
	Scope  ScopeKind  // kind of the binding scope, valid when bound
	Node   pyast.Node // introducing node, valid when bound
	Level  int        // scope-chain distance from the current scope
}

// LoopInfo describes one loop enclosing the current position.
type LoopInfo struct {
	Node pyast.Node
	// Depth is the number of scopes that were open when the loop was
	// entered; a binding in a deeper scope shadows the control variables.
	Depth int
	// ControlVars maps each loop control variable to its binding Name
	// node in the loop target. Empty for while loops.
	ControlVars map[string]*pyast.Name
}

// scopeRecord is one entry in the scope arena. Records are appended, never
// updated in place after their subtree is left; the active chain is the
// index stack plus parent links, so a snapshot of indices stays valid.
type scopeRecord struct {
	kind       ScopeKind
	node       pyast.Node
	parent     int // arena index of the enclosing scope, -1 for module
	bindings   map[string]pyast.Node
	poisoned   map[string]bool // names under global/nonlocal declarations
	unresolved bool            // star import makes membership undecidable
}

// handlerFrame marks that traversal is inside an except-handler body.
type handlerFrame struct {
	handler *pyast.ExceptHandler
}

// Scopes tracks lexical scope, loop and exception-handler context during
// one traversal. It is populated exclusively by the walker's enter/exit
// hooks; rules receive it as a read-only view.
type Scopes struct {
	arena    []scopeRecord
	stack    []int // active arena indices, innermost last
	loops    []LoopInfo
	trys     []*pyast.Try
	handlers []handlerFrame
}

func newScopes() *Scopes {
	return &Scopes{}
}

// --- mutation, walker-only ---

func (s *Scopes) pushScope(kind ScopeKind, node pyast.Node) {
	parent := -1
	if len(s.stack) > 0 {
		parent = s.stack[len(s.stack)-1]
	}
	s.arena = append(s.arena, scopeRecord{
		kind:     kind,
		node:     node,
		parent:   parent,
		bindings: make(map[string]pyast.Node),
		poisoned: make(map[string]bool),
	})
	s.stack = append(s.stack, len(s.arena)-1)
}

func (s *Scopes) popScope() {
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *Scopes) bind(name string, node pyast.Node) {
	if name == "" {
		return
	}
	cur := &s.arena[s.stack[len(s.stack)-1]]
	if _, exists := cur.bindings[name]; !exists {
		cur.bindings[name] = node
	}
}

func (s *Scopes) poison(name string) {
	cur := &s.arena[s.stack[len(s.stack)-1]]
	cur.poisoned[name] = true
}

func (s *Scopes) markUnresolved() {
	cur := &s.arena[s.stack[len(s.stack)-1]]
	cur.unresolved = true
}

func (s *Scopes) pushLoop(info LoopInfo) {
	info.Depth = len(s.stack)
	s.loops = append(s.loops, info)
}

func (s *Scopes) popLoop()             { s.loops = s.loops[:len(s.loops)-1] }
func (s *Scopes) pushTry(t *pyast.Try) { s.trys = append(s.trys, t) }
func (s *Scopes) popTry()              { s.trys = s.trys[:len(s.trys)-1] }

func (s *Scopes) pushHandler(h *pyast.ExceptHandler) {
	s.handlers = append(s.handlers, handlerFrame{handler: h})
}

func (s *Scopes) popHandler() { s.handlers = s.handlers[:len(s.handlers)-1] }

// --- read-only view for rules ---

// Depth returns the number of currently open scopes.
func (s *Scopes) Depth() int {
	return len(s.stack)
}

// CurrentKind returns the kind of the innermost open scope.
func (s *Scopes) CurrentKind() ScopeKind {
	return s.arena[s.stack[len(s.stack)-1]].kind
}

// CurrentScopeNode returns the node that introduced the innermost scope.
func (s *Scopes) CurrentScopeNode() pyast.Node {
	return s.arena[s.stack[len(s.stack)-1]].node
}

// Lookup resolves a name against the scope chain from the current
// position outward, following the host language's visibility rules:
// class scopes are invisible to code nested inside them, and
// comprehension bindings never leak outward (they simply live in their
// own record). Names under global/nonlocal declarations and chains
// containing a star import resolve to Unknown.
func (s *Scopes) Lookup(name string) LookupResult {
	if len(s.stack) == 0 {
		return LookupResult{Status: LookupUnknown}
	}
	undecidable := false
	level := 0
	for idx := s.stack[len(s.stack)-1]; idx >= 0; idx = s.arena[idx].parent {
		rec := &s.arena[idx]
		if rec.kind == ScopeClass && level > 0 {
			level++
			continue
		}
		if rec.poisoned[name] {
			return LookupResult{Status: LookupUnknown, Level: level}
		}
		if node, ok := rec.bindings[name]; ok {
			return LookupResult{Status: LookupBound, Scope: rec.kind, Node: node, Level: level}
		}
		if rec.unresolved {
			undecidable = true
		}
		level++
	}
	if undecidable {
		return LookupResult{Status: LookupUnknown}
	}
	return LookupResult{Status: LookupUnbound}
}

// InLoop reports whether the current position is lexically inside a loop
// body.
func (s *Scopes) InLoop() bool {
	return len(s.loops) > 0
}

// InnermostLoop returns the innermost enclosing loop.
func (s *Scopes) InnermostLoop() (LoopInfo, bool) {
	if len(s.loops) == 0 {
		return LoopInfo{}, false
	}
	return s.loops[len(s.loops)-1], true
}

// Loops returns all enclosing loops, outermost first.
func (s *Scopes) Loops() []LoopInfo {
	out := make([]LoopInfo, len(s.loops))
	copy(out, s.loops)
	return out
}

// LoopControl reports whether name is a control variable of any enclosing
// loop, returning its binding Name node and the innermost loop that owns
// it.
func (s *Scopes) LoopControl(name string) (*pyast.Name, LoopInfo, bool) {
	for i := len(s.loops) - 1; i >= 0; i-- {
		if n, ok := s.loops[i].ControlVars[name]; ok {
			return n, s.loops[i], true
		}
	}
	return nil, LoopInfo{}, false
}

// InTry reports whether the current position is inside a try block (not
// its handlers or finally).
func (s *Scopes) InTry() bool {
	return len(s.trys) > 0
}

// CatchingHandlers returns, innermost try first, the handlers that would
// catch an exception of the given class at the current position, using
// the conservative builtin hierarchy relation. Within one try statement
// only the first matching handler runs, so at most one handler per
// enclosing try is returned.
func (s *Scopes) CatchingHandlers(excName string) []*pyast.ExceptHandler {
	var out []*pyast.ExceptHandler
	for i := len(s.trys) - 1; i >= 0; i-- {
		for _, h := range s.trys[i].Handlers {
			if handlerCatches(h, excName) {
				out = append(out, h)
				break
			}
		}
	}
	return out
}

// CaughtException reports whether name is currently bound by an enclosing
// except handler ("except E as name"), innermost wins.
func (s *Scopes) CaughtException(name string) (*pyast.ExceptHandler, bool) {
	if name == "" {
		return nil, false
	}
	for i := len(s.handlers) - 1; i >= 0; i-- {
		if s.handlers[i].handler.Name == name {
			return s.handlers[i].handler, true
		}
	}
	return nil, false
}

// handlerCatches reports whether a single handler clause would catch the
// named exception class.
func handlerCatches(h *pyast.ExceptHandler, excName string) bool {
	if h.Type == nil {
		return true // bare except catches everything
	}
	for _, name := range HandlerTypeNames(h.Type) {
		if CoversException(name, excName) {
			return true
		}
	}
	return false
}

// HandlerTypeNames flattens a handler's type expression into class names.
// Dotted names keep their full path; anything unrecognizable is dropped,
// which errs toward "does not catch".
func HandlerTypeNames(e pyast.Expr) []string {
	switch t := e.(type) {
	case *pyast.Name:
		return []string{t.ID}
	case *pyast.Attribute:
		if path := attrPath(t); path != "" {
			return []string{path}
		}
	case *pyast.Tuple:
		var names []string
		for _, elt := range t.Elts {
			names = append(names, HandlerTypeNames(elt)...)
		}
		return names
	}
	return nil
}

func attrPath(e pyast.Expr) string {
	switch t := e.(type) {
	case *pyast.Name:
		return t.ID
	case *pyast.Attribute:
		base := attrPath(t.Value)
		if base == "" {
			return ""
		}
		return base + "." + t.Attr
	}
	return ""
}
