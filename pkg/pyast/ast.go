package pyast

import "github.com/leapstack-labs/bearlint/pkg/token"

// Node is the base interface for all AST nodes.
type Node interface {
	// Kind returns the node's kind tag.
	Kind() Kind
	// GetSpan returns the node's source span.
	GetSpan() token.Span
}

// Stmt is a marker interface for statement nodes.
type Stmt interface {
	Node
	stmtNode() // Marker method to distinguish statements
}

// Expr is a marker interface for expression nodes.
type Expr interface {
	Node
	exprNode() // Marker method to distinguish expressions
}

// NodeInfo provides common fields for all AST nodes.
// Embed this in node types that need position tracking.
type NodeInfo struct {
	Span token.Span
}

// GetSpan returns the node's source span.
func (n *NodeInfo) GetSpan() token.Span {
	return n.Span
}

// ---------- Statement Types ----------

// Module is the root of a parsed file.
type Module struct {
	NodeInfo
	Body []Stmt
}

// FunctionDef represents a def (or async def) statement.
type FunctionDef struct {
	NodeInfo
	Name       string
	Args       *Arguments
	Body       []Stmt
	Decorators []Expr
	Async      bool
}

// ClassDef represents a class statement.
type ClassDef struct {
	NodeInfo
	Name       string
	Bases      []Expr
	Body       []Stmt
	Decorators []Expr
}

// For represents a for (or async for) loop.
type For struct {
	NodeInfo
	Target Expr
	Iter   Expr
	Body   []Stmt
	Else   []Stmt
	Async  bool
}

// While represents a while loop.
type While struct {
	NodeInfo
	Cond Expr
	Body []Stmt
	Else []Stmt
}

// If represents an if statement. Chained elif clauses arrive as a nested
// If in Else, the way CPython emits them.
type If struct {
	NodeInfo
	Cond Expr
	Body []Stmt
	Else []Stmt
}

// With represents a with (or async with) statement.
type With struct {
	NodeInfo
	Items []*WithItem
	Body  []Stmt
	Async bool
}

// WithItem is one "ctx as name" clause of a with statement.
type WithItem struct {
	NodeInfo
	Context Expr
	As      Expr // optional binding target; nil when absent
}

// Try represents a try statement with handlers, else and finally blocks.
type Try struct {
	NodeInfo
	Body     []Stmt
	Handlers []*ExceptHandler
	Else     []Stmt
	Final    []Stmt
}

// ExceptHandler is one except clause. Type is nil for a bare "except:".
// Name is the "as" binding, empty when absent.
type ExceptHandler struct {
	NodeInfo
	Type Expr
	Name string
	Body []Stmt
}

// Raise represents a raise statement.
type Raise struct {
	NodeInfo
	Exc   Expr // nil for a bare re-raise
	Cause Expr // "from" clause, usually nil
}

// Return represents a return statement. Value is nil for a bare return.
type Return struct {
	NodeInfo
	Value Expr
}

// Assert represents an assert statement.
type Assert struct {
	NodeInfo
	Test Expr
	Msg  Expr // optional message, nil when absent
}

// Assign represents an assignment statement with one or more targets.
type Assign struct {
	NodeInfo
	Targets []Expr
	Value   Expr
}

// AugAssign represents an augmented assignment (+=, -=, ...).
type AugAssign struct {
	NodeInfo
	Target Expr
	Op     string
	Value  Expr
}

// Global represents a global declaration.
type Global struct {
	NodeInfo
	Names []string
}

// Nonlocal represents a nonlocal declaration.
type Nonlocal struct {
	NodeInfo
	Names []string
}

// ImportAlias is one "name as asname" clause of an import statement.
type ImportAlias struct {
	Name   string
	AsName string // empty when no "as" clause
}

// Import represents an import statement.
type Import struct {
	NodeInfo
	Names []ImportAlias
}

// ImportFrom represents a from-import statement. A star import arrives as
// a single alias named "*".
type ImportFrom struct {
	NodeInfo
	Module string
	Names  []ImportAlias
}

// Break represents a break statement.
type Break struct {
	NodeInfo
}

// Continue represents a continue statement.
type Continue struct {
	NodeInfo
}

// Pass represents a pass statement.
type Pass struct {
	NodeInfo
}

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	NodeInfo
	Value Expr
}

func (*Module) stmtNode()        {}
func (*FunctionDef) stmtNode()   {}
func (*ClassDef) stmtNode()      {}
func (*For) stmtNode()           {}
func (*While) stmtNode()         {}
func (*If) stmtNode()            {}
func (*With) stmtNode()          {}
func (*Try) stmtNode()           {}
func (*ExceptHandler) stmtNode() {}
func (*Raise) stmtNode()         {}
func (*Return) stmtNode()        {}
func (*Assert) stmtNode()        {}
func (*Assign) stmtNode()        {}
func (*AugAssign) stmtNode()     {}
func (*Global) stmtNode()        {}
func (*Nonlocal) stmtNode()      {}
func (*Import) stmtNode()        {}
func (*ImportFrom) stmtNode()    {}
func (*Break) stmtNode()         {}
func (*Continue) stmtNode()      {}
func (*Pass) stmtNode()          {}
func (*ExprStmt) stmtNode()      {}

// Kind implementations for statements.

func (*Module) Kind() Kind        { return KindModule }
func (*FunctionDef) Kind() Kind   { return KindFunctionDef }
func (*ClassDef) Kind() Kind      { return KindClassDef }
func (*For) Kind() Kind           { return KindFor }
func (*While) Kind() Kind         { return KindWhile }
func (*If) Kind() Kind            { return KindIf }
func (*With) Kind() Kind          { return KindWith }
func (*Try) Kind() Kind           { return KindTry }
func (*ExceptHandler) Kind() Kind { return KindExceptHandler }
func (*Raise) Kind() Kind         { return KindRaise }
func (*Return) Kind() Kind        { return KindReturn }
func (*Assert) Kind() Kind        { return KindAssert }
func (*Assign) Kind() Kind        { return KindAssign }
func (*AugAssign) Kind() Kind     { return KindAugAssign }
func (*Global) Kind() Kind        { return KindGlobal }
func (*Nonlocal) Kind() Kind      { return KindNonlocal }
func (*Import) Kind() Kind        { return KindImport }
func (*ImportFrom) Kind() Kind    { return KindImportFrom }
func (*Break) Kind() Kind         { return KindBreak }
func (*Continue) Kind() Kind      { return KindContinue }
func (*Pass) Kind() Kind          { return KindPass }
func (*ExprStmt) Kind() Kind      { return KindExprStmt }
