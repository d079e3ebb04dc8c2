package pyast

// ---------- Expression Types ----------

// Lambda represents a lambda expression.
type Lambda struct {
	NodeInfo
	Args *Arguments
	Body Expr
}

// BoolOpKind distinguishes "and" from "or".
type BoolOpKind int

// Boolean operators.
const (
	OpAnd BoolOpKind = iota
	OpOr
)

// BoolOp represents a chained boolean expression (a and b and c).
type BoolOp struct {
	NodeInfo
	Op     BoolOpKind
	Values []Expr
}

// BinOp represents a binary arithmetic expression. Op carries the operator
// spelling (+, -, *, ...); no rule needs more structure than that.
type BinOp struct {
	NodeInfo
	Left  Expr
	Op    string
	Right Expr
}

// UnaryOpKind identifies a unary operator.
type UnaryOpKind int

// Unary operators.
const (
	OpUAdd UnaryOpKind = iota
	OpUSub
	OpNot
	OpInvert
)

// UnaryOp represents a unary expression.
type UnaryOp struct {
	NodeInfo
	Op      UnaryOpKind
	Operand Expr
}

// Compare represents a comparison chain (a < b <= c).
type Compare struct {
	NodeInfo
	Left        Expr
	Ops         []string
	Comparators []Expr
}

// Keyword is one keyword argument of a call. Name is empty for **kwargs.
type Keyword struct {
	NodeInfo
	Name  string
	Value Expr
}

// Call represents a function or method call.
type Call struct {
	NodeInfo
	Func     Expr
	Args     []Expr
	Keywords []*Keyword
}

// Attribute represents attribute access (value.attr).
type Attribute struct {
	NodeInfo
	Value Expr
	Attr  string
}

// Name represents an identifier reference or binding occurrence.
type Name struct {
	NodeInfo
	ID string
}

// Str represents a string literal.
type Str struct {
	NodeInfo
	Value string
}

// Num represents a numeric literal. The textual form is kept; no rule
// does arithmetic on it.
type Num struct {
	NodeInfo
	Value string
}

// ConstKind identifies a named constant.
type ConstKind int

// Named constants.
const (
	ConstNone ConstKind = iota
	ConstTrue
	ConstFalse
	ConstEllipsis
)

// Const represents True, False, None or Ellipsis.
type Const struct {
	NodeInfo
	Value ConstKind
}

// Yield represents a yield or yield-from expression.
type Yield struct {
	NodeInfo
	Value Expr // nil for a bare yield
	From  bool
}

// Tuple represents a tuple display or tuple binding target.
type Tuple struct {
	NodeInfo
	Elts []Expr
}

// List represents a list display or list binding target.
type List struct {
	NodeInfo
	Elts []Expr
}

// Dict represents a dict display. Keys[i] is nil for **expansion entries.
type Dict struct {
	NodeInfo
	Keys   []Expr
	Values []Expr
}

// Set represents a set display.
type Set struct {
	NodeInfo
	Elts []Expr
}

// Starred represents a *expr in a binding target or call.
type Starred struct {
	NodeInfo
	Value Expr
}

// Subscript represents value[index]. Slices arrive as whatever expression
// the host encodes them as; the rules treat them opaquely.
type Subscript struct {
	NodeInfo
	Value Expr
	Index Expr
}

// Comprehension is one "for target in iter if cond" clause.
type Comprehension struct {
	NodeInfo
	Target Expr
	Iter   Expr
	Ifs    []Expr
	Async  bool
}

// ListComp represents a list comprehension.
type ListComp struct {
	NodeInfo
	Elt        Expr
	Generators []*Comprehension
}

// SetComp represents a set comprehension.
type SetComp struct {
	NodeInfo
	Elt        Expr
	Generators []*Comprehension
}

// DictComp represents a dict comprehension.
type DictComp struct {
	NodeInfo
	Key        Expr
	Value      Expr
	Generators []*Comprehension
}

// GeneratorExp represents a generator expression.
type GeneratorExp struct {
	NodeInfo
	Elt        Expr
	Generators []*Comprehension
}

// Arguments holds a callable's parameter list. Defaults align with the
// trailing positional Args; KwDefaults align index-for-index with
// KwOnlyArgs (nil entry means no default).
type Arguments struct {
	NodeInfo
	Args       []*Arg
	Defaults   []Expr
	KwOnlyArgs []*Arg
	KwDefaults []Expr
	Vararg     *Arg
	Kwarg      *Arg
}

// Arg is a single parameter.
type Arg struct {
	NodeInfo
	Name string
}

func (*Lambda) exprNode()       {}
func (*BoolOp) exprNode()       {}
func (*BinOp) exprNode()        {}
func (*UnaryOp) exprNode()      {}
func (*Compare) exprNode()      {}
func (*Call) exprNode()         {}
func (*Attribute) exprNode()    {}
func (*Name) exprNode()         {}
func (*Str) exprNode()          {}
func (*Num) exprNode()          {}
func (*Const) exprNode()        {}
func (*Yield) exprNode()        {}
func (*Tuple) exprNode()        {}
func (*List) exprNode()         {}
func (*Dict) exprNode()         {}
func (*Set) exprNode()          {}
func (*Starred) exprNode()      {}
func (*Subscript) exprNode()    {}
func (*ListComp) exprNode()     {}
func (*SetComp) exprNode()      {}
func (*DictComp) exprNode()     {}
func (*GeneratorExp) exprNode() {}

// Kind implementations for expressions and supporting nodes.

func (*Lambda) Kind() Kind        { return KindLambda }
func (*BoolOp) Kind() Kind        { return KindBoolOp }
func (*BinOp) Kind() Kind         { return KindBinOp }
func (*UnaryOp) Kind() Kind       { return KindUnaryOp }
func (*Compare) Kind() Kind       { return KindCompare }
func (*Call) Kind() Kind          { return KindCall }
func (*Attribute) Kind() Kind     { return KindAttribute }
func (*Name) Kind() Kind          { return KindName }
func (*Str) Kind() Kind           { return KindStr }
func (*Num) Kind() Kind           { return KindNum }
func (*Const) Kind() Kind         { return KindConst }
func (*Yield) Kind() Kind         { return KindYield }
func (*Tuple) Kind() Kind         { return KindTuple }
func (*List) Kind() Kind          { return KindList }
func (*Dict) Kind() Kind          { return KindDict }
func (*Set) Kind() Kind           { return KindSet }
func (*Starred) Kind() Kind       { return KindStarred }
func (*Subscript) Kind() Kind     { return KindSubscript }
func (*ListComp) Kind() Kind      { return KindListComp }
func (*SetComp) Kind() Kind       { return KindSetComp }
func (*DictComp) Kind() Kind      { return KindDictComp }
func (*GeneratorExp) Kind() Kind  { return KindGeneratorExp }
func (*Arguments) Kind() Kind     { return KindArguments }
func (*Arg) Kind() Kind           { return KindArg }
func (*Keyword) Kind() Kind       { return KindKeyword }
func (*Comprehension) Kind() Kind { return KindComprehension }
func (*WithItem) Kind() Kind      { return KindWithItem }
