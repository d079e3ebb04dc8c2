package pyast

// Kind identifies the syntactic category of a node.
type Kind int

// Node kinds. The set mirrors the CPython ast node classes the rules
// subscribe to; nodes the host may emit but no rule inspects are still
// representable so traversal does not lose subtrees.
const (
	KindInvalid Kind = iota

	// Statements
	KindModule
	KindFunctionDef
	KindClassDef
	KindFor
	KindWhile
	KindIf
	KindWith
	KindTry
	KindExceptHandler
	KindRaise
	KindReturn
	KindAssert
	KindAssign
	KindAugAssign
	KindGlobal
	KindNonlocal
	KindImport
	KindImportFrom
	KindBreak
	KindContinue
	KindPass
	KindExprStmt

	// Expressions
	KindLambda
	KindBoolOp
	KindBinOp
	KindUnaryOp
	KindCompare
	KindCall
	KindAttribute
	KindName
	KindStr
	KindNum
	KindConst
	KindYield
	KindTuple
	KindList
	KindDict
	KindSet
	KindStarred
	KindSubscript
	KindListComp
	KindSetComp
	KindDictComp
	KindGeneratorExp

	// Supporting nodes
	KindArguments
	KindArg
	KindKeyword
	KindComprehension
	KindWithItem
)

var kindNames = map[Kind]string{
	KindModule:        "Module",
	KindFunctionDef:   "FunctionDef",
	KindClassDef:      "ClassDef",
	KindFor:           "For",
	KindWhile:         "While",
	KindIf:            "If",
	KindWith:          "With",
	KindTry:           "Try",
	KindExceptHandler: "ExceptHandler",
	KindRaise:         "Raise",
	KindReturn:        "Return",
	KindAssert:        "Assert",
	KindAssign:        "Assign",
	KindAugAssign:     "AugAssign",
	KindGlobal:        "Global",
	KindNonlocal:      "Nonlocal",
	KindImport:        "Import",
	KindImportFrom:    "ImportFrom",
	KindBreak:         "Break",
	KindContinue:      "Continue",
	KindPass:          "Pass",
	KindExprStmt:      "Expr",
	KindLambda:        "Lambda",
	KindBoolOp:        "BoolOp",
	KindBinOp:         "BinOp",
	KindUnaryOp:       "UnaryOp",
	KindCompare:       "Compare",
	KindCall:          "Call",
	KindAttribute:     "Attribute",
	KindName:          "Name",
	KindStr:           "Str",
	KindNum:           "Num",
	KindConst:         "Constant",
	KindYield:         "Yield",
	KindTuple:         "Tuple",
	KindList:          "List",
	KindDict:          "Dict",
	KindSet:           "Set",
	KindStarred:       "Starred",
	KindSubscript:     "Subscript",
	KindListComp:      "ListComp",
	KindSetComp:       "SetComp",
	KindDictComp:      "DictComp",
	KindGeneratorExp:  "GeneratorExp",
	KindArguments:     "arguments",
	KindArg:           "arg",
	KindKeyword:       "keyword",
	KindComprehension: "comprehension",
	KindWithItem:      "withitem",
}

// String returns the CPython ast class name for the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Invalid"
}

// IsScopeKind reports whether nodes of this kind introduce a new lexical
// scope when entered.
func (k Kind) IsScopeKind() bool {
	switch k {
	case KindModule, KindFunctionDef, KindClassDef, KindLambda,
		KindListComp, KindSetComp, KindDictComp, KindGeneratorExp:
		return true
	}
	return false
}
