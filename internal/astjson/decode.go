// Package astjson decodes JSON dumps of Python syntax trees, in the
// layout produced by ast2json-style exporters: every node is an object
// with a "_type" discriminator, position fields, and per-type children.
//
// The decoder covers the node vocabulary of pkg/pyast. Node types outside
// it (f-strings, match statements, and the like) fail with ErrUnsupported
// rather than silently dropping subtrees.
package astjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/leapstack-labs/bearlint/pkg/pyast"
	"github.com/leapstack-labs/bearlint/pkg/token"
)

// Decoding errors.
var (
	ErrBadInput    = errors.New("astjson: malformed input")
	ErrUnsupported = errors.New("astjson: unsupported node type")
)

// Decode reads one JSON tree and returns its module.
func Decode(r io.Reader) (*pyast.Module, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("astjson: read: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes one JSON tree from memory.
func DecodeBytes(data []byte) (*pyast.Module, error) {
	raw, err := parseObject(data)
	if err != nil {
		return nil, err
	}
	if typeName(raw) != "Module" {
		return nil, fmt.Errorf("%w: root node is %q, want Module", ErrBadInput, typeName(raw))
	}
	body, err := stmtList(raw["body"])
	if err != nil {
		return nil, err
	}
	return &pyast.Module{Body: body}, nil
}

type object map[string]json.RawMessage

func parseObject(data []byte) (object, error) {
	var raw object
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	return raw, nil
}

func typeName(o object) string {
	var t string
	_ = json.Unmarshal(o["_type"], &t)
	return t
}

func nodeInfo(o object) pyast.NodeInfo {
	return pyast.NodeInfo{Span: token.Span{
		Start: position(o, "lineno", "col_offset"),
		End:   position(o, "end_lineno", "end_col_offset"),
	}}
}

func position(o object, lineKey, colKey string) token.Position {
	pos := token.Position{Offset: -1}
	_ = json.Unmarshal(o[lineKey], &pos.Line)
	_ = json.Unmarshal(o[colKey], &pos.Col)
	return pos
}

func str(o object, key string) string {
	var s string
	_ = json.Unmarshal(o[key], &s)
	return s
}

func strs(o object, key string) []string {
	var out []string
	_ = json.Unmarshal(o[key], &out)
	return out
}

func rawList(raw json.RawMessage) ([]json.RawMessage, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	return items, nil
}

func stmtList(raw json.RawMessage) ([]pyast.Stmt, error) {
	items, err := rawList(raw)
	if err != nil {
		return nil, err
	}
	out := make([]pyast.Stmt, 0, len(items))
	for _, item := range items {
		st, err := decodeStmt(item)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

func exprList(raw json.RawMessage) ([]pyast.Expr, error) {
	items, err := rawList(raw)
	if err != nil {
		return nil, err
	}
	out := make([]pyast.Expr, 0, len(items))
	for _, item := range items {
		e, err := decodeExprOrNil(item)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func decodeExprOrNil(raw json.RawMessage) (pyast.Expr, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	return decodeExpr(raw)
}

func decodeStmt(raw json.RawMessage) (pyast.Stmt, error) {
	o, err := parseObject(raw)
	if err != nil {
		return nil, err
	}
	info := nodeInfo(o)

	switch t := typeName(o); t {
	case "FunctionDef", "AsyncFunctionDef":
		args, err := decodeArguments(o["args"])
		if err != nil {
			return nil, err
		}
		body, err := stmtList(o["body"])
		if err != nil {
			return nil, err
		}
		decorators, err := exprList(o["decorator_list"])
		if err != nil {
			return nil, err
		}
		return &pyast.FunctionDef{
			NodeInfo:   info,
			Name:       str(o, "name"),
			Args:       args,
			Body:       body,
			Decorators: decorators,
			Async:      t == "AsyncFunctionDef",
		}, nil

	case "ClassDef":
		bases, err := exprList(o["bases"])
		if err != nil {
			return nil, err
		}
		body, err := stmtList(o["body"])
		if err != nil {
			return nil, err
		}
		decorators, err := exprList(o["decorator_list"])
		if err != nil {
			return nil, err
		}
		return &pyast.ClassDef{
			NodeInfo:   info,
			Name:       str(o, "name"),
			Bases:      bases,
			Body:       body,
			Decorators: decorators,
		}, nil

	case "For", "AsyncFor":
		target, err := decodeExpr(o["target"])
		if err != nil {
			return nil, err
		}
		iter, err := decodeExpr(o["iter"])
		if err != nil {
			return nil, err
		}
		body, err := stmtList(o["body"])
		if err != nil {
			return nil, err
		}
		orelse, err := stmtList(o["orelse"])
		if err != nil {
			return nil, err
		}
		return &pyast.For{
			NodeInfo: info, Target: target, Iter: iter,
			Body: body, Else: orelse, Async: t == "AsyncFor",
		}, nil

	case "While":
		cond, err := decodeExpr(o["test"])
		if err != nil {
			return nil, err
		}
		body, err := stmtList(o["body"])
		if err != nil {
			return nil, err
		}
		orelse, err := stmtList(o["orelse"])
		if err != nil {
			return nil, err
		}
		return &pyast.While{NodeInfo: info, Cond: cond, Body: body, Else: orelse}, nil

	case "If":
		cond, err := decodeExpr(o["test"])
		if err != nil {
			return nil, err
		}
		body, err := stmtList(o["body"])
		if err != nil {
			return nil, err
		}
		orelse, err := stmtList(o["orelse"])
		if err != nil {
			return nil, err
		}
		return &pyast.If{NodeInfo: info, Cond: cond, Body: body, Else: orelse}, nil

	case "With", "AsyncWith":
		items, err := rawList(o["items"])
		if err != nil {
			return nil, err
		}
		withItems := make([]*pyast.WithItem, 0, len(items))
		for _, item := range items {
			wi, err := decodeWithItem(item)
			if err != nil {
				return nil, err
			}
			withItems = append(withItems, wi)
		}
		body, err := stmtList(o["body"])
		if err != nil {
			return nil, err
		}
		return &pyast.With{NodeInfo: info, Items: withItems, Body: body, Async: t == "AsyncWith"}, nil

	case "Try", "TryStar":
		body, err := stmtList(o["body"])
		if err != nil {
			return nil, err
		}
		rawHandlers, err := rawList(o["handlers"])
		if err != nil {
			return nil, err
		}
		handlers := make([]*pyast.ExceptHandler, 0, len(rawHandlers))
		for _, rh := range rawHandlers {
			h, err := decodeExceptHandler(rh)
			if err != nil {
				return nil, err
			}
			handlers = append(handlers, h)
		}
		orelse, err := stmtList(o["orelse"])
		if err != nil {
			return nil, err
		}
		final, err := stmtList(o["finalbody"])
		if err != nil {
			return nil, err
		}
		return &pyast.Try{NodeInfo: info, Body: body, Handlers: handlers, Else: orelse, Final: final}, nil

	case "Raise":
		exc, err := decodeExprOrNil(o["exc"])
		if err != nil {
			return nil, err
		}
		cause, err := decodeExprOrNil(o["cause"])
		if err != nil {
			return nil, err
		}
		return &pyast.Raise{NodeInfo: info, Exc: exc, Cause: cause}, nil

	case "Return":
		value, err := decodeExprOrNil(o["value"])
		if err != nil {
			return nil, err
		}
		return &pyast.Return{NodeInfo: info, Value: value}, nil

	case "Assert":
		test, err := decodeExpr(o["test"])
		if err != nil {
			return nil, err
		}
		msg, err := decodeExprOrNil(o["msg"])
		if err != nil {
			return nil, err
		}
		return &pyast.Assert{NodeInfo: info, Test: test, Msg: msg}, nil

	case "Assign":
		targets, err := exprList(o["targets"])
		if err != nil {
			return nil, err
		}
		value, err := decodeExpr(o["value"])
		if err != nil {
			return nil, err
		}
		return &pyast.Assign{NodeInfo: info, Targets: targets, Value: value}, nil

	case "AugAssign":
		target, err := decodeExpr(o["target"])
		if err != nil {
			return nil, err
		}
		value, err := decodeExpr(o["value"])
		if err != nil {
			return nil, err
		}
		return &pyast.AugAssign{NodeInfo: info, Target: target, Op: opName(o["op"]), Value: value}, nil

	case "AnnAssign":
		// Annotated assignment; the annotation itself carries no rule
		// signal, so it maps onto a single-target Assign when a value is
		// present and is dropped to a Pass otherwise.
		target, err := decodeExpr(o["target"])
		if err != nil {
			return nil, err
		}
		value, err := decodeExprOrNil(o["value"])
		if err != nil {
			return nil, err
		}
		if value == nil {
			return &pyast.Pass{NodeInfo: info}, nil
		}
		return &pyast.Assign{NodeInfo: info, Targets: []pyast.Expr{target}, Value: value}, nil

	case "Global":
		return &pyast.Global{NodeInfo: info, Names: strs(o, "names")}, nil
	case "Nonlocal":
		return &pyast.Nonlocal{NodeInfo: info, Names: strs(o, "names")}, nil

	case "Import":
		names, err := decodeAliases(o["names"])
		if err != nil {
			return nil, err
		}
		return &pyast.Import{NodeInfo: info, Names: names}, nil

	case "ImportFrom":
		names, err := decodeAliases(o["names"])
		if err != nil {
			return nil, err
		}
		return &pyast.ImportFrom{NodeInfo: info, Module: str(o, "module"), Names: names}, nil

	case "Break":
		return &pyast.Break{NodeInfo: info}, nil
	case "Continue":
		return &pyast.Continue{NodeInfo: info}, nil
	case "Pass":
		return &pyast.Pass{NodeInfo: info}, nil

	case "Expr":
		value, err := decodeExpr(o["value"])
		if err != nil {
			return nil, err
		}
		return &pyast.ExprStmt{NodeInfo: info, Value: value}, nil

	case "Delete":
		// Deletion does not bind or read names in a way the rules track.
		return &pyast.Pass{NodeInfo: info}, nil

	default:
		return nil, fmt.Errorf("%w: statement %q", ErrUnsupported, t)
	}
}

func decodeExpr(raw json.RawMessage) (pyast.Expr, error) {
	o, err := parseObject(raw)
	if err != nil {
		return nil, err
	}
	info := nodeInfo(o)

	switch t := typeName(o); t {
	case "Lambda":
		args, err := decodeArguments(o["args"])
		if err != nil {
			return nil, err
		}
		body, err := decodeExpr(o["body"])
		if err != nil {
			return nil, err
		}
		return &pyast.Lambda{NodeInfo: info, Args: args, Body: body}, nil

	case "BoolOp":
		values, err := exprList(o["values"])
		if err != nil {
			return nil, err
		}
		op := pyast.OpAnd
		if opName(o["op"]) == "Or" {
			op = pyast.OpOr
		}
		return &pyast.BoolOp{NodeInfo: info, Op: op, Values: values}, nil

	case "BinOp":
		left, err := decodeExpr(o["left"])
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(o["right"])
		if err != nil {
			return nil, err
		}
		return &pyast.BinOp{NodeInfo: info, Left: left, Op: opName(o["op"]), Right: right}, nil

	case "UnaryOp":
		operand, err := decodeExpr(o["operand"])
		if err != nil {
			return nil, err
		}
		return &pyast.UnaryOp{NodeInfo: info, Op: unaryOp(opName(o["op"])), Operand: operand}, nil

	case "Compare":
		left, err := decodeExpr(o["left"])
		if err != nil {
			return nil, err
		}
		comparators, err := exprList(o["comparators"])
		if err != nil {
			return nil, err
		}
		rawOps, err := rawList(o["ops"])
		if err != nil {
			return nil, err
		}
		ops := make([]string, 0, len(rawOps))
		for _, ro := range rawOps {
			ops = append(ops, opName(ro))
		}
		return &pyast.Compare{NodeInfo: info, Left: left, Ops: ops, Comparators: comparators}, nil

	case "Call":
		fn, err := decodeExpr(o["func"])
		if err != nil {
			return nil, err
		}
		args, err := exprList(o["args"])
		if err != nil {
			return nil, err
		}
		rawKeywords, err := rawList(o["keywords"])
		if err != nil {
			return nil, err
		}
		keywords := make([]*pyast.Keyword, 0, len(rawKeywords))
		for _, rk := range rawKeywords {
			kw, err := decodeKeyword(rk)
			if err != nil {
				return nil, err
			}
			keywords = append(keywords, kw)
		}
		return &pyast.Call{NodeInfo: info, Func: fn, Args: args, Keywords: keywords}, nil

	case "Attribute":
		value, err := decodeExpr(o["value"])
		if err != nil {
			return nil, err
		}
		return &pyast.Attribute{NodeInfo: info, Value: value, Attr: str(o, "attr")}, nil

	case "Name":
		return &pyast.Name{NodeInfo: info, ID: str(o, "id")}, nil

	case "Constant":
		return decodeConstant(o, info)
	case "Str":
		return &pyast.Str{NodeInfo: info, Value: str(o, "s")}, nil
	case "Num":
		return &pyast.Num{NodeInfo: info, Value: string(o["n"])}, nil
	case "NameConstant":
		return decodeConstant(o, info)
	case "Ellipsis":
		return &pyast.Const{NodeInfo: info, Value: pyast.ConstEllipsis}, nil

	case "Yield":
		value, err := decodeExprOrNil(o["value"])
		if err != nil {
			return nil, err
		}
		return &pyast.Yield{NodeInfo: info, Value: value}, nil
	case "YieldFrom":
		value, err := decodeExpr(o["value"])
		if err != nil {
			return nil, err
		}
		return &pyast.Yield{NodeInfo: info, Value: value, From: true}, nil

	case "Tuple":
		elts, err := exprList(o["elts"])
		if err != nil {
			return nil, err
		}
		return &pyast.Tuple{NodeInfo: info, Elts: elts}, nil
	case "List":
		elts, err := exprList(o["elts"])
		if err != nil {
			return nil, err
		}
		return &pyast.List{NodeInfo: info, Elts: elts}, nil
	case "Set":
		elts, err := exprList(o["elts"])
		if err != nil {
			return nil, err
		}
		return &pyast.Set{NodeInfo: info, Elts: elts}, nil

	case "Dict":
		keys, err := exprList(o["keys"])
		if err != nil {
			return nil, err
		}
		values, err := exprList(o["values"])
		if err != nil {
			return nil, err
		}
		return &pyast.Dict{NodeInfo: info, Keys: keys, Values: values}, nil

	case "Starred":
		value, err := decodeExpr(o["value"])
		if err != nil {
			return nil, err
		}
		return &pyast.Starred{NodeInfo: info, Value: value}, nil

	case "Subscript":
		value, err := decodeExpr(o["value"])
		if err != nil {
			return nil, err
		}
		index, err := decodeExprOrNil(o["slice"])
		if err != nil {
			// Extended slices fall outside the expression vocabulary;
			// positions still matter, the index does not.
			index = nil
		}
		return &pyast.Subscript{NodeInfo: info, Value: value, Index: index}, nil

	case "ListComp":
		elt, gens, err := decodeCompParts(o)
		if err != nil {
			return nil, err
		}
		return &pyast.ListComp{NodeInfo: info, Elt: elt, Generators: gens}, nil
	case "SetComp":
		elt, gens, err := decodeCompParts(o)
		if err != nil {
			return nil, err
		}
		return &pyast.SetComp{NodeInfo: info, Elt: elt, Generators: gens}, nil
	case "GeneratorExp":
		elt, gens, err := decodeCompParts(o)
		if err != nil {
			return nil, err
		}
		return &pyast.GeneratorExp{NodeInfo: info, Elt: elt, Generators: gens}, nil
	case "DictComp":
		key, err := decodeExpr(o["key"])
		if err != nil {
			return nil, err
		}
		value, err := decodeExpr(o["value"])
		if err != nil {
			return nil, err
		}
		gens, err := decodeGenerators(o["generators"])
		if err != nil {
			return nil, err
		}
		return &pyast.DictComp{NodeInfo: info, Key: key, Value: value, Generators: gens}, nil

	default:
		return nil, fmt.Errorf("%w: expression %q", ErrUnsupported, t)
	}
}

func decodeConstant(o object, info pyast.NodeInfo) (pyast.Expr, error) {
	raw := o["value"]
	if len(raw) == 0 || string(raw) == "null" {
		return &pyast.Const{NodeInfo: info, Value: pyast.ConstNone}, nil
	}
	switch string(raw) {
	case "true":
		return &pyast.Const{NodeInfo: info, Value: pyast.ConstTrue}, nil
	case "false":
		return &pyast.Const{NodeInfo: info, Value: pyast.ConstFalse}, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "Ellipsis" && str(o, "kind") == "" && looksLikeEllipsis(o) {
			return &pyast.Const{NodeInfo: info, Value: pyast.ConstEllipsis}, nil
		}
		return &pyast.Str{NodeInfo: info, Value: s}, nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &pyast.Num{NodeInfo: info, Value: string(raw)}, nil
	}
	return nil, fmt.Errorf("%w: constant value %s", ErrBadInput, raw)
}

// looksLikeEllipsis distinguishes a literal "..." from the string
// "Ellipsis" via the exporter's constant_type hint when present.
func looksLikeEllipsis(o object) bool {
	return str(o, "constant_type") == "ellipsis"
}

func decodeCompParts(o object) (pyast.Expr, []*pyast.Comprehension, error) {
	elt, err := decodeExpr(o["elt"])
	if err != nil {
		return nil, nil, err
	}
	gens, err := decodeGenerators(o["generators"])
	if err != nil {
		return nil, nil, err
	}
	return elt, gens, nil
}

func decodeGenerators(raw json.RawMessage) ([]*pyast.Comprehension, error) {
	items, err := rawList(raw)
	if err != nil {
		return nil, err
	}
	out := make([]*pyast.Comprehension, 0, len(items))
	for _, item := range items {
		o, err := parseObject(item)
		if err != nil {
			return nil, err
		}
		target, err := decodeExpr(o["target"])
		if err != nil {
			return nil, err
		}
		iter, err := decodeExpr(o["iter"])
		if err != nil {
			return nil, err
		}
		ifs, err := exprList(o["ifs"])
		if err != nil {
			return nil, err
		}
		async := string(o["is_async"]) == "1" || string(o["is_async"]) == "true"
		out = append(out, &pyast.Comprehension{
			NodeInfo: nodeInfo(o),
			Target:   target, Iter: iter, Ifs: ifs, Async: async,
		})
	}
	return out, nil
}

func decodeArguments(raw json.RawMessage) (*pyast.Arguments, error) {
	o, err := parseObject(raw)
	if err != nil {
		return nil, err
	}
	args := &pyast.Arguments{NodeInfo: nodeInfo(o)}

	// posonlyargs precede args in the signature; the rules treat them
	// uniformly as positional parameters.
	for _, key := range []string{"posonlyargs", "args"} {
		items, err := rawList(o[key])
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			a, err := decodeArg(item)
			if err != nil {
				return nil, err
			}
			args.Args = append(args.Args, a)
		}
	}

	items, err := rawList(o["kwonlyargs"])
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		a, err := decodeArg(item)
		if err != nil {
			return nil, err
		}
		args.KwOnlyArgs = append(args.KwOnlyArgs, a)
	}

	if args.Defaults, err = exprList(o["defaults"]); err != nil {
		return nil, err
	}
	if args.KwDefaults, err = exprList(o["kw_defaults"]); err != nil {
		return nil, err
	}

	if len(o["vararg"]) > 0 && string(o["vararg"]) != "null" {
		if args.Vararg, err = decodeArg(o["vararg"]); err != nil {
			return nil, err
		}
	}
	if len(o["kwarg"]) > 0 && string(o["kwarg"]) != "null" {
		if args.Kwarg, err = decodeArg(o["kwarg"]); err != nil {
			return nil, err
		}
	}
	return args, nil
}

func decodeArg(raw json.RawMessage) (*pyast.Arg, error) {
	o, err := parseObject(raw)
	if err != nil {
		return nil, err
	}
	return &pyast.Arg{NodeInfo: nodeInfo(o), Name: str(o, "arg")}, nil
}

func decodeKeyword(raw json.RawMessage) (*pyast.Keyword, error) {
	o, err := parseObject(raw)
	if err != nil {
		return nil, err
	}
	value, err := decodeExpr(o["value"])
	if err != nil {
		return nil, err
	}
	return &pyast.Keyword{NodeInfo: nodeInfo(o), Name: str(o, "arg"), Value: value}, nil
}

func decodeWithItem(raw json.RawMessage) (*pyast.WithItem, error) {
	o, err := parseObject(raw)
	if err != nil {
		return nil, err
	}
	ctx, err := decodeExpr(o["context_expr"])
	if err != nil {
		return nil, err
	}
	as, err := decodeExprOrNil(o["optional_vars"])
	if err != nil {
		return nil, err
	}
	return &pyast.WithItem{NodeInfo: nodeInfo(o), Context: ctx, As: as}, nil
}

func decodeExceptHandler(raw json.RawMessage) (*pyast.ExceptHandler, error) {
	o, err := parseObject(raw)
	if err != nil {
		return nil, err
	}
	typ, err := decodeExprOrNil(o["type"])
	if err != nil {
		return nil, err
	}
	body, err := stmtList(o["body"])
	if err != nil {
		return nil, err
	}
	name := str(o, "name")
	return &pyast.ExceptHandler{NodeInfo: nodeInfo(o), Type: typ, Name: name, Body: body}, nil
}

func decodeAliases(raw json.RawMessage) ([]pyast.ImportAlias, error) {
	items, err := rawList(raw)
	if err != nil {
		return nil, err
	}
	out := make([]pyast.ImportAlias, 0, len(items))
	for _, item := range items {
		o, err := parseObject(item)
		if err != nil {
			return nil, err
		}
		out = append(out, pyast.ImportAlias{Name: str(o, "name"), AsName: str(o, "asname")})
	}
	return out, nil
}

func opName(raw json.RawMessage) string {
	o, err := parseObject(raw)
	if err != nil {
		// Some exporters emit operator names as plain strings.
		var s string
		if json.Unmarshal(raw, &s) == nil {
			return s
		}
		return ""
	}
	return typeName(o)
}

func unaryOp(name string) pyast.UnaryOpKind {
	switch name {
	case "UAdd":
		return pyast.OpUAdd
	case "USub":
		return pyast.OpUSub
	case "Not":
		return pyast.OpNot
	default:
		return pyast.OpInvert
	}
}

// ParseLineDirectives extracts "line:codes" suppression pairs in the
// compact form the host's dump tool emits alongside trees, e.g.
// "12:B006,B008" or "40:*". It backs the --suppress flag.
func ParseLineDirectives(pairs []string) (map[int][]string, error) {
	out := make(map[int][]string, len(pairs))
	for _, pair := range pairs {
		lineStr, codes, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("%w: suppression %q, want line:codes", ErrBadInput, pair)
		}
		line, err := strconv.Atoi(lineStr)
		if err != nil || line < 1 {
			return nil, fmt.Errorf("%w: suppression line %q", ErrBadInput, lineStr)
		}
		for _, code := range strings.Split(codes, ",") {
			if code != "" {
				out[line] = append(out[line], code)
			}
		}
	}
	return out, nil
}
