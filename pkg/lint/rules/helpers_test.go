package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/bearlint/internal/testutil"
	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/lint/rules"
	"github.com/leapstack-labs/bearlint/pkg/pyast"
	"github.com/leapstack-labs/bearlint/pkg/token"
)

// Tree construction shorthand. Positions matter for assertions, so every
// helper takes line and column.

func at(line, col int) pyast.NodeInfo {
	return pyast.NodeInfo{Span: token.Span{
		Start: token.Position{Line: line, Col: col, Offset: -1},
		End:   token.Position{Line: line, Col: col + 1, Offset: -1},
	}}
}

func name(line, col int, id string) *pyast.Name {
	return &pyast.Name{NodeInfo: at(line, col), ID: id}
}

func str(line, col int, s string) *pyast.Str {
	return &pyast.Str{NodeInfo: at(line, col), Value: s}
}

func call(line, col int, fn pyast.Expr, args ...pyast.Expr) *pyast.Call {
	return &pyast.Call{NodeInfo: at(line, col), Func: fn, Args: args}
}

func attr(line, col int, value pyast.Expr, name string) *pyast.Attribute {
	return &pyast.Attribute{NodeInfo: at(line, col), Value: value, Attr: name}
}

func exprStmt(line, col int, e pyast.Expr) *pyast.ExprStmt {
	return &pyast.ExprStmt{NodeInfo: at(line, col), Value: e}
}

func assign(line, col int, target pyast.Expr, value pyast.Expr) *pyast.Assign {
	return &pyast.Assign{NodeInfo: at(line, col), Targets: []pyast.Expr{target}, Value: value}
}

func def(line int, fname string, args *pyast.Arguments, body ...pyast.Stmt) *pyast.FunctionDef {
	if args == nil {
		args = &pyast.Arguments{NodeInfo: at(line, 4+len(fname))}
	}
	if len(body) == 0 {
		body = []pyast.Stmt{&pyast.Pass{NodeInfo: at(line+1, 4)}}
	}
	return &pyast.FunctionDef{NodeInfo: at(line, 0), Name: fname, Args: args, Body: body}
}

func params(line int, names ...string) *pyast.Arguments {
	args := &pyast.Arguments{NodeInfo: at(line, 6)}
	for i, n := range names {
		args.Args = append(args.Args, &pyast.Arg{NodeInfo: at(line, 6+i*3), Name: n})
	}
	return args
}

func module(stmts ...pyast.Stmt) *pyast.Module {
	return &pyast.Module{Body: stmts}
}

// analyze runs the full stock rule set over the module.
func analyze(t *testing.T, mod *pyast.Module, cfg *lint.Config) *lint.Report {
	t.Helper()
	analyzer := lint.NewAnalyzer(
		lint.MustNewRegistry(rules.All()),
		cfg,
		lint.WithLogger(testutil.NewTestLogger(t)),
	)
	report, err := analyzer.Analyze(mod, nil)
	require.NoError(t, err)
	return report
}

func codes(report *lint.Report) []string {
	out := make([]string, 0, len(report.Violations))
	for _, v := range report.Violations {
		out = append(out, v.Code)
	}
	return out
}

// only filters the report down to a single code; most fixtures trip
// exactly one rule but some legitimately trip neighbors too.
func only(report *lint.Report, code string) []lint.Violation {
	var out []lint.Violation
	for _, v := range report.Violations {
		if v.Code == code {
			out = append(out, v)
		}
	}
	return out
}
