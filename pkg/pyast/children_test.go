package pyast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFixture returns a tree touching most composite node shapes:
//
//	def f(a, b=[]):
//	    try:
//	        for x in items:
//	            d = {k: v}
//	    except ValueError as e:
//	        raise
//	    finally:
//	        pass
func buildFixture() *Module {
	fn := &FunctionDef{
		Name: "f",
		Args: &Arguments{
			Args:     []*Arg{{Name: "a"}, {Name: "b"}},
			Defaults: []Expr{&List{}},
		},
		Body: []Stmt{
			&Try{
				Body: []Stmt{
					&For{
						Target: &Name{ID: "x"},
						Iter:   &Name{ID: "items"},
						Body: []Stmt{
							&Assign{
								Targets: []Expr{&Name{ID: "d"}},
								Value: &Dict{
									Keys:   []Expr{&Name{ID: "k"}},
									Values: []Expr{&Name{ID: "v"}},
								},
							},
						},
					},
				},
				Handlers: []*ExceptHandler{{
					Type: &Name{ID: "ValueError"},
					Name: "e",
					Body: []Stmt{&Raise{}},
				}},
				Final: []Stmt{&Pass{}},
			},
		},
	}
	return &Module{Body: []Stmt{fn}}
}

func flatten(n Node) []Kind {
	kinds := []Kind{n.Kind()}
	for _, c := range ChildNodes(n) {
		kinds = append(kinds, flatten(c)...)
	}
	return kinds
}

func TestChildNodesDeterministic(t *testing.T) {
	first := flatten(buildFixture())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, flatten(buildFixture()))
	}
}

func TestChildNodesSourceOrder(t *testing.T) {
	mod := buildFixture()
	fn, ok := mod.Body[0].(*FunctionDef)
	require.True(t, ok)

	kids := ChildNodes(fn)
	require.Len(t, kids, 2, "arguments then body")
	assert.Equal(t, KindArguments, kids[0].Kind())
	assert.Equal(t, KindTry, kids[1].Kind())

	try := kids[1].(*Try)
	tryKids := ChildNodes(try)
	require.Len(t, tryKids, 3)
	assert.Equal(t, KindFor, tryKids[0].Kind())
	assert.Equal(t, KindExceptHandler, tryKids[1].Kind())
	assert.Equal(t, KindPass, tryKids[2].Kind())
}

func TestChildNodesDictInterleavesPairs(t *testing.T) {
	d := &Dict{
		Keys:   []Expr{&Name{ID: "a"}, nil},
		Values: []Expr{&Num{Value: "1"}, &Name{ID: "rest"}},
	}
	kids := ChildNodes(d)
	require.Len(t, kids, 3, "nil key of a ** expansion is skipped")
	assert.Equal(t, KindName, kids[0].Kind())
	assert.Equal(t, KindNum, kids[1].Kind())
	assert.Equal(t, KindName, kids[2].Kind())
}

func TestChildNodesLeavesHaveNone(t *testing.T) {
	for _, leaf := range []Node{
		&Name{ID: "x"},
		&Str{Value: "s"},
		&Num{Value: "1"},
		&Const{Value: ConstNone},
		&Pass{},
		&Break{},
		&Continue{},
		&Global{Names: []string{"g"}},
		&Import{Names: []ImportAlias{{Name: "os"}}},
	} {
		assert.Empty(t, ChildNodes(leaf), "kind %s", leaf.Kind())
	}
}

func TestKindIsScopeKind(t *testing.T) {
	scoped := []Kind{
		KindModule, KindFunctionDef, KindClassDef, KindLambda,
		KindListComp, KindSetComp, KindDictComp, KindGeneratorExp,
	}
	for _, k := range scoped {
		assert.True(t, k.IsScopeKind(), "kind %s", k)
	}
	for _, k := range []Kind{KindFor, KindWhile, KindIf, KindTry, KindCall, KindName} {
		assert.False(t, k.IsScopeKind(), "kind %s", k)
	}
}
