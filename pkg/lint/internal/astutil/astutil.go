// Package astutil provides small traversal helpers shared by the rule
// implementations. Everything here is read-only over the tree.
package astutil

import (
	"strings"

	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// Walk visits the subtree rooted at n in pre-order. The callback returns
// false to skip the node's children.
func Walk(n pyast.Node, fn func(pyast.Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range pyast.ChildNodes(n) {
		Walk(c, fn)
	}
}

// WalkShallow is Walk restricted to the current scope: it does not
// descend into nested scope-introducing nodes (function and class
// definitions, lambdas, comprehensions). The root itself is visited even
// when it introduces a scope.
func WalkShallow(n pyast.Node, fn func(pyast.Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range pyast.ChildNodes(n) {
		walkShallowChild(c, fn)
	}
}

func walkShallowChild(n pyast.Node, fn func(pyast.Node) bool) {
	if n.Kind().IsScopeKind() {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range pyast.ChildNodes(n) {
		walkShallowChild(c, fn)
	}
}

// CollectNames returns every Name node in the subtree, in traversal order.
func CollectNames(n pyast.Node) []*pyast.Name {
	var names []*pyast.Name
	Walk(n, func(c pyast.Node) bool {
		if name, ok := c.(*pyast.Name); ok {
			names = append(names, name)
		}
		return true
	})
	return names
}

// CallPath composes the dotted path of an attribute access or call target,
// e.g. the expression os.path.join yields "os.path.join". It returns ""
// when the chain bottoms out in something other than a plain name, such
// as a call or subscript result.
func CallPath(e pyast.Expr) string {
	var parts []string
	for {
		switch t := e.(type) {
		case *pyast.Attribute:
			parts = append(parts, t.Attr)
			e = t.Value
		case *pyast.Name:
			parts = append(parts, t.ID)
			for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
				parts[i], parts[j] = parts[j], parts[i]
			}
			return strings.Join(parts, ".")
		default:
			return ""
		}
	}
}

// BoundNames flattens an assignment or loop target into the names it
// binds, ignoring attribute and subscript targets.
func BoundNames(target pyast.Expr) []*pyast.Name {
	var names []*pyast.Name
	var collect func(e pyast.Expr)
	collect = func(e pyast.Expr) {
		switch t := e.(type) {
		case *pyast.Name:
			names = append(names, t)
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
	return names
}
