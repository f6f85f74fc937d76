package ast

import "github.com/JoshCheek/ast-editing/ast/ipath"

// Equal reports whether a and b are structurally equal: same tags, same
// leaf text and equal children in every slot.
func Equal(a, b Node) bool {
	aNil, bNil := isAbsent(a), isAbsent(b)
	if aNil || bNil {
		return aNil == bNil
	}
	if a.Tag() != b.Tag() {
		return false
	}
	if a.Tag() == LeafTag {
		return a.(Leaf) == b.(Leaf)
	}
	n := a.Len()
	if n != b.Len() {
		return false
	}
	for i := range n {
		if !Equal(a.Child(i), b.Child(i)) {
			return false
		}
	}
	return true
}

// Visit walks n depth first, calling f before (isPost false) and after
// (isPost true) each node's children. Children are visited only when the
// pre call returns true. Nil slots are skipped; leaves are visited.
func Visit(n Node, f func(n Node, p ipath.Path, isPost bool) (bool, error)) error {
	return visit(n, ipath.Root(), f)
}

func visit(n Node, p ipath.Path, f func(Node, ipath.Path, bool) (bool, error)) error {
	if isAbsent(n) {
		return nil
	}
	dive, err := f(n, p, false)
	if err != nil {
		return err
	}
	if dive {
		for i := range n.Len() {
			if err := visit(n.Child(i), p.Append(i), f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, p, true); err != nil {
		return err
	}
	return nil
}

// SelectedPaths returns the locations of all Selected nodes in n.
func SelectedPaths(n Node) []ipath.Path {
	var res []ipath.Path
	_ = Visit(n, func(y Node, p ipath.Path, isPost bool) (bool, error) {
		if !isPost && y.Tag() == SelectedTag {
			res = append(res, p)
		}
		return true, nil
	})
	return res
}
