package ast

import (
	"fmt"

	"github.com/JoshCheek/ast-editing/ast/ipath"
)

// Get returns the node addressed by p, or nil when any step is out of
// range or cannot descend. Absence is a result, not an error.
func Get(root Node, p ipath.Path) Node {
	n := root
	for _, i := range p {
		if isAbsent(n) || i < 0 || i >= n.Len() {
			return nil
		}
		n = n.Child(i)
	}
	if isAbsent(n) {
		return nil
	}
	return n
}

// Clamp repairs p against root, top down, and returns the repaired copy.
// At each step:
//
//   - a node that cannot be stepped into (absent, a leaf, or a node with
//     no slots) truncates the path there;
//   - an empty variadic node keeps index 0, its insertion point, and
//     truncates the rest;
//   - a negative index becomes the last valid index;
//   - an index past the end becomes 0.
//
// Clamp is idempotent.
func Clamp(root Node, p ipath.Path) ipath.Path {
	res := make(ipath.Path, 0, len(p))
	n := root
	for _, i := range p {
		if !IsTraversable(n) {
			break
		}
		l := n.Len()
		if l == 0 {
			res = append(res, 0)
			break
		}
		switch {
		case i < 0:
			i = l - 1
		case i >= l:
			i = 0
		}
		res = append(res, i)
		n = n.Child(i)
	}
	return res
}

// ReplaceAt returns a new root in which the node at p is replaced by
// fn(Get(root, p)). Every ancestor on p is rebuilt; all other subtrees are
// shared with root. With an empty p the result is fn(root).
//
// An index equal to the length of a variadic node is its insertion point:
// fn(nil) is appended there. Any other out of range step fails with
// ErrNoSuchPath, and a replacement that does not fit its slot fails with
// ErrShapeMismatch.
func ReplaceAt(root Node, p ipath.Path, fn func(Node) Node) (Node, error) {
	return replaceAt(root, p, 0, fn)
}

func replaceAt(n Node, p ipath.Path, depth int, fn func(Node) Node) (Node, error) {
	if depth == len(p) {
		return fn(present(n)), nil
	}
	if isAbsent(n) {
		return nil, fmt.Errorf("%w: %s: nothing at %s", ErrNoSuchPath, p, p[:depth])
	}
	i := p[depth]
	children := Children(n)
	switch {
	case 0 <= i && i < len(children):
		c, err := replaceAt(children[i], p, depth+1, fn)
		if err != nil {
			return nil, err
		}
		children[i] = c
	case i == len(children) && n.Tag().IsVariadic() && depth == len(p)-1:
		children = append(children, fn(nil))
	default:
		return nil, fmt.Errorf("%w: %s: index %d out of range for %s of length %d",
			ErrNoSuchPath, p, i, n.Tag(), len(children))
	}
	res, err := Make(n.Tag(), children...)
	if err != nil {
		return nil, fmt.Errorf("replacing %s: %w", p, err)
	}
	return res, nil
}

func present(n Node) Node {
	if isAbsent(n) {
		return nil
	}
	return n
}
