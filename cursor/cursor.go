// Package cursor moves a selection around an immutable ast tree and applies
// structural edits at it.
//
// A State pairs a canonical root with the path of the selected location.
// Every operation returns a new State; neither the receiver nor its root is
// ever modified, so callers may keep old states as history. The tree shown
// to a user, with the selection marked, is derived on demand by Selected
// and is never fed back into edits.
package cursor

import (
	"fmt"

	"github.com/JoshCheek/ast-editing/ast"
	"github.com/JoshCheek/ast-editing/ast/ipath"
	"github.com/JoshCheek/ast-editing/debug"
)

type State struct {
	Root ast.Node
	Path ipath.Path
}

// New returns a state selecting the root.
func New(root ast.Node) State {
	return State{Root: root, Path: ipath.Root()}
}

// At returns a state selecting the clamped location p of root.
func At(root ast.Node, p ipath.Path) State {
	return State{Root: root, Path: ast.Clamp(root, p)}
}

// Node returns the selected node, nil when the selection is on an absent
// child or an insertion point.
func (s State) Node() ast.Node {
	return ast.Get(s.Root, s.Path)
}

// MoveIn descends to the first child of the selected node. For a fixed
// shape that is the first slot holding a tagged node, falling back to the
// first occupied slot; for a list it is index 0, which is the insertion
// point of an empty list. Selections that cannot descend stay put.
func (s State) MoveIn() State {
	return s.moved("in", s.Path.Append(firstChild(s.Node())))
}

func firstChild(n ast.Node) int {
	if n == nil || n.Tag().IsVariadic() {
		return 0
	}
	occupied := -1
	for i := range n.Len() {
		c := n.Child(i)
		if c == nil {
			continue
		}
		if c.Tag() != ast.LeafTag {
			return i
		}
		if occupied == -1 {
			occupied = i
		}
	}
	if occupied == -1 {
		return 0
	}
	return occupied
}

// MoveOut ascends to the parent. At the root it does nothing.
func (s State) MoveOut() State {
	if s.Path.IsRoot() {
		return s
	}
	return s.moved("out", s.Path.Parent())
}

// MoveNext selects the next sibling, wrapping past the last to the first.
func (s State) MoveNext() State {
	i, ok := s.Path.Last()
	if !ok {
		return s
	}
	return s.moved("next", s.Path.WithLast(i+1))
}

// MovePrev selects the previous sibling, wrapping past the first to the
// last.
func (s State) MovePrev() State {
	i, ok := s.Path.Last()
	if !ok {
		return s
	}
	return s.moved("prev", s.Path.WithLast(i-1))
}

// Goto selects the clamped location p.
func (s State) Goto(p ipath.Path) State {
	return s.moved("goto", p)
}

func (s State) moved(how string, p ipath.Path) State {
	res := State{Root: s.Root, Path: ast.Clamp(s.Root, p)}
	if debug.Cursor() {
		debug.Logf("cursor %s: %s -> %s (asked %s)\n", how, s.Path, res.Path, p)
	}
	return res
}

// InsertArg appends an empty leaf to the list containing the selection
// and selects it. When the selection's parent is not a list the state is
// returned unchanged.
func (s State) InsertArg() State {
	if s.Path.IsRoot() {
		return s
	}
	parentPath := s.Path.Parent()
	parent := ast.Get(s.Root, parentPath)
	if parent == nil || !parent.Tag().IsVariadic() {
		if debug.Cursor() {
			debug.Logf("cursor insert: parent of %s is not a list\n", s.Path)
		}
		return s
	}
	root, err := ast.ReplaceAt(s.Root, parentPath, func(n ast.Node) ast.Node {
		return ast.MustMake(n.Tag(), append(ast.Children(n), ast.Leaf(""))...)
	})
	if err != nil {
		if debug.Cursor() {
			debug.Logf("cursor insert at %s: %v\n", s.Path, err)
		}
		return s
	}
	p := parentPath.Append(parent.Len())
	if debug.Cursor() {
		debug.Logf("cursor insert: %s -> %s\n", s.Path, p)
	}
	return State{Root: root, Path: p}
}

// Selected derives the tree to display: Root with the selected location
// wrapped in an ast.Selected node. The selection wraps nil when it sits on
// an absent child or an insertion point. Root itself must not already
// carry a selection.
func (s State) Selected() (ast.Node, error) {
	if ps := ast.SelectedPaths(s.Root); len(ps) != 0 {
		return nil, fmt.Errorf("%w: root already has a selection at %s", ast.ErrShapeMismatch, ps[0])
	}
	return ast.ReplaceAt(s.Root, s.Path, func(n ast.Node) ast.Node {
		return ast.NewSelected(n)
	})
}
