// Package render turns an ast tree into a Fragment tree for one surface
// syntax.
//
// A Renderer walks the tree and hands each node to its Dialect, which
// lays the node out with keywords, punctuation and the fragments of its
// children. Every fragment that renders a node is labelled with the
// classes inherited from its parent's layout followed by "Ast" and the
// node's tag, so a presentation layer can style by structural role.
//
// Selection markers are handled here, not by dialects: a marker around a
// node renders that node with the extra class "selected", and an empty
// marker renders a node fragment holding a single cursor placeholder.
package render

import (
	"fmt"
	"slices"

	"github.com/JoshCheek/ast-editing/ast"
	"github.com/JoshCheek/ast-editing/debug"
)

// Renderer dispatches nodes to a Dialect. It holds no state besides the
// dialect and may be used concurrently.
type Renderer struct {
	d Dialect
}

func New(d Dialect) *Renderer {
	return &Renderer{d: d}
}

func (r *Renderer) Dialect() Dialect { return r.d }

// Render renders a whole tree. A nil tree renders to a nil fragment.
func (r *Renderer) Render(n ast.Node) (*Fragment, error) {
	f, err := r.Node(n, nil, 0)
	if err != nil {
		if debug.Render() {
			debug.Logf("render %s: %v\n", r.d.Name(), err)
		}
		return nil, err
	}
	return f, nil
}

// Node renders n with the given inherited classes and position key.
// Absent nodes render to nil without error.
func (r *Renderer) Node(n ast.Node, classes []string, key int) (*Fragment, error) {
	if ast.Get(n, nil) == nil { // also catches typed nil pointers
		return nil, nil
	}
	switch x := n.(type) {
	case ast.Leaf:
		return &Fragment{Kind: TextKind, Classes: slices.Clone(classes), Key: key, Text: string(x)}, nil
	case *ast.Selected:
		return r.selected(x, classes, key)
	case *ast.Begin:
		return present(r.d.Begin(r, x, classes, key))
	case *ast.StringLiteral:
		return present(r.d.StringLiteral(r, x, classes, key))
	case *ast.SymbolLiteral:
		return present(r.d.SymbolLiteral(r, x, classes, key))
	case *ast.Call:
		return present(r.d.Call(r, x, classes, key))
	case *ast.ArgList:
		return present(r.d.ArgList(r, x, classes, key))
	case *ast.ClassDef:
		return present(r.d.ClassDef(r, x, classes, key))
	case *ast.ModuleDef:
		return present(r.d.ModuleDef(r, x, classes, key))
	case *ast.Constant:
		return present(r.d.Constant(r, x, classes, key))
	case *ast.MethodDef:
		return present(r.d.MethodDef(r, x, classes, key))
	case *ast.ParamList:
		return present(r.d.ParamList(r, x, classes, key))
	case *ast.Assign:
		return present(r.d.Assign(r, x, classes, key))
	case *ast.InstanceVarRef:
		return present(r.d.InstanceVarRef(r, x, classes, key))
	case *ast.LocalVarRef:
		return present(r.d.LocalVarRef(r, x, classes, key))
	case *ast.CaseExpr:
		return present(r.d.CaseExpr(r, x, classes, key))
	case *ast.WhenClauseList:
		return present(r.d.WhenClauseList(r, x, classes, key))
	case *ast.WhenClause:
		return present(r.d.WhenClause(r, x, classes, key))
	case *ast.CurrentInstanceRef:
		return present(r.d.CurrentInstanceRef(r, x, classes, key))
	case *ast.ReturnStmt:
		return present(r.d.ReturnStmt(r, x, classes, key))
	}
	return nil, fmt.Errorf("%w: %s cannot render %T", ErrUnsupportedNodeKind, r.d.Name(), n)
}

func (r *Renderer) selected(s *ast.Selected, classes []string, key int) (*Fragment, error) {
	sc := make([]string, 0, len(classes)+1)
	sc = append(sc, "selected")
	sc = append(sc, classes...)
	if t := s.Target(); t != nil {
		return r.Node(t, sc, key)
	}
	return &Fragment{
		Kind:     NodeKind,
		Tag:      ast.SelectedTag,
		Classes:  NodeClasses(ast.SelectedTag, sc),
		Key:      key,
		Children: []*Fragment{Cursor()},
	}, nil
}

// present maps an error result to a nil fragment so handlers need not.
func present(f *Fragment, err error) (*Fragment, error) {
	if err != nil {
		return nil, err
	}
	return f, nil
}
