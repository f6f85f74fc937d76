package astedit

import (
	"context"
	"slices"

	"github.com/JoshCheek/ast-editing/ast"
	"github.com/JoshCheek/ast-editing/ast/ipath"
	"github.com/JoshCheek/ast-editing/cursor"
	"github.com/JoshCheek/ast-editing/query"
	"github.com/JoshCheek/ast-editing/render"
	"github.com/JoshCheek/ast-editing/syntax"
)

// Editor is an editing session over one tree. Commands are applied one at
// a time; an Editor must not be used from several goroutines at once.
type Editor struct {
	state    cursor.State
	syntaxes []syntax.Syntax
}

type EditorOption func(*Editor)

// EditorSyntaxes sets the syntaxes Render produces, in order. The default
// is syntax.AllSyntaxes.
func EditorSyntaxes(s ...syntax.Syntax) EditorOption {
	return func(e *Editor) { e.syntaxes = slices.Clone(s) }
}

// EditorAt starts the session at the clamped path p instead of the root.
func EditorAt(p ipath.Path) EditorOption {
	return func(e *Editor) { e.state = e.state.Goto(p) }
}

func NewEditor(root ast.Node, opts ...EditorOption) *Editor {
	e := &Editor{state: cursor.New(root), syntaxes: syntax.AllSyntaxes()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Editor) State() cursor.State { return e.state }

func (e *Editor) Root() ast.Node { return e.state.Root }

func (e *Editor) Path() ipath.Path { return e.state.Path }

// Do applies cmds in order and returns the resulting state.
func (e *Editor) Do(cmds ...cursor.Command) cursor.State {
	e.state = e.state.Run(cmds...)
	return e.state
}

func (e *Editor) Goto(p ipath.Path) cursor.State {
	e.state = e.state.Goto(p)
	return e.state
}

// Seek moves to the next node after the current selection, in document
// order and wrapping around, that the query src holds for. It reports
// whether there was one; without a match the selection is unchanged.
func (e *Editor) Seek(src string) (bool, error) {
	ps, err := query.Find(e.state.Root, src)
	if err != nil {
		return false, err
	}
	if len(ps) == 0 {
		return false, nil
	}
	next := ps[0]
	for _, p := range ps {
		if ipath.Compare(p, e.state.Path) > 0 {
			next = p
			break
		}
	}
	e.state = e.state.Goto(next)
	return true, nil
}

// View is the rendering of the selected tree in one syntax.
type View struct {
	Syntax   syntax.Syntax
	Fragment *render.Fragment
}

// Render renders the selected tree in each of the session's syntaxes.
func (e *Editor) Render(ctx context.Context) ([]View, error) {
	sel, err := e.state.Selected()
	if err != nil {
		return nil, err
	}
	fs, err := RenderAll(ctx, sel, e.syntaxes...)
	if err != nil {
		return nil, err
	}
	res := make([]View, len(fs))
	for i, f := range fs {
		res[i] = View{Syntax: e.syntaxes[i], Fragment: f}
	}
	return res, nil
}
