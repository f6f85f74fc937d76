// Package ruby renders trees in Ruby syntax: keyword delimited blocks,
// "::" qualified constants and "@name" instance variables.
package ruby

import (
	"github.com/JoshCheek/ast-editing/ast"
	"github.com/JoshCheek/ast-editing/render"
)

type Dialect struct{}

var _ render.Dialect = Dialect{}

// New returns a Renderer for Ruby.
func New() *render.Renderer { return render.New(Dialect{}) }

func (Dialect) Name() string { return "ruby" }

func commaSep(b *render.Builder) { b.Punct(", ") }

func end(b *render.Builder) { b.Keyword("end") }

func (Dialect) Begin(r *render.Renderer, n *ast.Begin, classes []string, key int) (*render.Fragment, error) {
	b := r.Build(n.Tag(), classes, key)
	for i, stmt := range n.Statements() {
		b.Block(func(b *render.Builder) { b.Node(stmt, i) })
	}
	return b.Fragment()
}

func (Dialect) StringLiteral(r *render.Renderer, n *ast.StringLiteral, classes []string, key int) (*render.Fragment, error) {
	return r.Build(n.Tag(), classes, key).
		Punct(`"`).Node(n.Value(), 0).Punct(`"`).
		Fragment()
}

func (Dialect) SymbolLiteral(r *render.Renderer, n *ast.SymbolLiteral, classes []string, key int) (*render.Fragment, error) {
	return r.Build(n.Tag(), classes, key).
		Punct(":").Node(n.Value(), 0).
		Fragment()
}

func (Dialect) Call(r *render.Renderer, n *ast.Call, classes []string, key int) (*render.Fragment, error) {
	b := r.Build(n.Tag(), classes, key)
	if n.Receiver() != nil {
		b.Node(n.Receiver(), 0, "receiver").Punct(".")
	}
	return b.Node(n.Message(), 1, "message").
		Punct("(").Node(n.Args(), 2).Punct(")").
		Fragment()
}

func (Dialect) ArgList(r *render.Renderer, n *ast.ArgList, classes []string, key int) (*render.Fragment, error) {
	return r.Build(n.Tag(), append([]string{"args"}, classes...), key).
		Each(n, commaSep).
		Fragment()
}

func (Dialect) ClassDef(r *render.Renderer, n *ast.ClassDef, classes []string, key int) (*render.Fragment, error) {
	return r.Build(n.Tag(), classes, key).
		Block(func(b *render.Builder) {
			b.Keyword("class").Space().Node(n.Constant(), 0, "constant")
			if n.Superclass() != nil {
				b.Punct(" < ").Node(n.Superclass(), 1, "superclass")
			}
		}).
		Node(n.Body(), 2, "body").
		Block(end).
		Fragment()
}

func (Dialect) ModuleDef(r *render.Renderer, n *ast.ModuleDef, classes []string, key int) (*render.Fragment, error) {
	return r.Build(n.Tag(), classes, key).
		Block(func(b *render.Builder) {
			b.Keyword("module").Space().Node(n.Constant(), 0, "constant")
		}).
		Node(n.Body(), 1, "body").
		Block(end).
		Fragment()
}

func (Dialect) Constant(r *render.Renderer, n *ast.Constant, classes []string, key int) (*render.Fragment, error) {
	b := r.Build(n.Tag(), classes, key)
	if n.Namespace() != nil {
		b.Node(n.Namespace(), 0, "namespace").Punct("::")
	}
	return b.Node(n.Name(), 1, "name").Fragment()
}

func (Dialect) MethodDef(r *render.Renderer, n *ast.MethodDef, classes []string, key int) (*render.Fragment, error) {
	params := ast.Unwrap(n.Params())
	parens := params != nil && params.Len() > 0
	return r.Build(n.Tag(), classes, key).
		Block(func(b *render.Builder) {
			b.Keyword("def").Space().Node(n.Message(), 0, "message")
			if parens {
				b.Punct("(")
			}
			b.Node(n.Params(), 1)
			if parens {
				b.Punct(")")
			}
		}).
		Node(n.Body(), 2, "body").
		Block(end).
		Fragment()
}

func (Dialect) ParamList(r *render.Renderer, n *ast.ParamList, classes []string, key int) (*render.Fragment, error) {
	return r.Build(n.Tag(), append([]string{"params"}, classes...), key).
		Each(n, commaSep).
		Fragment()
}

func (Dialect) Assign(r *render.Renderer, n *ast.Assign, classes []string, key int) (*render.Fragment, error) {
	return r.Build(n.Tag(), classes, key).
		Block(func(b *render.Builder) {
			b.Node(n.LHS(), 0, "lhs").Punct(" = ").Node(n.RHS(), 1, "rhs")
		}).
		Fragment()
}

func (Dialect) InstanceVarRef(r *render.Renderer, n *ast.InstanceVarRef, classes []string, key int) (*render.Fragment, error) {
	return r.Build(n.Tag(), classes, key).
		Punct("@").Node(n.Name(), 0).
		Fragment()
}

func (Dialect) LocalVarRef(r *render.Renderer, n *ast.LocalVarRef, classes []string, key int) (*render.Fragment, error) {
	return r.Build(n.Tag(), classes, key).Node(n.Name(), 0).Fragment()
}

func (Dialect) CaseExpr(r *render.Renderer, n *ast.CaseExpr, classes []string, key int) (*render.Fragment, error) {
	return r.Build(n.Tag(), classes, key).
		Block(func(b *render.Builder) {
			b.Keyword("case").Space().Node(n.Condition(), 0, "condition")
		}).
		Node(n.WhenClauses(), 1, "displayBlock").
		Block(end).
		Fragment()
}

func (Dialect) WhenClauseList(r *render.Renderer, n *ast.WhenClauseList, classes []string, key int) (*render.Fragment, error) {
	return r.Build(n.Tag(), classes, key).
		Each(n, nil, "displayBlock").
		Fragment()
}

func (Dialect) WhenClause(r *render.Renderer, n *ast.WhenClause, classes []string, key int) (*render.Fragment, error) {
	return r.Build(n.Tag(), classes, key).
		Block(func(b *render.Builder) {
			b.Keyword("when").Space().Node(n.Condition(), 0, "condition")
		}).
		Node(n.Body(), 1, "body").
		Fragment()
}

func (Dialect) CurrentInstanceRef(r *render.Renderer, n *ast.CurrentInstanceRef, classes []string, key int) (*render.Fragment, error) {
	return r.Build(n.Tag(), classes, key).Keyword("self").Fragment()
}

func (Dialect) ReturnStmt(r *render.Renderer, n *ast.ReturnStmt, classes []string, key int) (*render.Fragment, error) {
	b := r.Build(n.Tag(), classes, key).Keyword("return")
	if n.Value() != nil {
		b.Space().Node(n.Value(), 0, "returnValue")
	}
	return b.Fragment()
}
