// Package ecma renders trees in an ECMAScript-like syntax: brace delimited
// blocks, "." qualified constants, "this.name" instance variables and
// symbols as Symbol.for calls.
package ecma

import (
	"github.com/JoshCheek/ast-editing/ast"
	"github.com/JoshCheek/ast-editing/render"
)

type Dialect struct{}

var _ render.Dialect = Dialect{}

func New() *render.Renderer { return render.New(Dialect{}) }

func (Dialect) Name() string { return "ecma" }

func commaSep(b *render.Builder) { b.Punct(", ") }

func closeBrace(b *render.Builder) { b.Punct("}") }

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
	return r.Node(render.DesugarSymbol(n), classes, key)
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
				b.Space().Keyword("extends").Space().Node(n.Superclass(), 1, "superclass")
			}
			b.Punct(" {")
		}).
		Node(n.Body(), 2, "body").
		Block(closeBrace).
		Fragment()
}

func (Dialect) ModuleDef(r *render.Renderer, n *ast.ModuleDef, classes []string, key int) (*render.Fragment, error) {
	return r.Build(n.Tag(), classes, key).
		Block(func(b *render.Builder) {
			b.Keyword("namespace").Space().Node(n.Constant(), 0, "constant").Punct(" {")
		}).
		Node(n.Body(), 1, "body").
		Block(closeBrace).
		Fragment()
}

func (Dialect) Constant(r *render.Renderer, n *ast.Constant, classes []string, key int) (*render.Fragment, error) {
	b := r.Build(n.Tag(), classes, key)
	if n.Namespace() != nil {
		b.Node(n.Namespace(), 0, "namespace").Punct(".")
	}
	return b.Node(n.Name(), 1, "name").Fragment()
}

func (Dialect) MethodDef(r *render.Renderer, n *ast.MethodDef, classes []string, key int) (*render.Fragment, error) {
	return r.Build(n.Tag(), classes, key).
		Block(func(b *render.Builder) {
			b.Node(n.Message(), 0, "message").
				Punct("(").Node(n.Params(), 1).Punct(") {")
		}).
		Node(n.Body(), 2, "body").
		Block(closeBrace).
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
		Keyword("this").Punct(".").Node(n.Name(), 0).
		Fragment()
}

func (Dialect) LocalVarRef(r *render.Renderer, n *ast.LocalVarRef, classes []string, key int) (*render.Fragment, error) {
	return r.Build(n.Tag(), classes, key).Node(n.Name(), 0).Fragment()
}

func (Dialect) CaseExpr(r *render.Renderer, n *ast.CaseExpr, classes []string, key int) (*render.Fragment, error) {
	return r.Build(n.Tag(), classes, key).
		Block(func(b *render.Builder) {
			b.Keyword("switch").Punct(" (").Node(n.Condition(), 0, "condition").Punct(") {")
		}).
		Node(n.WhenClauses(), 1, "body").
		Block(closeBrace).
		Fragment()
}

func (Dialect) WhenClauseList(r *render.Renderer, n *ast.WhenClauseList, classes []string, key int) (*render.Fragment, error) {
	return r.Build(n.Tag(), classes, key).
		Each(n, nil, "displayBlock").
		Fragment()
}

// WhenClause renders a case label; the body and its break are indented
// under it.
func (Dialect) WhenClause(r *render.Renderer, n *ast.WhenClause, classes []string, key int) (*render.Fragment, error) {
	return r.Build(n.Tag(), classes, key).
		Block(func(b *render.Builder) {
			b.Keyword("case").Space().Node(n.Condition(), 0, "condition").Punct(":")
		}).
		Node(n.Body(), 1, "body").
		Group([]string{"body"}, func(b *render.Builder) {
			b.Block(func(b *render.Builder) { b.Keyword("break") })
		}).
		Fragment()
}

func (Dialect) CurrentInstanceRef(r *render.Renderer, n *ast.CurrentInstanceRef, classes []string, key int) (*render.Fragment, error) {
	return r.Build(n.Tag(), classes, key).Keyword("this").Fragment()
}

func (Dialect) ReturnStmt(r *render.Renderer, n *ast.ReturnStmt, classes []string, key int) (*render.Fragment, error) {
	b := r.Build(n.Tag(), classes, key).Keyword("return")
	if n.Value() != nil {
		b.Space().Node(n.Value(), 0, "returnValue")
	}
	return b.Fragment()
}
