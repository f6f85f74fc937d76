// Package query finds nodes in a tree with boolean expressions.
//
// An expression is evaluated once for every present node and leaf, in
// document order, and the paths of those it holds for are returned. It is
// written in the expr language (github.com/expr-lang/expr) and sees:
//
//	tag       tag name, "Leaf" for leaves
//	text      text of a leaf, "" otherwise
//	path      the node's path, such as "$[1][0]"
//	depth     number of steps from the root
//	index     position within the parent, -1 at the root
//	size      number of child slots
//	parent    tag name of the parent, "" at the root
//	field(n)  text of the leaf in the slot named n, or the tag name of a
//	          node there, or "" when there is none
//	child(i)  the same for slot i
//	variadic(t) whether tag t holds a list
//
// For example
//
//	tag == "MethodDef" && field("message") == "call"
//	parent == "ArgList" && index > 0
package query

import (
	"fmt"

	"github.com/JoshCheek/ast-editing/ast"
	"github.com/JoshCheek/ast-editing/ast/ipath"
	"github.com/JoshCheek/ast-editing/debug"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Query is a compiled expression. It may be used concurrently.
type Query struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Query, error) {
	opts := []expr.Option{
		expr.Env(env(ast.Leaf(""), ipath.Root(), nil)),
		expr.AsBool(),
	}
	opts = append(opts, funcs()...)
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrQuery, src, err)
	}
	if debug.Query() {
		debug.Logf("query compiled %q\n", src)
	}
	return &Query{src: src, prg: prg}, nil
}

func MustCompile(src string) *Query {
	q, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return q
}

func (q *Query) String() string { return q.src }

// Find returns the paths of nodes in root that q holds for.
func (q *Query) Find(root ast.Node) ([]ipath.Path, error) {
	var res []ipath.Path
	var parents []ast.Node
	err := ast.Visit(root, func(n ast.Node, p ipath.Path, isPost bool) (bool, error) {
		if isPost {
			parents = parents[:len(parents)-1]
			return false, nil
		}
		var parent ast.Node
		if len(parents) > 0 {
			parent = parents[len(parents)-1]
		}
		parents = append(parents, n)
		ok, err := q.Match(n, p, parent)
		if err != nil {
			return false, err
		}
		if ok {
			res = append(res, p)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if debug.Query() {
		debug.Logf("query %q: %d matches\n", q.src, len(res))
	}
	return res, nil
}

// Match evaluates q against n, found at p under parent.
func (q *Query) Match(n ast.Node, p ipath.Path, parent ast.Node) (bool, error) {
	v, err := expr.Run(q.prg, env(n, p, parent))
	if err != nil {
		return false, fmt.Errorf("%w: %q at %s: %w", ErrQuery, q.src, p, err)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q at %s gave %T, not bool", ErrQuery, q.src, p, v)
	}
	return b, nil
}

// Find compiles src and runs it on root.
func Find(root ast.Node, src string) ([]ipath.Path, error) {
	q, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return q.Find(root)
}

func env(n ast.Node, p ipath.Path, parent ast.Node) map[string]any {
	text, _ := ast.Text(n)
	index, ok := p.Last()
	if !ok {
		index = -1
	}
	parentTag := ""
	if parent != nil {
		parentTag = parent.Tag().String()
	}
	return map[string]any{
		"tag":    n.Tag().String(),
		"text":   text,
		"path":   p.String(),
		"depth":  len(p),
		"index":  index,
		"size":   n.Len(),
		"parent": parentTag,
		"field": func(name string) string {
			c, err := ast.Field(n, name)
			if err != nil {
				return ""
			}
			return describe(c)
		},
		"child": func(i int) string {
			return describe(n.Child(i))
		},
	}
}

func describe(n ast.Node) string {
	u := ast.Unwrap(n)
	if u == nil {
		return ""
	}
	if s, ok := ast.Text(u); ok {
		return s
	}
	return u.Tag().String()
}

func funcs() []expr.Option {
	return []expr.Option{
		expr.Function("variadic", func(params ...any) (any, error) {
			t, err := ast.ParseTag(params[0].(string))
			if err != nil {
				return false, nil
			}
			return t.IsVariadic(), nil
		},
			new(func(string) bool)),
	}
}
