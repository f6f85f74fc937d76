package render

import (
	"fmt"

	"github.com/JoshCheek/ast-editing/ast"
)

// Dialect renders the node kinds of one surface syntax. Each method
// receives the inherited classes and position key of the node and returns
// its fragment; children are rendered back through the Renderer.
//
// Empty children, leaves and selection markers never reach a Dialect; the
// Renderer handles them the same way for every syntax.
type Dialect interface {
	Name() string

	Begin(r *Renderer, n *ast.Begin, classes []string, key int) (*Fragment, error)
	StringLiteral(r *Renderer, n *ast.StringLiteral, classes []string, key int) (*Fragment, error)
	SymbolLiteral(r *Renderer, n *ast.SymbolLiteral, classes []string, key int) (*Fragment, error)
	Call(r *Renderer, n *ast.Call, classes []string, key int) (*Fragment, error)
	ArgList(r *Renderer, n *ast.ArgList, classes []string, key int) (*Fragment, error)
	ClassDef(r *Renderer, n *ast.ClassDef, classes []string, key int) (*Fragment, error)
	ModuleDef(r *Renderer, n *ast.ModuleDef, classes []string, key int) (*Fragment, error)
	Constant(r *Renderer, n *ast.Constant, classes []string, key int) (*Fragment, error)
	MethodDef(r *Renderer, n *ast.MethodDef, classes []string, key int) (*Fragment, error)
	ParamList(r *Renderer, n *ast.ParamList, classes []string, key int) (*Fragment, error)
	Assign(r *Renderer, n *ast.Assign, classes []string, key int) (*Fragment, error)
	InstanceVarRef(r *Renderer, n *ast.InstanceVarRef, classes []string, key int) (*Fragment, error)
	LocalVarRef(r *Renderer, n *ast.LocalVarRef, classes []string, key int) (*Fragment, error)
	CaseExpr(r *Renderer, n *ast.CaseExpr, classes []string, key int) (*Fragment, error)
	WhenClauseList(r *Renderer, n *ast.WhenClauseList, classes []string, key int) (*Fragment, error)
	WhenClause(r *Renderer, n *ast.WhenClause, classes []string, key int) (*Fragment, error)
	CurrentInstanceRef(r *Renderer, n *ast.CurrentInstanceRef, classes []string, key int) (*Fragment, error)
	ReturnStmt(r *Renderer, n *ast.ReturnStmt, classes []string, key int) (*Fragment, error)
}

// Unsupported implements every Dialect method by failing with
// ErrUnsupportedNodeKind. A dialect under construction embeds it and
// overrides the kinds it supports.
type Unsupported struct{}

func unsupported(r *Renderer, n ast.Node) (*Fragment, error) {
	return nil, fmt.Errorf("%w: %s has no %s renderer", ErrUnsupportedNodeKind, r.Dialect().Name(), n.Tag())
}

func (Unsupported) Begin(r *Renderer, n *ast.Begin, _ []string, _ int) (*Fragment, error) {
	return unsupported(r, n)
}

func (Unsupported) StringLiteral(r *Renderer, n *ast.StringLiteral, _ []string, _ int) (*Fragment, error) {
	return unsupported(r, n)
}

func (Unsupported) SymbolLiteral(r *Renderer, n *ast.SymbolLiteral, _ []string, _ int) (*Fragment, error) {
	return unsupported(r, n)
}

func (Unsupported) Call(r *Renderer, n *ast.Call, _ []string, _ int) (*Fragment, error) {
	return unsupported(r, n)
}

func (Unsupported) ArgList(r *Renderer, n *ast.ArgList, _ []string, _ int) (*Fragment, error) {
	return unsupported(r, n)
}

func (Unsupported) ClassDef(r *Renderer, n *ast.ClassDef, _ []string, _ int) (*Fragment, error) {
	return unsupported(r, n)
}

func (Unsupported) ModuleDef(r *Renderer, n *ast.ModuleDef, _ []string, _ int) (*Fragment, error) {
	return unsupported(r, n)
}

func (Unsupported) Constant(r *Renderer, n *ast.Constant, _ []string, _ int) (*Fragment, error) {
	return unsupported(r, n)
}

func (Unsupported) MethodDef(r *Renderer, n *ast.MethodDef, _ []string, _ int) (*Fragment, error) {
	return unsupported(r, n)
}

func (Unsupported) ParamList(r *Renderer, n *ast.ParamList, _ []string, _ int) (*Fragment, error) {
	return unsupported(r, n)
}

func (Unsupported) Assign(r *Renderer, n *ast.Assign, _ []string, _ int) (*Fragment, error) {
	return unsupported(r, n)
}

func (Unsupported) InstanceVarRef(r *Renderer, n *ast.InstanceVarRef, _ []string, _ int) (*Fragment, error) {
	return unsupported(r, n)
}

func (Unsupported) LocalVarRef(r *Renderer, n *ast.LocalVarRef, _ []string, _ int) (*Fragment, error) {
	return unsupported(r, n)
}

func (Unsupported) CaseExpr(r *Renderer, n *ast.CaseExpr, _ []string, _ int) (*Fragment, error) {
	return unsupported(r, n)
}

func (Unsupported) WhenClauseList(r *Renderer, n *ast.WhenClauseList, _ []string, _ int) (*Fragment, error) {
	return unsupported(r, n)
}

func (Unsupported) WhenClause(r *Renderer, n *ast.WhenClause, _ []string, _ int) (*Fragment, error) {
	return unsupported(r, n)
}

func (Unsupported) CurrentInstanceRef(r *Renderer, n *ast.CurrentInstanceRef, _ []string, _ int) (*Fragment, error) {
	return unsupported(r, n)
}

func (Unsupported) ReturnStmt(r *Renderer, n *ast.ReturnStmt, _ []string, _ int) (*Fragment, error) {
	return unsupported(r, n)
}
