// Package ast provides the immutable tagged tree edited by the cursor and
// rendered by the dialects.
//
// # Nodes
//
// A Node is a Leaf (raw text) or one of a closed set of record types, one
// per Tag: Begin, StringLiteral, SymbolLiteral, Call, ArgList, ClassDef,
// ModuleDef, Constant, MethodDef, ParamList, Assign, InstanceVarRef,
// LocalVarRef, CaseExpr, WhenClauseList, WhenClause, CurrentInstanceRef,
// ReturnStmt and Selected. A nil Node is an absent child.
//
// Each tag declares a Shape. Fixed shapes have named slots, each holding
// text (a Leaf), a tagged node, or either; some slots are nullable.
// Variadic shapes (Begin, ArgList, ParamList, WhenClauseList) hold any
// number of non-nil children.
//
//	call := ast.NewCall(nil, "require", ast.NewArgList(ast.NewString("set")))
//	recv, _ := ast.Field(call, "receiver") // nil
//	_, err := ast.Field(call, "body")      // ErrUnknownChild
//	_, err = ast.Make(ast.CallTag)         // ErrShapeMismatch
//
// Nodes never change after construction. An edit produces a new root which
// shares every untouched subtree with the old one.
//
// # Paths
//
// Locations are ipath.Path values: the child indices from the root. Get
// looks a location up, Clamp repairs an out of range path into the nearest
// sensible one, and ReplaceAt rebuilds the ancestors of a location around
// a replacement node.
//
// # Selection
//
// Selected wraps the one selected location of a tree derived for display.
// Canonical trees, the ones edits are applied to, carry no Selected nodes;
// see package cursor.
package ast
