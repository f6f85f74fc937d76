package ast

import (
	"fmt"
	"reflect"
	"slices"
)

// Make builds a node of the given tag from positional children, checking
// them against the tag's Shape. It fails with ErrShapeMismatch on a wrong
// child count or kind.
func Make(tag Tag, children ...Node) (Node, error) {
	if tag == LeafTag {
		return nil, fmt.Errorf("%w: leaves are built with Leaf, not Make", ErrShapeMismatch)
	}
	shape, ok := shapes[tag]
	if !ok {
		return nil, fmt.Errorf("%w: unknown tag %d", ErrShapeMismatch, tag)
	}
	children = normalize(children)
	if shape.Variadic {
		for i, c := range children {
			if c == nil {
				return nil, fmt.Errorf("%w: %s child %d is nil", ErrShapeMismatch, tag, i)
			}
		}
		if err := checkMarks(tag, children); err != nil {
			return nil, err
		}
		return build(tag, children), nil
	}
	if len(children) != len(shape.Slots) {
		return nil, fmt.Errorf("%w: %s takes %d children, got %d",
			ErrShapeMismatch, tag, len(shape.Slots), len(children))
	}
	for i, slot := range shape.Slots {
		if err := checkSlot(tag, slot, children[i]); err != nil {
			return nil, err
		}
	}
	if err := checkMarks(tag, children); err != nil {
		return nil, err
	}
	return build(tag, children), nil
}

// MustMake is Make but panics on error.
func MustMake(tag Tag, children ...Node) Node {
	n, err := Make(tag, children...)
	if err != nil {
		panic(err)
	}
	return n
}

func checkSlot(tag Tag, slot Slot, c Node) error {
	if sel, ok := c.(*Selected); ok {
		if tag == SelectedTag {
			return fmt.Errorf("%w: nested %s", ErrShapeMismatch, SelectedTag)
		}
		c = sel.target
		if c == nil {
			return nil
		}
	}
	if c == nil {
		if slot.Nullable {
			return nil
		}
		return fmt.Errorf("%w: %s.%s is required", ErrShapeMismatch, tag, slot.Name)
	}
	isLeaf := c.Tag() == LeafTag
	switch slot.Kind {
	case TextSlot:
		if !isLeaf {
			return fmt.Errorf("%w: %s.%s wants text, got %s", ErrShapeMismatch, tag, slot.Name, c.Tag())
		}
	case NodeSlot:
		if isLeaf {
			return fmt.Errorf("%w: %s.%s wants a node, got text %q", ErrShapeMismatch, tag, slot.Name, string(c.(Leaf)))
		}
	}
	return nil
}

// checkMarks keeps a tree to at most one SelectedMarker.
func checkMarks(tag Tag, children []Node) error {
	if n := countMarks(tag, children); n > 1 {
		return fmt.Errorf("%w: %s would hold %d %s markers", ErrShapeMismatch, tag, n, SelectedTag)
	}
	return nil
}

func countMarks(tag Tag, children []Node) int {
	n := 0
	if tag == SelectedTag {
		n++
	}
	for _, c := range children {
		n += marks(c)
	}
	return n
}

// marks is the number of SelectedMarker nodes in n.
func marks(n Node) int {
	if m, ok := n.(interface{ markCount() int }); ok {
		return m.markCount()
	}
	return 0
}

// build constructs without checking; children must already fit the shape.
func build(tag Tag, c []Node) Node {
	m := meta{marks: countMarks(tag, c)}
	switch tag {
	case BeginTag:
		return &Begin{list: list{slices.Clone(c)}, meta: m}
	case StringLiteralTag:
		return &StringLiteral{value: c[0], meta: m}
	case SymbolLiteralTag:
		return &SymbolLiteral{value: c[0], meta: m}
	case CallTag:
		return &Call{receiver: c[0], message: c[1], args: c[2], meta: m}
	case ArgListTag:
		return &ArgList{list: list{slices.Clone(c)}, meta: m}
	case ClassDefTag:
		return &ClassDef{constant: c[0], superclass: c[1], body: c[2], meta: m}
	case ModuleDefTag:
		return &ModuleDef{constant: c[0], body: c[1], meta: m}
	case ConstantTag:
		return &Constant{namespace: c[0], name: c[1], meta: m}
	case MethodDefTag:
		return &MethodDef{message: c[0], params: c[1], body: c[2], meta: m}
	case ParamListTag:
		return &ParamList{list: list{slices.Clone(c)}, meta: m}
	case AssignTag:
		return &Assign{lhs: c[0], rhs: c[1], meta: m}
	case InstanceVarRefTag:
		return &InstanceVarRef{name: c[0], meta: m}
	case LocalVarRefTag:
		return &LocalVarRef{name: c[0], meta: m}
	case CaseExprTag:
		return &CaseExpr{condition: c[0], whenClauses: c[1], meta: m}
	case WhenClauseListTag:
		return &WhenClauseList{list: list{slices.Clone(c)}, meta: m}
	case WhenClauseTag:
		return &WhenClause{condition: c[0], body: c[1], meta: m}
	case CurrentInstanceRefTag:
		return &CurrentInstanceRef{meta: m}
	case ReturnStmtTag:
		return &ReturnStmt{value: c[0], meta: m}
	case SelectedTag:
		return &Selected{target: c[0], meta: m}
	}
	panic(fmt.Sprintf("ast: build of unknown tag %d", tag))
}

// normalize turns typed nil pointers into untyped nil so that absence has
// one representation.
func normalize(children []Node) []Node {
	var res []Node
	for i, c := range children {
		if c != nil && isAbsent(c) {
			if res == nil {
				res = slices.Clone(children)
			}
			res[i] = nil
		}
	}
	if res == nil {
		return children
	}
	return res
}

func isAbsent(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Duplicate returns a new node with the same tag and children as n.
// Children are shared, which is safe because nodes are immutable.
func Duplicate(n Node) Node {
	if isAbsent(n) {
		return nil
	}
	if n.Tag() == LeafTag {
		return n
	}
	return build(n.Tag(), Children(n))
}

// Field returns the child of n in the slot called name. It fails with
// ErrUnknownChild when n's tag declares no such slot.
func Field(n Node, name string) (Node, error) {
	if isAbsent(n) {
		return nil, fmt.Errorf("%w: %q of absent node", ErrUnknownChild, name)
	}
	i := n.Tag().SlotIndex(name)
	if i == -1 {
		return nil, fmt.Errorf("%w: %s has no child %q", ErrUnknownChild, n.Tag(), name)
	}
	return n.Child(i), nil
}

// MustField is Field but panics on error, for use in handlers that have
// already dispatched on the tag.
func MustField(n Node, name string) Node {
	c, err := Field(n, name)
	if err != nil {
		panic(err)
	}
	return c
}

func NewBegin(stmts ...Node) *Begin {
	return MustMake(BeginTag, stmts...).(*Begin)
}

func NewString(v string) *StringLiteral {
	return MustMake(StringLiteralTag, Leaf(v)).(*StringLiteral)
}

func NewSymbol(v string) *SymbolLiteral {
	return MustMake(SymbolLiteralTag, Leaf(v)).(*SymbolLiteral)
}

func NewCall(receiver Node, message string, args Node) *Call {
	return MustMake(CallTag, receiver, Leaf(message), args).(*Call)
}

func NewArgList(args ...Node) *ArgList {
	return MustMake(ArgListTag, args...).(*ArgList)
}

func NewClassDef(constant, superclass, body Node) *ClassDef {
	return MustMake(ClassDefTag, constant, superclass, body).(*ClassDef)
}

func NewModuleDef(constant, body Node) *ModuleDef {
	return MustMake(ModuleDefTag, constant, body).(*ModuleDef)
}

func NewConstant(namespace Node, name string) *Constant {
	return MustMake(ConstantTag, namespace, Leaf(name)).(*Constant)
}

func NewMethodDef(message string, params, body Node) *MethodDef {
	return MustMake(MethodDefTag, Leaf(message), params, body).(*MethodDef)
}

// NewParamList builds a parameter list from parameter names.
func NewParamList(names ...string) *ParamList {
	params := make([]Node, len(names))
	for i, name := range names {
		params[i] = Leaf(name)
	}
	return MustMake(ParamListTag, params...).(*ParamList)
}

func NewAssign(lhs, rhs Node) *Assign {
	return MustMake(AssignTag, lhs, rhs).(*Assign)
}

func NewInstanceVarRef(name string) *InstanceVarRef {
	return MustMake(InstanceVarRefTag, Leaf(name)).(*InstanceVarRef)
}

func NewLocalVarRef(name string) *LocalVarRef {
	return MustMake(LocalVarRefTag, Leaf(name)).(*LocalVarRef)
}

func NewCaseExpr(condition, whenClauses Node) *CaseExpr {
	return MustMake(CaseExprTag, condition, whenClauses).(*CaseExpr)
}

func NewWhenClauseList(clauses ...Node) *WhenClauseList {
	return MustMake(WhenClauseListTag, clauses...).(*WhenClauseList)
}

func NewWhenClause(condition, body Node) *WhenClause {
	return MustMake(WhenClauseTag, condition, body).(*WhenClause)
}

func NewCurrentInstanceRef() *CurrentInstanceRef {
	return MustMake(CurrentInstanceRefTag).(*CurrentInstanceRef)
}

func NewReturnStmt(value Node) *ReturnStmt {
	return MustMake(ReturnStmtTag, value).(*ReturnStmt)
}

func NewSelected(target Node) *Selected {
	return MustMake(SelectedTag, target).(*Selected)
}
