package ast

// Node is a child slot value: a Leaf or one of the tagged record types in
// this package. The set is closed; a nil Node is an absent child.
//
// Nodes are immutable. Edits build new nodes and share untouched
// subtrees with the original.
type Node interface {
	Tag() Tag
	// Len is the number of child slots, including nil ones.
	Len() int
	// Child returns the child in slot i, or nil when i is out of range.
	Child(i int) Node

	isNode()
}

// Leaf is raw text, such as an identifier or the contents of a string
// literal.
type Leaf string

func (Leaf) Tag() Tag       { return LeafTag }
func (Leaf) Len() int       { return 0 }
func (Leaf) Child(int) Node { return nil }
func (Leaf) isNode()        {}

func (l Leaf) String() string { return string(l) }

type list struct {
	children []Node
}

func (l *list) Len() int { return len(l.children) }

func (l *list) Child(i int) Node {
	if i < 0 || i >= len(l.children) {
		return nil
	}
	return l.children[i]
}

func (l *list) isNode() {}

// meta is carried by every tagged node. marks counts the SelectedMarker
// nodes in the subtree, the node itself included.
type meta struct {
	marks int
}

func (m meta) markCount() int { return m.marks }

func pick(i int, slots ...Node) Node {
	if i < 0 || i >= len(slots) {
		return nil
	}
	return slots[i]
}

// Begin is a sequence of statements.
type Begin struct {
	list
	meta
}

func (*Begin) Tag() Tag { return BeginTag }

func (n *Begin) Statements() []Node { return Children(n) }

type StringLiteral struct {
	value Node
	meta
}

func (*StringLiteral) Tag() Tag           { return StringLiteralTag }
func (*StringLiteral) Len() int           { return 1 }
func (n *StringLiteral) Child(i int) Node { return pick(i, n.value) }
func (*StringLiteral) isNode()            {}
func (n *StringLiteral) Value() Node      { return n.value }

type SymbolLiteral struct {
	value Node
	meta
}

func (*SymbolLiteral) Tag() Tag           { return SymbolLiteralTag }
func (*SymbolLiteral) Len() int           { return 1 }
func (n *SymbolLiteral) Child(i int) Node { return pick(i, n.value) }
func (*SymbolLiteral) isNode()            {}
func (n *SymbolLiteral) Value() Node      { return n.value }

// Call is a message send, with an optional receiver.
type Call struct {
	receiver, message, args Node
	meta
}

func (*Call) Tag() Tag           { return CallTag }
func (*Call) Len() int           { return 3 }
func (n *Call) Child(i int) Node { return pick(i, n.receiver, n.message, n.args) }
func (*Call) isNode()            {}
func (n *Call) Receiver() Node   { return n.receiver }
func (n *Call) Message() Node    { return n.message }
func (n *Call) Args() Node       { return n.args }

type ArgList struct {
	list
	meta
}

func (*ArgList) Tag() Tag { return ArgListTag }

type ClassDef struct {
	constant, superclass, body Node
	meta
}

func (*ClassDef) Tag() Tag           { return ClassDefTag }
func (*ClassDef) Len() int           { return 3 }
func (n *ClassDef) Child(i int) Node { return pick(i, n.constant, n.superclass, n.body) }
func (*ClassDef) isNode()            {}
func (n *ClassDef) Constant() Node   { return n.constant }
func (n *ClassDef) Superclass() Node { return n.superclass }
func (n *ClassDef) Body() Node       { return n.body }

type ModuleDef struct {
	constant, body Node
	meta
}

func (*ModuleDef) Tag() Tag           { return ModuleDefTag }
func (*ModuleDef) Len() int           { return 2 }
func (n *ModuleDef) Child(i int) Node { return pick(i, n.constant, n.body) }
func (*ModuleDef) isNode()            {}
func (n *ModuleDef) Constant() Node   { return n.constant }
func (n *ModuleDef) Body() Node       { return n.body }

// Constant is a possibly namespaced constant reference. The namespace is
// itself a Constant or nil.
type Constant struct {
	namespace, name Node
	meta
}

func (*Constant) Tag() Tag           { return ConstantTag }
func (*Constant) Len() int           { return 2 }
func (n *Constant) Child(i int) Node { return pick(i, n.namespace, n.name) }
func (*Constant) isNode()            {}
func (n *Constant) Namespace() Node  { return n.namespace }
func (n *Constant) Name() Node       { return n.name }

type MethodDef struct {
	message, params, body Node
	meta
}

func (*MethodDef) Tag() Tag           { return MethodDefTag }
func (*MethodDef) Len() int           { return 3 }
func (n *MethodDef) Child(i int) Node { return pick(i, n.message, n.params, n.body) }
func (*MethodDef) isNode()            {}
func (n *MethodDef) Message() Node    { return n.message }
func (n *MethodDef) Params() Node     { return n.params }
func (n *MethodDef) Body() Node       { return n.body }

type ParamList struct {
	list
	meta
}

func (*ParamList) Tag() Tag { return ParamListTag }

type Assign struct {
	lhs, rhs Node
	meta
}

func (*Assign) Tag() Tag           { return AssignTag }
func (*Assign) Len() int           { return 2 }
func (n *Assign) Child(i int) Node { return pick(i, n.lhs, n.rhs) }
func (*Assign) isNode()            {}
func (n *Assign) LHS() Node        { return n.lhs }
func (n *Assign) RHS() Node        { return n.rhs }

type InstanceVarRef struct {
	name Node
	meta
}

func (*InstanceVarRef) Tag() Tag           { return InstanceVarRefTag }
func (*InstanceVarRef) Len() int           { return 1 }
func (n *InstanceVarRef) Child(i int) Node { return pick(i, n.name) }
func (*InstanceVarRef) isNode()            {}
func (n *InstanceVarRef) Name() Node       { return n.name }

type LocalVarRef struct {
	name Node
	meta
}

func (*LocalVarRef) Tag() Tag           { return LocalVarRefTag }
func (*LocalVarRef) Len() int           { return 1 }
func (n *LocalVarRef) Child(i int) Node { return pick(i, n.name) }
func (*LocalVarRef) isNode()            {}
func (n *LocalVarRef) Name() Node       { return n.name }

type CaseExpr struct {
	condition, whenClauses Node
	meta
}

func (*CaseExpr) Tag() Tag            { return CaseExprTag }
func (*CaseExpr) Len() int            { return 2 }
func (n *CaseExpr) Child(i int) Node  { return pick(i, n.condition, n.whenClauses) }
func (*CaseExpr) isNode()             {}
func (n *CaseExpr) Condition() Node   { return n.condition }
func (n *CaseExpr) WhenClauses() Node { return n.whenClauses }

type WhenClauseList struct {
	list
	meta
}

func (*WhenClauseList) Tag() Tag { return WhenClauseListTag }

type WhenClause struct {
	condition, body Node
	meta
}

func (*WhenClause) Tag() Tag           { return WhenClauseTag }
func (*WhenClause) Len() int           { return 2 }
func (n *WhenClause) Child(i int) Node { return pick(i, n.condition, n.body) }
func (*WhenClause) isNode()            {}
func (n *WhenClause) Condition() Node  { return n.condition }
func (n *WhenClause) Body() Node       { return n.body }

// CurrentInstanceRef is the receiver of the enclosing method.
type CurrentInstanceRef struct{ meta }

func (*CurrentInstanceRef) Tag() Tag       { return CurrentInstanceRefTag }
func (*CurrentInstanceRef) Len() int       { return 0 }
func (*CurrentInstanceRef) Child(int) Node { return nil }
func (*CurrentInstanceRef) isNode()        {}

type ReturnStmt struct {
	value Node
	meta
}

func (*ReturnStmt) Tag() Tag           { return ReturnStmtTag }
func (*ReturnStmt) Len() int           { return 1 }
func (n *ReturnStmt) Child(i int) Node { return pick(i, n.value) }
func (*ReturnStmt) isNode()            {}
func (n *ReturnStmt) Value() Node      { return n.value }

// Selected marks the one selected location of a derived tree. A nil
// target means the selection sits on an absent child, such as the
// insertion point of an empty list.
type Selected struct {
	target Node
	meta
}

func (*Selected) Tag() Tag           { return SelectedTag }
func (*Selected) Len() int           { return 1 }
func (n *Selected) Child(i int) Node { return pick(i, n.target) }
func (*Selected) isNode()            {}
func (n *Selected) Target() Node     { return n.target }

// Children returns a fresh copy of n's child slots in positional order.
func Children(n Node) []Node {
	if n == nil {
		return nil
	}
	res := make([]Node, n.Len())
	for i := range res {
		res[i] = n.Child(i)
	}
	return res
}

// Unwrap returns the target of a Selected node and n otherwise.
func Unwrap(n Node) Node {
	if s, ok := n.(*Selected); ok {
		return s.target
	}
	return n
}

// Text returns the text of a Leaf, looking through a Selected wrapper.
// ok is false for anything else.
func Text(n Node) (string, bool) {
	l, ok := Unwrap(n).(Leaf)
	return string(l), ok
}

// IsTraversable reports whether a path may step into n.
func IsTraversable(n Node) bool {
	if isAbsent(n) {
		return false
	}
	switch n.Tag() {
	case LeafTag:
		return false
	}
	return n.Len() > 0 || n.Tag().IsVariadic()
}
