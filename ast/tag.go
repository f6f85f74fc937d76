package ast

import "fmt"

// Tag identifies the variant of a tagged node.
type Tag int

const (
	// LeafTag is reported by Leaf, which is raw text and not one of the
	// tagged variants returned by Tags.
	LeafTag Tag = iota
	BeginTag
	StringLiteralTag
	SymbolLiteralTag
	CallTag
	ArgListTag
	ClassDefTag
	ModuleDefTag
	ConstantTag
	MethodDefTag
	ParamListTag
	AssignTag
	InstanceVarRefTag
	LocalVarRefTag
	CaseExprTag
	WhenClauseListTag
	WhenClauseTag
	CurrentInstanceRefTag
	ReturnStmtTag
	SelectedTag
)

var tagNames = map[Tag]string{
	LeafTag:               "Leaf",
	BeginTag:              "Begin",
	StringLiteralTag:      "StringLiteral",
	SymbolLiteralTag:      "SymbolLiteral",
	CallTag:               "Call",
	ArgListTag:            "ArgList",
	ClassDefTag:           "ClassDef",
	ModuleDefTag:          "ModuleDef",
	ConstantTag:           "Constant",
	MethodDefTag:          "MethodDef",
	ParamListTag:          "ParamList",
	AssignTag:             "Assign",
	InstanceVarRefTag:     "InstanceVarRef",
	LocalVarRefTag:        "LocalVarRef",
	CaseExprTag:           "CaseExpr",
	WhenClauseListTag:     "WhenClauseList",
	WhenClauseTag:         "WhenClause",
	CurrentInstanceRefTag: "CurrentInstanceRef",
	ReturnStmtTag:         "ReturnStmt",
	SelectedTag:           "Selected",
}

func (t Tag) String() string {
	s, ok := tagNames[t]
	if ok {
		return s
	}
	return "<unknown tag>"
}

func (t Tag) MarshalText() ([]byte, error) {
	s, ok := tagNames[t]
	if !ok {
		return nil, fmt.Errorf("<err: %d is not a tag>", t)
	}
	return []byte(s), nil
}

func (t *Tag) UnmarshalText(d []byte) error {
	tt, err := ParseTag(string(d))
	if err != nil {
		return err
	}
	*t = tt
	return nil
}

// ParseTag returns the tag named v. Leaf is not a tag name.
func ParseTag(v string) (Tag, error) {
	for _, t := range Tags() {
		if tagNames[t] == v {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unrecognized tag %q", ErrShapeMismatch, v)
}

// Tags returns every tagged variant in declaration order.
func Tags() []Tag {
	return []Tag{
		BeginTag,
		StringLiteralTag,
		SymbolLiteralTag,
		CallTag,
		ArgListTag,
		ClassDefTag,
		ModuleDefTag,
		ConstantTag,
		MethodDefTag,
		ParamListTag,
		AssignTag,
		InstanceVarRefTag,
		LocalVarRefTag,
		CaseExprTag,
		WhenClauseListTag,
		WhenClauseTag,
		CurrentInstanceRefTag,
		ReturnStmtTag,
		SelectedTag,
	}
}

// SlotKind says what a fixed child slot may hold.
type SlotKind int

const (
	// NodeSlot holds a tagged node.
	NodeSlot SlotKind = iota
	// TextSlot holds a Leaf.
	TextSlot
	// AnySlot holds a tagged node or a Leaf.
	AnySlot
)

func (k SlotKind) String() string {
	switch k {
	case NodeSlot:
		return "node"
	case TextSlot:
		return "text"
	case AnySlot:
		return "any"
	default:
		return "<unknown slot kind>"
	}
}

// Slot is one named, fixed child position.
type Slot struct {
	Name     string
	Kind     SlotKind
	Nullable bool
}

// Shape is the declared child layout of a tag. A variadic shape has no
// slots and accepts any number of leaf or node children.
type Shape struct {
	Variadic bool
	Slots    []Slot
}

var shapes = map[Tag]Shape{
	LeafTag:          {},
	BeginTag:         {Variadic: true},
	StringLiteralTag: {Slots: []Slot{{Name: "value", Kind: TextSlot}}},
	SymbolLiteralTag: {Slots: []Slot{{Name: "value", Kind: TextSlot}}},
	CallTag: {Slots: []Slot{
		{Name: "receiver", Kind: NodeSlot, Nullable: true},
		{Name: "message", Kind: TextSlot},
		{Name: "args", Kind: NodeSlot},
	}},
	ArgListTag: {Variadic: true},
	ClassDefTag: {Slots: []Slot{
		{Name: "constant", Kind: NodeSlot},
		{Name: "superclass", Kind: NodeSlot, Nullable: true},
		{Name: "body", Kind: NodeSlot, Nullable: true},
	}},
	ModuleDefTag: {Slots: []Slot{
		{Name: "constant", Kind: NodeSlot},
		{Name: "body", Kind: NodeSlot, Nullable: true},
	}},
	ConstantTag: {Slots: []Slot{
		{Name: "namespace", Kind: NodeSlot, Nullable: true},
		{Name: "name", Kind: TextSlot},
	}},
	MethodDefTag: {Slots: []Slot{
		{Name: "message", Kind: TextSlot},
		{Name: "params", Kind: NodeSlot},
		{Name: "body", Kind: NodeSlot, Nullable: true},
	}},
	ParamListTag: {Variadic: true},
	AssignTag: {Slots: []Slot{
		{Name: "lhs", Kind: NodeSlot},
		{Name: "rhs", Kind: NodeSlot},
	}},
	InstanceVarRefTag: {Slots: []Slot{{Name: "name", Kind: TextSlot}}},
	LocalVarRefTag:    {Slots: []Slot{{Name: "name", Kind: TextSlot}}},
	CaseExprTag: {Slots: []Slot{
		{Name: "condition", Kind: NodeSlot},
		{Name: "whenClauses", Kind: NodeSlot},
	}},
	WhenClauseListTag: {Variadic: true},
	WhenClauseTag: {Slots: []Slot{
		{Name: "condition", Kind: NodeSlot},
		{Name: "body", Kind: NodeSlot, Nullable: true},
	}},
	CurrentInstanceRefTag: {},
	ReturnStmtTag:         {Slots: []Slot{{Name: "value", Kind: NodeSlot, Nullable: true}}},
	SelectedTag:           {Slots: []Slot{{Name: "target", Kind: AnySlot, Nullable: true}}},
}

// Shape returns the declared child layout of t.
func (t Tag) Shape() Shape {
	return shapes[t]
}

func (t Tag) IsVariadic() bool {
	return shapes[t].Variadic
}

// Arity is the number of fixed slots, or -1 for variadic tags.
func (t Tag) Arity() int {
	s := shapes[t]
	if s.Variadic {
		return -1
	}
	return len(s.Slots)
}

// SlotIndex returns the position of the named slot, or -1.
func (t Tag) SlotIndex(name string) int {
	for i, s := range shapes[t].Slots {
		if s.Name == name {
			return i
		}
	}
	return -1
}
