package ast

import (
	"fmt"
	"strconv"
)

// ToAny converts n to plain values suitable for YAML or JSON encoding.
// A tagged node becomes a single key map from its tag name to the list of
// its children, a leaf becomes a string and an absent child becomes nil:
//
//	{"Call": [nil, "foo", {"ArgList": []}]}
func ToAny(n Node) any {
	if isAbsent(n) {
		return nil
	}
	if l, ok := n.(Leaf); ok {
		return string(l)
	}
	children := make([]any, n.Len())
	for i := range children {
		children[i] = ToAny(n.Child(i))
	}
	return map[string]any{n.Tag().String(): children}
}

// FromAny is the inverse of ToAny. Scalars other than strings are taken
// as their text form, so that an unquoted YAML identifier such as 1 or
// true still reads as a leaf. Shapes are checked as in Make.
func FromAny(v any) (Node, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		return Leaf(x), nil
	case bool:
		return Leaf(strconv.FormatBool(x)), nil
	case int:
		return Leaf(strconv.Itoa(x)), nil
	case int64:
		return Leaf(strconv.FormatInt(x, 10)), nil
	case uint64:
		return Leaf(strconv.FormatUint(x, 10)), nil
	case float64:
		return Leaf(strconv.FormatFloat(x, 'g', -1, 64)), nil
	case map[string]any:
		if len(x) != 1 {
			return nil, fmt.Errorf("%w: node map must have exactly one tag key, got %d", ErrShapeMismatch, len(x))
		}
		for k, kv := range x {
			return fromTagged(k, kv)
		}
	}
	return nil, fmt.Errorf("%w: cannot build a node from %T", ErrShapeMismatch, v)
}

func fromTagged(name string, v any) (Node, error) {
	tag, err := ParseTag(name)
	if err != nil {
		return nil, err
	}
	var items []any
	switch x := v.(type) {
	case nil:
	case []any:
		items = x
	default:
		return nil, fmt.Errorf("%w: children of %s must be a list, got %T", ErrShapeMismatch, tag, v)
	}
	children := make([]Node, len(items))
	for i, item := range items {
		c, err := FromAny(item)
		if err != nil {
			return nil, fmt.Errorf("%s child %d: %w", tag, i, err)
		}
		children[i] = c
	}
	return Make(tag, children...)
}
