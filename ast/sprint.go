package ast

import (
	"strconv"
	"strings"
)

// Sprint formats n in constructor notation, for example
//
//	Call(nil, "foo", ArgList())
func Sprint(n Node) string {
	b := &strings.Builder{}
	sprint(b, n)
	return b.String()
}

func sprint(b *strings.Builder, n Node) {
	if isAbsent(n) {
		b.WriteString("nil")
		return
	}
	if l, ok := n.(Leaf); ok {
		b.WriteString(strconv.Quote(string(l)))
		return
	}
	b.WriteString(n.Tag().String())
	b.WriteByte('(')
	for i := range n.Len() {
		if i > 0 {
			b.WriteString(", ")
		}
		sprint(b, n.Child(i))
	}
	b.WriteByte(')')
}
