package ast

import (
	"errors"
	"testing"

	"github.com/JoshCheek/ast-editing/ast/ipath"

	"github.com/google/go-cmp/cmp"
)

// fixture:
//
//	$        Begin
//	$[0]       Call(nil, "require", ArgList(StringLiteral("x")))
//	$[1]       ClassDef
//	$[1][0]      Constant(nil, "Foo")
//	$[1][1]      nil
//	$[1][2]      Begin
//	$[1][2][0]     Assign(InstanceVarRef("a"), LocalVarRef("a"))
//	$[1][2][1]     ArgList()
//	$[1][2][2]     CurrentInstanceRef()
func fixture() Node {
	return NewBegin(
		NewCall(nil, "require", NewArgList(NewString("x"))),
		NewClassDef(
			NewConstant(nil, "Foo"),
			nil,
			NewBegin(
				NewAssign(NewInstanceVarRef("a"), NewLocalVarRef("a")),
				NewArgList(),
				NewCurrentInstanceRef(),
			),
		),
	)
}

func TestGet(t *testing.T) {
	root := fixture()
	tests := []struct {
		path string
		want string
	}{
		{"$", Sprint(root)},
		{"$[0][1]", `"require"`},
		{"$[0][2][0]", `StringLiteral("x")`},
		{"$[1][0]", `Constant(nil, "Foo")`},
		{"$[1][1]", "nil"},
		{"$[1][2][0][0][0]", `"a"`},
		{"$[2]", "nil"},
		{"$[-1]", "nil"},
		{"$[1][1][0]", "nil"},
		{"$[0][1][0]", "nil"},
		{"$[1][2][1][0]", "nil"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := Get(root, ipath.MustParse(tt.path))
			if s := Sprint(got); s != tt.want {
				t.Errorf("Get(%s) = %s, want %s", tt.path, s, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	root := fixture()
	tests := []struct {
		in, want string
	}{
		{"$", "$"},
		{"$[1][2][0]", "$[1][2][0]"},
		{"$[-1]", "$[1]"},
		{"$[-5]", "$[1]"},
		{"$[2]", "$[0]"},
		{"$[9][9]", "$[0][0]"},
		{"$[1][2][-1]", "$[1][2][2]"},
		{"$[1][2][3]", "$[1][2][0]"},
		// leaves and absent children cannot be stepped into
		{"$[0][1][0]", "$[0][1]"},
		{"$[1][1][0][4]", "$[1][1]"},
		// nodes without slots cannot either
		{"$[1][2][2][0]", "$[1][2][2]"},
		// an empty list keeps its insertion point
		{"$[1][2][1][0]", "$[1][2][1][0]"},
		{"$[1][2][1][5][2]", "$[1][2][1][0]"},
		{"$[1][2][1][-1]", "$[1][2][1][0]"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			in := ipath.MustParse(tt.in)
			orig := append(ipath.Path{}, in...)
			got := Clamp(root, in)
			if got.String() != tt.want {
				t.Errorf("Clamp(%s) = %s, want %s", tt.in, got, tt.want)
			}
			if !in.Equal(orig) {
				t.Errorf("Clamp modified its input: %s", in)
			}
			if again := Clamp(root, got); !again.Equal(got) {
				t.Errorf("Clamp not idempotent: %s then %s", got, again)
			}
		})
	}
}

// On a tree whose every slot is filled and every list non-empty, any
// clamped path addresses a node.
func TestClampLandsOnNode(t *testing.T) {
	root := NewBegin(
		NewCall(NewLocalVarRef("a"), "m", NewArgList(NewString("s"), NewSymbol("y"))),
		NewAssign(NewInstanceVarRef("i"), NewCurrentInstanceRef()),
		NewCaseExpr(NewLocalVarRef("e"), NewWhenClauseList(
			NewWhenClause(NewString("w"), NewReturnStmt(NewLocalVarRef("r"))),
		)),
	)
	steps := []int{-7, -1, 0, 1, 2, 3, 11}
	var walk func(p ipath.Path, depth int)
	walk = func(p ipath.Path, depth int) {
		got := Clamp(root, p)
		if Get(root, got) == nil {
			t.Errorf("Get(Clamp(%s)) = nil (clamped to %s)", p, got)
		}
		if depth == 0 {
			return
		}
		for _, s := range steps {
			walk(p.Append(s), depth-1)
		}
	}
	walk(ipath.Root(), 4)
}

func TestReplaceAtIdentity(t *testing.T) {
	root := fixture()
	for _, p := range []string{"$", "$[0]", "$[0][2][0][0]", "$[1][1]", "$[1][2][2]"} {
		t.Run(p, func(t *testing.T) {
			path := ipath.MustParse(p)
			got, err := ReplaceAt(root, path, func(n Node) Node { return n })
			if err != nil {
				t.Fatal(err)
			}
			if !Equal(root, got) {
				t.Fatalf("identity replace changed tree:\n%s\n%s", Sprint(root), Sprint(got))
			}
			assertSharedOffPath(t, root, got, path, ipath.Root())
		})
	}
}

// assertSharedOffPath checks that a and b are distinct along p and share
// every subtree hanging off it.
func assertSharedOffPath(t *testing.T, a, b Node, p, at ipath.Path) {
	t.Helper()
	if len(at) == len(p) {
		return
	}
	if !p.IsRoot() && a == b {
		t.Errorf("ancestor at %s was not rebuilt", at)
	}
	next := p[len(at)]
	for i := range a.Len() {
		if i == next {
			continue
		}
		if a.Child(i) != b.Child(i) {
			t.Errorf("sibling %s not shared", at.Append(i))
		}
	}
	assertSharedOffPath(t, a.Child(next), b.Child(next), p, at.Append(next))
}

func TestReplaceAtRoot(t *testing.T) {
	root := fixture()
	repl := NewLocalVarRef("x")
	got, err := ReplaceAt(root, ipath.Root(), func(Node) Node { return repl })
	if err != nil {
		t.Fatal(err)
	}
	if got != Node(repl) {
		t.Errorf("ReplaceAt($) = %s", Sprint(got))
	}
}

func TestReplaceAt(t *testing.T) {
	root := fixture()
	tests := []struct {
		name string
		path string
		with Node
		want string // Sprint of Get(result, path)
	}{
		{"leaf", "$[1][0][1]", Leaf("Bar"), `"Bar"`},
		{"absent slot", "$[1][1]", NewConstant(nil, "Base"), `Constant(nil, "Base")`},
		{"insertion point", "$[1][2][1][0]", Leaf(""), `""`},
		{"append to list", "$[1][2][3]", NewLocalVarRef("z"), `LocalVarRef("z")`},
		{"selected", "$[0][2]", NewSelected(NewArgList()), `Selected(ArgList())`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ipath.MustParse(tt.path)
			got, err := ReplaceAt(root, p, func(Node) Node { return tt.with })
			if err != nil {
				t.Fatal(err)
			}
			if s := Sprint(Get(got, p)); s != tt.want {
				t.Errorf("after replace, Get(%s) = %s, want %s", tt.path, s, tt.want)
			}
			if !Equal(root, fixture()) {
				t.Error("original tree changed")
			}
		})
	}
}

func TestReplaceAtKeepsOneMarker(t *testing.T) {
	root := NewBegin(NewSelected(NewLocalVarRef("a")), NewLocalVarRef("b"))
	_, err := ReplaceAt(root, ipath.Path{1}, func(n Node) Node { return NewSelected(n) })
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("err = %v, want ErrShapeMismatch", err)
	}
	moved, err := ReplaceAt(root, ipath.Path{0}, Unwrap)
	if err != nil {
		t.Fatal(err)
	}
	moved, err = ReplaceAt(moved, ipath.Path{1}, func(n Node) Node { return NewSelected(n) })
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]ipath.Path{{1}}, SelectedPaths(moved)); diff != "" {
		t.Errorf("SelectedPaths mismatch (-want +got):\n%s", diff)
	}
}

func TestReplaceAtErrors(t *testing.T) {
	root := fixture()
	tests := []struct {
		name string
		path string
		with Node
		err  error
	}{
		{"past end", "$[3]", Leaf("x"), ErrNoSuchPath},
		{"past fixed end", "$[1][3]", Leaf("x"), ErrNoSuchPath},
		{"negative", "$[-1]", Leaf("x"), ErrNoSuchPath},
		{"through absent", "$[1][1][0]", Leaf("x"), ErrNoSuchPath},
		{"through leaf", "$[0][1][0]", Leaf("x"), ErrNoSuchPath},
		{"append deep", "$[1][2][3][0]", Leaf("x"), ErrNoSuchPath},
		{"text slot gets node", "$[0][1]", NewArgList(), ErrShapeMismatch},
		{"node slot gets text", "$[1][0]", Leaf("Foo"), ErrShapeMismatch},
		{"nil in list", "$[1][2][0]", nil, ErrShapeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReplaceAt(root, ipath.MustParse(tt.path), func(Node) Node { return tt.with })
			if !errors.Is(err, tt.err) {
				t.Errorf("err = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestSelectedPaths(t *testing.T) {
	root := fixture()
	p := ipath.MustParse("$[1][2][1][0]")
	sel, err := ReplaceAt(root, p, func(n Node) Node { return NewSelected(n) })
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]ipath.Path{p}, SelectedPaths(sel)); diff != "" {
		t.Errorf("SelectedPaths mismatch (-want +got):\n%s", diff)
	}
	if got := SelectedPaths(root); len(got) != 0 {
		t.Errorf("canonical tree has selections at %v", got)
	}
}
