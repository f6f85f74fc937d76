package cursor

import (
	"errors"
	"testing"

	"github.com/JoshCheek/ast-editing/ast"
	"github.com/JoshCheek/ast-editing/ast/ipath"

	"github.com/google/go-cmp/cmp"
)

func TestInsertIntoEmptyArgs(t *testing.T) {
	root := ast.NewCall(nil, "foo", ast.NewArgList())
	s := New(root).MoveIn().MoveIn().InsertArg()

	if got := s.Path.String(); got != "$[2][0]" {
		t.Fatalf("path = %s, want $[2][0]", got)
	}
	args := ast.MustField(s.Root, "args")
	if args.Len() != 1 {
		t.Fatalf("args has %d children, want 1", args.Len())
	}
	if !ast.Equal(s.Node(), ast.Leaf("")) {
		t.Errorf("selected node = %s, want the new empty leaf", ast.Sprint(s.Node()))
	}
	if ast.MustField(root, "args").Len() != 0 {
		t.Error("original root was modified")
	}
}

func TestMovePrevWraps(t *testing.T) {
	a, b := ast.NewLocalVarRef("a"), ast.NewLocalVarRef("b")
	s := At(ast.NewBegin(a, b), ipath.Path{0}).MovePrev()
	if diff := cmp.Diff(ipath.Path{1}, s.Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
	if s = s.MoveNext(); !s.Path.Equal(ipath.Path{0}) {
		t.Errorf("next from last = %s, want $[0]", s.Path)
	}
}

func seedTree() ast.Node {
	return ast.NewBegin(
		ast.NewCall(nil, "attr_reader", ast.NewArgList(ast.NewSymbol("exitstatus"))),
		ast.NewMethodDef("initialize", ast.NewParamList("next_observer"),
			ast.NewAssign(ast.NewInstanceVarRef("next_observer"), ast.NewLocalVarRef("next_observer"))),
		ast.NewConstant(nil, "Foo"),
		ast.NewCurrentInstanceRef(),
	)
}

func TestMoves(t *testing.T) {
	root := seedTree()
	tests := []struct {
		name string
		from string
		cmds string
		want string
	}{
		{"in from root", "$", "in", "$[0]"},
		{"in skips nil receiver and message", "$[0]", "in", "$[0][2]"},
		{"in to list head", "$[0][2]", "in", "$[0][2][0]"},
		{"in to leaf slot", "$[0][2][0]", "in", "$[0][2][0][0]"},
		{"in at leaf stays", "$[0][2][0][0]", "in", "$[0][2][0][0]"},
		{"in prefers node over leaf", "$[1]", "in", "$[1][1]"},
		{"in without children stays", "$[3]", "in", "$[3]"},
		{"in constant takes name", "$[2]", "in", "$[2][1]"},
		{"out", "$[1][2][0]", "out", "$[1][2]"},
		{"out at root", "$", "out", "$"},
		{"next", "$[1]", "next", "$[2]"},
		{"next wraps", "$[3]", "next", "$[0]"},
		{"prev at root", "$", "prev", "$"},
		{"next into nil slot", "$[0][2]", "next", "$[0][0]"},
		{"sequence", "$", "in next in next next", "$[1][0]"},
		{"noop", "$[1]", "noop", "$[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, err := ParseCommands(tt.cmds)
			if err != nil {
				t.Fatal(err)
			}
			s := At(root, ipath.MustParse(tt.from))
			if s.Path.String() != tt.from {
				t.Fatalf("fixture path %s clamped to %s", tt.from, s.Path)
			}
			got := s.Run(cmds...)
			if got.Path.String() != tt.want {
				t.Errorf("%s from %s = %s, want %s", tt.cmds, tt.from, got.Path, tt.want)
			}
			if got.Root != root {
				t.Error("navigation changed the root")
			}
		})
	}
}

func TestInsertArg(t *testing.T) {
	root := seedTree()
	tests := []struct {
		name     string
		from     string
		wantPath string
		listPath string
		wantLen  int
	}{
		{"into begin", "$[1]", "$[4]", "$", 5},
		{"into args", "$[0][2][0]", "$[0][2][1]", "$[0][2]", 2},
		{"into params", "$[1][1][0]", "$[1][1][1]", "$[1][1]", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := At(root, ipath.MustParse(tt.from)).InsertArg()
			if s.Path.String() != tt.wantPath {
				t.Errorf("path = %s, want %s", s.Path, tt.wantPath)
			}
			list := ast.Get(s.Root, ipath.MustParse(tt.listPath))
			if list.Len() != tt.wantLen {
				t.Errorf("list len = %d, want %d", list.Len(), tt.wantLen)
			}
			if !ast.Equal(s.Node(), ast.Leaf("")) {
				t.Errorf("selected %s", ast.Sprint(s.Node()))
			}
		})
	}
}

func TestInsertArgOutsideList(t *testing.T) {
	root := seedTree()
	for _, from := range []string{"$", "$[0][1]", "$[1][2]", "$[2][1]"} {
		t.Run(from, func(t *testing.T) {
			s := At(root, ipath.MustParse(from))
			got := s.InsertArg()
			if got.Root != s.Root || !got.Path.Equal(s.Path) {
				t.Errorf("InsertArg changed state to %s", got.Path)
			}
		})
	}
}

func TestSelected(t *testing.T) {
	root := seedTree()
	for _, p := range []string{"$", "$[0][0]", "$[0][2][0]", "$[1][1][0]", "$[3]"} {
		t.Run(p, func(t *testing.T) {
			s := At(root, ipath.MustParse(p))
			sel, err := s.Selected()
			if err != nil {
				t.Fatal(err)
			}
			paths := ast.SelectedPaths(sel)
			if diff := cmp.Diff([]ipath.Path{s.Path}, paths); diff != "" {
				t.Fatalf("selection paths mismatch (-want +got):\n%s", diff)
			}
			wrapped := ast.Get(sel, s.Path).(*ast.Selected)
			if !ast.Equal(wrapped.Target(), s.Node()) {
				t.Errorf("selection wraps %s, want %s", ast.Sprint(wrapped.Target()), ast.Sprint(s.Node()))
			}
			if len(ast.SelectedPaths(s.Root)) != 0 {
				t.Error("Selected marked the canonical root")
			}
		})
	}
}

func TestSelectedInsertionPoint(t *testing.T) {
	s := New(ast.NewCall(nil, "foo", ast.NewArgList())).MoveIn().MoveIn()
	sel, err := s.Selected()
	if err != nil {
		t.Fatal(err)
	}
	want := `Call(nil, "foo", ArgList(Selected(nil)))`
	if got := ast.Sprint(sel); got != want {
		t.Errorf("Selected() = %s, want %s", got, want)
	}
}

func TestSelectedRejectsMarkedRoot(t *testing.T) {
	s := New(ast.NewBegin(ast.NewSelected(nil)))
	if _, err := s.Selected(); !errors.Is(err, ast.ErrShapeMismatch) {
		t.Errorf("err = %v", err)
	}
}

func TestParseCommand(t *testing.T) {
	for _, c := range AllCommands() {
		d, err := c.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Command
		if err := got.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if got != c {
			t.Errorf("round trip %s gave %s", c, got)
		}
	}
	cmds, err := ParseCommands("i, i,a  o")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Command{Descend, Descend, Insert, Ascend}, cmds); diff != "" {
		t.Errorf("ParseCommands mismatch (-want +got):\n%s", diff)
	}
	if _, err := ParseCommand("jump"); !errors.Is(err, ErrBadCommand) {
		t.Errorf("err = %v", err)
	}
}
