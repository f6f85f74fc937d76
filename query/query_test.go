package query

import (
	"errors"
	"testing"

	"github.com/JoshCheek/ast-editing/ast"
	"github.com/JoshCheek/ast-editing/ast/ipath"
)

// tree:
//
//	$           Begin
//	$[0]          Call(nil, "require", ArgList(StringLiteral("x")))
//	$[1]          MethodDef("call", ParamList("event"), Begin(...))
//	$[1][2][0]      Assign(InstanceVarRef("a"), LocalVarRef("event"))
//	$[1][2][1]      ReturnStmt(nil)
func tree() ast.Node {
	return ast.NewBegin(
		ast.NewCall(nil, "require", ast.NewArgList(ast.NewString("x"))),
		ast.NewMethodDef("call", ast.NewParamList("event"), ast.NewBegin(
			ast.NewAssign(ast.NewInstanceVarRef("a"), ast.NewLocalVarRef("event")),
			ast.NewReturnStmt(nil),
		)),
	)
}

func paths(ps []ipath.Path) []string {
	res := make([]string, len(ps))
	for i, p := range ps {
		res[i] = p.String()
	}
	return res
}

func TestFind(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"by tag", `tag == "Call"`, []string{"$[0]"}},
		{"by field", `tag == "MethodDef" && field("message") == "call"`, []string{"$[1]"}},
		{"field node tag", `field("args") == "ArgList"`, []string{"$[0]"}},
		{"absent field", `tag == "ReturnStmt" && field("value") == ""`, []string{"$[1][2][1]"}},
		{"leaf text", `text == "event"`, []string{"$[1][1][0]", "$[1][2][0][1][0]"}},
		{"parent", `parent == "ParamList"`, []string{"$[1][1][0]"}},
		{"depth", `depth == 1`, []string{"$[0]", "$[1]"}},
		{"root", `index == -1`, []string{"$"}},
		{"child", `child(0) == "InstanceVarRef"`, []string{"$[1][2][0]"}},
		{"lists", `variadic(tag) && size > 0`, []string{"$", "$[0][2]", "$[1][1]", "$[1][2]"}},
		{"path", `path == "$[1][2]"`, []string{"$[1][2]"}},
		{"none", `tag == "ClassDef"`, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Find(tree(), tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if g := paths(got); !equal(g, tt.want) {
				t.Errorf("Find(%s) = %v, want %v", tt.src, g, tt.want)
			}
		})
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`tag ==`, `tag`, `nosuch == 1`} {
		t.Run(src, func(t *testing.T) {
			if _, err := Compile(src); !errors.Is(err, ErrQuery) {
				t.Errorf("err = %v, want ErrQuery", err)
			}
		})
	}
}

func TestFindsAreIndependent(t *testing.T) {
	q := MustCompile(`tag == "LocalVarRef"`)
	a, err := q.Find(tree())
	if err != nil {
		t.Fatal(err)
	}
	b, err := q.Find(ast.NewBegin(ast.NewLocalVarRef("z")))
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != 1 || len(b) != 1 || !b[0].Equal(ipath.Path{0}) {
		t.Errorf("got %v and %v", paths(a), paths(b))
	}
	if q.String() != `tag == "LocalVarRef"` {
		t.Errorf("String() = %q", q)
	}
}
