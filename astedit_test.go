package astedit

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/JoshCheek/ast-editing/ast"
	"github.com/JoshCheek/ast-editing/ast/ipath"
	"github.com/JoshCheek/ast-editing/cursor"
	"github.com/JoshCheek/ast-editing/query"
	"github.com/JoshCheek/ast-editing/render"
	"github.com/JoshCheek/ast-editing/render/text"
	"github.com/JoshCheek/ast-editing/seed"
	"github.com/JoshCheek/ast-editing/syntax"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func TestRenderer(t *testing.T) {
	for _, s := range syntax.AllSyntaxes() {
		r, err := Renderer(s)
		if err != nil {
			t.Fatal(err)
		}
		if r.Dialect().Name() != s.String() {
			t.Errorf("renderer for %s is %s", s, r.Dialect().Name())
		}
	}
	if _, err := Renderer(syntax.Syntax(9)); !errors.Is(err, syntax.ErrBadSyntax) {
		t.Errorf("err = %v", err)
	}
}

func TestRenderAll(t *testing.T) {
	tree := seed.Example()
	fs, err := RenderAll(context.Background(), tree, syntax.EcmaSyntax, syntax.RubySyntax, syntax.EcmaSyntax)
	if err != nil {
		t.Fatal(err)
	}
	if len(fs) != 3 {
		t.Fatalf("got %d fragments", len(fs))
	}
	if !render.Equal(fs[0], fs[2]) {
		t.Error("rendering the same tree twice differs")
	}
	if render.Equal(fs[0], fs[1]) {
		t.Error("ecma and ruby renderings are identical")
	}
	rb := text.MustString(fs[1])
	if !strings.HasPrefix(rb, `require("seeing_is_believing/event_stream/events")`+"\nclass SeeingIsBelieving\n  module EventStream") {
		t.Errorf("unexpected ruby rendering:\n%s", rb)
	}
	js := text.MustString(fs[0])
	for _, want := range []string{`attr_reader(Symbol.for("exitstatus"))`, "case Events.ExitStatus:", "this.exitstatus = event.value()"} {
		if !strings.Contains(js, want) {
			t.Errorf("ecma rendering lacks %q:\n%s", want, js)
		}
	}
}

func TestRenderAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RenderAll(ctx, seed.Example(), syntax.AllSyntaxes()...)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v", err)
	}
}

func TestDiffSyntaxes(t *testing.T) {
	tree := ast.NewConstant(ast.NewConstant(nil, "Events"), "ExitStatus")
	diffs, err := DiffSyntaxes(tree, syntax.RubySyntax, syntax.EcmaSyntax)
	if err != nil {
		t.Fatal(err)
	}
	var same, del, ins string
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			same += d.Text
		case diffpatch.DiffDelete:
			del += d.Text
		case diffpatch.DiffInsert:
			ins += d.Text
		}
	}
	if same != "EventsExitStatus" || del != "::" || ins != "." {
		t.Errorf("diff kept %q, deleted %q, inserted %q", same, del, ins)
	}
	if got := FormatDiff(diffs, false); got != "Events[-::-]{+.+}ExitStatus" {
		t.Errorf("FormatDiff = %q", got)
	}
}

func TestDiffSameSyntax(t *testing.T) {
	diffs, err := DiffSyntaxes(seed.Example(), syntax.RubySyntax, syntax.RubySyntax)
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			t.Fatalf("unexpected %s %q", d.Type, d.Text)
		}
	}
}

func TestEditorInsert(t *testing.T) {
	e := NewEditor(ast.NewCall(nil, "foo", ast.NewArgList()))
	s := e.Do(cursor.Descend, cursor.Descend, cursor.Insert)
	if s.Path.String() != "$[2][0]" {
		t.Fatalf("path = %s", s.Path)
	}
	if n := ast.MustField(e.Root(), "args").Len(); n != 1 {
		t.Fatalf("args len = %d", n)
	}
	views, err := e.Render(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(views) != 2 {
		t.Fatalf("got %d views", len(views))
	}
	for _, v := range views {
		if got := text.MustString(v.Fragment, text.SelectionMarks("<", ">")); got != "foo(<_>)" {
			t.Errorf("%s view = %q", v.Syntax, got)
		}
	}
	if len(ast.SelectedPaths(e.Root())) != 0 {
		t.Error("rendering marked the session tree")
	}
}

func TestEditorSeek(t *testing.T) {
	e := NewEditor(seed.Example(), EditorSyntaxes(syntax.RubySyntax))
	steps := []string{"$[0]", "$[1][2][1][1][2][0]", "$[1][2][1][1][2][1]"}
	for _, want := range steps {
		ok, err := e.Seek(`tag == "Call"`)
		if err != nil {
			t.Fatal(err)
		}
		if !ok || e.Path().String() != want {
			t.Fatalf("Seek = %t at %s, want %s", ok, e.Path(), want)
		}
	}
	e.Goto(ipath.MustParse("$[1][2][1][1][2][3][2][1][0]"))
	if ok, _ := e.Seek(`tag == "Call"`); !ok || e.Path().String() != "$[0]" {
		t.Errorf("Seek did not wrap: %s", e.Path())
	}
	before := e.Path()
	if ok, err := e.Seek(`tag == "ClassDef" && field("superclass") != ""`); ok || err != nil {
		t.Errorf("Seek = %t, %v", ok, err)
	}
	if !e.Path().Equal(before) {
		t.Error("failed Seek moved the selection")
	}
	if _, err := e.Seek(`tag ==`); !errors.Is(err, query.ErrQuery) {
		t.Errorf("err = %v", err)
	}
	views, err := e.Render(context.Background())
	if err != nil || len(views) != 1 || views[0].Syntax != syntax.RubySyntax {
		t.Errorf("Render = %v, %v", views, err)
	}
}

func TestEditorAt(t *testing.T) {
	e := NewEditor(seed.Example(), EditorAt(ipath.Path{1, 99}))
	if e.Path().String() != "$[1][0]" {
		t.Errorf("start path = %s", e.Path())
	}
}
