package main

import (
	"errors"
	"testing"

	"github.com/JoshCheek/ast-editing/syntax"

	"github.com/google/go-cmp/cmp"
)

func TestSyntaxList(t *testing.T) {
	got, err := syntaxList("rb, js,ruby")
	if err != nil {
		t.Fatal(err)
	}
	want := []syntax.Syntax{syntax.RubySyntax, syntax.EcmaSyntax, syntax.RubySyntax}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("syntaxList (-want +got):\n%s", diff)
	}
	if _, err := syntaxList("rb,cobol"); !errors.Is(err, syntax.ErrBadSyntax) {
		t.Errorf("err = %v", err)
	}
}

func TestViewFile(t *testing.T) {
	if got := viewFile("out/tree", syntax.RubySyntax); got != "out/tree.rb" {
		t.Errorf("viewFile = %q", got)
	}
	if got := viewFile("tree", syntax.EcmaSyntax); got != "tree.js" {
		t.Errorf("viewFile = %q", got)
	}
}
