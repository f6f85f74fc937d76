package astedit

import (
	"strings"

	"github.com/JoshCheek/ast-editing/ast"
	"github.com/JoshCheek/ast-editing/render/text"
	"github.com/JoshCheek/ast-editing/syntax"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffSyntaxes renders tree without colour in syntaxes a and b and
// returns the character diff from a to b.
func DiffSyntaxes(tree ast.Node, a, b syntax.Syntax) ([]diffpatch.Diff, error) {
	from, err := plain(tree, a)
	if err != nil {
		return nil, err
	}
	to, err := plain(tree, b)
	if err != nil {
		return nil, err
	}
	dmp := diffpatch.New()
	multiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := dmp.DiffMain(from, to, multiLine)
	return dmp.DiffCleanupSemantic(diffs), nil
}

func plain(tree ast.Node, s syntax.Syntax) (string, error) {
	r, err := Renderer(s)
	if err != nil {
		return "", err
	}
	f, err := r.Render(tree)
	if err != nil {
		return "", err
	}
	res, err := text.String(f)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(res, "\n"), nil
}

// FormatDiff writes diffs as text, with deletions in "[-…-]" and
// insertions in "{+…+}". With colors the markers are replaced by red and
// green text.
func FormatDiff(diffs []diffpatch.Diff, color bool) string {
	if color {
		return diffpatch.New().DiffPrettyText(diffs)
	}
	b := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		}
	}
	return b.String()
}
