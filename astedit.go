// Package astedit ties the tree, cursor and renderers together: it picks
// a renderer per surface syntax, renders several syntaxes at once, diffs
// their output, and keeps an editing session.
package astedit

import (
	"context"
	"fmt"

	"github.com/JoshCheek/ast-editing/ast"
	"github.com/JoshCheek/ast-editing/render"
	"github.com/JoshCheek/ast-editing/render/ecma"
	"github.com/JoshCheek/ast-editing/render/ruby"
	"github.com/JoshCheek/ast-editing/syntax"

	"golang.org/x/sync/errgroup"
)

// Renderer returns the renderer for s.
func Renderer(s syntax.Syntax) (*render.Renderer, error) {
	switch s {
	case syntax.RubySyntax:
		return ruby.New(), nil
	case syntax.EcmaSyntax:
		return ecma.New(), nil
	default:
		return nil, fmt.Errorf("%w: no renderer for %d", syntax.ErrBadSyntax, s)
	}
}

// RenderAll renders tree in each of syntaxes concurrently. The fragments
// are returned in the order of syntaxes. The first error stops the rest.
func RenderAll(ctx context.Context, tree ast.Node, syntaxes ...syntax.Syntax) ([]*render.Fragment, error) {
	res := make([]*render.Fragment, len(syntaxes))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range syntaxes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := Renderer(s)
			if err != nil {
				return err
			}
			f, err := r.Render(tree)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", s, err)
			}
			res[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
