package main

import (
	"fmt"

	astedit "github.com/JoshCheek/ast-editing"
	"github.com/JoshCheek/ast-editing/syntax"

	"github.com/scott-cotton/cli"
)

func diffViews(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	st, err := cfg.state(cc, args)
	if err != nil {
		return err
	}
	a, b := syntax.RubySyntax, syntax.EcmaSyntax
	if cfg.A != nil {
		a = *cfg.A
	}
	if cfg.B != nil {
		b = *cfg.B
	}
	sel, err := st.Selected()
	if err != nil {
		return err
	}
	diffs, err := astedit.DiffSyntaxes(sel, a, b)
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, astedit.FormatDiff(diffs, cfg.useColor(cc.Out)))
	return nil
}
