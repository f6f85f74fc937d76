package main

import (
	"fmt"

	"github.com/JoshCheek/ast-editing/ast"
	"github.com/JoshCheek/ast-editing/query"

	"github.com/scott-cotton/cli"
)

func findPaths(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires a query argument", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	root, err := cfg.load(cc, args[1:])
	if err != nil {
		return err
	}
	ps, err := q.Find(root)
	if err != nil {
		return err
	}
	for _, p := range ps {
		if !cfg.Verbose {
			fmt.Fprintf(cc.Out, "%s\n", p)
			continue
		}
		fmt.Fprintf(cc.Out, "%s\t%s\n", p, ast.Sprint(ast.Get(root, p)))
	}
	return nil
}
