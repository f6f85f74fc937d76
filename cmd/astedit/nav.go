package main

import (
	"fmt"

	"github.com/JoshCheek/ast-editing/ast"
	"github.com/JoshCheek/ast-editing/cursor"

	"github.com/scott-cotton/cli"
)

func navigate(cfg *NavConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Nav.Parse(cc, args)
	if err != nil {
		return err
	}
	cmds, err := cfg.commands()
	if err != nil {
		return err
	}
	if len(cmds) == 0 {
		return fmt.Errorf("%w: nav requires -do commands", cli.ErrUsage)
	}
	root, err := cfg.load(cc, args)
	if err != nil {
		return err
	}
	st := cursor.New(root).Goto(cfg.At)
	show := func(label string) {
		if cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s\n", st.Path)
			return
		}
		fmt.Fprintf(cc.Out, "%-10s %-24s %s\n", label, st.Path, ast.Sprint(st.Node()))
	}
	show("start")
	for _, c := range cmds {
		st = st.Apply(c)
		show(c.String())
	}
	return nil
}
