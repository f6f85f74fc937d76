package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "at",
		Description: "start with the selection at this path, e.g. $[1][0]",
		Type:        cli.NamedFuncOpt(cfg.pathFunc(), "(path)"),
	})

	return cli.NewCommandAt(&cfg.Main, "astedit").
		WithSynopsis("astedit [opts] command [opts] [seed]").
		WithDescription("astedit navigates and renders a syntax tree in several surface syntaxes.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return asteditMain(cfg, cc, args)
		}).
		WithSubs(
			RenderCommand(cfg),
			NavCommand(cfg),
			FindCommand(cfg),
			DiffCommand(cfg),
			DumpCommand(cfg))
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "s",
		Aliases:     []string{"syntax"},
		Description: "syntaxes to render, comma separated: ruby/rb, ecma/js (default all)",
		Type:        cli.NamedFuncOpt(cfg.syntaxesFunc(), "(syntaxes)"),
	})
	cmd := cli.NewCommand("render").
		WithAliases("r", "view").
		WithSynopsis("render [-s syntaxes] [-json] [-w name] [seed]").
		WithDescription("render the selected tree in each syntax").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return renderViews(cfg, cc, args)
		})
	cfg.Render = cmd
	return cmd
}

func NavCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NavConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("nav").
		WithAliases("n").
		WithSynopsis("nav -do commands [seed]").
		WithDescription("apply cursor commands one at a time, showing each selection").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return navigate(cfg, cc, args)
		})
	cfg.Nav = cmd
	return cmd
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("find").
		WithAliases("f", "q").
		WithSynopsis("find [-v] query [seed]").
		WithDescription("list the paths of nodes matching an expr query, e.g. 'tag == \"Call\"'").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return findPaths(cfg, cc, args)
		})
	cfg.Find = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "a",
			Description: "syntax to diff from (default ruby)",
			Type:        cli.NamedFuncOpt(cfg.syntaxFunc(&cfg.A), "(syntax)"),
		},
		&cli.Opt{
			Name:        "b",
			Description: "syntax to diff to (default ecma)",
			Type:        cli.NamedFuncOpt(cfg.syntaxFunc(&cfg.B), "(syntax)"),
		})
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff [-a syntax] [-b syntax] [seed]").
		WithDescription("show the character diff between two renderings").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diffViews(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("dump").
		WithSynopsis("dump [-j] [-sel] [seed]").
		WithDescription("write the tree as a yaml or json seed").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dumpSeed(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}
