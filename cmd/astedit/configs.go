package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/JoshCheek/ast-editing/ast"
	"github.com/JoshCheek/ast-editing/ast/ipath"
	"github.com/JoshCheek/ast-editing/cursor"
	"github.com/JoshCheek/ast-editing/render/text"
	"github.com/JoshCheek/ast-editing/seed"
	"github.com/JoshCheek/ast-editing/syntax"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool   `cli:"name=color desc='print with color'"`
	Do    string `cli:"name=do desc='cursor commands to apply first, e.g. in,in,insert'"`
	Open  string `cli:"name=open desc='selection open mark when printing without color'"`
	Close string `cli:"name=close desc='selection close mark when printing without color'"`

	At ipath.Path

	Main *cli.Command
}

func (cfg *MainConfig) pathFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		p, err := ipath.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.At = p
		return p, nil
	})
}

// load reads the seed named by args, or returns the built-in example when
// there is none. "-" reads standard input.
func (cfg *MainConfig) load(cc *cli.Context, args []string) (ast.Node, error) {
	switch len(args) {
	case 0:
		return seed.Example(), nil
	case 1:
	default:
		return nil, fmt.Errorf("%w: expected at most one seed file, got %d", cli.ErrUsage, len(args))
	}
	if args[0] == "-" {
		return seed.Read(cc.In)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", args[0], err)
	}
	defer f.Close()
	n, err := seed.Read(f)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", args[0], err)
	}
	return n, nil
}

// state loads the tree and applies -at then -do.
func (cfg *MainConfig) state(cc *cli.Context, args []string) (cursor.State, error) {
	root, err := cfg.load(cc, args)
	if err != nil {
		return cursor.State{}, err
	}
	cmds, err := cfg.commands()
	if err != nil {
		return cursor.State{}, err
	}
	return cursor.New(root).Goto(cfg.At).Run(cmds...), nil
}

func (cfg *MainConfig) commands() ([]cursor.Command, error) {
	cmds, err := cursor.ParseCommands(cfg.Do)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return cmds, nil
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) printOpts(w io.Writer) []text.PrintOption {
	res := []text.PrintOption{text.EmptyGlyph("·")}
	if cfg.useColor(w) {
		return append(res, text.WithColors(text.NewColors()))
	}
	op, cl := cfg.Open, cfg.Close
	if op == "" && cl == "" {
		op, cl = "«", "»"
	}
	return append(res, text.SelectionMarks(op, cl))
}

// viewFile names the file the view in s is written to under -w base.
func viewFile(base string, s syntax.Syntax) string {
	return base + s.Suffix()
}

func syntaxList(v string) ([]syntax.Syntax, error) {
	var res []syntax.Syntax
	for _, f := range strings.Split(v, ",") {
		s, err := syntax.ParseSyntax(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, nil
}

type RenderConfig struct {
	*MainConfig
	JSON  bool   `cli:"name=json desc='write the fragment trees as json'"`
	Write string `cli:"name=w desc='write each syntax to this name plus its suffix (.rb, .js) instead of stdout'"`

	Syntaxes []syntax.Syntax
	Render   *cli.Command
}

func (cfg *RenderConfig) syntaxesFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		ss, err := syntaxList(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Syntaxes = ss
		return ss, nil
	})
}

type NavConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only print paths'"`

	Nav *cli.Command
}

type FindConfig struct {
	*MainConfig
	Verbose bool `cli:"name=v desc='print each matching node too'"`

	Find *cli.Command
}

type DiffConfig struct {
	*MainConfig
	A, B *syntax.Syntax

	Diff *cli.Command
}

func (cfg *DiffConfig) syntaxFunc(sp **syntax.Syntax) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		s, err := syntax.ParseSyntax(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*sp = &s
		return s, nil
	})
}

type DumpConfig struct {
	*MainConfig
	J   bool `cli:"name=j aliases=json desc='write json instead of yaml'"`
	Sel bool `cli:"name=sel desc='include the selection marker'"`

	Dump *cli.Command
}
