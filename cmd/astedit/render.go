package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	astedit "github.com/JoshCheek/ast-editing"
	"github.com/JoshCheek/ast-editing/render/text"
	"github.com/JoshCheek/ast-editing/syntax"

	"github.com/scott-cotton/cli"
)

func renderViews(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	st, err := cfg.state(cc, args)
	if err != nil {
		return err
	}
	syntaxes := cfg.Syntaxes
	if len(syntaxes) == 0 {
		syntaxes = syntax.AllSyntaxes()
	}
	e := astedit.NewEditor(st.Root, astedit.EditorAt(st.Path), astedit.EditorSyntaxes(syntaxes...))
	views, err := e.Render(context.Background())
	if err != nil {
		return err
	}
	if cfg.JSON {
		enc := json.NewEncoder(cc.Out)
		enc.SetIndent("", "  ")
		for _, v := range views {
			if err := enc.Encode(v.Fragment); err != nil {
				return fmt.Errorf("error encoding %s fragment: %w", v.Syntax, err)
			}
		}
		return nil
	}
	if cfg.Write != "" {
		return writeViews(cfg, cc, views)
	}
	opts := cfg.printOpts(cc.Out)
	for i, v := range views {
		if len(views) > 1 {
			fmt.Fprintf(cc.Out, "# %s\n", v.Syntax)
		}
		if err := text.Print(cc.Out, v.Fragment, opts...); err != nil {
			return fmt.Errorf("error printing %s: %w", v.Syntax, err)
		}
		if i < len(views)-1 {
			fmt.Fprintln(cc.Out)
		}
	}
	return nil
}

// writeViews writes each view, without colour or selection marks, to its
// own file named by -w.
func writeViews(cfg *RenderConfig, cc *cli.Context, views []astedit.View) error {
	for _, v := range views {
		name := viewFile(cfg.Write, v.Syntax)
		f, err := os.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
		if err != nil {
			return err
		}
		if err := text.Print(f, v.Fragment); err != nil {
			f.Close()
			return fmt.Errorf("error writing %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", name)
	}
	return nil
}
