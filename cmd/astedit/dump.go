package main

import (
	"github.com/JoshCheek/ast-editing/seed"

	"github.com/scott-cotton/cli"
)

func dumpSeed(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	st, err := cfg.state(cc, args)
	if err != nil {
		return err
	}
	n := st.Root
	if cfg.Sel {
		if n, err = st.Selected(); err != nil {
			return err
		}
	}
	return seed.Encode(cc.Out, n, cfg.J)
}
