package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/go-voevent/voevent"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	s, err := cfg.Settings()
	if err != nil {
		return err
	}
	src := cfg.Expr
	if src == "" {
		src = s.Filter
	}
	if src == "" {
		return fmt.Errorf("%w: filter requires -e or a configured filter", cli.ErrUsage)
	}
	f, err := voevent.CompileFilter(src)
	if err != nil {
		return err
	}
	opts, err := cfg.docOpts()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		doc, err := loadDocument(cc, file, opts)
		if err != nil {
			return err
		}
		ok, err := f.Match(doc)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if ok != cfg.Invert {
			fmt.Fprintln(cc.Out, file)
		}
	}
	return nil
}
