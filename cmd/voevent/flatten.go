package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/scott-cotton/cli"
	"github.com/signadot/go-voevent/encode"
	"github.com/signadot/go-voevent/format"
	"github.com/signadot/go-voevent/ir"
	"github.com/signadot/go-voevent/voevent"
	"github.com/signadot/go-voevent/xmlnode"
)

func flatten(cfg *FlattenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Flatten.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := flattenFile(cfg, cc, file); err != nil {
			return err
		}
	}
	return nil
}

func loadTree(cc *cli.Context, file string) (*etree.Document, error) {
	if file == "-" {
		return xmlnode.Load(cc.In)
	}
	return xmlnode.LoadFile(file)
}

// flattenTree validates tree as a VOEvent and then flattens all of it.
func flattenTree(cfg *MainConfig, tree *etree.Document) (*ir.Node, error) {
	opts, err := cfg.docOpts()
	if err != nil {
		return nil, err
	}
	if err := voevent.New(tree, opts...).Parse(); err != nil {
		return nil, err
	}
	s, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	node, err := xmlnode.FlattenDocument(tree, s.Conversion, s.Strip())
	if err != nil {
		return nil, err
	}
	return node.IR()
}

func flattenFile(cfg *FlattenConfig, cc *cli.Context, file string) error {
	tree, err := loadTree(cc, file)
	if err != nil {
		return err
	}
	y, err := flattenTree(cfg.MainConfig, tree)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	if cfg.Stdout || file == "-" {
		opts, err := cfg.encOpts(cc.Out, cfg.OutFormat)
		if err != nil {
			return err
		}
		return encode.Encode(y, cc.Out, opts...)
	}
	buf := bytes.NewBuffer(nil)
	opts, err := cfg.encOpts(buf, cfg.OutFormat)
	if err != nil {
		return err
	}
	if err := encode.Encode(y, buf, opts...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	out := outPath(file, encode.FormatFromOpts(opts...))
	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		return err
	}
	theLog.Info("flattened", "in", file, "out", out)
	return nil
}

func outPath(file string, f format.Format) string {
	return strings.TrimSuffix(file, filepath.Ext(file)) + f.Suffix()
}
