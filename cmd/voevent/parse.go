package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/go-voevent/encode"
	"github.com/signadot/go-voevent/voevent"
)

func parse(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
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
		if err := writeDocument(cfg, cc.Out, doc); err != nil {
			return fmt.Errorf("error writing %s: %w", file, err)
		}
	}
	return nil
}

func writeDocument(cfg *ParseConfig, w io.Writer, doc *voevent.Document) error {
	if cfg.OutFormat == nil {
		_, err := io.WriteString(w, doc.Summary())
		return err
	}
	encOpts, err := cfg.encOpts(w, cfg.OutFormat)
	if err != nil {
		return err
	}
	return encode.Encode(doc.IR(), w, encOpts...)
}

func loadDocument(cc *cli.Context, file string, opts []voevent.Option) (*voevent.Document, error) {
	if file == "-" {
		doc, err := voevent.ParseReader(cc.In, opts...)
		if err != nil {
			return nil, fmt.Errorf("<stdin>: %w", err)
		}
		return doc, nil
	}
	return voevent.ParseFile(file, opts...)
}
