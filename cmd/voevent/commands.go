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
		Name:        "conversion",
		Description: "value conversion: force, always, given, none",
		Type:        cli.NamedFuncOpt(cfg.conversionOpt, "(mode)"),
	})
	return cli.NewCommandAt(&cfg.Main, "voevent").
		WithSynopsis("voevent [opts] command [opts]").
		WithDescription("voevent validates and converts VOEvent alert documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return voeventMain(cfg, cc, args)
		}).
		WithSubs(
			ParseCommand(cfg),
			FlattenCommand(cfg),
			FilterCommand(cfg),
			DiffCommand(cfg))
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, outFormatOpt(&cfg.OutFormat))
	return cli.NewCommandAt(&cfg.Parse, "parse").
		WithAliases("p").
		WithSynopsis("parse [-O json|yaml] [files]").
		WithDescription("validate VOEvent documents and summarize their contents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return parse(cfg, cc, args)
		})
}

func FlattenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FlattenConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, outFormatOpt(&cfg.OutFormat))
	return cli.NewCommandAt(&cfg.Flatten, "flatten").
		WithAliases("f", "fl").
		WithSynopsis("flatten [-stdout] [-O json|yaml] [files]").
		WithDescription(flattenDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return flatten(cfg, cc, args)
		})
}

const flattenDescription = `flatten converts whole XML documents into nested values.

Each document is first validated as a VOEvent.  Then every element, the root
included, becomes an object with the keys tag, name, text, attributes, value
and children.  Values are converted according to -conversion.

The result for a.xml is written to a.json (or a.yaml with -O yaml) in the
same directory, unless -stdout is given or the input is standard input.`

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Filter, "filter").
		WithAliases("fi").
		WithSynopsis("filter -e <expr> [files]").
		WithDescription(filterDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
}

const filterDescription = `filter prints the files whose documents satisfy an expression.

The expression sees the parsed document, for example

  role == "observation" && wherewhen.position2d.dec < 0
  what.Burst_Inten.value > 1000
  param("Solution_Status.Point_Source") == true

When -e is not given, the filter from the configuration file is used.`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-patch] a.xml b.xml | diff -apply patch.json a.xml").
		WithDescription("diff the flattened forms of two documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
