package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/go-voevent/coerce"
	"github.com/signadot/go-voevent/config"
	"github.com/signadot/go-voevent/encode"
	"github.com/signadot/go-voevent/format"
	"github.com/signadot/go-voevent/voevent"
)

type MainConfig struct {
	ConfigFile string `cli:"name=c aliases=config desc='configuration file'"`
	NoStrip    bool   `cli:"name=nostrip desc='keep whitespace around element text'"`
	Color      bool   `cli:"name=color desc='output with color'"`
	Gops       bool   `cli:"name=gops desc='start a gops diagnostics agent'"`
	Verbose    bool   `cli:"name=v desc='log extracted sections'"`

	Conversion *coerce.Mode

	settings *config.Config

	Main *cli.Command
}

func (cfg *MainConfig) conversionOpt(_ *cli.Context, v string) (any, error) {
	m, err := coerce.ParseMode(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Conversion = &m
	return m, nil
}

func outFormatOpt(dst **format.Format) *cli.Opt {
	return &cli.Opt{
		Name:        "O",
		Aliases:     []string{"ofmt"},
		Description: "output format: json/j, yaml/y",
		Type: cli.NamedFuncOpt(func(_ *cli.Context, v string) (any, error) {
			f, err := format.ParseFormat(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
			}
			*dst = &f
			return f, nil
		}, "(format)"),
	}
}

// Settings returns the configuration file, or the defaults, overridden by
// the command line.
func (cfg *MainConfig) Settings() (*config.Config, error) {
	if cfg.settings != nil {
		return cfg.settings, nil
	}
	res := config.DefaultConfig()
	if cfg.ConfigFile != "" {
		c, err := config.LoadConfig(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		res = c
	}
	if cfg.Conversion != nil {
		res.Conversion = *cfg.Conversion
	}
	if cfg.NoStrip {
		strip := false
		res.StripWhitespace = &strip
	}
	if cfg.Color {
		res.Color = &cfg.Color
	}
	cfg.settings = res
	return res, nil
}

func (cfg *MainConfig) docOpts() ([]voevent.Option, error) {
	s, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	res := []voevent.Option{voevent.WithConversion(s.Conversion)}
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
		res = append(res, voevent.WithLogger(theLog))
	}
	return res, nil
}

// colored reports whether output to w should be colored: as configured,
// else when w is a terminal.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.settings != nil && cfg.settings.Color != nil {
		return *cfg.settings.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer, fmtOverride *format.Format) ([]encode.EncodeOption, error) {
	s, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	f := s.Format
	if fmtOverride != nil {
		f = *fmtOverride
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.Indent(s.Indent),
	}
	if cfg.colored(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res, nil
}

type ParseConfig struct {
	*MainConfig

	OutFormat *format.Format

	Parse *cli.Command
}

type FlattenConfig struct {
	*MainConfig

	Stdout    bool `cli:"name=stdout desc='write to standard output instead of files'"`
	OutFormat *format.Format

	Flatten *cli.Command
}

type FilterConfig struct {
	*MainConfig

	Expr   string `cli:"name=e desc='filter expression'"`
	Invert bool   `cli:"name=invert desc='print files which do not match'"`

	Filter *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Patch   bool   `cli:"name=patch desc='print a JSON merge patch'"`
	Context int    `cli:"name=context desc='unchanged lines shown around changes'"`
	Apply   string `cli:"name=apply desc='apply a JSON patch or merge patch file to one flattened document'"`

	Diff *cli.Command
}
