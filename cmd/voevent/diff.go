package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/go-voevent/ir"
	"github.com/signadot/go-voevent/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Apply != "" {
		return apply(cfg, cc, args)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := flattenArg(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	y2, err := flattenArg(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if ir.Equal(y1, y2) {
		return nil
	}
	lines, err := libdiff.Nodes(y1, y2)
	if err != nil {
		return err
	}
	// values unequal in the tree can still render identically
	if !libdiff.Changed(lines) {
		return nil
	}
	if cfg.Patch {
		patch, err := libdiff.MergePatch(y1, y2)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(cc.Out, "%s\n", patch); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	if err := libdiff.Write(cc.Out, lines, cfg.Context, cfg.colored(cc.Out)); err != nil {
		return fmt.Errorf("unable to write diff: %w", err)
	}
	return cli.ExitCodeErr(1)
}

// apply prints the flattened form of a single document with the patch in
// cfg.Apply applied.
func apply(cfg *DiffConfig, cc *cli.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: diff -apply requires 1 arg, got %v", cli.ErrUsage, args)
	}
	patch, err := os.ReadFile(cfg.Apply)
	if err != nil {
		return err
	}
	y, err := flattenArg(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	res, err := applyPatch(y, patch)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Apply, err)
	}
	_, err = fmt.Fprintf(cc.Out, "%s\n", res)
	return err
}

// applyPatch treats a JSON array as an RFC 6902 patch and anything else as
// an RFC 7386 merge patch.
func applyPatch(y *ir.Node, patch []byte) ([]byte, error) {
	if bytes.HasPrefix(bytes.TrimSpace(patch), []byte("[")) {
		return libdiff.ApplyPatch(y, patch)
	}
	return libdiff.ApplyMergePatch(y, patch)
}

func flattenArg(cfg *MainConfig, cc *cli.Context, file string) (*ir.Node, error) {
	tree, err := loadTree(cc, file)
	if err != nil {
		return nil, err
	}
	y, err := flattenTree(cfg, tree)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return y, nil
}
