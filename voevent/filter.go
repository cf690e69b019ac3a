package voevent

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/go-voevent/ir"
)

// Filter is a compiled boolean expression over a Document's Env.  Besides
// the Env keys, expressions may call param("Group.name"), which returns the
// value of a What Param or nil.
type Filter struct {
	src string
	prg *vm.Program
}

func CompileFilter(src string) (*Filter, error) {
	prg, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", src, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) String() string { return f.src }

// Match evaluates f against d.
func (f *Filter) Match(d *Document) (bool, error) {
	env := d.Env()
	env["param"] = func(path string) any {
		p, ok := d.What.Param(path)
		if !ok {
			return nil
		}
		return ir.ToJSONAny(p.Value.IR())
	}
	res, err := vm.Run(f.prg, env)
	if err != nil {
		return false, fmt.Errorf("filter %q: %w", f.src, err)
	}
	b, _ := res.(bool)
	return b, nil
}
