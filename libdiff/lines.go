package libdiff

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/go-voevent/encode"
	"github.com/signadot/go-voevent/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) prefix() string {
	switch o {
	case Insert:
		return "+ "
	case Delete:
		return "- "
	default:
		return "  "
	}
}

// Line is a line of from or to, without its newline.
type Line struct {
	Op   Op
	Text string
}

// Lines computes a line oriented diff from from to to.
func Lines(from, to string) []Line {
	diffCfg := diffpatch.New()
	a, b, lineArray := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lineArray)
	var res []Line
	for i := range diffs {
		diff := &diffs[i]
		op := Equal
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, ln := range strings.SplitAfter(diff.Text, "\n") {
			if ln == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(ln, "\n")})
		}
	}
	return res
}

// Nodes diffs the indented JSON renderings of from and to.
func Nodes(from, to *ir.Node) ([]Line, error) {
	a, err := render(from)
	if err != nil {
		return nil, err
	}
	b, err := render(to)
	if err != nil {
		return nil, err
	}
	return Lines(a, b), nil
}

func render(node *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func Changed(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != Equal {
			return true
		}
	}
	return false
}

// Write prints the changed lines with up to context unchanged lines around
// each change.  Skipped runs of lines are shown as "...".
func Write(w io.Writer, lines []Line, context int, colored bool) error {
	keep := make([]bool, len(lines))
	for i := range lines {
		if lines[i].Op == Equal {
			continue
		}
		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			keep[j] = true
		}
	}
	ins := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	if colored {
		ins.EnableColor()
		del.EnableColor()
	} else {
		ins.DisableColor()
		del.DisableColor()
	}
	skipped := false
	for i := range lines {
		ln := &lines[i]
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped {
			if _, err := fmt.Fprintln(w, "..."); err != nil {
				return err
			}
			skipped = false
		}
		text := ln.Op.prefix() + ln.Text
		switch ln.Op {
		case Insert:
			text = ins.Sprint(text)
		case Delete:
			text = del.Sprint(text)
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}
