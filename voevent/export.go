package voevent

import (
	"fmt"
	"strings"

	"github.com/signadot/go-voevent/ir"
)

// IR returns the extracted content of d as an ordered tree.
func (d *Document) IR() *ir.Node {
	return ir.MustKeyVals(
		ir.KeyVal{Key: "version", Val: ir.FromString(d.Version.String())},
		ir.KeyVal{Key: "role", Val: ir.FromString(d.Role.String())},
		ir.KeyVal{Key: "ivorn", Val: ir.FromString(d.IVORN)},
		ir.KeyVal{Key: "identity", Val: ir.MustKeyVals(
			ir.KeyVal{Key: "authority", Val: ir.FromString(d.Identity.Authority)},
			ir.KeyVal{Key: "resourceKey", Val: ir.FromString(d.Identity.ResourceKey)},
			ir.KeyVal{Key: "localID", Val: ir.FromString(d.Identity.LocalID)},
		)},
		ir.KeyVal{Key: "who", Val: d.Who.IR()},
		ir.KeyVal{Key: "what", Val: d.What.IR()},
		ir.KeyVal{Key: "wherewhen", Val: d.WhereWhen.IR()},
		ir.KeyVal{Key: "how", Val: d.How.IR()},
		ir.KeyVal{Key: "why", Val: d.Why.IR()},
		ir.KeyVal{Key: "citations", Val: citationsIR(d.Citations)},
		ir.KeyVal{Key: "description", Val: d.Description.IR()},
		ir.KeyVal{Key: "reference", Val: d.Reference.IR()},
	)
}

// Env returns the content of d as plain maps and slices, keyed as in IR.
func (d *Document) Env() map[string]any {
	return ir.ToJSONAny(d.IR()).(map[string]any)
}

// Summary describes d in a few human readable lines.
func (d *Document) Summary() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s (VOEvent %s, %s)\n", d.IVORN, d.Version, d.Role)
	if d.Who.AuthorIVORN != "" || !d.Who.Date.IsNull() {
		fmt.Fprintf(b, "  who: %s %s\n", d.Who.AuthorIVORN, d.Who.Date)
	}
	if n := d.What.Len(); n != 0 {
		fmt.Fprintf(b, "  what: %d entries\n", n)
		d.What.Walk(func(path string, p *Param) {
			fmt.Fprintf(b, "    %s = %s", path, p.Value)
			if p.Unit != "" {
				fmt.Fprintf(b, " %s", p.Unit)
			}
			b.WriteByte('\n')
		})
	}
	ww := &d.WhereWhen
	if pos := ww.Position; pos != nil {
		fmt.Fprintf(b, "  where: ra=%s dec=%s", ir.FormatFloat(pos.RA), ir.FormatFloat(pos.Dec))
		if pos.Error != nil {
			fmt.Fprintf(b, " error=%s", ir.FormatFloat(*pos.Error))
		}
		if ww.CoordSystem != "" {
			fmt.Fprintf(b, " (%s)", ww.CoordSystem)
		}
		b.WriteByte('\n')
	}
	if !ww.Time.IsNull() {
		fmt.Fprintf(b, "  when: %s\n", ww.Time)
	}
	if inf := d.Why.Inference; inf != nil && !inf.Probability.IsNull() {
		fmt.Fprintf(b, "  why: probability %s", inf.Probability)
		if inf.Name != nil {
			fmt.Fprintf(b, " %s", *inf.Name)
		}
		b.WriteByte('\n')
	}
	for _, c := range d.Citations {
		fmt.Fprintf(b, "  cites: %s %s\n", c.Kind, c.Text)
	}
	return b.String()
}
