package voevent

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/signadot/go-voevent/coerce"
	"github.com/signadot/go-voevent/ir"
	"github.com/signadot/go-voevent/xmlnode"
)

type Why struct {
	Importance  coerce.Value
	Expires     coerce.Value
	Description string
	Inference   *Inference
}

type Inference struct {
	Probability coerce.Value
	Relation    coerce.Value
	Name        *string
	// Concept is nil when there is no Concept element.
	Concept []string
}

func (d *Document) parseWhy(el *etree.Element) error {
	var w Why
	imp, _ := xmlnode.Attr(el, "importance")
	exp, _ := xmlnode.Attr(el, "expires")
	w.Importance = coerce.Default(imp)
	w.Expires = coerce.Default(exp)
	w.Description = xmlnode.Text(xmlnode.Child(el, "Description"))
	if inf := xmlnode.Child(el, "Inference"); inf != nil {
		w.Inference = parseInference(inf)
	}
	d.Why = w
	d.trace("why", "importance", w.Importance, "inference", w.Inference != nil)
	return nil
}

func parseInference(el *etree.Element) *Inference {
	prob, _ := xmlnode.Attr(el, "probability")
	rel, _ := xmlnode.Attr(el, "relation")
	res := &Inference{
		Probability: coerce.Default(prob),
		Relation:    coerce.Default(rel),
	}
	if name := xmlnode.Child(el, "Name"); name != nil {
		text := name.Text()
		res.Name = &text
	}
	if c := xmlnode.Child(el, "Concept"); c != nil {
		res.Concept = strings.Split(c.Text(), ";")
	}
	return res
}

func (inf *Inference) IR() *ir.Node {
	if inf == nil {
		return ir.Null()
	}
	name := ir.Null()
	if inf.Name != nil {
		name = ir.FromString(*inf.Name)
	}
	concept := ir.Null()
	if inf.Concept != nil {
		cs := make([]*ir.Node, len(inf.Concept))
		for i, c := range inf.Concept {
			cs[i] = ir.FromString(c)
		}
		concept = ir.FromSlice(cs)
	}
	return ir.MustKeyVals(
		ir.KeyVal{Key: "probability", Val: inf.Probability.IR()},
		ir.KeyVal{Key: "relation", Val: inf.Relation.IR()},
		ir.KeyVal{Key: "name", Val: name},
		ir.KeyVal{Key: "concept", Val: concept},
	)
}

func (w *Why) IR() *ir.Node {
	return ir.MustKeyVals(
		ir.KeyVal{Key: "importance", Val: w.Importance.IR()},
		ir.KeyVal{Key: "expires", Val: w.Expires.IR()},
		ir.KeyVal{Key: "description", Val: ir.FromString(w.Description)},
		ir.KeyVal{Key: "inference", Val: w.Inference.IR()},
	)
}
