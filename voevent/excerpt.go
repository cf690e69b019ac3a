package voevent

import (
	"github.com/beevik/etree"
	"github.com/signadot/go-voevent/ir"
	"github.com/signadot/go-voevent/xmlnode"
)

// Excerpt is the first child element of a top level Description or
// Reference section.
type Excerpt struct {
	Tag  string
	Text string
}

func firstChild(el *etree.Element) *Excerpt {
	kids := el.ChildElements()
	if len(kids) == 0 {
		return nil
	}
	return &Excerpt{Tag: xmlnode.QName(kids[0]), Text: kids[0].Text()}
}

func (d *Document) parseDescription(el *etree.Element) error {
	d.Description = firstChild(el)
	d.trace("description", "present", d.Description != nil)
	return nil
}

func (d *Document) parseReference(el *etree.Element) error {
	d.Reference = firstChild(el)
	d.trace("reference", "present", d.Reference != nil)
	return nil
}

func (e *Excerpt) IR() *ir.Node {
	if e == nil {
		return ir.Null()
	}
	return ir.MustKeyVals(
		ir.KeyVal{Key: "tag", Val: ir.FromString(e.Tag)},
		ir.KeyVal{Key: "text", Val: optString(e.Text)},
	)
}
