package voevent

import (
	"github.com/beevik/etree"
	"github.com/signadot/go-voevent/ir"
	"github.com/signadot/go-voevent/xmlnode"
)

// How records the presence of a How section.  Its Description text and
// Reference uri are kept raw.
type How struct {
	Present     bool
	Description string
	Reference   string
}

func (d *Document) parseHow(el *etree.Element) error {
	h := How{Present: true}
	h.Description = xmlnode.Text(xmlnode.Child(el, "Description"))
	if ref := xmlnode.Child(el, "Reference"); ref != nil {
		h.Reference, _ = xmlnode.Attr(ref, "uri")
	}
	d.How = h
	d.trace("how", "reference", h.Reference)
	return nil
}

func (h *How) IR() *ir.Node {
	if !h.Present {
		return ir.Null()
	}
	return ir.MustKeyVals(
		ir.KeyVal{Key: "description", Val: optString(h.Description)},
		ir.KeyVal{Key: "reference", Val: optString(h.Reference)},
	)
}
