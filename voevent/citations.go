package voevent

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/samber/lo"
	"github.com/signadot/go-voevent/ir"
	"github.com/signadot/go-voevent/xmlnode"
)

type CitationKind int

const (
	CiteFollowUp CitationKind = iota
	CiteSupersedes
	CiteRetraction
	CiteDescription
)

var citeNames = []string{"followup", "supersedes", "retraction", "description"}

func (k CitationKind) String() string {
	if k < 0 || int(k) >= len(citeNames) {
		return fmt.Sprintf("<err: %d is not a citation kind>", int(k))
	}
	return citeNames[k]
}

func (k CitationKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(citeNames) {
		return nil, fmt.Errorf("<err: %d is not a citation kind>", int(k))
	}
	return []byte(citeNames[k]), nil
}

// Citation is an entry of the Citations section.  Text is the cited IVORN,
// or the description text for CiteDescription.
type Citation struct {
	Kind CitationKind
	Text string
}

func (d *Document) parseCitations(el *etree.Element) error {
	var res []Citation
	eventCites := citeNames[:CiteDescription]
	for _, c := range el.ChildElements() {
		tag := xmlnode.QName(c)
		switch tag {
		case "EventIVORN":
			cite, ok := xmlnode.Attr(c, "cite")
			if !ok {
				return fmt.Errorf("%w: EventIVORN has no cite attribute", ErrInvalidCitationType)
			}
			i := lo.IndexOf(eventCites, cite)
			if i < 0 {
				return fmt.Errorf("%w: %q", ErrInvalidCitationType, cite)
			}
			res = append(res, Citation{Kind: CitationKind(i), Text: c.Text()})
		case "Description":
			res = append(res, Citation{Kind: CiteDescription, Text: c.Text()})
		default:
			return fmt.Errorf("%w: %s", ErrInvalidCitationElement, tag)
		}
	}
	d.Citations = res
	d.trace("citations", "count", len(res))
	return nil
}

func citationsIR(cs []Citation) *ir.Node {
	res := make([]*ir.Node, len(cs))
	for i := range cs {
		res[i] = ir.MustKeyVals(
			ir.KeyVal{Key: "kind", Val: ir.FromString(cs[i].Kind.String())},
			ir.KeyVal{Key: "text", Val: ir.FromString(cs[i].Text)},
		)
	}
	return ir.FromSlice(res)
}
