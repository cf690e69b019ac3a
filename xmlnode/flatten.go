package xmlnode

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/signadot/go-voevent/coerce"
	"github.com/signadot/go-voevent/debug"
)

// Flatten converts el and all its descendants.
func Flatten(el *etree.Element, mode coerce.Mode, stripWhitespace bool) (*Node, error) {
	n, err := flattenElement(el, mode, stripWhitespace)
	if err != nil {
		return nil, err
	}
	n.Children, err = FlattenChildren(el, mode, stripWhitespace)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// FlattenChildren converts the child elements of el, leaving el itself out.
func FlattenChildren(el *etree.Element, mode coerce.Mode, stripWhitespace bool) ([]*Node, error) {
	kids := el.ChildElements()
	res := make([]*Node, 0, len(kids))
	for _, kid := range kids {
		n, err := Flatten(kid, mode, stripWhitespace)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

// FlattenDocument converts the whole document, root element included.
func FlattenDocument(doc *etree.Document, mode coerce.Mode, stripWhitespace bool) (*Node, error) {
	root := doc.Root()
	if root == nil {
		return nil, ErrNoRoot
	}
	return Flatten(root, mode, stripWhitespace)
}

func flattenElement(el *etree.Element, mode coerce.Mode, stripWhitespace bool) (*Node, error) {
	n := &Node{Tag: QName(el)}
	n.Name = n.Tag
	if name, _ := Attr(el, "name"); name != "" {
		n.Name = name
	}
	if text := el.Text(); text != "" {
		if stripWhitespace {
			text = strings.TrimSpace(text)
		}
		if text != "" {
			n.Text = &text
		}
	}

	n.Attrs = make([]Attribute, 0, len(el.Attr))
	for i := range el.Attr {
		a := &el.Attr[i]
		if isNamespaceDecl(a) {
			continue
		}
		key := attrQName(a)
		if key == "value" {
			n.Attrs = append(n.Attrs, Attribute{Key: key, Value: coerce.FromString(a.Value)})
			continue
		}
		// no declared type, cannot fail
		v, _ := coerce.Coerce(a.Value, mode, "")
		n.Attrs = append(n.Attrs, Attribute{Key: key, Value: v})
	}

	dataType, _ := Attr(el, "dataType")
	raw, _ := Attr(el, "value")
	if raw == "" && n.Text != nil {
		raw = *n.Text
	}
	v, err := coerce.Coerce(raw, mode, dataType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", el.GetPath(), err)
	}
	n.Value = v
	if debug.Flatten() {
		debug.Logf("flatten %s name=%q %s value=%v\n", el.GetPath(), n.Name, v.Kind, v.IR())
	}
	return n, nil
}
